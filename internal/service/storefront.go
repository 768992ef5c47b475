// Package service exposes the storefront session over Connect RPC.
package service

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"sync"

	"connectrpc.com/connect"

	"github.com/mmynk/urbanthek/internal/cart"
	"github.com/mmynk/urbanthek/internal/catalog"
	"github.com/mmynk/urbanthek/internal/middleware"
	"github.com/mmynk/urbanthek/internal/models"
	"github.com/mmynk/urbanthek/internal/order"
	"github.com/mmynk/urbanthek/internal/session"
)

// ServiceName is the fully-qualified name of the storefront service.
const ServiceName = "urbanthek.v1.StorefrontService"

const (
	GetStatusProcedure      = "/" + ServiceName + "/GetStatus"
	ListMenuProcedure       = "/" + ServiceName + "/ListMenu"
	GetCartProcedure        = "/" + ServiceName + "/GetCart"
	AddItemProcedure        = "/" + ServiceName + "/AddItem"
	RemoveItemProcedure     = "/" + ServiceName + "/RemoveItem"
	GetCustomerProcedure    = "/" + ServiceName + "/GetCustomer"
	UpdateCustomerProcedure = "/" + ServiceName + "/UpdateCustomer"
	CheckoutProcedure       = "/" + ServiceName + "/Checkout"
)

// StorefrontService implements the storefront RPCs over one session.
// Every handler holds the lock for its whole call, so a checkout never
// interleaves with cart edits.
type StorefrontService struct {
	mu       sync.Mutex
	session  *session.Session
	pageSize int
}

// NewStorefrontService wraps sess. A non-positive pageSize uses
// catalog.DefaultPageSize.
func NewStorefrontService(sess *session.Session, pageSize int) *StorefrontService {
	if pageSize <= 0 {
		pageSize = catalog.DefaultPageSize
	}
	return &StorefrontService{session: sess, pageSize: pageSize}
}

// Handler returns the path prefix and handler for all storefront procedures.
// The JSON codecs and the logging interceptor are always installed.
func (s *StorefrontService) Handler(opts ...connect.HandlerOption) (string, http.Handler) {
	opts = append([]connect.HandlerOption{
		connect.WithCodec(jsonCodec{name: "json"}),
		connect.WithCodec(jsonCodec{name: "json; charset=utf-8"}),
		connect.WithInterceptors(middleware.LoggingInterceptor()),
	}, opts...)

	mux := http.NewServeMux()
	mux.Handle(GetStatusProcedure, connect.NewUnaryHandler(GetStatusProcedure, s.GetStatus, opts...))
	mux.Handle(ListMenuProcedure, connect.NewUnaryHandler(ListMenuProcedure, s.ListMenu, opts...))
	mux.Handle(GetCartProcedure, connect.NewUnaryHandler(GetCartProcedure, s.GetCart, opts...))
	mux.Handle(AddItemProcedure, connect.NewUnaryHandler(AddItemProcedure, s.AddItem, opts...))
	mux.Handle(RemoveItemProcedure, connect.NewUnaryHandler(RemoveItemProcedure, s.RemoveItem, opts...))
	mux.Handle(GetCustomerProcedure, connect.NewUnaryHandler(GetCustomerProcedure, s.GetCustomer, opts...))
	mux.Handle(UpdateCustomerProcedure, connect.NewUnaryHandler(UpdateCustomerProcedure, s.UpdateCustomer, opts...))
	mux.Handle(CheckoutProcedure, connect.NewUnaryHandler(CheckoutProcedure, s.Checkout, opts...))
	return "/" + ServiceName + "/", mux
}

// GetStatus reports whether orders are being taken right now.
func (s *StorefrontService) GetStatus(ctx context.Context, req *connect.Request[GetStatusRequest]) (*connect.Response[GetStatusResponse], error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	gate := s.session.Gate()
	return connect.NewResponse(&GetStatusResponse{
		Open:        gate.IsOpen(),
		Status:      gate.Status(),
		OpeningHour: gate.OpeningHour,
		ClosingHour: gate.ClosingHour,
		MenuSize:    s.session.Catalog().Len(),
	}), nil
}

// ListMenu returns one page of the menu, optionally filtered by name.
func (s *StorefrontService) ListMenu(ctx context.Context, req *connect.Request[ListMenuRequest]) (*connect.Response[ListMenuResponse], error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	limit := req.Msg.Limit
	if limit <= 0 {
		limit = s.pageSize
	}
	matched := s.session.Catalog().Search(req.Msg.Search)
	page, remaining := catalog.Page(matched, req.Msg.Offset, limit)
	if page == nil {
		page = []models.MenuItem{}
	}

	return connect.NewResponse(&ListMenuResponse{
		Items:     page,
		Matched:   len(matched),
		Remaining: remaining,
	}), nil
}

// GetCart returns the priced cart.
func (s *StorefrontService) GetCart(ctx context.Context, req *connect.Request[GetCartRequest]) (*connect.Response[CartResponse], error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return connect.NewResponse(s.cartResponse()), nil
}

// AddItem adds one unit of a portion and returns the repriced cart.
func (s *StorefrontService) AddItem(ctx context.Context, req *connect.Request[CartItemRequest]) (*connect.Response[CartResponse], error) {
	portion, err := models.ParsePortion(req.Msg.Portion)
	if err != nil {
		return nil, connect.NewError(connect.CodeInvalidArgument, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.session.AddItem(req.Msg.ItemID, portion); err != nil {
		slog.Info("AddItem rejected", "item_id", req.Msg.ItemID, "portion", portion, "error", err)
		if errors.Is(err, cart.ErrClosed) {
			return nil, connect.NewError(connect.CodeFailedPrecondition, errors.New(closedNotice(s.session.Store().Name)))
		}
		return nil, toConnectError(err)
	}
	return connect.NewResponse(s.cartResponse()), nil
}

// closedNotice is the message a customer sees when adding outside hours.
func closedNotice(storeName string) string {
	return storeName + " is currently CLOSED."
}

// RemoveItem removes one unit of a portion and returns the repriced cart.
func (s *StorefrontService) RemoveItem(ctx context.Context, req *connect.Request[CartItemRequest]) (*connect.Response[CartResponse], error) {
	portion, err := models.ParsePortion(req.Msg.Portion)
	if err != nil {
		return nil, connect.NewError(connect.CodeInvalidArgument, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.session.RemoveItem(req.Msg.ItemID, portion)
	return connect.NewResponse(s.cartResponse()), nil
}

// GetCustomer returns the remembered customer details.
func (s *StorefrontService) GetCustomer(ctx context.Context, req *connect.Request[GetCustomerRequest]) (*connect.Response[CustomerResponse], error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return connect.NewResponse(s.customerResponse()), nil
}

// UpdateCustomer replaces the customer details. They are only checked at
// checkout.
func (s *StorefrontService) UpdateCustomer(ctx context.Context, req *connect.Request[UpdateCustomerRequest]) (*connect.Response[CustomerResponse], error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.session.UpdateCustomer(ctx, req.Msg.Customer)
	return connect.NewResponse(s.customerResponse()), nil
}

// Checkout submits the cart.
func (s *StorefrontService) Checkout(ctx context.Context, req *connect.Request[CheckoutRequest]) (*connect.Response[CheckoutResponse], error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sub, err := s.session.Checkout(ctx)
	if err != nil {
		return nil, toConnectError(err)
	}

	slog.Info("Checkout completed", "bill_no", sub.BillNumber, "payable", sub.Pricing.Payable.String())

	return connect.NewResponse(&CheckoutResponse{
		BillNumber: sub.BillNumber,
		Message:    sub.Message,
		ShareURL:   sub.ShareURL,
		Receipt:    sub.ReceiptText,
		Summary:    toSummary(sub.Pricing),
	}), nil
}

func (s *StorefrontService) cartResponse() *CartResponse {
	draft := s.session.Draft()
	lines := draft.Lines()

	resp := &CartResponse{
		Lines:     make([]CartLine, 0, len(lines)),
		ItemCount: s.session.ItemCount(),
		Summary:   toSummary(draft.Pricing),
	}
	for _, l := range lines {
		resp.Lines = append(resp.Lines, CartLine{
			ItemID:   l.ItemID,
			Name:     l.Name,
			Portion:  string(l.Portion),
			Quantity: l.Quantity,
			Amount:   l.Amount.String(),
		})
	}
	return resp
}

func (s *StorefrontService) customerResponse() *CustomerResponse {
	return &CustomerResponse{
		Customer:   s.session.Customer(),
		BillNumber: s.session.BillNumber(),
	}
}

// toConnectError maps session errors to Connect codes. Validation failures
// carry only the corrective message shown to the customer.
func toConnectError(err error) error {
	var vErr *order.ValidationError
	switch {
	case errors.As(err, &vErr):
		return connect.NewError(connect.CodeFailedPrecondition, errors.New(vErr.Message))
	case errors.Is(err, cart.ErrClosed):
		return connect.NewError(connect.CodeFailedPrecondition, err)
	case errors.Is(err, session.ErrUnknownItem), errors.Is(err, session.ErrPortionUnavailable):
		return connect.NewError(connect.CodeInvalidArgument, err)
	default:
		return connect.NewError(connect.CodeInternal, err)
	}
}
