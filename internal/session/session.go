// Package session holds the state of one storefront session: the menu, the
// cart, and the persisted profile with its bill counter. It runs checkout.
package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/mmynk/urbanthek/internal/cart"
	"github.com/mmynk/urbanthek/internal/catalog"
	"github.com/mmynk/urbanthek/internal/hours"
	"github.com/mmynk/urbanthek/internal/messaging"
	"github.com/mmynk/urbanthek/internal/metrics"
	"github.com/mmynk/urbanthek/internal/models"
	"github.com/mmynk/urbanthek/internal/order"
	"github.com/mmynk/urbanthek/internal/pricing"
	"github.com/mmynk/urbanthek/internal/storage"
)

var (
	ErrUnknownItem        = errors.New("item is not on the menu")
	ErrPortionUnavailable = errors.New("portion is not offered for this item")
)

// Deps are the collaborators a session is built from.
// Gate, Engine, Composer and Dispatcher fall back to defaults when nil.
type Deps struct {
	Catalog    *catalog.Catalog
	Gate       *hours.Gate
	Engine     *pricing.Engine
	Composer   *order.Composer
	Orders     storage.OrderSink
	Profiles   storage.ProfileStore
	Dispatcher messaging.Dispatcher
	Metrics    *metrics.Metrics

	// ReceiptWidth is the printer width in columns.
	ReceiptWidth int
}

// Session is the single logical storefront session. It is not safe for
// concurrent use; callers serialize access.
type Session struct {
	catalog      *catalog.Catalog
	gate         *hours.Gate
	engine       *pricing.Engine
	composer     *order.Composer
	cart         *cart.Cart
	orders       storage.OrderSink
	profiles     storage.ProfileStore
	dispatcher   messaging.Dispatcher
	metrics      *metrics.Metrics
	receiptWidth int

	profile *models.Profile
}

// Submission is the result of a successful checkout.
type Submission struct {
	// BillNumber is the number printed on this receipt.
	BillNumber  int
	Pricing     pricing.Result
	Message     string
	ShareURL    string
	Receipt     order.Receipt
	ReceiptText string
}

// New builds a session and seeds its profile from deps.Profiles.
// A profile that cannot be loaded is logged and replaced by a fresh one.
func New(ctx context.Context, deps Deps) *Session {
	s := &Session{
		catalog:      deps.Catalog,
		gate:         deps.Gate,
		engine:       deps.Engine,
		composer:     deps.Composer,
		orders:       deps.Orders,
		profiles:     deps.Profiles,
		dispatcher:   deps.Dispatcher,
		metrics:      deps.Metrics,
		receiptWidth: deps.ReceiptWidth,
	}
	if s.catalog == nil {
		s.catalog = catalog.New(nil)
	}
	if s.gate == nil {
		s.gate = hours.Default()
	}
	if s.engine == nil {
		s.engine = pricing.NewEngine(pricing.DefaultRules)
	}
	if s.composer == nil {
		s.composer = order.NewComposer(order.DefaultStore)
	}
	if s.dispatcher == nil {
		s.dispatcher = messaging.LogDispatcher{}
	}
	if s.receiptWidth <= 0 {
		s.receiptWidth = order.DefaultReceiptWidth
	}
	s.cart = cart.New(s.gate)

	s.profile = models.NewProfile()
	if s.profiles != nil {
		p, err := s.profiles.LoadProfile(ctx)
		if err != nil {
			slog.Error("Failed to load profile, starting fresh", "error", err)
		} else if p != nil {
			s.profile = p
		}
	}
	if s.profile.BillNumber < models.FirstBillNumber {
		s.profile.BillNumber = models.FirstBillNumber
	}
	return s
}

// Catalog returns the menu.
func (s *Session) Catalog() *catalog.Catalog {
	return s.catalog
}

// Gate returns the opening-hours check.
func (s *Session) Gate() *hours.Gate {
	return s.gate
}

// Cart returns the cart contents in insertion order.
func (s *Session) Cart() models.CartSnapshot {
	return s.cart.Entries()
}

// ItemCount returns the total number of units in the cart.
func (s *Session) ItemCount() int {
	return s.cart.Count()
}

// Pricing prices the current cart.
func (s *Session) Pricing() pricing.Result {
	return s.engine.Price(s.catalog, s.cart.Entries())
}

// Draft assembles the current cart, pricing and customer for composition.
func (s *Session) Draft() order.Draft {
	entries := s.cart.Entries()
	return order.Draft{
		Catalog:    s.catalog,
		Entries:    entries,
		Pricing:    s.engine.Price(s.catalog, entries),
		Customer:   s.profile.Customer,
		BillNumber: s.profile.BillNumber,
	}
}

// AddItem adds one unit of the item's portion. The item must be on the menu
// with that portion priced, and the store must be open.
func (s *Session) AddItem(itemID string, portion models.Portion) error {
	if !s.gate.IsOpen() {
		s.metrics.AddRejected()
		return cart.ErrClosed
	}
	item, ok := s.catalog.Lookup(itemID)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownItem, itemID)
	}
	if _, ok := item.Price(portion); !ok {
		return fmt.Errorf("%w: %s (%s)", ErrPortionUnavailable, item.Name, portion)
	}
	if err := s.cart.Add(itemID, portion); err != nil {
		s.metrics.AddRejected()
		return err
	}
	return nil
}

// RemoveItem removes one unit. It is allowed at any hour and ignores
// entries that are not in the cart.
func (s *Session) RemoveItem(itemID string, portion models.Portion) {
	s.cart.Remove(itemID, portion)
}

// Store returns the identity of the store taking the order.
func (s *Session) Store() order.StoreInfo {
	return s.composer.Store
}

// Customer returns the remembered customer details.
func (s *Session) Customer() models.CustomerDetails {
	return s.profile.Customer
}

// BillNumber returns the number the next receipt will carry.
func (s *Session) BillNumber() int {
	return s.profile.BillNumber
}

// UpdateCustomer replaces the customer details and persists the profile.
func (s *Session) UpdateCustomer(ctx context.Context, details models.CustomerDetails) {
	s.profile.Customer = details
	s.saveProfile(ctx)
}

// Checkout validates and submits the cart.
//
// On a failed check nothing changes. On success the receipt carries the
// current bill number, the counter moves on by one, the order goes to the
// sink, the cart is emptied and the message is dispatched. Sink and
// dispatch failures are logged and do not undo the checkout.
func (s *Session) Checkout(ctx context.Context) (*Submission, error) {
	draft := s.Draft()
	if err := order.Validate(draft.Customer, draft.Pricing); err != nil {
		var vErr *order.ValidationError
		if errors.As(err, &vErr) {
			s.metrics.CheckoutBlocked(vErr.Field)
		}
		return nil, err
	}

	msg := s.composer.Message(draft)
	receipt := s.composer.Receipt(draft, s.now())
	sub := &Submission{
		BillNumber:  draft.BillNumber,
		Pricing:     draft.Pricing,
		Message:     msg,
		ShareURL:    s.composer.ShareURL(msg),
		Receipt:     receipt,
		ReceiptText: receipt.Render(s.receiptWidth),
	}

	s.profile.BillNumber++
	s.saveProfile(ctx)

	record := &models.Order{
		BillNumber:   draft.BillNumber,
		CustomerName: draft.Customer.Name,
		Total:        draft.Pricing.Payable,
		Items:        draft.Entries,
	}
	if s.orders != nil {
		if err := s.orders.CreateOrder(ctx, record); err != nil {
			s.metrics.SinkFailed()
			slog.Error("Failed to record order", "bill_no", record.BillNumber, "error", err)
		} else {
			slog.Info("Order recorded", "bill_no", record.BillNumber, "order_id", record.ID)
		}
	}

	s.cart.Clear()

	out := messaging.Outbound{
		BillNumber:   draft.BillNumber,
		CustomerName: draft.Customer.Name,
		Payable:      draft.Pricing.Payable,
		Items:        draft.Entries,
		Text:         sub.Message,
		ShareURL:     sub.ShareURL,
	}
	if err := s.dispatcher.Dispatch(ctx, out); err != nil {
		slog.Error("Failed to dispatch order", "bill_no", draft.BillNumber, "error", err)
	}

	s.metrics.OrderSubmitted(draft.Pricing.Payable)
	return sub, nil
}

func (s *Session) saveProfile(ctx context.Context) {
	if s.profiles == nil {
		return
	}
	if err := s.profiles.SaveProfile(ctx, s.profile); err != nil {
		slog.Error("Failed to save profile", "bill_no", s.profile.BillNumber, "error", err)
	}
}

func (s *Session) now() time.Time {
	if s.gate.Now != nil {
		return s.gate.Now()
	}
	return time.Now()
}
