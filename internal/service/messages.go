package service

import (
	"github.com/mmynk/urbanthek/internal/models"
	"github.com/mmynk/urbanthek/internal/pricing"
)

type GetStatusRequest struct{}

type GetStatusResponse struct {
	Open        bool   `json:"open"`
	Status      string `json:"status"`
	OpeningHour int    `json:"opening_hour"`
	ClosingHour int    `json:"closing_hour"`
	MenuSize    int    `json:"menu_size"`
}

type ListMenuRequest struct {
	Search string `json:"search,omitempty"`
	Offset int    `json:"offset,omitempty"`
	Limit  int    `json:"limit,omitempty"`
}

type ListMenuResponse struct {
	Items []models.MenuItem `json:"items"`
	// Matched is the number of items matching the search, across all pages.
	Matched   int `json:"matched"`
	Remaining int `json:"remaining"`
}

type GetCartRequest struct{}

// CartItemRequest names one portion of one dish. It is used for both
// adding and removing.
type CartItemRequest struct {
	ItemID  string `json:"item_id"`
	Portion string `json:"portion"`
}

type CartLine struct {
	ItemID   string `json:"item_id"`
	Name     string `json:"name"`
	Portion  string `json:"portion"`
	Quantity int    `json:"quantity"`
	Amount   string `json:"amount"`
}

// Summary is the priced cart. Amounts are decimal strings so no precision
// is lost on the way to the client.
type Summary struct {
	Subtotal            string `json:"subtotal"`
	DiscountPercent     int    `json:"discount_percent"`
	DiscountAmount      string `json:"discount_amount"`
	Total               string `json:"total"`
	DeliveryCharge      string `json:"delivery_charge"`
	Payable             string `json:"payable"`
	FreeDelivery        bool   `json:"free_delivery"`
	CanOrder            bool   `json:"can_order"`
	ShortOfMinimum      string `json:"short_of_minimum"`
	ShortOfFreeDelivery string `json:"short_of_free_delivery"`
}

type CartResponse struct {
	Lines     []CartLine `json:"lines"`
	ItemCount int        `json:"item_count"`
	Summary   Summary    `json:"summary"`
}

type GetCustomerRequest struct{}

type CustomerResponse struct {
	Customer   models.CustomerDetails `json:"customer"`
	BillNumber int                    `json:"bill_no"`
}

type UpdateCustomerRequest struct {
	Customer models.CustomerDetails `json:"customer"`
}

type CheckoutRequest struct{}

type CheckoutResponse struct {
	BillNumber int     `json:"bill_no"`
	Message    string  `json:"message"`
	ShareURL   string  `json:"share_url"`
	Receipt    string  `json:"receipt"`
	Summary    Summary `json:"summary"`
}

func toSummary(r pricing.Result) Summary {
	return Summary{
		Subtotal:            r.Subtotal.String(),
		DiscountPercent:     r.DiscountPercent,
		DiscountAmount:      r.DiscountAmount.String(),
		Total:               r.Total.String(),
		DeliveryCharge:      r.DeliveryCharge.String(),
		Payable:             r.Payable.String(),
		FreeDelivery:        r.FreeDelivery,
		CanOrder:            r.CanOrder,
		ShortOfMinimum:      r.ShortOfMinimum().String(),
		ShortOfFreeDelivery: r.ShortOfFreeDelivery().String(),
	}
}
