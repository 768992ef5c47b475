// Package pricing turns a cart into the amounts shown to the customer.
//
// Everything here is a pure function of (catalog, cart): no I/O, no errors,
// no rounding. Callers compute one Result per action and pass it on.
package pricing

import (
	"github.com/shopspring/decimal"

	"github.com/mmynk/urbanthek/internal/models"
)

// Catalog resolves menu items by ID.
type Catalog interface {
	Lookup(id string) (models.MenuItem, bool)
}

// Discount tiers. These apply to the subtotal as a step function.
var (
	tierHigh = decimal.NewFromInt(2000)
	tierLow  = decimal.NewFromInt(1000)
)

const (
	highTierPercent = 15
	lowTierPercent  = 10
)

// Rules are the delivery thresholds and fee.
type Rules struct {
	// MinOrder is the smallest post-discount total that can be delivered.
	MinOrder decimal.Decimal

	// FreeDeliveryMin is the post-discount total from which delivery is free.
	FreeDeliveryMin decimal.Decimal

	// DeliveryCharge is the flat fee below FreeDeliveryMin.
	DeliveryCharge decimal.Decimal
}

// DefaultRules is the Urban Thek rule set: ₹299 minimum, free delivery from ₹399, else ₹30.
var DefaultRules = Rules{
	MinOrder:        decimal.NewFromInt(299),
	FreeDeliveryMin: decimal.NewFromInt(399),
	DeliveryCharge:  decimal.NewFromInt(30),
}

// Result is the full price breakdown of a cart.
type Result struct {
	Subtotal        decimal.Decimal
	DiscountPercent int
	DiscountAmount  decimal.Decimal

	// Total is the subtotal after discount, before delivery.
	Total decimal.Decimal

	// CanOrder is false when Total is below the minimum order.
	CanOrder bool

	FreeDelivery bool

	// DeliveryCharge is zero when FreeDelivery is set.
	DeliveryCharge decimal.Decimal

	// Payable is Total plus DeliveryCharge.
	Payable decimal.Decimal

	rules Rules
}

// ShortOfMinimum is how much more the customer must add before the order can
// be placed, zero once the minimum is met.
func (r Result) ShortOfMinimum() decimal.Decimal {
	return shortfall(r.rules.MinOrder, r.Total)
}

// ShortOfFreeDelivery is how much more unlocks free delivery, zero once it is free.
func (r Result) ShortOfFreeDelivery() decimal.Decimal {
	return shortfall(r.rules.FreeDeliveryMin, r.Total)
}

func shortfall(threshold, total decimal.Decimal) decimal.Decimal {
	if total.GreaterThanOrEqual(threshold) {
		return decimal.Zero
	}
	return threshold.Sub(total)
}

// Engine prices carts under a fixed rule set.
type Engine struct {
	Rules Rules
}

// NewEngine returns an engine for the given rules.
func NewEngine(rules Rules) *Engine {
	return &Engine{Rules: rules}
}

// Price computes the breakdown using DefaultRules.
func Price(catalog Catalog, entries []models.CartEntry) Result {
	return NewEngine(DefaultRules).Price(catalog, entries)
}

// Price computes the breakdown for the cart entries.
// Entries whose item is unknown, or whose portion has no price, contribute zero.
func (e *Engine) Price(catalog Catalog, entries []models.CartEntry) Result {
	subtotal := decimal.Zero
	for _, entry := range entries {
		item, ok := catalog.Lookup(entry.Key.ItemID)
		if !ok {
			continue
		}
		subtotal = subtotal.Add(LineTotal(item, entry.Key.Portion, entry.Quantity))
	}

	percent := DiscountPercent(subtotal)
	discount := subtotal.Mul(decimal.NewFromInt(int64(percent))).Div(decimal.NewFromInt(100))
	total := subtotal.Sub(discount)

	r := Result{
		Subtotal:        subtotal,
		DiscountPercent: percent,
		DiscountAmount:  discount,
		Total:           total,
		CanOrder:        total.GreaterThanOrEqual(e.Rules.MinOrder),
		FreeDelivery:    total.GreaterThanOrEqual(e.Rules.FreeDeliveryMin),
		DeliveryCharge:  decimal.Zero,
		rules:           e.Rules,
	}
	if !r.FreeDelivery {
		r.DeliveryCharge = e.Rules.DeliveryCharge
	}
	r.Payable = total.Add(r.DeliveryCharge)
	return r
}

// DiscountPercent returns the tier for a subtotal: 15 from 2000, 10 from 1000, else 0.
func DiscountPercent(subtotal decimal.Decimal) int {
	switch {
	case subtotal.GreaterThanOrEqual(tierHigh):
		return highTierPercent
	case subtotal.GreaterThanOrEqual(tierLow):
		return lowTierPercent
	default:
		return 0
	}
}

// LineTotal is quantity times the unit price of the portion, zero when the
// portion is not offered.
func LineTotal(item models.MenuItem, portion models.Portion, quantity int) decimal.Decimal {
	price, ok := item.Price(portion)
	if !ok {
		return decimal.Zero
	}
	return price.Mul(decimal.NewFromInt(int64(quantity)))
}
