package models

import "github.com/shopspring/decimal"

// MenuItem represents a single dish on the menu.
// Items are immutable once loaded and owned by the catalog.
type MenuItem struct {
	// ID is the stable identifier of the dish, compared as a string.
	ID string `json:"id"`

	// Name is the display name (e.g., "Dal Makhani").
	Name string `json:"name"`

	// Category groups dishes on the menu (e.g., "Main Course").
	Category string `json:"category"`

	// Full is the price of a full portion.
	// An invalid value means the full portion is not offered.
	Full decimal.NullDecimal `json:"full"`

	// Half is the price of a half portion.
	// An invalid value means the half portion is not offered.
	Half decimal.NullDecimal `json:"half"`

	// ImageURL is an optional picture of the dish.
	ImageURL string `json:"image_url,omitempty"`
}

// Price returns the unit price for the given portion.
// The second return value is false when the portion is not offered.
func (m MenuItem) Price(p Portion) (decimal.Decimal, bool) {
	switch p {
	case PortionFull:
		return m.Full.Decimal, m.Full.Valid
	case PortionHalf:
		return m.Half.Decimal, m.Half.Valid
	default:
		return decimal.Zero, false
	}
}
