// Package order composes what leaves the storefront once a cart is submitted:
// the chat message sent to the kitchen and the printed receipt.
package order

import (
	"net/url"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/mmynk/urbanthek/internal/models"
	"github.com/mmynk/urbanthek/internal/pricing"
)

// StoreInfo is the fixed store identity printed on messages and receipts.
type StoreInfo struct {
	Name           string
	Location       string
	WhatsAppNumber string
	DeliveryNote   string
	GSTIN          string
	FSSAI          string
	ContactPhones  string
	Website        string
}

// DefaultStore describes the Nawabpur outlet.
var DefaultStore = StoreInfo{
	Name:           "Urban Thek",
	Location:       "Nawabpur, Near Akankha More",
	WhatsAppNumber: "917596042167",
	DeliveryNote:   "Delivery within 2km radius",
	GSTIN:          "19DURPS84411D1ZY",
	FSSAI:          "12823013000704",
	ContactPhones:  "7596042167/8583052933",
	Website:        "https://urban-thek.netlify.app",
}

// Draft is everything an order is composed from.
type Draft struct {
	Catalog    pricing.Catalog
	Entries    []models.CartEntry
	Pricing    pricing.Result
	Customer   models.CustomerDetails
	BillNumber int
}

// Line is one resolved cart entry.
type Line struct {
	ItemID   string
	Name     string
	Portion  models.Portion
	Quantity int
	Amount   decimal.Decimal
}

// Lines resolves the draft's entries against its catalog, in cart order.
// Entries whose item is no longer on the menu are skipped.
func (d Draft) Lines() []Line {
	lines := make([]Line, 0, len(d.Entries))
	for _, e := range d.Entries {
		if e.Quantity <= 0 {
			continue
		}
		item, ok := d.Catalog.Lookup(e.Key.ItemID)
		if !ok {
			continue
		}
		lines = append(lines, Line{
			ItemID:   item.ID,
			Name:     item.Name,
			Portion:  e.Key.Portion,
			Quantity: e.Quantity,
			Amount:   pricing.LineTotal(item, e.Key.Portion, e.Quantity),
		})
	}
	return lines
}

// Composer renders drafts for one store.
type Composer struct {
	Store StoreInfo
}

// NewComposer returns a composer for the given store.
func NewComposer(store StoreInfo) *Composer {
	return &Composer{Store: store}
}

// ShareURL returns the wa.me deep link that opens a chat with the store
// pre-filled with message.
func (c *Composer) ShareURL(message string) string {
	return "https://wa.me/" + c.Store.WhatsAppNumber + "?text=" + encodeURIComponent(message)
}

// uriUnreserved undoes url.QueryEscape where encodeURIComponent differs:
// spaces become %20 rather than '+', and !'()* stay literal so WhatsApp
// bold markers are not percent-encoded.
var uriUnreserved = strings.NewReplacer(
	"+", "%20",
	"%21", "!",
	"%27", "'",
	"%28", "(",
	"%29", ")",
	"%2A", "*",
)

// encodeURIComponent escapes s for a query value the way browsers do.
func encodeURIComponent(s string) string {
	return uriUnreserved.Replace(url.QueryEscape(s))
}

func rupees(d decimal.Decimal) string {
	return "₹" + d.String()
}
