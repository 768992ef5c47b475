package order

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

// DefaultReceiptWidth is the column count of a 58mm thermal roll.
const DefaultReceiptWidth = 32

const (
	dateLayout  = "02/01/2006"
	clockLayout = "15:04"
	qtyWidth    = 4
	priceWidth  = 8
)

// Receipt is the printable bill for one order.
type Receipt struct {
	StoreName string
	Location  string
	GSTIN     string
	FSSAI     string

	// BillNumber is zero-padded to at least three digits, e.g. "007".
	BillNumber   string
	Date         string
	Time         string
	CustomerName string

	Rows []ReceiptRow

	Subtotal decimal.Decimal
	Discount decimal.Decimal
	Total    decimal.Decimal

	// Delivery is zero when delivery is free; Payable then equals Total.
	Delivery decimal.Decimal
	Payable  decimal.Decimal

	Contact string
	Website string
	Footer  string
}

// ReceiptRow is one printed item line.
type ReceiptRow struct {
	// Item is the dish name followed by the portion initial, e.g. "Dal (F)".
	Item     string
	Quantity int
	Price    decimal.Decimal
}

// Receipt builds the printable bill for a draft, stamped with printedAt.
func (c *Composer) Receipt(d Draft, printedAt time.Time) Receipt {
	r := Receipt{
		StoreName:    strings.ToUpper(c.Store.Name),
		Location:     c.Store.Location,
		GSTIN:        c.Store.GSTIN,
		FSSAI:        c.Store.FSSAI,
		BillNumber:   fmt.Sprintf("%03d", d.BillNumber),
		Date:         printedAt.Format(dateLayout),
		Time:         printedAt.Format(clockLayout),
		CustomerName: strings.ToUpper(d.Customer.Name),
		Subtotal:     d.Pricing.Subtotal,
		Discount:     d.Pricing.DiscountAmount,
		Total:        d.Pricing.Total,
		Delivery:     d.Pricing.DeliveryCharge,
		Payable:      d.Pricing.Payable,
		Contact:      c.Store.ContactPhones,
		Website:      c.Store.Website,
		Footer:       "THANK YOU! VISIT AGAIN",
	}
	for _, line := range d.Lines() {
		r.Rows = append(r.Rows, ReceiptRow{
			Item:     fmt.Sprintf("%s (%s)", line.Name, line.Portion.Initial()),
			Quantity: line.Quantity,
			Price:    line.Amount,
		})
	}
	return r
}

// Render lays the receipt out as fixed-width text for a thermal printer.
// Widths below 24 columns are raised to 24.
func (r Receipt) Render(width int) string {
	if width < 24 {
		width = 24
	}
	rule := strings.Repeat(".", width)
	var lines []string
	add := func(s ...string) { lines = append(lines, s...) }

	add(center(r.StoreName, width))
	if r.Location != "" {
		add(center(r.Location, width))
	}
	if r.GSTIN != "" {
		add(center("GSTIN: "+r.GSTIN, width))
	}
	if r.FSSAI != "" {
		add(center("FSSAI: "+r.FSSAI, width))
	}
	add(rule)
	add(justify("BILL NO: #"+r.BillNumber, r.Date+" | "+r.Time, width)...)
	add("NAME: " + r.CustomerName)
	add(rule)

	nameWidth := width - qtyWidth - priceWidth
	add(padRight("ITEM NAME", nameWidth) + padLeft("QTY", qtyWidth) + padLeft("PRICE", priceWidth))
	add(rule)
	for _, row := range r.Rows {
		add(padRight(truncate(row.Item, nameWidth-1), nameWidth) +
			padLeft(fmt.Sprint(row.Quantity), qtyWidth) +
			padLeft(row.Price.String(), priceWidth))
	}
	add(rule)

	add(padLeft("Subtotal: "+rupees(r.Subtotal), width))
	if r.Discount.IsPositive() {
		add(padLeft("Discount: -"+rupees(r.Discount), width))
	}
	add(padLeft("TOTAL: "+rupees(r.Total), width))
	if r.Delivery.IsPositive() {
		add(padLeft("Delivery: "+rupees(r.Delivery), width))
		add(padLeft("PAYABLE: "+rupees(r.Payable), width))
	}
	add(rule)

	if r.Contact != "" {
		add("Ph: " + r.Contact)
	}
	if r.Website != "" {
		add(r.Website)
	}
	add("")
	add(center(r.Footer, width))

	return strings.Join(lines, "\n") + "\n"
}

func runeLen(s string) int {
	return utf8.RuneCountInString(s)
}

func padRight(s string, width int) string {
	if n := runeLen(s); n < width {
		return s + strings.Repeat(" ", width-n)
	}
	return s
}

func padLeft(s string, width int) string {
	if n := runeLen(s); n < width {
		return strings.Repeat(" ", width-n) + s
	}
	return s
}

func center(s string, width int) string {
	n := runeLen(s)
	if n >= width {
		return s
	}
	return strings.Repeat(" ", (width-n)/2) + s
}

// justify puts left and right on one line, or on two when they do not fit.
func justify(left, right string, width int) []string {
	gap := width - runeLen(left) - runeLen(right)
	if gap < 1 {
		return []string{left, padLeft(right, width)}
	}
	return []string{left + strings.Repeat(" ", gap) + right}
}

func truncate(s string, width int) string {
	if runeLen(s) <= width {
		return s
	}
	runes := []rune(s)
	return string(runes[:width-1]) + "~"
}
