package order

import (
	"fmt"
	"strings"
)

// Message renders the chat message for a draft. Formatting uses WhatsApp
// markup (*bold*, _italic_).
func (c *Composer) Message(d Draft) string {
	var b strings.Builder

	fmt.Fprintf(&b, "*🍽️ %s Order*\n\n", c.Store.Name)
	if c.Store.DeliveryNote != "" {
		fmt.Fprintf(&b, "_Note: %s_\n\n", c.Store.DeliveryNote)
	}
	fmt.Fprintf(&b, "*👤 Customer:* %s\n", d.Customer.Name)
	fmt.Fprintf(&b, "*📞 Phone:* %s\n", d.Customer.Phone)
	fmt.Fprintf(&b, "*📍 Address:* %s\n\n", d.Customer.Address)
	b.WriteString("*🛒 Order Summary:*\n")

	for _, line := range d.Lines() {
		fmt.Fprintf(&b, "• %s (%s) x%d = %s\n", line.Name, line.Portion, line.Quantity, rupees(line.Amount))
	}

	delivery := "FREE"
	if !d.Pricing.FreeDelivery {
		delivery = rupees(d.Pricing.DeliveryCharge)
	}
	fmt.Fprintf(&b, "\n*🚚 Delivery:* %s", delivery)
	fmt.Fprintf(&b, "\n*💰 Total Payable: %s*", rupees(d.Pricing.Payable))

	if d.Customer.Notes != "" {
		fmt.Fprintf(&b, "\n\n*📝 Notes:* %s", d.Customer.Notes)
	}
	fmt.Fprintf(&b, "\n\n*🏪 Store:* %s", c.Store.Location)

	return b.String()
}
