package models

// CustomerDetails holds the delivery contact details for an order.
// They are remembered across sessions and only checked at submission time.
type CustomerDetails struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	Notes   string `json:"notes,omitempty"`
}

// FirstBillNumber is where bill numbering starts when nothing has been persisted.
const FirstBillNumber = 1

// Profile is the persisted per-device state: customer details and the
// running bill number.
type Profile struct {
	Customer CustomerDetails

	// BillNumber is the number the next receipt will carry.
	// It only ever increases, by one per completed checkout.
	BillNumber int
}

// NewProfile returns an empty profile starting at FirstBillNumber.
func NewProfile() *Profile {
	return &Profile{BillNumber: FirstBillNumber}
}
