package models

import "github.com/shopspring/decimal"

// Order is the record handed to the order sink after a successful checkout.
type Order struct {
	// ID is the unique identifier for the order (UUID format).
	// The store assigns it when empty.
	ID string `json:"id,omitempty"`

	// BillNumber is the receipt number printed for this order.
	BillNumber int `json:"bill_no"`

	// CustomerName is the name the order was placed under.
	CustomerName string `json:"customer_name"`

	// Total is the final payable amount, delivery included.
	Total decimal.Decimal `json:"total_amount"`

	// Items is the full cart at the moment of checkout.
	Items CartSnapshot `json:"items"`

	// CreatedAt is the Unix timestamp when the order was recorded.
	CreatedAt int64 `json:"created_at"`
}
