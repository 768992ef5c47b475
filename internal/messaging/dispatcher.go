// Package messaging hands composed orders to whoever has to act on them.
package messaging

import (
	"context"
	"errors"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/mmynk/urbanthek/internal/models"
)

// Outbound is a submitted order ready to be sent.
type Outbound struct {
	BillNumber   int                 `json:"bill_no"`
	CustomerName string              `json:"customer_name"`
	Payable      decimal.Decimal     `json:"payable"`
	Items        models.CartSnapshot `json:"items"`

	// Text is the chat message; ShareURL opens a chat pre-filled with it.
	Text     string `json:"text"`
	ShareURL string `json:"share_url"`
}

// Dispatcher sends an outbound order to an external target.
type Dispatcher interface {
	Dispatch(ctx context.Context, msg Outbound) error
}

// LogDispatcher records the share link. The customer's client opens the
// link itself, so nothing is sent from here.
type LogDispatcher struct {
	Logger *slog.Logger
}

// Dispatch logs the order and its share link.
func (d LogDispatcher) Dispatch(ctx context.Context, msg Outbound) error {
	logger := d.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger.InfoContext(ctx, "Order ready to share",
		"bill_no", msg.BillNumber,
		"customer", msg.CustomerName,
		"payable", msg.Payable.String(),
		"share_url", msg.ShareURL,
	)
	return nil
}

// Multi sends to every dispatcher in turn and joins their errors.
// One failing target does not stop the others.
func Multi(dispatchers ...Dispatcher) Dispatcher {
	return multi(dispatchers)
}

type multi []Dispatcher

func (m multi) Dispatch(ctx context.Context, msg Outbound) error {
	var errs []error
	for _, d := range m {
		if err := d.Dispatch(ctx, msg); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
