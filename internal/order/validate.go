package order

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/mmynk/urbanthek/internal/models"
	"github.com/mmynk/urbanthek/internal/pricing"
)

// PhoneLength is the exact number of characters a phone number must have.
const PhoneLength = 10

// ErrBelowMinimum marks a cart whose total is under the minimum order.
var ErrBelowMinimum = errors.New("order is below the minimum for delivery")

// ValidationError is a failed submission check. Message is meant for the customer.
type ValidationError struct {
	Field   string
	Message string
	err     error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func (e *ValidationError) Unwrap() error {
	return e.err
}

// Validate runs the submission checks in order: name, phone, address and
// minimum order. It returns the first failure.
func Validate(details models.CustomerDetails, result pricing.Result) error {
	if strings.TrimSpace(details.Name) == "" {
		return &ValidationError{Field: "name", Message: "Please enter your name"}
	}
	if utf8.RuneCountInString(details.Phone) != PhoneLength {
		return &ValidationError{
			Field:   "phone",
			Message: fmt.Sprintf("Please enter a %d-digit phone number", PhoneLength),
		}
	}
	if strings.TrimSpace(details.Address) == "" {
		return &ValidationError{Field: "address", Message: "Please enter your delivery address"}
	}
	if !result.CanOrder {
		return &ValidationError{
			Field:   "total",
			Message: fmt.Sprintf("Add %s more to order", rupees(result.ShortOfMinimum())),
			err:     ErrBelowMinimum,
		}
	}
	return nil
}
