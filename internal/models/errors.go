package models

import (
	"errors"
	"fmt"
)

// Validation errors returned by order calculation and status transition
// checks. Every one of them is a caller-input defect, not a transient
// fault, and maps to a 400 response at the HTTP layer.
var (
	ErrInvalidQuantity  = errors.New("quantity cannot be negative")
	ErrInvalidUnitPrice = errors.New("unit price cannot be negative")
	ErrInvalidItems     = errors.New("items must be a list of order items")
	ErrEmptyOrder       = errors.New("order must contain at least one item")
	ErrInvalidTaxRate   = errors.New("tax rate cannot be negative")
	ErrInvalidItem      = errors.New("all items must be valid order items")
	ErrUnknownStatus    = errors.New("unknown order status")
)

// UnknownStatusError reports a status value outside the fixed
// enumeration. Param names the offending argument ("current_status" or
// "new_status") and Value holds the normalized input.
type UnknownStatusError struct {
	Param string
	Value string
}

func (e *UnknownStatusError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Param, e.Value)
}

func (e *UnknownStatusError) Unwrap() error { return ErrUnknownStatus }

// IsValidationError reports whether err belongs to the validation
// taxonomy above.
func IsValidationError(err error) bool {
	for _, target := range []error{
		ErrInvalidQuantity,
		ErrInvalidUnitPrice,
		ErrInvalidItems,
		ErrEmptyOrder,
		ErrInvalidTaxRate,
		ErrInvalidItem,
		ErrUnknownStatus,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
