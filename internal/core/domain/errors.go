// internal/core/domain/errors.go
package domain

import (
	"errors"
	"fmt"
)

// Error taxonomy for the POS core. Callers branch on these with errors.Is;
// storage-engine error text must never leak past the adapters.
var (
	// ErrNotFound signals a missing entity (cart, sale, PO, refund, tenant...).
	ErrNotFound = errors.New("not found")

	// ErrInvalidState signals an operation that is not legal in the entity's
	// current status, e.g. approving a non-pending adjustment.
	ErrInvalidState = errors.New("invalid state")

	// ErrValidation signals rejected input.
	ErrValidation = errors.New("validation failed")

	// ErrPaymentMismatch signals that tendered payments do not sum exactly to
	// the sale total.
	ErrPaymentMismatch = errors.New("payment mismatch")

	// ErrConfiguration signals that no connection could be resolved for a tenant.
	ErrConfiguration = errors.New("configuration error")

	// ErrDuplicate signals a uniqueness violation, e.g. a currency code collision.
	ErrDuplicate = errors.New("duplicate")
)

// NotFoundf wraps ErrNotFound with a formatted message.
func NotFoundf(format string, args ...any) error {
	return fmt.Errorf(format+": %w", append(args, ErrNotFound)...)
}

// InvalidStatef wraps ErrInvalidState with a formatted message.
func InvalidStatef(format string, args ...any) error {
	return fmt.Errorf(format+": %w", append(args, ErrInvalidState)...)
}

// Validationf wraps ErrValidation with a formatted message.
func Validationf(format string, args ...any) error {
	return fmt.Errorf(format+": %w", append(args, ErrValidation)...)
}

// Duplicatef wraps ErrDuplicate with a formatted message.
func Duplicatef(format string, args ...any) error {
	return fmt.Errorf(format+": %w", append(args, ErrDuplicate)...)
}
