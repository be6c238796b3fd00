// internal/core/ports/collaborators.go
package ports

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/zipos/zipos-be/internal/core/domain"
)

// TaxCalculator computes the tax for a cart about to be checked out.
// Implementations see the fully discounted line totals.
type TaxCalculator interface {
	CalculateTax(ctx context.Context, branchID string, items []domain.CartItem) (decimal.Decimal, error)
}

// PromotionEngine computes per-line discounts for a cart. The engine returns
// absolute discount amounts keyed by cart item id; lines it does not mention
// keep their current discount.
type PromotionEngine interface {
	ApplyPromotions(ctx context.Context, cart *domain.Cart, items []domain.CartItem, promoCode, customerTier string) (map[string]decimal.Decimal, error)
}

// JobDispatcher enqueues background work. Operation names are task type
// strings; payloads are JSON-marshaled.
type JobDispatcher interface {
	Enqueue(ctx context.Context, operation string, payload interface{}) error
	Schedule(ctx context.Context, operation string, payload interface{}, delay time.Duration) error
	Recurring(operation string, payload interface{}, cronSpec string) (string, error)
	Delete(entryID string) error
}
