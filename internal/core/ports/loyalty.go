// internal/core/ports/loyalty.go
package ports

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LoyaltyRepository persists accrual markers and account balances.
type LoyaltyRepository interface {
	// RecordAccrual inserts the per-sale accrual marker. Returns false when
	// the sale was already credited.
	RecordAccrual(ctx context.Context, q Querier, saleID uuid.UUID, customerID string, points decimal.Decimal) (bool, error)
	CreditAccount(ctx context.Context, q Querier, customerID string, points decimal.Decimal) error
}
