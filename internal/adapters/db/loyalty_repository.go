// internal/adapters/db/loyalty_repository.go
package db

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/zipos/zipos-be/internal/core/ports"
)

// loyaltyRepository implements ports.LoyaltyRepository
type loyaltyRepository struct {
	logger *slog.Logger
}

// NewLoyaltyRepository creates a new loyalty repository
func NewLoyaltyRepository(logger *slog.Logger) ports.LoyaltyRepository {
	return &loyaltyRepository{
		logger: logger.With(slog.String("repository", "loyalty")),
	}
}

// RecordAccrual inserts the accrual marker, keyed by sale id so a retried
// task cannot credit the same sale twice
func (r *loyaltyRepository) RecordAccrual(ctx context.Context, q ports.Querier, saleID uuid.UUID, customerID string, points decimal.Decimal) (bool, error) {
	query := `
		INSERT INTO loyalty_accruals (sale_id, customer_id, points, created_at)
		VALUES ($1, $2, $3, NOW())
		ON CONFLICT (sale_id) DO NOTHING`

	tag, err := q.Exec(ctx, query, saleID, customerID, points)
	if err != nil {
		return false, fmt.Errorf("failed to record loyalty accrual: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// CreditAccount adds points to the customer's balance, creating the account
// on first accrual
func (r *loyaltyRepository) CreditAccount(ctx context.Context, q ports.Querier, customerID string, points decimal.Decimal) error {
	query := `
		INSERT INTO loyalty_accounts (customer_id, points, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (customer_id) DO UPDATE SET
			points = loyalty_accounts.points + EXCLUDED.points,
			updated_at = NOW()`

	_, err := q.Exec(ctx, query, customerID, points)
	if err != nil {
		return fmt.Errorf("failed to update loyalty account: %w", err)
	}
	return nil
}
