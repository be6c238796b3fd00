// internal/workers/loyalty_processor.go
package workers

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/hibiken/asynq"
	"github.com/jackc/pgx/v5"

	"github.com/zipos/zipos-be/internal/core/ports"
	"github.com/zipos/zipos-be/internal/core/services"
)

// LoyaltyProcessor accrues loyalty points after checkout. Accrual is
// deliberately outside the checkout transaction; the per-sale marker and the
// account credit commit together, so a failed attempt leaves no marker and a
// retry re-runs the whole accrual.
type LoyaltyProcessor struct {
	tenants ports.TenantDatabases
	repo    ports.LoyaltyRepository
	logger  *slog.Logger
}

// NewLoyaltyProcessor creates a new loyalty processor
func NewLoyaltyProcessor(tenants ports.TenantDatabases, repo ports.LoyaltyRepository, logger *slog.Logger) *LoyaltyProcessor {
	return &LoyaltyProcessor{
		tenants: tenants,
		repo:    repo,
		logger:  logger.With(slog.String("processor", "loyalty")),
	}
}

// ProcessAccrual credits one point per whole currency unit spent. A sale that
// was already credited is skipped.
func (p *LoyaltyProcessor) ProcessAccrual(ctx context.Context, t *asynq.Task) error {
	var payload services.LoyaltyAccrualPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return fmt.Errorf("failed to unmarshal payload: %w", err)
	}
	if payload.OrganizationID == "" || payload.CustomerID == "" {
		return fmt.Errorf("organization_id and customer_id are required")
	}

	db, err := p.tenants.Database(ctx, payload.OrganizationID)
	if err != nil {
		return fmt.Errorf("failed to resolve tenant database: %w", err)
	}

	points := payload.TotalAmount.Floor()

	credited := false
	err = db.Transaction(ctx, func(tx pgx.Tx) error {
		inserted, err := p.repo.RecordAccrual(ctx, tx, payload.SaleID, payload.CustomerID, points)
		if err != nil {
			return err
		}
		if !inserted {
			return nil
		}
		if err := p.repo.CreditAccount(ctx, tx, payload.CustomerID, points); err != nil {
			return err
		}
		credited = true
		return nil
	})
	if err != nil {
		return err
	}

	if !credited {
		p.logger.DebugContext(ctx, "loyalty accrual already recorded",
			slog.String("sale_id", payload.SaleID.String()))
		return nil
	}

	p.logger.InfoContext(ctx, "loyalty points accrued",
		slog.String("customer_id", payload.CustomerID),
		slog.String("sale_id", payload.SaleID.String()),
		slog.String("points", points.String()))

	return nil
}
