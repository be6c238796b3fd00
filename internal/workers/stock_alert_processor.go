// internal/workers/stock_alert_processor.go
package workers

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/hibiken/asynq"

	"github.com/zipos/zipos-be/internal/core/ports"
	"github.com/zipos/zipos-be/internal/core/services"
)

// Task type names handled by the worker.
const (
	TypeStockAlertSweep = services.TaskStockAlertSweep
	TypeTenantMigration = services.TaskTenantMigration
	TypeLoyaltyAccrual  = services.TaskLoyaltyAccrual
)

// StockAlertSweepPayload selects the tenant to sweep.
type StockAlertSweepPayload struct {
	OrganizationID string `json:"organization_id"`
}

// StockAlertProcessor runs the periodic low-stock sweep per tenant.
type StockAlertProcessor struct {
	service ports.InventoryService
	logger  *slog.Logger
}

// NewStockAlertProcessor creates a new stock alert processor
func NewStockAlertProcessor(service ports.InventoryService, logger *slog.Logger) *StockAlertProcessor {
	return &StockAlertProcessor{
		service: service,
		logger:  logger.With(slog.String("processor", "stock_alert")),
	}
}

// ProcessSweep raises and clears low-stock alerts for one tenant.
func (p *StockAlertProcessor) ProcessSweep(ctx context.Context, t *asynq.Task) error {
	var payload StockAlertSweepPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return fmt.Errorf("failed to unmarshal payload: %w", err)
	}
	if payload.OrganizationID == "" {
		return fmt.Errorf("organization_id is required")
	}

	p.logger.InfoContext(ctx, "running stock alert sweep",
		slog.String("organization_id", payload.OrganizationID))

	raised, err := p.service.RunStockAlertSweep(ctx, payload.OrganizationID)
	if err != nil {
		return fmt.Errorf("stock alert sweep failed for %s: %w", payload.OrganizationID, err)
	}

	p.logger.InfoContext(ctx, "stock alert sweep completed",
		slog.String("organization_id", payload.OrganizationID),
		slog.Int("alerts_raised", raised))

	return nil
}
