// internal/core/services/inventory.go
package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/zipos/zipos-be/internal/core/domain"
	"github.com/zipos/zipos-be/internal/core/ports"
)

// InventoryService handles the stock ledger business logic for all tenants.
type InventoryService struct {
	tenants ports.TenantDatabases
	repo    ports.InventoryRepository
	logger  *slog.Logger
}

// Statically assert that *InventoryService implements the InventoryService interface.
var _ ports.InventoryService = (*InventoryService)(nil)

// NewInventoryService creates a new inventory service
func NewInventoryService(tenants ports.TenantDatabases, repo ports.InventoryRepository, logger *slog.Logger) *InventoryService {
	return &InventoryService{
		tenants: tenants,
		repo:    repo,
		logger:  logger.With(slog.String("service", "inventory")),
	}
}

// GetItem returns the ledger row for a (product, branch) pair.
func (s *InventoryService) GetItem(ctx context.Context, organizationID, productID, branchID string) (*domain.InventoryItem, error) {
	db, err := s.tenants.Database(ctx, organizationID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve tenant database: %w", err)
	}

	item, err := s.repo.GetItem(ctx, db, productID, branchID)
	if err != nil {
		return nil, fmt.Errorf("failed to get inventory item: %w", err)
	}
	if item == nil {
		return nil, domain.NotFoundf("inventory item %s/%s", productID, branchID)
	}
	return item, nil
}

// AdjustStock applies a direct delta to the ledger and records the movement.
func (s *InventoryService) AdjustStock(ctx context.Context, organizationID string, req ports.AdjustStockRequest) (*domain.InventoryItem, error) {
	if req.ProductID == "" || req.BranchID == "" {
		return nil, domain.Validationf("product id and branch id are required")
	}
	if req.Delta.IsZero() {
		return nil, domain.Validationf("delta must be non-zero")
	}
	if req.Reason == "" {
		return nil, domain.Validationf("reason is required")
	}

	db, err := s.tenants.Database(ctx, organizationID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve tenant database: %w", err)
	}

	var item *domain.InventoryItem
	err = db.Transaction(ctx, func(tx pgx.Tx) error {
		item, err = s.applyDelta(ctx, tx, req.ProductID, req.BranchID, req.Delta, req.Reason, req.ReferenceID, req.PerformedBy)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "stock adjusted",
		slog.String("product_id", req.ProductID),
		slog.String("branch_id", req.BranchID),
		slog.String("delta", req.Delta.String()))

	return item, nil
}

// Receive adds stock at a unit cost, recomputing the moving-average cost.
func (s *InventoryService) Receive(ctx context.Context, organizationID string, req ports.ReceiveStockRequest) (*domain.InventoryItem, error) {
	if req.ProductID == "" || req.BranchID == "" {
		return nil, domain.Validationf("product id and branch id are required")
	}
	if !req.Quantity.IsPositive() {
		return nil, domain.Validationf("quantity must be positive")
	}
	if req.UnitCost.IsNegative() {
		return nil, domain.Validationf("unit cost must not be negative")
	}

	db, err := s.tenants.Database(ctx, organizationID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve tenant database: %w", err)
	}

	var item *domain.InventoryItem
	err = db.Transaction(ctx, func(tx pgx.Tx) error {
		item, err = s.repo.GetItemForUpdate(ctx, tx, req.ProductID, req.BranchID)
		if err != nil {
			return fmt.Errorf("failed to lock inventory item: %w", err)
		}
		if item == nil {
			item = &domain.InventoryItem{ProductID: req.ProductID, BranchID: req.BranchID}
		}

		item.ApplyReceipt(req.Quantity, req.UnitCost)
		if err := s.repo.UpsertItem(ctx, tx, item); err != nil {
			return fmt.Errorf("failed to save inventory item: %w", err)
		}

		movement := &domain.StockMovement{
			ID:          uuid.New(),
			ProductID:   req.ProductID,
			BranchID:    req.BranchID,
			Delta:       req.Quantity,
			Reason:      "Stock received",
			ReferenceID: req.ReferenceID,
			PerformedBy: req.PerformedBy,
			PerformedAt: time.Now(),
		}
		if err := s.repo.InsertMovement(ctx, tx, movement); err != nil {
			return fmt.Errorf("failed to record stock movement: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "stock received",
		slog.String("product_id", req.ProductID),
		slog.String("branch_id", req.BranchID),
		slog.String("quantity", req.Quantity.String()),
		slog.String("average_cost", item.AverageCost.String()))

	return item, nil
}

// SetReorderLevel updates the low-stock threshold for a (product, branch) pair.
func (s *InventoryService) SetReorderLevel(ctx context.Context, organizationID, productID, branchID string, level decimal.Decimal) error {
	if productID == "" || branchID == "" {
		return domain.Validationf("product id and branch id are required")
	}
	if level.IsNegative() {
		return domain.Validationf("reorder level must not be negative")
	}

	db, err := s.tenants.Database(ctx, organizationID)
	if err != nil {
		return fmt.Errorf("failed to resolve tenant database: %w", err)
	}

	return db.Transaction(ctx, func(tx pgx.Tx) error {
		item, err := s.repo.GetItemForUpdate(ctx, tx, productID, branchID)
		if err != nil {
			return fmt.Errorf("failed to lock inventory item: %w", err)
		}
		if item == nil {
			item = &domain.InventoryItem{ProductID: productID, BranchID: branchID}
		}
		item.ReorderLevel = level
		item.LastUpdated = time.Now()
		if err := s.repo.UpsertItem(ctx, tx, item); err != nil {
			return fmt.Errorf("failed to save inventory item: %w", err)
		}
		return nil
	})
}

// RequestAdjustment opens a pending stock adjustment; the ledger is untouched
// until approval.
func (s *InventoryService) RequestAdjustment(ctx context.Context, organizationID string, req ports.RequestAdjustmentRequest) (*domain.StockAdjustment, error) {
	if req.ProductID == "" || req.BranchID == "" {
		return nil, domain.Validationf("product id and branch id are required")
	}
	if req.Delta.IsZero() {
		return nil, domain.Validationf("delta must be non-zero")
	}
	if req.Reason == "" {
		return nil, domain.Validationf("reason is required")
	}

	db, err := s.tenants.Database(ctx, organizationID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve tenant database: %w", err)
	}

	adjustment := &domain.StockAdjustment{
		ID:          uuid.New(),
		ProductID:   req.ProductID,
		BranchID:    req.BranchID,
		Delta:       req.Delta,
		Reason:      req.Reason,
		Status:      domain.AdjustmentPending,
		RequestedBy: req.RequestedBy,
		RequestedAt: time.Now(),
	}
	if err := s.repo.InsertAdjustment(ctx, db, adjustment); err != nil {
		return nil, fmt.Errorf("failed to create stock adjustment: %w", err)
	}

	s.logger.InfoContext(ctx, "stock adjustment requested",
		slog.String("adjustment_id", adjustment.ID.String()),
		slog.String("product_id", req.ProductID))

	return adjustment, nil
}

// ApproveAdjustment applies a pending adjustment to the ledger exactly once.
// Returns false when the adjustment is missing or not pending.
func (s *InventoryService) ApproveAdjustment(ctx context.Context, organizationID string, adjustmentID uuid.UUID, approvedBy string) (bool, error) {
	db, err := s.tenants.Database(ctx, organizationID)
	if err != nil {
		return false, fmt.Errorf("failed to resolve tenant database: %w", err)
	}

	approved := false
	err = db.Transaction(ctx, func(tx pgx.Tx) error {
		adjustment, err := s.repo.GetAdjustmentForUpdate(ctx, tx, adjustmentID)
		if err != nil {
			return fmt.Errorf("failed to lock stock adjustment: %w", err)
		}
		if adjustment == nil {
			return nil
		}
		if adjustment.Status != domain.AdjustmentPending {
			return nil
		}

		now := time.Now()
		adjustment.Status = domain.AdjustmentApproved
		adjustment.ApprovedBy = approvedBy
		adjustment.ApprovedAt = &now
		if err := s.repo.UpdateAdjustment(ctx, tx, adjustment); err != nil {
			return fmt.Errorf("failed to update stock adjustment: %w", err)
		}

		if _, err := s.applyDelta(ctx, tx, adjustment.ProductID, adjustment.BranchID,
			adjustment.Delta, adjustment.Reason, adjustment.ID.String(), approvedBy); err != nil {
			return err
		}

		approved = true
		return nil
	})
	if err != nil {
		return false, err
	}

	if approved {
		s.logger.InfoContext(ctx, "stock adjustment approved",
			slog.String("adjustment_id", adjustmentID.String()),
			slog.String("approved_by", approvedBy))
	}

	return approved, nil
}

// RejectAdjustment closes a pending adjustment without touching the ledger.
// Returns false when the adjustment is missing or not pending.
func (s *InventoryService) RejectAdjustment(ctx context.Context, organizationID string, adjustmentID uuid.UUID, rejectedBy string) (bool, error) {
	db, err := s.tenants.Database(ctx, organizationID)
	if err != nil {
		return false, fmt.Errorf("failed to resolve tenant database: %w", err)
	}

	rejected := false
	err = db.Transaction(ctx, func(tx pgx.Tx) error {
		adjustment, err := s.repo.GetAdjustmentForUpdate(ctx, tx, adjustmentID)
		if err != nil {
			return fmt.Errorf("failed to lock stock adjustment: %w", err)
		}
		if adjustment == nil {
			return nil
		}
		if adjustment.Status != domain.AdjustmentPending {
			return nil
		}

		now := time.Now()
		adjustment.Status = domain.AdjustmentRejected
		adjustment.ApprovedBy = rejectedBy
		adjustment.ApprovedAt = &now
		if err := s.repo.UpdateAdjustment(ctx, tx, adjustment); err != nil {
			return fmt.Errorf("failed to update stock adjustment: %w", err)
		}

		rejected = true
		return nil
	})
	if err != nil {
		return false, err
	}

	return rejected, nil
}

// RunStockAlertSweep raises alerts for low-stock items and clears
// unacknowledged alerts whose condition no longer holds. Returns the number of
// alerts raised or refreshed.
func (s *InventoryService) RunStockAlertSweep(ctx context.Context, organizationID string) (int, error) {
	db, err := s.tenants.Database(ctx, organizationID)
	if err != nil {
		return 0, fmt.Errorf("failed to resolve tenant database: %w", err)
	}

	lowItems, err := s.repo.ListLowStockItems(ctx, db)
	if err != nil {
		return 0, fmt.Errorf("failed to list low stock items: %w", err)
	}

	raised := 0
	low := make(map[string]bool, len(lowItems))
	for i := range lowItems {
		item := &lowItems[i]
		low[item.ProductID+"/"+item.BranchID] = true

		alert := &domain.StockAlert{
			ID:           uuid.New(),
			ProductID:    item.ProductID,
			BranchID:     item.BranchID,
			CurrentStock: item.CurrentStock,
			ReorderLevel: item.ReorderLevel,
			CreatedAt:    time.Now(),
		}
		if err := s.repo.UpsertAlert(ctx, db, alert); err != nil {
			return raised, fmt.Errorf("failed to upsert stock alert for %s/%s: %w",
				item.ProductID, item.BranchID, err)
		}
		raised++
	}

	// Drop unacknowledged alerts for items that recovered.
	alerts, err := s.repo.ListUnacknowledgedAlerts(ctx, db)
	if err != nil {
		return raised, fmt.Errorf("failed to list stock alerts: %w", err)
	}
	for i := range alerts {
		alert := &alerts[i]
		if low[alert.ProductID+"/"+alert.BranchID] {
			continue
		}
		if err := s.repo.DeleteAlert(ctx, db, alert.ID); err != nil {
			return raised, fmt.Errorf("failed to clear stock alert %s: %w", alert.ID, err)
		}
	}

	s.logger.InfoContext(ctx, "stock alert sweep completed",
		slog.Int("alerts_raised", raised))

	return raised, nil
}

// ListAlerts returns the unacknowledged low-stock alerts.
func (s *InventoryService) ListAlerts(ctx context.Context, organizationID string) ([]domain.StockAlert, error) {
	db, err := s.tenants.Database(ctx, organizationID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve tenant database: %w", err)
	}

	alerts, err := s.repo.ListUnacknowledgedAlerts(ctx, db)
	if err != nil {
		return nil, fmt.Errorf("failed to list stock alerts: %w", err)
	}
	return alerts, nil
}

// AcknowledgeAlert marks an alert acknowledged; the next sweep reopens it if
// the condition persists. Returns false when the alert does not exist.
func (s *InventoryService) AcknowledgeAlert(ctx context.Context, organizationID string, alertID uuid.UUID) (bool, error) {
	db, err := s.tenants.Database(ctx, organizationID)
	if err != nil {
		return false, fmt.Errorf("failed to resolve tenant database: %w", err)
	}

	acknowledged, err := s.repo.AcknowledgeAlert(ctx, db, alertID)
	if err != nil {
		return false, fmt.Errorf("failed to acknowledge stock alert: %w", err)
	}
	return acknowledged, nil
}

// applyDelta mutates the ledger row and writes the paired movement inside the
// caller's transaction.
func (s *InventoryService) applyDelta(ctx context.Context, tx pgx.Tx, productID, branchID string,
	delta decimal.Decimal, reason, referenceID, performedBy string) (*domain.InventoryItem, error) {

	item, err := s.repo.GetItemForUpdate(ctx, tx, productID, branchID)
	if err != nil {
		return nil, fmt.Errorf("failed to lock inventory item: %w", err)
	}
	if item == nil {
		item = &domain.InventoryItem{ProductID: productID, BranchID: branchID}
	}

	item.CurrentStock = item.CurrentStock.Add(delta)
	item.LastUpdated = time.Now()
	if err := s.repo.UpsertItem(ctx, tx, item); err != nil {
		return nil, fmt.Errorf("failed to save inventory item: %w", err)
	}

	movement := &domain.StockMovement{
		ID:          uuid.New(),
		ProductID:   productID,
		BranchID:    branchID,
		Delta:       delta,
		Reason:      reason,
		ReferenceID: referenceID,
		PerformedBy: performedBy,
		PerformedAt: time.Now(),
	}
	if err := s.repo.InsertMovement(ctx, tx, movement); err != nil {
		return nil, fmt.Errorf("failed to record stock movement: %w", err)
	}

	return item, nil
}
