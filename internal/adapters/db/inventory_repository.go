// internal/adapters/db/inventory_repository.go
package db

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/zipos/zipos-be/internal/core/domain"
	"github.com/zipos/zipos-be/internal/core/ports"
)

// inventoryRepository implements ports.InventoryRepository
type inventoryRepository struct {
	logger *slog.Logger
}

// NewInventoryRepository creates a new inventory repository
func NewInventoryRepository(logger *slog.Logger) ports.InventoryRepository {
	return &inventoryRepository{
		logger: logger.With(slog.String("repository", "inventory")),
	}
}

const inventoryItemColumns = `product_id, branch_id, current_stock, reorder_level, average_cost, last_unit_cost, last_updated`

func scanInventoryItem(row pgx.Row) (*domain.InventoryItem, error) {
	item := &domain.InventoryItem{}
	err := row.Scan(
		&item.ProductID, &item.BranchID, &item.CurrentStock, &item.ReorderLevel,
		&item.AverageCost, &item.LastUnitCost, &item.LastUpdated,
	)
	if err != nil {
		return nil, err
	}
	return item, nil
}

// GetItem retrieves the ledger row for a (product, branch) pair
func (r *inventoryRepository) GetItem(ctx context.Context, q ports.Querier, productID, branchID string) (*domain.InventoryItem, error) {
	query := `
		SELECT ` + inventoryItemColumns + `
		FROM inventory_items
		WHERE product_id = $1 AND branch_id = $2`

	item, err := ScanOne(q.QueryRow(ctx, query, productID, branchID), scanInventoryItem)
	if err != nil {
		return nil, fmt.Errorf("failed to find inventory item: %w", err)
	}
	return item, nil
}

// GetItemForUpdate locks the ledger row until the transaction ends
func (r *inventoryRepository) GetItemForUpdate(ctx context.Context, q ports.Querier, productID, branchID string) (*domain.InventoryItem, error) {
	query := `
		SELECT ` + inventoryItemColumns + `
		FROM inventory_items
		WHERE product_id = $1 AND branch_id = $2
		FOR UPDATE`

	item, err := ScanOne(q.QueryRow(ctx, query, productID, branchID), scanInventoryItem)
	if err != nil {
		return nil, fmt.Errorf("failed to lock inventory item: %w", err)
	}
	return item, nil
}

// UpsertItem writes the ledger row, inserting on first movement
func (r *inventoryRepository) UpsertItem(ctx context.Context, q ports.Querier, item *domain.InventoryItem) error {
	query := `
		INSERT INTO inventory_items (
			product_id, branch_id, current_stock, reorder_level,
			average_cost, last_unit_cost, last_updated
		) VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (product_id, branch_id) DO UPDATE SET
			current_stock = EXCLUDED.current_stock,
			reorder_level = EXCLUDED.reorder_level,
			average_cost = EXCLUDED.average_cost,
			last_unit_cost = EXCLUDED.last_unit_cost,
			last_updated = EXCLUDED.last_updated`

	_, err := q.Exec(ctx, query,
		item.ProductID, item.BranchID, item.CurrentStock, item.ReorderLevel,
		item.AverageCost, item.LastUnitCost, item.LastUpdated,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert inventory item: %w", err)
	}

	r.logger.DebugContext(ctx, "inventory item upserted",
		slog.String("product_id", item.ProductID),
		slog.String("branch_id", item.BranchID))

	return nil
}

// InsertMovement appends one audit row; movements are never updated
func (r *inventoryRepository) InsertMovement(ctx context.Context, q ports.Querier, movement *domain.StockMovement) error {
	query := `
		INSERT INTO stock_movements (
			id, product_id, branch_id, delta, reason,
			reference_id, performed_by, performed_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := q.Exec(ctx, query,
		movement.ID, movement.ProductID, movement.BranchID, movement.Delta,
		movement.Reason, nullString(movement.ReferenceID), nullString(movement.PerformedBy),
		movement.PerformedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert stock movement: %w", err)
	}
	return nil
}

// SumMovements totals the deltas for a (product, branch) pair
func (r *inventoryRepository) SumMovements(ctx context.Context, q ports.Querier, productID, branchID string) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(delta), 0)
		FROM stock_movements
		WHERE product_id = $1 AND branch_id = $2`

	var sum decimal.Decimal
	if err := q.QueryRow(ctx, query, productID, branchID).Scan(&sum); err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum stock movements: %w", err)
	}
	return sum, nil
}

// InsertAdjustment creates a pending stock adjustment
func (r *inventoryRepository) InsertAdjustment(ctx context.Context, q ports.Querier, adjustment *domain.StockAdjustment) error {
	query := `
		INSERT INTO stock_adjustments (
			id, product_id, branch_id, delta, reason,
			status, requested_by, requested_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := q.Exec(ctx, query,
		adjustment.ID, adjustment.ProductID, adjustment.BranchID, adjustment.Delta,
		adjustment.Reason, adjustment.Status, adjustment.RequestedBy, adjustment.RequestedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert stock adjustment: %w", err)
	}
	return nil
}

// GetAdjustmentForUpdate locks the adjustment row until the transaction ends
func (r *inventoryRepository) GetAdjustmentForUpdate(ctx context.Context, q ports.Querier, id uuid.UUID) (*domain.StockAdjustment, error) {
	query := `
		SELECT id, product_id, branch_id, delta, reason, status,
			requested_by, requested_at, approved_by, approved_at
		FROM stock_adjustments
		WHERE id = $1
		FOR UPDATE`

	adj := &domain.StockAdjustment{}
	var approvedBy sql.NullString
	err := q.QueryRow(ctx, query, id).Scan(
		&adj.ID, &adj.ProductID, &adj.BranchID, &adj.Delta, &adj.Reason, &adj.Status,
		&adj.RequestedBy, &adj.RequestedAt, &approvedBy, &adj.ApprovedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to lock stock adjustment: %w", err)
	}
	adj.ApprovedBy = approvedBy.String
	return adj, nil
}

// UpdateAdjustment persists a status transition
func (r *inventoryRepository) UpdateAdjustment(ctx context.Context, q ports.Querier, adjustment *domain.StockAdjustment) error {
	query := `
		UPDATE stock_adjustments
		SET status = $2, approved_by = $3, approved_at = $4
		WHERE id = $1`

	tag, err := q.Exec(ctx, query,
		adjustment.ID, adjustment.Status,
		nullString(adjustment.ApprovedBy), adjustment.ApprovedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update stock adjustment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("stock adjustment not found: %s", adjustment.ID)
	}
	return nil
}

// ListLowStockItems returns ledger rows at or below their reorder level
func (r *inventoryRepository) ListLowStockItems(ctx context.Context, q ports.Querier) ([]domain.InventoryItem, error) {
	query := `
		SELECT ` + inventoryItemColumns + `
		FROM inventory_items
		WHERE reorder_level > 0 AND current_stock <= reorder_level
		ORDER BY product_id, branch_id`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query low stock items: %w", err)
	}
	defer rows.Close()

	var items []domain.InventoryItem
	for rows.Next() {
		var item domain.InventoryItem
		err := rows.Scan(
			&item.ProductID, &item.BranchID, &item.CurrentStock, &item.ReorderLevel,
			&item.AverageCost, &item.LastUnitCost, &item.LastUpdated,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan inventory item: %w", err)
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return items, nil
}

const stockAlertColumns = `id, product_id, branch_id, current_stock, reorder_level, is_acknowledged, acknowledged_at, created_at`

func scanStockAlert(row pgx.Row) (*domain.StockAlert, error) {
	alert := &domain.StockAlert{}
	err := row.Scan(
		&alert.ID, &alert.ProductID, &alert.BranchID, &alert.CurrentStock,
		&alert.ReorderLevel, &alert.IsAcknowledged, &alert.AcknowledgedAt, &alert.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return alert, nil
}

// GetAlert retrieves the alert for a (product, branch) pair
func (r *inventoryRepository) GetAlert(ctx context.Context, q ports.Querier, productID, branchID string) (*domain.StockAlert, error) {
	query := `
		SELECT ` + stockAlertColumns + `
		FROM stock_alerts
		WHERE product_id = $1 AND branch_id = $2`

	alert, err := ScanOne(q.QueryRow(ctx, query, productID, branchID), scanStockAlert)
	if err != nil {
		return nil, fmt.Errorf("failed to find stock alert: %w", err)
	}
	return alert, nil
}

// UpsertAlert writes the alert row for a (product, branch) pair. A conflicting
// row is refreshed and reopened: the sweep observing a low-stock condition
// clears any earlier acknowledgement.
func (r *inventoryRepository) UpsertAlert(ctx context.Context, q ports.Querier, alert *domain.StockAlert) error {
	query := `
		INSERT INTO stock_alerts (
			id, product_id, branch_id, current_stock, reorder_level,
			is_acknowledged, acknowledged_at, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (product_id, branch_id) DO UPDATE SET
			current_stock = EXCLUDED.current_stock,
			reorder_level = EXCLUDED.reorder_level,
			is_acknowledged = FALSE,
			acknowledged_at = NULL,
			created_at = EXCLUDED.created_at`

	_, err := q.Exec(ctx, query,
		alert.ID, alert.ProductID, alert.BranchID, alert.CurrentStock,
		alert.ReorderLevel, alert.IsAcknowledged, alert.AcknowledgedAt, alert.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert stock alert: %w", err)
	}
	return nil
}

// DeleteAlert removes an alert whose condition has cleared
func (r *inventoryRepository) DeleteAlert(ctx context.Context, q ports.Querier, id uuid.UUID) error {
	_, err := q.Exec(ctx, `DELETE FROM stock_alerts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete stock alert: %w", err)
	}
	return nil
}

// ListUnacknowledgedAlerts returns open alerts ordered oldest first
func (r *inventoryRepository) ListUnacknowledgedAlerts(ctx context.Context, q ports.Querier) ([]domain.StockAlert, error) {
	query := `
		SELECT ` + stockAlertColumns + `
		FROM stock_alerts
		WHERE is_acknowledged = FALSE
		ORDER BY created_at ASC`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query stock alerts: %w", err)
	}
	defer rows.Close()

	var alerts []domain.StockAlert
	for rows.Next() {
		var alert domain.StockAlert
		err := rows.Scan(
			&alert.ID, &alert.ProductID, &alert.BranchID, &alert.CurrentStock,
			&alert.ReorderLevel, &alert.IsAcknowledged, &alert.AcknowledgedAt, &alert.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan stock alert: %w", err)
		}
		alerts = append(alerts, alert)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return alerts, nil
}

// AcknowledgeAlert flags an alert as seen; reports false when already
// acknowledged or missing
func (r *inventoryRepository) AcknowledgeAlert(ctx context.Context, q ports.Querier, id uuid.UUID) (bool, error) {
	query := `
		UPDATE stock_alerts
		SET is_acknowledged = TRUE, acknowledged_at = $2
		WHERE id = $1 AND is_acknowledged = FALSE`

	tag, err := q.Exec(ctx, query, id, time.Now())
	if err != nil {
		return false, fmt.Errorf("failed to acknowledge stock alert: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// nullString maps "" to SQL NULL for optional text columns
func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
