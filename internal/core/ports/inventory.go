// internal/core/ports/inventory.go
package ports

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/zipos/zipos-be/internal/core/domain"
)

// AdjustStockRequest is a direct ledger mutation (positive or negative delta).
type AdjustStockRequest struct {
	ProductID   string          `json:"product_id"`
	BranchID    string          `json:"branch_id"`
	Delta       decimal.Decimal `json:"delta"`
	Reason      string          `json:"reason"`
	ReferenceID string          `json:"reference_id,omitempty"`
	PerformedBy string          `json:"performed_by"`
}

// ReceiveStockRequest adds stock at a unit cost, feeding the moving average.
type ReceiveStockRequest struct {
	ProductID   string          `json:"product_id"`
	BranchID    string          `json:"branch_id"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitCost    decimal.Decimal `json:"unit_cost"`
	ReferenceID string          `json:"reference_id,omitempty"`
	PerformedBy string          `json:"performed_by"`
}

// RequestAdjustmentRequest opens a pending stock adjustment for approval.
type RequestAdjustmentRequest struct {
	ProductID   string          `json:"product_id"`
	BranchID    string          `json:"branch_id"`
	Delta       decimal.Decimal `json:"delta"`
	Reason      string          `json:"reason"`
	RequestedBy string          `json:"requested_by"`
}

// InventoryRepository persists the stock ledger, its movement audit trail,
// adjustments and low-stock alerts.
type InventoryRepository interface {
	// GetItem returns nil, nil when the (product, branch) row does not exist.
	GetItem(ctx context.Context, q Querier, productID, branchID string) (*domain.InventoryItem, error)
	// GetItemForUpdate locks the row for the remainder of the transaction.
	GetItemForUpdate(ctx context.Context, q Querier, productID, branchID string) (*domain.InventoryItem, error)
	UpsertItem(ctx context.Context, q Querier, item *domain.InventoryItem) error

	InsertMovement(ctx context.Context, q Querier, movement *domain.StockMovement) error
	SumMovements(ctx context.Context, q Querier, productID, branchID string) (decimal.Decimal, error)

	InsertAdjustment(ctx context.Context, q Querier, adjustment *domain.StockAdjustment) error
	GetAdjustmentForUpdate(ctx context.Context, q Querier, id uuid.UUID) (*domain.StockAdjustment, error)
	UpdateAdjustment(ctx context.Context, q Querier, adjustment *domain.StockAdjustment) error

	ListLowStockItems(ctx context.Context, q Querier) ([]domain.InventoryItem, error)
	GetAlert(ctx context.Context, q Querier, productID, branchID string) (*domain.StockAlert, error)
	UpsertAlert(ctx context.Context, q Querier, alert *domain.StockAlert) error
	DeleteAlert(ctx context.Context, q Querier, id uuid.UUID) error
	ListUnacknowledgedAlerts(ctx context.Context, q Querier) ([]domain.StockAlert, error)
	AcknowledgeAlert(ctx context.Context, q Querier, id uuid.UUID) (bool, error)
}

// InventoryService is the transactional stock ledger API.
type InventoryService interface {
	GetItem(ctx context.Context, organizationID, productID, branchID string) (*domain.InventoryItem, error)
	AdjustStock(ctx context.Context, organizationID string, req AdjustStockRequest) (*domain.InventoryItem, error)
	Receive(ctx context.Context, organizationID string, req ReceiveStockRequest) (*domain.InventoryItem, error)
	SetReorderLevel(ctx context.Context, organizationID, productID, branchID string, level decimal.Decimal) error

	RequestAdjustment(ctx context.Context, organizationID string, req RequestAdjustmentRequest) (*domain.StockAdjustment, error)
	// ApproveAdjustment reports false when the adjustment is missing or not
	// Pending.
	ApproveAdjustment(ctx context.Context, organizationID string, adjustmentID uuid.UUID, approvedBy string) (bool, error)
	RejectAdjustment(ctx context.Context, organizationID string, adjustmentID uuid.UUID, rejectedBy string) (bool, error)

	RunStockAlertSweep(ctx context.Context, organizationID string) (int, error)
	ListAlerts(ctx context.Context, organizationID string) ([]domain.StockAlert, error)
	AcknowledgeAlert(ctx context.Context, organizationID string, alertID uuid.UUID) (bool, error)
}
