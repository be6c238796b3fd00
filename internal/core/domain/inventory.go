// internal/core/domain/inventory.go
package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// InventoryItem is the per (product, branch) stock ledger row. Quantities are
// decimals because several verticals (produce, fabric) sell fractional units.
type InventoryItem struct {
	ProductID    string          `json:"product_id"`
	BranchID     string          `json:"branch_id"`
	CurrentStock decimal.Decimal `json:"current_stock"`
	ReorderLevel decimal.Decimal `json:"reorder_level"`
	AverageCost  decimal.Decimal `json:"average_cost"`
	LastUnitCost decimal.Decimal `json:"last_unit_cost"`
	LastUpdated  time.Time       `json:"last_updated"`
}

// avgCostScale matches the precision the ledger stores for moving-average cost.
const avgCostScale = 4

// ApplyReceipt increments stock by quantity and recomputes the weighted
// moving-average cost. The average is only recomputed when the resulting
// quantity is positive; LastUnitCost always tracks the incoming cost.
// Deductions never touch the average (cost basis is fixed at receipt time).
func (i *InventoryItem) ApplyReceipt(quantity, unitCost decimal.Decimal) {
	newQty := i.CurrentStock.Add(quantity)
	if newQty.IsPositive() {
		existing := i.AverageCost.Mul(i.CurrentStock)
		incoming := unitCost.Mul(quantity)
		i.AverageCost = existing.Add(incoming).Div(newQty).Round(avgCostScale)
	}
	i.LastUnitCost = unitCost
	i.CurrentStock = newQty
	i.LastUpdated = time.Now()
}

// IsLowStock reports whether the item should raise a stock alert.
func (i *InventoryItem) IsLowStock() bool {
	return i.ReorderLevel.IsPositive() && i.CurrentStock.LessThanOrEqual(i.ReorderLevel)
}

// StockMovement is an append-only audit row written alongside every ledger
// mutation. Movements are never updated or deleted; summing the deltas for a
// (product, branch) pair must reproduce the item's current stock.
type StockMovement struct {
	ID          uuid.UUID       `json:"id"`
	ProductID   string          `json:"product_id"`
	BranchID    string          `json:"branch_id"`
	Delta       decimal.Decimal `json:"delta"`
	Reason      string          `json:"reason"`
	ReferenceID string          `json:"reference_id,omitempty"`
	PerformedBy string          `json:"performed_by,omitempty"`
	PerformedAt time.Time       `json:"performed_at"`
}

// AdjustmentStatus is the request/approve workflow state of a StockAdjustment.
type AdjustmentStatus string

const (
	AdjustmentPending  AdjustmentStatus = "Pending"
	AdjustmentApproved AdjustmentStatus = "Approved"
	AdjustmentRejected AdjustmentStatus = "Rejected"
)

// StockAdjustment is a requested stock correction. Only the Pending→Approved
// transition mutates the ledger, and it does so exactly once.
type StockAdjustment struct {
	ID          uuid.UUID        `json:"id"`
	ProductID   string           `json:"product_id"`
	BranchID    string           `json:"branch_id"`
	Delta       decimal.Decimal  `json:"delta"`
	Reason      string           `json:"reason"`
	Status      AdjustmentStatus `json:"status"`
	RequestedBy string           `json:"requested_by"`
	RequestedAt time.Time        `json:"requested_at"`
	ApprovedBy  string           `json:"approved_by,omitempty"`
	ApprovedAt  *time.Time       `json:"approved_at,omitempty"`
}

// StockAlert is the low-stock flag maintained by the periodic sweep, one per
// (product, branch). Acknowledging hides an alert; the next sweep that still
// sees the condition reopens it.
type StockAlert struct {
	ID             uuid.UUID       `json:"id"`
	ProductID      string          `json:"product_id"`
	BranchID       string          `json:"branch_id"`
	CurrentStock   decimal.Decimal `json:"current_stock"`
	ReorderLevel   decimal.Decimal `json:"reorder_level"`
	IsAcknowledged bool            `json:"is_acknowledged"`
	AcknowledgedAt *time.Time      `json:"acknowledged_at,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
}
