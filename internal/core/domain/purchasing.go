// internal/core/domain/purchasing.go
package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PurchaseOrderStatus is the PO lifecycle state.
type PurchaseOrderStatus string

const (
	PurchaseOrderDraft     PurchaseOrderStatus = "Draft"
	PurchaseOrderSubmitted PurchaseOrderStatus = "Submitted"
	PurchaseOrderApproved  PurchaseOrderStatus = "Approved"
	PurchaseOrderReceiving PurchaseOrderStatus = "Receiving"
	PurchaseOrderClosed    PurchaseOrderStatus = "Closed"
)

// PurchaseOrder drives goods receipt into the inventory ledger.
// Draft → Submitted → Approved → Receiving (repeatable receives) → Closed.
type PurchaseOrder struct {
	ID         uuid.UUID           `json:"id"`
	SupplierID string              `json:"supplier_id"`
	BranchID   string              `json:"branch_id"`
	Status     PurchaseOrderStatus `json:"status"`
	CreatedBy  string              `json:"created_by"`
	CreatedAt  time.Time           `json:"created_at"`
	ApprovedBy string              `json:"approved_by,omitempty"`
	ApprovedAt *time.Time          `json:"approved_at,omitempty"`
}

// CanModifyLines reports whether lines may still be added.
func (po *PurchaseOrder) CanModifyLines() bool {
	return po.Status == PurchaseOrderDraft || po.Status == PurchaseOrderSubmitted
}

// CanReceive reports whether a goods receipt may be posted.
func (po *PurchaseOrder) CanReceive() bool {
	return po.Status == PurchaseOrderApproved || po.Status == PurchaseOrderReceiving
}

// PurchaseOrderLine accumulates QuantityReceived across goods receipts.
type PurchaseOrderLine struct {
	ID               uuid.UUID       `json:"id"`
	PurchaseOrderID  uuid.UUID       `json:"purchase_order_id"`
	ProductID        string          `json:"product_id"`
	QuantityOrdered  decimal.Decimal `json:"quantity_ordered"`
	QuantityReceived decimal.Decimal `json:"quantity_received"`
	UnitCost         decimal.Decimal `json:"unit_cost"`
}

// Outstanding is the quantity still to be received.
func (l *PurchaseOrderLine) Outstanding() decimal.Decimal {
	return l.QuantityOrdered.Sub(l.QuantityReceived)
}

// GoodsReceipt is one receiving event against a purchase order.
type GoodsReceipt struct {
	ID              uuid.UUID `json:"id"`
	PurchaseOrderID uuid.UUID `json:"purchase_order_id"`
	ReceivedBy      string    `json:"received_by"`
	ReceivedAt      time.Time `json:"received_at"`
}

// GoodsReceiptLine records the applied (clamped) quantity per PO line.
type GoodsReceiptLine struct {
	ID                  uuid.UUID       `json:"id"`
	GoodsReceiptID      uuid.UUID       `json:"goods_receipt_id"`
	PurchaseOrderLineID uuid.UUID       `json:"purchase_order_line_id"`
	ProductID           string          `json:"product_id"`
	QuantityReceived    decimal.Decimal `json:"quantity_received"`
	UnitCost            decimal.Decimal `json:"unit_cost"`
}

// PurchaseReturnStatus is the mirror flow's state.
type PurchaseReturnStatus string

const (
	PurchaseReturnSubmitted PurchaseReturnStatus = "Submitted"
	PurchaseReturnApproved  PurchaseReturnStatus = "Approved"
	PurchaseReturnClosed    PurchaseReturnStatus = "Closed"
)

// PurchaseReturn sends goods back to a supplier. Approval deducts stock but
// leaves the moving-average cost untouched (returns don't unwind the average).
type PurchaseReturn struct {
	ID         uuid.UUID            `json:"id"`
	SupplierID string               `json:"supplier_id"`
	BranchID   string               `json:"branch_id"`
	Reason     string               `json:"reason"`
	Status     PurchaseReturnStatus `json:"status"`
	CreatedBy  string               `json:"created_by"`
	CreatedAt  time.Time            `json:"created_at"`
}

// PurchaseReturnLine is one returned product/quantity.
type PurchaseReturnLine struct {
	ID               uuid.UUID       `json:"id"`
	PurchaseReturnID uuid.UUID       `json:"purchase_return_id"`
	ProductID        string          `json:"product_id"`
	Quantity         decimal.Decimal `json:"quantity"`
	UnitCost         decimal.Decimal `json:"unit_cost"`
}
