// internal/core/ports/purchasing.go
package ports

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/zipos/zipos-be/internal/core/domain"
)

// PurchaseOrderLineRequest adds one product line to a draft or submitted PO.
type PurchaseOrderLineRequest struct {
	ProductID       string          `json:"product_id"`
	QuantityOrdered decimal.Decimal `json:"quantity_ordered"`
	UnitCost        decimal.Decimal `json:"unit_cost"`
}

// ReceiveLineRequest is one requested receipt quantity against a PO line.
// Applied quantities are clamped to the line's outstanding amount.
type ReceiveLineRequest struct {
	PurchaseOrderLineID uuid.UUID       `json:"purchase_order_line_id"`
	Quantity            decimal.Decimal `json:"quantity"`
}

// PurchaseReturnLineRequest is one product/quantity being sent back.
type PurchaseReturnLineRequest struct {
	ProductID string          `json:"product_id"`
	Quantity  decimal.Decimal `json:"quantity"`
	UnitCost  decimal.Decimal `json:"unit_cost"`
}

// PurchasingRepository persists purchase orders, goods receipts and returns.
type PurchasingRepository interface {
	InsertOrder(ctx context.Context, q Querier, order *domain.PurchaseOrder) error
	GetOrder(ctx context.Context, q Querier, id uuid.UUID) (*domain.PurchaseOrder, error)
	GetOrderForUpdate(ctx context.Context, q Querier, id uuid.UUID) (*domain.PurchaseOrder, error)
	UpdateOrder(ctx context.Context, q Querier, order *domain.PurchaseOrder) error
	ListOrders(ctx context.Context, q Querier, filter PurchaseOrderFilter) ([]domain.PurchaseOrder, error)

	InsertOrderLine(ctx context.Context, q Querier, line *domain.PurchaseOrderLine) error
	GetOrderLine(ctx context.Context, q Querier, id uuid.UUID) (*domain.PurchaseOrderLine, error)
	ListOrderLines(ctx context.Context, q Querier, orderID uuid.UUID) ([]domain.PurchaseOrderLine, error)
	UpdateOrderLineReceived(ctx context.Context, q Querier, line *domain.PurchaseOrderLine) error

	InsertReceipt(ctx context.Context, q Querier, receipt *domain.GoodsReceipt) error
	InsertReceiptLine(ctx context.Context, q Querier, line *domain.GoodsReceiptLine) error
	ListReceipts(ctx context.Context, q Querier, orderID uuid.UUID) ([]domain.GoodsReceipt, error)
	ListReceiptLines(ctx context.Context, q Querier, receiptID uuid.UUID) ([]domain.GoodsReceiptLine, error)

	InsertReturn(ctx context.Context, q Querier, ret *domain.PurchaseReturn) error
	InsertReturnLine(ctx context.Context, q Querier, line *domain.PurchaseReturnLine) error
	GetReturnForUpdate(ctx context.Context, q Querier, id uuid.UUID) (*domain.PurchaseReturn, error)
	ListReturnLines(ctx context.Context, q Querier, returnID uuid.UUID) ([]domain.PurchaseReturnLine, error)
	UpdateReturn(ctx context.Context, q Querier, ret *domain.PurchaseReturn) error
}

// PurchaseOrderFilter narrows ListOrders; zero values are ignored.
type PurchaseOrderFilter struct {
	SupplierID string                     `json:"supplier_id,omitempty"`
	BranchID   string                     `json:"branch_id,omitempty"`
	Status     domain.PurchaseOrderStatus `json:"status,omitempty"`
	Limit      int                        `json:"limit,omitempty"`
	Offset     int                        `json:"offset,omitempty"`
}

// PurchasingService is the purchase order, receiving and return API.
type PurchasingService interface {
	CreateOrder(ctx context.Context, organizationID, supplierID, branchID, createdBy string) (*domain.PurchaseOrder, error)
	AddOrderLine(ctx context.Context, organizationID string, orderID uuid.UUID, req PurchaseOrderLineRequest) (*domain.PurchaseOrderLine, error)
	SubmitOrder(ctx context.Context, organizationID string, orderID uuid.UUID) (bool, error)
	ApproveOrder(ctx context.Context, organizationID string, orderID uuid.UUID, approvedBy string) (bool, error)
	GetOrder(ctx context.Context, organizationID string, orderID uuid.UUID) (*domain.PurchaseOrder, []domain.PurchaseOrderLine, error)
	ListOrders(ctx context.Context, organizationID string, filter PurchaseOrderFilter) ([]domain.PurchaseOrder, error)

	// ReceiveGoods posts one receipt. Quantities beyond a line's outstanding
	// amount are clamped; the order stays in Receiving until closed.
	ReceiveGoods(ctx context.Context, organizationID string, orderID uuid.UUID, lines []ReceiveLineRequest, receivedBy string) (*domain.GoodsReceipt, error)

	// CloseOrder closes an order whose lines are all fully received. Reports
	// false when the order still has outstanding lines or is already closed.
	CloseOrder(ctx context.Context, organizationID string, orderID uuid.UUID) (bool, error)

	CreateReturn(ctx context.Context, organizationID, supplierID, branchID, reason, createdBy string, lines []PurchaseReturnLineRequest) (*domain.PurchaseReturn, error)
	// ApproveReturn deducts the returned stock without touching average cost.
	ApproveReturn(ctx context.Context, organizationID string, returnID uuid.UUID, approvedBy string) (bool, error)
}
