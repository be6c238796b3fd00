// internal/core/domain/sales.go
package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// moneyScale is the precision used for derived money amounts (discount shares).
const moneyScale = 4

// Cart is the mutable pre-sale accumulator. It is single-use: checkout deletes
// it together with its items.
type Cart struct {
	ID          uuid.UUID       `json:"id"`
	BranchID    string          `json:"branch_id"`
	UserID      string          `json:"user_id"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// CartItem is one line of a cart. TotalAmount is (unitPrice × quantity) − discount.
type CartItem struct {
	ID             uuid.UUID       `json:"id"`
	CartID         uuid.UUID       `json:"cart_id"`
	ProductID      string          `json:"product_id"`
	Name           string          `json:"name"`
	Quantity       decimal.Decimal `json:"quantity"`
	UnitPrice      decimal.Decimal `json:"unit_price"`
	DiscountAmount decimal.Decimal `json:"discount_amount"`
	TotalAmount    decimal.Decimal `json:"total_amount"`
}

// ComputeTotal recalculates the line total from price, quantity and discount.
func (ci *CartItem) ComputeTotal() {
	ci.TotalAmount = ci.UnitPrice.Mul(ci.Quantity).Sub(ci.DiscountAmount)
}

// SaleStatus is the lifecycle state of a completed sale.
type SaleStatus string

const (
	SaleCompleted SaleStatus = "Completed"
	SaleRefunded  SaleStatus = "Refunded"
	SaleVoided    SaleStatus = "Voided"
)

// Sale is the durable record of a completed transaction. It is immutable
// after creation except for the status flip to Refunded.
type Sale struct {
	ID              uuid.UUID       `json:"id"`
	BranchID        string          `json:"branch_id"`
	CustomerID      string          `json:"customer_id,omitempty"`
	UserID          string          `json:"user_id"`
	TransactionDate time.Time       `json:"transaction_date"`
	SubTotal        decimal.Decimal `json:"sub_total"`
	DiscountAmount  decimal.Decimal `json:"discount_amount"`
	TaxAmount       decimal.Decimal `json:"tax_amount"`
	TotalAmount     decimal.Decimal `json:"total_amount"`
	Status          SaleStatus      `json:"status"`
}

// SaleItem is a point-in-time snapshot of a cart line. Later product changes
// must not retroactively alter historical sales.
type SaleItem struct {
	ID             uuid.UUID       `json:"id"`
	SaleID         uuid.UUID       `json:"sale_id"`
	ProductID      string          `json:"product_id"`
	Name           string          `json:"name"`
	Quantity       decimal.Decimal `json:"quantity"`
	UnitPrice      decimal.Decimal `json:"unit_price"`
	DiscountAmount decimal.Decimal `json:"discount_amount"`
	TotalAmount    decimal.Decimal `json:"total_amount"`
}

// PaymentStatus is the settlement state of a payment row.
type PaymentStatus string

const (
	PaymentCaptured PaymentStatus = "Captured"
	PaymentVoided   PaymentStatus = "Voided"
	PaymentRefunded PaymentStatus = "Refunded"
)

// Payment is one tender against a sale. The captured payments of a sale sum
// exactly to its total; the checkout transaction enforces this.
type Payment struct {
	ID        uuid.UUID       `json:"id"`
	SaleID    uuid.UUID       `json:"sale_id"`
	Method    string          `json:"method"`
	Amount    decimal.Decimal `json:"amount"`
	Reference string          `json:"reference,omitempty"`
	Status    PaymentStatus   `json:"status"`
	CreatedAt time.Time       `json:"created_at"`
}

// RefundStatus is the approval state of a refund request.
type RefundStatus string

const (
	RefundPending  RefundStatus = "Pending"
	RefundApproved RefundStatus = "Approved"
	RefundRejected RefundStatus = "Rejected"
)

// Refund is a request to return part or all of a sale. Restocking is deferred
// until approval.
type Refund struct {
	ID          uuid.UUID       `json:"id"`
	SaleID      uuid.UUID       `json:"sale_id"`
	Reason      string          `json:"reason"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	Status      RefundStatus    `json:"status"`
	RequestedBy string          `json:"requested_by"`
	RequestedAt time.Time       `json:"requested_at"`
	ResolvedBy  string          `json:"resolved_by,omitempty"`
	ResolvedAt  *time.Time      `json:"resolved_at,omitempty"`
}

// RefundItem references a SaleItem with the quantity being returned.
type RefundItem struct {
	ID             uuid.UUID       `json:"id"`
	RefundID       uuid.UUID       `json:"refund_id"`
	SaleItemID     uuid.UUID       `json:"sale_item_id"`
	ProductID      string          `json:"product_id"`
	Quantity       decimal.Decimal `json:"quantity"`
	UnitPrice      decimal.Decimal `json:"unit_price"`
	DiscountAmount decimal.Decimal `json:"discount_amount"`
	TotalAmount    decimal.Decimal `json:"total_amount"`
	Restock        bool            `json:"restock"`
}

// ProportionalDiscount computes the slice of a sale item's discount that a
// partial refund carries: originalDiscount × (qty / originalQty).
func ProportionalDiscount(originalDiscount, qty, originalQty decimal.Decimal) decimal.Decimal {
	if originalQty.IsZero() {
		return decimal.Zero
	}
	return originalDiscount.Mul(qty).Div(originalQty).Round(moneyScale)
}

// Receipt is the printable projection of a completed sale.
type Receipt struct {
	SaleID          uuid.UUID       `json:"sale_id"`
	BranchID        string          `json:"branch_id"`
	TransactionDate time.Time       `json:"transaction_date"`
	Lines           []ReceiptLine   `json:"lines"`
	SubTotal        decimal.Decimal `json:"sub_total"`
	DiscountAmount  decimal.Decimal `json:"discount_amount"`
	TaxAmount       decimal.Decimal `json:"tax_amount"`
	TotalAmount     decimal.Decimal `json:"total_amount"`
	Payments        []ReceiptTender `json:"payments"`
}

// ReceiptLine is one printed line.
type ReceiptLine struct {
	Name      string          `json:"name"`
	Quantity  decimal.Decimal `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Discount  decimal.Decimal `json:"discount"`
	Total     decimal.Decimal `json:"total"`
}

// ReceiptTender is one printed payment line.
type ReceiptTender struct {
	Method string          `json:"method"`
	Amount decimal.Decimal `json:"amount"`
}

// BuildReceipt assembles a Receipt from a sale snapshot.
func BuildReceipt(sale *Sale, items []SaleItem, payments []Payment) *Receipt {
	r := &Receipt{
		SaleID:          sale.ID,
		BranchID:        sale.BranchID,
		TransactionDate: sale.TransactionDate,
		SubTotal:        sale.SubTotal,
		DiscountAmount:  sale.DiscountAmount,
		TaxAmount:       sale.TaxAmount,
		TotalAmount:     sale.TotalAmount,
	}
	for _, it := range items {
		r.Lines = append(r.Lines, ReceiptLine{
			Name:      it.Name,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
			Discount:  it.DiscountAmount,
			Total:     it.TotalAmount,
		})
	}
	for _, p := range payments {
		r.Payments = append(r.Payments, ReceiptTender{Method: p.Method, Amount: p.Amount})
	}
	return r
}
