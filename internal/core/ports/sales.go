// internal/core/ports/sales.go
package ports

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/zipos/zipos-be/internal/core/domain"
)

// AddCartItemRequest adds one product line to a cart.
type AddCartItemRequest struct {
	ProductID      string          `json:"product_id"`
	Name           string          `json:"name"`
	Quantity       decimal.Decimal `json:"quantity"`
	UnitPrice      decimal.Decimal `json:"unit_price"`
	DiscountAmount decimal.Decimal `json:"discount_amount"`
}

// PaymentRequest is one tender presented at checkout.
type PaymentRequest struct {
	Method    string          `json:"method"`
	Amount    decimal.Decimal `json:"amount"`
	Reference string          `json:"reference,omitempty"`
}

// CheckoutRequest converts a cart into a durable sale.
type CheckoutRequest struct {
	CartID     uuid.UUID        `json:"cart_id"`
	CustomerID string           `json:"customer_id,omitempty"`
	UserID     string           `json:"user_id"`
	Payments   []PaymentRequest `json:"payments"`
}

// RefundLineRequest selects a sale item and quantity to return.
type RefundLineRequest struct {
	SaleItemID uuid.UUID       `json:"sale_item_id"`
	Quantity   decimal.Decimal `json:"quantity"`
	Restock    bool            `json:"restock"`
}

// SalesRepository persists carts, sales, payments and refunds.
type SalesRepository interface {
	InsertCart(ctx context.Context, q Querier, cart *domain.Cart) error
	// GetCart returns nil, nil when the cart does not exist.
	GetCart(ctx context.Context, q Querier, id uuid.UUID) (*domain.Cart, error)
	// GetCartForUpdate locks the cart row until the transaction ends.
	GetCartForUpdate(ctx context.Context, q Querier, id uuid.UUID) (*domain.Cart, error)
	UpdateCartTotal(ctx context.Context, q Querier, cart *domain.Cart) error
	DeleteCart(ctx context.Context, q Querier, id uuid.UUID) error

	InsertCartItem(ctx context.Context, q Querier, item *domain.CartItem) error
	UpdateCartItem(ctx context.Context, q Querier, item *domain.CartItem) error
	GetCartItem(ctx context.Context, q Querier, cartID, itemID uuid.UUID) (*domain.CartItem, error)
	ListCartItems(ctx context.Context, q Querier, cartID uuid.UUID) ([]domain.CartItem, error)
	DeleteCartItem(ctx context.Context, q Querier, cartID, itemID uuid.UUID) error

	InsertSale(ctx context.Context, q Querier, sale *domain.Sale) error
	GetSale(ctx context.Context, q Querier, id uuid.UUID) (*domain.Sale, error)
	GetSaleForUpdate(ctx context.Context, q Querier, id uuid.UUID) (*domain.Sale, error)
	UpdateSaleStatus(ctx context.Context, q Querier, id uuid.UUID, status domain.SaleStatus) error
	InsertSaleItem(ctx context.Context, q Querier, item *domain.SaleItem) error
	GetSaleItem(ctx context.Context, q Querier, id uuid.UUID) (*domain.SaleItem, error)
	ListSaleItems(ctx context.Context, q Querier, saleID uuid.UUID) ([]domain.SaleItem, error)

	InsertPayment(ctx context.Context, q Querier, payment *domain.Payment) error
	ListPayments(ctx context.Context, q Querier, saleID uuid.UUID) ([]domain.Payment, error)

	InsertRefund(ctx context.Context, q Querier, refund *domain.Refund) error
	InsertRefundItem(ctx context.Context, q Querier, item *domain.RefundItem) error
	GetRefundForUpdate(ctx context.Context, q Querier, id uuid.UUID) (*domain.Refund, error)
	ListRefundItems(ctx context.Context, q Querier, refundID uuid.UUID) ([]domain.RefundItem, error)
	UpdateRefund(ctx context.Context, q Querier, refund *domain.Refund) error
	// SumApprovedRefunds totals approved refund amounts for a sale, used to
	// cap cumulative refunds at the sale total.
	SumApprovedRefunds(ctx context.Context, q Querier, saleID uuid.UUID) (decimal.Decimal, error)
	SumRefundedQuantity(ctx context.Context, q Querier, saleItemID uuid.UUID) (decimal.Decimal, error)
}

// SalesService is the cart, checkout and refund API.
type SalesService interface {
	CreateCart(ctx context.Context, organizationID, branchID, userID string) (*domain.Cart, error)
	GetCart(ctx context.Context, organizationID string, cartID uuid.UUID) (*domain.Cart, []domain.CartItem, error)
	AddItem(ctx context.Context, organizationID string, cartID uuid.UUID, req AddCartItemRequest) (*domain.Cart, error)
	RemoveItem(ctx context.Context, organizationID string, cartID, itemID uuid.UUID) (*domain.Cart, error)
	ApplyPromotions(ctx context.Context, organizationID string, cartID uuid.UUID, promoCode, customerTier string) (*domain.Cart, error)

	Checkout(ctx context.Context, organizationID string, req CheckoutRequest) (*domain.Sale, error)
	GetReceipt(ctx context.Context, organizationID string, saleID uuid.UUID) (*domain.Receipt, error)

	RequestRefund(ctx context.Context, organizationID string, saleID uuid.UUID, lines []RefundLineRequest, reason, requestedBy string) (*domain.Refund, error)
	// ApproveRefund reports false when the refund is missing or not Pending.
	ApproveRefund(ctx context.Context, organizationID string, refundID uuid.UUID, approvedBy string) (bool, error)
	RejectRefund(ctx context.Context, organizationID string, refundID uuid.UUID, rejectedBy string) (bool, error)
}
