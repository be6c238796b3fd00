// internal/core/services/sales_test.go
package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/zipos/zipos-be/internal/core/domain"
	"github.com/zipos/zipos-be/internal/core/ports"
	"github.com/zipos/zipos-be/internal/core/services"
	"github.com/zipos/zipos-be/test/helpers"
	"github.com/zipos/zipos-be/test/mocks"
)

type salesFixture struct {
	ctrl       *gomock.Controller
	repo       *mocks.MockSalesRepository
	inventory  *mocks.MockInventoryRepository
	tax        *mocks.MockTaxCalculator
	promotions *mocks.MockPromotionEngine
	dispatcher *mocks.MockJobDispatcher
	db         *mocks.MockDatabase
	tenants    *mocks.MockTenantDatabases
}

func newSalesFixture(t *testing.T) *salesFixture {
	ctrl := gomock.NewController(t)
	f := &salesFixture{
		ctrl:       ctrl,
		repo:       mocks.NewMockSalesRepository(ctrl),
		inventory:  mocks.NewMockInventoryRepository(ctrl),
		tax:        mocks.NewMockTaxCalculator(ctrl),
		promotions: mocks.NewMockPromotionEngine(ctrl),
		dispatcher: mocks.NewMockJobDispatcher(ctrl),
		db:         mocks.NewMockDatabase(ctrl),
		tenants:    mocks.NewMockTenantDatabases(ctrl),
	}
	expectTenant(f.tenants, f.db)
	expectTransaction(f.db)
	return f
}

func (f *salesFixture) service(allowNegativeStock bool, withDispatcher bool) *services.SalesService {
	var dispatcher ports.JobDispatcher
	if withDispatcher {
		dispatcher = f.dispatcher
	}
	return services.NewSalesService(f.tenants, f.repo, f.inventory, f.tax, f.promotions,
		dispatcher, allowNegativeStock, helpers.TestLogger())
}

func TestSalesService_AddItem(t *testing.T) {
	cartID := uuid.New()

	tests := []struct {
		name       string
		req        ports.AddCartItemRequest
		setupMocks func(*salesFixture)
		wantErr    error
	}{
		{
			name: "adds the line and refreshes the total",
			req: ports.AddCartItemRequest{
				ProductID: "SKU-001", Name: "Widget",
				Quantity: decimal.NewFromInt(2), UnitPrice: decimal.NewFromFloat(10.00),
			},
			setupMocks: func(f *salesFixture) {
				f.repo.EXPECT().GetCartForUpdate(gomock.Any(), gomock.Any(), cartID).
					Return(helpers.NewTestCart(func(c *domain.Cart) { c.ID = cartID }), nil)
				f.repo.EXPECT().InsertCartItem(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ ports.Querier, item *domain.CartItem) error {
						assert.True(t, item.TotalAmount.Equal(decimal.NewFromInt(20)))
						return nil
					})
				f.repo.EXPECT().ListCartItems(gomock.Any(), gomock.Any(), cartID).
					Return([]domain.CartItem{helpers.NewTestCartItem(cartID, "SKU-001", 2)}, nil)
				f.repo.EXPECT().UpdateCartTotal(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ ports.Querier, cart *domain.Cart) error {
						assert.True(t, cart.TotalAmount.Equal(decimal.NewFromInt(20)))
						return nil
					})
			},
		},
		{
			name: "unknown cart is not found",
			req: ports.AddCartItemRequest{
				ProductID: "SKU-001",
				Quantity:  decimal.NewFromInt(1), UnitPrice: decimal.NewFromFloat(1.00),
			},
			setupMocks: func(f *salesFixture) {
				f.repo.EXPECT().GetCartForUpdate(gomock.Any(), gomock.Any(), cartID).
					Return(nil, nil)
			},
			wantErr: domain.ErrNotFound,
		},
		{
			name: "zero quantity is rejected",
			req: ports.AddCartItemRequest{
				ProductID: "SKU-001",
				Quantity:  decimal.Zero, UnitPrice: decimal.NewFromFloat(1.00),
			},
			setupMocks: func(f *salesFixture) {},
			wantErr:    domain.ErrValidation,
		},
		{
			name: "discount above line amount is rejected",
			req: ports.AddCartItemRequest{
				ProductID: "SKU-001",
				Quantity:  decimal.NewFromInt(1), UnitPrice: decimal.NewFromFloat(5.00),
				DiscountAmount: decimal.NewFromFloat(6.00),
			},
			setupMocks: func(f *salesFixture) {},
			wantErr:    domain.ErrValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newSalesFixture(t)
			tt.setupMocks(f)

			cart, err := f.service(false, false).AddItem(context.Background(), testOrg, cartID, tt.req)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
				assert.True(t, cart.TotalAmount.Equal(decimal.NewFromInt(20)))
			}
		})
	}
}

func TestSalesService_ApplyPromotions(t *testing.T) {
	cartID := uuid.New()
	item := helpers.NewTestCartItem(cartID, "SKU-001", 4) // 40.00 gross

	f := newSalesFixture(t)
	f.repo.EXPECT().GetCartForUpdate(gomock.Any(), gomock.Any(), cartID).
		Return(helpers.NewTestCart(func(c *domain.Cart) { c.ID = cartID }), nil)
	f.repo.EXPECT().ListCartItems(gomock.Any(), gomock.Any(), cartID).
		Return([]domain.CartItem{item}, nil)
	f.promotions.EXPECT().ApplyPromotions(gomock.Any(), gomock.Any(), gomock.Any(), "SAVE10", "gold").
		Return(map[string]decimal.Decimal{item.ID.String(): decimal.NewFromFloat(4.00)}, nil)
	f.repo.EXPECT().UpdateCartItem(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ ports.Querier, updated *domain.CartItem) error {
			assert.True(t, updated.DiscountAmount.Equal(decimal.NewFromFloat(4.00)))
			assert.True(t, updated.TotalAmount.Equal(decimal.NewFromInt(36)))
			return nil
		})
	f.repo.EXPECT().ListCartItems(gomock.Any(), gomock.Any(), cartID).
		Return([]domain.CartItem{item}, nil)
	f.repo.EXPECT().UpdateCartTotal(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	_, err := f.service(false, false).ApplyPromotions(context.Background(), testOrg, cartID, "SAVE10", "gold")
	require.NoError(t, err)
}

func TestSalesService_ApplyPromotions_RejectsOutOfRangeDiscount(t *testing.T) {
	cartID := uuid.New()
	item := helpers.NewTestCartItem(cartID, "SKU-001", 1) // 10.00 gross

	f := newSalesFixture(t)
	f.repo.EXPECT().GetCartForUpdate(gomock.Any(), gomock.Any(), cartID).
		Return(helpers.NewTestCart(func(c *domain.Cart) { c.ID = cartID }), nil)
	f.repo.EXPECT().ListCartItems(gomock.Any(), gomock.Any(), cartID).
		Return([]domain.CartItem{item}, nil)
	f.promotions.EXPECT().ApplyPromotions(gomock.Any(), gomock.Any(), gomock.Any(), "", "").
		Return(map[string]decimal.Decimal{item.ID.String(): decimal.NewFromFloat(11.00)}, nil)

	_, err := f.service(false, false).ApplyPromotions(context.Background(), testOrg, cartID, "", "")
	require.ErrorIs(t, err, domain.ErrValidation)
}

func TestSalesService_Checkout(t *testing.T) {
	cartID := uuid.New()
	cart := helpers.NewTestCart(func(c *domain.Cart) { c.ID = cartID })
	// 3 × 10.00 with 10% tax.
	items := []domain.CartItem{helpers.NewTestCartItem(cartID, "SKU-001", 3)}

	tests := []struct {
		name       string
		req        ports.CheckoutRequest
		setupMocks func(*salesFixture)
		wantErr    error
	}{
		{
			name: "snapshots lines, captures payments, deducts stock, burns the cart",
			req: ports.CheckoutRequest{
				CartID: cartID, UserID: "cashier-1",
				Payments: []ports.PaymentRequest{{Method: "cash", Amount: decimal.NewFromFloat(33.00)}},
			},
			setupMocks: func(f *salesFixture) {
				f.repo.EXPECT().GetCartForUpdate(gomock.Any(), gomock.Any(), cartID).Return(cart, nil)
				f.repo.EXPECT().ListCartItems(gomock.Any(), gomock.Any(), cartID).Return(items, nil)
				f.tax.EXPECT().CalculateTax(gomock.Any(), "branch-main", items).
					Return(decimal.NewFromFloat(3.00), nil)
				f.repo.EXPECT().InsertSale(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ ports.Querier, sale *domain.Sale) error {
						assert.True(t, sale.TotalAmount.Equal(decimal.NewFromFloat(33.00)))
						assert.Equal(t, domain.SaleCompleted, sale.Status)
						return nil
					})
				f.repo.EXPECT().InsertSaleItem(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ ports.Querier, si *domain.SaleItem) error {
						assert.Equal(t, "SKU-001", si.ProductID)
						assert.True(t, si.TotalAmount.Equal(decimal.NewFromInt(30)))
						return nil
					})
				f.inventory.EXPECT().GetItemForUpdate(gomock.Any(), gomock.Any(), "SKU-001", "branch-main").
					Return(helpers.NewTestItem(), nil)
				f.inventory.EXPECT().UpsertItem(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ ports.Querier, item *domain.InventoryItem) error {
						assert.True(t, item.CurrentStock.Equal(decimal.NewFromInt(97)))
						return nil
					})
				f.inventory.EXPECT().InsertMovement(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ ports.Querier, mv *domain.StockMovement) error {
						assert.True(t, mv.Delta.Equal(decimal.NewFromInt(-3)))
						return nil
					})
				f.repo.EXPECT().InsertPayment(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ ports.Querier, p *domain.Payment) error {
						assert.Equal(t, domain.PaymentCaptured, p.Status)
						return nil
					})
				f.repo.EXPECT().DeleteCart(gomock.Any(), gomock.Any(), cartID).Return(nil)
			},
		},
		{
			name: "payments must sum to the sale total",
			req: ports.CheckoutRequest{
				CartID: cartID, UserID: "cashier-1",
				Payments: []ports.PaymentRequest{{Method: "cash", Amount: decimal.NewFromFloat(30.00)}},
			},
			setupMocks: func(f *salesFixture) {
				f.repo.EXPECT().GetCartForUpdate(gomock.Any(), gomock.Any(), cartID).Return(cart, nil)
				f.repo.EXPECT().ListCartItems(gomock.Any(), gomock.Any(), cartID).Return(items, nil)
				f.tax.EXPECT().CalculateTax(gomock.Any(), "branch-main", items).
					Return(decimal.NewFromFloat(3.00), nil)
			},
			wantErr: domain.ErrPaymentMismatch,
		},
		{
			name: "empty cart cannot be checked out",
			req: ports.CheckoutRequest{
				CartID: cartID, UserID: "cashier-1",
				Payments: []ports.PaymentRequest{{Method: "cash", Amount: decimal.Zero}},
			},
			setupMocks: func(f *salesFixture) {
				f.repo.EXPECT().GetCartForUpdate(gomock.Any(), gomock.Any(), cartID).Return(cart, nil)
				f.repo.EXPECT().ListCartItems(gomock.Any(), gomock.Any(), cartID).Return(nil, nil)
			},
			wantErr: domain.ErrValidation,
		},
		{
			name: "insufficient stock blocks the sale",
			req: ports.CheckoutRequest{
				CartID: cartID, UserID: "cashier-1",
				Payments: []ports.PaymentRequest{{Method: "cash", Amount: decimal.NewFromFloat(33.00)}},
			},
			setupMocks: func(f *salesFixture) {
				f.repo.EXPECT().GetCartForUpdate(gomock.Any(), gomock.Any(), cartID).Return(cart, nil)
				f.repo.EXPECT().ListCartItems(gomock.Any(), gomock.Any(), cartID).Return(items, nil)
				f.tax.EXPECT().CalculateTax(gomock.Any(), "branch-main", items).
					Return(decimal.NewFromFloat(3.00), nil)
				f.repo.EXPECT().InsertSale(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
				f.repo.EXPECT().InsertSaleItem(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
				f.inventory.EXPECT().GetItemForUpdate(gomock.Any(), gomock.Any(), "SKU-001", "branch-main").
					Return(helpers.NewTestItem(func(i *domain.InventoryItem) {
						i.CurrentStock = decimal.NewFromInt(2)
					}), nil)
			},
			wantErr: domain.ErrValidation,
		},
		{
			name: "payments are required",
			req: ports.CheckoutRequest{
				CartID: cartID, UserID: "cashier-1",
			},
			setupMocks: func(f *salesFixture) {},
			wantErr:    domain.ErrValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newSalesFixture(t)
			tt.setupMocks(f)

			sale, err := f.service(false, false).Checkout(context.Background(), testOrg, tt.req)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
				require.NotNil(t, sale)
				assert.Equal(t, "branch-main", sale.BranchID)
			}
		})
	}
}

func TestSalesService_Checkout_AllowsNegativeStockWhenConfigured(t *testing.T) {
	cartID := uuid.New()
	cart := helpers.NewTestCart(func(c *domain.Cart) { c.ID = cartID })
	items := []domain.CartItem{helpers.NewTestCartItem(cartID, "SKU-001", 3)}

	f := newSalesFixture(t)
	f.repo.EXPECT().GetCartForUpdate(gomock.Any(), gomock.Any(), cartID).Return(cart, nil)
	f.repo.EXPECT().ListCartItems(gomock.Any(), gomock.Any(), cartID).Return(items, nil)
	f.tax.EXPECT().CalculateTax(gomock.Any(), "branch-main", items).Return(decimal.Zero, nil)
	f.repo.EXPECT().InsertSale(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	f.repo.EXPECT().InsertSaleItem(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	f.inventory.EXPECT().GetItemForUpdate(gomock.Any(), gomock.Any(), "SKU-001", "branch-main").
		Return(helpers.NewTestItem(func(i *domain.InventoryItem) {
			i.CurrentStock = decimal.NewFromInt(1)
		}), nil)
	f.inventory.EXPECT().UpsertItem(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ ports.Querier, item *domain.InventoryItem) error {
			assert.True(t, item.CurrentStock.Equal(decimal.NewFromInt(-2)))
			return nil
		})
	f.inventory.EXPECT().InsertMovement(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	f.repo.EXPECT().InsertPayment(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	f.repo.EXPECT().DeleteCart(gomock.Any(), gomock.Any(), cartID).Return(nil)

	_, err := f.service(true, false).Checkout(context.Background(), testOrg, ports.CheckoutRequest{
		CartID: cartID, UserID: "cashier-1",
		Payments: []ports.PaymentRequest{{Method: "cash", Amount: decimal.NewFromInt(30)}},
	})
	require.NoError(t, err)
}

func TestSalesService_Checkout_EnqueuesLoyaltyAccrual(t *testing.T) {
	cartID := uuid.New()
	cart := helpers.NewTestCart(func(c *domain.Cart) { c.ID = cartID })
	items := []domain.CartItem{helpers.NewTestCartItem(cartID, "SKU-001", 1)}

	f := newSalesFixture(t)
	f.repo.EXPECT().GetCartForUpdate(gomock.Any(), gomock.Any(), cartID).Return(cart, nil)
	f.repo.EXPECT().ListCartItems(gomock.Any(), gomock.Any(), cartID).Return(items, nil)
	f.tax.EXPECT().CalculateTax(gomock.Any(), "branch-main", items).Return(decimal.Zero, nil)
	f.repo.EXPECT().InsertSale(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	f.repo.EXPECT().InsertSaleItem(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	f.inventory.EXPECT().GetItemForUpdate(gomock.Any(), gomock.Any(), "SKU-001", "branch-main").
		Return(helpers.NewTestItem(), nil)
	f.inventory.EXPECT().UpsertItem(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	f.inventory.EXPECT().InsertMovement(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	f.repo.EXPECT().InsertPayment(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	f.repo.EXPECT().DeleteCart(gomock.Any(), gomock.Any(), cartID).Return(nil)
	f.dispatcher.EXPECT().Enqueue(gomock.Any(), services.TaskLoyaltyAccrual, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, payload any) error {
			accrual, ok := payload.(services.LoyaltyAccrualPayload)
			require.True(t, ok)
			assert.Equal(t, "cust-9", accrual.CustomerID)
			assert.Equal(t, testOrg, accrual.OrganizationID)
			return nil
		})

	_, err := f.service(false, true).Checkout(context.Background(), testOrg, ports.CheckoutRequest{
		CartID: cartID, CustomerID: "cust-9", UserID: "cashier-1",
		Payments: []ports.PaymentRequest{{Method: "card", Amount: decimal.NewFromInt(10)}},
	})
	require.NoError(t, err)
}

func TestSalesService_RequestRefund(t *testing.T) {
	saleID := uuid.New()
	saleItemID := uuid.New()
	sale := helpers.NewTestSale(func(s *domain.Sale) {
		s.ID = saleID
		s.TotalAmount = decimal.NewFromFloat(50.00)
	})
	saleItem := &domain.SaleItem{
		ID: saleItemID, SaleID: saleID, ProductID: "SKU-001",
		Quantity:       decimal.NewFromInt(5),
		UnitPrice:      decimal.NewFromFloat(10.00),
		DiscountAmount: decimal.NewFromFloat(5.00),
	}

	tests := []struct {
		name       string
		lines      []ports.RefundLineRequest
		setupMocks func(*salesFixture)
		wantTotal  string
		wantErr    error
	}{
		{
			name:  "partial refund carries its discount share",
			lines: []ports.RefundLineRequest{{SaleItemID: saleItemID, Quantity: decimal.NewFromInt(2), Restock: true}},
			setupMocks: func(f *salesFixture) {
				f.repo.EXPECT().GetSaleForUpdate(gomock.Any(), gomock.Any(), saleID).Return(sale, nil)
				f.repo.EXPECT().GetSaleItem(gomock.Any(), gomock.Any(), saleItemID).Return(saleItem, nil)
				f.repo.EXPECT().SumRefundedQuantity(gomock.Any(), gomock.Any(), saleItemID).
					Return(decimal.Zero, nil)
				f.repo.EXPECT().SumApprovedRefunds(gomock.Any(), gomock.Any(), saleID).
					Return(decimal.Zero, nil)
				f.repo.EXPECT().InsertRefund(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
				f.repo.EXPECT().InsertRefundItem(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ ports.Querier, ri *domain.RefundItem) error {
						// 2 × 10.00 − 2/5 of 5.00
						assert.True(t, ri.DiscountAmount.Equal(decimal.NewFromInt(2)))
						assert.True(t, ri.TotalAmount.Equal(decimal.NewFromInt(18)))
						assert.True(t, ri.Restock)
						return nil
					})
			},
			wantTotal: "18",
		},
		{
			name:  "quantity above the unrefunded remainder is rejected",
			lines: []ports.RefundLineRequest{{SaleItemID: saleItemID, Quantity: decimal.NewFromInt(3)}},
			setupMocks: func(f *salesFixture) {
				f.repo.EXPECT().GetSaleForUpdate(gomock.Any(), gomock.Any(), saleID).Return(sale, nil)
				f.repo.EXPECT().GetSaleItem(gomock.Any(), gomock.Any(), saleItemID).Return(saleItem, nil)
				f.repo.EXPECT().SumRefundedQuantity(gomock.Any(), gomock.Any(), saleItemID).
					Return(decimal.NewFromInt(3), nil)
			},
			wantErr: domain.ErrValidation,
		},
		{
			name:  "cumulative refunds cannot exceed the sale total",
			lines: []ports.RefundLineRequest{{SaleItemID: saleItemID, Quantity: decimal.NewFromInt(2)}},
			setupMocks: func(f *salesFixture) {
				f.repo.EXPECT().GetSaleForUpdate(gomock.Any(), gomock.Any(), saleID).Return(sale, nil)
				f.repo.EXPECT().GetSaleItem(gomock.Any(), gomock.Any(), saleItemID).Return(saleItem, nil)
				f.repo.EXPECT().SumRefundedQuantity(gomock.Any(), gomock.Any(), saleItemID).
					Return(decimal.Zero, nil)
				f.repo.EXPECT().SumApprovedRefunds(gomock.Any(), gomock.Any(), saleID).
					Return(decimal.NewFromFloat(40.00), nil)
			},
			wantErr: domain.ErrValidation,
		},
		{
			name:  "voided sale cannot be refunded",
			lines: []ports.RefundLineRequest{{SaleItemID: saleItemID, Quantity: decimal.NewFromInt(1)}},
			setupMocks: func(f *salesFixture) {
				f.repo.EXPECT().GetSaleForUpdate(gomock.Any(), gomock.Any(), saleID).
					Return(helpers.NewTestSale(func(s *domain.Sale) {
						s.ID = saleID
						s.Status = domain.SaleVoided
					}), nil)
			},
			wantErr: domain.ErrInvalidState,
		},
		{
			name:       "empty line set is rejected",
			lines:      nil,
			setupMocks: func(f *salesFixture) {},
			wantErr:    domain.ErrValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newSalesFixture(t)
			tt.setupMocks(f)

			refund, err := f.service(false, false).RequestRefund(
				context.Background(), testOrg, saleID, tt.lines, "damaged", "mgr")

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
				helpers.AssertDecimalEqual(t, decimal.RequireFromString(tt.wantTotal), refund.TotalAmount)
				assert.Equal(t, domain.RefundPending, refund.Status)
			}
		})
	}
}

func TestSalesService_ApproveRefund(t *testing.T) {
	refundID := uuid.New()
	saleID := uuid.New()

	tests := []struct {
		name         string
		setupMocks   func(*salesFixture)
		wantApproved bool
	}{
		{
			name: "restocks flagged lines and marks the sale refunded when fully covered",
			setupMocks: func(f *salesFixture) {
				f.repo.EXPECT().GetRefundForUpdate(gomock.Any(), gomock.Any(), refundID).
					Return(&domain.Refund{
						ID: refundID, SaleID: saleID, Status: domain.RefundPending,
						TotalAmount: decimal.NewFromFloat(108.00),
					}, nil)
				f.repo.EXPECT().GetSaleForUpdate(gomock.Any(), gomock.Any(), saleID).
					Return(helpers.NewTestSale(func(s *domain.Sale) { s.ID = saleID }), nil)
				f.repo.EXPECT().SumApprovedRefunds(gomock.Any(), gomock.Any(), saleID).
					Return(decimal.Zero, nil)
				f.repo.EXPECT().UpdateRefund(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ ports.Querier, r *domain.Refund) error {
						assert.Equal(t, domain.RefundApproved, r.Status)
						assert.Equal(t, "mgr", r.ResolvedBy)
						return nil
					})
				f.repo.EXPECT().ListRefundItems(gomock.Any(), gomock.Any(), refundID).
					Return([]domain.RefundItem{
						{ProductID: "SKU-001", Quantity: decimal.NewFromInt(2), Restock: true},
						{ProductID: "SKU-002", Quantity: decimal.NewFromInt(1), Restock: false},
					}, nil)
				f.inventory.EXPECT().GetItemForUpdate(gomock.Any(), gomock.Any(), "SKU-001", "branch-main").
					Return(helpers.NewTestItem(), nil)
				f.inventory.EXPECT().UpsertItem(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ ports.Querier, item *domain.InventoryItem) error {
						assert.True(t, item.CurrentStock.Equal(decimal.NewFromInt(102)))
						return nil
					})
				f.inventory.EXPECT().InsertMovement(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ ports.Querier, mv *domain.StockMovement) error {
						assert.True(t, mv.Delta.Equal(decimal.NewFromInt(2)))
						assert.Equal(t, "Refund restock (approved)", mv.Reason)
						return nil
					})
				f.repo.EXPECT().UpdateSaleStatus(gomock.Any(), gomock.Any(), saleID, domain.SaleRefunded).
					Return(nil)
			},
			wantApproved: true,
		},
		{
			name: "already resolved refund is a no-op",
			setupMocks: func(f *salesFixture) {
				f.repo.EXPECT().GetRefundForUpdate(gomock.Any(), gomock.Any(), refundID).
					Return(&domain.Refund{ID: refundID, Status: domain.RefundApproved}, nil)
			},
			wantApproved: false,
		},
		{
			name: "missing refund reports false",
			setupMocks: func(f *salesFixture) {
				f.repo.EXPECT().GetRefundForUpdate(gomock.Any(), gomock.Any(), refundID).
					Return(nil, nil)
			},
			wantApproved: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newSalesFixture(t)
			tt.setupMocks(f)

			approved, err := f.service(false, false).ApproveRefund(
				context.Background(), testOrg, refundID, "mgr")

			require.NoError(t, err)
			assert.Equal(t, tt.wantApproved, approved)
		})
	}
}

func TestSalesService_RejectRefund(t *testing.T) {
	refundID := uuid.New()

	t.Run("closes a pending refund", func(t *testing.T) {
		f := newSalesFixture(t)
		f.repo.EXPECT().GetRefundForUpdate(gomock.Any(), gomock.Any(), refundID).
			Return(&domain.Refund{ID: refundID, Status: domain.RefundPending}, nil)
		f.repo.EXPECT().UpdateRefund(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ ports.Querier, r *domain.Refund) error {
				assert.Equal(t, domain.RefundRejected, r.Status)
				return nil
			})

		rejected, err := f.service(false, false).RejectRefund(context.Background(), testOrg, refundID, "mgr")
		require.NoError(t, err)
		assert.True(t, rejected)
	})

	t.Run("missing refund reports false", func(t *testing.T) {
		f := newSalesFixture(t)
		f.repo.EXPECT().GetRefundForUpdate(gomock.Any(), gomock.Any(), refundID).
			Return(nil, nil)

		rejected, err := f.service(false, false).RejectRefund(context.Background(), testOrg, refundID, "mgr")
		require.NoError(t, err)
		assert.False(t, rejected)
	})
}
