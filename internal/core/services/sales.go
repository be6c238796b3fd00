// internal/core/services/sales.go
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

// Background task types dispatched by the sales flow.
const (
	TaskLoyaltyAccrual  = "loyalty:accrue"
	TaskStockAlertSweep = "inventory:alert_sweep"
	TaskTenantMigration = "tenant:migrate"
)

// LoyaltyAccrualPayload is the task payload for post-checkout point accrual.
type LoyaltyAccrualPayload struct {
	OrganizationID string          `json:"organization_id"`
	SaleID         uuid.UUID       `json:"sale_id"`
	CustomerID     string          `json:"customer_id"`
	TotalAmount    decimal.Decimal `json:"total_amount"`
}

// SalesService handles carts, checkout and refunds.
type SalesService struct {
	tenants            ports.TenantDatabases
	repo               ports.SalesRepository
	inventoryRepo      ports.InventoryRepository
	tax                ports.TaxCalculator
	promotions         ports.PromotionEngine
	dispatcher         ports.JobDispatcher
	allowNegativeStock bool
	logger             *slog.Logger
}

// Statically assert that *SalesService implements the SalesService interface.
var _ ports.SalesService = (*SalesService)(nil)

// NewSalesService creates a new sales service. dispatcher may be nil; loyalty
// accrual is then skipped.
func NewSalesService(
	tenants ports.TenantDatabases,
	repo ports.SalesRepository,
	inventoryRepo ports.InventoryRepository,
	tax ports.TaxCalculator,
	promotions ports.PromotionEngine,
	dispatcher ports.JobDispatcher,
	allowNegativeStock bool,
	logger *slog.Logger,
) *SalesService {
	return &SalesService{
		tenants:            tenants,
		repo:               repo,
		inventoryRepo:      inventoryRepo,
		tax:                tax,
		promotions:         promotions,
		dispatcher:         dispatcher,
		allowNegativeStock: allowNegativeStock,
		logger:             logger.With(slog.String("service", "sales")),
	}
}

// CreateCart opens an empty cart for a branch and user.
func (s *SalesService) CreateCart(ctx context.Context, organizationID, branchID, userID string) (*domain.Cart, error) {
	if branchID == "" || userID == "" {
		return nil, domain.Validationf("branch id and user id are required")
	}

	db, err := s.tenants.Database(ctx, organizationID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve tenant database: %w", err)
	}

	now := time.Now()
	cart := &domain.Cart{
		ID:          uuid.New(),
		BranchID:    branchID,
		UserID:      userID,
		TotalAmount: decimal.Zero,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.repo.InsertCart(ctx, db, cart); err != nil {
		return nil, fmt.Errorf("failed to create cart: %w", err)
	}

	s.logger.DebugContext(ctx, "cart created",
		slog.String("cart_id", cart.ID.String()),
		slog.String("branch_id", branchID))

	return cart, nil
}

// GetCart returns a cart with its items.
func (s *SalesService) GetCart(ctx context.Context, organizationID string, cartID uuid.UUID) (*domain.Cart, []domain.CartItem, error) {
	db, err := s.tenants.Database(ctx, organizationID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to resolve tenant database: %w", err)
	}

	cart, err := s.repo.GetCart(ctx, db, cartID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get cart: %w", err)
	}
	if cart == nil {
		return nil, nil, domain.NotFoundf("cart %s", cartID)
	}

	items, err := s.repo.ListCartItems(ctx, db, cartID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list cart items: %w", err)
	}

	return cart, items, nil
}

// AddItem appends a line to a cart and refreshes the running total.
func (s *SalesService) AddItem(ctx context.Context, organizationID string, cartID uuid.UUID, req ports.AddCartItemRequest) (*domain.Cart, error) {
	if req.ProductID == "" {
		return nil, domain.Validationf("product id is required")
	}
	if !req.Quantity.IsPositive() {
		return nil, domain.Validationf("quantity must be positive")
	}
	if req.UnitPrice.IsNegative() {
		return nil, domain.Validationf("unit price must not be negative")
	}
	gross := req.UnitPrice.Mul(req.Quantity)
	if req.DiscountAmount.IsNegative() || req.DiscountAmount.GreaterThan(gross) {
		return nil, domain.Validationf("discount must be between zero and the line amount")
	}

	db, err := s.tenants.Database(ctx, organizationID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve tenant database: %w", err)
	}

	var cart *domain.Cart
	err = db.Transaction(ctx, func(tx pgx.Tx) error {
		cart, err = s.repo.GetCartForUpdate(ctx, tx, cartID)
		if err != nil {
			return fmt.Errorf("failed to lock cart: %w", err)
		}
		if cart == nil {
			return domain.NotFoundf("cart %s", cartID)
		}

		item := &domain.CartItem{
			ID:             uuid.New(),
			CartID:         cartID,
			ProductID:      req.ProductID,
			Name:           req.Name,
			Quantity:       req.Quantity,
			UnitPrice:      req.UnitPrice,
			DiscountAmount: req.DiscountAmount,
		}
		item.ComputeTotal()
		if err := s.repo.InsertCartItem(ctx, tx, item); err != nil {
			return fmt.Errorf("failed to add cart item: %w", err)
		}

		return s.refreshCartTotal(ctx, tx, cart)
	})
	if err != nil {
		return nil, err
	}

	return cart, nil
}

// RemoveItem deletes a line from a cart and refreshes the running total.
func (s *SalesService) RemoveItem(ctx context.Context, organizationID string, cartID, itemID uuid.UUID) (*domain.Cart, error) {
	db, err := s.tenants.Database(ctx, organizationID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve tenant database: %w", err)
	}

	var cart *domain.Cart
	err = db.Transaction(ctx, func(tx pgx.Tx) error {
		cart, err = s.repo.GetCartForUpdate(ctx, tx, cartID)
		if err != nil {
			return fmt.Errorf("failed to lock cart: %w", err)
		}
		if cart == nil {
			return domain.NotFoundf("cart %s", cartID)
		}

		item, err := s.repo.GetCartItem(ctx, tx, cartID, itemID)
		if err != nil {
			return fmt.Errorf("failed to get cart item: %w", err)
		}
		if item == nil {
			return domain.NotFoundf("cart item %s", itemID)
		}

		if err := s.repo.DeleteCartItem(ctx, tx, cartID, itemID); err != nil {
			return fmt.Errorf("failed to delete cart item: %w", err)
		}

		return s.refreshCartTotal(ctx, tx, cart)
	})
	if err != nil {
		return nil, err
	}

	return cart, nil
}

// ApplyPromotions runs the promotion engine over the cart and stores the
// resulting per-line discounts. Lines the engine does not mention keep their
// current discount.
func (s *SalesService) ApplyPromotions(ctx context.Context, organizationID string, cartID uuid.UUID, promoCode, customerTier string) (*domain.Cart, error) {
	db, err := s.tenants.Database(ctx, organizationID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve tenant database: %w", err)
	}

	var cart *domain.Cart
	err = db.Transaction(ctx, func(tx pgx.Tx) error {
		cart, err = s.repo.GetCartForUpdate(ctx, tx, cartID)
		if err != nil {
			return fmt.Errorf("failed to lock cart: %w", err)
		}
		if cart == nil {
			return domain.NotFoundf("cart %s", cartID)
		}

		items, err := s.repo.ListCartItems(ctx, tx, cartID)
		if err != nil {
			return fmt.Errorf("failed to list cart items: %w", err)
		}

		discounts, err := s.promotions.ApplyPromotions(ctx, cart, items, promoCode, customerTier)
		if err != nil {
			return fmt.Errorf("failed to compute promotions: %w", err)
		}

		for i := range items {
			item := &items[i]
			discount, ok := discounts[item.ID.String()]
			if !ok {
				continue
			}
			gross := item.UnitPrice.Mul(item.Quantity)
			if discount.IsNegative() || discount.GreaterThan(gross) {
				return domain.Validationf("promotion discount out of range for item %s", item.ID)
			}
			item.DiscountAmount = discount
			item.ComputeTotal()
			if err := s.repo.UpdateCartItem(ctx, tx, item); err != nil {
				return fmt.Errorf("failed to update cart item: %w", err)
			}
		}

		return s.refreshCartTotal(ctx, tx, cart)
	})
	if err != nil {
		return nil, err
	}

	return cart, nil
}

// Checkout converts a cart into a sale atomically: snapshot lines, capture
// payments, deduct stock and delete the cart. Tendered payments must sum
// exactly to the sale total.
func (s *SalesService) Checkout(ctx context.Context, organizationID string, req ports.CheckoutRequest) (*domain.Sale, error) {
	if req.UserID == "" {
		return nil, domain.Validationf("user id is required")
	}
	if len(req.Payments) == 0 {
		return nil, domain.Validationf("at least one payment is required")
	}
	for _, p := range req.Payments {
		if p.Method == "" {
			return nil, domain.Validationf("payment method is required")
		}
		if p.Amount.IsNegative() {
			return nil, domain.Validationf("payment amount must not be negative")
		}
	}

	db, err := s.tenants.Database(ctx, organizationID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve tenant database: %w", err)
	}

	var sale *domain.Sale
	err = db.Transaction(ctx, func(tx pgx.Tx) error {
		cart, err := s.repo.GetCartForUpdate(ctx, tx, req.CartID)
		if err != nil {
			return fmt.Errorf("failed to lock cart: %w", err)
		}
		if cart == nil {
			return domain.NotFoundf("cart %s", req.CartID)
		}

		items, err := s.repo.ListCartItems(ctx, tx, req.CartID)
		if err != nil {
			return fmt.Errorf("failed to list cart items: %w", err)
		}
		if len(items) == 0 {
			return domain.Validationf("cart %s is empty", req.CartID)
		}

		subTotal := decimal.Zero
		discountTotal := decimal.Zero
		for i := range items {
			subTotal = subTotal.Add(items[i].UnitPrice.Mul(items[i].Quantity))
			discountTotal = discountTotal.Add(items[i].DiscountAmount)
		}

		taxAmount, err := s.tax.CalculateTax(ctx, cart.BranchID, items)
		if err != nil {
			return fmt.Errorf("failed to calculate tax: %w", err)
		}

		totalAmount := subTotal.Sub(discountTotal).Add(taxAmount)

		paymentSum := decimal.Zero
		for _, p := range req.Payments {
			paymentSum = paymentSum.Add(p.Amount)
		}
		if !paymentSum.Equal(totalAmount) {
			return fmt.Errorf("payments %s do not match sale total %s: %w",
				paymentSum, totalAmount, domain.ErrPaymentMismatch)
		}

		sale = &domain.Sale{
			ID:              uuid.New(),
			BranchID:        cart.BranchID,
			CustomerID:      req.CustomerID,
			UserID:          req.UserID,
			TransactionDate: time.Now(),
			SubTotal:        subTotal,
			DiscountAmount:  discountTotal,
			TaxAmount:       taxAmount,
			TotalAmount:     totalAmount,
			Status:          domain.SaleCompleted,
		}
		if err := s.repo.InsertSale(ctx, tx, sale); err != nil {
			return fmt.Errorf("failed to create sale: %w", err)
		}

		for i := range items {
			ci := &items[i]
			saleItem := &domain.SaleItem{
				ID:             uuid.New(),
				SaleID:         sale.ID,
				ProductID:      ci.ProductID,
				Name:           ci.Name,
				Quantity:       ci.Quantity,
				UnitPrice:      ci.UnitPrice,
				DiscountAmount: ci.DiscountAmount,
				TotalAmount:    ci.TotalAmount,
			}
			if err := s.repo.InsertSaleItem(ctx, tx, saleItem); err != nil {
				return fmt.Errorf("failed to snapshot sale item: %w", err)
			}

			if err := s.deductStock(ctx, tx, ci.ProductID, cart.BranchID, ci.Quantity, sale.ID, req.UserID); err != nil {
				return err
			}
		}

		for _, p := range req.Payments {
			payment := &domain.Payment{
				ID:        uuid.New(),
				SaleID:    sale.ID,
				Method:    p.Method,
				Amount:    p.Amount,
				Reference: p.Reference,
				Status:    domain.PaymentCaptured,
				CreatedAt: time.Now(),
			}
			if err := s.repo.InsertPayment(ctx, tx, payment); err != nil {
				return fmt.Errorf("failed to record payment: %w", err)
			}
		}

		// Carts are single-use.
		if err := s.repo.DeleteCart(ctx, tx, req.CartID); err != nil {
			return fmt.Errorf("failed to delete cart: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "checkout completed",
		slog.String("sale_id", sale.ID.String()),
		slog.String("branch_id", sale.BranchID),
		slog.String("total", sale.TotalAmount.String()))

	// Loyalty accrual is best effort: the sale is already durable.
	if s.dispatcher != nil && req.CustomerID != "" {
		payload := LoyaltyAccrualPayload{
			OrganizationID: organizationID,
			SaleID:         sale.ID,
			CustomerID:     req.CustomerID,
			TotalAmount:    sale.TotalAmount,
		}
		if err := s.dispatcher.Enqueue(ctx, TaskLoyaltyAccrual, payload); err != nil {
			s.logger.WarnContext(ctx, "failed to enqueue loyalty accrual",
				slog.String("sale_id", sale.ID.String()),
				slog.String("error", err.Error()))
		}
	}

	return sale, nil
}

// GetReceipt builds the printable projection of a completed sale.
func (s *SalesService) GetReceipt(ctx context.Context, organizationID string, saleID uuid.UUID) (*domain.Receipt, error) {
	db, err := s.tenants.Database(ctx, organizationID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve tenant database: %w", err)
	}

	sale, err := s.repo.GetSale(ctx, db, saleID)
	if err != nil {
		return nil, fmt.Errorf("failed to get sale: %w", err)
	}
	if sale == nil {
		return nil, domain.NotFoundf("sale %s", saleID)
	}

	items, err := s.repo.ListSaleItems(ctx, db, saleID)
	if err != nil {
		return nil, fmt.Errorf("failed to list sale items: %w", err)
	}

	payments, err := s.repo.ListPayments(ctx, db, saleID)
	if err != nil {
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}

	return domain.BuildReceipt(sale, items, payments), nil
}

// RequestRefund opens a pending refund for selected sale lines. Per-line
// quantities are capped at the unrefunded remainder and the cumulative amount
// at the sale total.
func (s *SalesService) RequestRefund(ctx context.Context, organizationID string, saleID uuid.UUID, lines []ports.RefundLineRequest, reason, requestedBy string) (*domain.Refund, error) {
	if len(lines) == 0 {
		return nil, domain.Validationf("at least one refund line is required")
	}
	if reason == "" {
		return nil, domain.Validationf("reason is required")
	}
	for _, l := range lines {
		if !l.Quantity.IsPositive() {
			return nil, domain.Validationf("refund quantity must be positive")
		}
	}

	db, err := s.tenants.Database(ctx, organizationID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve tenant database: %w", err)
	}

	var refund *domain.Refund
	err = db.Transaction(ctx, func(tx pgx.Tx) error {
		sale, err := s.repo.GetSaleForUpdate(ctx, tx, saleID)
		if err != nil {
			return fmt.Errorf("failed to lock sale: %w", err)
		}
		if sale == nil {
			return domain.NotFoundf("sale %s", saleID)
		}
		if sale.Status == domain.SaleVoided {
			return domain.InvalidStatef("sale %s is voided", saleID)
		}

		refund = &domain.Refund{
			ID:          uuid.New(),
			SaleID:      saleID,
			Reason:      reason,
			Status:      domain.RefundPending,
			RequestedBy: requestedBy,
			RequestedAt: time.Now(),
		}

		total := decimal.Zero
		refundItems := make([]domain.RefundItem, 0, len(lines))
		for _, l := range lines {
			saleItem, err := s.repo.GetSaleItem(ctx, tx, l.SaleItemID)
			if err != nil {
				return fmt.Errorf("failed to get sale item: %w", err)
			}
			if saleItem == nil || saleItem.SaleID != saleID {
				return domain.NotFoundf("sale item %s", l.SaleItemID)
			}

			already, err := s.repo.SumRefundedQuantity(ctx, tx, l.SaleItemID)
			if err != nil {
				return fmt.Errorf("failed to sum refunded quantity: %w", err)
			}
			remaining := saleItem.Quantity.Sub(already)
			if l.Quantity.GreaterThan(remaining) {
				return domain.Validationf("refund quantity %s exceeds remaining %s for sale item %s",
					l.Quantity, remaining, l.SaleItemID)
			}

			discountShare := domain.ProportionalDiscount(saleItem.DiscountAmount, l.Quantity, saleItem.Quantity)
			lineTotal := saleItem.UnitPrice.Mul(l.Quantity).Sub(discountShare)
			total = total.Add(lineTotal)

			refundItems = append(refundItems, domain.RefundItem{
				ID:             uuid.New(),
				RefundID:       refund.ID,
				SaleItemID:     saleItem.ID,
				ProductID:      saleItem.ProductID,
				Quantity:       l.Quantity,
				UnitPrice:      saleItem.UnitPrice,
				DiscountAmount: discountShare,
				TotalAmount:    lineTotal,
				Restock:        l.Restock,
			})
		}

		approvedSoFar, err := s.repo.SumApprovedRefunds(ctx, tx, saleID)
		if err != nil {
			return fmt.Errorf("failed to sum approved refunds: %w", err)
		}
		if approvedSoFar.Add(total).GreaterThan(sale.TotalAmount) {
			return domain.Validationf("cumulative refunds would exceed sale total %s", sale.TotalAmount)
		}

		refund.TotalAmount = total
		if err := s.repo.InsertRefund(ctx, tx, refund); err != nil {
			return fmt.Errorf("failed to create refund: %w", err)
		}
		for i := range refundItems {
			if err := s.repo.InsertRefundItem(ctx, tx, &refundItems[i]); err != nil {
				return fmt.Errorf("failed to create refund item: %w", err)
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "refund requested",
		slog.String("refund_id", refund.ID.String()),
		slog.String("sale_id", saleID.String()),
		slog.String("total", refund.TotalAmount.String()))

	return refund, nil
}

// ApproveRefund approves a pending refund, restocks flagged lines and flips
// the sale to Refunded once fully refunded. Returns false when the refund is
// missing or not pending.
func (s *SalesService) ApproveRefund(ctx context.Context, organizationID string, refundID uuid.UUID, approvedBy string) (bool, error) {
	db, err := s.tenants.Database(ctx, organizationID)
	if err != nil {
		return false, fmt.Errorf("failed to resolve tenant database: %w", err)
	}

	approved := false
	err = db.Transaction(ctx, func(tx pgx.Tx) error {
		refund, err := s.repo.GetRefundForUpdate(ctx, tx, refundID)
		if err != nil {
			return fmt.Errorf("failed to lock refund: %w", err)
		}
		if refund == nil {
			return nil
		}
		if refund.Status != domain.RefundPending {
			return nil
		}

		sale, err := s.repo.GetSaleForUpdate(ctx, tx, refund.SaleID)
		if err != nil {
			return fmt.Errorf("failed to lock sale: %w", err)
		}
		if sale == nil {
			return domain.NotFoundf("sale %s", refund.SaleID)
		}

		approvedSoFar, err := s.repo.SumApprovedRefunds(ctx, tx, refund.SaleID)
		if err != nil {
			return fmt.Errorf("failed to sum approved refunds: %w", err)
		}
		if approvedSoFar.Add(refund.TotalAmount).GreaterThan(sale.TotalAmount) {
			return domain.Validationf("cumulative refunds would exceed sale total %s", sale.TotalAmount)
		}

		now := time.Now()
		refund.Status = domain.RefundApproved
		refund.ResolvedBy = approvedBy
		refund.ResolvedAt = &now
		if err := s.repo.UpdateRefund(ctx, tx, refund); err != nil {
			return fmt.Errorf("failed to update refund: %w", err)
		}

		items, err := s.repo.ListRefundItems(ctx, tx, refundID)
		if err != nil {
			return fmt.Errorf("failed to list refund items: %w", err)
		}
		for i := range items {
			item := &items[i]
			if !item.Restock {
				continue
			}
			if err := s.restock(ctx, tx, item.ProductID, sale.BranchID, item.Quantity, refund.ID, approvedBy); err != nil {
				return err
			}
		}

		if approvedSoFar.Add(refund.TotalAmount).GreaterThanOrEqual(sale.TotalAmount) {
			if err := s.repo.UpdateSaleStatus(ctx, tx, sale.ID, domain.SaleRefunded); err != nil {
				return fmt.Errorf("failed to update sale status: %w", err)
			}
		}

		approved = true
		return nil
	})
	if err != nil {
		return false, err
	}

	if approved {
		s.logger.InfoContext(ctx, "refund approved",
			slog.String("refund_id", refundID.String()),
			slog.String("approved_by", approvedBy))
	}

	return approved, nil
}

// RejectRefund closes a pending refund without restocking. Returns false when
// the refund is missing or not pending.
func (s *SalesService) RejectRefund(ctx context.Context, organizationID string, refundID uuid.UUID, rejectedBy string) (bool, error) {
	db, err := s.tenants.Database(ctx, organizationID)
	if err != nil {
		return false, fmt.Errorf("failed to resolve tenant database: %w", err)
	}

	rejected := false
	err = db.Transaction(ctx, func(tx pgx.Tx) error {
		refund, err := s.repo.GetRefundForUpdate(ctx, tx, refundID)
		if err != nil {
			return fmt.Errorf("failed to lock refund: %w", err)
		}
		if refund == nil {
			return nil
		}
		if refund.Status != domain.RefundPending {
			return nil
		}

		now := time.Now()
		refund.Status = domain.RefundRejected
		refund.ResolvedBy = rejectedBy
		refund.ResolvedAt = &now
		if err := s.repo.UpdateRefund(ctx, tx, refund); err != nil {
			return fmt.Errorf("failed to update refund: %w", err)
		}

		rejected = true
		return nil
	})
	if err != nil {
		return false, err
	}

	return rejected, nil
}

// refreshCartTotal recomputes the cart total from its lines.
func (s *SalesService) refreshCartTotal(ctx context.Context, tx pgx.Tx, cart *domain.Cart) error {
	items, err := s.repo.ListCartItems(ctx, tx, cart.ID)
	if err != nil {
		return fmt.Errorf("failed to list cart items: %w", err)
	}

	total := decimal.Zero
	for i := range items {
		total = total.Add(items[i].TotalAmount)
	}
	cart.TotalAmount = total
	cart.UpdatedAt = time.Now()

	if err := s.repo.UpdateCartTotal(ctx, tx, cart); err != nil {
		return fmt.Errorf("failed to update cart total: %w", err)
	}
	return nil
}

// deductStock removes sold quantity from the ledger, honoring the negative
// stock policy.
func (s *SalesService) deductStock(ctx context.Context, tx pgx.Tx, productID, branchID string,
	quantity decimal.Decimal, saleID uuid.UUID, userID string) error {

	item, err := s.inventoryRepo.GetItemForUpdate(ctx, tx, productID, branchID)
	if err != nil {
		return fmt.Errorf("failed to lock inventory item: %w", err)
	}
	if item == nil {
		item = &domain.InventoryItem{ProductID: productID, BranchID: branchID}
	}

	newStock := item.CurrentStock.Sub(quantity)
	if newStock.IsNegative() && !s.allowNegativeStock {
		return domain.Validationf("insufficient stock for product %s at branch %s", productID, branchID)
	}

	item.CurrentStock = newStock
	item.LastUpdated = time.Now()
	if err := s.inventoryRepo.UpsertItem(ctx, tx, item); err != nil {
		return fmt.Errorf("failed to save inventory item: %w", err)
	}

	movement := &domain.StockMovement{
		ID:          uuid.New(),
		ProductID:   productID,
		BranchID:    branchID,
		Delta:       quantity.Neg(),
		Reason:      "Sale checkout",
		ReferenceID: saleID.String(),
		PerformedBy: userID,
		PerformedAt: time.Now(),
	}
	if err := s.inventoryRepo.InsertMovement(ctx, tx, movement); err != nil {
		return fmt.Errorf("failed to record stock movement: %w", err)
	}

	return nil
}

// restock returns refunded quantity to the ledger without touching the
// moving-average cost.
func (s *SalesService) restock(ctx context.Context, tx pgx.Tx, productID, branchID string,
	quantity decimal.Decimal, refundID uuid.UUID, performedBy string) error {

	item, err := s.inventoryRepo.GetItemForUpdate(ctx, tx, productID, branchID)
	if err != nil {
		return fmt.Errorf("failed to lock inventory item: %w", err)
	}
	if item == nil {
		item = &domain.InventoryItem{ProductID: productID, BranchID: branchID}
	}

	item.CurrentStock = item.CurrentStock.Add(quantity)
	item.LastUpdated = time.Now()
	if err := s.inventoryRepo.UpsertItem(ctx, tx, item); err != nil {
		return fmt.Errorf("failed to save inventory item: %w", err)
	}

	movement := &domain.StockMovement{
		ID:          uuid.New(),
		ProductID:   productID,
		BranchID:    branchID,
		Delta:       quantity,
		Reason:      "Refund restock (approved)",
		ReferenceID: refundID.String(),
		PerformedBy: performedBy,
		PerformedAt: time.Now(),
	}
	if err := s.inventoryRepo.InsertMovement(ctx, tx, movement); err != nil {
		return fmt.Errorf("failed to record stock movement: %w", err)
	}

	return nil
}
