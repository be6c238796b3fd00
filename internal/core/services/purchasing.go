// internal/core/services/purchasing.go
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

// PurchasingService handles purchase orders, goods receipts and returns.
type PurchasingService struct {
	tenants       ports.TenantDatabases
	repo          ports.PurchasingRepository
	inventoryRepo ports.InventoryRepository
	logger        *slog.Logger
}

// Statically assert that *PurchasingService implements the PurchasingService interface.
var _ ports.PurchasingService = (*PurchasingService)(nil)

// NewPurchasingService creates a new purchasing service
func NewPurchasingService(tenants ports.TenantDatabases, repo ports.PurchasingRepository,
	inventoryRepo ports.InventoryRepository, logger *slog.Logger) *PurchasingService {
	return &PurchasingService{
		tenants:       tenants,
		repo:          repo,
		inventoryRepo: inventoryRepo,
		logger:        logger.With(slog.String("service", "purchasing")),
	}
}

// CreateOrder opens a draft purchase order.
func (s *PurchasingService) CreateOrder(ctx context.Context, organizationID, supplierID, branchID, createdBy string) (*domain.PurchaseOrder, error) {
	if supplierID == "" || branchID == "" {
		return nil, domain.Validationf("supplier id and branch id are required")
	}

	db, err := s.tenants.Database(ctx, organizationID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve tenant database: %w", err)
	}

	order := &domain.PurchaseOrder{
		ID:         uuid.New(),
		SupplierID: supplierID,
		BranchID:   branchID,
		Status:     domain.PurchaseOrderDraft,
		CreatedBy:  createdBy,
		CreatedAt:  time.Now(),
	}
	if err := s.repo.InsertOrder(ctx, db, order); err != nil {
		return nil, fmt.Errorf("failed to create purchase order: %w", err)
	}

	s.logger.InfoContext(ctx, "purchase order created",
		slog.String("order_id", order.ID.String()),
		slog.String("supplier_id", supplierID))

	return order, nil
}

// AddOrderLine appends a product line to a draft or submitted order.
func (s *PurchasingService) AddOrderLine(ctx context.Context, organizationID string, orderID uuid.UUID, req ports.PurchaseOrderLineRequest) (*domain.PurchaseOrderLine, error) {
	if req.ProductID == "" {
		return nil, domain.Validationf("product id is required")
	}
	if !req.QuantityOrdered.IsPositive() {
		return nil, domain.Validationf("quantity ordered must be positive")
	}
	if req.UnitCost.IsNegative() {
		return nil, domain.Validationf("unit cost must not be negative")
	}

	db, err := s.tenants.Database(ctx, organizationID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve tenant database: %w", err)
	}

	var line *domain.PurchaseOrderLine
	err = db.Transaction(ctx, func(tx pgx.Tx) error {
		order, err := s.repo.GetOrderForUpdate(ctx, tx, orderID)
		if err != nil {
			return fmt.Errorf("failed to lock purchase order: %w", err)
		}
		if order == nil {
			return domain.NotFoundf("purchase order %s", orderID)
		}
		if !order.CanModifyLines() {
			return domain.InvalidStatef("purchase order %s is %s", orderID, order.Status)
		}

		line = &domain.PurchaseOrderLine{
			ID:              uuid.New(),
			PurchaseOrderID: orderID,
			ProductID:       req.ProductID,
			QuantityOrdered: req.QuantityOrdered,
			UnitCost:        req.UnitCost,
		}
		if err := s.repo.InsertOrderLine(ctx, tx, line); err != nil {
			return fmt.Errorf("failed to add purchase order line: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return line, nil
}

// SubmitOrder moves a draft with at least one line to Submitted. Returns
// false when the order was not a draft.
func (s *PurchasingService) SubmitOrder(ctx context.Context, organizationID string, orderID uuid.UUID) (bool, error) {
	db, err := s.tenants.Database(ctx, organizationID)
	if err != nil {
		return false, fmt.Errorf("failed to resolve tenant database: %w", err)
	}

	submitted := false
	err = db.Transaction(ctx, func(tx pgx.Tx) error {
		order, err := s.repo.GetOrderForUpdate(ctx, tx, orderID)
		if err != nil {
			return fmt.Errorf("failed to lock purchase order: %w", err)
		}
		if order == nil {
			return domain.NotFoundf("purchase order %s", orderID)
		}
		if order.Status != domain.PurchaseOrderDraft {
			return nil
		}

		lines, err := s.repo.ListOrderLines(ctx, tx, orderID)
		if err != nil {
			return fmt.Errorf("failed to list purchase order lines: %w", err)
		}
		if len(lines) == 0 {
			return domain.Validationf("purchase order %s has no lines", orderID)
		}

		order.Status = domain.PurchaseOrderSubmitted
		if err := s.repo.UpdateOrder(ctx, tx, order); err != nil {
			return fmt.Errorf("failed to update purchase order: %w", err)
		}

		submitted = true
		return nil
	})
	if err != nil {
		return false, err
	}

	return submitted, nil
}

// ApproveOrder moves a submitted order to Approved. Returns false when the
// order was not submitted.
func (s *PurchasingService) ApproveOrder(ctx context.Context, organizationID string, orderID uuid.UUID, approvedBy string) (bool, error) {
	db, err := s.tenants.Database(ctx, organizationID)
	if err != nil {
		return false, fmt.Errorf("failed to resolve tenant database: %w", err)
	}

	approved := false
	err = db.Transaction(ctx, func(tx pgx.Tx) error {
		order, err := s.repo.GetOrderForUpdate(ctx, tx, orderID)
		if err != nil {
			return fmt.Errorf("failed to lock purchase order: %w", err)
		}
		if order == nil {
			return domain.NotFoundf("purchase order %s", orderID)
		}
		if order.Status != domain.PurchaseOrderSubmitted {
			return nil
		}

		now := time.Now()
		order.Status = domain.PurchaseOrderApproved
		order.ApprovedBy = approvedBy
		order.ApprovedAt = &now
		if err := s.repo.UpdateOrder(ctx, tx, order); err != nil {
			return fmt.Errorf("failed to update purchase order: %w", err)
		}

		approved = true
		return nil
	})
	if err != nil {
		return false, err
	}

	if approved {
		s.logger.InfoContext(ctx, "purchase order approved",
			slog.String("order_id", orderID.String()),
			slog.String("approved_by", approvedBy))
	}

	return approved, nil
}

// GetOrder returns an order with its lines.
func (s *PurchasingService) GetOrder(ctx context.Context, organizationID string, orderID uuid.UUID) (*domain.PurchaseOrder, []domain.PurchaseOrderLine, error) {
	db, err := s.tenants.Database(ctx, organizationID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to resolve tenant database: %w", err)
	}

	order, err := s.repo.GetOrder(ctx, db, orderID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get purchase order: %w", err)
	}
	if order == nil {
		return nil, nil, domain.NotFoundf("purchase order %s", orderID)
	}

	lines, err := s.repo.ListOrderLines(ctx, db, orderID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list purchase order lines: %w", err)
	}

	return order, lines, nil
}

// ListOrders returns purchase orders matching the filter.
func (s *PurchasingService) ListOrders(ctx context.Context, organizationID string, filter ports.PurchaseOrderFilter) ([]domain.PurchaseOrder, error) {
	db, err := s.tenants.Database(ctx, organizationID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve tenant database: %w", err)
	}

	orders, err := s.repo.ListOrders(ctx, db, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list purchase orders: %w", err)
	}
	return orders, nil
}

// ReceiveGoods posts one receipt against an approved or receiving order.
// Requested quantities beyond a line's outstanding amount are clamped; fully
// received lines are skipped. The order stays in Receiving until explicitly
// closed.
func (s *PurchasingService) ReceiveGoods(ctx context.Context, organizationID string, orderID uuid.UUID, lines []ports.ReceiveLineRequest, receivedBy string) (*domain.GoodsReceipt, error) {
	if len(lines) == 0 {
		return nil, domain.Validationf("at least one receive line is required")
	}
	for _, l := range lines {
		if !l.Quantity.IsPositive() {
			return nil, domain.Validationf("receive quantity must be positive")
		}
	}

	db, err := s.tenants.Database(ctx, organizationID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve tenant database: %w", err)
	}

	var receipt *domain.GoodsReceipt
	err = db.Transaction(ctx, func(tx pgx.Tx) error {
		order, err := s.repo.GetOrderForUpdate(ctx, tx, orderID)
		if err != nil {
			return fmt.Errorf("failed to lock purchase order: %w", err)
		}
		if order == nil {
			return domain.NotFoundf("purchase order %s", orderID)
		}
		if !order.CanReceive() {
			return domain.InvalidStatef("purchase order %s is %s", orderID, order.Status)
		}

		orderLines, err := s.repo.ListOrderLines(ctx, tx, orderID)
		if err != nil {
			return fmt.Errorf("failed to list purchase order lines: %w", err)
		}
		byID := make(map[uuid.UUID]*domain.PurchaseOrderLine, len(orderLines))
		for i := range orderLines {
			byID[orderLines[i].ID] = &orderLines[i]
		}

		receipt = &domain.GoodsReceipt{
			ID:              uuid.New(),
			PurchaseOrderID: orderID,
			ReceivedBy:      receivedBy,
			ReceivedAt:      time.Now(),
		}
		if err := s.repo.InsertReceipt(ctx, tx, receipt); err != nil {
			return fmt.Errorf("failed to create goods receipt: %w", err)
		}

		for _, req := range lines {
			line, ok := byID[req.PurchaseOrderLineID]
			if !ok {
				return domain.NotFoundf("purchase order line %s", req.PurchaseOrderLineID)
			}

			applied := decimal.Min(req.Quantity, line.Outstanding())
			if !applied.IsPositive() {
				// Line already fully received.
				continue
			}

			line.QuantityReceived = line.QuantityReceived.Add(applied)
			if err := s.repo.UpdateOrderLineReceived(ctx, tx, line); err != nil {
				return fmt.Errorf("failed to update purchase order line: %w", err)
			}

			receiptLine := &domain.GoodsReceiptLine{
				ID:                  uuid.New(),
				GoodsReceiptID:      receipt.ID,
				PurchaseOrderLineID: line.ID,
				ProductID:           line.ProductID,
				QuantityReceived:    applied,
				UnitCost:            line.UnitCost,
			}
			if err := s.repo.InsertReceiptLine(ctx, tx, receiptLine); err != nil {
				return fmt.Errorf("failed to create goods receipt line: %w", err)
			}

			if err := s.receiveIntoLedger(ctx, tx, line.ProductID, order.BranchID,
				applied, line.UnitCost, receipt.ID, receivedBy); err != nil {
				return err
			}
		}

		order.Status = domain.PurchaseOrderReceiving
		if err := s.repo.UpdateOrder(ctx, tx, order); err != nil {
			return fmt.Errorf("failed to update purchase order: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "goods received",
		slog.String("order_id", orderID.String()),
		slog.String("receipt_id", receipt.ID.String()),
		slog.String("received_by", receivedBy))

	return receipt, nil
}

// CloseOrder closes an order once every line is fully received. Returns false
// when lines are still outstanding or the order is already closed.
func (s *PurchasingService) CloseOrder(ctx context.Context, organizationID string, orderID uuid.UUID) (bool, error) {
	db, err := s.tenants.Database(ctx, organizationID)
	if err != nil {
		return false, fmt.Errorf("failed to resolve tenant database: %w", err)
	}

	closed := false
	err = db.Transaction(ctx, func(tx pgx.Tx) error {
		order, err := s.repo.GetOrderForUpdate(ctx, tx, orderID)
		if err != nil {
			return fmt.Errorf("failed to lock purchase order: %w", err)
		}
		if order == nil {
			return domain.NotFoundf("purchase order %s", orderID)
		}
		if order.Status == domain.PurchaseOrderClosed {
			return nil
		}

		lines, err := s.repo.ListOrderLines(ctx, tx, orderID)
		if err != nil {
			return fmt.Errorf("failed to list purchase order lines: %w", err)
		}
		for i := range lines {
			if lines[i].Outstanding().IsPositive() {
				return nil
			}
		}

		order.Status = domain.PurchaseOrderClosed
		if err := s.repo.UpdateOrder(ctx, tx, order); err != nil {
			return fmt.Errorf("failed to update purchase order: %w", err)
		}

		closed = true
		return nil
	})
	if err != nil {
		return false, err
	}

	return closed, nil
}

// CreateReturn opens a submitted purchase return with its lines.
func (s *PurchasingService) CreateReturn(ctx context.Context, organizationID, supplierID, branchID, reason, createdBy string, lines []ports.PurchaseReturnLineRequest) (*domain.PurchaseReturn, error) {
	if supplierID == "" || branchID == "" {
		return nil, domain.Validationf("supplier id and branch id are required")
	}
	if len(lines) == 0 {
		return nil, domain.Validationf("at least one return line is required")
	}
	for _, l := range lines {
		if l.ProductID == "" {
			return nil, domain.Validationf("product id is required")
		}
		if !l.Quantity.IsPositive() {
			return nil, domain.Validationf("return quantity must be positive")
		}
	}

	db, err := s.tenants.Database(ctx, organizationID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve tenant database: %w", err)
	}

	ret := &domain.PurchaseReturn{
		ID:         uuid.New(),
		SupplierID: supplierID,
		BranchID:   branchID,
		Reason:     reason,
		Status:     domain.PurchaseReturnSubmitted,
		CreatedBy:  createdBy,
		CreatedAt:  time.Now(),
	}
	err = db.Transaction(ctx, func(tx pgx.Tx) error {
		if err := s.repo.InsertReturn(ctx, tx, ret); err != nil {
			return fmt.Errorf("failed to create purchase return: %w", err)
		}
		for _, l := range lines {
			line := &domain.PurchaseReturnLine{
				ID:               uuid.New(),
				PurchaseReturnID: ret.ID,
				ProductID:        l.ProductID,
				Quantity:         l.Quantity,
				UnitCost:         l.UnitCost,
			}
			if err := s.repo.InsertReturnLine(ctx, tx, line); err != nil {
				return fmt.Errorf("failed to create purchase return line: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return ret, nil
}

// ApproveReturn deducts the returned stock. The moving-average cost is left
// untouched; returns do not unwind the average. Returns false when the return
// was not submitted.
func (s *PurchasingService) ApproveReturn(ctx context.Context, organizationID string, returnID uuid.UUID, approvedBy string) (bool, error) {
	db, err := s.tenants.Database(ctx, organizationID)
	if err != nil {
		return false, fmt.Errorf("failed to resolve tenant database: %w", err)
	}

	approved := false
	err = db.Transaction(ctx, func(tx pgx.Tx) error {
		ret, err := s.repo.GetReturnForUpdate(ctx, tx, returnID)
		if err != nil {
			return fmt.Errorf("failed to lock purchase return: %w", err)
		}
		if ret == nil {
			return domain.NotFoundf("purchase return %s", returnID)
		}
		if ret.Status != domain.PurchaseReturnSubmitted {
			return nil
		}

		ret.Status = domain.PurchaseReturnApproved
		if err := s.repo.UpdateReturn(ctx, tx, ret); err != nil {
			return fmt.Errorf("failed to update purchase return: %w", err)
		}

		lines, err := s.repo.ListReturnLines(ctx, tx, returnID)
		if err != nil {
			return fmt.Errorf("failed to list purchase return lines: %w", err)
		}
		for i := range lines {
			line := &lines[i]
			item, err := s.inventoryRepo.GetItemForUpdate(ctx, tx, line.ProductID, ret.BranchID)
			if err != nil {
				return fmt.Errorf("failed to lock inventory item: %w", err)
			}
			if item == nil {
				item = &domain.InventoryItem{ProductID: line.ProductID, BranchID: ret.BranchID}
			}

			item.CurrentStock = item.CurrentStock.Sub(line.Quantity)
			item.LastUpdated = time.Now()
			if err := s.inventoryRepo.UpsertItem(ctx, tx, item); err != nil {
				return fmt.Errorf("failed to save inventory item: %w", err)
			}

			movement := &domain.StockMovement{
				ID:          uuid.New(),
				ProductID:   line.ProductID,
				BranchID:    ret.BranchID,
				Delta:       line.Quantity.Neg(),
				Reason:      "Purchase return",
				ReferenceID: ret.ID.String(),
				PerformedBy: approvedBy,
				PerformedAt: time.Now(),
			}
			if err := s.inventoryRepo.InsertMovement(ctx, tx, movement); err != nil {
				return fmt.Errorf("failed to record stock movement: %w", err)
			}
		}

		approved = true
		return nil
	})
	if err != nil {
		return false, err
	}

	if approved {
		s.logger.InfoContext(ctx, "purchase return approved",
			slog.String("return_id", returnID.String()),
			slog.String("approved_by", approvedBy))
	}

	return approved, nil
}

// receiveIntoLedger adds received goods to the ledger at unit cost, feeding
// the moving average.
func (s *PurchasingService) receiveIntoLedger(ctx context.Context, tx pgx.Tx, productID, branchID string,
	quantity, unitCost decimal.Decimal, receiptID uuid.UUID, receivedBy string) error {

	item, err := s.inventoryRepo.GetItemForUpdate(ctx, tx, productID, branchID)
	if err != nil {
		return fmt.Errorf("failed to lock inventory item: %w", err)
	}
	if item == nil {
		item = &domain.InventoryItem{ProductID: productID, BranchID: branchID}
	}

	item.ApplyReceipt(quantity, unitCost)
	if err := s.inventoryRepo.UpsertItem(ctx, tx, item); err != nil {
		return fmt.Errorf("failed to save inventory item: %w", err)
	}

	movement := &domain.StockMovement{
		ID:          uuid.New(),
		ProductID:   productID,
		BranchID:    branchID,
		Delta:       quantity,
		Reason:      "Purchase order receipt",
		ReferenceID: receiptID.String(),
		PerformedBy: receivedBy,
		PerformedAt: time.Now(),
	}
	if err := s.inventoryRepo.InsertMovement(ctx, tx, movement); err != nil {
		return fmt.Errorf("failed to record stock movement: %w", err)
	}

	return nil
}
