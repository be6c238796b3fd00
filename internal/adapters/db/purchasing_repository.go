// internal/adapters/db/purchasing_repository.go
package db

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/zipos/zipos-be/internal/core/domain"
	"github.com/zipos/zipos-be/internal/core/ports"
)

// purchasingRepository implements ports.PurchasingRepository
type purchasingRepository struct {
	logger *slog.Logger
}

// NewPurchasingRepository creates a new purchasing repository
func NewPurchasingRepository(logger *slog.Logger) ports.PurchasingRepository {
	return &purchasingRepository{
		logger: logger.With(slog.String("repository", "purchasing")),
	}
}

const purchaseOrderColumns = `id, supplier_id, branch_id, status, created_by, created_at, approved_by, approved_at`

func scanPurchaseOrder(row pgx.Row) (*domain.PurchaseOrder, error) {
	order := &domain.PurchaseOrder{}
	var approvedBy sql.NullString
	err := row.Scan(
		&order.ID, &order.SupplierID, &order.BranchID, &order.Status,
		&order.CreatedBy, &order.CreatedAt, &approvedBy, &order.ApprovedAt,
	)
	if err != nil {
		return nil, err
	}
	order.ApprovedBy = approvedBy.String
	return order, nil
}

// InsertOrder creates a draft purchase order
func (r *purchasingRepository) InsertOrder(ctx context.Context, q ports.Querier, order *domain.PurchaseOrder) error {
	query := `
		INSERT INTO purchase_orders (` + purchaseOrderColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := q.Exec(ctx, query,
		order.ID, order.SupplierID, order.BranchID, order.Status,
		order.CreatedBy, order.CreatedAt, nullString(order.ApprovedBy), order.ApprovedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert purchase order: %w", err)
	}

	r.logger.DebugContext(ctx, "purchase order created",
		slog.String("order_id", order.ID.String()),
		slog.String("supplier_id", order.SupplierID))

	return nil
}

// GetOrder retrieves an order header, nil when absent
func (r *purchasingRepository) GetOrder(ctx context.Context, q ports.Querier, id uuid.UUID) (*domain.PurchaseOrder, error) {
	query := `SELECT ` + purchaseOrderColumns + ` FROM purchase_orders WHERE id = $1`

	order, err := ScanOne(q.QueryRow(ctx, query, id), scanPurchaseOrder)
	if err != nil {
		return nil, fmt.Errorf("failed to find purchase order: %w", err)
	}
	return order, nil
}

// GetOrderForUpdate locks the order row until the transaction ends
func (r *purchasingRepository) GetOrderForUpdate(ctx context.Context, q ports.Querier, id uuid.UUID) (*domain.PurchaseOrder, error) {
	query := `SELECT ` + purchaseOrderColumns + ` FROM purchase_orders WHERE id = $1 FOR UPDATE`

	order, err := ScanOne(q.QueryRow(ctx, query, id), scanPurchaseOrder)
	if err != nil {
		return nil, fmt.Errorf("failed to lock purchase order: %w", err)
	}
	return order, nil
}

// UpdateOrder persists a status transition
func (r *purchasingRepository) UpdateOrder(ctx context.Context, q ports.Querier, order *domain.PurchaseOrder) error {
	query := `
		UPDATE purchase_orders
		SET status = $2, approved_by = $3, approved_at = $4
		WHERE id = $1`

	tag, err := q.Exec(ctx, query,
		order.ID, order.Status, nullString(order.ApprovedBy), order.ApprovedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update purchase order: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("purchase order not found: %s", order.ID)
	}
	return nil
}

// ListOrders retrieves orders matching the filter, newest first
func (r *purchasingRepository) ListOrders(ctx context.Context, q ports.Querier, filter ports.PurchaseOrderFilter) ([]domain.PurchaseOrder, error) {
	qb := squirrel.Select(
		"id", "supplier_id", "branch_id", "status",
		"created_by", "created_at", "approved_by", "approved_at",
	).From("purchase_orders").
		PlaceholderFormat(squirrel.Dollar).
		OrderBy("created_at DESC")

	if filter.SupplierID != "" {
		qb = qb.Where(squirrel.Eq{"supplier_id": filter.SupplierID})
	}
	if filter.BranchID != "" {
		qb = qb.Where(squirrel.Eq{"branch_id": filter.BranchID})
	}
	if filter.Status != "" {
		qb = qb.Where(squirrel.Eq{"status": filter.Status})
	}
	if filter.Limit > 0 {
		qb = qb.Limit(uint64(filter.Limit))
	}
	if filter.Offset > 0 {
		qb = qb.Offset(uint64(filter.Offset))
	}

	sqlQuery, args, err := qb.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := q.Query(ctx, sqlQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query purchase orders: %w", err)
	}
	defer rows.Close()

	var orders []domain.PurchaseOrder
	for rows.Next() {
		var order domain.PurchaseOrder
		var approvedBy sql.NullString
		err := rows.Scan(
			&order.ID, &order.SupplierID, &order.BranchID, &order.Status,
			&order.CreatedBy, &order.CreatedAt, &approvedBy, &order.ApprovedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan purchase order: %w", err)
		}
		order.ApprovedBy = approvedBy.String
		orders = append(orders, order)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return orders, nil
}

const orderLineColumns = `id, purchase_order_id, product_id, quantity_ordered, quantity_received, unit_cost`

// InsertOrderLine appends a line to an order
func (r *purchasingRepository) InsertOrderLine(ctx context.Context, q ports.Querier, line *domain.PurchaseOrderLine) error {
	query := `
		INSERT INTO purchase_order_lines (` + orderLineColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := q.Exec(ctx, query,
		line.ID, line.PurchaseOrderID, line.ProductID,
		line.QuantityOrdered, line.QuantityReceived, line.UnitCost,
	)
	if err != nil {
		return fmt.Errorf("failed to insert purchase order line: %w", err)
	}
	return nil
}

// GetOrderLine retrieves one line, nil when absent
func (r *purchasingRepository) GetOrderLine(ctx context.Context, q ports.Querier, id uuid.UUID) (*domain.PurchaseOrderLine, error) {
	query := `SELECT ` + orderLineColumns + ` FROM purchase_order_lines WHERE id = $1`

	line := &domain.PurchaseOrderLine{}
	err := q.QueryRow(ctx, query, id).Scan(
		&line.ID, &line.PurchaseOrderID, &line.ProductID,
		&line.QuantityOrdered, &line.QuantityReceived, &line.UnitCost,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find purchase order line: %w", err)
	}
	return line, nil
}

// ListOrderLines returns the order's lines in insertion order
func (r *purchasingRepository) ListOrderLines(ctx context.Context, q ports.Querier, orderID uuid.UUID) ([]domain.PurchaseOrderLine, error) {
	query := `SELECT ` + orderLineColumns + ` FROM purchase_order_lines WHERE purchase_order_id = $1 ORDER BY id`

	rows, err := q.Query(ctx, query, orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to query purchase order lines: %w", err)
	}
	defer rows.Close()

	var lines []domain.PurchaseOrderLine
	for rows.Next() {
		var line domain.PurchaseOrderLine
		err := rows.Scan(
			&line.ID, &line.PurchaseOrderID, &line.ProductID,
			&line.QuantityOrdered, &line.QuantityReceived, &line.UnitCost,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan purchase order line: %w", err)
		}
		lines = append(lines, line)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return lines, nil
}

// UpdateOrderLineReceived persists the accumulated received quantity
func (r *purchasingRepository) UpdateOrderLineReceived(ctx context.Context, q ports.Querier, line *domain.PurchaseOrderLine) error {
	query := `UPDATE purchase_order_lines SET quantity_received = $2 WHERE id = $1`

	tag, err := q.Exec(ctx, query, line.ID, line.QuantityReceived)
	if err != nil {
		return fmt.Errorf("failed to update purchase order line: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("purchase order line not found: %s", line.ID)
	}
	return nil
}

// InsertReceipt writes a goods receipt header
func (r *purchasingRepository) InsertReceipt(ctx context.Context, q ports.Querier, receipt *domain.GoodsReceipt) error {
	query := `
		INSERT INTO goods_receipts (id, purchase_order_id, received_by, received_at)
		VALUES ($1, $2, $3, $4)`

	_, err := q.Exec(ctx, query,
		receipt.ID, receipt.PurchaseOrderID, receipt.ReceivedBy, receipt.ReceivedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert goods receipt: %w", err)
	}
	return nil
}

// InsertReceiptLine writes one applied receipt quantity
func (r *purchasingRepository) InsertReceiptLine(ctx context.Context, q ports.Querier, line *domain.GoodsReceiptLine) error {
	query := `
		INSERT INTO goods_receipt_lines (
			id, goods_receipt_id, purchase_order_line_id,
			product_id, quantity_received, unit_cost
		) VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := q.Exec(ctx, query,
		line.ID, line.GoodsReceiptID, line.PurchaseOrderLineID,
		line.ProductID, line.QuantityReceived, line.UnitCost,
	)
	if err != nil {
		return fmt.Errorf("failed to insert goods receipt line: %w", err)
	}
	return nil
}

// ListReceipts returns the order's receipts in receiving order
func (r *purchasingRepository) ListReceipts(ctx context.Context, q ports.Querier, orderID uuid.UUID) ([]domain.GoodsReceipt, error) {
	query := `
		SELECT id, purchase_order_id, received_by, received_at
		FROM goods_receipts
		WHERE purchase_order_id = $1
		ORDER BY received_at`

	rows, err := q.Query(ctx, query, orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to query goods receipts: %w", err)
	}
	defer rows.Close()

	var receipts []domain.GoodsReceipt
	for rows.Next() {
		var receipt domain.GoodsReceipt
		err := rows.Scan(&receipt.ID, &receipt.PurchaseOrderID, &receipt.ReceivedBy, &receipt.ReceivedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan goods receipt: %w", err)
		}
		receipts = append(receipts, receipt)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return receipts, nil
}

// ListReceiptLines returns one receipt's lines
func (r *purchasingRepository) ListReceiptLines(ctx context.Context, q ports.Querier, receiptID uuid.UUID) ([]domain.GoodsReceiptLine, error) {
	query := `
		SELECT id, goods_receipt_id, purchase_order_line_id, product_id, quantity_received, unit_cost
		FROM goods_receipt_lines
		WHERE goods_receipt_id = $1
		ORDER BY id`

	rows, err := q.Query(ctx, query, receiptID)
	if err != nil {
		return nil, fmt.Errorf("failed to query goods receipt lines: %w", err)
	}
	defer rows.Close()

	var lines []domain.GoodsReceiptLine
	for rows.Next() {
		var line domain.GoodsReceiptLine
		err := rows.Scan(
			&line.ID, &line.GoodsReceiptID, &line.PurchaseOrderLineID,
			&line.ProductID, &line.QuantityReceived, &line.UnitCost,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan goods receipt line: %w", err)
		}
		lines = append(lines, line)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return lines, nil
}

// InsertReturn writes a submitted purchase return header
func (r *purchasingRepository) InsertReturn(ctx context.Context, q ports.Querier, ret *domain.PurchaseReturn) error {
	query := `
		INSERT INTO purchase_returns (id, supplier_id, branch_id, reason, status, created_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := q.Exec(ctx, query,
		ret.ID, ret.SupplierID, ret.BranchID, ret.Reason, ret.Status, ret.CreatedBy, ret.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert purchase return: %w", err)
	}
	return nil
}

// InsertReturnLine writes one returned product line
func (r *purchasingRepository) InsertReturnLine(ctx context.Context, q ports.Querier, line *domain.PurchaseReturnLine) error {
	query := `
		INSERT INTO purchase_return_lines (id, purchase_return_id, product_id, quantity, unit_cost)
		VALUES ($1, $2, $3, $4, $5)`

	_, err := q.Exec(ctx, query,
		line.ID, line.PurchaseReturnID, line.ProductID, line.Quantity, line.UnitCost,
	)
	if err != nil {
		return fmt.Errorf("failed to insert purchase return line: %w", err)
	}
	return nil
}

// GetReturnForUpdate locks the return row until the transaction ends
func (r *purchasingRepository) GetReturnForUpdate(ctx context.Context, q ports.Querier, id uuid.UUID) (*domain.PurchaseReturn, error) {
	query := `
		SELECT id, supplier_id, branch_id, reason, status, created_by, created_at
		FROM purchase_returns
		WHERE id = $1
		FOR UPDATE`

	ret := &domain.PurchaseReturn{}
	err := q.QueryRow(ctx, query, id).Scan(
		&ret.ID, &ret.SupplierID, &ret.BranchID, &ret.Reason,
		&ret.Status, &ret.CreatedBy, &ret.CreatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to lock purchase return: %w", err)
	}
	return ret, nil
}

// ListReturnLines returns the return's lines
func (r *purchasingRepository) ListReturnLines(ctx context.Context, q ports.Querier, returnID uuid.UUID) ([]domain.PurchaseReturnLine, error) {
	query := `
		SELECT id, purchase_return_id, product_id, quantity, unit_cost
		FROM purchase_return_lines
		WHERE purchase_return_id = $1
		ORDER BY id`

	rows, err := q.Query(ctx, query, returnID)
	if err != nil {
		return nil, fmt.Errorf("failed to query purchase return lines: %w", err)
	}
	defer rows.Close()

	var lines []domain.PurchaseReturnLine
	for rows.Next() {
		var line domain.PurchaseReturnLine
		err := rows.Scan(&line.ID, &line.PurchaseReturnID, &line.ProductID, &line.Quantity, &line.UnitCost)
		if err != nil {
			return nil, fmt.Errorf("failed to scan purchase return line: %w", err)
		}
		lines = append(lines, line)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return lines, nil
}

// UpdateReturn persists a status transition
func (r *purchasingRepository) UpdateReturn(ctx context.Context, q ports.Querier, ret *domain.PurchaseReturn) error {
	query := `UPDATE purchase_returns SET status = $2 WHERE id = $1`

	tag, err := q.Exec(ctx, query, ret.ID, ret.Status)
	if err != nil {
		return fmt.Errorf("failed to update purchase return: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("purchase return not found: %s", ret.ID)
	}
	return nil
}
