// internal/adapters/db/sales_repository.go
package db

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/zipos/zipos-be/internal/core/domain"
	"github.com/zipos/zipos-be/internal/core/ports"
)

// salesRepository implements ports.SalesRepository
type salesRepository struct {
	logger *slog.Logger
}

// NewSalesRepository creates a new sales repository
func NewSalesRepository(logger *slog.Logger) ports.SalesRepository {
	return &salesRepository{
		logger: logger.With(slog.String("repository", "sales")),
	}
}

const cartColumns = `id, branch_id, user_id, total_amount, created_at, updated_at`

func scanCart(row pgx.Row) (*domain.Cart, error) {
	cart := &domain.Cart{}
	err := row.Scan(
		&cart.ID, &cart.BranchID, &cart.UserID, &cart.TotalAmount,
		&cart.CreatedAt, &cart.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return cart, nil
}

// InsertCart creates an empty cart
func (r *salesRepository) InsertCart(ctx context.Context, q ports.Querier, cart *domain.Cart) error {
	query := `
		INSERT INTO carts (id, branch_id, user_id, total_amount, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $5)`

	_, err := q.Exec(ctx, query,
		cart.ID, cart.BranchID, cart.UserID, cart.TotalAmount, cart.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert cart: %w", err)
	}

	r.logger.DebugContext(ctx, "cart created", slog.String("cart_id", cart.ID.String()))
	return nil
}

// GetCart retrieves a cart, nil when absent
func (r *salesRepository) GetCart(ctx context.Context, q ports.Querier, id uuid.UUID) (*domain.Cart, error) {
	query := `SELECT ` + cartColumns + ` FROM carts WHERE id = $1`

	cart, err := ScanOne(q.QueryRow(ctx, query, id), scanCart)
	if err != nil {
		return nil, fmt.Errorf("failed to find cart: %w", err)
	}
	return cart, nil
}

// GetCartForUpdate locks the cart row until the transaction ends
func (r *salesRepository) GetCartForUpdate(ctx context.Context, q ports.Querier, id uuid.UUID) (*domain.Cart, error) {
	query := `SELECT ` + cartColumns + ` FROM carts WHERE id = $1 FOR UPDATE`

	cart, err := ScanOne(q.QueryRow(ctx, query, id), scanCart)
	if err != nil {
		return nil, fmt.Errorf("failed to lock cart: %w", err)
	}
	return cart, nil
}

// UpdateCartTotal persists the running total
func (r *salesRepository) UpdateCartTotal(ctx context.Context, q ports.Querier, cart *domain.Cart) error {
	query := `UPDATE carts SET total_amount = $2, updated_at = $3 WHERE id = $1`

	tag, err := q.Exec(ctx, query, cart.ID, cart.TotalAmount, cart.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to update cart total: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("cart not found: %s", cart.ID)
	}
	return nil
}

// DeleteCart removes a cart and its items
func (r *salesRepository) DeleteCart(ctx context.Context, q ports.Querier, id uuid.UUID) error {
	if _, err := q.Exec(ctx, `DELETE FROM cart_items WHERE cart_id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete cart items: %w", err)
	}
	if _, err := q.Exec(ctx, `DELETE FROM carts WHERE id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete cart: %w", err)
	}

	r.logger.DebugContext(ctx, "cart deleted", slog.String("cart_id", id.String()))
	return nil
}

const cartItemColumns = `id, cart_id, product_id, name, quantity, unit_price, discount_amount, total_amount`

// InsertCartItem appends one line to a cart
func (r *salesRepository) InsertCartItem(ctx context.Context, q ports.Querier, item *domain.CartItem) error {
	query := `
		INSERT INTO cart_items (` + cartItemColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := q.Exec(ctx, query,
		item.ID, item.CartID, item.ProductID, item.Name,
		item.Quantity, item.UnitPrice, item.DiscountAmount, item.TotalAmount,
	)
	if err != nil {
		return fmt.Errorf("failed to insert cart item: %w", err)
	}
	return nil
}

// UpdateCartItem rewrites a line's discount and total
func (r *salesRepository) UpdateCartItem(ctx context.Context, q ports.Querier, item *domain.CartItem) error {
	query := `
		UPDATE cart_items
		SET quantity = $2, unit_price = $3, discount_amount = $4, total_amount = $5
		WHERE id = $1`

	tag, err := q.Exec(ctx, query,
		item.ID, item.Quantity, item.UnitPrice, item.DiscountAmount, item.TotalAmount,
	)
	if err != nil {
		return fmt.Errorf("failed to update cart item: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("cart item not found: %s", item.ID)
	}
	return nil
}

// GetCartItem retrieves one line scoped to its cart, nil when absent
func (r *salesRepository) GetCartItem(ctx context.Context, q ports.Querier, cartID, itemID uuid.UUID) (*domain.CartItem, error) {
	query := `SELECT ` + cartItemColumns + ` FROM cart_items WHERE id = $1 AND cart_id = $2`

	item := &domain.CartItem{}
	err := q.QueryRow(ctx, query, itemID, cartID).Scan(
		&item.ID, &item.CartID, &item.ProductID, &item.Name,
		&item.Quantity, &item.UnitPrice, &item.DiscountAmount, &item.TotalAmount,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find cart item: %w", err)
	}
	return item, nil
}

// ListCartItems returns the cart's lines in insertion order
func (r *salesRepository) ListCartItems(ctx context.Context, q ports.Querier, cartID uuid.UUID) ([]domain.CartItem, error) {
	query := `SELECT ` + cartItemColumns + ` FROM cart_items WHERE cart_id = $1 ORDER BY id`

	rows, err := q.Query(ctx, query, cartID)
	if err != nil {
		return nil, fmt.Errorf("failed to query cart items: %w", err)
	}
	defer rows.Close()

	var items []domain.CartItem
	for rows.Next() {
		var item domain.CartItem
		err := rows.Scan(
			&item.ID, &item.CartID, &item.ProductID, &item.Name,
			&item.Quantity, &item.UnitPrice, &item.DiscountAmount, &item.TotalAmount,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan cart item: %w", err)
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return items, nil
}

// DeleteCartItem removes one line scoped to its cart
func (r *salesRepository) DeleteCartItem(ctx context.Context, q ports.Querier, cartID, itemID uuid.UUID) error {
	tag, err := q.Exec(ctx, `DELETE FROM cart_items WHERE id = $1 AND cart_id = $2`, itemID, cartID)
	if err != nil {
		return fmt.Errorf("failed to delete cart item: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("cart item not found: %s", itemID)
	}
	return nil
}

const saleColumns = `id, branch_id, customer_id, user_id, transaction_date, sub_total, discount_amount, tax_amount, total_amount, status`

func scanSale(row pgx.Row) (*domain.Sale, error) {
	sale := &domain.Sale{}
	var customerID sql.NullString
	err := row.Scan(
		&sale.ID, &sale.BranchID, &customerID, &sale.UserID, &sale.TransactionDate,
		&sale.SubTotal, &sale.DiscountAmount, &sale.TaxAmount, &sale.TotalAmount, &sale.Status,
	)
	if err != nil {
		return nil, err
	}
	sale.CustomerID = customerID.String
	return sale, nil
}

// InsertSale writes the immutable sale header
func (r *salesRepository) InsertSale(ctx context.Context, q ports.Querier, sale *domain.Sale) error {
	query := `
		INSERT INTO sales (` + saleColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	_, err := q.Exec(ctx, query,
		sale.ID, sale.BranchID, nullString(sale.CustomerID), sale.UserID, sale.TransactionDate,
		sale.SubTotal, sale.DiscountAmount, sale.TaxAmount, sale.TotalAmount, sale.Status,
	)
	if err != nil {
		return fmt.Errorf("failed to insert sale: %w", err)
	}

	r.logger.DebugContext(ctx, "sale recorded",
		slog.String("sale_id", sale.ID.String()),
		slog.String("branch_id", sale.BranchID))

	return nil
}

// GetSale retrieves a sale header, nil when absent
func (r *salesRepository) GetSale(ctx context.Context, q ports.Querier, id uuid.UUID) (*domain.Sale, error) {
	query := `SELECT ` + saleColumns + ` FROM sales WHERE id = $1`

	sale, err := ScanOne(q.QueryRow(ctx, query, id), scanSale)
	if err != nil {
		return nil, fmt.Errorf("failed to find sale: %w", err)
	}
	return sale, nil
}

// GetSaleForUpdate locks the sale row until the transaction ends
func (r *salesRepository) GetSaleForUpdate(ctx context.Context, q ports.Querier, id uuid.UUID) (*domain.Sale, error) {
	query := `SELECT ` + saleColumns + ` FROM sales WHERE id = $1 FOR UPDATE`

	sale, err := ScanOne(q.QueryRow(ctx, query, id), scanSale)
	if err != nil {
		return nil, fmt.Errorf("failed to lock sale: %w", err)
	}
	return sale, nil
}

// UpdateSaleStatus flips the sale status
func (r *salesRepository) UpdateSaleStatus(ctx context.Context, q ports.Querier, id uuid.UUID, status domain.SaleStatus) error {
	tag, err := q.Exec(ctx, `UPDATE sales SET status = $2 WHERE id = $1`, id, status)
	if err != nil {
		return fmt.Errorf("failed to update sale status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("sale not found: %s", id)
	}
	return nil
}

const saleItemColumns = `id, sale_id, product_id, name, quantity, unit_price, discount_amount, total_amount`

// InsertSaleItem writes one frozen sale line
func (r *salesRepository) InsertSaleItem(ctx context.Context, q ports.Querier, item *domain.SaleItem) error {
	query := `
		INSERT INTO sale_items (` + saleItemColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := q.Exec(ctx, query,
		item.ID, item.SaleID, item.ProductID, item.Name,
		item.Quantity, item.UnitPrice, item.DiscountAmount, item.TotalAmount,
	)
	if err != nil {
		return fmt.Errorf("failed to insert sale item: %w", err)
	}
	return nil
}

// GetSaleItem retrieves one sale line, nil when absent
func (r *salesRepository) GetSaleItem(ctx context.Context, q ports.Querier, id uuid.UUID) (*domain.SaleItem, error) {
	query := `SELECT ` + saleItemColumns + ` FROM sale_items WHERE id = $1`

	item := &domain.SaleItem{}
	err := q.QueryRow(ctx, query, id).Scan(
		&item.ID, &item.SaleID, &item.ProductID, &item.Name,
		&item.Quantity, &item.UnitPrice, &item.DiscountAmount, &item.TotalAmount,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find sale item: %w", err)
	}
	return item, nil
}

// ListSaleItems returns the sale's lines in insertion order
func (r *salesRepository) ListSaleItems(ctx context.Context, q ports.Querier, saleID uuid.UUID) ([]domain.SaleItem, error) {
	query := `SELECT ` + saleItemColumns + ` FROM sale_items WHERE sale_id = $1 ORDER BY id`

	rows, err := q.Query(ctx, query, saleID)
	if err != nil {
		return nil, fmt.Errorf("failed to query sale items: %w", err)
	}
	defer rows.Close()

	var items []domain.SaleItem
	for rows.Next() {
		var item domain.SaleItem
		err := rows.Scan(
			&item.ID, &item.SaleID, &item.ProductID, &item.Name,
			&item.Quantity, &item.UnitPrice, &item.DiscountAmount, &item.TotalAmount,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan sale item: %w", err)
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return items, nil
}

// InsertPayment writes one captured tender
func (r *salesRepository) InsertPayment(ctx context.Context, q ports.Querier, payment *domain.Payment) error {
	query := `
		INSERT INTO payments (id, sale_id, method, amount, reference, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := q.Exec(ctx, query,
		payment.ID, payment.SaleID, payment.Method, payment.Amount,
		nullString(payment.Reference), payment.Status, payment.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert payment: %w", err)
	}
	return nil
}

// ListPayments returns the sale's tenders in capture order
func (r *salesRepository) ListPayments(ctx context.Context, q ports.Querier, saleID uuid.UUID) ([]domain.Payment, error) {
	query := `
		SELECT id, sale_id, method, amount, reference, status, created_at
		FROM payments
		WHERE sale_id = $1
		ORDER BY created_at`

	rows, err := q.Query(ctx, query, saleID)
	if err != nil {
		return nil, fmt.Errorf("failed to query payments: %w", err)
	}
	defer rows.Close()

	var payments []domain.Payment
	for rows.Next() {
		var p domain.Payment
		var reference sql.NullString
		err := rows.Scan(&p.ID, &p.SaleID, &p.Method, &p.Amount, &reference, &p.Status, &p.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payment: %w", err)
		}
		p.Reference = reference.String
		payments = append(payments, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return payments, nil
}

// InsertRefund writes a pending refund header
func (r *salesRepository) InsertRefund(ctx context.Context, q ports.Querier, refund *domain.Refund) error {
	query := `
		INSERT INTO refunds (
			id, sale_id, reason, total_amount, status,
			requested_by, requested_at, resolved_by, resolved_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := q.Exec(ctx, query,
		refund.ID, refund.SaleID, refund.Reason, refund.TotalAmount, refund.Status,
		refund.RequestedBy, refund.RequestedAt, nullString(refund.ResolvedBy), refund.ResolvedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert refund: %w", err)
	}
	return nil
}

// InsertRefundItem writes one refund line
func (r *salesRepository) InsertRefundItem(ctx context.Context, q ports.Querier, item *domain.RefundItem) error {
	query := `
		INSERT INTO refund_items (
			id, refund_id, sale_item_id, product_id, quantity,
			unit_price, discount_amount, total_amount, restock
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := q.Exec(ctx, query,
		item.ID, item.RefundID, item.SaleItemID, item.ProductID, item.Quantity,
		item.UnitPrice, item.DiscountAmount, item.TotalAmount, item.Restock,
	)
	if err != nil {
		return fmt.Errorf("failed to insert refund item: %w", err)
	}
	return nil
}

// GetRefundForUpdate locks the refund row until the transaction ends
func (r *salesRepository) GetRefundForUpdate(ctx context.Context, q ports.Querier, id uuid.UUID) (*domain.Refund, error) {
	query := `
		SELECT id, sale_id, reason, total_amount, status,
			requested_by, requested_at, resolved_by, resolved_at
		FROM refunds
		WHERE id = $1
		FOR UPDATE`

	refund := &domain.Refund{}
	var resolvedBy sql.NullString
	err := q.QueryRow(ctx, query, id).Scan(
		&refund.ID, &refund.SaleID, &refund.Reason, &refund.TotalAmount, &refund.Status,
		&refund.RequestedBy, &refund.RequestedAt, &resolvedBy, &refund.ResolvedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to lock refund: %w", err)
	}
	refund.ResolvedBy = resolvedBy.String
	return refund, nil
}

// ListRefundItems returns the refund's lines
func (r *salesRepository) ListRefundItems(ctx context.Context, q ports.Querier, refundID uuid.UUID) ([]domain.RefundItem, error) {
	query := `
		SELECT id, refund_id, sale_item_id, product_id, quantity,
			unit_price, discount_amount, total_amount, restock
		FROM refund_items
		WHERE refund_id = $1
		ORDER BY id`

	rows, err := q.Query(ctx, query, refundID)
	if err != nil {
		return nil, fmt.Errorf("failed to query refund items: %w", err)
	}
	defer rows.Close()

	var items []domain.RefundItem
	for rows.Next() {
		var item domain.RefundItem
		err := rows.Scan(
			&item.ID, &item.RefundID, &item.SaleItemID, &item.ProductID, &item.Quantity,
			&item.UnitPrice, &item.DiscountAmount, &item.TotalAmount, &item.Restock,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan refund item: %w", err)
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return items, nil
}

// UpdateRefund persists a status transition
func (r *salesRepository) UpdateRefund(ctx context.Context, q ports.Querier, refund *domain.Refund) error {
	query := `
		UPDATE refunds
		SET status = $2, resolved_by = $3, resolved_at = $4
		WHERE id = $1`

	tag, err := q.Exec(ctx, query,
		refund.ID, refund.Status, nullString(refund.ResolvedBy), refund.ResolvedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update refund: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("refund not found: %s", refund.ID)
	}
	return nil
}

// SumApprovedRefunds totals approved refund amounts for a sale
func (r *salesRepository) SumApprovedRefunds(ctx context.Context, q ports.Querier, saleID uuid.UUID) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(total_amount), 0)
		FROM refunds
		WHERE sale_id = $1 AND status = $2`

	var sum decimal.Decimal
	if err := q.QueryRow(ctx, query, saleID, domain.RefundApproved).Scan(&sum); err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum approved refunds: %w", err)
	}
	return sum, nil
}

// SumRefundedQuantity totals approved refunded quantity for one sale item
func (r *salesRepository) SumRefundedQuantity(ctx context.Context, q ports.Querier, saleItemID uuid.UUID) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(ri.quantity), 0)
		FROM refund_items ri
		JOIN refunds rf ON rf.id = ri.refund_id
		WHERE ri.sale_item_id = $1 AND rf.status = $2`

	var sum decimal.Decimal
	if err := q.QueryRow(ctx, query, saleItemID, domain.RefundApproved).Scan(&sum); err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum refunded quantity: %w", err)
	}
	return sum, nil
}
