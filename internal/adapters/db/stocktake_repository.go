// internal/adapters/db/stocktake_repository.go
package db

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/zipos/zipos-be/internal/core/domain"
	"github.com/zipos/zipos-be/internal/core/ports"
)

// stocktakeRepository implements ports.StocktakeRepository
type stocktakeRepository struct {
	logger *slog.Logger
}

// NewStocktakeRepository creates a new stocktake repository
func NewStocktakeRepository(logger *slog.Logger) ports.StocktakeRepository {
	return &stocktakeRepository{
		logger: logger.With(slog.String("repository", "stocktake")),
	}
}

const stocktakeSessionColumns = `id, branch_id, status, started_by, started_at, finalized_by, finalized_at`

func scanStocktakeSession(row pgx.Row) (*domain.StocktakeSession, error) {
	session := &domain.StocktakeSession{}
	var finalizedBy sql.NullString
	err := row.Scan(
		&session.ID, &session.BranchID, &session.Status,
		&session.StartedBy, &session.StartedAt, &finalizedBy, &session.FinalizedAt,
	)
	if err != nil {
		return nil, err
	}
	session.FinalizedBy = finalizedBy.String
	return session, nil
}

// InsertSession opens a count session
func (r *stocktakeRepository) InsertSession(ctx context.Context, q ports.Querier, session *domain.StocktakeSession) error {
	query := `
		INSERT INTO stocktake_sessions (` + stocktakeSessionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := q.Exec(ctx, query,
		session.ID, session.BranchID, session.Status,
		session.StartedBy, session.StartedAt, nullString(session.FinalizedBy), session.FinalizedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert stocktake session: %w", err)
	}

	r.logger.DebugContext(ctx, "stocktake session opened",
		slog.String("session_id", session.ID.String()),
		slog.String("branch_id", session.BranchID))

	return nil
}

// GetSession retrieves a session, nil when absent
func (r *stocktakeRepository) GetSession(ctx context.Context, q ports.Querier, id uuid.UUID) (*domain.StocktakeSession, error) {
	query := `SELECT ` + stocktakeSessionColumns + ` FROM stocktake_sessions WHERE id = $1`

	session, err := ScanOne(q.QueryRow(ctx, query, id), scanStocktakeSession)
	if err != nil {
		return nil, fmt.Errorf("failed to find stocktake session: %w", err)
	}
	return session, nil
}

// GetSessionForUpdate locks the session row until the transaction ends
func (r *stocktakeRepository) GetSessionForUpdate(ctx context.Context, q ports.Querier, id uuid.UUID) (*domain.StocktakeSession, error) {
	query := `SELECT ` + stocktakeSessionColumns + ` FROM stocktake_sessions WHERE id = $1 FOR UPDATE`

	session, err := ScanOne(q.QueryRow(ctx, query, id), scanStocktakeSession)
	if err != nil {
		return nil, fmt.Errorf("failed to lock stocktake session: %w", err)
	}
	return session, nil
}

// GetOpenSessionForBranch returns the branch's open session, nil when none
func (r *stocktakeRepository) GetOpenSessionForBranch(ctx context.Context, q ports.Querier, branchID string) (*domain.StocktakeSession, error) {
	query := `
		SELECT ` + stocktakeSessionColumns + `
		FROM stocktake_sessions
		WHERE branch_id = $1 AND status = $2`

	session, err := ScanOne(q.QueryRow(ctx, query, branchID, domain.StocktakeOpen), scanStocktakeSession)
	if err != nil {
		return nil, fmt.Errorf("failed to find open stocktake session: %w", err)
	}
	return session, nil
}

// UpdateSession persists a status transition
func (r *stocktakeRepository) UpdateSession(ctx context.Context, q ports.Querier, session *domain.StocktakeSession) error {
	query := `
		UPDATE stocktake_sessions
		SET status = $2, finalized_by = $3, finalized_at = $4
		WHERE id = $1`

	tag, err := q.Exec(ctx, query,
		session.ID, session.Status, nullString(session.FinalizedBy), session.FinalizedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update stocktake session: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("stocktake session not found: %s", session.ID)
	}
	return nil
}

const stocktakeLineColumns = `id, session_id, product_id, expected_qty, counted_qty, variance_qty, counted_at`

// GetLine retrieves the product's line for a session, nil when not counted yet
func (r *stocktakeRepository) GetLine(ctx context.Context, q ports.Querier, sessionID uuid.UUID, productID string) (*domain.StocktakeLine, error) {
	query := `
		SELECT ` + stocktakeLineColumns + `
		FROM stocktake_lines
		WHERE session_id = $1 AND product_id = $2`

	line := &domain.StocktakeLine{}
	err := q.QueryRow(ctx, query, sessionID, productID).Scan(
		&line.ID, &line.SessionID, &line.ProductID,
		&line.ExpectedQty, &line.CountedQty, &line.VarianceQty, &line.CountedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find stocktake line: %w", err)
	}
	return line, nil
}

// UpsertLine writes the count; re-counts keep the frozen expected quantity
func (r *stocktakeRepository) UpsertLine(ctx context.Context, q ports.Querier, line *domain.StocktakeLine) error {
	query := `
		INSERT INTO stocktake_lines (` + stocktakeLineColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (session_id, product_id) DO UPDATE SET
			counted_qty = EXCLUDED.counted_qty,
			variance_qty = EXCLUDED.variance_qty,
			counted_at = EXCLUDED.counted_at`

	_, err := q.Exec(ctx, query,
		line.ID, line.SessionID, line.ProductID,
		line.ExpectedQty, line.CountedQty, line.VarianceQty, line.CountedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert stocktake line: %w", err)
	}
	return nil
}

// ListLines returns the session's lines ordered by product
func (r *stocktakeRepository) ListLines(ctx context.Context, q ports.Querier, sessionID uuid.UUID) ([]domain.StocktakeLine, error) {
	query := `
		SELECT ` + stocktakeLineColumns + `
		FROM stocktake_lines
		WHERE session_id = $1
		ORDER BY product_id`

	rows, err := q.Query(ctx, query, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to query stocktake lines: %w", err)
	}
	defer rows.Close()

	var lines []domain.StocktakeLine
	for rows.Next() {
		var line domain.StocktakeLine
		err := rows.Scan(
			&line.ID, &line.SessionID, &line.ProductID,
			&line.ExpectedQty, &line.CountedQty, &line.VarianceQty, &line.CountedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan stocktake line: %w", err)
		}
		lines = append(lines, line)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return lines, nil
}
