// internal/core/ports/stocktake.go
package ports

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/zipos/zipos-be/internal/core/domain"
)

// CountRequest records (or re-records) a counted quantity for one product.
type CountRequest struct {
	ProductID  string          `json:"product_id"`
	CountedQty decimal.Decimal `json:"counted_qty"`
}

// StocktakeRepository persists count sessions and their lines.
type StocktakeRepository interface {
	InsertSession(ctx context.Context, q Querier, session *domain.StocktakeSession) error
	GetSession(ctx context.Context, q Querier, id uuid.UUID) (*domain.StocktakeSession, error)
	GetSessionForUpdate(ctx context.Context, q Querier, id uuid.UUID) (*domain.StocktakeSession, error)
	GetOpenSessionForBranch(ctx context.Context, q Querier, branchID string) (*domain.StocktakeSession, error)
	UpdateSession(ctx context.Context, q Querier, session *domain.StocktakeSession) error

	// GetLine returns nil, nil when the product has not been counted yet.
	GetLine(ctx context.Context, q Querier, sessionID uuid.UUID, productID string) (*domain.StocktakeLine, error)
	UpsertLine(ctx context.Context, q Querier, line *domain.StocktakeLine) error
	ListLines(ctx context.Context, q Querier, sessionID uuid.UUID) ([]domain.StocktakeLine, error)
}

// StocktakeService is the physical-count workflow API.
type StocktakeService interface {
	// StartSession opens a count for a branch; one open session per branch.
	StartSession(ctx context.Context, organizationID, branchID, startedBy string) (*domain.StocktakeSession, error)
	// RecordCount freezes the ledger quantity as the line's expected value on
	// the product's first count in the session; re-counts keep the snapshot.
	RecordCount(ctx context.Context, organizationID string, sessionID uuid.UUID, req CountRequest) (*domain.StocktakeLine, error)
	ListLines(ctx context.Context, organizationID string, sessionID uuid.UUID) ([]domain.StocktakeLine, error)
	// Finalize closes the session. When createAdjustments is set, every
	// non-zero-variance line produces a pre-approved stock adjustment applied
	// to the ledger. Lines are applied independently: a failure leaves earlier
	// lines applied and is reported in the error.
	Finalize(ctx context.Context, organizationID string, sessionID uuid.UUID, finalizedBy string, createAdjustments bool) (bool, error)
}
