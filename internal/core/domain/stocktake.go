// internal/core/domain/stocktake.go
package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// StocktakeStatus is the count-session state.
type StocktakeStatus string

const (
	StocktakeOpen      StocktakeStatus = "Open"
	StocktakeFinalized StocktakeStatus = "Finalized"
)

// StocktakeSession captures a physical count for one branch.
type StocktakeSession struct {
	ID          uuid.UUID       `json:"id"`
	BranchID    string          `json:"branch_id"`
	Status      StocktakeStatus `json:"status"`
	StartedBy   string          `json:"started_by"`
	StartedAt   time.Time       `json:"started_at"`
	FinalizedBy string          `json:"finalized_by,omitempty"`
	FinalizedAt *time.Time      `json:"finalized_at,omitempty"`
}

// StocktakeLine compares counted quantity against the ledger quantity
// snapshotted when the product was first counted in the session. The snapshot
// is frozen for the session even if the ledger moves mid-count.
type StocktakeLine struct {
	ID          uuid.UUID       `json:"id"`
	SessionID   uuid.UUID       `json:"session_id"`
	ProductID   string          `json:"product_id"`
	ExpectedQty decimal.Decimal `json:"expected_qty"`
	CountedQty  decimal.Decimal `json:"counted_qty"`
	VarianceQty decimal.Decimal `json:"variance_qty"`
	CountedAt   time.Time       `json:"counted_at"`
}
