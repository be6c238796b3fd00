// internal/core/services/stocktake.go
package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/zipos/zipos-be/internal/core/domain"
	"github.com/zipos/zipos-be/internal/core/ports"
)

// StocktakeService handles the physical count workflow.
type StocktakeService struct {
	tenants       ports.TenantDatabases
	repo          ports.StocktakeRepository
	inventoryRepo ports.InventoryRepository
	logger        *slog.Logger
}

// Statically assert that *StocktakeService implements the StocktakeService interface.
var _ ports.StocktakeService = (*StocktakeService)(nil)

// NewStocktakeService creates a new stocktake service
func NewStocktakeService(tenants ports.TenantDatabases, repo ports.StocktakeRepository,
	inventoryRepo ports.InventoryRepository, logger *slog.Logger) *StocktakeService {
	return &StocktakeService{
		tenants:       tenants,
		repo:          repo,
		inventoryRepo: inventoryRepo,
		logger:        logger.With(slog.String("service", "stocktake")),
	}
}

// StartSession opens a count session; a branch can have at most one open
// session. A partial unique index backs the check against races.
func (s *StocktakeService) StartSession(ctx context.Context, organizationID, branchID, startedBy string) (*domain.StocktakeSession, error) {
	if branchID == "" {
		return nil, domain.Validationf("branch id is required")
	}

	db, err := s.tenants.Database(ctx, organizationID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve tenant database: %w", err)
	}

	var session *domain.StocktakeSession
	err = db.Transaction(ctx, func(tx pgx.Tx) error {
		existing, err := s.repo.GetOpenSessionForBranch(ctx, tx, branchID)
		if err != nil {
			return fmt.Errorf("failed to check for open session: %w", err)
		}
		if existing != nil {
			return domain.Duplicatef("open stocktake session %s already exists for branch %s",
				existing.ID, branchID)
		}

		session = &domain.StocktakeSession{
			ID:        uuid.New(),
			BranchID:  branchID,
			Status:    domain.StocktakeOpen,
			StartedBy: startedBy,
			StartedAt: time.Now(),
		}
		if err := s.repo.InsertSession(ctx, tx, session); err != nil {
			return fmt.Errorf("failed to create stocktake session: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "stocktake session started",
		slog.String("session_id", session.ID.String()),
		slog.String("branch_id", branchID))

	return session, nil
}

// RecordCount records a counted quantity. The ledger quantity is frozen as
// the expected value on the product's first count; re-counts keep the frozen
// snapshot even if the ledger has moved since.
func (s *StocktakeService) RecordCount(ctx context.Context, organizationID string, sessionID uuid.UUID, req ports.CountRequest) (*domain.StocktakeLine, error) {
	if req.ProductID == "" {
		return nil, domain.Validationf("product id is required")
	}
	if req.CountedQty.IsNegative() {
		return nil, domain.Validationf("counted quantity must not be negative")
	}

	db, err := s.tenants.Database(ctx, organizationID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve tenant database: %w", err)
	}

	var line *domain.StocktakeLine
	err = db.Transaction(ctx, func(tx pgx.Tx) error {
		session, err := s.repo.GetSessionForUpdate(ctx, tx, sessionID)
		if err != nil {
			return fmt.Errorf("failed to lock stocktake session: %w", err)
		}
		if session == nil {
			return domain.NotFoundf("stocktake session %s", sessionID)
		}
		if session.Status != domain.StocktakeOpen {
			return domain.InvalidStatef("stocktake session %s is %s", sessionID, session.Status)
		}

		line, err = s.repo.GetLine(ctx, tx, sessionID, req.ProductID)
		if err != nil {
			return fmt.Errorf("failed to get stocktake line: %w", err)
		}
		if line == nil {
			item, err := s.inventoryRepo.GetItem(ctx, tx, req.ProductID, session.BranchID)
			if err != nil {
				return fmt.Errorf("failed to get inventory item: %w", err)
			}
			line = &domain.StocktakeLine{
				ID:        uuid.New(),
				SessionID: sessionID,
				ProductID: req.ProductID,
			}
			if item != nil {
				line.ExpectedQty = item.CurrentStock
			}
		}

		line.CountedQty = req.CountedQty
		line.VarianceQty = req.CountedQty.Sub(line.ExpectedQty)
		line.CountedAt = time.Now()
		if err := s.repo.UpsertLine(ctx, tx, line); err != nil {
			return fmt.Errorf("failed to save stocktake line: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return line, nil
}

// ListLines returns the lines counted so far in a session.
func (s *StocktakeService) ListLines(ctx context.Context, organizationID string, sessionID uuid.UUID) ([]domain.StocktakeLine, error) {
	db, err := s.tenants.Database(ctx, organizationID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve tenant database: %w", err)
	}

	session, err := s.repo.GetSession(ctx, db, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get stocktake session: %w", err)
	}
	if session == nil {
		return nil, domain.NotFoundf("stocktake session %s", sessionID)
	}

	lines, err := s.repo.ListLines(ctx, db, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to list stocktake lines: %w", err)
	}
	return lines, nil
}

// Finalize closes the session. When createAdjustments is set, every
// non-zero-variance line produces a stock adjustment born approved (the
// finalizer's authority stands in for the usual request/approve gate) and
// applied to the ledger. The session flip commits first; lines are applied in
// independent transactions so a failure leaves earlier lines applied and is
// reported in the returned error. Returns false when the session was not open.
func (s *StocktakeService) Finalize(ctx context.Context, organizationID string, sessionID uuid.UUID, finalizedBy string, createAdjustments bool) (bool, error) {
	db, err := s.tenants.Database(ctx, organizationID)
	if err != nil {
		return false, fmt.Errorf("failed to resolve tenant database: %w", err)
	}

	var session *domain.StocktakeSession
	var lines []domain.StocktakeLine
	finalized := false
	err = db.Transaction(ctx, func(tx pgx.Tx) error {
		session, err = s.repo.GetSessionForUpdate(ctx, tx, sessionID)
		if err != nil {
			return fmt.Errorf("failed to lock stocktake session: %w", err)
		}
		if session == nil {
			return domain.NotFoundf("stocktake session %s", sessionID)
		}
		if session.Status != domain.StocktakeOpen {
			return nil
		}

		now := time.Now()
		session.Status = domain.StocktakeFinalized
		session.FinalizedBy = finalizedBy
		session.FinalizedAt = &now
		if err := s.repo.UpdateSession(ctx, tx, session); err != nil {
			return fmt.Errorf("failed to update stocktake session: %w", err)
		}

		lines, err = s.repo.ListLines(ctx, tx, sessionID)
		if err != nil {
			return fmt.Errorf("failed to list stocktake lines: %w", err)
		}

		finalized = true
		return nil
	})
	if err != nil {
		return false, err
	}
	if !finalized {
		return false, nil
	}
	if !createAdjustments {
		s.logger.InfoContext(ctx, "stocktake session finalized without adjustments",
			slog.String("session_id", sessionID.String()))
		return true, nil
	}

	var applyErrs []error
	applied := 0
	for i := range lines {
		line := &lines[i]
		if line.VarianceQty.IsZero() {
			continue
		}
		if err := ctx.Err(); err != nil {
			applyErrs = append(applyErrs, fmt.Errorf("variance application interrupted: %w", err))
			break
		}

		err := db.Transaction(ctx, func(tx pgx.Tx) error {
			now := time.Now()
			adjustment := &domain.StockAdjustment{
				ID:          uuid.New(),
				ProductID:   line.ProductID,
				BranchID:    session.BranchID,
				Delta:       line.VarianceQty,
				Reason:      "Stocktake variance",
				Status:      domain.AdjustmentApproved,
				RequestedBy: finalizedBy,
				RequestedAt: now,
				ApprovedBy:  finalizedBy,
				ApprovedAt:  &now,
			}
			if err := s.inventoryRepo.InsertAdjustment(ctx, tx, adjustment); err != nil {
				return fmt.Errorf("failed to record stock adjustment: %w", err)
			}

			item, err := s.inventoryRepo.GetItemForUpdate(ctx, tx, line.ProductID, session.BranchID)
			if err != nil {
				return fmt.Errorf("failed to lock inventory item: %w", err)
			}
			if item == nil {
				item = &domain.InventoryItem{ProductID: line.ProductID, BranchID: session.BranchID}
			}

			item.CurrentStock = item.CurrentStock.Add(line.VarianceQty)
			item.LastUpdated = time.Now()
			if err := s.inventoryRepo.UpsertItem(ctx, tx, item); err != nil {
				return fmt.Errorf("failed to save inventory item: %w", err)
			}

			movement := &domain.StockMovement{
				ID:          uuid.New(),
				ProductID:   line.ProductID,
				BranchID:    session.BranchID,
				Delta:       line.VarianceQty,
				Reason:      "Stocktake variance",
				ReferenceID: adjustment.ID.String(),
				PerformedBy: finalizedBy,
				PerformedAt: time.Now(),
			}
			return s.inventoryRepo.InsertMovement(ctx, tx, movement)
		})
		if err != nil {
			applyErrs = append(applyErrs,
				fmt.Errorf("failed to apply variance for product %s: %w", line.ProductID, err))
			continue
		}
		applied++
	}

	s.logger.InfoContext(ctx, "stocktake session finalized",
		slog.String("session_id", sessionID.String()),
		slog.Int("variances_applied", applied),
		slog.Int("variances_failed", len(applyErrs)))

	return true, errors.Join(applyErrs...)
}
