// internal/core/services/stocktake_test.go
package services_test

import (
	"context"
	"errors"
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

type stocktakeFixture struct {
	repo      *mocks.MockStocktakeRepository
	inventory *mocks.MockInventoryRepository
	db        *mocks.MockDatabase
	tenants   *mocks.MockTenantDatabases
}

func newStocktakeFixture(t *testing.T) *stocktakeFixture {
	ctrl := gomock.NewController(t)
	f := &stocktakeFixture{
		repo:      mocks.NewMockStocktakeRepository(ctrl),
		inventory: mocks.NewMockInventoryRepository(ctrl),
		db:        mocks.NewMockDatabase(ctrl),
		tenants:   mocks.NewMockTenantDatabases(ctrl),
	}
	expectTenant(f.tenants, f.db)
	expectTransaction(f.db)
	return f
}

func (f *stocktakeFixture) service() *services.StocktakeService {
	return services.NewStocktakeService(f.tenants, f.repo, f.inventory, helpers.TestLogger())
}

func TestStocktakeService_StartSession(t *testing.T) {
	t.Run("opens a session for the branch", func(t *testing.T) {
		f := newStocktakeFixture(t)
		f.repo.EXPECT().GetOpenSessionForBranch(gomock.Any(), gomock.Any(), "branch-main").
			Return(nil, nil)
		f.repo.EXPECT().InsertSession(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ ports.Querier, session *domain.StocktakeSession) error {
				assert.Equal(t, domain.StocktakeOpen, session.Status)
				assert.Equal(t, "counter-1", session.StartedBy)
				return nil
			})

		session, err := f.service().StartSession(context.Background(), testOrg, "branch-main", "counter-1")
		require.NoError(t, err)
		assert.Equal(t, "branch-main", session.BranchID)
	})

	t.Run("second open session for the branch is a duplicate", func(t *testing.T) {
		f := newStocktakeFixture(t)
		f.repo.EXPECT().GetOpenSessionForBranch(gomock.Any(), gomock.Any(), "branch-main").
			Return(&domain.StocktakeSession{ID: uuid.New(), BranchID: "branch-main",
				Status: domain.StocktakeOpen}, nil)

		_, err := f.service().StartSession(context.Background(), testOrg, "branch-main", "counter-1")
		require.ErrorIs(t, err, domain.ErrDuplicate)
	})
}

func TestStocktakeService_RecordCount(t *testing.T) {
	sessionID := uuid.New()
	openSession := &domain.StocktakeSession{
		ID: sessionID, BranchID: "branch-main", Status: domain.StocktakeOpen,
	}

	t.Run("first count freezes the ledger quantity as expected", func(t *testing.T) {
		f := newStocktakeFixture(t)
		f.repo.EXPECT().GetSessionForUpdate(gomock.Any(), gomock.Any(), sessionID).
			Return(openSession, nil)
		f.repo.EXPECT().GetLine(gomock.Any(), gomock.Any(), sessionID, "SKU-001").
			Return(nil, nil)
		f.inventory.EXPECT().GetItem(gomock.Any(), gomock.Any(), "SKU-001", "branch-main").
			Return(helpers.NewTestItem(), nil)
		f.repo.EXPECT().UpsertLine(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ ports.Querier, line *domain.StocktakeLine) error {
				assert.True(t, line.ExpectedQty.Equal(decimal.NewFromInt(100)))
				assert.True(t, line.VarianceQty.Equal(decimal.NewFromInt(-2)))
				return nil
			})

		line, err := f.service().RecordCount(context.Background(), testOrg, sessionID,
			ports.CountRequest{ProductID: "SKU-001", CountedQty: decimal.NewFromInt(98)})
		require.NoError(t, err)
		helpers.AssertDecimalEqual(t, decimal.NewFromInt(98), line.CountedQty)
	})

	t.Run("re-count keeps the frozen expected quantity", func(t *testing.T) {
		f := newStocktakeFixture(t)
		f.repo.EXPECT().GetSessionForUpdate(gomock.Any(), gomock.Any(), sessionID).
			Return(openSession, nil)
		// The ledger has moved to 90 since the first count; the line still
		// carries the frozen snapshot of 100.
		f.repo.EXPECT().GetLine(gomock.Any(), gomock.Any(), sessionID, "SKU-001").
			Return(&domain.StocktakeLine{
				ID: uuid.New(), SessionID: sessionID, ProductID: "SKU-001",
				ExpectedQty: decimal.NewFromInt(100),
				CountedQty:  decimal.NewFromInt(98),
				VarianceQty: decimal.NewFromInt(-2),
			}, nil)
		f.repo.EXPECT().UpsertLine(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ ports.Querier, line *domain.StocktakeLine) error {
				assert.True(t, line.ExpectedQty.Equal(decimal.NewFromInt(100)))
				assert.True(t, line.VarianceQty.Equal(decimal.NewFromInt(1)))
				return nil
			})

		_, err := f.service().RecordCount(context.Background(), testOrg, sessionID,
			ports.CountRequest{ProductID: "SKU-001", CountedQty: decimal.NewFromInt(101)})
		require.NoError(t, err)
	})

	t.Run("unknown product is expected at zero", func(t *testing.T) {
		f := newStocktakeFixture(t)
		f.repo.EXPECT().GetSessionForUpdate(gomock.Any(), gomock.Any(), sessionID).
			Return(openSession, nil)
		f.repo.EXPECT().GetLine(gomock.Any(), gomock.Any(), sessionID, "SKU-GHOST").
			Return(nil, nil)
		f.inventory.EXPECT().GetItem(gomock.Any(), gomock.Any(), "SKU-GHOST", "branch-main").
			Return(nil, nil)
		f.repo.EXPECT().UpsertLine(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ ports.Querier, line *domain.StocktakeLine) error {
				assert.True(t, line.ExpectedQty.IsZero())
				assert.True(t, line.VarianceQty.Equal(decimal.NewFromInt(3)))
				return nil
			})

		_, err := f.service().RecordCount(context.Background(), testOrg, sessionID,
			ports.CountRequest{ProductID: "SKU-GHOST", CountedQty: decimal.NewFromInt(3)})
		require.NoError(t, err)
	})

	t.Run("finalized session rejects counts", func(t *testing.T) {
		f := newStocktakeFixture(t)
		f.repo.EXPECT().GetSessionForUpdate(gomock.Any(), gomock.Any(), sessionID).
			Return(&domain.StocktakeSession{
				ID: sessionID, BranchID: "branch-main", Status: domain.StocktakeFinalized,
			}, nil)

		_, err := f.service().RecordCount(context.Background(), testOrg, sessionID,
			ports.CountRequest{ProductID: "SKU-001", CountedQty: decimal.NewFromInt(1)})
		require.ErrorIs(t, err, domain.ErrInvalidState)
	})

	t.Run("negative count is rejected", func(t *testing.T) {
		f := newStocktakeFixture(t)

		_, err := f.service().RecordCount(context.Background(), testOrg, sessionID,
			ports.CountRequest{ProductID: "SKU-001", CountedQty: decimal.NewFromInt(-1)})
		require.ErrorIs(t, err, domain.ErrValidation)
	})
}

func TestStocktakeService_Finalize(t *testing.T) {
	sessionID := uuid.New()

	t.Run("applies one variance adjustment per non-zero line", func(t *testing.T) {
		f := newStocktakeFixture(t)
		f.repo.EXPECT().GetSessionForUpdate(gomock.Any(), gomock.Any(), sessionID).
			Return(&domain.StocktakeSession{
				ID: sessionID, BranchID: "branch-main", Status: domain.StocktakeOpen,
			}, nil)
		f.repo.EXPECT().UpdateSession(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ ports.Querier, session *domain.StocktakeSession) error {
				assert.Equal(t, domain.StocktakeFinalized, session.Status)
				return nil
			})
		f.repo.EXPECT().ListLines(gomock.Any(), gomock.Any(), sessionID).
			Return([]domain.StocktakeLine{
				{ProductID: "SKU-001", VarianceQty: decimal.NewFromInt(-2)},
				{ProductID: "SKU-002", VarianceQty: decimal.Zero},
				{ProductID: "SKU-003", VarianceQty: decimal.NewFromInt(5)},
			}, nil)

		// Only the two non-zero variances produce adjustments.
		f.inventory.EXPECT().InsertAdjustment(gomock.Any(), gomock.Any(), gomock.Any()).Times(2).
			DoAndReturn(func(_ context.Context, _ ports.Querier, adj *domain.StockAdjustment) error {
				assert.Equal(t, domain.AdjustmentApproved, adj.Status)
				assert.Equal(t, "mgr", adj.ApprovedBy)
				return nil
			})
		f.inventory.EXPECT().GetItemForUpdate(gomock.Any(), gomock.Any(), "SKU-001", "branch-main").
			Return(helpers.NewTestItem(), nil)
		f.inventory.EXPECT().GetItemForUpdate(gomock.Any(), gomock.Any(), "SKU-003", "branch-main").
			Return(nil, nil)
		f.inventory.EXPECT().UpsertItem(gomock.Any(), gomock.Any(), gomock.Any()).Times(2).Return(nil)
		f.inventory.EXPECT().InsertMovement(gomock.Any(), gomock.Any(), gomock.Any()).Times(2).Return(nil)

		finalized, err := f.service().Finalize(context.Background(), testOrg, sessionID, "mgr", true)
		require.NoError(t, err)
		assert.True(t, finalized)
	})

	t.Run("without adjustments the ledger is untouched", func(t *testing.T) {
		f := newStocktakeFixture(t)
		f.repo.EXPECT().GetSessionForUpdate(gomock.Any(), gomock.Any(), sessionID).
			Return(&domain.StocktakeSession{
				ID: sessionID, BranchID: "branch-main", Status: domain.StocktakeOpen,
			}, nil)
		f.repo.EXPECT().UpdateSession(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		f.repo.EXPECT().ListLines(gomock.Any(), gomock.Any(), sessionID).
			Return([]domain.StocktakeLine{
				{ProductID: "SKU-001", VarianceQty: decimal.NewFromInt(-2)},
			}, nil)

		finalized, err := f.service().Finalize(context.Background(), testOrg, sessionID, "mgr", false)
		require.NoError(t, err)
		assert.True(t, finalized)
	})

	t.Run("already finalized session is a no-op", func(t *testing.T) {
		f := newStocktakeFixture(t)
		f.repo.EXPECT().GetSessionForUpdate(gomock.Any(), gomock.Any(), sessionID).
			Return(&domain.StocktakeSession{
				ID: sessionID, Status: domain.StocktakeFinalized,
			}, nil)

		finalized, err := f.service().Finalize(context.Background(), testOrg, sessionID, "mgr", true)
		require.NoError(t, err)
		assert.False(t, finalized)
	})

	t.Run("a failed variance does not block the rest", func(t *testing.T) {
		f := newStocktakeFixture(t)
		f.repo.EXPECT().GetSessionForUpdate(gomock.Any(), gomock.Any(), sessionID).
			Return(&domain.StocktakeSession{
				ID: sessionID, BranchID: "branch-main", Status: domain.StocktakeOpen,
			}, nil)
		f.repo.EXPECT().UpdateSession(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		f.repo.EXPECT().ListLines(gomock.Any(), gomock.Any(), sessionID).
			Return([]domain.StocktakeLine{
				{ProductID: "SKU-001", VarianceQty: decimal.NewFromInt(-2)},
				{ProductID: "SKU-002", VarianceQty: decimal.NewFromInt(1)},
			}, nil)

		f.inventory.EXPECT().InsertAdjustment(gomock.Any(), gomock.Any(), gomock.Any()).Times(2).Return(nil)
		f.inventory.EXPECT().GetItemForUpdate(gomock.Any(), gomock.Any(), "SKU-001", "branch-main").
			Return(nil, errors.New("deadlock detected"))
		f.inventory.EXPECT().GetItemForUpdate(gomock.Any(), gomock.Any(), "SKU-002", "branch-main").
			Return(helpers.NewTestItem(), nil)
		f.inventory.EXPECT().UpsertItem(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		f.inventory.EXPECT().InsertMovement(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		finalized, err := f.service().Finalize(context.Background(), testOrg, sessionID, "mgr", true)
		assert.True(t, finalized)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "SKU-001")
	})
}
