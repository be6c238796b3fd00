// internal/core/services/inventory_test.go
package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
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

const testOrg = "org-001"

// expectTenant wires a MockTenantDatabases to hand out db for testOrg.
func expectTenant(tenants *mocks.MockTenantDatabases, db *mocks.MockDatabase) {
	tenants.EXPECT().Database(gomock.Any(), testOrg).Return(db, nil).AnyTimes()
}

// expectTransaction makes the mock run the transaction body with a nil tx;
// repositories are mocked, so the tx handle is never touched.
func expectTransaction(db *mocks.MockDatabase) {
	db.EXPECT().Transaction(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(pgx.Tx) error) error {
			return fn(nil)
		}).AnyTimes()
}

func TestInventoryService_GetItem(t *testing.T) {
	tests := []struct {
		name       string
		setupMocks func(*mocks.MockInventoryRepository)
		wantErr    error
	}{
		{
			name: "returns the ledger row",
			setupMocks: func(m *mocks.MockInventoryRepository) {
				m.EXPECT().GetItem(gomock.Any(), gomock.Any(), "SKU-001", "branch-main").
					Return(helpers.NewTestItem(), nil)
			},
		},
		{
			name: "missing row maps to not found",
			setupMocks: func(m *mocks.MockInventoryRepository) {
				m.EXPECT().GetItem(gomock.Any(), gomock.Any(), "SKU-001", "branch-main").
					Return(nil, nil)
			},
			wantErr: domain.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := mocks.NewMockInventoryRepository(ctrl)
			db := mocks.NewMockDatabase(ctrl)
			tenants := mocks.NewMockTenantDatabases(ctrl)
			expectTenant(tenants, db)
			tt.setupMocks(repo)

			svc := services.NewInventoryService(tenants, repo, helpers.TestLogger())
			item, err := svc.GetItem(context.Background(), testOrg, "SKU-001", "branch-main")

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, item)
			} else {
				require.NoError(t, err)
				assert.NotNil(t, item)
			}
		})
	}
}

func TestInventoryService_AdjustStock(t *testing.T) {
	tests := []struct {
		name       string
		req        ports.AdjustStockRequest
		setupMocks func(*mocks.MockInventoryRepository)
		wantErr    error
	}{
		{
			name: "applies delta and records movement",
			req: ports.AdjustStockRequest{
				ProductID: "SKU-001", BranchID: "branch-main",
				Delta: decimal.NewFromInt(-3), Reason: "breakage", PerformedBy: "mgr",
			},
			setupMocks: func(m *mocks.MockInventoryRepository) {
				m.EXPECT().GetItemForUpdate(gomock.Any(), gomock.Any(), "SKU-001", "branch-main").
					Return(helpers.NewTestItem(), nil)
				m.EXPECT().UpsertItem(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ ports.Querier, item *domain.InventoryItem) error {
						assert.True(t, item.CurrentStock.Equal(decimal.NewFromInt(97)))
						return nil
					})
				m.EXPECT().InsertMovement(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ ports.Querier, mv *domain.StockMovement) error {
						assert.Equal(t, "breakage", mv.Reason)
						assert.True(t, mv.Delta.Equal(decimal.NewFromInt(-3)))
						return nil
					})
			},
		},
		{
			name: "zero delta is rejected",
			req: ports.AdjustStockRequest{
				ProductID: "SKU-001", BranchID: "branch-main",
				Delta: decimal.Zero, Reason: "noop",
			},
			setupMocks: func(m *mocks.MockInventoryRepository) {},
			wantErr:    domain.ErrValidation,
		},
		{
			name: "missing reason is rejected",
			req: ports.AdjustStockRequest{
				ProductID: "SKU-001", BranchID: "branch-main",
				Delta: decimal.NewFromInt(1),
			},
			setupMocks: func(m *mocks.MockInventoryRepository) {},
			wantErr:    domain.ErrValidation,
		},
		{
			name: "unknown item starts from zero stock",
			req: ports.AdjustStockRequest{
				ProductID: "SKU-NEW", BranchID: "branch-main",
				Delta: decimal.NewFromInt(5), Reason: "found stock",
			},
			setupMocks: func(m *mocks.MockInventoryRepository) {
				m.EXPECT().GetItemForUpdate(gomock.Any(), gomock.Any(), "SKU-NEW", "branch-main").
					Return(nil, nil)
				m.EXPECT().UpsertItem(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ ports.Querier, item *domain.InventoryItem) error {
						assert.True(t, item.CurrentStock.Equal(decimal.NewFromInt(5)))
						return nil
					})
				m.EXPECT().InsertMovement(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := mocks.NewMockInventoryRepository(ctrl)
			db := mocks.NewMockDatabase(ctrl)
			tenants := mocks.NewMockTenantDatabases(ctrl)
			expectTenant(tenants, db)
			expectTransaction(db)
			tt.setupMocks(repo)

			svc := services.NewInventoryService(tenants, repo, helpers.TestLogger())
			item, err := svc.AdjustStock(context.Background(), testOrg, tt.req)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
				assert.NotNil(t, item)
			}
		})
	}
}

func TestInventoryService_Receive(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockInventoryRepository(ctrl)
	db := mocks.NewMockDatabase(ctrl)
	tenants := mocks.NewMockTenantDatabases(ctrl)
	expectTenant(tenants, db)
	expectTransaction(db)

	repo.EXPECT().GetItemForUpdate(gomock.Any(), gomock.Any(), "SKU-001", "branch-main").
		Return(helpers.NewTestItem(func(i *domain.InventoryItem) {
			i.CurrentStock = decimal.NewFromInt(10)
			i.AverageCost = decimal.NewFromFloat(5.00)
		}), nil)
	repo.EXPECT().UpsertItem(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ ports.Querier, item *domain.InventoryItem) error {
			assert.True(t, item.CurrentStock.Equal(decimal.NewFromInt(20)))
			assert.True(t, item.AverageCost.Equal(decimal.NewFromInt(6)),
				"got %s", item.AverageCost)
			return nil
		})
	repo.EXPECT().InsertMovement(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	svc := services.NewInventoryService(tenants, repo, helpers.TestLogger())
	item, err := svc.Receive(context.Background(), testOrg, ports.ReceiveStockRequest{
		ProductID: "SKU-001", BranchID: "branch-main",
		Quantity: decimal.NewFromInt(10), UnitCost: decimal.NewFromFloat(7.00),
	})
	require.NoError(t, err)
	assert.True(t, item.LastUnitCost.Equal(decimal.NewFromFloat(7.00)))
}

func TestInventoryService_Receive_RejectsNonPositiveQuantity(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := services.NewInventoryService(
		mocks.NewMockTenantDatabases(ctrl),
		mocks.NewMockInventoryRepository(ctrl),
		helpers.TestLogger())

	_, err := svc.Receive(context.Background(), testOrg, ports.ReceiveStockRequest{
		ProductID: "SKU-001", BranchID: "branch-main",
		Quantity: decimal.NewFromInt(-1), UnitCost: decimal.NewFromFloat(1.00),
	})
	require.ErrorIs(t, err, domain.ErrValidation)
}

func TestInventoryService_ApproveAdjustment(t *testing.T) {
	adjustmentID := uuid.New()

	tests := []struct {
		name         string
		setupMocks   func(*mocks.MockInventoryRepository)
		wantApproved bool
		wantErr      error
	}{
		{
			name: "pending adjustment is applied once",
			setupMocks: func(m *mocks.MockInventoryRepository) {
				m.EXPECT().GetAdjustmentForUpdate(gomock.Any(), gomock.Any(), adjustmentID).
					Return(&domain.StockAdjustment{
						ID: adjustmentID, ProductID: "SKU-001", BranchID: "branch-main",
						Delta: decimal.NewFromInt(4), Reason: "recount",
						Status: domain.AdjustmentPending,
					}, nil)
				m.EXPECT().UpdateAdjustment(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ ports.Querier, adj *domain.StockAdjustment) error {
						assert.Equal(t, domain.AdjustmentApproved, adj.Status)
						assert.Equal(t, "mgr", adj.ApprovedBy)
						require.NotNil(t, adj.ApprovedAt)
						return nil
					})
				m.EXPECT().GetItemForUpdate(gomock.Any(), gomock.Any(), "SKU-001", "branch-main").
					Return(helpers.NewTestItem(), nil)
				m.EXPECT().UpsertItem(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
				m.EXPECT().InsertMovement(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ ports.Querier, mv *domain.StockMovement) error {
						assert.Equal(t, adjustmentID.String(), mv.ReferenceID)
						return nil
					})
			},
			wantApproved: true,
		},
		{
			name: "already approved adjustment is a no-op",
			setupMocks: func(m *mocks.MockInventoryRepository) {
				m.EXPECT().GetAdjustmentForUpdate(gomock.Any(), gomock.Any(), adjustmentID).
					Return(&domain.StockAdjustment{
						ID: adjustmentID, Status: domain.AdjustmentApproved,
					}, nil)
			},
			wantApproved: false,
		},
		{
			name: "missing adjustment reports false",
			setupMocks: func(m *mocks.MockInventoryRepository) {
				m.EXPECT().GetAdjustmentForUpdate(gomock.Any(), gomock.Any(), adjustmentID).
					Return(nil, nil)
			},
			wantApproved: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := mocks.NewMockInventoryRepository(ctrl)
			db := mocks.NewMockDatabase(ctrl)
			tenants := mocks.NewMockTenantDatabases(ctrl)
			expectTenant(tenants, db)
			expectTransaction(db)
			tt.setupMocks(repo)

			svc := services.NewInventoryService(tenants, repo, helpers.TestLogger())
			approved, err := svc.ApproveAdjustment(context.Background(), testOrg, adjustmentID, "mgr")

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.wantApproved, approved)
			}
		})
	}
}

func TestInventoryService_RejectAdjustment(t *testing.T) {
	adjustmentID := uuid.New()

	t.Run("closes a pending adjustment without touching the ledger", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mocks.NewMockInventoryRepository(ctrl)
		db := mocks.NewMockDatabase(ctrl)
		tenants := mocks.NewMockTenantDatabases(ctrl)
		expectTenant(tenants, db)
		expectTransaction(db)

		repo.EXPECT().GetAdjustmentForUpdate(gomock.Any(), gomock.Any(), adjustmentID).
			Return(&domain.StockAdjustment{ID: adjustmentID, Status: domain.AdjustmentPending}, nil)
		repo.EXPECT().UpdateAdjustment(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ ports.Querier, adj *domain.StockAdjustment) error {
				assert.Equal(t, domain.AdjustmentRejected, adj.Status)
				return nil
			})

		svc := services.NewInventoryService(tenants, repo, helpers.TestLogger())
		rejected, err := svc.RejectAdjustment(context.Background(), testOrg, adjustmentID, "mgr")
		require.NoError(t, err)
		assert.True(t, rejected)
	})

	t.Run("missing adjustment reports false", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mocks.NewMockInventoryRepository(ctrl)
		db := mocks.NewMockDatabase(ctrl)
		tenants := mocks.NewMockTenantDatabases(ctrl)
		expectTenant(tenants, db)
		expectTransaction(db)

		repo.EXPECT().GetAdjustmentForUpdate(gomock.Any(), gomock.Any(), adjustmentID).
			Return(nil, nil)

		svc := services.NewInventoryService(tenants, repo, helpers.TestLogger())
		rejected, err := svc.RejectAdjustment(context.Background(), testOrg, adjustmentID, "mgr")
		require.NoError(t, err)
		assert.False(t, rejected)
	})
}

func TestInventoryService_RunStockAlertSweep(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockInventoryRepository(ctrl)
	db := mocks.NewMockDatabase(ctrl)
	tenants := mocks.NewMockTenantDatabases(ctrl)
	expectTenant(tenants, db)

	staleAlertID := uuid.New()

	repo.EXPECT().ListLowStockItems(gomock.Any(), gomock.Any()).Return([]domain.InventoryItem{
		{ProductID: "SKU-001", BranchID: "branch-main",
			CurrentStock: decimal.NewFromInt(2), ReorderLevel: decimal.NewFromInt(10)},
	}, nil)
	repo.EXPECT().UpsertAlert(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ ports.Querier, alert *domain.StockAlert) error {
			assert.Equal(t, "SKU-001", alert.ProductID)
			return nil
		})
	// A stale alert for a recovered item gets cleared; the still-low one stays.
	repo.EXPECT().ListUnacknowledgedAlerts(gomock.Any(), gomock.Any()).Return([]domain.StockAlert{
		{ID: uuid.New(), ProductID: "SKU-001", BranchID: "branch-main"},
		{ID: staleAlertID, ProductID: "SKU-OLD", BranchID: "branch-main"},
	}, nil)
	repo.EXPECT().DeleteAlert(gomock.Any(), gomock.Any(), staleAlertID).Return(nil)

	svc := services.NewInventoryService(tenants, repo, helpers.TestLogger())
	raised, err := svc.RunStockAlertSweep(context.Background(), testOrg)
	require.NoError(t, err)
	assert.Equal(t, 1, raised)
}

func TestInventoryService_RunStockAlertSweep_PropagatesListError(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockInventoryRepository(ctrl)
	db := mocks.NewMockDatabase(ctrl)
	tenants := mocks.NewMockTenantDatabases(ctrl)
	expectTenant(tenants, db)

	repo.EXPECT().ListLowStockItems(gomock.Any(), gomock.Any()).
		Return(nil, errors.New("connection reset"))

	svc := services.NewInventoryService(tenants, repo, helpers.TestLogger())
	_, err := svc.RunStockAlertSweep(context.Background(), testOrg)
	require.Error(t, err)
}
