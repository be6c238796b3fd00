// internal/workers/loyalty_processor_test.go
package workers_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/zipos/zipos-be/internal/core/ports"
	"github.com/zipos/zipos-be/internal/core/services"
	"github.com/zipos/zipos-be/internal/workers"
	"github.com/zipos/zipos-be/test/helpers"
	"github.com/zipos/zipos-be/test/mocks"
)

const testOrg = "org-001"

type loyaltyFixture struct {
	repo    *mocks.MockLoyaltyRepository
	db      *mocks.MockDatabase
	tenants *mocks.MockTenantDatabases
}

func newLoyaltyFixture(t *testing.T) *loyaltyFixture {
	ctrl := gomock.NewController(t)
	f := &loyaltyFixture{
		repo:    mocks.NewMockLoyaltyRepository(ctrl),
		db:      mocks.NewMockDatabase(ctrl),
		tenants: mocks.NewMockTenantDatabases(ctrl),
	}
	f.tenants.EXPECT().Database(gomock.Any(), testOrg).Return(f.db, nil).AnyTimes()
	f.db.EXPECT().Transaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(pgx.Tx) error) error {
			return fn(nil)
		}).AnyTimes()
	return f
}

func (f *loyaltyFixture) processor() *workers.LoyaltyProcessor {
	return workers.NewLoyaltyProcessor(f.tenants, f.repo, helpers.TestLogger())
}

func accrualTask(t *testing.T, payload services.LoyaltyAccrualPayload) *asynq.Task {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)
	return asynq.NewTask(workers.TypeLoyaltyAccrual, body)
}

func TestLoyaltyProcessor_ProcessAccrual(t *testing.T) {
	saleID := uuid.New()

	t.Run("credits whole currency units as points", func(t *testing.T) {
		f := newLoyaltyFixture(t)
		f.repo.EXPECT().RecordAccrual(gomock.Any(), gomock.Any(), saleID, "cust-9",
			gomock.Any()).
			DoAndReturn(func(_ context.Context, _ ports.Querier, _ uuid.UUID, _ string, points decimal.Decimal) (bool, error) {
				assert.True(t, points.Equal(decimal.NewFromInt(33)))
				return true, nil
			})
		f.repo.EXPECT().CreditAccount(gomock.Any(), gomock.Any(), "cust-9", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ ports.Querier, _ string, points decimal.Decimal) error {
				assert.True(t, points.Equal(decimal.NewFromInt(33)))
				return nil
			})

		err := f.processor().ProcessAccrual(context.Background(), accrualTask(t, services.LoyaltyAccrualPayload{
			OrganizationID: testOrg,
			SaleID:         saleID,
			CustomerID:     "cust-9",
			TotalAmount:    decimal.NewFromFloat(33.90),
		}))
		require.NoError(t, err)
	})

	t.Run("already credited sale skips the account", func(t *testing.T) {
		f := newLoyaltyFixture(t)
		f.repo.EXPECT().RecordAccrual(gomock.Any(), gomock.Any(), saleID, "cust-9",
			gomock.Any()).Return(false, nil)

		err := f.processor().ProcessAccrual(context.Background(), accrualTask(t, services.LoyaltyAccrualPayload{
			OrganizationID: testOrg,
			SaleID:         saleID,
			CustomerID:     "cust-9",
			TotalAmount:    decimal.NewFromInt(10),
		}))
		require.NoError(t, err)
	})

	t.Run("failed credit rolls back with the marker so the retry re-runs both", func(t *testing.T) {
		f := newLoyaltyFixture(t)
		f.repo.EXPECT().RecordAccrual(gomock.Any(), gomock.Any(), saleID, "cust-9",
			gomock.Any()).Return(true, nil)
		f.repo.EXPECT().CreditAccount(gomock.Any(), gomock.Any(), "cust-9", gomock.Any()).
			Return(errors.New("connection reset"))

		err := f.processor().ProcessAccrual(context.Background(), accrualTask(t, services.LoyaltyAccrualPayload{
			OrganizationID: testOrg,
			SaleID:         saleID,
			CustomerID:     "cust-9",
			TotalAmount:    decimal.NewFromInt(10),
		}))
		require.Error(t, err)
	})

	t.Run("missing customer id is rejected", func(t *testing.T) {
		f := newLoyaltyFixture(t)

		err := f.processor().ProcessAccrual(context.Background(), accrualTask(t, services.LoyaltyAccrualPayload{
			OrganizationID: testOrg,
			SaleID:         saleID,
			TotalAmount:    decimal.NewFromInt(10),
		}))
		require.Error(t, err)
	})
}
