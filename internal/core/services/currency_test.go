// internal/core/services/currency_test.go
package services_test

import (
	"context"
	"testing"
	"time"

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

func newCurrencyService(t *testing.T) (*services.CurrencyService, *mocks.MockCurrencyRepository) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockCurrencyRepository(ctrl)
	db := mocks.NewMockDatabase(ctrl)
	tenants := mocks.NewMockTenantDatabases(ctrl)
	expectTenant(tenants, db)
	expectTransaction(db)
	return services.NewCurrencyService(tenants, repo, helpers.TestLogger()), repo
}

func TestCurrencyService_CreateCurrency(t *testing.T) {
	t.Run("normalizes the code and stores the currency", func(t *testing.T) {
		svc, repo := newCurrencyService(t)
		repo.EXPECT().GetCurrencyByCode(gomock.Any(), gomock.Any(), "USD").Return(nil, nil)
		repo.EXPECT().GetBaseCurrency(gomock.Any(), gomock.Any()).Return(nil, nil)
		repo.EXPECT().InsertCurrency(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ ports.Querier, c *domain.Currency) error {
				assert.Equal(t, "USD", c.Code)
				assert.NotEqual(t, uuid.Nil, c.ID)
				return nil
			})

		currency, err := svc.CreateCurrency(context.Background(), testOrg, domain.Currency{
			Code: " usd ", Name: "US Dollar", Symbol: "$",
			DecimalPlaces: 2, IsBaseCurrency: true, IsActive: true,
		})
		require.NoError(t, err)
		assert.Equal(t, "USD", currency.Code)
	})

	t.Run("duplicate code is rejected", func(t *testing.T) {
		svc, repo := newCurrencyService(t)
		repo.EXPECT().GetCurrencyByCode(gomock.Any(), gomock.Any(), "USD").
			Return(&domain.Currency{Code: "USD"}, nil)

		_, err := svc.CreateCurrency(context.Background(), testOrg, domain.Currency{
			Code: "USD", Name: "US Dollar",
		})
		require.ErrorIs(t, err, domain.ErrDuplicate)
	})

	t.Run("second base currency is rejected", func(t *testing.T) {
		svc, repo := newCurrencyService(t)
		repo.EXPECT().GetCurrencyByCode(gomock.Any(), gomock.Any(), "EUR").Return(nil, nil)
		repo.EXPECT().GetBaseCurrency(gomock.Any(), gomock.Any()).
			Return(&domain.Currency{Code: "USD", IsBaseCurrency: true}, nil)

		_, err := svc.CreateCurrency(context.Background(), testOrg, domain.Currency{
			Code: "EUR", Name: "Euro", IsBaseCurrency: true,
		})
		require.ErrorIs(t, err, domain.ErrDuplicate)
	})

	t.Run("blank code is rejected", func(t *testing.T) {
		svc, _ := newCurrencyService(t)

		_, err := svc.CreateCurrency(context.Background(), testOrg, domain.Currency{
			Code: "   ", Name: "Mystery Money",
		})
		require.ErrorIs(t, err, domain.ErrValidation)
	})
}

func TestCurrencyService_SetBaseCurrency(t *testing.T) {
	t.Run("moves the flag from the old base", func(t *testing.T) {
		svc, repo := newCurrencyService(t)
		repo.EXPECT().GetCurrencyByCode(gomock.Any(), gomock.Any(), "EUR").
			Return(&domain.Currency{Code: "EUR"}, nil)
		repo.EXPECT().GetBaseCurrency(gomock.Any(), gomock.Any()).
			Return(&domain.Currency{Code: "USD", IsBaseCurrency: true}, nil)
		repo.EXPECT().UpdateCurrency(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ ports.Querier, c *domain.Currency) error {
				assert.Equal(t, "USD", c.Code)
				assert.False(t, c.IsBaseCurrency)
				return nil
			})
		repo.EXPECT().UpdateCurrency(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ ports.Querier, c *domain.Currency) error {
				assert.Equal(t, "EUR", c.Code)
				assert.True(t, c.IsBaseCurrency)
				return nil
			})

		changed, err := svc.SetBaseCurrency(context.Background(), testOrg, "eur")
		require.NoError(t, err)
		assert.True(t, changed)
	})

	t.Run("already the base is a no-op", func(t *testing.T) {
		svc, repo := newCurrencyService(t)
		repo.EXPECT().GetCurrencyByCode(gomock.Any(), gomock.Any(), "USD").
			Return(&domain.Currency{Code: "USD", IsBaseCurrency: true}, nil)

		changed, err := svc.SetBaseCurrency(context.Background(), testOrg, "USD")
		require.NoError(t, err)
		assert.False(t, changed)
	})

	t.Run("unknown currency is not found", func(t *testing.T) {
		svc, repo := newCurrencyService(t)
		repo.EXPECT().GetCurrencyByCode(gomock.Any(), gomock.Any(), "XXX").Return(nil, nil)

		_, err := svc.SetBaseCurrency(context.Background(), testOrg, "XXX")
		require.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestCurrencyService_SetRate(t *testing.T) {
	effective := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	t.Run("records a rate for a non-base currency", func(t *testing.T) {
		svc, repo := newCurrencyService(t)
		repo.EXPECT().GetCurrencyByCode(gomock.Any(), gomock.Any(), "EUR").
			Return(&domain.Currency{Code: "EUR"}, nil)
		repo.EXPECT().InsertRate(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ ports.Querier, r *domain.ExchangeRate) error {
				assert.Equal(t, "EUR", r.CurrencyCode)
				assert.Equal(t, effective, r.EffectiveDate)
				return nil
			})

		rate, err := svc.SetRate(context.Background(), testOrg, "eur",
			decimal.NewFromFloat(1.08), effective)
		require.NoError(t, err)
		helpers.AssertDecimalEqual(t, decimal.NewFromFloat(1.08), rate.Rate)
	})

	t.Run("base currency cannot carry a rate", func(t *testing.T) {
		svc, repo := newCurrencyService(t)
		repo.EXPECT().GetCurrencyByCode(gomock.Any(), gomock.Any(), "USD").
			Return(&domain.Currency{Code: "USD", IsBaseCurrency: true}, nil)

		_, err := svc.SetRate(context.Background(), testOrg, "USD",
			decimal.NewFromInt(1), effective)
		require.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("unknown currency is not found", func(t *testing.T) {
		svc, repo := newCurrencyService(t)
		repo.EXPECT().GetCurrencyByCode(gomock.Any(), gomock.Any(), "XXX").Return(nil, nil)

		_, err := svc.SetRate(context.Background(), testOrg, "XXX",
			decimal.NewFromInt(1), effective)
		require.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("non-positive rate is rejected", func(t *testing.T) {
		svc, _ := newCurrencyService(t)

		_, err := svc.SetRate(context.Background(), testOrg, "EUR", decimal.Zero, effective)
		require.ErrorIs(t, err, domain.ErrValidation)
	})
}

func TestCurrencyService_ConvertToBase(t *testing.T) {
	asOf := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
	baseUSD := &domain.Currency{Code: "USD", IsBaseCurrency: true, DecimalPlaces: 2}

	t.Run("converts with the latest effective rate and rounds to base places", func(t *testing.T) {
		svc, repo := newCurrencyService(t)
		repo.EXPECT().GetBaseCurrency(gomock.Any(), gomock.Any()).Return(baseUSD, nil)
		repo.EXPECT().LatestRate(gomock.Any(), gomock.Any(), "EUR", asOf).
			Return(&domain.ExchangeRate{CurrencyCode: "EUR", Rate: decimal.NewFromFloat(1.0843)}, nil)

		got, err := svc.ConvertToBase(context.Background(), testOrg, "EUR",
			decimal.NewFromFloat(10.00), asOf)
		require.NoError(t, err)
		helpers.AssertDecimalEqual(t, decimal.NewFromFloat(10.84), got)
	})

	t.Run("base currency amounts pass through, rounded", func(t *testing.T) {
		svc, repo := newCurrencyService(t)
		repo.EXPECT().GetBaseCurrency(gomock.Any(), gomock.Any()).Return(baseUSD, nil)

		got, err := svc.ConvertToBase(context.Background(), testOrg, "usd",
			decimal.NewFromFloat(10.005), asOf)
		require.NoError(t, err)
		helpers.AssertDecimalEqual(t, decimal.NewFromFloat(10.01), got)
	})

	t.Run("missing rate is not found", func(t *testing.T) {
		svc, repo := newCurrencyService(t)
		repo.EXPECT().GetBaseCurrency(gomock.Any(), gomock.Any()).Return(baseUSD, nil)
		repo.EXPECT().LatestRate(gomock.Any(), gomock.Any(), "EUR", asOf).Return(nil, nil)

		_, err := svc.ConvertToBase(context.Background(), testOrg, "EUR",
			decimal.NewFromInt(5), asOf)
		require.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("no base currency is a configuration error", func(t *testing.T) {
		svc, repo := newCurrencyService(t)
		repo.EXPECT().GetBaseCurrency(gomock.Any(), gomock.Any()).Return(nil, nil)

		_, err := svc.ConvertToBase(context.Background(), testOrg, "EUR",
			decimal.NewFromInt(5), asOf)
		require.ErrorIs(t, err, domain.ErrConfiguration)
	})
}
