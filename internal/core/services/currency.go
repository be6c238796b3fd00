// internal/core/services/currency.go
package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/zipos/zipos-be/internal/core/domain"
	"github.com/zipos/zipos-be/internal/core/ports"
)

// CurrencyService manages per-tenant currencies and conversion to base.
type CurrencyService struct {
	tenants ports.TenantDatabases
	repo    ports.CurrencyRepository
	logger  *slog.Logger
}

// Statically assert that *CurrencyService implements the CurrencyService interface.
var _ ports.CurrencyService = (*CurrencyService)(nil)

// NewCurrencyService creates a new currency service
func NewCurrencyService(tenants ports.TenantDatabases, repo ports.CurrencyRepository, logger *slog.Logger) *CurrencyService {
	return &CurrencyService{
		tenants: tenants,
		repo:    repo,
		logger:  logger.With(slog.String("service", "currency")),
	}
}

// CreateCurrency registers a currency. Codes are unique; at most one currency
// may carry the base flag.
func (s *CurrencyService) CreateCurrency(ctx context.Context, organizationID string, currency domain.Currency) (*domain.Currency, error) {
	currency.Code = strings.ToUpper(strings.TrimSpace(currency.Code))
	if currency.Code == "" {
		return nil, domain.Validationf("currency code is required")
	}
	if currency.Name == "" {
		return nil, domain.Validationf("currency name is required")
	}
	if currency.DecimalPlaces < 0 {
		return nil, domain.Validationf("decimal places must not be negative")
	}

	db, err := s.tenants.Database(ctx, organizationID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve tenant database: %w", err)
	}

	err = db.Transaction(ctx, func(tx pgx.Tx) error {
		existing, err := s.repo.GetCurrencyByCode(ctx, tx, currency.Code)
		if err != nil {
			return fmt.Errorf("failed to check currency code: %w", err)
		}
		if existing != nil {
			return domain.Duplicatef("currency %s", currency.Code)
		}

		if currency.IsBaseCurrency {
			base, err := s.repo.GetBaseCurrency(ctx, tx)
			if err != nil {
				return fmt.Errorf("failed to check base currency: %w", err)
			}
			if base != nil {
				return domain.Duplicatef("base currency %s already configured", base.Code)
			}
		}

		now := time.Now()
		currency.ID = uuid.New()
		currency.CreatedAt = now
		currency.UpdatedAt = now
		if err := s.repo.InsertCurrency(ctx, tx, &currency); err != nil {
			return fmt.Errorf("failed to create currency: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "currency created",
		slog.String("code", currency.Code),
		slog.Bool("is_base", currency.IsBaseCurrency))

	return &currency, nil
}

// ListCurrencies returns the tenant's currencies.
func (s *CurrencyService) ListCurrencies(ctx context.Context, organizationID string, activeOnly bool) ([]domain.Currency, error) {
	db, err := s.tenants.Database(ctx, organizationID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve tenant database: %w", err)
	}

	currencies, err := s.repo.ListCurrencies(ctx, db, activeOnly)
	if err != nil {
		return nil, fmt.Errorf("failed to list currencies: %w", err)
	}
	return currencies, nil
}

// SetBaseCurrency moves the base flag to the named currency. At most one
// currency carries the flag at any time.
func (s *CurrencyService) SetBaseCurrency(ctx context.Context, organizationID, code string) (bool, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return false, domain.Validationf("currency code is required")
	}

	db, err := s.tenants.Database(ctx, organizationID)
	if err != nil {
		return false, fmt.Errorf("failed to resolve tenant database: %w", err)
	}

	changed := false
	err = db.Transaction(ctx, func(tx pgx.Tx) error {
		currency, err := s.repo.GetCurrencyByCode(ctx, tx, code)
		if err != nil {
			return fmt.Errorf("failed to get currency: %w", err)
		}
		if currency == nil {
			return domain.NotFoundf("currency %s", code)
		}
		if currency.IsBaseCurrency {
			return nil
		}

		base, err := s.repo.GetBaseCurrency(ctx, tx)
		if err != nil {
			return fmt.Errorf("failed to get base currency: %w", err)
		}
		if base != nil {
			base.IsBaseCurrency = false
			base.UpdatedAt = time.Now()
			if err := s.repo.UpdateCurrency(ctx, tx, base); err != nil {
				return fmt.Errorf("failed to clear base currency: %w", err)
			}
		}

		currency.IsBaseCurrency = true
		currency.UpdatedAt = time.Now()
		if err := s.repo.UpdateCurrency(ctx, tx, currency); err != nil {
			return fmt.Errorf("failed to set base currency: %w", err)
		}

		changed = true
		return nil
	})
	if err != nil {
		return false, err
	}

	if changed {
		s.logger.InfoContext(ctx, "base currency changed", slog.String("code", code))
	}

	return changed, nil
}

// SetRate records an exchange rate to base effective at the given time.
func (s *CurrencyService) SetRate(ctx context.Context, organizationID, code string, rate decimal.Decimal, effective time.Time) (*domain.ExchangeRate, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if !rate.IsPositive() {
		return nil, domain.Validationf("exchange rate must be positive")
	}

	db, err := s.tenants.Database(ctx, organizationID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve tenant database: %w", err)
	}

	currency, err := s.repo.GetCurrencyByCode(ctx, db, code)
	if err != nil {
		return nil, fmt.Errorf("failed to get currency: %w", err)
	}
	if currency == nil {
		return nil, domain.NotFoundf("currency %s", code)
	}
	if currency.IsBaseCurrency {
		return nil, domain.Validationf("cannot set an exchange rate for the base currency")
	}

	exchangeRate := &domain.ExchangeRate{
		ID:            uuid.New(),
		CurrencyCode:  code,
		Rate:          rate,
		EffectiveDate: effective,
		CreatedAt:     time.Now(),
	}
	if err := s.repo.InsertRate(ctx, db, exchangeRate); err != nil {
		return nil, fmt.Errorf("failed to record exchange rate: %w", err)
	}

	s.logger.InfoContext(ctx, "exchange rate recorded",
		slog.String("code", code),
		slog.String("rate", rate.String()))

	return exchangeRate, nil
}

// ConvertToBase converts an amount to the base currency using the latest rate
// effective at or before asOf. The result is rounded to the base currency's
// decimal places.
func (s *CurrencyService) ConvertToBase(ctx context.Context, organizationID, code string, amount decimal.Decimal, asOf time.Time) (decimal.Decimal, error) {
	code = strings.ToUpper(strings.TrimSpace(code))

	db, err := s.tenants.Database(ctx, organizationID)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to resolve tenant database: %w", err)
	}

	base, err := s.repo.GetBaseCurrency(ctx, db)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to get base currency: %w", err)
	}
	if base == nil {
		return decimal.Zero, fmt.Errorf("no base currency configured: %w", domain.ErrConfiguration)
	}

	if code == base.Code {
		return amount.Round(int32(base.DecimalPlaces)), nil
	}

	rate, err := s.repo.LatestRate(ctx, db, code, asOf)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to get exchange rate: %w", err)
	}
	if rate == nil {
		return decimal.Zero, domain.NotFoundf("exchange rate for %s", code)
	}

	return amount.Mul(rate.Rate).Round(int32(base.DecimalPlaces)), nil
}
