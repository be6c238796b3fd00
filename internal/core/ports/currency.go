// internal/core/ports/currency.go
package ports

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/zipos/zipos-be/internal/core/domain"
)

// CurrencyRepository persists per-tenant currencies and exchange rates.
type CurrencyRepository interface {
	InsertCurrency(ctx context.Context, q Querier, currency *domain.Currency) error
	GetCurrencyByCode(ctx context.Context, q Querier, code string) (*domain.Currency, error)
	GetBaseCurrency(ctx context.Context, q Querier) (*domain.Currency, error)
	ListCurrencies(ctx context.Context, q Querier, activeOnly bool) ([]domain.Currency, error)
	UpdateCurrency(ctx context.Context, q Querier, currency *domain.Currency) error

	InsertRate(ctx context.Context, q Querier, rate *domain.ExchangeRate) error
	// LatestRate returns the most recent rate effective at or before asOf,
	// or nil, nil when none exists.
	LatestRate(ctx context.Context, q Querier, code string, asOf time.Time) (*domain.ExchangeRate, error)
}

// CurrencyService manages tenant currencies and conversion.
type CurrencyService interface {
	// CreateCurrency rejects duplicate codes and a second base currency.
	CreateCurrency(ctx context.Context, organizationID string, currency domain.Currency) (*domain.Currency, error)
	ListCurrencies(ctx context.Context, organizationID string, activeOnly bool) ([]domain.Currency, error)
	// SetBaseCurrency moves the base flag to the named currency, clearing it
	// from the previous holder. Returns false when it is already the base.
	SetBaseCurrency(ctx context.Context, organizationID, code string) (bool, error)
	SetRate(ctx context.Context, organizationID, code string, rate decimal.Decimal, effective time.Time) (*domain.ExchangeRate, error)
	// ConvertToBase converts an amount in the given currency to the base
	// currency using the latest effective rate.
	ConvertToBase(ctx context.Context, organizationID, code string, amount decimal.Decimal, asOf time.Time) (decimal.Decimal, error)
}
