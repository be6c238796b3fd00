// internal/adapters/db/currency_repository.go
package db

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/zipos/zipos-be/internal/core/domain"
	"github.com/zipos/zipos-be/internal/core/ports"
)

// currencyRepository implements ports.CurrencyRepository
type currencyRepository struct {
	logger *slog.Logger
}

// NewCurrencyRepository creates a new currency repository
func NewCurrencyRepository(logger *slog.Logger) ports.CurrencyRepository {
	return &currencyRepository{
		logger: logger.With(slog.String("repository", "currency")),
	}
}

const currencyColumns = `id, code, name, symbol, decimal_places, is_active, is_base_currency, created_at, updated_at`

func scanCurrency(row pgx.Row) (*domain.Currency, error) {
	c := &domain.Currency{}
	err := row.Scan(
		&c.ID, &c.Code, &c.Name, &c.Symbol, &c.DecimalPlaces,
		&c.IsActive, &c.IsBaseCurrency, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return c, nil
}

// InsertCurrency writes a new currency row
func (r *currencyRepository) InsertCurrency(ctx context.Context, q ports.Querier, currency *domain.Currency) error {
	query := `
		INSERT INTO currencies (` + currencyColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $8)`

	_, err := q.Exec(ctx, query,
		currency.ID, currency.Code, currency.Name, currency.Symbol,
		currency.DecimalPlaces, currency.IsActive, currency.IsBaseCurrency, currency.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert currency: %w", err)
	}

	r.logger.DebugContext(ctx, "currency created", slog.String("code", currency.Code))
	return nil
}

// GetCurrencyByCode retrieves a currency, nil when absent
func (r *currencyRepository) GetCurrencyByCode(ctx context.Context, q ports.Querier, code string) (*domain.Currency, error) {
	query := `SELECT ` + currencyColumns + ` FROM currencies WHERE code = $1`

	currency, err := ScanOne(q.QueryRow(ctx, query, code), scanCurrency)
	if err != nil {
		return nil, fmt.Errorf("failed to find currency: %w", err)
	}
	return currency, nil
}

// GetBaseCurrency retrieves the base currency, nil when none configured
func (r *currencyRepository) GetBaseCurrency(ctx context.Context, q ports.Querier) (*domain.Currency, error) {
	query := `SELECT ` + currencyColumns + ` FROM currencies WHERE is_base_currency = TRUE`

	currency, err := ScanOne(q.QueryRow(ctx, query), scanCurrency)
	if err != nil {
		return nil, fmt.Errorf("failed to find base currency: %w", err)
	}
	return currency, nil
}

// ListCurrencies returns currencies ordered by code
func (r *currencyRepository) ListCurrencies(ctx context.Context, q ports.Querier, activeOnly bool) ([]domain.Currency, error) {
	query := `SELECT ` + currencyColumns + ` FROM currencies`
	if activeOnly {
		query += ` WHERE is_active = TRUE`
	}
	query += ` ORDER BY code`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query currencies: %w", err)
	}
	defer rows.Close()

	var currencies []domain.Currency
	for rows.Next() {
		var c domain.Currency
		err := rows.Scan(
			&c.ID, &c.Code, &c.Name, &c.Symbol, &c.DecimalPlaces,
			&c.IsActive, &c.IsBaseCurrency, &c.CreatedAt, &c.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan currency: %w", err)
		}
		currencies = append(currencies, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return currencies, nil
}

// UpdateCurrency rewrites a currency's mutable fields
func (r *currencyRepository) UpdateCurrency(ctx context.Context, q ports.Querier, currency *domain.Currency) error {
	query := `
		UPDATE currencies
		SET name = $2, symbol = $3, decimal_places = $4, is_active = $5, updated_at = $6
		WHERE id = $1`

	tag, err := q.Exec(ctx, query,
		currency.ID, currency.Name, currency.Symbol,
		currency.DecimalPlaces, currency.IsActive, time.Now(),
	)
	if err != nil {
		return fmt.Errorf("failed to update currency: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("currency not found: %s", currency.ID)
	}
	return nil
}

// InsertRate writes one exchange rate row
func (r *currencyRepository) InsertRate(ctx context.Context, q ports.Querier, rate *domain.ExchangeRate) error {
	query := `
		INSERT INTO exchange_rates (id, currency_code, rate, effective_date, created_at)
		VALUES ($1, $2, $3, $4, $5)`

	_, err := q.Exec(ctx, query,
		rate.ID, rate.CurrencyCode, rate.Rate, rate.EffectiveDate, rate.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert exchange rate: %w", err)
	}
	return nil
}

// LatestRate returns the newest rate effective at or before asOf, nil when none
func (r *currencyRepository) LatestRate(ctx context.Context, q ports.Querier, code string, asOf time.Time) (*domain.ExchangeRate, error) {
	query := `
		SELECT id, currency_code, rate, effective_date, created_at
		FROM exchange_rates
		WHERE currency_code = $1 AND effective_date <= $2
		ORDER BY effective_date DESC
		LIMIT 1`

	rate := &domain.ExchangeRate{}
	err := q.QueryRow(ctx, query, code, asOf).Scan(
		&rate.ID, &rate.CurrencyCode, &rate.Rate, &rate.EffectiveDate, &rate.CreatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find exchange rate: %w", err)
	}
	return rate, nil
}
