// internal/core/domain/currency.go
package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Currency is a tenant-configured currency. Exactly one currency may carry
// the base flag; all exchange rates are expressed against it.
type Currency struct {
	ID             uuid.UUID `json:"id"`
	Code           string    `json:"code"`
	Name           string    `json:"name"`
	Symbol         string    `json:"symbol"`
	DecimalPlaces  int       `json:"decimal_places"`
	IsActive       bool      `json:"is_active"`
	IsBaseCurrency bool      `json:"is_base_currency"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// ExchangeRate is the rate from a currency to the base currency at a point in
// time. Rates must be strictly positive.
type ExchangeRate struct {
	ID            uuid.UUID       `json:"id"`
	CurrencyCode  string          `json:"currency_code"`
	Rate          decimal.Decimal `json:"rate"`
	EffectiveDate time.Time       `json:"effective_date"`
	CreatedAt     time.Time       `json:"created_at"`
}
