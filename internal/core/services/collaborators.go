// internal/core/services/collaborators.go
package services

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/zipos/zipos-be/internal/core/domain"
	"github.com/zipos/zipos-be/internal/core/ports"
)

// FlatRateTaxCalculator applies a single percentage to the discounted cart
// total. A zero rate makes checkout tax-free.
type FlatRateTaxCalculator struct {
	rate decimal.Decimal // e.g. 0.21 for 21%
}

var _ ports.TaxCalculator = (*FlatRateTaxCalculator)(nil)

// NewFlatRateTaxCalculator creates a calculator with the given fractional rate.
func NewFlatRateTaxCalculator(rate decimal.Decimal) *FlatRateTaxCalculator {
	return &FlatRateTaxCalculator{rate: rate}
}

// CalculateTax returns rate × Σ discounted line totals, rounded to 4 places.
func (c *FlatRateTaxCalculator) CalculateTax(_ context.Context, _ string, items []domain.CartItem) (decimal.Decimal, error) {
	if c.rate.IsZero() {
		return decimal.Zero, nil
	}
	total := decimal.Zero
	for i := range items {
		total = total.Add(items[i].TotalAmount)
	}
	return total.Mul(c.rate).Round(4), nil
}

// PercentagePromotionEngine grants percentage discounts per promo code and per
// customer tier. When both match, the larger percentage wins.
type PercentagePromotionEngine struct {
	codes map[string]decimal.Decimal // promo code -> fraction, e.g. 0.10
	tiers map[string]decimal.Decimal // customer tier -> fraction
}

var _ ports.PromotionEngine = (*PercentagePromotionEngine)(nil)

// NewPercentagePromotionEngine creates an engine from code and tier tables.
// Either map may be nil.
func NewPercentagePromotionEngine(codes, tiers map[string]decimal.Decimal) *PercentagePromotionEngine {
	return &PercentagePromotionEngine{codes: codes, tiers: tiers}
}

// ApplyPromotions returns per-line absolute discounts keyed by cart item id.
// Unknown codes and tiers contribute nothing; with no match the result is
// empty and existing discounts stand.
func (e *PercentagePromotionEngine) ApplyPromotions(_ context.Context, _ *domain.Cart, items []domain.CartItem, promoCode, customerTier string) (map[string]decimal.Decimal, error) {
	pct := decimal.Zero
	if p, ok := e.codes[promoCode]; ok && p.GreaterThan(pct) {
		pct = p
	}
	if p, ok := e.tiers[customerTier]; ok && p.GreaterThan(pct) {
		pct = p
	}
	if pct.IsZero() {
		return map[string]decimal.Decimal{}, nil
	}

	discounts := make(map[string]decimal.Decimal, len(items))
	for i := range items {
		gross := items[i].UnitPrice.Mul(items[i].Quantity)
		discounts[items[i].ID.String()] = gross.Mul(pct).Round(4)
	}
	return discounts, nil
}
