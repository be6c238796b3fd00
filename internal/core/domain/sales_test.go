// internal/core/domain/sales_test.go
package domain_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zipos/zipos-be/internal/core/domain"
)

func TestCartItem_ComputeTotal(t *testing.T) {
	item := domain.CartItem{
		Quantity:       decimal.NewFromInt(3),
		UnitPrice:      decimal.NewFromFloat(9.99),
		DiscountAmount: decimal.NewFromFloat(2.97),
	}
	item.ComputeTotal()
	assert.True(t, item.TotalAmount.Equal(decimal.NewFromFloat(27.00)),
		"got %s", item.TotalAmount)
}

func TestProportionalDiscount(t *testing.T) {
	tests := []struct {
		name        string
		discount    string
		qty         string
		originalQty string
		want        string
	}{
		{"full quantity carries full discount", "10.00", "5", "5", "10.00"},
		{"partial quantity carries its share", "10.00", "2", "5", "4"},
		{"rounds to four places", "10.00", "1", "3", "3.3333"},
		{"zero original quantity yields zero", "10.00", "1", "0", "0"},
		{"zero discount stays zero", "0", "2", "4", "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := domain.ProportionalDiscount(
				decimal.RequireFromString(tt.discount),
				decimal.RequireFromString(tt.qty),
				decimal.RequireFromString(tt.originalQty),
			)
			assert.True(t, got.Equal(decimal.RequireFromString(tt.want)),
				"want %s, got %s", tt.want, got)
		})
	}
}

func TestBuildReceipt(t *testing.T) {
	sale := &domain.Sale{
		ID:              uuid.New(),
		BranchID:        "branch-main",
		TransactionDate: time.Now(),
		SubTotal:        decimal.NewFromFloat(50.00),
		DiscountAmount:  decimal.NewFromFloat(5.00),
		TaxAmount:       decimal.NewFromFloat(3.60),
		TotalAmount:     decimal.NewFromFloat(48.60),
		Status:          domain.SaleCompleted,
	}
	items := []domain.SaleItem{
		{
			SaleID:         sale.ID,
			Name:           "Widget",
			Quantity:       decimal.NewFromInt(2),
			UnitPrice:      decimal.NewFromFloat(10.00),
			DiscountAmount: decimal.NewFromFloat(5.00),
			TotalAmount:    decimal.NewFromFloat(15.00),
		},
		{
			SaleID:      sale.ID,
			Name:        "Gadget",
			Quantity:    decimal.NewFromInt(1),
			UnitPrice:   decimal.NewFromFloat(30.00),
			TotalAmount: decimal.NewFromFloat(30.00),
		},
	}
	payments := []domain.Payment{
		{Method: "cash", Amount: decimal.NewFromFloat(20.00)},
		{Method: "card", Amount: decimal.NewFromFloat(28.60)},
	}

	receipt := domain.BuildReceipt(sale, items, payments)

	require.NotNil(t, receipt)
	assert.Equal(t, sale.ID, receipt.SaleID)
	assert.Equal(t, "branch-main", receipt.BranchID)
	require.Len(t, receipt.Lines, 2)
	assert.Equal(t, "Widget", receipt.Lines[0].Name)
	assert.True(t, receipt.Lines[0].Discount.Equal(decimal.NewFromFloat(5.00)))
	require.Len(t, receipt.Payments, 2)
	assert.Equal(t, "card", receipt.Payments[1].Method)
	assert.True(t, receipt.TotalAmount.Equal(decimal.NewFromFloat(48.60)))
}
