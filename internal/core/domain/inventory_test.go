// internal/core/domain/inventory_test.go
package domain_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/zipos/zipos-be/internal/core/domain"
)

func TestInventoryItem_ApplyReceipt(t *testing.T) {
	tests := []struct {
		name         string
		startStock   string
		startAvg     string
		quantity     string
		unitCost     string
		wantStock    string
		wantAvg      string
		wantLastCost string
	}{
		{
			name:       "weighted average across two receipts",
			startStock: "10", startAvg: "5.00",
			quantity: "10", unitCost: "7.00",
			wantStock: "20", wantAvg: "6", wantLastCost: "7.00",
		},
		{
			name:       "first receipt sets average to unit cost",
			startStock: "0", startAvg: "0",
			quantity: "25", unitCost: "4.37",
			wantStock: "25", wantAvg: "4.37", wantLastCost: "4.37",
		},
		{
			name:       "average rounds to four places",
			startStock: "3", startAvg: "1.00",
			quantity: "1", unitCost: "2.00",
			wantStock: "4", wantAvg: "1.25", wantLastCost: "2.00",
		},
		{
			name:       "receipt from negative stock that stays non-positive keeps average",
			startStock: "-5", startAvg: "3.00",
			quantity: "5", unitCost: "9.00",
			wantStock: "0", wantAvg: "3.00", wantLastCost: "9.00",
		},
		{
			name:       "receipt recovering from negative stock recomputes",
			startStock: "-2", startAvg: "3.00",
			quantity: "6", unitCost: "6.00",
			// (-2×3 + 6×6) / 4 = 7.5
			wantStock: "4", wantAvg: "7.5", wantLastCost: "6.00",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item := domain.InventoryItem{
				CurrentStock: decimal.RequireFromString(tt.startStock),
				AverageCost:  decimal.RequireFromString(tt.startAvg),
			}
			item.ApplyReceipt(
				decimal.RequireFromString(tt.quantity),
				decimal.RequireFromString(tt.unitCost),
			)

			assert.True(t, item.CurrentStock.Equal(decimal.RequireFromString(tt.wantStock)),
				"stock: want %s, got %s", tt.wantStock, item.CurrentStock)
			assert.True(t, item.AverageCost.Equal(decimal.RequireFromString(tt.wantAvg)),
				"average: want %s, got %s", tt.wantAvg, item.AverageCost)
			assert.True(t, item.LastUnitCost.Equal(decimal.RequireFromString(tt.wantLastCost)),
				"last cost: want %s, got %s", tt.wantLastCost, item.LastUnitCost)
			assert.False(t, item.LastUpdated.IsZero())
		})
	}
}

func TestInventoryItem_IsLowStock(t *testing.T) {
	tests := []struct {
		name    string
		stock   string
		reorder string
		want    bool
	}{
		{"below reorder level", "5", "10", true},
		{"exactly at reorder level", "10", "10", true},
		{"above reorder level", "11", "10", false},
		{"zero reorder level never alerts", "0", "0", false},
		{"negative stock with reorder level", "-3", "10", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item := domain.InventoryItem{
				CurrentStock: decimal.RequireFromString(tt.stock),
				ReorderLevel: decimal.RequireFromString(tt.reorder),
			}
			assert.Equal(t, tt.want, item.IsLowStock())
		})
	}
}
