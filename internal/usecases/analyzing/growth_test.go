package analyzing

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/restaurant-revenue-api/internal/domain"
)

func TestMonthlyGrowth(t *testing.T) {
	tests := []struct {
		name     string
		byMonth  map[ShopMonth]decimal.Decimal
		month    string
		expected domain.GrowthRate
	}{
		{
			name: "Crescimento de 50%",
			byMonth: map[ShopMonth]decimal.Decimal{
				{Shop: "A", Month: month("2025-01")}: decimal.NewFromInt(1000),
				{Shop: "A", Month: month("2025-02")}: decimal.NewFromInt(1500),
			},
			month:    "2025-02",
			expected: domain.GrowthRate{Ratio: 0.5, Valid: true},
		},
		{
			name: "Sem mês anterior",
			byMonth: map[ShopMonth]decimal.Decimal{
				{Shop: "A", Month: month("2025-02")}: decimal.NewFromInt(500),
			},
			month:    "2025-02",
			expected: domain.NoGrowthRate,
		},
		{
			name: "Mês anterior zerado",
			byMonth: map[ShopMonth]decimal.Decimal{
				{Shop: "A", Month: month("2025-01")}: decimal.Zero,
				{Shop: "A", Month: month("2025-02")}: decimal.NewFromInt(500),
			},
			month:    "2025-02",
			expected: domain.NoGrowthRate,
		},
		{
			name: "Virada de ano",
			byMonth: map[ShopMonth]decimal.Decimal{
				{Shop: "A", Month: month("2024-12")}: decimal.NewFromInt(200),
				{Shop: "A", Month: month("2025-01")}: decimal.NewFromInt(150),
			},
			month:    "2025-01",
			expected: domain.GrowthRate{Ratio: -0.25, Valid: true},
		},
		{
			name: "Mês atual sem registros conta como zero",
			byMonth: map[ShopMonth]decimal.Decimal{
				{Shop: "A", Month: month("2025-01")}: decimal.NewFromInt(200),
			},
			month:    "2025-02",
			expected: domain.GrowthRate{Ratio: -1, Valid: true},
		},
		{
			name: "Outra loja não serve de base",
			byMonth: map[ShopMonth]decimal.Decimal{
				{Shop: "B", Month: month("2025-01")}: decimal.NewFromInt(200),
				{Shop: "A", Month: month("2025-02")}: decimal.NewFromInt(200),
			},
			month:    "2025-02",
			expected: domain.NoGrowthRate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := MonthlyGrowth("A", month(tt.month), tt.byMonth)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestRowGrowth_Scenario(t *testing.T) {
	records := scenarioRecords()
	index := BuildAggregationIndex(records)

	monthly, slot := RowGrowth(records[1], index) // A, 2025-02, 早
	assert.Equal(t, domain.GrowthRate{Ratio: 1, Valid: true}, monthly)
	assert.Equal(t, domain.GrowthRate{Ratio: 0.5, Valid: true}, slot)

	monthly, slot = RowGrowth(records[2], index) // A, 2025-02, 晚
	assert.Equal(t, domain.GrowthRate{Ratio: 1, Valid: true}, monthly)
	assert.False(t, slot.Valid, "晚 não tem base em janeiro")

	monthly, slot = RowGrowth(records[0], index) // primeiro mês
	assert.False(t, monthly.Valid)
	assert.False(t, slot.Valid)
}

func TestRowGrowth_WithoutDate(t *testing.T) {
	index := BuildAggregationIndex(scenarioRecords())

	monthly, slot := RowGrowth(record("9", "A", "", "早", 10), index)
	assert.Equal(t, domain.NoGrowthRate, monthly)
	assert.Equal(t, domain.NoGrowthRate, slot)
}
