package analyzing

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/restaurant-revenue-api/internal/domain"
)

func TestBuildAggregationIndex_Scenario(t *testing.T) {
	index := BuildAggregationIndex(scenarioRecords())

	assert.True(t, decimal.NewFromInt(100).Equal(index.ByMonth[ShopMonth{Shop: "A", Month: month("2025-01")}]))
	assert.True(t, decimal.NewFromInt(200).Equal(index.ByMonth[ShopMonth{Shop: "A", Month: month("2025-02")}]))

	assert.True(t, decimal.NewFromInt(100).Equal(index.BySlot[ShopMonthSlot{Shop: "A", Month: month("2025-01"), Timeslot: "早"}]))
	assert.True(t, decimal.NewFromInt(150).Equal(index.BySlot[ShopMonthSlot{Shop: "A", Month: month("2025-02"), Timeslot: "早"}]))
	assert.True(t, decimal.NewFromInt(50).Equal(index.BySlot[ShopMonthSlot{Shop: "A", Month: month("2025-02"), Timeslot: "晚"}]))

	_, ok := index.BySlot[ShopMonthSlot{Shop: "A", Month: month("2025-01"), Timeslot: "晚"}]
	assert.False(t, ok)
}

func TestBuildAggregationIndex_EdgeCases(t *testing.T) {
	records := []domain.RevenueRecord{
		record("1", "A", "2025-01-01", "早", 10),
		// mesma chave: soma, não sobrescreve
		record("2", "A", "2025-01-01", "早", 15),
		// valor ausente soma zero
		{ID: "3", Shop: "A", Date: "2025-01-02", Timeslot: "晚"},
		// sem data: ignorado
		record("4", "A", "", "早", 999),
	}

	index := BuildAggregationIndex(records)

	require.Len(t, index.ByMonth, 1)
	assert.True(t, decimal.NewFromInt(25).Equal(index.ByMonth[ShopMonth{Shop: "A", Month: month("2025-01")}]))

	require.Len(t, index.BySlot, 2)
	assert.True(t, decimal.NewFromInt(25).Equal(index.BySlot[ShopMonthSlot{Shop: "A", Month: month("2025-01"), Timeslot: "早"}]))
	assert.True(t, decimal.Zero.Equal(index.BySlot[ShopMonthSlot{Shop: "A", Month: month("2025-01"), Timeslot: "晚"}]))
}

func TestBuildAggregationIndex_Empty(t *testing.T) {
	index := BuildAggregationIndex(nil)

	assert.NotNil(t, index.ByMonth)
	assert.NotNil(t, index.BySlot)
	assert.Empty(t, index.ByMonth)
	assert.Empty(t, index.BySlot)
}

func TestBuildAggregationIndex_OrderIndependent(t *testing.T) {
	records := []domain.RevenueRecord{
		record("1", "A", "2025-01-15", "早", 100),
		record("2", "B", "2025-01-20", "晚", 80),
		record("3", "A", "2025-02-10", "晚", 150),
		record("4", "A", "2025-02-11", "晚", 5),
		record("5", "B", "2025-03-01", "早", 70),
	}

	reversed := make([]domain.RevenueRecord, len(records))
	for i, r := range records {
		reversed[len(records)-1-i] = r
	}
	rotated := append(append([]domain.RevenueRecord{}, records[2:]...), records[:2]...)

	expected := BuildAggregationIndex(records)

	for _, permutation := range [][]domain.RevenueRecord{reversed, rotated} {
		index := BuildAggregationIndex(permutation)

		require.Len(t, index.ByMonth, len(expected.ByMonth))
		for key, amount := range expected.ByMonth {
			assert.True(t, amount.Equal(index.ByMonth[key]), "ByMonth %v", key)
		}

		require.Len(t, index.BySlot, len(expected.BySlot))
		for key, amount := range expected.BySlot {
			assert.True(t, amount.Equal(index.BySlot[key]), "BySlot %v", key)
		}
	}
}

func TestBuildAggregationIndex_ByMonthIsSumOfSlots(t *testing.T) {
	records := []domain.RevenueRecord{
		record("1", "A", "2025-01-15", "早", 100),
		record("2", "A", "2025-01-20", "晚", 80),
		record("3", "A", "2025-01-21", "夜", 20),
		record("4", "B", "2025-01-10", "早", 7),
		record("5", "B", "2025-02-10", "晚", 3),
	}

	index := BuildAggregationIndex(records)

	sums := make(map[ShopMonth]decimal.Decimal)
	for key, amount := range index.BySlot {
		monthKey := ShopMonth{Shop: key.Shop, Month: key.Month}
		sums[monthKey] = sums[monthKey].Add(amount)
	}

	require.Len(t, sums, len(index.ByMonth))
	for key, amount := range index.ByMonth {
		assert.True(t, amount.Equal(sums[key]), "loja %s mês %s", key.Shop, key.Month)
	}
}
