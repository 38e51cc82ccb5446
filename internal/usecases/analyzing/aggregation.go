package analyzing

import (
	"github.com/shopspring/decimal"
	"github.com/vfg2006/restaurant-revenue-api/internal/domain"
)

// ShopMonth agrupa o faturamento de uma loja em um mês
type ShopMonth struct {
	Shop  string
	Month domain.MonthKey
}

// ShopMonthSlot agrupa o faturamento de uma loja em um mês e período
type ShopMonthSlot struct {
	Shop     string
	Month    domain.MonthKey
	Timeslot string
}

// AggregationIndex guarda as somas de faturamento por loja+mês+período (BySlot)
// e por loja+mês (ByMonth). É recalculado a cada mudança do conjunto de registros.
type AggregationIndex struct {
	BySlot  map[ShopMonthSlot]decimal.Decimal
	ByMonth map[ShopMonth]decimal.Decimal
}

// BuildAggregationIndex monta os dois agrupamentos em uma única passada.
// Registros sem data agrupável são ignorados. Valores ausentes somam zero e
// registros com a mesma chave são somados, nunca sobrescritos.
func BuildAggregationIndex(records []domain.RevenueRecord) AggregationIndex {
	index := AggregationIndex{
		BySlot:  make(map[ShopMonthSlot]decimal.Decimal),
		ByMonth: make(map[ShopMonth]decimal.Decimal),
	}

	for _, record := range records {
		month, ok := record.MonthKey()
		if !ok {
			continue
		}

		amount := record.AmountOrZero()

		slotKey := ShopMonthSlot{Shop: record.Shop, Month: month, Timeslot: record.Timeslot}
		index.BySlot[slotKey] = index.BySlot[slotKey].Add(amount)

		monthKey := ShopMonth{Shop: record.Shop, Month: month}
		index.ByMonth[monthKey] = index.ByMonth[monthKey].Add(amount)
	}

	return index
}

