package analyzing

import (
	"github.com/shopspring/decimal"
	"github.com/vfg2006/restaurant-revenue-api/internal/domain"
)

// MonthlyGrowth calcula a variação do faturamento total da loja em relação
// ao mês anterior da própria loja
func MonthlyGrowth(shop string, month domain.MonthKey, byMonth map[ShopMonth]decimal.Decimal) domain.GrowthRate {
	previous, hasPrevious := byMonth[ShopMonth{Shop: shop, Month: month.Prev()}]
	current := byMonth[ShopMonth{Shop: shop, Month: month}]

	return domain.NewGrowthRate(current, previous, hasPrevious)
}

// SlotGrowth calcula a variação do faturamento de um período (timeslot) em
// relação ao mesmo período do mês anterior
func SlotGrowth(shop string, month domain.MonthKey, timeslot string, bySlot map[ShopMonthSlot]decimal.Decimal) domain.GrowthRate {
	previous, hasPrevious := bySlot[ShopMonthSlot{Shop: shop, Month: month.Prev(), Timeslot: timeslot}]
	current := bySlot[ShopMonthSlot{Shop: shop, Month: month, Timeslot: timeslot}]

	return domain.NewGrowthRate(current, previous, hasPrevious)
}

// RowGrowth calcula as duas variações para um registro. Registros sem data
// agrupável não têm base de comparação.
func RowGrowth(record domain.RevenueRecord, index AggregationIndex) (monthly, slot domain.GrowthRate) {
	month, ok := record.MonthKey()
	if !ok {
		return domain.NoGrowthRate, domain.NoGrowthRate
	}

	return MonthlyGrowth(record.Shop, month, index.ByMonth),
		SlotGrowth(record.Shop, month, record.Timeslot, index.BySlot)
}
