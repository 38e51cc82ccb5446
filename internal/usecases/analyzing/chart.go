package analyzing

import (
	"github.com/shopspring/decimal"
	"github.com/vfg2006/restaurant-revenue-api/internal/domain"
)

// ChartScope restringe as séries do gráfico. Shop vazio soma todas as lojas
// e Timeslot vazio soma todos os períodos.
type ChartScope struct {
	Shop     string
	Timeslot string
}

// BuildChartSeries gera as séries de total mensal e variação mês a mês para
// cada mês do intervalo. O primeiro mês nunca tem variação.
func BuildChartSeries(months []domain.MonthKey, index AggregationIndex, scope ChartScope) domain.ChartSeries {
	totals := scopedTotals(index, scope)

	series := domain.ChartSeries{
		Months: months,
		Totals: make([]decimal.Decimal, 0, len(months)),
		Growth: make([]domain.GrowthRate, 0, len(months)),
	}

	for i, month := range months {
		total, ok := totals[month]
		if !ok {
			total = decimal.Zero
		}
		series.Totals = append(series.Totals, total)

		if i == 0 {
			series.Growth = append(series.Growth, domain.NoGrowthRate)
			continue
		}

		previous, hasPrevious := totals[month.Prev()]
		series.Growth = append(series.Growth, domain.NewGrowthRate(total, previous, hasPrevious))
	}

	return series
}

// scopedTotals soma o índice por mês dentro do escopo pedido. Com loja e
// período definidos equivale a BySlot; só com loja, a ByMonth.
func scopedTotals(index AggregationIndex, scope ChartScope) map[domain.MonthKey]decimal.Decimal {
	totals := make(map[domain.MonthKey]decimal.Decimal)

	if scope.Timeslot == "" {
		for key, amount := range index.ByMonth {
			if scope.Shop != "" && key.Shop != scope.Shop {
				continue
			}
			totals[key.Month] = totals[key.Month].Add(amount)
		}
		return totals
	}

	for key, amount := range index.BySlot {
		if key.Timeslot != scope.Timeslot {
			continue
		}
		if scope.Shop != "" && key.Shop != scope.Shop {
			continue
		}
		totals[key.Month] = totals[key.Month].Add(amount)
	}

	return totals
}

// ChartMonths define o intervalo de meses do gráfico: as datas do filtro
// quando informadas, senão o intervalo de datas dos registros filtrados
func ChartMonths(filters domain.RevenueFilters, records []domain.RevenueRecord) []domain.MonthKey {
	start, hasStart := domain.MonthKeyFromDate(filters.DateFrom)
	end, hasEnd := domain.MonthKeyFromDate(filters.DateTo)

	if !hasStart || !hasEnd {
		first, last, ok := monthSpan(records)
		if !ok {
			return []domain.MonthKey{}
		}
		if !hasStart {
			start = first
		}
		if !hasEnd {
			end = last
		}
	}

	return domain.MonthRange(start, end)
}

func monthSpan(records []domain.RevenueRecord) (first, last domain.MonthKey, ok bool) {
	for _, record := range records {
		month, valid := record.MonthKey()
		if !valid {
			continue
		}

		if !ok {
			first, last, ok = month, month, true
			continue
		}

		if month.Before(first) {
			first = month
		}
		if last.Before(month) {
			last = month
		}
	}

	return first, last, ok
}
