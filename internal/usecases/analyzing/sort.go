package analyzing

import (
	"sort"
	"strings"

	"github.com/vfg2006/restaurant-revenue-api/internal/domain"
)

type compareFunc func(a, b domain.RevenueRecord) int

var comparators = map[domain.SortKey]compareFunc{
	domain.SortByID: func(a, b domain.RevenueRecord) int {
		return strings.Compare(a.ID, b.ID)
	},
	domain.SortByShop: func(a, b domain.RevenueRecord) int {
		return strings.Compare(a.Shop, b.Shop)
	},
	domain.SortByDate: func(a, b domain.RevenueRecord) int {
		return strings.Compare(a.Date, b.Date)
	},
	domain.SortByTimeslot: func(a, b domain.RevenueRecord) int {
		return strings.Compare(a.Timeslot, b.Timeslot)
	},
	domain.SortByAmount: func(a, b domain.RevenueRecord) int {
		return a.AmountOrZero().Cmp(b.AmountOrZero())
	},
	domain.SortByTransactionCount: func(a, b domain.RevenueRecord) int {
		x, y := a.TransactionCountOrZero(), b.TransactionCountOrZero()
		switch {
		case x < y:
			return -1
		case x > y:
			return 1
		default:
			return 0
		}
	},
}

// IsValidSortKey indica se existe ordenação para o campo
func IsValidSortKey(key domain.SortKey) bool {
	_, ok := comparators[key]
	return ok
}

// SortRecords ordena uma cópia dos registros de forma estável. Empates mantêm
// a ordem original nas duas direções. Campo desconhecido devolve a cópia sem
// alteração de ordem.
func SortRecords(records []domain.RevenueRecord, key domain.SortKey, direction domain.SortDirection) []domain.RevenueRecord {
	sorted := make([]domain.RevenueRecord, len(records))
	copy(sorted, records)

	compare, ok := comparators[key]
	if !ok {
		return sorted
	}

	sort.SliceStable(sorted, func(i, j int) bool {
		if direction == domain.SortDesc {
			return compare(sorted[i], sorted[j]) > 0
		}
		return compare(sorted[i], sorted[j]) < 0
	})

	return sorted
}
