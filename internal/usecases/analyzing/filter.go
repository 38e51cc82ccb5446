package analyzing

import (
	"github.com/vfg2006/restaurant-revenue-api/internal/domain"
)

// FilterRecords retorna os registros que atendem a todos os critérios informados,
// preservando a ordem original. Critério vazio não restringe. As datas são
// comparadas como texto, o que vale para o formato yyyy-mm-dd.
func FilterRecords(records []domain.RevenueRecord, filters domain.RevenueFilters) []domain.RevenueRecord {
	filtered := make([]domain.RevenueRecord, 0, len(records))
	for _, record := range records {
		if matches(record, filters) {
			filtered = append(filtered, record)
		}
	}

	return filtered
}

func matches(record domain.RevenueRecord, filters domain.RevenueFilters) bool {
	if filters.Shop != "" && record.Shop != filters.Shop {
		return false
	}

	if filters.Timeslot != "" && record.Timeslot != filters.Timeslot {
		return false
	}

	if filters.DateFrom != "" && record.Date < filters.DateFrom {
		return false
	}

	if filters.DateTo != "" && record.Date > filters.DateTo {
		return false
	}

	return true
}
