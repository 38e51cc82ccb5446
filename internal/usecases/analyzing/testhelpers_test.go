package analyzing

import (
	"github.com/shopspring/decimal"
	"github.com/vfg2006/restaurant-revenue-api/internal/domain"
)

func record(id, shop, date, timeslot string, amount int64) domain.RevenueRecord {
	return domain.RevenueRecord{
		ID:       id,
		Shop:     shop,
		Date:     date,
		Timeslot: timeslot,
		Amount:   decimal.NewNullDecimal(decimal.NewFromInt(amount)),
	}
}

func month(value string) domain.MonthKey {
	key, err := domain.ParseMonthKey(value)
	if err != nil {
		panic(err)
	}
	return key
}

func ids(records []domain.RevenueRecord) []string {
	result := make([]string, 0, len(records))
	for _, r := range records {
		result = append(result, r.ID)
	}
	return result
}

func intPtr(v int) *int {
	return &v
}

// scenarioRecords é o cenário de referência: loja A com janeiro só no 早 e
// fevereiro em 早 e 晚
func scenarioRecords() []domain.RevenueRecord {
	return []domain.RevenueRecord{
		record("1", "A", "2025-01-15", "早", 100),
		record("2", "A", "2025-02-10", "早", 150),
		record("3", "A", "2025-02-20", "晚", 50),
	}
}
