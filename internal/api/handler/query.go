package handler

import (
	"net/url"

	"github.com/vfg2006/restaurant-revenue-api/internal/domain"
	"github.com/vfg2006/restaurant-revenue-api/internal/usecases/analyzing"
	"github.com/vfg2006/restaurant-revenue-api/pkg/utils"
)

// queryErrors acumula os parâmetros inválidos da query string
type queryErrors map[string]string

func (q queryErrors) add(field, message string) {
	q[field] = message
}

// parseRevenueFilters lê shop, timeslot, dateFrom, dateTo e month.
// month (yyyy-mm) substitui dateFrom/dateTo pelo primeiro e último dia do mês.
func parseRevenueFilters(values url.Values, invalid queryErrors) domain.RevenueFilters {
	filters := domain.RevenueFilters{
		Shop:     values.Get("shop"),
		Timeslot: values.Get("timeslot"),
	}

	dateFrom, err := utils.ParseDate(values.Get("dateFrom"))
	if err != nil {
		invalid.add("dateFrom", "deve estar no formato yyyy-mm-dd")
	}
	dateTo, err := utils.ParseDate(values.Get("dateTo"))
	if err != nil {
		invalid.add("dateTo", "deve estar no formato yyyy-mm-dd")
	}
	filters.DateFrom = dateFrom
	filters.DateTo = dateTo

	if month := values.Get("month"); month != "" {
		key, err := domain.ParseMonthKey(month)
		if err != nil {
			invalid.add("month", "deve estar no formato yyyy-mm")
		} else {
			filters.DateFrom = key.FirstDay()
			filters.DateTo = key.LastDay()
		}
	}

	return filters
}

func parseSalesQuery(values url.Values, invalid queryErrors) domain.SalesQuery {
	query := domain.SalesQuery{
		Filters:   parseRevenueFilters(values, invalid),
		Direction: domain.SortAsc,
	}

	if sortKey := values.Get("sort"); sortKey != "" {
		query.SortKey = domain.SortKey(sortKey)
		if !analyzing.IsValidSortKey(query.SortKey) {
			invalid.add("sort", "campo de ordenação inválido")
		}
	}

	switch order := domain.SortDirection(values.Get("order")); order {
	case "", domain.SortAsc:
	case domain.SortDesc:
		query.Direction = domain.SortDesc
	default:
		invalid.add("order", "deve ser asc ou desc")
	}

	return query
}

func parseMembershipFilters(values url.Values, invalid queryErrors) domain.MembershipFilters {
	filters := parseRevenueFilters(values, invalid)

	return domain.MembershipFilters{
		Shop:     filters.Shop,
		DateFrom: filters.DateFrom,
		DateTo:   filters.DateTo,
	}
}
