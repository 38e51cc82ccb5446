package handler

import (
	"net/http"

	"github.com/vfg2006/restaurant-revenue-api/internal/api/handler/router"
	"github.com/vfg2006/restaurant-revenue-api/internal/usecases/analyzing"
	"github.com/vfg2006/restaurant-revenue-api/internal/usecases/membership"
	"github.com/vfg2006/restaurant-revenue-api/internal/usecases/sales"
)

func Healthcheck(db Pinger) []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(db),
		},
	}
}

func Metrics(exposition http.Handler) []router.Route {
	return []router.Route{
		{
			Path:    "/metrics",
			Method:  http.MethodGet,
			Handler: exposition,
		},
	}
}

func Sales(analyzer analyzing.Analyzer, service sales.SalesService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/sales",
			Method:  http.MethodGet,
			Handler: GetSalesReport(analyzer),
		},
		{
			Path:    "/v1/sales/meta",
			Method:  http.MethodGet,
			Handler: GetSalesMeta(analyzer),
		},
		{
			Path:    "/v1/sales/chart",
			Method:  http.MethodGet,
			Handler: GetSalesChart(analyzer),
		},
		{
			Path:    "/v1/sales",
			Method:  http.MethodPost,
			Handler: CreateSale(service),
		},
		{
			Path:    "/v1/sales/:id",
			Method:  http.MethodPut,
			Handler: UpdateSale(service),
		},
		{
			Path:    "/v1/sales/:id",
			Method:  http.MethodDelete,
			Handler: DeleteSale(service),
		},
	}
}

func Membership(service membership.MembershipService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/membership",
			Method:  http.MethodGet,
			Handler: ListMemberships(service),
		},
		{
			Path:    "/v1/membership",
			Method:  http.MethodPost,
			Handler: CreateMembership(service),
		},
		{
			Path:    "/v1/membership/:id",
			Method:  http.MethodPut,
			Handler: UpdateMembership(service),
		},
		{
			Path:    "/v1/membership/:id",
			Method:  http.MethodDelete,
			Handler: DeleteMembership(service),
		},
	}
}

func Snapshot(syncer SnapshotSyncer) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/snapshot/refresh",
			Method:  http.MethodPost,
			Handler: RefreshSnapshot(syncer),
		},
		{
			Path:    "/v1/snapshot/status",
			Method:  http.MethodGet,
			Handler: GetSnapshotStatus(syncer),
		},
	}
}
