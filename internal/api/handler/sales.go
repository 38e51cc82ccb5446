package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/restaurant-revenue-api/internal/domain"
	"github.com/vfg2006/restaurant-revenue-api/internal/usecases/analyzing"
	"github.com/vfg2006/restaurant-revenue-api/internal/usecases/sales"
	"github.com/vfg2006/restaurant-revenue-api/pkg/apiErrors"
	"github.com/vfg2006/restaurant-revenue-api/pkg/log"
	"github.com/vfg2006/restaurant-revenue-api/pkg/middleware"
)

// GetSalesReport retorna a tabela de vendas filtrada e ordenada, com as variações mês a mês
func GetSalesReport(analyzer analyzing.Analyzer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		invalid := queryErrors{}
		query := parseSalesQuery(r.URL.Query(), invalid)
		if len(invalid) > 0 {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetros de consulta inválidos", invalid)
			return
		}

		report := analyzer.GetSalesReport(query)

		middleware.AddLogFields(r.Context(), log.Fields{
			"generation": report.Generation,
			"records":    report.Count,
		})

		writeJSON(w, http.StatusOK, report)
	}
}

// GetSalesChart retorna as séries de total mensal e crescimento do gráfico
func GetSalesChart(analyzer analyzing.Analyzer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		invalid := queryErrors{}
		filters := parseRevenueFilters(r.URL.Query(), invalid)
		if len(invalid) > 0 {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetros de consulta inválidos", invalid)
			return
		}

		chart := analyzer.GetChart(filters)
		middleware.AddLogFields(r.Context(), log.Fields{"generation": chart.Generation})

		writeJSON(w, http.StatusOK, chart)
	}
}

// GetSalesMeta retorna as lojas e os períodos conhecidos
func GetSalesMeta(analyzer analyzing.Analyzer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, analyzer.GetLabels())
	}
}

func CreateSale(service sales.SalesService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var request domain.RevenueRequest
		if err := decodeBody(r, &request); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido", nil)
			return
		}

		record, err := service.Create(r.Context(), &request)
		if err != nil {
			writeServiceError(w, err, "Erro ao criar registro de faturamento")
			return
		}

		writeJSON(w, http.StatusCreated, record)
	}
}

func UpdateSale(service sales.SalesService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		var request domain.RevenueRequest
		if err := decodeBody(r, &request); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido", nil)
			return
		}

		record, err := service.Update(r.Context(), id, &request)
		if err != nil {
			writeServiceError(w, err, "Erro ao atualizar registro de faturamento")
			return
		}

		writeJSON(w, http.StatusOK, record)
	}
}

func DeleteSale(service sales.SalesService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		if err := service.Delete(r.Context(), id); err != nil {
			writeServiceError(w, err, "Erro ao remover registro de faturamento")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
