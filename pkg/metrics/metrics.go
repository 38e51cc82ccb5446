// Package metrics expõe as métricas Prometheus da API
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Resultados possíveis de uma atualização do snapshot de faturamento
const (
	OutcomeApplied = "applied"
	OutcomeFailed  = "failed"
	OutcomeStale   = "stale"
)

type Recorder struct {
	httpRequests      *prometheus.CounterVec
	httpDuration      *prometheus.HistogramVec
	snapshotRefreshes *prometheus.CounterVec
	snapshotDuration  prometheus.Histogram
	snapshotRecords   prometheus.Gauge
}

// NewRecorder registra as métricas no registerer informado. Em produção use
// prometheus.DefaultRegisterer; nos testes, um prometheus.NewRegistry().
func NewRecorder(reg prometheus.Registerer) *Recorder {
	factory := promauto.With(reg)

	return &Recorder{
		httpRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total de requisições HTTP atendidas",
			},
			[]string{"method", "route", "status"},
		),
		httpDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_milliseconds",
				Help:    "Duração das requisições HTTP em milissegundos",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
			[]string{"method", "route"},
		),
		snapshotRefreshes: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "revenue_snapshot_refresh_total",
				Help: "Total de atualizações do snapshot de faturamento por resultado",
			},
			[]string{"outcome"},
		),
		snapshotDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "revenue_snapshot_refresh_duration_milliseconds",
				Help:    "Duração da busca do snapshot de faturamento em milissegundos",
				Buckets: prometheus.ExponentialBuckets(1, 2, 14),
			},
		),
		snapshotRecords: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "revenue_snapshot_records",
				Help: "Quantidade de registros no snapshot de faturamento aplicado",
			},
		),
	}
}

func (m *Recorder) ObserveHTTPRequest(method, route string, status int, duration time.Duration) {
	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(method, route).Observe(float64(duration.Milliseconds()))
}

func (m *Recorder) ObserveSnapshotRefresh(outcome string, duration time.Duration) {
	m.snapshotRefreshes.WithLabelValues(outcome).Inc()
	m.snapshotDuration.Observe(float64(duration.Milliseconds()))
}

func (m *Recorder) SetSnapshotRecords(count int) {
	m.snapshotRecords.Set(float64(count))
}
