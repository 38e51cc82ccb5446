package middleware

import (
	"net/http"
	"time"

	"github.com/vfg2006/restaurant-revenue-api/pkg/metrics"
)

// Metrics registra duração e status de uma rota. O padrão da rota é usado
// como label para não criar uma série por id.
func Metrics(recorder *metrics.Recorder, route string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			lrw := newLoggingResponseWriter(w)
			startTime := time.Now()

			next.ServeHTTP(lrw, r)

			recorder.ObserveHTTPRequest(r.Method, route, lrw.statusCode, time.Since(startTime))
		})
	}
}
