package middleware

import (
	"context"
	"fmt"
	"maps"
	"net/http"
	"os"
	"runtime"
	"sync"
	"time"

	"github.com/vfg2006/restaurant-revenue-api/pkg/apiErrors"
	"github.com/vfg2006/restaurant-revenue-api/pkg/log"
)

const slowRequestThreshold = 500 * time.Millisecond

type logFieldsKey struct{}

// requestLogFields acumula os campos que o handler anexa ao log de conclusão
type requestLogFields struct {
	mu     sync.Mutex
	fields log.Fields
}

func (f *requestLogFields) copyInto(dst log.Fields) {
	f.mu.Lock()
	defer f.mu.Unlock()
	maps.Copy(dst, f.fields)
}

// AddLogFields anexa campos ao log de conclusão da requisição em curso.
// Sem LoggingMiddleware na cadeia não faz nada.
func AddLogFields(ctx context.Context, fields log.Fields) {
	holder, ok := ctx.Value(logFieldsKey{}).(*requestLogFields)
	if !ok {
		return
	}

	holder.mu.Lock()
	defer holder.mu.Unlock()
	maps.Copy(holder.fields, fields)
}

// LoggingMiddleware registra início e conclusão de cada requisição de uma rota.
// O padrão da rota substitui r.URL.Path para que /v1/sales/:id seja uma única entrada.
func LoggingMiddleware(route string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, correlationID := log.WithCorrelationID(r.Context())
			holder := &requestLogFields{fields: log.Fields{}}
			r = r.WithContext(context.WithValue(ctx, logFieldsKey{}, holder))

			lrw := newLoggingResponseWriter(w)
			startTime := time.Now()

			log.L.WithFields(log.Fields{
				"correlation_id": correlationID,
				"remote_addr":    r.RemoteAddr,
				"method":         r.Method,
				"path":           route,
				"query":          r.URL.RawQuery,
				"user_agent":     r.UserAgent(),
				"content_length": r.ContentLength,
			}).Debug("→ Iniciando requisição")

			next.ServeHTTP(lrw, r)

			duration := time.Since(startTime)

			fields := log.Fields{
				"correlation_id": correlationID,
				"method":         r.Method,
				"path":           route,
				"status_code":    lrw.statusCode,
				"duration_ms":    duration.Milliseconds(),
			}
			holder.copyInto(fields)

			logger := log.L.WithFields(fields)
			message := completionMessage(lrw.statusCode, duration)

			switch {
			case lrw.statusCode >= 500:
				logger.Error(message)
			case lrw.statusCode >= 400:
				logger.Warn(message)
			default:
				logger.Info(message)
			}

			if duration > slowRequestThreshold {
				logger.Warnf("⚠ Requisição lenta: %s %s (%s)", r.Method, route, formatDuration(duration))
			}
		})
	}
}

func completionMessage(status int, duration time.Duration) string {
	if log.IsDevelopment() {
		symbol := "✓"
		if status >= 400 {
			symbol = "✗"
		}
		return fmt.Sprintf("%s Completada em %s", symbol, formatDuration(duration))
	}

	switch {
	case status >= 500:
		return "Requisição finalizada com erro"
	case status >= 400:
		return "Requisição finalizada com aviso"
	default:
		return "Requisição finalizada com sucesso"
	}
}

// formatDuration formata a duração de forma humana
func formatDuration(d time.Duration) string {
	if d < time.Millisecond {
		return fmt.Sprintf("%d µs", d.Microseconds())
	} else if d < time.Second {
		return fmt.Sprintf("%d ms", d.Milliseconds())
	}
	return fmt.Sprintf("%.2f s", d.Seconds())
}

// loggingResponseWriter captura o status code escrito pelo handler
type loggingResponseWriter struct {
	http.ResponseWriter
	statusCode int
}

func newLoggingResponseWriter(w http.ResponseWriter) *loggingResponseWriter {
	return &loggingResponseWriter{w, http.StatusOK}
}

func (lrw *loggingResponseWriter) WriteHeader(code int) {
	lrw.statusCode = code
	lrw.ResponseWriter.WriteHeader(code)
}

// LogPanicMiddleware recupera panics do handler da rota e responde SRV_001.
// Fica dentro de LoggingMiddleware e Metrics, que então registram o 500.
func LogPanicMiddleware(route string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				recovered := recover()
				if recovered == nil {
					return
				}

				stack := make([]byte, 4096)
				stackTrace := string(stack[:runtime.Stack(stack, false)])

				logger := log.ForContext(r.Context()).WithFields(log.Fields{
					"error":  recovered,
					"method": r.Method,
					"path":   route,
				})

				if log.IsDevelopment() {
					logger.Error("❌ PANIC na aplicação")
					fmt.Fprintf(os.Stderr, "\n\n=== STACK TRACE ===\n%s\n=================\n\n", stackTrace)
				} else {
					logger.WithField("stack_trace", stackTrace).Error("Erro não tratado na aplicação")
				}

				AddLogFields(r.Context(), log.Fields{"error": fmt.Sprint(recovered)})
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno no servidor", nil)
			}()

			next.ServeHTTP(w, r)
		})
	}
}
