package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/restaurant-revenue-api/pkg/log"
	"github.com/vfg2006/restaurant-revenue-api/pkg/metrics"
)

func statusHandler(status int) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
	})
}

func TestCors(t *testing.T) {
	allowed := []string{"http://localhost:3000"}

	tests := []struct {
		name           string
		method         string
		origin         string
		expectedStatus int
		expectedOrigin string
	}{
		{
			name:           "Origem permitida",
			method:         http.MethodGet,
			origin:         "http://localhost:3000",
			expectedStatus: http.StatusTeapot,
			expectedOrigin: "http://localhost:3000",
		},
		{
			name:           "Origem não permitida",
			method:         http.MethodGet,
			origin:         "http://evil.example",
			expectedStatus: http.StatusTeapot,
		},
		{
			name:           "Preflight não chega ao handler",
			method:         http.MethodOptions,
			origin:         "http://localhost:3000",
			expectedStatus: http.StatusOK,
			expectedOrigin: "http://localhost:3000",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, "/v1/sales", nil)
			req.Header.Set("Origin", tt.origin)
			rec := httptest.NewRecorder()

			Cors(allowed)(statusHandler(http.StatusTeapot)).ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.Equal(t, tt.expectedOrigin, rec.Header().Get("Access-Control-Allow-Origin"))
		})
	}
}

func TestMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	recorder := metrics.NewRecorder(reg)

	handler := Metrics(recorder, "/v1/sales/:id")(statusHandler(http.StatusNotFound))

	for range 2 {
		handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodDelete, "/v1/sales/abc", nil))
	}

	expected := `
# HELP http_requests_total Total de requisições HTTP atendidas
# TYPE http_requests_total counter
http_requests_total{method="DELETE",route="/v1/sales/:id",status="404"} 2
`
	require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected), "http_requests_total"))
}

// captureLogs direciona o logger global para um hook de teste em modo desenvolvimento
func captureLogs(t *testing.T) *test.Hook {
	t.Helper()
	t.Setenv("APP_ENV", "development")
	log.SetupTestLogger()

	hook := test.NewGlobal()
	t.Cleanup(func() {
		logrus.StandardLogger().ReplaceHooks(make(logrus.LevelHooks))
	})
	return hook
}

func TestLoggingMiddleware(t *testing.T) {
	tests := []struct {
		name          string
		status        int
		fields        log.Fields
		expectedLevel logrus.Level
	}{
		{
			name:          "Sucesso com geração do snapshot",
			status:        http.StatusOK,
			fields:        log.Fields{"generation": uint64(7), "records": 2},
			expectedLevel: logrus.InfoLevel,
		},
		{
			name:          "Registro não encontrado",
			status:        http.StatusNotFound,
			expectedLevel: logrus.WarnLevel,
		},
		{
			name:          "Erro do servidor",
			status:        http.StatusInternalServerError,
			expectedLevel: logrus.ErrorLevel,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hook := captureLogs(t)

			handler := LoggingMiddleware("/v1/sales/:id")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				AddLogFields(r.Context(), tt.fields)
				w.WriteHeader(tt.status)
			}))

			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPut, "/v1/sales/abc123", nil))

			assert.Equal(t, tt.status, rec.Code)

			entry := hook.LastEntry()
			require.NotNil(t, entry)
			assert.Equal(t, tt.expectedLevel, entry.Level)
			assert.Equal(t, "/v1/sales/:id", entry.Data["path"])
			assert.Equal(t, http.MethodPut, entry.Data["method"])
			assert.Equal(t, tt.status, entry.Data["status_code"])
			assert.NotEmpty(t, entry.Data["correlation_id"])
			for key, value := range tt.fields {
				assert.Equal(t, value, entry.Data[key])
			}

			for _, e := range hook.AllEntries() {
				assert.NotEqual(t, "/v1/sales/abc123", e.Data["path"])
			}
		})
	}
}

func TestAddLogFields_WithoutMiddleware(t *testing.T) {
	assert.NotPanics(t, func() {
		AddLogFields(httptest.NewRequest(http.MethodGet, "/v1/sales", nil).Context(), log.Fields{"generation": uint64(1)})
	})
}

func TestLogPanicMiddleware(t *testing.T) {
	hook := captureLogs(t)

	panicking := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("falha inesperada")
	})
	handler := LoggingMiddleware("/v1/sales/chart")(LogPanicMiddleware("/v1/sales/chart")(panicking))

	rec := httptest.NewRecorder()
	assert.NotPanics(t, func() {
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/sales/chart?shop=A", nil))
	})

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), `"SRV_001"`)

	entries := hook.AllEntries()
	require.GreaterOrEqual(t, len(entries), 2)

	panicEntry := entries[len(entries)-2]
	assert.Equal(t, logrus.ErrorLevel, panicEntry.Level)
	assert.Equal(t, "falha inesperada", panicEntry.Data["error"])
	assert.NotEmpty(t, panicEntry.Data["correlation_id"])

	completion := hook.LastEntry()
	assert.Equal(t, logrus.ErrorLevel, completion.Level)
	assert.Equal(t, http.StatusInternalServerError, completion.Data["status_code"])
	assert.Equal(t, "/v1/sales/chart", completion.Data["path"])
	assert.Equal(t, "falha inesperada", completion.Data["error"])
}
