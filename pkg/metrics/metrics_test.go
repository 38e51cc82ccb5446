package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecorder(t *testing.T) {
	reg := prometheus.NewRegistry()
	recorder := NewRecorder(reg)

	recorder.ObserveHTTPRequest("GET", "/v1/sales", 200, 15*time.Millisecond)
	recorder.ObserveHTTPRequest("GET", "/v1/sales", 200, 5*time.Millisecond)
	recorder.ObserveHTTPRequest("GET", "/v1/sales", 400, time.Millisecond)

	recorder.ObserveSnapshotRefresh(OutcomeApplied, 100*time.Millisecond)
	recorder.ObserveSnapshotRefresh(OutcomeStale, 50*time.Millisecond)
	recorder.SetSnapshotRecords(42)

	assert.Equal(t, float64(2), testutil.ToFloat64(recorder.httpRequests.WithLabelValues("GET", "/v1/sales", "200")))
	assert.Equal(t, float64(1), testutil.ToFloat64(recorder.httpRequests.WithLabelValues("GET", "/v1/sales", "400")))
	assert.Equal(t, float64(1), testutil.ToFloat64(recorder.snapshotRefreshes.WithLabelValues(OutcomeApplied)))
	assert.Equal(t, float64(1), testutil.ToFloat64(recorder.snapshotRefreshes.WithLabelValues(OutcomeStale)))
	assert.Equal(t, float64(0), testutil.ToFloat64(recorder.snapshotRefreshes.WithLabelValues(OutcomeFailed)))
	assert.Equal(t, float64(42), testutil.ToFloat64(recorder.snapshotRecords))

	families, err := reg.Gather()
	require.NoError(t, err)
	assert.NotEmpty(t, families)
}

func TestNewRecorder_IndependentRegistries(t *testing.T) {
	assert.NotPanics(t, func() {
		NewRecorder(prometheus.NewRegistry())
		NewRecorder(prometheus.NewRegistry())
	})
}
