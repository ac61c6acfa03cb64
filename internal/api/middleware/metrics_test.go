package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/Canteen-BookingService/pkg/metrics"
)

// Коллектор из pkg/metrics должен удовлетворять контракту middleware
var _ HTTPMetrics = (*metrics.Metrics)(nil)

type recordedRequest struct {
	method   string
	path     string
	status   int
	duration time.Duration
}

type fakeMetrics struct {
	requests []recordedRequest
}

func (f *fakeMetrics) ObserveHTTPRequest(method, path string, status int, duration time.Duration) {
	f.requests = append(f.requests, recordedRequest{method: method, path: path, status: status, duration: duration})
}

func TestMetricsRecordsRouteTemplateAndStatus(t *testing.T) {
	fm := &fakeMetrics{}

	r := mux.NewRouter()
	r.Use(Metrics(fm))
	r.HandleFunc("/api/v1/canteens/{canteenId}/status", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}).Methods(http.MethodGet)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/canteens/42/status", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Len(t, fm.requests, 1)
	got := fm.requests[0]
	assert.Equal(t, http.MethodGet, got.method)
	assert.Equal(t, "/api/v1/canteens/{canteenId}/status", got.path)
	assert.Equal(t, http.StatusNotFound, got.status)
}

func TestMetricsDefaultsToOKWithoutExplicitWriteHeader(t *testing.T) {
	fm := &fakeMetrics{}

	r := mux.NewRouter()
	r.Use(Metrics(fm))
	r.HandleFunc("/api/v1/canteens", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[]`))
	}).Methods(http.MethodGet)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/canteens", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Len(t, fm.requests, 1)
	assert.Equal(t, http.StatusOK, fm.requests[0].status)
}
