package middleware

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"mlb-inning-times/internal/metrics"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestID_GeneratesAndPropagates(t *testing.T) {
	var seen string
	h := RequestID(zerolog.New(io.Discard), nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = GetRequestID(r.Context())
		w.WriteHeader(http.StatusTeapot)
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	require.NotEmpty(t, seen)
	assert.Equal(t, seen, rec.Header().Get("X-Request-ID"))
	assert.Equal(t, http.StatusTeapot, rec.Code)
}

func TestRequestID_KeepsIncomingID(t *testing.T) {
	h := RequestID(zerolog.New(io.Discard), nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-ID", "abc")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, "abc", rec.Header().Get("X-Request-ID"))
}

func TestRequestID_RecordsMetricsByPattern(t *testing.T) {
	m := metrics.NewManager()
	mux := http.NewServeMux()
	mux.Handle("GET /exports/{token}", RequestID(zerolog.New(io.Discard), m)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	})))

	for _, token := range []string{"a", "b"} {
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/exports/"+token, nil))
		assert.Equal(t, http.StatusNotFound, rec.Code)
	}

	n, err := testutil.GatherAndCount(m.Registry(), "innings_http_requests_total")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestGetRequestID_Missing(t *testing.T) {
	assert.Empty(t, GetRequestID(httptest.NewRequest(http.MethodGet, "/", nil).Context()))
}
