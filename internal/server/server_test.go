package server

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rpgo/rothtrad/internal/calculation"
	"github.com/rpgo/rothtrad/internal/config"
)

func newTestServer(t *testing.T) (*Server, *calculation.Engine) {
	t.Helper()
	cfg := config.DefaultConfiguration()
	cfg.Contribution.Years = 5
	cfg.Distribution.Years = 4
	engine := calculation.NewEngine()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return New(cfg, engine, logger), engine
}

func get(t *testing.T, s *Server, target string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestHealth(t *testing.T) {
	s, _ := newTestServer(t)
	rec := get(t, s, "/api/health")
	require.Equal(t, http.StatusOK, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, "ok", body["status"])
	assert.Contains(t, body, "cache")
	assert.NotEmpty(t, rec.Header().Get(RequestIDHeader))
}

func TestRequestIDIsEchoed(t *testing.T) {
	s, _ := newTestServer(t)
	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	assert.Equal(t, "abc-123", rec.Header().Get(RequestIDHeader))
}

func TestAccumulationUsesQueryOverrides(t *testing.T) {
	s, _ := newTestServer(t)
	rec := get(t, s, "/api/accumulation?years=3&salary=80000&traditional_contribution=100")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var body accumulationResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Schedule.Rows, 3)
	assert.Len(t, body.Display, 3)
	assert.Equal(t, 3, body.Summary.Year)
	assert.True(t, body.Schedule.Params.GrossIncome.Equal(decimal.NewFromInt(80000)))
	assert.True(t, body.Summary.RothBalance.IsZero())
}

func TestAccumulationDefaultsFromConfig(t *testing.T) {
	s, _ := newTestServer(t)
	rec := get(t, s, "/api/accumulation")
	require.Equal(t, http.StatusOK, rec.Code)
	var body accumulationResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Len(t, body.Schedule.Rows, 5)
}

func TestAccumulationRejectsMalformedQuery(t *testing.T) {
	s, _ := newTestServer(t)
	rec := get(t, s, "/api/accumulation?years=ten&salary=lots")
	require.Equal(t, http.StatusBadRequest, rec.Code)
	body := decode(t, rec)
	fields, ok := body["fields"].([]any)
	require.True(t, ok, "fields should be a list: %v", body)
	assert.Len(t, fields, 2)
}

func TestAccumulationRejectsInvalidParameters(t *testing.T) {
	s, _ := newTestServer(t)
	rec := get(t, s, "/api/accumulation?years=0&traditional_contribution=120")
	require.Equal(t, http.StatusBadRequest, rec.Code)
	body := decode(t, rec)
	assert.Contains(t, body["error"], "years")
	assert.Contains(t, body["error"], "traditional_percent")
}

func TestDistribution(t *testing.T) {
	s, _ := newTestServer(t)
	rec := get(t, s, "/api/distribution?distribution_years=6&yearly_distributions=30000")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var body distributionResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Schedule.Rows, 6)
	assert.Equal(t, 6, body.Schedule.Rows[0].Year)
	assert.Equal(t, 11, body.Summary.Year)
	assert.True(t, body.Schedule.Rows[0].TraditionalDistribution.Add(body.Schedule.Rows[0].RothDistribution).Equal(decimal.NewFromInt(30000)))
}

func TestProjectionFormats(t *testing.T) {
	s, _ := newTestServer(t)

	rec := get(t, s, "/api/projection")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "application/json")
	body := decode(t, rec)
	assert.Contains(t, body, "comparison")
	assert.NotEmpty(t, body["assumptions"])

	rec = get(t, s, "/api/projection?format=html")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, rec.Body.String(), "<!DOCTYPE html>")

	rec = get(t, s, "/api/projection?format=csv-detailed")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.HasPrefix(rec.Body.String(), "Phase,Year"))

	rec = get(t, s, "/api/projection?format=pdf")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestBrackets(t *testing.T) {
	s, _ := newTestServer(t)
	rec := get(t, s, "/api/brackets?inflation=10&year=1")
	require.Equal(t, http.StatusOK, rec.Code)
	var body bracketsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Brackets, 7)
	require.NotNil(t, body.Brackets[0].Max)
	assert.True(t, body.Brackets[0].Max.Equal(decimal.NewFromInt(12760)), "got %s", body.Brackets[0].Max)
	assert.True(t, body.Brackets[0].Rate.Equal(decimal.NewFromInt(10)))
	assert.Nil(t, body.Brackets[6].Max)

	rec = get(t, s, "/api/brackets?year=-1")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestMethodNotAllowed(t *testing.T) {
	s, _ := newTestServer(t)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/accumulation", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestMetricsExposeRequestsAndCache(t *testing.T) {
	s, engine := newTestServer(t)
	get(t, s, "/api/accumulation")
	get(t, s, "/api/accumulation")
	require.Equal(t, uint64(1), engine.CacheStats().Hits)

	rec := get(t, s, "/metrics")
	require.Equal(t, http.StatusOK, rec.Code)
	text := rec.Body.String()
	assert.Contains(t, text, `rothtrad_http_requests_total{code="200",route="accumulation"} 2`)
	assert.Contains(t, text, "rothtrad_schedule_cache_hits_total 1")
	assert.Contains(t, text, "rothtrad_schedule_cache_entries 1")
	assert.Contains(t, text, "rothtrad_http_request_duration_seconds_bucket")
}

func TestCancelledRequest(t *testing.T) {
	s, _ := newTestServer(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	req := httptest.NewRequest(http.MethodGet, "/api/projection", nil).WithContext(ctx)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
