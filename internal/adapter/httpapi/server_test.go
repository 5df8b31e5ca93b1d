package httpapi_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/couchcryptid/weekend-getaway-ranker/internal/adapter/httpapi"
	"github.com/couchcryptid/weekend-getaway-ranker/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockReadiness struct {
	err error
}

func (m *mockReadiness) CheckReadiness(_ context.Context) error { return m.err }

type mockRanker struct {
	report   domain.Report
	err      error
	lastCity string
	lastTopN int
}

func (m *mockRanker) Rank(_ context.Context, city string, topN int) (domain.Report, error) {
	m.lastCity = city
	m.lastTopN = topN
	if m.err != nil {
		return domain.Report{}, m.err
	}
	return m.report, nil
}

func newTestServer(ranker *mockRanker, readyErr error) *httpapi.Server {
	return httpapi.NewServer(":0", ranker, &mockReadiness{err: readyErr}, 5, slog.Default())
}

func get(srv *httpapi.Server, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	srv.ServeHTTP(rec, req)
	return rec
}

func TestHealthzReturns200(t *testing.T) {
	rec := get(newTestServer(&mockRanker{}, nil), "/healthz")

	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "healthy", body["status"])
}

func TestReadyzReturns200WhenReady(t *testing.T) {
	rec := get(newTestServer(&mockRanker{}, nil), "/readyz")

	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "ready", body["status"])
}

func TestReadyzReturns503WhenNotReady(t *testing.T) {
	rec := get(newTestServer(&mockRanker{}, fmt.Errorf("dataset empty")), "/readyz")

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "not ready", body["status"])
	assert.Equal(t, "dataset empty", body["error"])
}

func TestMetricsEndpoint(t *testing.T) {
	rec := get(newTestServer(&mockRanker{}, nil), "/metrics")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "go_goroutines")
}

func TestGetaways(t *testing.T) {
	ranker := &mockRanker{
		report: domain.Report{
			SourceCity:  "Delhi",
			SourceState: "Delhi",
			Weights:     domain.DefaultWeights,
			Results: []domain.ReportEntry{
				{Rank: 1, Name: "Kingdom of Dreams", City: "Gurgaon", State: "Haryana"},
			},
		},
	}

	rec := get(newTestServer(ranker, nil), "/api/v1/getaways?city=Delhi&top=3")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Delhi", ranker.lastCity)
	assert.Equal(t, 3, ranker.lastTopN)

	var report domain.Report
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &report))
	assert.Equal(t, "Delhi", report.SourceCity)
	require.Len(t, report.Results, 1)
	assert.Equal(t, "Kingdom of Dreams", report.Results[0].Name)
}

func TestGetaways_DefaultTopN(t *testing.T) {
	ranker := &mockRanker{}

	rec := get(newTestServer(ranker, nil), "/api/v1/getaways?city=Delhi")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 5, ranker.lastTopN)
}

func TestGetaways_MissingCity(t *testing.T) {
	rec := get(newTestServer(&mockRanker{}, nil), "/api/v1/getaways")

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Contains(t, body["error"], "city")
}

func TestGetaways_InvalidTop(t *testing.T) {
	for _, top := range []string{"zero", "-1", "0"} {
		rec := get(newTestServer(&mockRanker{}, nil), "/api/v1/getaways?city=Delhi&top="+top)
		assert.Equal(t, http.StatusBadRequest, rec.Code, "top=%s", top)
	}
}

func TestGetaways_SourceCityNotFound(t *testing.T) {
	ranker := &mockRanker{
		err: fmt.Errorf("resolve source state for %q: %w", "Atlantis", domain.ErrSourceCityNotFound),
	}

	rec := get(newTestServer(ranker, nil), "/api/v1/getaways?city=Atlantis")

	assert.Equal(t, http.StatusNotFound, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Contains(t, body["error"], "Atlantis")
}

func TestGetaways_InternalError(t *testing.T) {
	ranker := &mockRanker{err: errors.New("boom")}

	rec := get(newTestServer(ranker, nil), "/api/v1/getaways?city=Delhi")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "internal error", body["error"])
}
