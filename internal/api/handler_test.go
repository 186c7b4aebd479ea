package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/portfoliopulse/internal/domain/dto"
	"github.com/guttosm/portfoliopulse/internal/domain/models"
	"github.com/guttosm/portfoliopulse/internal/service"
)

type mockAnalysisService struct {
	resp       *models.Analysis
	err        error
	gotParams  service.AnalyzeParams
	wasInvoked bool
}

func (m *mockAnalysisService) Analyze(_ context.Context, params service.AnalyzeParams) (*models.Analysis, error) {
	m.wasInvoked = true
	m.gotParams = params
	return m.resp, m.err
}

var _ service.AnalysisService = (*mockAnalysisService)(nil)

func setupRouterWithMock(s service.AnalysisService, defaultKey string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewHandler(s, defaultKey)
	r := gin.New()
	v1 := r.Group("/api/v1")
	v1.POST("/portfolio/analyze", h.AnalyzePortfolio)
	return r
}

func sampleAnalysis() *models.Analysis {
	d := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)
	return &models.Analysis{
		Series: map[string]*models.SymbolSeries{
			"AAPL": {Symbol: "AAPL", Bars: []models.Bar{{Date: d, Close: 185.64, VWAP: 185.99, Volume: 1000}}},
		},
		Weights:     models.WeightMap{"AAPL": 100},
		PriceIndex:  models.CompositeSeries{Points: []models.IndexPoint{{Date: d, Value: 100}}},
		VolumeIndex: models.CompositeSeries{Points: []models.IndexPoint{{Date: d, Value: 100}}},
		Stats:       []models.SymbolStats{{Symbol: "AAPL", LatestClose: 185.64, LatestVWAP: 185.99, AvgVolume: 1000, Weight: 100}},
	}
}

const validBody = `{"holdings":[{"symbol":"aapl","weight":100}],"start_date":"2024-01-02","end_date":"2024-01-31"}`

func TestAnalyzePortfolio_TableDriven(t *testing.T) {
	cases := []struct {
		name   string
		svc    *mockAnalysisService
		body   string
		status int
		assert func(t *testing.T, body []byte)
	}{
		{
			name:   "malformed json",
			svc:    &mockAnalysisService{},
			body:   `{not json`,
			status: http.StatusBadRequest,
		},
		{
			name:   "validation failure",
			svc:    &mockAnalysisService{err: &service.ValidationError{Reason: "total weight is 90%, should be 100%"}},
			body:   validBody,
			status: http.StatusBadRequest,
			assert: func(t *testing.T, body []byte) {
				var out dto.ErrorResponse
				if err := json.Unmarshal(body, &out); err != nil {
					t.Fatalf("invalid json: %v", err)
				}
				if out.Message != "total weight is 90%, should be 100%" {
					t.Fatalf("unexpected message %q", out.Message)
				}
			},
		},
		{
			name:   "total upstream failure",
			svc:    &mockAnalysisService{err: fmt.Errorf("%w: 1 symbol(s) failed", service.ErrNoData)},
			body:   validBody,
			status: http.StatusBadGateway,
		},
		{
			name:   "internal error",
			svc:    &mockAnalysisService{err: errors.New("boom")},
			body:   validBody,
			status: http.StatusInternalServerError,
		},
		{
			name:   "success",
			svc:    &mockAnalysisService{resp: sampleAnalysis()},
			body:   validBody,
			status: http.StatusOK,
			assert: func(t *testing.T, body []byte) {
				var out dto.AnalyzeResponse
				if err := json.Unmarshal(body, &out); err != nil {
					t.Fatalf("invalid json: %v", err)
				}
				if len(out.PriceIndex) != 1 || out.PriceIndex[0].Date != "2024-01-02" {
					t.Fatalf("unexpected price index %+v", out.PriceIndex)
				}
				if len(out.Stats) != 1 || out.Stats[0].LatestClose != 185.64 {
					t.Fatalf("unexpected stats %+v", out.Stats)
				}
				if len(out.Series["AAPL"]) != 1 {
					t.Fatalf("unexpected series %+v", out.Series)
				}
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := setupRouterWithMock(tc.svc, "default-key")
			req := httptest.NewRequest(http.MethodPost, "/api/v1/portfolio/analyze", bytes.NewBufferString(tc.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			if w.Code != tc.status {
				t.Fatalf("expected %d, got %d (body %s)", tc.status, w.Code, w.Body.String())
			}
			if tc.assert != nil {
				tc.assert(t, w.Body.Bytes())
			}
		})
	}
}

func TestAnalyzePortfolio_NormalizesInput(t *testing.T) {
	svc := &mockAnalysisService{resp: sampleAnalysis()}
	r := setupRouterWithMock(svc, "default-key")

	body := `{"holdings":[{"symbol":" aapl ","weight":100}],"start_date":" 2024-01-02 ","end_date":"2024-01-31"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/portfolio/analyze", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status %d", w.Code)
	}
	if svc.gotParams.Holdings[0].Symbol != "AAPL" {
		t.Fatalf("symbol not normalized: %q", svc.gotParams.Holdings[0].Symbol)
	}
	if svc.gotParams.StartDate != "2024-01-02" {
		t.Fatalf("start date not trimmed: %q", svc.gotParams.StartDate)
	}
	if svc.gotParams.APIKey != "default-key" {
		t.Fatalf("expected default key fallback, got %q", svc.gotParams.APIKey)
	}
}

func TestAnalyzePortfolio_HeaderKeyOverridesDefault(t *testing.T) {
	svc := &mockAnalysisService{resp: sampleAnalysis()}
	r := setupRouterWithMock(svc, "default-key")

	req := httptest.NewRequest(http.MethodPost, "/api/v1/portfolio/analyze", bytes.NewBufferString(validBody))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(APIKeyHeader, "caller-key")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status %d", w.Code)
	}
	if svc.gotParams.APIKey != "caller-key" {
		t.Fatalf("header key ignored: %q", svc.gotParams.APIKey)
	}
}
