package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/portfoliopulse/internal/domain/dto"
	"github.com/guttosm/portfoliopulse/internal/domain/models"
	"github.com/guttosm/portfoliopulse/internal/service"
)

// mockAnalysisServiceRouter implements service.AnalysisService for
// testing router wiring.
type mockAnalysisServiceRouter struct {
	resp *models.Analysis
	err  error
}

func (m *mockAnalysisServiceRouter) Analyze(_ context.Context, _ service.AnalyzeParams) (*models.Analysis, error) {
	return m.resp, m.err
}

var _ service.AnalysisService = (*mockAnalysisServiceRouter)(nil)

func TestNewRouter_WiringAndMiddlewares(t *testing.T) {
	gin.SetMode(gin.TestMode)

	svc := &mockAnalysisServiceRouter{resp: sampleAnalysis()}
	h := NewHandler(svc, "key")
	r := NewRouter(h)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/portfolio/analyze", bytes.NewBufferString(validBody))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	// Ensure RequestID middleware injected header
	if w.Header().Get("X-Request-ID") == "" {
		t.Fatalf("expected X-Request-ID header to be set")
	}

	var out dto.AnalyzeResponse
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("invalid json response: %v", err)
	}
	if len(out.PriceIndex) != 1 || len(out.VolumeIndex) != 1 {
		t.Fatalf("unexpected body: %+v", out)
	}
}

func TestNewRouter_UnknownRoute(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := NewRouter(NewHandler(&mockAnalysisServiceRouter{}, ""))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/nope", nil))
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}
