package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/guttosm/portfoliopulse/internal/domain/models"
	"github.com/guttosm/portfoliopulse/internal/marketdata"
)

// stubClient returns a canned payload or error per symbol.
type stubClient struct {
	payloads map[string]*marketdata.AggsPayload
	errs     map[string]error
	calls    []string
}

func (c *stubClient) DailyBars(_ context.Context, symbol, _, _, _ string) (*marketdata.AggsPayload, error) {
	c.calls = append(c.calls, symbol)
	if err, ok := c.errs[symbol]; ok {
		return nil, err
	}
	return c.payloads[symbol], nil
}

func (c *stubClient) Ping(_ context.Context) error { return nil }

var _ marketdata.BarsClient = (*stubClient)(nil)

func barsAt(closes []float64) *marketdata.AggsPayload {
	results := make([]marketdata.AggBar, 0, len(closes))
	for i, cl := range closes {
		ts := time.Date(2024, 1, 2+i, 0, 0, 0, 0, time.UTC).UnixMilli()
		results = append(results, marketdata.AggBar{Close: cl, Volume: 100, VolumeWeighted: cl, Timestamp: ts})
	}
	return &marketdata.AggsPayload{Results: results}
}

func params(holdings []models.Holding) AnalyzeParams {
	return AnalyzeParams{
		APIKey:    "key",
		Holdings:  holdings,
		StartDate: "2024-01-02",
		EndDate:   "2024-01-31",
	}
}

func TestAnalyze_Validation(t *testing.T) {
	cases := []struct {
		name   string
		params AnalyzeParams
		want   string
	}{
		{
			name:   "missing api key",
			params: AnalyzeParams{Holdings: []models.Holding{{Symbol: "A", Weight: 100}}, StartDate: "2024-01-02", EndDate: "2024-01-03"},
			want:   "api key is required",
		},
		{
			name:   "no holdings",
			params: params(nil),
			want:   "at least one holding is required",
		},
		{
			name: "too many holdings",
			params: params([]models.Holding{
				{Symbol: "A", Weight: 20}, {Symbol: "B", Weight: 20}, {Symbol: "C", Weight: 20},
				{Symbol: "D", Weight: 20}, {Symbol: "E", Weight: 10}, {Symbol: "F", Weight: 10},
			}),
			want: "at most 5 holdings are supported",
		},
		{
			name:   "weights not summing to 100",
			params: params([]models.Holding{{Symbol: "A", Weight: 60}, {Symbol: "B", Weight: 30}}),
			want:   "total weight is 90%, should be 100%",
		},
		{
			name:   "weight out of range",
			params: params([]models.Holding{{Symbol: "A", Weight: 120}, {Symbol: "B", Weight: -20}}),
			want:   "weight for A must be between 0 and 100",
		},
		{
			name:   "duplicate symbol",
			params: params([]models.Holding{{Symbol: "A", Weight: 50}, {Symbol: "A", Weight: 50}}),
			want:   "duplicate holding A",
		},
		{
			name: "bad start date",
			params: AnalyzeParams{APIKey: "k", Holdings: []models.Holding{{Symbol: "A", Weight: 100}},
				StartDate: "02/01/2024", EndDate: "2024-01-31"},
			want: "invalid start_date format, expected YYYY-MM-DD",
		},
		{
			name: "range inverted",
			params: AnalyzeParams{APIKey: "k", Holdings: []models.Holding{{Symbol: "A", Weight: 100}},
				StartDate: "2024-01-31", EndDate: "2024-01-02"},
			want: "end_date must not be before start_date",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			client := &stubClient{}
			svc := NewAnalysisService(client)
			_, err := svc.Analyze(context.Background(), tc.params)
			var ve *ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("want ValidationError, got %v", err)
			}
			if ve.Reason != tc.want {
				t.Fatalf("reason %q, want %q", ve.Reason, tc.want)
			}
			if len(client.calls) != 0 {
				t.Fatalf("validation failure must not trigger fetches, got %v", client.calls)
			}
		})
	}
}

func TestAnalyze_HappyPath(t *testing.T) {
	client := &stubClient{payloads: map[string]*marketdata.AggsPayload{
		"A": barsAt([]float64{100, 200}),
		"B": barsAt([]float64{50, 50}),
	}}
	svc := NewAnalysisService(client)

	out, err := svc.Analyze(context.Background(), params([]models.Holding{
		{Symbol: "A", Weight: 50}, {Symbol: "B", Weight: 50},
	}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(out.Series) != 2 || len(out.Warnings) != 0 {
		t.Fatalf("unexpected result: %d series, warnings %v", len(out.Series), out.Warnings)
	}
	if len(out.PriceIndex.Points) != 2 {
		t.Fatalf("price index has %d points, want 2", len(out.PriceIndex.Points))
	}
	if v := out.PriceIndex.Points[1].Value; v != 150 {
		t.Fatalf("composite value %v, want 150", v)
	}
	if len(out.Stats) != 2 || out.Stats[0].Symbol != "A" {
		t.Fatalf("unexpected stats %+v", out.Stats)
	}
	if len(out.VolumeIndex.Points) != 2 {
		t.Fatalf("volume index has %d points, want 2", len(out.VolumeIndex.Points))
	}
}

func TestAnalyze_FetchFailureIsWarningNotAbort(t *testing.T) {
	client := &stubClient{
		payloads: map[string]*marketdata.AggsPayload{"B": barsAt([]float64{10, 11})},
		errs:     map[string]error{"A": &marketdata.FetchError{Symbol: "A", Reason: "Unknown API Key"}},
	}
	svc := NewAnalysisService(client)

	out, err := svc.Analyze(context.Background(), params([]models.Holding{
		{Symbol: "A", Weight: 50}, {Symbol: "B", Weight: 50},
	}))
	if err != nil {
		t.Fatalf("one failed symbol must not abort the batch: %v", err)
	}
	if len(client.calls) != 2 {
		t.Fatalf("expected both symbols fetched, got %v", client.calls)
	}
	if len(out.Warnings) != 1 || out.Warnings[0] != "fetching data for A: Unknown API Key" {
		t.Fatalf("unexpected warnings %v", out.Warnings)
	}
	if _, ok := out.Series["A"]; ok {
		t.Fatalf("failed symbol must not appear in series map")
	}
	// Only B survives: composite is B rebased at weight 50.
	if v := out.PriceIndex.Points[0].Value; v != 50 {
		t.Fatalf("composite start %v, want 50", v)
	}
}

func TestAnalyze_AllSymbolsFailed(t *testing.T) {
	client := &stubClient{errs: map[string]error{
		"A": &marketdata.FetchError{Symbol: "A", Reason: "boom"},
		"B": errors.New("dial timeout"),
	}}
	svc := NewAnalysisService(client)

	_, err := svc.Analyze(context.Background(), params([]models.Holding{
		{Symbol: "A", Weight: 50}, {Symbol: "B", Weight: 50},
	}))
	if !errors.Is(err, ErrNoData) {
		t.Fatalf("want ErrNoData, got %v", err)
	}
}

func TestAnalyze_EmptyPayloadBecomesWarning(t *testing.T) {
	client := &stubClient{payloads: map[string]*marketdata.AggsPayload{
		"A": {Results: []marketdata.AggBar{}},
		"B": barsAt([]float64{10, 12}),
	}}
	svc := NewAnalysisService(client)

	out, err := svc.Analyze(context.Background(), params([]models.Holding{
		{Symbol: "A", Weight: 50}, {Symbol: "B", Weight: 50},
	}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out.Warnings) != 1 {
		t.Fatalf("expected warning for zero-bar payload, got %v", out.Warnings)
	}
}

func TestAnalyze_SequentialInRequestOrder(t *testing.T) {
	client := &stubClient{payloads: map[string]*marketdata.AggsPayload{
		"C": barsAt([]float64{1, 2}),
		"A": barsAt([]float64{1, 2}),
		"B": barsAt([]float64{1, 2}),
	}}
	svc := NewAnalysisService(client)

	_, err := svc.Analyze(context.Background(), params([]models.Holding{
		{Symbol: "C", Weight: 34}, {Symbol: "A", Weight: 33}, {Symbol: "B", Weight: 33},
	}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(client.calls) != 3 || client.calls[0] != "C" || client.calls[1] != "A" || client.calls[2] != "B" {
		t.Fatalf("fetch order %v, want [C A B]", client.calls)
	}
}
