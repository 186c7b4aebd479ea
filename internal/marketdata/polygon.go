package marketdata

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// AggBar is one daily aggregate as returned by the provider. The short
// JSON keys are part of the upstream API contract and must not change.
type AggBar struct {
	Open           float64 `json:"o"`
	High           float64 `json:"h"`
	Low            float64 `json:"l"`
	Close          float64 `json:"c"`
	Volume         float64 `json:"v"`
	VolumeWeighted float64 `json:"vw"`
	Timestamp      int64   `json:"t"` // ms since epoch
	Count          int     `json:"n"`
}

// AggsPayload is the raw response of the daily-aggregates endpoint.
// Results being absent (nil) signals an upstream failure; the error
// fields carry whatever message the provider returned.
type AggsPayload struct {
	Ticker       string   `json:"ticker"`
	ResultsCount int      `json:"resultsCount"`
	Results      []AggBar `json:"results"`
	Status       string   `json:"status"`
	ErrorMessage string   `json:"error"`
	Message      string   `json:"message"`
}

// FetchError is a per-symbol fetch failure carrying the upstream error
// message. It is reported to the user as a warning and never aborts
// the remaining symbols of a batch.
type FetchError struct {
	Symbol string
	Reason string
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetching data for %s: %s", e.Symbol, e.Reason)
}

// BarsClient fetches daily aggregated bars for a single symbol over an
// inclusive date range. Implementations issue exactly one request per
// call; retries and backoff are deliberately out of scope.
type BarsClient interface {
	DailyBars(ctx context.Context, symbol, apiKey, from, to string) (*AggsPayload, error)
	Ping(ctx context.Context) error
}

// PolygonClient implements BarsClient against the Polygon.io
// v2 aggregates API.
type PolygonClient struct {
	BaseURL string
	Client  *http.Client
}

// NewPolygonClient creates a client for the given base URL
// (e.g. "https://api.polygon.io"). The timeout applies per request.
func NewPolygonClient(baseURL string, timeout time.Duration) *PolygonClient {
	return &PolygonClient{
		BaseURL: baseURL,
		Client:  &http.Client{Timeout: timeout},
	}
}

// DailyBars performs one GET against
// {base}/v2/aggs/ticker/{symbol}/range/1/day/{from}/{to} requesting
// adjusted, ascending-sorted results.
//
// Returns:
//   - *AggsPayload: the decoded payload when the results field is present.
//   - *FetchError: when the provider answered without results; carries
//     the upstream error message or "unknown error".
//   - other errors: transport or decoding failures.
func (c *PolygonClient) DailyBars(ctx context.Context, symbol, apiKey, from, to string) (*AggsPayload, error) {
	u := fmt.Sprintf("%s/v2/aggs/ticker/%s/range/1/day/%s/%s?adjusted=true&sort=asc&apiKey=%s",
		c.BaseURL, url.PathEscape(symbol), from, to, url.QueryEscape(apiKey))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("aggs fetch: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("aggs read body: %w", err)
	}

	var payload AggsPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("aggs decode: %w", err)
	}

	// The provider reports failures (bad key, unknown ticker, rate limit)
	// as a JSON body without a results field, on 200 and non-200 alike.
	if payload.Results == nil {
		return nil, &FetchError{Symbol: symbol, Reason: upstreamReason(&payload)}
	}

	return &payload, nil
}

// Ping checks that the provider is reachable. Any HTTP response counts
// as reachable; an auth rejection still proves connectivity.
func (c *PolygonClient) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+"/v1/marketstatus/now", nil)
	if err != nil {
		return err
	}
	resp, err := c.Client.Do(req)
	if err != nil {
		return err
	}
	_ = resp.Body.Close()
	return nil
}

func upstreamReason(p *AggsPayload) string {
	switch {
	case p.ErrorMessage != "":
		return p.ErrorMessage
	case p.Message != "":
		return p.Message
	default:
		return "unknown error"
	}
}
