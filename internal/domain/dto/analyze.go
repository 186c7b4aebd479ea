package dto

import "github.com/guttosm/portfoliopulse/internal/domain/models"

// HoldingRequest is one (symbol, weight) pair submitted by the caller.
type HoldingRequest struct {
	Symbol string `json:"symbol" example:"AAPL"`
	Weight int    `json:"weight" example:"50"` // integer percentage, 0-100
}

// AnalyzeRequest is the body of POST /api/v1/portfolio/analyze.
//
// Dates are inclusive calendar dates in YYYY-MM-DD. Between 1 and 5
// holdings may be submitted and their weights must sum to 100.
type AnalyzeRequest struct {
	Holdings  []HoldingRequest `json:"holdings"`
	StartDate string           `json:"start_date" example:"2024-01-02"`
	EndDate   string           `json:"end_date" example:"2024-06-28"`
}

// IndexPointResponse is one (date, value) entry of a composite index,
// with the date rendered as YYYY-MM-DD.
type IndexPointResponse struct {
	Date  string  `json:"date" example:"2024-01-02"`
	Value float64 `json:"value" example:"104.27"`
}

// BarResponse mirrors models.Bar with a string date for the API surface.
type BarResponse struct {
	Date   string  `json:"date" example:"2024-01-02"`
	Open   float64 `json:"open" example:"187.15"`
	High   float64 `json:"high" example:"188.44"`
	Low    float64 `json:"low" example:"183.89"`
	Close  float64 `json:"close" example:"185.64"`
	Volume float64 `json:"volume" example:"82488700"`
	VWAP   float64 `json:"vwap" example:"185.99"`
}

// StatsRowResponse is one row of the trading statistics table.
type StatsRowResponse struct {
	Symbol         string  `json:"symbol" example:"AAPL"`
	LatestClose    float64 `json:"latest_close" example:"185.64"`
	LatestVWAP     float64 `json:"latest_vwap" example:"185.99"`
	PriceChangePct float64 `json:"price_change_pct" example:"3.41"`
	AvgVolume      float64 `json:"avg_volume" example:"58123400"`
	Weight         int     `json:"weight" example:"50"`
}

// AnalyzeResponse is the success body of POST /api/v1/portfolio/analyze.
//
// Series holds the raw per-symbol bars so the presentation layer can
// draw individual lines next to the composite indexes. Warnings lists
// symbols that failed to fetch without aborting the batch.
type AnalyzeResponse struct {
	Series      map[string][]BarResponse `json:"series"`
	PriceIndex  []IndexPointResponse     `json:"price_index"`
	VolumeIndex []IndexPointResponse     `json:"volume_index"`
	Stats       []StatsRowResponse       `json:"stats"`
	Warnings    []string                 `json:"warnings,omitempty"`
}

// NewAnalyzeResponse converts an internal analysis result into the API
// response shape.
func NewAnalyzeResponse(a *models.Analysis) AnalyzeResponse {
	resp := AnalyzeResponse{
		Series:      make(map[string][]BarResponse, len(a.Series)),
		PriceIndex:  indexPoints(a.PriceIndex),
		VolumeIndex: indexPoints(a.VolumeIndex),
		Stats:       make([]StatsRowResponse, 0, len(a.Stats)),
		Warnings:    a.Warnings,
	}

	for sym, series := range a.Series {
		bars := make([]BarResponse, 0, len(series.Bars))
		for _, b := range series.Bars {
			bars = append(bars, BarResponse{
				Date:   b.Date.Format(models.DateLayout),
				Open:   b.Open,
				High:   b.High,
				Low:    b.Low,
				Close:  b.Close,
				Volume: b.Volume,
				VWAP:   b.VWAP,
			})
		}
		resp.Series[sym] = bars
	}

	for _, row := range a.Stats {
		resp.Stats = append(resp.Stats, StatsRowResponse{
			Symbol:         row.Symbol,
			LatestClose:    row.LatestClose,
			LatestVWAP:     row.LatestVWAP,
			PriceChangePct: row.PriceChangePct,
			AvgVolume:      row.AvgVolume,
			Weight:         row.Weight,
		})
	}

	return resp
}

func indexPoints(cs models.CompositeSeries) []IndexPointResponse {
	out := make([]IndexPointResponse, 0, len(cs.Points))
	for _, p := range cs.Points {
		out = append(out, IndexPointResponse{Date: p.Date.Format(models.DateLayout), Value: p.Value})
	}
	return out
}
