package models

import "time"

// DateLayout is the calendar-date format used across the API surface
// and internally as the key of a trading day.
const DateLayout = "2006-01-02"

// Bar represents one trading day for a symbol: open, high, low, close,
// traded volume and the volume-weighted average price reported by the
// market-data provider.
//
// Fields:
//   - Date: the trading day (UTC, date-only; hour/min/sec always zero).
//   - Open/High/Low/Close: daily prices, adjusted by the provider.
//   - Volume: number of units traded that day.
//   - VWAP: volume-weighted average price for the day.
type Bar struct {
	Date   time.Time `json:"date"`
	Open   float64   `json:"open"`
	High   float64   `json:"high"`
	Low    float64   `json:"low"`
	Close  float64   `json:"close"`
	Volume float64   `json:"volume"`
	VWAP   float64   `json:"vwap"`
}

// SymbolSeries is the full daily history fetched for one ticker.
//
// Invariants (guaranteed by the series builder):
//   - Bars are sorted ascending by date.
//   - Dates are unique within the series.
//   - The series is never empty; a zero-bar fetch is a failure upstream,
//     not an empty-but-valid series.
type SymbolSeries struct {
	Symbol string `json:"symbol"`
	Bars   []Bar  `json:"bars"`
}

// First returns the first chronological bar.
// Callers must not invoke it on an empty series.
func (s *SymbolSeries) First() Bar { return s.Bars[0] }

// Last returns the most recent bar.
// Callers must not invoke it on an empty series.
func (s *SymbolSeries) Last() Bar { return s.Bars[len(s.Bars)-1] }

// IndexPoint is one (date, value) entry of a rebased or composite series.
type IndexPoint struct {
	Date  time.Time `json:"date"`
	Value float64   `json:"value"`
}

// CompositeSeries is the weight-combined, rebased portfolio series for
// either price or volume. It covers exactly the dates common to all
// input series (intersection), sorted ascending, and is created fresh
// on every aggregation call.
type CompositeSeries struct {
	Points []IndexPoint `json:"points"`
}

// SymbolStats is the per-symbol row of the trading statistics summary.
//
// PriceChangePct is (last close / first close - 1) * 100 over the full
// fetched range; AvgVolume is the mean daily volume over the same range.
type SymbolStats struct {
	Symbol         string  `json:"symbol"`
	LatestClose    float64 `json:"latest_close"`
	LatestVWAP     float64 `json:"latest_vwap"`
	PriceChangePct float64 `json:"price_change_pct"`
	AvgVolume      float64 `json:"avg_volume"`
	Weight         int     `json:"weight"`
}
