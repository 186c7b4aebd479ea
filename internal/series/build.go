// Package series converts raw provider payloads into date-indexed,
// ascending-sorted symbol series.
package series

import (
	"fmt"
	"sort"
	"time"

	"github.com/guttosm/portfoliopulse/internal/domain/models"
	"github.com/guttosm/portfoliopulse/internal/marketdata"
)

// Build converts one raw aggregates payload into a SymbolSeries.
//
// Behavior:
//   - Maps the provider's short keys (o,h,l,c,v,vw,t) onto Bar fields.
//   - Converts the ms-epoch timestamp to a UTC calendar date.
//   - Sorts ascending by date regardless of input order; the upstream
//     API is expected ascending already, but that is not assumed.
//   - Collapses duplicate dates, keeping the last occurrence.
//
// Returns an error when the payload has no bars: a zero-bar result is
// a fetch failure, never an empty-but-valid series.
func Build(symbol string, payload *marketdata.AggsPayload) (*models.SymbolSeries, error) {
	if payload == nil || len(payload.Results) == 0 {
		return nil, fmt.Errorf("no bars returned for %s", symbol)
	}

	bars := make([]models.Bar, 0, len(payload.Results))
	for _, agg := range payload.Results {
		bars = append(bars, models.Bar{
			Date:   dateOf(agg.Timestamp),
			Open:   agg.Open,
			High:   agg.High,
			Low:    agg.Low,
			Close:  agg.Close,
			Volume: agg.Volume,
			VWAP:   agg.VolumeWeighted,
		})
	}

	sort.SliceStable(bars, func(i, j int) bool { return bars[i].Date.Before(bars[j].Date) })

	// Dates must be unique; keep the last bar for a repeated date.
	deduped := bars[:0]
	for _, b := range bars {
		if n := len(deduped); n > 0 && deduped[n-1].Date.Equal(b.Date) {
			deduped[n-1] = b
			continue
		}
		deduped = append(deduped, b)
	}

	return &models.SymbolSeries{Symbol: symbol, Bars: deduped}, nil
}

// dateOf truncates a ms-epoch timestamp to its UTC calendar date.
func dateOf(ms int64) time.Time {
	t := time.UnixMilli(ms).UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
