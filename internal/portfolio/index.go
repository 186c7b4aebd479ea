// Package portfolio implements the weighted-portfolio aggregation:
// per-symbol rebasing to a common 100-point base, date intersection
// across symbols, and weight-combined composite series for price and
// volume, plus the per-symbol statistics summary.
package portfolio

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/guttosm/portfoliopulse/internal/domain/models"
)

// ErrEmptySeries is returned when a zero-bar series reaches the
// aggregator. That is a precondition violation of the series builder,
// surfaced as a defined error instead of a division fault.
var ErrEmptySeries = errors.New("cannot rebase empty series")

// Field selects which bar field a rebased series is computed over.
type Field int

const (
	FieldClose Field = iota
	FieldVolume
)

func (f Field) of(b models.Bar) float64 {
	if f == FieldVolume {
		return b.Volume
	}
	return b.Close
}

// Rebase scales the chosen field of a series so that its first
// chronological value is exactly 100.0. All computation is float64;
// the anchor is always bar 0 after the builder's ascending sort.
func Rebase(s *models.SymbolSeries, field Field) ([]models.IndexPoint, error) {
	if s == nil || len(s.Bars) == 0 {
		return nil, ErrEmptySeries
	}

	base := field.of(s.First())
	points := make([]models.IndexPoint, 0, len(s.Bars))
	for _, b := range s.Bars {
		points = append(points, models.IndexPoint{
			Date:  b.Date,
			Value: field.of(b) / base * 100,
		})
	}
	return points, nil
}

// PriceIndex computes the weighted composite price index: every series
// rebased on close, dates intersected across all series, and for each
// common date the sum of rebased values scaled by weight/100.
//
// A symbol present in seriesMap but absent from weights contributes
// nothing; a disjoint date range yields an empty composite, which is a
// valid degenerate result.
func PriceIndex(seriesMap map[string]*models.SymbolSeries, weights models.WeightMap) (models.CompositeSeries, error) {
	return composite(seriesMap, weights, FieldClose)
}

// VolumeIndex is PriceIndex over daily volume instead of close price.
func VolumeIndex(seriesMap map[string]*models.SymbolSeries, weights models.WeightMap) (models.CompositeSeries, error) {
	return composite(seriesMap, weights, FieldVolume)
}

func composite(seriesMap map[string]*models.SymbolSeries, weights models.WeightMap, field Field) (models.CompositeSeries, error) {
	rebased := make(map[string]map[time.Time]float64, len(seriesMap))
	for sym, s := range seriesMap {
		points, err := Rebase(s, field)
		if err != nil {
			return models.CompositeSeries{}, fmt.Errorf("series %s: %w", sym, err)
		}
		byDate := make(map[time.Time]float64, len(points))
		for _, p := range points {
			byDate[p.Date] = p.Value
		}
		rebased[sym] = byDate
	}

	dates := commonDates(rebased)

	out := models.CompositeSeries{Points: make([]models.IndexPoint, 0, len(dates))}
	for _, d := range dates {
		var value float64
		for sym, weight := range weights {
			byDate, ok := rebased[sym]
			if !ok {
				// weight for a symbol that never produced a series
				// (e.g. its fetch failed); it cannot contribute
				continue
			}
			value += byDate[d] * (float64(weight) / 100.0)
		}
		out.Points = append(out.Points, models.IndexPoint{Date: d, Value: value})
	}

	return out, nil
}

// commonDates intersects the date sets of all rebased series and
// returns the result sorted ascending. The intersection runs over
// every input series, weighted or not.
func commonDates(rebased map[string]map[time.Time]float64) []time.Time {
	var common map[time.Time]struct{}
	for _, byDate := range rebased {
		if common == nil {
			common = make(map[time.Time]struct{}, len(byDate))
			for d := range byDate {
				common[d] = struct{}{}
			}
			continue
		}
		for d := range common {
			if _, ok := byDate[d]; !ok {
				delete(common, d)
			}
		}
	}

	dates := make([]time.Time, 0, len(common))
	for d := range common {
		dates = append(dates, d)
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })
	return dates
}
