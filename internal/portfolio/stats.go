package portfolio

import (
	"sort"

	"github.com/montanaflynn/stats"

	"github.com/guttosm/portfoliopulse/internal/domain/models"
)

// Summarize derives the trading statistics row for every symbol:
// latest close, latest VWAP, percentage price change from first to
// last bar, mean daily volume over the full series, and the symbol's
// configured weight (zero when absent from the weight map).
//
// Rows come back sorted by symbol so the table renders
// deterministically. Empty series are skipped; they should never reach
// this point, but a missing row beats a panic in a read-only summary.
func Summarize(seriesMap map[string]*models.SymbolSeries, weights models.WeightMap) []models.SymbolStats {
	rows := make([]models.SymbolStats, 0, len(seriesMap))

	for sym, s := range seriesMap {
		if s == nil || len(s.Bars) == 0 {
			continue
		}

		volumes := make([]float64, 0, len(s.Bars))
		for _, b := range s.Bars {
			volumes = append(volumes, b.Volume)
		}
		avgVolume, err := stats.Mean(volumes)
		if err != nil {
			avgVolume = 0
		}

		first, last := s.First(), s.Last()
		rows = append(rows, models.SymbolStats{
			Symbol:         sym,
			LatestClose:    last.Close,
			LatestVWAP:     last.VWAP,
			PriceChangePct: (last.Close/first.Close - 1) * 100,
			AvgVolume:      avgVolume,
			Weight:         weights[sym],
		})
	}

	sort.Slice(rows, func(i, j int) bool { return rows[i].Symbol < rows[j].Symbol })
	return rows
}
