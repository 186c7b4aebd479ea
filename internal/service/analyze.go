package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/guttosm/portfoliopulse/internal/domain/models"
	"github.com/guttosm/portfoliopulse/internal/logger"
	"github.com/guttosm/portfoliopulse/internal/marketdata"
	"github.com/guttosm/portfoliopulse/internal/portfolio"
	"github.com/guttosm/portfoliopulse/internal/series"
)

// ErrNoData is returned when every requested symbol failed to fetch,
// leaving nothing to aggregate.
var ErrNoData = errors.New("no market data for any requested symbol")

// ValidationError blocks an analysis run before any network call is
// made. It is reported to the caller as a 400, not a 500.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string { return e.Reason }

// AnalyzeParams is the validated-on-entry input of one analysis run:
// the credential, the ordered holdings list, and the inclusive date
// range in YYYY-MM-DD. The configuration layer owns these values; the
// service holds no state between runs.
type AnalyzeParams struct {
	APIKey    string
	Holdings  []models.Holding
	StartDate string
	EndDate   string
}

// AnalysisService runs the full fetch -> build -> aggregate pipeline.
// Every call recomputes from scratch; results have no identity beyond
// the call that produced them.
type AnalysisService interface {
	Analyze(ctx context.Context, params AnalyzeParams) (*models.Analysis, error)
}

type analysisService struct {
	client marketdata.BarsClient
}

func NewAnalysisService(client marketdata.BarsClient) AnalysisService {
	return &analysisService{client: client}
}

// Analyze validates the request, fetches each symbol sequentially,
// and aggregates whatever fetched successfully.
//
// Behavior:
//   - Validation failure returns *ValidationError and performs no fetch.
//   - A per-symbol fetch failure becomes a warning on the result and
//     never aborts the remaining symbols.
//   - If every symbol fails, ErrNoData is returned with the collected
//     warnings wrapped into the message.
func (s *analysisService) Analyze(ctx context.Context, params AnalyzeParams) (*models.Analysis, error) {
	if err := validate(params); err != nil {
		return nil, err
	}

	seriesMap := make(map[string]*models.SymbolSeries, len(params.Holdings))
	weights := make(models.WeightMap, len(params.Holdings))
	var warnings []string

	// One request per symbol, in the caller's order. Fetches are
	// sequential on purpose; the data volumes never justify fan-out.
	for _, h := range params.Holdings {
		payload, err := s.client.DailyBars(ctx, h.Symbol, params.APIKey, params.StartDate, params.EndDate)
		if err != nil {
			logger.L().Warn().Str("symbol", h.Symbol).Err(err).Msg("symbol fetch failed")
			warnings = append(warnings, err.Error())
			continue
		}

		built, err := series.Build(h.Symbol, payload)
		if err != nil {
			logger.L().Warn().Str("symbol", h.Symbol).Err(err).Msg("series build failed")
			warnings = append(warnings, err.Error())
			continue
		}

		seriesMap[h.Symbol] = built
		weights[h.Symbol] = h.Weight
	}

	if len(seriesMap) == 0 {
		return nil, fmt.Errorf("%w: %d symbol(s) failed", ErrNoData, len(warnings))
	}

	priceIndex, err := portfolio.PriceIndex(seriesMap, weights)
	if err != nil {
		return nil, err
	}
	volumeIndex, err := portfolio.VolumeIndex(seriesMap, weights)
	if err != nil {
		return nil, err
	}

	return &models.Analysis{
		Series:      seriesMap,
		Weights:     weights,
		PriceIndex:  priceIndex,
		VolumeIndex: volumeIndex,
		Stats:       portfolio.Summarize(seriesMap, weights),
		Warnings:    warnings,
	}, nil
}

func validate(params AnalyzeParams) error {
	if params.APIKey == "" {
		return &ValidationError{Reason: "api key is required"}
	}
	if len(params.Holdings) == 0 {
		return &ValidationError{Reason: "at least one holding is required"}
	}
	if len(params.Holdings) > models.MaxHoldings {
		return &ValidationError{Reason: fmt.Sprintf("at most %d holdings are supported", models.MaxHoldings)}
	}

	total := 0
	seen := make(map[string]struct{}, len(params.Holdings))
	for _, h := range params.Holdings {
		if h.Symbol == "" {
			return &ValidationError{Reason: "holding symbol must not be empty"}
		}
		if _, dup := seen[h.Symbol]; dup {
			return &ValidationError{Reason: fmt.Sprintf("duplicate holding %s", h.Symbol)}
		}
		seen[h.Symbol] = struct{}{}
		if h.Weight < 0 || h.Weight > 100 {
			return &ValidationError{Reason: fmt.Sprintf("weight for %s must be between 0 and 100", h.Symbol)}
		}
		total += h.Weight
	}
	if total != 100 {
		return &ValidationError{Reason: fmt.Sprintf("total weight is %d%%, should be 100%%", total)}
	}

	start, err := time.Parse(models.DateLayout, params.StartDate)
	if err != nil {
		return &ValidationError{Reason: "invalid start_date format, expected YYYY-MM-DD"}
	}
	end, err := time.Parse(models.DateLayout, params.EndDate)
	if err != nil {
		return &ValidationError{Reason: "invalid end_date format, expected YYYY-MM-DD"}
	}
	if end.Before(start) {
		return &ValidationError{Reason: "end_date must not be before start_date"}
	}

	return nil
}
