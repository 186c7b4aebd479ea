package models

// MaxHoldings caps how many symbols one analysis may request.
const MaxHoldings = 5

// Holding pairs a ticker with its integer percentage weight (0-100)
// in the portfolio. The ordered list of holdings comes straight from
// the caller's configuration; weights are expected to sum to 100,
// which the analysis service validates before running the pipeline.
type Holding struct {
	Symbol string `json:"symbol"`
	Weight int    `json:"weight"`
}

// WeightMap maps symbol to its percentage weight. The aggregator
// applies whatever weights it is given, dividing each by 100; it does
// not assume (or check) that they sum to 100.
type WeightMap map[string]int

// Analysis is the full result of one portfolio analysis run: the raw
// per-symbol series, the two composite indexes, the per-symbol summary
// rows, and the non-fatal per-symbol fetch warnings accumulated along
// the way.
type Analysis struct {
	Series      map[string]*SymbolSeries `json:"series"`
	Weights     WeightMap                `json:"weights"`
	PriceIndex  CompositeSeries          `json:"price_index"`
	VolumeIndex CompositeSeries          `json:"volume_index"`
	Stats       []SymbolStats            `json:"stats"`
	Warnings    []string                 `json:"warnings,omitempty"`
}
