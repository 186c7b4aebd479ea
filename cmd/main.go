package main

//
//  @title           portfoliopulse API
//  @version         1.0
//  @description     Weighted portfolio analysis over daily market data.
//  @termsOfService  https://github.com/guttosm/portfoliopulse
//  @contact.name    API Support
//  @contact.url     https://github.com/guttosm/portfoliopulse
//  @contact.email   support@example.com
//  @license.name    MIT
//  @license.url     https://opensource.org/licenses/MIT
//  @host            localhost:8080
//  @BasePath        /
//  @schemes         http
//
//  @tag.name        portfolio
//  @tag.description Endpoints for analyzing weighted portfolios
//
//  @tag.name        health
//  @tag.description Liveness and readiness probes

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"text/tabwriter"
	"time"

	"github.com/guttosm/portfoliopulse/config"
	_ "github.com/guttosm/portfoliopulse/docs" // swagger docs
	"github.com/guttosm/portfoliopulse/internal/app"
	"github.com/guttosm/portfoliopulse/internal/domain/models"
	"github.com/guttosm/portfoliopulse/internal/logger"
	"github.com/guttosm/portfoliopulse/internal/marketdata"
	"github.com/guttosm/portfoliopulse/internal/service"
)

// startServer initializes and starts the HTTP server in a separate
// goroutine, returning the server instance for shutdown handling.
func startServer(router http.Handler, port string) *http.Server {
	server := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      45 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.L().Info().Str("port", port).Msg("server starting")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.L().Fatal().Err(err).Msg("server failed to start")
		}
	}()

	return server
}

// gracefulShutdown terminates the HTTP server and runs the cleanup
// callback when SIGINT or SIGTERM is received.
func gracefulShutdown(ctx context.Context, server *http.Server, cleanup func()) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	logger.L().Info().Msg("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.L().Fatal().Err(err).Msg("server forced to shutdown")
	}

	cleanup()
	logger.L().Info().Msg("server exited gracefully")
}

// parseHoldings turns "AAPL:50,MSFT:50" into an ordered holdings list.
func parseHoldings(s string) ([]models.Holding, error) {
	if strings.TrimSpace(s) == "" {
		return nil, fmt.Errorf("no holdings given")
	}
	var holdings []models.Holding
	for _, part := range strings.Split(s, ",") {
		sym, weightStr, ok := strings.Cut(strings.TrimSpace(part), ":")
		if !ok {
			return nil, fmt.Errorf("invalid holding %q, expected SYMBOL:WEIGHT", part)
		}
		weight, err := strconv.Atoi(weightStr)
		if err != nil {
			return nil, fmt.Errorf("invalid weight in %q: %w", part, err)
		}
		holdings = append(holdings, models.Holding{Symbol: strings.ToUpper(strings.TrimSpace(sym)), Weight: weight})
	}
	return holdings, nil
}

// runAnalyze executes one pipeline run from the CLI and prints the
// statistics table plus the composite index endpoints.
func runAnalyze(ctx context.Context, cfg config.Config, holdingsArg, from, to, apiKey string) error {
	holdings, err := parseHoldings(holdingsArg)
	if err != nil {
		return err
	}
	if apiKey == "" {
		apiKey = cfg.Polygon.APIKey
	}

	client := marketdata.NewPolygonClient(cfg.Polygon.BaseURL, cfg.Polygon.Timeout)
	svc := service.NewAnalysisService(client)

	analysis, err := svc.Analyze(ctx, service.AnalyzeParams{
		APIKey:    apiKey,
		Holdings:  holdings,
		StartDate: from,
		EndDate:   to,
	})
	if err != nil {
		return err
	}

	for _, warning := range analysis.Warnings {
		logger.L().Warn().Msg(warning)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "SYMBOL\tLATEST CLOSE\tVWAP\tPRICE CHANGE\tAVG VOLUME\tWEIGHT")
	for _, row := range analysis.Stats {
		fmt.Fprintf(w, "%s\t$%.2f\t$%.2f\t%+.2f%%\t%.0f\t%d%%\n",
			row.Symbol, row.LatestClose, row.LatestVWAP, row.PriceChangePct, row.AvgVolume, row.Weight)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if n := len(analysis.PriceIndex.Points); n > 0 {
		last := analysis.PriceIndex.Points[n-1]
		fmt.Printf("\nportfolio index: 100.00 -> %.2f over %d common trading days\n", last.Value, n)
	} else {
		fmt.Println("\nportfolio index: no common trading days in range")
	}

	return nil
}

// main is the entry point of the portfoliopulse application.
//
// Modes (selected via --mode flag):
//   - api:     Starts the REST API exposing the analysis pipeline.
//   - analyze: Runs one analysis from the command line and prints the
//     statistics table.
//
// Flags:
//   - --mode:     Execution mode ("api" or "analyze"). Default: "api".
//   - --port:     Port for the API server. Defaults to SERVER_PORT.
//   - --holdings: Comma-separated SYMBOL:WEIGHT pairs for analyze mode.
//   - --from/--to: Inclusive date range (YYYY-MM-DD) for analyze mode.
//   - --apikey:   Market-data API key (overrides POLYGON_API_KEY).
func main() {
	ctx := context.Background()

	config.LoadConfig()
	logger.Init()

	mode := flag.String("mode", "api", "Mode: api or analyze")
	port := flag.String("port", config.AppConfig.Server.Port, "Port for API mode")
	holdings := flag.String("holdings", "", "Holdings as SYMBOL:WEIGHT pairs, e.g. AAPL:50,MSFT:50")
	from := flag.String("from", "", "Start date (YYYY-MM-DD)")
	to := flag.String("to", "", "End date (YYYY-MM-DD)")
	apiKey := flag.String("apikey", "", "Market-data API key (overrides POLYGON_API_KEY)")
	flag.Parse()

	switch *mode {
	case "api":
		logger.L().Info().Msg("starting API server")

		router, cleanup, err := app.InitializeApp()
		if err != nil {
			logger.L().Fatal().Err(err).Msg("app init error")
		}

		server := startServer(router, *port)
		gracefulShutdown(ctx, server, cleanup)

	case "analyze":
		logger.L().Info().Msg("running one-shot analysis")
		if err := runAnalyze(ctx, config.AppConfig, *holdings, *from, *to, *apiKey); err != nil {
			logger.L().Fatal().Err(err).Msg("analysis failed")
		}

	default:
		logger.L().Fatal().Str("mode", *mode).Msg("unknown mode")
	}
}
