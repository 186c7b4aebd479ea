package app

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/portfoliopulse/config"
	"github.com/guttosm/portfoliopulse/internal/api"
	"github.com/guttosm/portfoliopulse/internal/marketdata"
	"github.com/guttosm/portfoliopulse/internal/service"
)

// clientCtor is an indirection for building the market-data client;
// tests override it to avoid real network dependencies.
var clientCtor = func(cfg config.Config) marketdata.BarsClient {
	return marketdata.NewPolygonClient(cfg.Polygon.BaseURL, cfg.Polygon.Timeout)
}

// InitializeApp sets up all application dependencies and returns a
// fully configured Gin router, a cleanup function for graceful
// shutdown, and any error encountered during initialization.
//
// Responsibilities:
//   - Creates the market-data client from configuration.
//   - Initializes the analysis service (business logic).
//   - Creates the HTTP handler layer and configures the router.
//   - Registers health and readiness probes.
func InitializeApp() (*gin.Engine, func(), error) {
	cfg := config.AppConfig

	client := clientCtor(cfg)

	svc := service.NewAnalysisService(client)

	handler := api.NewHandler(svc, cfg.Polygon.APIKey)

	router := api.NewRouter(handler)

	// Readiness is upstream reachability: one bounded ping per probe.
	healthHandler := api.NewHealthHandler(func() error {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return client.Ping(ctx)
	})
	healthHandler.Register(router)

	// Nothing stateful to release; kept for symmetry with callers that
	// expect a cleanup hook.
	cleanup := func() {}

	return router, cleanup, nil
}
