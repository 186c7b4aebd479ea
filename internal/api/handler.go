package api

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/portfoliopulse/internal/domain/dto"
	"github.com/guttosm/portfoliopulse/internal/domain/models"
	"github.com/guttosm/portfoliopulse/internal/service"
)

// APIKeyHeader lets callers supply their own market-data credential
// per request, overriding the one configured on the server.
const APIKeyHeader = "X-Polygon-Key"

// Handler provides HTTP handlers for the portfolio analysis endpoint.
//
// Responsibilities:
//   - Validate and normalize incoming JSON bodies
//   - Delegate to the analysis service
//   - Translate service results and error kinds into response DTOs
//     with appropriate HTTP status codes
type Handler struct {
	svc           service.AnalysisService
	defaultAPIKey string
}

// NewHandler constructs a Handler. defaultAPIKey may be empty, in
// which case each request must carry the X-Polygon-Key header.
func NewHandler(svc service.AnalysisService, defaultAPIKey string) *Handler {
	return &Handler{svc: svc, defaultAPIKey: defaultAPIKey}
}

// AnalyzePortfolio handles POST /api/v1/portfolio/analyze.
//
// AnalyzePortfolio godoc
// @Summary      Analyze a weighted portfolio
// @Description  Fetches daily bars for each holding, rebases every series to 100 at its first date, and returns the weighted composite price and volume indexes plus per-symbol statistics
// @Tags         portfolio
// @Accept       json
// @Produce      json
// @Param        X-Polygon-Key  header    string              false  "Market-data API key (overrides server default)"
// @Param        request        body      dto.AnalyzeRequest  true   "Holdings, weights and date range"
// @Success      200            {object}  dto.AnalyzeResponse  "Success"
// @Failure      400            {object}  dto.ErrorResponse    "Malformed body or validation failure"
// @Failure      502            {object}  dto.ErrorResponse    "No symbol could be fetched"
// @Failure      500            {object}  dto.ErrorResponse    "Internal error"
// @Router       /api/v1/portfolio/analyze [post]
func (h *Handler) AnalyzePortfolio(c *gin.Context) {
	var req dto.AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid request body", err))
		return
	}

	apiKey := strings.TrimSpace(c.GetHeader(APIKeyHeader))
	if apiKey == "" {
		apiKey = h.defaultAPIKey
	}

	holdings := make([]models.Holding, 0, len(req.Holdings))
	for _, hr := range req.Holdings {
		holdings = append(holdings, models.Holding{
			Symbol: strings.ToUpper(strings.TrimSpace(hr.Symbol)),
			Weight: hr.Weight,
		})
	}

	analysis, err := h.svc.Analyze(c.Request.Context(), service.AnalyzeParams{
		APIKey:    apiKey,
		Holdings:  holdings,
		StartDate: strings.TrimSpace(req.StartDate),
		EndDate:   strings.TrimSpace(req.EndDate),
	})
	if err != nil {
		var ve *service.ValidationError
		switch {
		case errors.As(err, &ve):
			c.JSON(http.StatusBadRequest, dto.NewErrorResponse(ve.Reason, nil))
		case errors.Is(err, service.ErrNoData):
			c.JSON(http.StatusBadGateway, dto.NewErrorResponse("no market data could be fetched", err))
		default:
			c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("failed to analyze portfolio", err))
		}
		return
	}

	c.JSON(http.StatusOK, dto.NewAnalyzeResponse(analysis))
}
