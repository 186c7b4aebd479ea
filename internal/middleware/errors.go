package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/portfoliopulse/internal/domain/dto"
	"github.com/guttosm/portfoliopulse/internal/logger"
)

// ErrorHandler turns errors attached to the gin context by handlers
// (via c.Error) into a standardized 500 response, unless a handler
// already wrote one.
func ErrorHandler(c *gin.Context) {
	c.Next()

	if len(c.Errors) == 0 || c.Writer.Written() {
		return
	}

	err := c.Errors.Last().Err
	logger.L().Error().Err(err).Str("path", c.Request.URL.Path).Msg("unhandled error")
	c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("internal error", err))
}

// AbortWithError writes a standardized error response with the given
// status and stops the handler chain.
func AbortWithError(c *gin.Context, status int, message string, err error) {
	c.AbortWithStatusJSON(status, dto.NewErrorResponse(message, err))
}
