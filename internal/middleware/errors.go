package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/stockpulse/stockpulse/internal/domain/dto"
	"github.com/stockpulse/stockpulse/internal/logger"
)

// ErrorHandler converts errors attached to the gin context via c.Error()
// into a standardized 500 JSON body, unless a handler already wrote a
// response. Registered after RecoveryMiddleware so panics are handled
// separately.
func ErrorHandler(c *gin.Context) {
	c.Next()

	if len(c.Errors) == 0 || c.Writer.Written() {
		return
	}

	err := c.Errors.Last().Err
	logger.L().Error().Err(err).Str("path", c.Request.URL.Path).Msg("unhandled request error")
	c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("Internal server error", err))
}

// AbortWithError writes a standardized error body with the given status
// and stops the handler chain.
func AbortWithError(c *gin.Context, status int, message string, err error) {
	c.AbortWithStatusJSON(status, dto.NewErrorResponse(message, err))
}
