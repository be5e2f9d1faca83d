package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/artfolio/artfolio-api/internal/api/shared/constants"
)

// RequestID returns a gin middleware that assigns every request a correlation
// ID, reusing the caller's X-Request-ID when present
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(constants.REQUEST_ID_HEADER)
		if requestID == "" {
			requestID = uuid.NewString()
		}

		c.Set(constants.REQUEST_ID_HEADER, requestID)
		c.Writer.Header().Set(constants.REQUEST_ID_HEADER, requestID)
		c.Next()
	}
}
