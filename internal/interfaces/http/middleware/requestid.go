package middleware

import (
	"github.com/gin-gonic/gin"

	"branchline/internal/shared/constants"
	"branchline/internal/shared/id"
)

// RequestID propagates the caller's X-Request-ID header or generates a fresh
// one, storing it in the context and echoing it on the response.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(constants.HeaderXRequestID)
		if requestID == "" {
			generated, err := id.Generate(16)
			if err == nil {
				requestID = generated
			}
		}

		c.Set(constants.ContextKeyRequestID, requestID)
		c.Header(constants.HeaderXRequestID, requestID)

		c.Next()
	}
}
