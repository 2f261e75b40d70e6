package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// HeaderXRequestID is set on every response so a failed explain request
// can be correlated with the server log.
const HeaderXRequestID = "X-Request-ID"

// RequestID assigns a request id when the caller did not send one.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := c.GetHeader(HeaderXRequestID)
		if rid == "" {
			rid = uuid.NewString()
		}
		c.Set("request_id", rid)
		c.Writer.Header().Set(HeaderXRequestID, rid)
		c.Next()
	}
}
