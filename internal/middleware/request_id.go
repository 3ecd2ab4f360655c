package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestIDHeader carries the request id on both requests and responses.
const RequestIDHeader = "X-Request-ID"

const requestIDKey = "request_id"

// RequestID assigns each request a uuid, honoring one supplied by the
// client, and echoes it on the response.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(requestIDKey, id)
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}

// GetRequestID returns the id assigned by RequestID, or "" if none was set.
func GetRequestID(c *gin.Context) string {
	return c.GetString(requestIDKey)
}
