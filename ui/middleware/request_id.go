package middleware

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestIDHeader carries the request id in both directions
const RequestIDHeader = "X-Request-ID"

// RequestIDKey is the gin context key holding the id
const RequestIDKey = "request_id"

// RequestID stamps every request with an id, keeping a well-formed one sent by the client
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if _, err := uuid.Parse(id); err != nil {
			if id != "" {
				log.Printf("[RequestID] Ignoring malformed request id %q", id)
			}
			id = uuid.NewString()
		}

		c.Set(RequestIDKey, id)
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}

// GetRequestID returns the id stamped by RequestID, or "" outside it
func GetRequestID(c *gin.Context) string {
	return c.GetString(RequestIDKey)
}
