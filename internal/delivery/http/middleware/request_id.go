package middleware

import (
	"context"

	"go-ats-dashboard/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const requestIDHeader = "X-Request-ID"

// RequestID tags every request with an id. A client supplied X-Request-ID is
// kept. The id and client IP go on both the gin context and the request context.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" || len(id) > 64 {
			id = uuid.NewString()
		}
		ip := c.ClientIP()

		c.Set(string(domain.KeyRequestID), id)
		c.Set(string(domain.KeyClientIP), ip)
		ctx := context.WithValue(c.Request.Context(), domain.KeyRequestID, id)
		ctx = context.WithValue(ctx, domain.KeyClientIP, ip)
		c.Request = c.Request.WithContext(ctx)

		c.Header(requestIDHeader, id)
		c.Next()
	}
}
