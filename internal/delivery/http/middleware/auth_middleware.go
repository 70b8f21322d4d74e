package middleware

import (
	"net/http"
	"strings"

	"go-ats-dashboard/internal/delivery/http/response"
	"go-ats-dashboard/internal/domain"
	"go-ats-dashboard/pkg/audit"
	"go-ats-dashboard/pkg/auth"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware verifies the bearer token. With required false a request
// without a token passes through anonymously, but a bad token is still rejected.
func AuthMiddleware(tokens *auth.TokenManager, required bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := bearerToken(c)
		if tokenString == "" {
			if required {
				response.Error(c, http.StatusUnauthorized, "Authorization header required", nil)
				c.Abort()
				return
			}
			c.Next()
			return
		}

		if !tokens.Enabled() {
			response.Error(c, http.StatusServiceUnavailable, "Authentication is not configured", nil)
			c.Abort()
			return
		}

		claims, err := tokens.Verify(tokenString)
		if err != nil {
			response.Error(c, http.StatusUnauthorized, "Invalid token", nil)
			c.Abort()
			return
		}

		c.Set(string(domain.KeyUserID), claims.Subject)
		c.Set(string(domain.KeyUserEmail), claims.Email)
		ctx := audit.WithActor(c.Request.Context(), claims.Subject)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	h := c.GetHeader("Authorization")
	if h == "" {
		return ""
	}
	if len(h) > 7 && strings.EqualFold(h[:7], "Bearer ") {
		return strings.TrimSpace(h[7:])
	}
	return ""
}
