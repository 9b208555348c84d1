package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/deepak92201/Portfolio/internal/auth"
	"github.com/deepak92201/Portfolio/internal/auth/domain"
)

// TokenVerifier is satisfied by *service.TokenManager.
type TokenVerifier interface {
	Verify(raw string) (*domain.Principal, error)
}

// RequireRole rejects the request before the handler runs unless it carries
// a valid bearer token whose role equals role. Missing or invalid tokens get
// 401, a valid token with another role gets 403.
func RequireRole(verifier TokenVerifier, role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing authorization token"})
			return
		}

		principal, err := verifier.Verify(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": domain.ErrUnauthorized.Error()})
			return
		}

		if principal.Role != role {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": domain.ErrForbidden.Error()})
			return
		}

		auth.SetPrincipal(c, principal)
		c.Next()
	}
}

// extractToken extracts the Bearer token from the Authorization header
func extractToken(c *gin.Context) string {
	bearerToken := c.GetHeader("Authorization")
	if len(bearerToken) > 7 && strings.HasPrefix(bearerToken, "Bearer ") {
		return strings.TrimSpace(bearerToken[7:])
	}
	return ""
}
