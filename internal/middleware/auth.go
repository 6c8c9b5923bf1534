package middleware

import (
	"net/http"
	"strings"

	"cinelog/internal/pkg/identity"

	"github.com/gin-gonic/gin"
)

const (
	// ContextUID and ContextEmail are the gin context keys the verified
	// principal is stored under.
	ContextUID   = "uid"
	ContextEmail = "email"
)

// Authenticate verifies the bearer credential against the identity provider
// and attaches the resulting principal to the request context. It must run
// before any handler that needs a principal.
func Authenticate(verifier identity.Verifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"message": "User is unauthorized to access this resource",
			})
			return
		}

		token := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
		principal, err := verifier.VerifyToken(c.Request.Context(), token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"message": "User token is invalid",
			})
			return
		}

		c.Set(ContextUID, principal.UID)
		c.Set(ContextEmail, principal.Email)
		c.Next()
	}
}
