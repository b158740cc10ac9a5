package rest

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/akarpov87/accountd/internal/server/auth"
)

// Context keys set by BearerAuth for downstream handlers.
const (
	ctxUserIDKey    = "user_id"
	ctxUserEmailKey = "user_email"
)

// BearerAuth verifies the Authorization header before a guarded handler
// runs. It checks signature and expiry only; whether a session entry still
// exists for the token is not consulted here.
func BearerAuth(jwtSecret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authorization required"})
			return
		}

		claims, err := auth.ParseToken(token, jwtSecret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		c.Set(ctxUserIDKey, claims.Subject)
		c.Set(ctxUserEmailKey, claims.Username)

		c.Next()
	}
}

func bearerToken(value string) (string, bool) {
	const bearer = "Bearer "
	if !strings.HasPrefix(value, bearer) {
		return "", false
	}

	token := value[len(bearer):]
	if token == "" {
		return "", false
	}

	return token, true
}
