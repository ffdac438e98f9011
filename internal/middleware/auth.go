package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"videotube/internal/auth"
)

// UserIDKey is the context key for the authenticated user ID.
const UserIDKey = "auth_user_id"

// RequireAuth verifies the bearer access token and stores the authenticated
// userId in the context. Requests without a valid token are rejected with 401.
func RequireAuth(tokens *auth.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authorization required"})
			return
		}

		userID, err := tokens.Verify(token, auth.KindAccess)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid access token"})
			return
		}

		c.Set(UserIDKey, userID)
		c.Next()
	}
}

// OptionalAuth resolves the bearer token when one is present but never
// rejects the request. Handlers observe the identity as present or absent
// via GetUserID.
func OptionalAuth(tokens *auth.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		if token := bearerToken(c); token != "" {
			if userID, err := tokens.Verify(token, auth.KindAccess); err == nil {
				c.Set(UserIDKey, userID)
			}
		}
		c.Next()
	}
}

// GetUserID retrieves the authenticated user ID from the gin context. The
// second return value reports whether an identity is present.
func GetUserID(c *gin.Context) (string, bool) {
	if v, exists := c.Get(UserIDKey); exists {
		if id, ok := v.(string); ok && id != "" {
			return id, true
		}
	}
	return "", false
}

func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if header == "" {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
}
