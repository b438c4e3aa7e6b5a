package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/cinelog/cinelog/internal/store"
	"github.com/cinelog/cinelog/pkg/token"
)

const userIDKey = "user_id"

type AuthMiddleware struct {
	tokens *token.Service
	users  store.UserStore
}

func NewAuthMiddleware(tokens *token.Service, users store.UserStore) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens, users: users}
}

// RequireAuth extracts the bearer token from the Authorization header,
// verifies it and binds the caller's user ID on the context. Must run before
// any handler that reads the caller identity.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := strings.TrimSpace(c.GetHeader("Authorization"))
		if len(raw) >= 6 && strings.EqualFold(raw[:6], "bearer") {
			raw = strings.TrimSpace(raw[6:])
		}

		id, ok := m.tokens.Verify(raw)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"message": "Unauthorized!",
			})
			return
		}

		c.Set(userIDKey, id)
		c.Next()
	}
}

// RequireAdmin loads the authenticated user and aborts unless the account is
// an admin. A deleted account resolves to Forbidden rather than an error.
func (m *AuthMiddleware) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := m.users.FindByID(c.Request.Context(), UserID(c))
		if err != nil || !user.IsAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"message": "Forbidden!",
			})
			return
		}
		c.Next()
	}
}

// UserID returns the caller identity bound by RequireAuth.
func UserID(c *gin.Context) int64 {
	return c.GetInt64(userIDKey)
}
