package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"sessionbook/internal/pkg/jwt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const ctxAccountKey = "account"

type AuthMiddleware struct {
	tokens *jwt.Service
}

func NewAuthMiddleware(tokens *jwt.Service) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens}
}

// RequireAuth resolves the caller's account id from a bearer token. The
// engine decides what the account may do; this layer only authenticates.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		var token string
		authHeader := c.GetHeader("Authorization")
		if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
			token = strings.TrimSpace(authHeader[len("Bearer "):])
		}

		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Access token required"})
			c.Abort()
			return
		}

		claims, err := m.tokens.ValidateToken(token)
		if err != nil {
			slog.Warn("token validation failed", "error", err.Error())
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			c.Abort()
			return
		}

		c.Set(ctxAccountKey, claims.Account)
		c.Next()
	}
}

// GetAccount returns the authenticated caller account set by RequireAuth.
func GetAccount(c *gin.Context) (uuid.UUID, bool) {
	v, ok := c.Get(ctxAccountKey)
	if !ok {
		return uuid.Nil, false
	}
	account, ok := v.(uuid.UUID)
	return account, ok
}
