package middleware

import (
	"net/http"
	"strings"

	"homeinsight-catalog/internal/auth"
	apperrors "homeinsight-catalog/internal/errors"

	"github.com/gin-gonic/gin"
)

// context keys set by RequireAuth
const (
	ContextUserID   = "user_id"
	ContextFullName = "full_name"
	ContextEmail    = "email"
)

// RequireAuth rejects requests without a valid bearer token and exposes the
// token claims to downstream handlers.
func RequireAuth(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abortWithError(c, apperrors.NewAuthError("authorization header required", http.StatusUnauthorized))
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
			abortWithError(c, apperrors.NewAuthError("invalid authorization header format", http.StatusUnauthorized))
			return
		}

		claims, err := auth.ValidateJWT(strings.TrimSpace(parts[1]), secret)
		if err != nil {
			abortWithError(c, apperrors.NewAuthError(err.Error(), http.StatusUnauthorized))
			return
		}

		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextFullName, claims.FullName)
		c.Set(ContextEmail, claims.Email)
		c.Next()
	}
}
