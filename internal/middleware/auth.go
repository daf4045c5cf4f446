package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/mkobayashi/todo-web-api/internal/constants"
	apierrors "github.com/mkobayashi/todo-web-api/internal/errors"
	"github.com/mkobayashi/todo-web-api/internal/models"
	"github.com/mkobayashi/todo-web-api/internal/services"
)

const bearerPrefix = "Bearer "

// RequireAuth verifies the bearer token on the request and stores the
// caller's identity in the context for the handlers.
func RequireAuth(tokens *services.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, bearerPrefix) {
			apierrors.Unauthorized(c, "")
			c.Abort()
			return
		}

		claims, err := tokens.Parse(strings.TrimPrefix(header, bearerPrefix))
		if err != nil {
			apierrors.Unauthorized(c, "Invalid or expired token")
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyUserID, claims.UserID)
		c.Set(constants.ContextKeyUserRole, claims.Role)
		c.Next()
	}
}

// RequireAdmin allows only callers carrying the admin role. Must run after
// RequireAuth.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		roleValue, exists := c.Get(constants.ContextKeyUserRole)
		if !exists {
			apierrors.Unauthorized(c, "")
			c.Abort()
			return
		}

		role, ok := roleValue.(models.UserRole)
		if !ok || role != models.RoleAdmin {
			apierrors.Forbidden(c, "Administrator role required")
			c.Abort()
			return
		}

		c.Next()
	}
}

// GetUserID retrieves the current user ID from context
func GetUserID(c *gin.Context) (uint64, bool) {
	userID, exists := c.Get(constants.ContextKeyUserID)
	if !exists {
		return 0, false
	}

	switch v := userID.(type) {
	case uint64:
		return v, true
	case uint:
		return uint64(v), true
	case int:
		if v < 0 {
			return 0, false
		}
		return uint64(v), true
	default:
		return 0, false
	}
}
