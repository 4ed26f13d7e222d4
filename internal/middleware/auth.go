package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"stayhub_backend/internal/auth"
	"stayhub_backend/internal/logger"
	"stayhub_backend/pkg/apperrors"
)

const (
	userIDContextKey   = "userID"
	userRoleContextKey = "userRole"
)

// AuthMiddleware validates the bearer token and stores the caller's id and
// role in the request context.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			abortWithError(c, apperrors.NewUnauthorizedError("Authorization header required"))
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			abortWithError(c, apperrors.NewUnauthorizedError("Invalid authorization header"))
			return
		}

		claims, err := auth.ParseToken(parts[1])
		if err != nil {
			abortWithError(c, apperrors.ErrInvalidToken)
			return
		}

		c.Set(userIDContextKey, claims.UserID)
		c.Set(userRoleContextKey, claims.Role)

		ctx := logger.WithUserID(c.Request.Context(), claims.UserID)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// RequireRoles rejects callers whose token role is not in roles.
// Must run after AuthMiddleware.
func RequireRoles(roles ...string) gin.HandlerFunc {
	allowed := make(map[string]struct{}, len(roles))
	for _, role := range roles {
		allowed[role] = struct{}{}
	}

	return func(c *gin.Context) {
		role, ok := GetUserRole(c)
		if !ok {
			abortWithError(c, apperrors.NewUnauthorizedError("Authentication required"))
			return
		}
		if _, ok := allowed[role]; !ok {
			abortWithError(c, apperrors.NewForbiddenError("Insufficient permissions"))
			return
		}
		c.Next()
	}
}

// GetUserID returns the authenticated user id from the request context.
func GetUserID(c *gin.Context) (string, bool) {
	value, exists := c.Get(userIDContextKey)
	if !exists {
		return "", false
	}
	userID, ok := value.(string)
	return userID, ok && userID != ""
}

// GetUserRole returns the authenticated user role from the request context.
func GetUserRole(c *gin.Context) (string, bool) {
	value, exists := c.Get(userRoleContextKey)
	if !exists {
		return "", false
	}
	role, ok := value.(string)
	return role, ok && role != ""
}

func abortWithError(c *gin.Context, err error) {
	apperrors.HandleError(c, err)
	c.Abort()
}
