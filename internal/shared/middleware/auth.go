package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"library-backend/internal/shared/authz"
	"library-backend/internal/shared/response"
	"library-backend/pkg/jwt"
)

// Context keys set by AuthMiddleware.
const (
	ContextUserID = "userID"
	ContextRole   = "role"
)

// AuthMiddleware validates the bearer token and puts the principal's id and
// role into the request context.
func AuthMiddleware(manager *jwt.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c, "missing authorization header")
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Unauthorized(c, "invalid authorization header format")
			c.Abort()
			return
		}

		claims, err := manager.ValidateToken(parts[1])
		if err != nil {
			response.Unauthorized(c, "invalid token")
			c.Abort()
			return
		}

		userID, err := uuid.Parse(claims.UserID)
		if err != nil {
			response.Unauthorized(c, "invalid user ID in token")
			c.Abort()
			return
		}

		c.Set(ContextUserID, userID)
		c.Set(ContextRole, authz.ParseRole(claims.Role))

		c.Next()
	}
}

// CurrentUser extracts the authenticated principal from the context.
func CurrentUser(c *gin.Context) (uuid.UUID, authz.Role, bool) {
	idVal, ok := c.Get(ContextUserID)
	if !ok {
		return uuid.Nil, authz.RoleUser, false
	}
	userID, ok := idVal.(uuid.UUID)
	if !ok {
		return uuid.Nil, authz.RoleUser, false
	}

	role := authz.RoleUser
	if roleVal, ok := c.Get(ContextRole); ok {
		if r, ok := roleVal.(authz.Role); ok {
			role = r
		}
	}

	return userID, role, true
}
