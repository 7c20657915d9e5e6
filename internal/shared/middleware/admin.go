package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"library-backend/internal/shared/authz"
	"library-backend/internal/shared/response"
)

// AdminMiddleware gates admin routes. Must run after AuthMiddleware.
func AdminMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		_, role, ok := CurrentUser(c)
		if !ok || role != authz.RoleAdmin {
			response.ErrorResponse(c, http.StatusForbidden, "FORBIDDEN", "admin role required")
			c.Abort()
			return
		}

		c.Next()
	}
}
