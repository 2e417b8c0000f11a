package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"crowdfund/internal/domain/user"
	"crowdfund/internal/shared/constants"
	"crowdfund/internal/shared/utils"
)

// RequireAdmin guards admin-only routes. It must run after RequireAuth.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString(constants.ContextKeyUserRole)
		if role != string(user.RoleAdmin) {
			utils.ErrorResponse(c, http.StatusForbidden, "admin privileges required")
			c.Abort()
			return
		}

		c.Next()
	}
}
