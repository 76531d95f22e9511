package middlewares

import (
	"net/http"

	"realestate-api/models"

	"github.com/gin-gonic/gin"
)

// RoleBasedAccessControl allows only the given roles through. It must run
// after AuthMiddleware: the role is read from the user record loaded from
// the database, not from token claims.
func RoleBasedAccessControl(allowedRoles ...string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		user, exists := ctx.Get("user")
		if !exists {
			ctx.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		userModel, ok := user.(*models.User)
		if !ok {
			ctx.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		for _, allowedRole := range allowedRoles {
			if userModel.Role == allowedRole {
				ctx.Next()
				return
			}
		}

		ctx.AbortWithStatus(http.StatusForbidden)
	}
}
