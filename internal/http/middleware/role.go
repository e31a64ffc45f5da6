package middleware

import (
	"github.com/GOLLA-MANJU34/Frontend-Developer-Task/internal/utils"
	"github.com/gin-gonic/gin"
)

// RequireRole authorizes an already-authenticated request. It must run after
// JWTAuth, which attaches the caller's role to the context.
func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString("role") != role {
			utils.RespondError(c, utils.ErrForbidden())
			c.Abort()
			return
		}
		c.Next()
	}
}
