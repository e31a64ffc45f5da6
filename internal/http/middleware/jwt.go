package middleware

import (
	"strings"

	"github.com/GOLLA-MANJU34/Frontend-Developer-Task/internal/services"
	"github.com/GOLLA-MANJU34/Frontend-Developer-Task/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

type AuthConfig struct {
	Secret string
}

// JWTAuth authenticates the request from the Authorization header. An absent
// or malformed header and a token that fails verification are reported as
// distinct errors so clients can tell the two apart. On success the resolved
// identity and role are attached to the request context.
func JWTAuth(cfg AuthConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			utils.RespondError(c, utils.ErrMissingToken())
			c.Abort()
			return
		}

		tokenStr := strings.TrimPrefix(header, "Bearer ")
		token, err := jwt.ParseWithClaims(tokenStr, &services.Claims{}, func(token *jwt.Token) (interface{}, error) {
			return []byte(cfg.Secret), nil
		})
		if err != nil || !token.Valid {
			utils.RespondError(c, utils.ErrInvalidToken())
			c.Abort()
			return
		}

		claims, ok := token.Claims.(*services.Claims)
		if !ok {
			utils.RespondError(c, utils.ErrInvalidToken())
			c.Abort()
			return
		}

		c.Set("username", claims.Username)
		c.Set("role", claims.Role)
		c.Next()
	}
}
