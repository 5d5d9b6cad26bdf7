package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"taskhub/internal/core/auth"
	resp "taskhub/internal/transport/http/response"
)

const (
	KeyUserID = "userId"
	KeyEmail  = "email"
)

// AuthJWT 缺 token 401；签名坏 / 篡改 / 过期统一 403
func AuthJWT(j *auth.JWTer) gin.HandlerFunc {
	return func(c *gin.Context) {
		ah := c.GetHeader("Authorization")
		parts := strings.Fields(ah)
		if len(parts) < 2 || !strings.EqualFold(parts[0], "Bearer") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, resp.Error(resp.CodeUnauthorized, "missing token"))
			return
		}
		claims, err := j.Parse(parts[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusForbidden, resp.Error(resp.CodeForbidden, "invalid token"))
			return
		}
		uid, err := claims.UserID()
		if err != nil {
			c.AbortWithStatusJSON(http.StatusForbidden, resp.Error(resp.CodeForbidden, "invalid token"))
			return
		}
		c.Set(KeyUserID, uid)
		c.Set(KeyEmail, claims.Email)
		c.Next()
	}
}
