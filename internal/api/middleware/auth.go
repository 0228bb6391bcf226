package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"taskboard/internal/pkg/jwt"
	"taskboard/pkg/constants"
	pkgErrors "taskboard/pkg/errors"
	"taskboard/pkg/utils"
)

// AuthMiddleware JWT认证中间件
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader(constants.HeaderAuthorization)
		if authHeader == "" {
			utils.ErrorWithCode(c, pkgErrors.CodeUnauthorized, "缺少Authorization Header")
			c.Abort()
			return
		}

		if !strings.HasPrefix(authHeader, constants.HeaderBearerPrefix) {
			utils.ErrorWithCode(c, pkgErrors.CodeUnauthorized, "Authorization格式错误")
			c.Abort()
			return
		}

		claims, err := jwt.ValidateToken(strings.TrimPrefix(authHeader, constants.HeaderBearerPrefix))
		if err != nil {
			utils.Error(c, err)
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyUserID, claims.UserID)
		c.Next()
	}
}

// BootstrapAuth 尚无任何用户时放行，用于创建第一个协作者; 之后与 AuthMiddleware 相同
func BootstrapAuth(hasUsers func() bool) gin.HandlerFunc {
	auth := AuthMiddleware()
	return func(c *gin.Context) {
		if !hasUsers() {
			c.Next()
			return
		}
		auth(c)
	}
}

// CurrentUserID 当前登录用户ID
func CurrentUserID(c *gin.Context) string {
	return c.GetString(constants.ContextKeyUserID)
}
