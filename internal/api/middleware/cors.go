package middleware

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"taskboard/internal/pkg/config"
)

// defaultAllowOrigins 未配置时只放行本地前端开发服务器
var defaultAllowOrigins = []string{"http://localhost:3000", "http://localhost:5173"}

// CORSMiddleware 跨域访问，允许的来源由 server.cors.allow_origins 配置，"*" 表示全部
func CORSMiddleware(cfg *config.CORSConfig) gin.HandlerFunc {
	corsConfig := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Authorization", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           cfg.GetMaxAge(),
	}

	origins := cfg.AllowOrigins
	if len(origins) == 0 {
		origins = defaultAllowOrigins
	}
	for _, origin := range origins {
		if origin == "*" {
			corsConfig.AllowAllOrigins = true
			// 通配来源不能携带凭证
			corsConfig.AllowCredentials = false
			break
		}
	}
	if !corsConfig.AllowAllOrigins {
		corsConfig.AllowOrigins = origins
	}

	return cors.New(corsConfig)
}
