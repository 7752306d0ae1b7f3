package middlewares

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// CorsConfig allows every origin outside production so any front-end dev
// server can reach the fixtures. In production only allowedOrigins pass,
// and an empty allowlist denies all cross-origin requests.
func CorsConfig(production bool, allowedOrigins []string) cors.Config {
	corsConfig := cors.DefaultConfig()
	if production {
		if len(allowedOrigins) == 0 {
			corsConfig.AllowOrigins = []string{}
			corsConfig.AllowOriginFunc = func(string) bool { return false }
		} else {
			corsConfig.AllowOrigins = allowedOrigins
		}
		corsConfig.AllowCredentials = true
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AddAllowMethods("GET", "POST", "PUT", "DELETE", "OPTIONS")
	corsConfig.AddAllowHeaders("Origin", "Content-Type", "Authorization", CorrelationHeader)
	corsConfig.AddExposeHeaders("Content-Length", "Content-Disposition", CorrelationHeader)
	return corsConfig
}

func CorsMiddleware(production bool, allowedOrigins []string) gin.HandlerFunc {
	return cors.New(CorsConfig(production, allowedOrigins))
}
