package middleware

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// ConfigCORS applies the allow-list in domains to preflight and regular
// requests. When the list is empty or contains "*", every response is stamped
// with Access-Control-Allow-Origin "*" and credentials allowed, which legacy
// clients expect.
func ConfigCORS(domains []string) gin.HandlerFunc {
	allowAll := len(domains) == 0 || contains(domains, "*")

	conf := cors.DefaultConfig()
	if allowAll {
		conf.AllowOriginFunc = func(string) bool { return true }
	} else {
		conf.AllowOrigins = domains
	}
	conf.AllowCredentials = true
	conf.AllowHeaders = append(conf.AllowHeaders, "Authorization", "X-Request-ID")
	conf.ExposeHeaders = []string{"X-Request-ID"}

	applyCORS := cors.New(conf)

	return func(ctx *gin.Context) {
		applyCORS(ctx)
		if ctx.IsAborted() || !allowAll {
			return
		}

		ctx.Header("Access-Control-Allow-Origin", "*")
		ctx.Header("Access-Control-Allow-Credentials", "true")
	}
}

func contains(values []string, target string) bool {
	for _, v := range values {
		if v == target {
			return true
		}
	}

	return false
}
