package middlewares

import (
	"github.com/gin-gonic/gin"
	"vaultline.io/application/interfaces"
	"vaultline.io/infrastructure/useragent"
)

// UserAgentMiddleware parses the caller's user agent once so login
// auditing can describe the device without re-parsing.
func UserAgentMiddleware() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		parsed := useragent.ParseUserAgent(ctx.Request.UserAgent())
		ctx.Set("ParsedUserAgent", parsed)
		ctx.Set("AppContext", &interfaces.ApplicationContext[any]{
			Ctx:       ctx,
			Keys:      ctx.Keys,
			Header:    ctx.Request.Header,
			SessionID: SessionID(ctx),
			UserAgent: ctx.Request.UserAgent(),
		})
		ctx.Next()
	}
}
