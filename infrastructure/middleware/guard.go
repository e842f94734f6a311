package middlewares

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"vaultline.io/application/constants"
	"vaultline.io/application/interfaces"
	"vaultline.io/application/middlewares"
	"vaultline.io/infrastructure/session"
)

// SessionID pulls the browser session cookie; an empty string means
// no session has ever been established from this browser.
func SessionID(ctx *gin.Context) string {
	sid, err := ctx.Cookie(constants.SessionCookieName)
	if err != nil {
		return ""
	}
	return sid
}

func ClientGuardMiddleware() gin.HandlerFunc {
	return guardMiddleware(middlewares.ClientGuard)
}

func AgentGuardMiddleware() gin.HandlerFunc {
	return guardMiddleware(middlewares.AgentGuard)
}

func AdminGuardMiddleware() gin.HandlerFunc {
	return guardMiddleware(middlewares.AdminGuard)
}

func guardMiddleware(guard func(store session.Store, sid string) middlewares.GuardResult) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		sid := SessionID(ctx)
		result := guard(session.DefaultStore, sid)
		if !result.Allowed {
			ctx.Redirect(http.StatusFound, result.RedirectTo)
			ctx.Abort()
			return
		}
		ctx.Set("AppContext", &interfaces.ApplicationContext[any]{
			Ctx:       ctx,
			Keys:      ctx.Keys,
			Header:    ctx.Request.Header,
			SessionID: sid,
			UserAgent: ctx.Request.UserAgent(),
			Roles:     result.Roles,
		})
		ctx.Next()
	}
}
