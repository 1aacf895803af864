package middlewares

import (
	apperrors "stockroom.io/application/appErrors"
	"stockroom.io/application/interfaces"
	"stockroom.io/infrastructure/useragent"
	"github.com/gin-gonic/gin"
)

// UserAgentMiddleware rejects bot traffic and stamps the parsed user agent
// on the request context.
func UserAgentMiddleware() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		rawUserAgent := ctx.Request.UserAgent()
		if rawUserAgent == "" {
			apperrors.MalformedHeader(ctx)
			return
		}
		parsed := useragent.ParseUserAgent(rawUserAgent)
		if parsed.Bot {
			apperrors.UnsupportedUserAgent(ctx)
			return
		}
		appContext := &interfaces.ApplicationContext[any]{
			Ctx:       ctx,
			Keys:      map[string]any{},
			Header:    ctx.Request.Header,
			UserAgent: rawUserAgent,
		}
		ctx.Set("AppContext", appContext)
		ctx.Next()
	}
}
