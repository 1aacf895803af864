package middlewares

import (
	"net/http"
	"regexp"

	"github.com/gin-gonic/gin"
)

const RouteGateCookieName = "auth-token"

// exempt paths: the login page itself, the health check, anything
// API-prefixed, static assets and the favicon. expressed as a single pattern, mirroring the client's
// matcher exclusion rule.
var routeGateExemptPattern = regexp.MustCompile(`^/(?:login$|ping$|api/|assets/|favicon\.ico$)`)

// RouteGateMiddleware is the edge half of the route guard. It only checks
// that the auth cookie is present. The cookie is a hint, not a source of
// truth - a stale value passes here and is caught by the session resolver.
func RouteGateMiddleware(loginPath string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if routeGateExemptPattern.MatchString(ctx.Request.URL.Path) {
			ctx.Next()
			return
		}
		cookie, err := ctx.Cookie(RouteGateCookieName)
		if err != nil || cookie == "" {
			ctx.Redirect(http.StatusFound, loginPath)
			ctx.Abort()
			return
		}
		ctx.Next()
	}
}
