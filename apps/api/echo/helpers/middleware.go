package helpers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/cardlect/cardlect/core/identity"
)

// GuardMiddleware gates a route group by role. The guard decision is
// re-evaluated on every request: no token redirects to the login entry
// point, a foreign role redirects to its own landing page. Content is never
// rendered for the wrong role and a mismatch is never an error.
func GuardMiddleware(required ...identity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			var sess *identity.Session
			if claims, err := GetContextClaims(ctx); err == nil {
				sess = ClaimsSession(claims)
			}
			decision := identity.Check(sess, required...)
			if !decision.Authorized {
				return ctx.Redirect(http.StatusSeeOther, decision.Redirect)
			}
			return next(ctx)
		}
	}
}
