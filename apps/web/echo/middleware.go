package webapp

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/sardorbek/darsxona/core/session"
)

const contextSessionKey = "session"

// loadSession reads the actor's session from the store into the request
// context once; the gate and every handler consume this copy instead of
// reading browser storage ad hoc.
func loadSession(store session.Store) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			sess, err := store.Load(ctx.Request())
			if err != nil {
				return errors.Wrap(err, "loading session")
			}
			ctx.Set(contextSessionKey, sess)
			return next(ctx)
		}
	}
}

func contextSession(ctx echo.Context) session.Session {
	sess, _ := ctx.Get(contextSessionKey).(session.Session)
	return sess
}

// routeGate applies the role policy, evaluated fresh on every request.
func routeGate() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			switch session.CheckRoute(ctx.Request().URL.Path, contextSession(ctx)) {
			case session.RedirectLogin:
				return ctx.Redirect(http.StatusSeeOther, session.LoginPath)
			case session.RedirectDashboard:
				return ctx.Redirect(http.StatusSeeOther, session.DashboardPath)
			}
			return next(ctx)
		}
	}
}
