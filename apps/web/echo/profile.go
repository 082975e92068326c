package webapp

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/sardorbek/darsxona/backend"
)

type profileApi struct {
	deps *pageDeps
}

func registerProfileRoutes(g *echo.Group, deps *pageDeps) {
	api := profileApi{deps: deps}
	g.GET("", api.retrieve)
	g.POST("", api.update)
}

func (api *profileApi) retrieve(ctx echo.Context) error {
	me, err := api.deps.client.Me(reqCtx(ctx), contextSession(ctx))
	if err != nil {
		return errors.Wrap(err, "fetching profile")
	}
	return ctx.JSON(http.StatusOK, me)
}

// update lets the actor edit their own record; the form's id is pinned to
// the session so nobody edits someone else from here.
func (api *profileApi) update(ctx echo.Context) error {
	var data backend.UserForm
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to UserForm")
	}
	sess := contextSession(ctx)
	data.ID = sess.UserID
	data.Role = string(sess.Role)
	if err := data.Validate(api.deps.validate); err != nil {
		return err
	}

	if _, err := api.deps.client.UpdateUser(reqCtx(ctx), sess, data); err != nil {
		return errors.Wrap(err, "updating profile")
	}

	me, err := api.deps.client.Me(reqCtx(ctx), sess)
	if err != nil {
		return errors.Wrap(err, "reloading profile")
	}
	return ctx.JSON(http.StatusOK, me)
}
