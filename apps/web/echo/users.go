package webapp

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/sardorbek/darsxona/backend"
	"github.com/sardorbek/darsxona/core"
)

type usersApi struct {
	deps *pageDeps
}

func registerUserRoutes(g *echo.Group, deps *pageDeps) {
	api := usersApi{deps: deps}
	g.GET("", api.list)
	g.POST("", api.submit)
}

func (api *usersApi) list(ctx echo.Context) error {
	users, err := api.deps.client.ListUsers(reqCtx(ctx), contextSession(ctx))
	if err != nil {
		return errors.Wrap(err, "listing users")
	}
	if users == nil {
		users = []backend.User{}
	}
	return ctx.JSON(http.StatusOK, users)
}

// submit updates an existing user whole; creation goes through /register.
func (api *usersApi) submit(ctx echo.Context) error {
	var data backend.UserForm
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to UserForm")
	}
	if data.ID == 0 {
		return core.NewValidationError(nil, core.FieldError{Field: "id", Error: "users are created on the register page"})
	}
	if err := data.Validate(api.deps.validate); err != nil {
		return err
	}

	sess := contextSession(ctx)
	if _, err := api.deps.client.UpdateUser(reqCtx(ctx), sess, data); err != nil {
		return errors.Wrap(err, "updating user")
	}

	users, err := api.deps.client.ListUsers(reqCtx(ctx), sess)
	if err != nil {
		return errors.Wrap(err, "reloading users")
	}
	return ctx.JSON(http.StatusOK, users)
}
