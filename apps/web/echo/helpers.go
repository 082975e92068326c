package webapp

import (
	"context"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/sardorbek/darsxona/core"
)

func reqCtx(ctx echo.Context) context.Context {
	return ctx.Request().Context()
}

// pathID parses the ":id" route param; errHttpNotFound for anything that is
// not a positive integer.
func pathID(ctx echo.Context, name string) (int, error) {
	id, err := strconv.Atoi(ctx.Param(name))
	if err != nil || id <= 0 {
		return 0, errHttpNotFound
	}
	return id, nil
}

// confirmed reports whether the request carries the explicit confirmation a
// destructive action requires. Without it no backend call may be issued.
func confirmed(ctx echo.Context) bool {
	return ctx.QueryParam("confirm") == "true"
}

var errConfirmationRequired = core.NewValidationError(errors.New("deletion must be confirmed"))
