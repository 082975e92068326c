package webapp

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/sardorbek/darsxona/backend"
	"github.com/sardorbek/darsxona/core"
)

type attendanceApi struct {
	deps *pageDeps
}

func registerAttendanceRoutes(g *echo.Group, deps *pageDeps) {
	api := attendanceApi{deps: deps}
	g.GET("", api.list)
	g.POST("", api.submit)
}

func (api *attendanceApi) list(ctx echo.Context) error {
	groupID, err := strconv.Atoi(ctx.QueryParam("group_id"))
	if err != nil || groupID <= 0 {
		return core.NewValidationError(nil, core.FieldError{Field: "group_id", Error: "this field is required"})
	}

	records, err := api.deps.client.ListAttendance(reqCtx(ctx), contextSession(ctx), groupID, ctx.QueryParam("date"))
	if err != nil {
		return errors.Wrap(err, "listing attendance")
	}
	if records == nil {
		records = []backend.AttendanceRecord{}
	}
	return ctx.JSON(http.StatusOK, records)
}

func (api *attendanceApi) submit(ctx echo.Context) error {
	var data backend.AttendanceForm
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to AttendanceForm")
	}
	if err := data.Validate(api.deps.validate); err != nil {
		return err
	}

	sess := contextSession(ctx)
	if err := api.deps.client.SaveAttendance(reqCtx(ctx), sess, data); err != nil {
		return errors.Wrap(err, "saving attendance")
	}

	records, err := api.deps.client.ListAttendance(reqCtx(ctx), sess, data.GroupID, data.Date)
	if err != nil {
		return errors.Wrap(err, "reloading attendance")
	}
	if records == nil {
		records = []backend.AttendanceRecord{}
	}
	return ctx.JSON(http.StatusOK, records)
}
