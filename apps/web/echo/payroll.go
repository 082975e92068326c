package webapp

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/sardorbek/darsxona/backend"
	"github.com/sardorbek/darsxona/core"
)

type payrollApi struct {
	deps *pageDeps
}

func registerPayrollRoutes(g *echo.Group, deps *pageDeps) {
	api := payrollApi{deps: deps}
	g.GET("", api.list)
	g.POST("/calculate", api.calculate)
	g.POST("/:id/pay", api.pay)
	g.GET("/sozlamalar", api.settings)
	g.PUT("/sozlamalar", api.updateSettings)
}

// month returns the requested "YYYY-MM", defaulting to the current one.
func month(ctx echo.Context) string {
	if m := ctx.QueryParam("month"); m != "" {
		return m
	}
	return time.Now().Format("2006-01")
}

func (api *payrollApi) list(ctx echo.Context) error {
	rows, err := api.deps.client.Payroll(reqCtx(ctx), contextSession(ctx), month(ctx))
	if err != nil {
		return errors.Wrap(err, "listing payroll")
	}
	if rows == nil {
		rows = []backend.PayrollRow{}
	}
	return ctx.JSON(http.StatusOK, rows)
}

func (api *payrollApi) calculate(ctx echo.Context) error {
	var data struct {
		Month string `json:"month"`
	}
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding calculate request")
	}
	if data.Month == "" {
		return core.NewValidationError(nil, core.FieldError{Field: "month", Error: "this field is required"})
	}

	sess := contextSession(ctx)
	if err := api.deps.client.CalculatePayroll(reqCtx(ctx), sess, data.Month); err != nil {
		return errors.Wrap(err, "calculating payroll")
	}

	rows, err := api.deps.client.Payroll(reqCtx(ctx), sess, data.Month)
	if err != nil {
		return errors.Wrap(err, "reloading payroll")
	}
	return ctx.JSON(http.StatusOK, rows)
}

func (api *payrollApi) pay(ctx echo.Context) error {
	id, err := pathID(ctx, "id")
	if err != nil {
		return err
	}

	sess := contextSession(ctx)
	if err = api.deps.client.PayPayroll(reqCtx(ctx), sess, id); err != nil {
		return errors.Wrap(err, "paying payroll row")
	}

	rows, err := api.deps.client.Payroll(reqCtx(ctx), sess, month(ctx))
	if err != nil {
		return errors.Wrap(err, "reloading payroll")
	}
	return ctx.JSON(http.StatusOK, rows)
}

func (api *payrollApi) settings(ctx echo.Context) error {
	settings, err := api.deps.client.SalarySettings(reqCtx(ctx), contextSession(ctx))
	if err != nil {
		return errors.Wrap(err, "loading salary settings")
	}
	return ctx.JSON(http.StatusOK, settings)
}

func (api *payrollApi) updateSettings(ctx echo.Context) error {
	var data backend.SalarySettingsForm
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to SalarySettingsForm")
	}
	if err := data.Validate(api.deps.validate); err != nil {
		return err
	}

	sess := contextSession(ctx)
	if _, err := api.deps.client.UpdateSalarySettings(reqCtx(ctx), sess, data); err != nil {
		return errors.Wrap(err, "updating salary settings")
	}

	settings, err := api.deps.client.SalarySettings(reqCtx(ctx), sess)
	if err != nil {
		return errors.Wrap(err, "reloading salary settings")
	}
	return ctx.JSON(http.StatusOK, settings)
}
