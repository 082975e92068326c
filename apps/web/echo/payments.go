package webapp

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/sardorbek/darsxona/backend"
)

type paymentsApi struct {
	deps *pageDeps
}

func registerPaymentRoutes(g *echo.Group, deps *pageDeps) {
	api := paymentsApi{deps: deps}
	g.GET("", api.list)
	g.POST("", api.submit)
}

func (api *paymentsApi) list(ctx echo.Context) error {
	payments, err := api.deps.client.ListPayments(reqCtx(ctx), contextSession(ctx), ctx.QueryParam("month"))
	if err != nil {
		return errors.Wrap(err, "listing payments")
	}
	if payments == nil {
		payments = []backend.Payment{}
	}
	return ctx.JSON(http.StatusOK, payments)
}

func (api *paymentsApi) submit(ctx echo.Context) error {
	var data backend.PaymentForm
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to PaymentForm")
	}
	if err := data.Validate(api.deps.validate); err != nil {
		return err
	}

	sess := contextSession(ctx)
	if _, err := api.deps.client.CreatePayment(reqCtx(ctx), sess, data); err != nil {
		return errors.Wrap(err, "creating payment")
	}

	payments, err := api.deps.client.ListPayments(reqCtx(ctx), sess, ctx.QueryParam("month"))
	if err != nil {
		return errors.Wrap(err, "reloading payments")
	}
	return ctx.JSON(http.StatusCreated, payments)
}
