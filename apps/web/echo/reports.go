package webapp

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/sardorbek/darsxona/backend"
)

type reportsApi struct {
	deps *pageDeps
}

func registerReportRoutes(g *echo.Group, deps *pageDeps) {
	api := reportsApi{deps: deps}
	g.GET("", api.summary)
	g.GET("/trend", api.trend)
	g.GET("/export", api.export)
}

func (api *reportsApi) summary(ctx echo.Context) error {
	summary, err := api.deps.client.ReportSummary(reqCtx(ctx), contextSession(ctx), ctx.QueryParam("period"))
	if err != nil {
		return errors.Wrap(err, "fetching report summary")
	}
	return ctx.JSON(http.StatusOK, summary)
}

func (api *reportsApi) trend(ctx echo.Context) error {
	trend, err := api.deps.client.ReportTrend(reqCtx(ctx), contextSession(ctx))
	if err != nil {
		return errors.Wrap(err, "fetching report trend")
	}
	if trend == nil {
		trend = []backend.TrendPoint{}
	}
	return ctx.JSON(http.StatusOK, trend)
}

// export streams the backend's generated file through unchanged.
func (api *reportsApi) export(ctx echo.Context) error {
	exp, err := api.deps.client.ExportReport(reqCtx(ctx), contextSession(ctx), ctx.QueryParam("period"), ctx.QueryParam("format"))
	if err != nil {
		return errors.Wrap(err, "exporting report")
	}
	if exp.Disposition != "" {
		ctx.Response().Header().Set(echo.HeaderContentDisposition, exp.Disposition)
	}
	contentType := exp.ContentType
	if contentType == "" {
		contentType = echo.MIMEOctetStream
	}
	return ctx.Blob(http.StatusOK, contentType, exp.Data)
}
