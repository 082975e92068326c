package webapp

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/sardorbek/darsxona/backend"
)

type testsApi struct {
	deps *pageDeps
}

func registerTestRoutes(g *echo.Group, deps *pageDeps) {
	api := testsApi{deps: deps}
	g.GET("", api.list)
	g.POST("", api.submit)
	g.GET("/:id", api.retrieve)
	g.POST("/:id/topshirish", api.take)
	g.GET("/:id/natijalar", api.results)
	g.GET("/:id/natijalar/:studentId", api.detailedResult)
}

func (api *testsApi) list(ctx echo.Context) error {
	tests, err := api.deps.client.ListTests(reqCtx(ctx), contextSession(ctx))
	if err != nil {
		return errors.Wrap(err, "listing tests")
	}
	if tests == nil {
		tests = []backend.Test{}
	}
	return ctx.JSON(http.StatusOK, tests)
}

func (api *testsApi) submit(ctx echo.Context) error {
	var data backend.TestForm
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to TestForm")
	}
	if err := data.Validate(api.deps.validate); err != nil {
		return err
	}

	sess := contextSession(ctx)
	if _, err := api.deps.client.CreateTest(reqCtx(ctx), sess, data); err != nil {
		return errors.Wrap(err, "creating test")
	}

	tests, err := api.deps.client.ListTests(reqCtx(ctx), sess)
	if err != nil {
		return errors.Wrap(err, "reloading tests")
	}
	return ctx.JSON(http.StatusCreated, tests)
}

func (api *testsApi) retrieve(ctx echo.Context) error {
	id, err := pathID(ctx, "id")
	if err != nil {
		return err
	}
	test, err := api.deps.client.GetTest(reqCtx(ctx), contextSession(ctx), id)
	if err != nil {
		return errors.Wrap(err, "fetching test")
	}
	return ctx.JSON(http.StatusOK, test)
}

// take submits a student's answer sheet and returns the backend's scoring.
func (api *testsApi) take(ctx echo.Context) error {
	id, err := pathID(ctx, "id")
	if err != nil {
		return err
	}
	var data backend.TestSubmission
	if err = ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to TestSubmission")
	}
	if err = data.Validate(api.deps.validate); err != nil {
		return err
	}

	result, err := api.deps.client.SubmitTest(reqCtx(ctx), contextSession(ctx), id, data)
	if err != nil {
		return errors.Wrap(err, "submitting test")
	}
	return ctx.JSON(http.StatusOK, result)
}

func (api *testsApi) results(ctx echo.Context) error {
	id, err := pathID(ctx, "id")
	if err != nil {
		return err
	}
	results, err := api.deps.client.TestResults(reqCtx(ctx), contextSession(ctx), id)
	if err != nil {
		return errors.Wrap(err, "fetching test results")
	}
	if results == nil {
		results = []backend.TestResult{}
	}
	return ctx.JSON(http.StatusOK, results)
}

func (api *testsApi) detailedResult(ctx echo.Context) error {
	id, err := pathID(ctx, "id")
	if err != nil {
		return err
	}
	studentID, err := pathID(ctx, "studentId")
	if err != nil {
		return err
	}
	result, err := api.deps.client.DetailedTestResult(reqCtx(ctx), contextSession(ctx), id, studentID)
	if err != nil {
		return errors.Wrap(err, "fetching detailed result")
	}
	return ctx.JSON(http.StatusOK, result)
}
