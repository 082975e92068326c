package webapp

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/sardorbek/darsxona/backend"
)

type coursesApi struct {
	deps *pageDeps
}

func registerCourseRoutes(g *echo.Group, deps *pageDeps) {
	api := coursesApi{deps: deps}
	g.GET("", api.list)
	g.POST("", api.submit)
}

func (api *coursesApi) list(ctx echo.Context) error {
	courses, err := api.deps.client.ListCourses(reqCtx(ctx), contextSession(ctx))
	if err != nil {
		return errors.Wrap(err, "listing courses")
	}
	if courses == nil {
		courses = []backend.Course{}
	}
	return ctx.JSON(http.StatusOK, courses)
}

func (api *coursesApi) submit(ctx echo.Context) error {
	var data backend.CourseForm
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to CourseForm")
	}
	if err := data.Validate(api.deps.validate); err != nil {
		return err
	}

	sess := contextSession(ctx)
	if _, err := api.deps.client.CreateCourse(reqCtx(ctx), sess, data); err != nil {
		return errors.Wrap(err, "creating course")
	}

	// re-fetch instead of patching the created record in
	courses, err := api.deps.client.ListCourses(reqCtx(ctx), sess)
	if err != nil {
		return errors.Wrap(err, "reloading courses")
	}
	return ctx.JSON(http.StatusCreated, courses)
}
