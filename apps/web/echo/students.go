package webapp

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/sardorbek/darsxona/backend"
)

type studentsApi struct {
	deps *pageDeps
}

func registerStudentRoutes(g *echo.Group, deps *pageDeps) {
	api := studentsApi{deps: deps}
	g.GET("", api.list)
	g.POST("", api.submit)
	g.DELETE("/:id", api.destroy)
}

func (api *studentsApi) list(ctx echo.Context) error {
	students, err := api.deps.client.ListStudents(reqCtx(ctx), contextSession(ctx))
	if err != nil {
		return errors.Wrap(err, "listing students")
	}
	if students == nil {
		students = []backend.Student{}
	}
	return ctx.JSON(http.StatusOK, students)
}

func (api *studentsApi) submit(ctx echo.Context) error {
	var data backend.StudentForm
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to StudentForm")
	}
	if err := data.Validate(api.deps.validate); err != nil {
		return err
	}

	sess := contextSession(ctx)
	var err error
	if data.ID > 0 {
		_, err = api.deps.client.UpdateStudent(reqCtx(ctx), sess, data)
	} else {
		_, err = api.deps.client.CreateStudent(reqCtx(ctx), sess, data)
	}
	if err != nil {
		return errors.Wrap(err, "saving student")
	}

	students, err := api.deps.client.ListStudents(reqCtx(ctx), sess)
	if err != nil {
		return errors.Wrap(err, "reloading students")
	}
	code := http.StatusOK
	if data.ID == 0 {
		code = http.StatusCreated
	}
	return ctx.JSON(code, students)
}

func (api *studentsApi) destroy(ctx echo.Context) error {
	id, err := pathID(ctx, "id")
	if err != nil {
		return err
	}
	if !confirmed(ctx) {
		return errConfirmationRequired
	}

	sess := contextSession(ctx)
	if err = api.deps.client.DeleteStudent(reqCtx(ctx), sess, id); err != nil {
		return errors.Wrap(err, "deleting student")
	}

	students, err := api.deps.client.ListStudents(reqCtx(ctx), sess)
	if err != nil {
		return errors.Wrap(err, "reloading students")
	}
	if students == nil {
		students = []backend.Student{}
	}
	return ctx.JSON(http.StatusOK, students)
}
