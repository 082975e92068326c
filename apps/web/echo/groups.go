package webapp

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/sardorbek/darsxona/backend"
)

type groupsApi struct {
	deps *pageDeps
}

func registerGroupRoutes(g *echo.Group, deps *pageDeps) {
	api := groupsApi{deps: deps}
	g.GET("", api.list)
	g.GET("/lookups", api.lookups)
	g.POST("", api.submit)
	g.DELETE("/:id", api.destroy)
}

// list serves the page's primary collection plus the course lookup it needs
// on mount.
func (api *groupsApi) list(ctx echo.Context) error {
	sess := contextSession(ctx)

	groups, err := api.deps.client.ListGroups(reqCtx(ctx), sess)
	if err != nil {
		return errors.Wrap(err, "listing groups")
	}
	courses, err := api.deps.client.GroupCourses(reqCtx(ctx), sess)
	if err != nil {
		return errors.Wrap(err, "listing group courses")
	}
	if groups == nil {
		groups = []backend.Group{}
	}
	if courses == nil {
		courses = []backend.Course{}
	}
	return ctx.JSON(http.StatusOK, echo.Map{"groups": groups, "courses": courses})
}

// lookups serves the teacher/student choices for one selected course.
func (api *groupsApi) lookups(ctx echo.Context) error {
	courseID, err := strconv.Atoi(ctx.QueryParam("course_id"))
	if err != nil || courseID <= 0 {
		return errHttpNotFound
	}
	sess := contextSession(ctx)

	teachers, err := api.deps.client.EligibleTeachers(reqCtx(ctx), sess, courseID)
	if err != nil {
		return errors.Wrap(err, "listing eligible teachers")
	}
	students, err := api.deps.client.EligibleStudents(reqCtx(ctx), sess, courseID)
	if err != nil {
		return errors.Wrap(err, "listing eligible students")
	}
	if teachers == nil {
		teachers = []backend.User{}
	}
	if students == nil {
		students = []backend.Student{}
	}
	return ctx.JSON(http.StatusOK, echo.Map{"teachers": teachers, "students": students})
}

func (api *groupsApi) submit(ctx echo.Context) error {
	var data backend.GroupForm
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to GroupForm")
	}
	if err := data.Validate(api.deps.validate); err != nil {
		return err
	}

	sess := contextSession(ctx)
	var err error
	if data.ID > 0 {
		_, err = api.deps.client.UpdateGroup(reqCtx(ctx), sess, data)
	} else {
		_, err = api.deps.client.CreateGroup(reqCtx(ctx), sess, data)
	}
	if err != nil {
		return errors.Wrap(err, "saving group")
	}

	groups, err := api.deps.client.ListGroups(reqCtx(ctx), sess)
	if err != nil {
		return errors.Wrap(err, "reloading groups")
	}
	code := http.StatusOK
	if data.ID == 0 {
		code = http.StatusCreated
	}
	return ctx.JSON(code, groups)
}

func (api *groupsApi) destroy(ctx echo.Context) error {
	id, err := pathID(ctx, "id")
	if err != nil {
		return err
	}
	if !confirmed(ctx) {
		return errConfirmationRequired
	}

	sess := contextSession(ctx)
	if err = api.deps.client.DeleteGroup(reqCtx(ctx), sess, id); err != nil {
		return errors.Wrap(err, "deleting group")
	}

	groups, err := api.deps.client.ListGroups(reqCtx(ctx), sess)
	if err != nil {
		return errors.Wrap(err, "reloading groups")
	}
	if groups == nil {
		groups = []backend.Group{}
	}
	return ctx.JSON(http.StatusOK, groups)
}
