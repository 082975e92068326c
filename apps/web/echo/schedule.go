package webapp

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/sardorbek/darsxona/backend"
	"github.com/sardorbek/darsxona/core/schedule"
	"github.com/sardorbek/darsxona/core/session"
)

type scheduleApi struct {
	deps  *pageDeps
	slots []schedule.Slot
}

func registerScheduleRoutes(g *echo.Group, deps *pageDeps) {
	api := scheduleApi{deps: deps, slots: schedule.DefaultSlots()}
	g.GET("", api.grid)
	g.POST("", api.submit)
	g.POST("/:id/move", api.move)
	g.DELETE("/:id", api.destroy)
}

// gridView is the page's view-model: the 7×N matrix plus its axes.
type gridView struct {
	Days  []schedule.Day      `json:"days"`
	Slots []schedule.Slot     `json:"slots"`
	Cells [][]*schedule.Entry `json:"cells"`
}

func (api *scheduleApi) fetchGrid(ctx echo.Context, sess session.Session) (*schedule.Grid, []schedule.Entry, error) {
	entries, err := api.deps.client.ListSchedules(reqCtx(ctx), sess)
	if err != nil {
		return nil, nil, errors.Wrap(err, "listing schedule entries")
	}
	return schedule.NewGrid(api.slots, entries), entries, nil
}

func (api *scheduleApi) renderGrid(ctx echo.Context, code int, g *schedule.Grid) error {
	return ctx.JSON(code, gridView{Days: schedule.Week, Slots: g.Slots, Cells: g.Matrix()})
}

func (api *scheduleApi) grid(ctx echo.Context) error {
	g, _, err := api.fetchGrid(ctx, contextSession(ctx))
	if err != nil {
		return err
	}
	return api.renderGrid(ctx, http.StatusOK, g)
}

// submit creates an entry, or updates one whole when the form carries an id.
// Editing is subject to the ownership rule on the entry as the backend
// currently has it, not as the form claims it.
func (api *scheduleApi) submit(ctx echo.Context) error {
	var data backend.ScheduleForm
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to ScheduleForm")
	}
	if err := data.Validate(api.deps.validate); err != nil {
		return err
	}

	sess := contextSession(ctx)
	if !session.CanManageScheduleEntry(sess, data.TeacherID) {
		return errHttpForbidden
	}

	if data.ID > 0 {
		_, entries, err := api.fetchGrid(ctx, sess)
		if err != nil {
			return err
		}
		current, ok := findEntry(entries, data.ID)
		if !ok {
			return errHttpNotFound
		}
		if !session.CanManageScheduleEntry(sess, current.TeacherID) {
			return errHttpForbidden
		}
		if _, err = api.deps.client.UpdateSchedule(reqCtx(ctx), sess, data); err != nil {
			return errors.Wrap(err, "updating schedule entry")
		}
	} else {
		if _, err := api.deps.client.CreateSchedule(reqCtx(ctx), sess, data); err != nil {
			return errors.Wrap(err, "creating schedule entry")
		}
	}

	g, _, err := api.fetchGrid(ctx, sess)
	if err != nil {
		return err
	}
	code := http.StatusOK
	if data.ID == 0 {
		code = http.StatusCreated
	}
	return api.renderGrid(ctx, code, g)
}

// movePayload is the drop target's matrix coordinates.
type movePayload struct {
	Day  schedule.Day `json:"day_of_week"`
	Slot int          `json:"slot"`
}

// move relocates a dragged entry. The permission rule runs on the pure grid
// before the update is issued; a forbidden drag never reaches the backend.
// On success exactly one re-fetch renders the authoritative placement;
// whatever the drag looked like in the browser is irrelevant here.
func (api *scheduleApi) move(ctx echo.Context) error {
	id, err := pathID(ctx, "id")
	if err != nil {
		return err
	}
	var data movePayload
	if err = ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding move payload")
	}

	sess := contextSession(ctx)
	g, entries, err := api.fetchGrid(ctx, sess)
	if err != nil {
		return err
	}
	entry, ok := findEntry(entries, id)
	if !ok {
		return errHttpNotFound
	}

	mv, err := g.PlanMove(sess, entry, data.Day, data.Slot)
	switch errors.Cause(err) {
	case nil:
	case schedule.ErrNotPermitted:
		return echo.NewHTTPError(http.StatusForbidden, schedule.ErrNotPermitted.Error())
	case schedule.ErrNoSuchCell:
		return echo.NewHTTPError(http.StatusBadRequest, schedule.ErrNoSuchCell.Error())
	default:
		return errors.Wrap(err, "planning move")
	}

	if err = api.deps.client.MoveSchedule(reqCtx(ctx), sess, mv); err != nil {
		return errors.Wrap(err, "moving schedule entry")
	}

	g, _, err = api.fetchGrid(ctx, sess)
	if err != nil {
		return err
	}
	return api.renderGrid(ctx, http.StatusOK, g)
}

func (api *scheduleApi) destroy(ctx echo.Context) error {
	id, err := pathID(ctx, "id")
	if err != nil {
		return err
	}
	if !confirmed(ctx) {
		return errConfirmationRequired
	}

	sess := contextSession(ctx)
	_, entries, err := api.fetchGrid(ctx, sess)
	if err != nil {
		return err
	}
	entry, ok := findEntry(entries, id)
	if !ok {
		return errHttpNotFound
	}
	if !session.CanManageScheduleEntry(sess, entry.TeacherID) {
		return errHttpForbidden
	}

	if err = api.deps.client.DeleteSchedule(reqCtx(ctx), sess, id); err != nil {
		return errors.Wrap(err, "deleting schedule entry")
	}

	g, _, err := api.fetchGrid(ctx, sess)
	if err != nil {
		return err
	}
	return api.renderGrid(ctx, http.StatusOK, g)
}

func findEntry(entries []schedule.Entry, id int) (schedule.Entry, bool) {
	for _, e := range entries {
		if e.ID == id {
			return e, true
		}
	}
	return schedule.Entry{}, false
}
