package backend

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/sardorbek/darsxona/core"
	"github.com/sardorbek/darsxona/core/schedule"
	"github.com/sardorbek/darsxona/core/session"
)

// ListSchedules fetches the entry set scoped to the session's role: teachers
// get their own entries, students their group's, everyone else the lot.
func (c *Client) ListSchedules(ctx context.Context, sess session.Session) ([]schedule.Entry, error) {
	path := "/schedules"
	switch sess.Role {
	case session.RoleTeacher:
		path = "/schedules/my"
	case session.RoleStudent:
		path = "/schedules/student"
	}
	var out []schedule.Entry
	err := c.get(ctx, sess, path, nil, &out)
	return out, err
}

type ScheduleForm struct {
	ID        int          `json:"id,omitempty"`
	GroupID   int          `json:"group_id" validate:"required,gt=0"`
	Day       schedule.Day `json:"day_of_week" validate:"required"`
	StartTime string       `json:"start_time" validate:"required,timeofday"`
	EndTime   string       `json:"end_time" validate:"required,timeofday"`
	Room      string       `json:"room"`
	TeacherID int          `json:"teacher_id" validate:"required,gt=0"`
}

func (f *ScheduleForm) Validate(validate *validator.Validate) error {
	f.Room = core.CleanString(f.Room)
	if err := validate.Struct(f); err != nil {
		return err
	}
	if !f.Day.Valid() {
		return core.NewValidationError(nil, core.FieldError{Field: "day_of_week", Error: "unknown day of week"})
	}
	return nil
}

func (c *Client) CreateSchedule(ctx context.Context, sess session.Session, f ScheduleForm) (schedule.Entry, error) {
	var out schedule.Entry
	err := c.post(ctx, sess, "/schedules", f, &out)
	return out, err
}

func (c *Client) UpdateSchedule(ctx context.Context, sess session.Session, f ScheduleForm) (schedule.Entry, error) {
	var out schedule.Entry
	err := c.put(ctx, sess, fmt.Sprintf("/schedules/%d", f.ID), f, &out)
	return out, err
}

// MoveSchedule submits only the day/time fields computed for a drag
// relocation; everything else about the entry stays as the backend has it.
func (c *Client) MoveSchedule(ctx context.Context, sess session.Session, mv schedule.Move) error {
	body := map[string]interface{}{
		"day_of_week": mv.Day,
		"start_time":  mv.StartTime,
		"end_time":    mv.EndTime,
	}
	return c.put(ctx, sess, fmt.Sprintf("/schedules/%d", mv.EntryID), body, nil)
}

func (c *Client) DeleteSchedule(ctx context.Context, sess session.Session, id int) error {
	return c.del(ctx, sess, fmt.Sprintf("/schedules/%d", id))
}
