package backend

import (
	"context"
	"net/url"
	"strconv"

	"github.com/go-playground/validator/v10"

	"github.com/sardorbek/darsxona/core/session"
)

type AttendanceRecord struct {
	ID          int    `json:"id"`
	StudentID   int    `json:"student_id"`
	StudentName string `json:"student_name,omitempty"`
	GroupID     int    `json:"group_id"`
	Date        string `json:"date"` // "YYYY-MM-DD"
	Present     bool   `json:"present"`
}

// AttendanceForm marks a whole group for one date in a single submission.
type AttendanceForm struct {
	GroupID int              `json:"group_id" validate:"required,gt=0"`
	Date    string           `json:"date" validate:"required,datetime=2006-01-02"`
	Marks   []AttendanceMark `json:"marks" validate:"required,min=1,dive"`
}

type AttendanceMark struct {
	StudentID int  `json:"student_id" validate:"required,gt=0"`
	Present   bool `json:"present"`
}

func (f *AttendanceForm) Validate(validate *validator.Validate) error {
	return validate.Struct(f)
}

func (c *Client) ListAttendance(ctx context.Context, sess session.Session, groupID int, date string) ([]AttendanceRecord, error) {
	query := url.Values{"group_id": {strconv.Itoa(groupID)}}
	if date != "" {
		query.Set("date", date)
	}
	var out []AttendanceRecord
	err := c.get(ctx, sess, "/attendance", query, &out)
	return out, err
}

func (c *Client) SaveAttendance(ctx context.Context, sess session.Session, f AttendanceForm) error {
	return c.post(ctx, sess, "/attendance", f, nil)
}
