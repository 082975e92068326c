package backend

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/sardorbek/darsxona/core"
	"github.com/sardorbek/darsxona/core/session"
)

type Group struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	CourseID    int    `json:"course_id"`
	CourseName  string `json:"course_name,omitempty"`
	TeacherID   int    `json:"teacher_id"`
	TeacherName string `json:"teacher_name,omitempty"`
	StudentIDs  []int  `json:"student_ids,omitempty"`
	StartTime   string `json:"start_time,omitempty"`
}

// GroupForm creates or (when ID is set) updates a group whole, the way the
// page sends it back.
type GroupForm struct {
	ID         int    `json:"id,omitempty"`
	Name       string `json:"name" validate:"required"`
	CourseID   int    `json:"course_id" validate:"required,gt=0"`
	TeacherID  int    `json:"teacher_id" validate:"required,gt=0"`
	StudentIDs []int  `json:"student_ids" validate:"omitempty,dive,gt=0"`
	StartTime  string `json:"start_time" validate:"omitempty,timeofday"`
}

func (f *GroupForm) Validate(validate *validator.Validate) error {
	f.Name = core.CleanString(f.Name)
	return validate.Struct(f)
}

func (c *Client) ListGroups(ctx context.Context, sess session.Session) ([]Group, error) {
	var out []Group
	err := c.get(ctx, sess, "/groups", nil, &out)
	return out, err
}

func (c *Client) CreateGroup(ctx context.Context, sess session.Session, f GroupForm) (Group, error) {
	var out Group
	err := c.post(ctx, sess, "/groups", f, &out)
	return out, err
}

func (c *Client) UpdateGroup(ctx context.Context, sess session.Session, f GroupForm) (Group, error) {
	var out Group
	err := c.put(ctx, sess, fmt.Sprintf("/groups/%d", f.ID), f, &out)
	return out, err
}

func (c *Client) DeleteGroup(ctx context.Context, sess session.Session, id int) error {
	return c.del(ctx, sess, fmt.Sprintf("/groups/%d", id))
}

// GroupCourses is the lookup collection the groups page loads on mount: the
// courses a group may be attached to.
func (c *Client) GroupCourses(ctx context.Context, sess session.Session) ([]Course, error) {
	var out []Course
	err := c.get(ctx, sess, "/groups/courses", nil, &out)
	return out, err
}

// EligibleTeachers lists teachers who may take a group of the given course.
func (c *Client) EligibleTeachers(ctx context.Context, sess session.Session, courseID int) ([]User, error) {
	var out []User
	err := c.get(ctx, sess, fmt.Sprintf("/groups/teachers/%d", courseID), nil, &out)
	return out, err
}

// EligibleStudents lists students who may join a group of the given course.
func (c *Client) EligibleStudents(ctx context.Context, sess session.Session, courseID int) ([]Student, error) {
	var out []Student
	err := c.get(ctx, sess, fmt.Sprintf("/groups/students/%d", courseID), nil, &out)
	return out, err
}
