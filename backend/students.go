package backend

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/sardorbek/darsxona/core"
	"github.com/sardorbek/darsxona/core/session"
)

type Student struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	Phone     string `json:"phone,omitempty"`
	GroupID   int    `json:"group_id,omitempty"`
	GroupName string `json:"group_name,omitempty"`
	Status    string `json:"status,omitempty"` // active | paused | left
}

type StudentForm struct {
	ID      int    `json:"id,omitempty"`
	Name    string `json:"name" validate:"required"`
	Phone   string `json:"phone" validate:"required,phone_uz"`
	GroupID int    `json:"group_id" validate:"omitempty,gt=0"`
	Status  string `json:"status" validate:"omitempty,oneof=active paused left"`
}

func (f *StudentForm) Validate(validate *validator.Validate) error {
	f.Name = core.CleanString(f.Name)
	f.Phone = core.CleanString(f.Phone)
	return validate.Struct(f)
}

func (c *Client) ListStudents(ctx context.Context, sess session.Session) ([]Student, error) {
	var out []Student
	err := c.get(ctx, sess, "/students", nil, &out)
	return out, err
}

func (c *Client) CreateStudent(ctx context.Context, sess session.Session, f StudentForm) (Student, error) {
	var out Student
	err := c.post(ctx, sess, "/students", f, &out)
	return out, err
}

func (c *Client) UpdateStudent(ctx context.Context, sess session.Session, f StudentForm) (Student, error) {
	var out Student
	err := c.put(ctx, sess, fmt.Sprintf("/students/%d", f.ID), f, &out)
	return out, err
}

func (c *Client) DeleteStudent(ctx context.Context, sess session.Session, id int) error {
	return c.del(ctx, sess, fmt.Sprintf("/students/%d", id))
}
