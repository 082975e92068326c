package backend

import (
	"context"

	"github.com/go-playground/validator/v10"

	"github.com/sardorbek/darsxona/core"
	"github.com/sardorbek/darsxona/core/session"
)

// Course mirrors the backend record; it lives only for a page's lifetime.
type Course struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Price       float64 `json:"price"`
	Months      int     `json:"duration_months,omitempty"`
}

type CourseForm struct {
	Name        string  `json:"name" validate:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price" validate:"required,gt=0"`
	Months      int     `json:"duration_months" validate:"omitempty,gte=1"`
}

func (f *CourseForm) Validate(validate *validator.Validate) error {
	f.Name = core.CleanString(f.Name)
	f.Description = core.CleanString(f.Description)
	return validate.Struct(f)
}

func (c *Client) ListCourses(ctx context.Context, sess session.Session) ([]Course, error) {
	var out []Course
	err := c.get(ctx, sess, "/courses", nil, &out)
	return out, err
}

func (c *Client) CreateCourse(ctx context.Context, sess session.Session, f CourseForm) (Course, error) {
	var out Course
	err := c.post(ctx, sess, "/courses", f, &out)
	return out, err
}
