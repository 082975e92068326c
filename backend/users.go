package backend

import (
	"context"

	"github.com/go-playground/validator/v10"

	"github.com/sardorbek/darsxona/core"
	"github.com/sardorbek/darsxona/core/session"
)

type User struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Username string `json:"username"`
	Phone    string `json:"phone,omitempty"`
	Role     string `json:"role"`
}

// UserForm updates a user whole; creation goes through /auth/register.
type UserForm struct {
	ID    int    `json:"id" validate:"required,gt=0"`
	Name  string `json:"name" validate:"required"`
	Phone string `json:"phone" validate:"omitempty,phone_uz"`
	Role  string `json:"role" validate:"required,role"`
}

func (f *UserForm) Validate(validate *validator.Validate) error {
	f.Name = core.CleanString(f.Name)
	f.Phone = core.CleanString(f.Phone)
	return validate.Struct(f)
}

func (c *Client) ListUsers(ctx context.Context, sess session.Session) ([]User, error) {
	var out []User
	err := c.get(ctx, sess, "/users", nil, &out)
	return out, err
}

func (c *Client) UpdateUser(ctx context.Context, sess session.Session, f UserForm) (User, error) {
	var out User
	err := c.put(ctx, sess, "/users", f, &out)
	return out, err
}

// Me fetches the acting user's own record for the profile page.
func (c *Client) Me(ctx context.Context, sess session.Session) (User, error) {
	var out User
	err := c.get(ctx, sess, "/users/me", nil, &out)
	return out, err
}
