package backend

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"

	"github.com/sardorbek/darsxona/core"
	"github.com/sardorbek/darsxona/core/session"
)

// ErrInvalidCredentials distinguishes a rejected login from an expired
// session: a 401 on the login call itself means bad credentials, not a stale
// token, and must not trigger the global session-clear path.
var ErrInvalidCredentials = errors.New("invalid credentials")

type Credentials struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

func (cr *Credentials) Validate(validate *validator.Validate) error {
	cr.Username = core.CleanString(cr.Username, true /* lower */)
	return validate.Struct(cr)
}

type LoginResult struct {
	AccessToken string `json:"access_token"`
	Role        string `json:"role"`
}

// Login obtains a bearer token; it is the only call issued without a session.
func (c *Client) Login(ctx context.Context, creds Credentials) (LoginResult, error) {
	var out LoginResult
	err := c.post(ctx, session.Session{}, "/auth/login", creds, &out)
	if errors.Cause(err) == ErrSessionExpired {
		return LoginResult{}, ErrInvalidCredentials
	}
	return out, err
}

// NewUser is the register form. Only admins and managers reach the page that
// submits it; the backend re-checks.
type NewUser struct {
	Name     string `json:"name" validate:"required"`
	Username string `json:"username" validate:"required,min=4,alphanum"`
	Phone    string `json:"phone" validate:"omitempty,phone_uz"`
	Password string `json:"password" validate:"required,min=6"`
	Role     string `json:"role" validate:"required,role"`
}

func (nu *NewUser) Validate(validate *validator.Validate) error {
	nu.Name = core.CleanString(nu.Name)
	nu.Username = core.CleanString(nu.Username, true /* lower */)
	nu.Phone = core.CleanString(nu.Phone)
	return validate.Struct(nu)
}

func (c *Client) Register(ctx context.Context, sess session.Session, nu NewUser) (User, error) {
	var out User
	err := c.post(ctx, sess, "/auth/register", nu, &out)
	return out, err
}
