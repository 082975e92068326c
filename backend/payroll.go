package backend

import (
	"context"
	"fmt"
	"net/url"

	"github.com/go-playground/validator/v10"

	"github.com/sardorbek/darsxona/core/session"
)

// PayrollRow is a computed salary line; all the arithmetic happens on the
// backend, the gateway only displays it.
type PayrollRow struct {
	ID          int     `json:"id"`
	TeacherID   int     `json:"teacher_id"`
	TeacherName string  `json:"teacher_name,omitempty"`
	Month       string  `json:"month"` // "YYYY-MM"
	Lessons     int     `json:"lessons"`
	Amount      float64 `json:"amount"`
	Paid        bool    `json:"paid"`
}

type SalarySettings struct {
	Mode       string  `json:"mode"` // fixed | per_lesson | percent
	BaseAmount float64 `json:"base_amount"`
	Percent    float64 `json:"percent"`
}

type SalarySettingsForm struct {
	Mode       string  `json:"mode" validate:"required,oneof=fixed per_lesson percent"`
	BaseAmount float64 `json:"base_amount" validate:"omitempty,gte=0"`
	Percent    float64 `json:"percent" validate:"omitempty,gte=0,lte=100"`
}

func (f *SalarySettingsForm) Validate(validate *validator.Validate) error {
	return validate.Struct(f)
}

func (c *Client) Payroll(ctx context.Context, sess session.Session, month string) ([]PayrollRow, error) {
	var out []PayrollRow
	err := c.get(ctx, sess, "/payroll", url.Values{"month": {month}}, &out)
	return out, err
}

// CalculatePayroll asks the backend to (re)compute the month's rows.
func (c *Client) CalculatePayroll(ctx context.Context, sess session.Session, month string) error {
	return c.post(ctx, sess, "/payroll/calculate", map[string]string{"month": month}, nil)
}

// PayPayroll marks one row as paid out.
func (c *Client) PayPayroll(ctx context.Context, sess session.Session, id int) error {
	return c.post(ctx, sess, fmt.Sprintf("/payroll/%d/pay", id), nil, nil)
}

func (c *Client) SalarySettings(ctx context.Context, sess session.Session) (SalarySettings, error) {
	var out SalarySettings
	err := c.get(ctx, sess, "/payroll/salary/settings", nil, &out)
	return out, err
}

func (c *Client) UpdateSalarySettings(ctx context.Context, sess session.Session, f SalarySettingsForm) (SalarySettings, error) {
	var out SalarySettings
	err := c.put(ctx, sess, "/payroll/salary/settings", f, &out)
	return out, err
}
