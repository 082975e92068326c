package backend

import (
	"context"
	"net/url"

	"github.com/go-playground/validator/v10"

	"github.com/sardorbek/darsxona/core"
	"github.com/sardorbek/darsxona/core/session"
)

type Payment struct {
	ID          int     `json:"id"`
	StudentID   int     `json:"student_id"`
	StudentName string  `json:"student_name,omitempty"`
	GroupID     int     `json:"group_id,omitempty"`
	Amount      float64 `json:"amount"`
	Method      string  `json:"method"` // cash | card | transfer
	Date        string  `json:"date"`   // "YYYY-MM-DD"
	Note        string  `json:"note,omitempty"`
}

type PaymentForm struct {
	StudentID int     `json:"student_id" validate:"required,gt=0"`
	GroupID   int     `json:"group_id" validate:"omitempty,gt=0"`
	Amount    float64 `json:"amount" validate:"required,gt=0"`
	Method    string  `json:"method" validate:"required,oneof=cash card transfer"`
	Date      string  `json:"date" validate:"required,datetime=2006-01-02"`
	Note      string  `json:"note"`
}

func (f *PaymentForm) Validate(validate *validator.Validate) error {
	f.Note = core.CleanString(f.Note)
	return validate.Struct(f)
}

// ListPayments fetches the payments collection, optionally narrowed to one
// "YYYY-MM" month.
func (c *Client) ListPayments(ctx context.Context, sess session.Session, month string) ([]Payment, error) {
	var query url.Values
	if month != "" {
		query = url.Values{"month": {month}}
	}
	var out []Payment
	err := c.get(ctx, sess, "/payments", query, &out)
	return out, err
}

func (c *Client) CreatePayment(ctx context.Context, sess session.Session, f PaymentForm) (Payment, error) {
	var out Payment
	err := c.post(ctx, sess, "/payments", f, &out)
	return out, err
}
