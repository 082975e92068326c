package backend

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/sardorbek/darsxona/core"
	"github.com/sardorbek/darsxona/core/session"
)

type Test struct {
	ID        int        `json:"id"`
	Title     string     `json:"title"`
	GroupID   int        `json:"group_id,omitempty"`
	Questions []Question `json:"questions,omitempty"`
}

type Question struct {
	ID      int      `json:"id"`
	Text    string   `json:"text"`
	Options []Option `json:"options"`
}

type Option struct {
	ID      int    `json:"id"`
	Text    string `json:"text"`
	Correct bool   `json:"is_correct,omitempty"` // omitted for test takers
}

type TestForm struct {
	Title     string         `json:"title" validate:"required"`
	GroupID   int            `json:"group_id" validate:"omitempty,gt=0"`
	Questions []QuestionForm `json:"questions" validate:"required,min=1,dive"`
}

type QuestionForm struct {
	Text    string       `json:"text" validate:"required"`
	Options []OptionForm `json:"options" validate:"required,min=2,dive"`
}

type OptionForm struct {
	Text    string `json:"text" validate:"required"`
	Correct bool   `json:"is_correct"`
}

func (f *TestForm) Validate(validate *validator.Validate) error {
	f.Title = core.CleanString(f.Title)
	if err := validate.Struct(f); err != nil {
		return err
	}
	for i, q := range f.Questions {
		var correct int
		for _, o := range q.Options {
			if o.Correct {
				correct++
			}
		}
		if correct != 1 {
			fld := fmt.Sprintf("questions[%d]", i)
			return core.NewValidationError(nil, core.FieldError{Field: fld, Error: "exactly one option must be marked correct"})
		}
	}
	return nil
}

// TestSubmission is a student's answer sheet.
type TestSubmission struct {
	Answers []Answer `json:"answers" validate:"required,min=1,dive"`
}

type Answer struct {
	QuestionID int `json:"question_id" validate:"required,gt=0"`
	OptionID   int `json:"option_id" validate:"required,gt=0"`
}

func (f *TestSubmission) Validate(validate *validator.Validate) error {
	return validate.Struct(f)
}

// TestResult is one student's scored row; scoring is entirely server-side.
type TestResult struct {
	StudentID   int     `json:"student_id"`
	StudentName string  `json:"student_name,omitempty"`
	Correct     int     `json:"correct"`
	Total       int     `json:"total"`
	Score       float64 `json:"score"`
}

// DetailedResult shows one student's sheet question by question.
type DetailedResult struct {
	StudentID int              `json:"student_id"`
	Score     float64          `json:"score"`
	Answers   []AnsweredDetail `json:"answers"`
}

type AnsweredDetail struct {
	QuestionID      int    `json:"question_id"`
	QuestionText    string `json:"question_text"`
	ChosenOptionID  int    `json:"chosen_option_id"`
	CorrectOptionID int    `json:"correct_option_id"`
	Correct         bool   `json:"correct"`
}

func (c *Client) ListTests(ctx context.Context, sess session.Session) ([]Test, error) {
	var out []Test
	err := c.get(ctx, sess, "/tests", nil, &out)
	return out, err
}

func (c *Client) CreateTest(ctx context.Context, sess session.Session, f TestForm) (Test, error) {
	var out Test
	err := c.post(ctx, sess, "/tests", f, &out)
	return out, err
}

func (c *Client) GetTest(ctx context.Context, sess session.Session, id int) (Test, error) {
	var out Test
	err := c.get(ctx, sess, fmt.Sprintf("/tests/%d", id), nil, &out)
	return out, err
}

func (c *Client) SubmitTest(ctx context.Context, sess session.Session, id int, sub TestSubmission) (TestResult, error) {
	var out TestResult
	err := c.post(ctx, sess, fmt.Sprintf("/tests/%d/submit", id), sub, &out)
	return out, err
}

func (c *Client) TestResults(ctx context.Context, sess session.Session, id int) ([]TestResult, error) {
	var out []TestResult
	err := c.get(ctx, sess, fmt.Sprintf("/tests/%d/results", id), nil, &out)
	return out, err
}

func (c *Client) DetailedTestResult(ctx context.Context, sess session.Session, id, studentID int) (DetailedResult, error) {
	var out DetailedResult
	err := c.get(ctx, sess, fmt.Sprintf("/tests/%d/detailed_result/%d", id, studentID), nil, &out)
	return out, err
}
