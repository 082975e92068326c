// Package backend is the typed client of the remote REST API. It is the one
// place that attaches the bearer token to outbound calls and the one place
// that recognizes an authorization failure: a 401 from any endpoint comes
// back as ErrSessionExpired so the web layer can clear the session and send
// the browser to the login page exactly once. Pages never duplicate that
// logic.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"io/ioutil"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/sardorbek/darsxona/core"
	"github.com/sardorbek/darsxona/core/session"
)

// ErrSessionExpired is returned for any 401 response: the stored session is
// no longer honored by the backend.
var ErrSessionExpired = errors.New("session expired")

// Fallback messages surfaced when the backend supplies none. Nothing is ever
// retried automatically; the user retries the action manually.
const (
	fallbackErrMsg    = "request failed, please try again"
	unavailableErrMsg = "service temporarily unavailable"
)

// APIError is a backend-rejected request: the status to relay and the
// server-provided message to show verbatim when present.
type APIError struct {
	Code    int
	Message string
	cause   error
}

func (e *APIError) Error() string { return e.Message }
func (e *APIError) Unwrap() error { return e.cause }

type Client struct {
	base   string
	http   *http.Client
	logger core.Logger
}

func NewClient(conf *core.Config, logger core.Logger) *Client {
	return &Client{
		base:   strings.TrimRight(conf.API.BaseURL, "/"),
		http:   &http.Client{Timeout: conf.API.Timeout},
		logger: logger,
	}
}

// errorEnvelope covers the error payload shapes the backend is known to use.
type errorEnvelope struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Detail  string `json:"detail"`
}

func (env errorEnvelope) text() string {
	switch {
	case env.Error != "":
		return env.Error
	case env.Message != "":
		return env.Message
	case env.Detail != "":
		return env.Detail
	}
	return ""
}

func (c *Client) do(ctx context.Context, sess session.Session, method, path string, query url.Values, body, out interface{}) error {
	res, err := c.send(ctx, sess, method, path, query, body)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if err = checkStatus(res); err != nil {
		return err
	}
	if out != nil {
		if err = json.NewDecoder(res.Body).Decode(out); err != nil {
			return errors.Wrapf(err, "decoding %s %s response", method, path)
		}
	}
	return nil
}

func (c *Client) send(ctx context.Context, sess session.Session, method, path string, query url.Values, body interface{}) (*http.Response, error) {
	var buf io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, errors.Wrap(err, "encoding request body")
		}
		buf = bytes.NewReader(b)
	}

	u := c.base + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, method, u, buf)
	if err != nil {
		return nil, errors.Wrapf(err, "building %s %s request", method, path)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", uuid.New().String())
	if sess.Token != "" {
		req.Header.Set("Authorization", "Bearer "+sess.Token)
	}

	res, err := c.http.Do(req)
	if err != nil {
		// network failure or unreachable backend; same surfacing as any
		// other rejected call, with the generic message
		return nil, &APIError{Code: http.StatusServiceUnavailable, Message: unavailableErrMsg, cause: err}
	}
	return res, nil
}

func checkStatus(res *http.Response) error {
	if res.StatusCode == http.StatusUnauthorized {
		return ErrSessionExpired
	}
	if res.StatusCode >= 400 {
		msg := fallbackErrMsg
		var env errorEnvelope
		if err := json.NewDecoder(res.Body).Decode(&env); err == nil {
			if text := env.text(); text != "" {
				msg = text
			}
		}
		return &APIError{Code: res.StatusCode, Message: msg}
	}
	return nil
}

func (c *Client) get(ctx context.Context, sess session.Session, path string, query url.Values, out interface{}) error {
	return c.do(ctx, sess, http.MethodGet, path, query, nil, out)
}

func (c *Client) post(ctx context.Context, sess session.Session, path string, body, out interface{}) error {
	return c.do(ctx, sess, http.MethodPost, path, nil, body, out)
}

func (c *Client) put(ctx context.Context, sess session.Session, path string, body, out interface{}) error {
	return c.do(ctx, sess, http.MethodPut, path, nil, body, out)
}

func (c *Client) del(ctx context.Context, sess session.Session, path string) error {
	return c.do(ctx, sess, http.MethodDelete, path, nil, nil, nil)
}

// Export is a file payload proxied to the browser as-is.
type Export struct {
	Data        []byte
	ContentType string
	Disposition string
}

// getRaw fetches a non-JSON payload (report exports).
func (c *Client) getRaw(ctx context.Context, sess session.Session, path string, query url.Values) (Export, error) {
	res, err := c.send(ctx, sess, http.MethodGet, path, query, nil)
	if err != nil {
		return Export{}, err
	}
	defer res.Body.Close()

	if err = checkStatus(res); err != nil {
		return Export{}, err
	}
	data, err := ioutil.ReadAll(res.Body)
	if err != nil {
		return Export{}, errors.Wrapf(err, "reading %s response", path)
	}
	return Export{
		Data:        data,
		ContentType: res.Header.Get("Content-Type"),
		Disposition: res.Header.Get("Content-Disposition"),
	}, nil
}
