package webapp

import (
	"net/http"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/sardorbek/darsxona/backend"
	"github.com/sardorbek/darsxona/core"
	"github.com/sardorbek/darsxona/core/session"
)

var (
	errHttpForbidden = echo.NewHTTPError(http.StatusForbidden, "permission denied")
	errHttpNotFound  = echo.NewHTTPError(http.StatusNotFound, "not found")
)

// newAppHTTPErrorHandler returns a custom echo.HTTPErrorHandler that knows how
// to handle our errors. It is the single place that reacts to an expired
// session: clear the store, one redirect to login, nothing else. Pages never
// duplicate that. signalShutdown is called whenever a core shutdown error is
// caught.
func newAppHTTPErrorHandler(logger core.Logger, store session.Store, translator ut.Translator, signalShutdown func()) echo.HTTPErrorHandler {
	return func(err error, ctx echo.Context) {
		if ctx.Response().Committed {
			return
		}

		// a 401 from any backend call, at any point: clear the stored
		// session once and send the browser back to the login page. The
		// store treats a second clear as a no-op, so overlapping failures
		// cannot double-clear.
		if errors.Cause(err) == backend.ErrSessionExpired {
			if cErr := store.Clear(ctx.Response(), ctx.Request()); cErr != nil {
				logger.Error("clearing session", cErr)
			}
			if rErr := ctx.Redirect(http.StatusSeeOther, session.LoginPath); rErr != nil {
				ctx.Echo().Logger.Error(rErr)
			}
			return
		}

		var code int
		var message interface{}

		switch origErr := errors.Cause(err).(type) {
		case *echo.HTTPError:
			if origErr.Internal != nil {
				if herr, ok := origErr.Internal.(*echo.HTTPError); ok {
					origErr = herr
				}
			}
			code = origErr.Code
			message = origErr.Message
		case validator.ValidationErrors:
			fldErrs := make(map[string]string, len(origErr))
			for _, vErr := range origErr {
				fldErrs[vErr.Field()] = vErr.Translate(translator)
			}
			code = http.StatusBadRequest
			message = fldErrs
		case *core.ValidationError:
			if origErr.Fields != nil {
				fldErrs := make(map[string]string, len(origErr.Fields))
				for _, fErr := range origErr.Fields {
					fldErrs[fErr.Field] = fErr.Error
				}
				message = fldErrs
			} else {
				message = origErr.Error()
			}
			code = http.StatusBadRequest
		case *backend.APIError:
			// server-rejected call: relay the backend's message verbatim
			code = origErr.Code
			message = origErr.Message
		default: // any other error is a server error
			code = http.StatusInternalServerError
			msg := http.StatusText(http.StatusInternalServerError)
			message = msg

			logger.Error(msg, errors.Wrap(err, msg), contextSession(ctx))

			// shutting down...
			if core.IsShutdown(err) {
				signalShutdown()
			}
		}

		if ctx.Echo().Debug {
			message = err.Error()
		}
		if m, ok := message.(string); ok {
			message = echo.Map{"error": m}
		}

		// Send response
		if ctx.Request().Method == http.MethodHead {
			err = ctx.NoContent(code)
		} else {
			err = ctx.JSON(code, message)
		}
		if err != nil {
			ctx.Echo().Logger.Error(err)
		}
	}
}
