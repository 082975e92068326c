// Package webapp serves the role-gated pages of the Darsxona frontend. Every
// page handler follows the same shape: fetch its collections from the remote
// backend, validate one form payload, submit the mutation, then re-fetch the
// whole collection rather than patch local state.
package webapp

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"

	"github.com/sardorbek/darsxona/backend"
	"github.com/sardorbek/darsxona/core"
	"github.com/sardorbek/darsxona/core/session"
)

type (
	Options struct {
		Addr           string
		Conf           *core.Config
		Logger         core.Logger
		Client         *backend.Client
		Sessions       session.Store
		Validate       *validator.Validate
		Translator     ut.Translator
		DisableReqLogs bool
	}

	Server interface {
		http.Handler
		Start()
		Shutdown(context.Context) error
		Close() error
		Errors() <-chan error
		ShutdownSignal() <-chan os.Signal
	}

	server struct {
		opts     *Options
		app      *echo.Echo
		errs     chan error
		shutdown chan os.Signal
	}
)

var _ Server = (*server)(nil)

func NewServer(opts *Options) Server {
	s := &server{
		opts:     opts,
		app:      echo.New(),
		errs:     make(chan error, 1),
		shutdown: make(chan os.Signal, 1),
	}
	signal.Notify(s.shutdown, os.Interrupt, syscall.SIGTERM)
	s.setup()
	return s
}

func (s *server) setup() {
	debug := s.opts.Conf.Debug

	s.app.Pre(middleware.RemoveTrailingSlash())
	if !s.opts.DisableReqLogs {
		s.app.Use(middleware.Logger())
	}
	// do not recover in DEV|TEST mode
	if !(debug || s.opts.Conf.TestMode) {
		s.app.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{LogLevel: log.ERROR}))
	}
	s.app.Use(loadSession(s.opts.Sessions))
	s.app.Use(routeGate())

	s.app.HTTPErrorHandler = newAppHTTPErrorHandler(s.opts.Logger, s.opts.Sessions, s.opts.Translator, s.signalShutdown)
	s.app.Debug = debug

	deps := &pageDeps{
		client:   s.opts.Client,
		sessions: s.opts.Sessions,
		validate: s.opts.Validate,
		logger:   s.opts.Logger,
	}

	registerAuthRoutes(s.app, deps)

	dash := s.app.Group(session.DashboardPath)
	registerCourseRoutes(dash.Group("/kurslar"), deps)
	registerGroupRoutes(dash.Group("/guruhlar"), deps)
	registerStudentRoutes(dash.Group("/talabalar"), deps)
	registerPaymentRoutes(dash.Group("/tolovlar"), deps)
	registerPayrollRoutes(dash.Group("/oylik"), deps)
	registerScheduleRoutes(dash.Group("/jadval"), deps)
	registerTestRoutes(dash.Group("/testlar"), deps)
	registerAttendanceRoutes(dash.Group("/davomat"), deps)
	registerReportRoutes(dash.Group("/hisobot"), deps)
	registerUserRoutes(dash.Group("/foydalanuvchilar"), deps)
	registerProfileRoutes(dash.Group("/profil"), deps)
}

// pageDeps is what every page module works with: the backend client, the
// session store and the form validator.
type pageDeps struct {
	client   *backend.Client
	sessions session.Store
	validate *validator.Validate
	logger   core.Logger
}

func (s *server) Start() {
	if err := s.app.Start(s.opts.Addr); err != nil && err != http.ErrServerClosed {
		s.errs <- err
	}
}

func (s *server) Shutdown(ctx context.Context) error {
	return s.app.Shutdown(ctx)
}

func (s *server) Close() error {
	return s.app.Close()
}

func (s *server) Errors() <-chan error {
	return s.errs
}

func (s *server) ShutdownSignal() <-chan os.Signal {
	return s.shutdown
}

func (s *server) signalShutdown() {
	s.shutdown <- syscall.SIGTERM
}

func (s *server) ServeHTTP(w http.ResponseWriter, r *http.Request) { // for tests
	s.app.ServeHTTP(w, r)
}
