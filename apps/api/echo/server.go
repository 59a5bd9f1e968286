package echoapi

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"

	"github.com/cardlect/cardlect/apps/api/echo/handlers"
	"github.com/cardlect/cardlect/apps/api/echo/helpers"
	"github.com/cardlect/cardlect/core"
	"github.com/cardlect/cardlect/core/identity"
	"github.com/cardlect/cardlect/core/school"
)

type (
	Options struct {
		Address        string
		DisableReqLogs bool

		Sessions  *identity.Manager
		SchoolSvc *school.Service
		Logger    core.Logger
	}

	Server interface {
		http.Handler
		Start()
		Stop(context.Context) error
	}

	server struct {
		opts *Options
		app  *echo.Echo
	}
)

var _ Server = (*server)(nil)

func NewServer(opts *Options) Server {
	s := &server{
		opts: opts,
		app:  echo.New(),
	}
	s.setup()
	return s
}

func (s *server) setup() {
	s.app.Pre(middleware.RemoveTrailingSlash())
	if !s.opts.DisableReqLogs {
		s.app.Use(middleware.Logger())
	}
	// do not recover in DEV|TEST mode
	if !(core.Conf.Debug || core.Conf.TestMode) {
		s.app.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{LogLevel: log.ERROR}))
	}

	s.app.HTTPErrorHandler = helpers.NewAppHTTPErrorHandler(s.opts.Logger, func() {
		_ = s.Stop(context.Background())
	})
	s.app.Debug = core.Conf.Debug

	s.app.GET("/", home)

	v1 := s.app.Group("/v1")
	jwt := middleware.JWTWithConfig(helpers.AppJWTConfig)

	handlers.RegisterAuthAPI(v1, jwt, s.opts.Sessions)
	handlers.RegisterSchoolAPI(v1, jwt, s.opts.SchoolSvc)
	handlers.RegisterStaffAPI(v1, jwt, s.opts.SchoolSvc)
	handlers.RegisterStudentAPI(v1, jwt, s.opts.SchoolSvc)
	handlers.RegisterCardAPI(v1, jwt, s.opts.SchoolSvc)
	handlers.RegisterExamAPI(v1, jwt, s.opts.SchoolSvc)
	handlers.RegisterAssignmentAPI(v1, jwt, s.opts.SchoolSvc)
}

func (s *server) Start() {
	s.app.Logger.Fatal(s.app.Start(s.opts.Address))
}

func (s *server) Stop(ctx context.Context) error {
	return s.app.Shutdown(ctx)
}

func (s *server) ServeHTTP(w http.ResponseWriter, r *http.Request) { // for tests
	s.app.ServeHTTP(w, r)
}

func home(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Welcome to Cardlect API!")
}
