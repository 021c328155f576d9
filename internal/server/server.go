package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/homily-archive/ngram-search/internal/apperr"
	mw "github.com/homily-archive/ngram-search/pkg/middleware"
	pkgserver "github.com/homily-archive/ngram-search/pkg/server"
)

const GracefulShutdownTimeout = 10 * time.Second

// Server wraps echo with the setup chain the entrypoints compose:
// New(...).SetupMiddlewares().SetupErrorHandler().SetupHealthChecks(...).
type Server struct {
	Echo *echo.Echo

	cfg  *Config
	hc   pkgserver.HealthChecker
	ctx  context.Context
	stop context.CancelFunc
}

func New(cfg *Config, hc pkgserver.HealthChecker) *Server {
	e := echo.New()
	e.HideBanner = true

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	return &Server{
		Echo: e,
		cfg:  cfg,
		hc:   hc,
		ctx:  ctx,
		stop: stop,
	}
}

// SetHealthChecker swaps the health checker; useful when the real check
// needs a store that is built with the server's signal context.
func (s *Server) SetHealthChecker(hc pkgserver.HealthChecker) *Server {
	s.hc = hc
	return s
}

func (s *Server) SetupMiddlewares() *Server {
	s.Echo.Use(mw.Logger(mw.WithSkipPaths("/health", "/swagger")))
	s.Echo.Use(middleware.Recover())
	s.Echo.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: s.cfg.CorsOrigins,
		AllowMethods: []string{http.MethodGet},
	}))
	return s
}

func (s *Server) SetupErrorHandler() *Server {
	s.Echo.HTTPErrorHandler = apperr.GlobalErrorHandler()
	return s
}

func (s *Server) SetupHealthChecks(path string) *Server {
	s.Echo.GET(path, func(c echo.Context) error {
		if !s.hc.Healthy(c.Request().Context()) {
			return c.JSON(http.StatusServiceUnavailable, map[string]string{"status": "unhealthy"})
		}
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
	return s
}

func (s *Server) SetupOpenApi(path string) *Server {
	s.Echo.GET(path, echoSwagger.WrapHandler)
	return s
}

// Context is cancelled on SIGINT/SIGTERM; long-lived collaborators should
// derive from it.
func (s *Server) Context() context.Context {
	return s.ctx
}

func (s *Server) ShutdownSignal() <-chan struct{} {
	return s.ctx.Done()
}

// Start serves until a shutdown signal arrives, then drains in-flight
// requests within GracefulShutdownTimeout.
func (s *Server) Start() error {
	defer s.stop()

	go func() {
		if err := s.Echo.Start(":" + s.cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server stopped unexpectedly", "error", err)
			s.stop()
		}
	}()

	<-s.ctx.Done()

	ctx, cancel := context.WithTimeout(context.Background(), GracefulShutdownTimeout)
	defer cancel()

	return s.Echo.Shutdown(ctx)
}
