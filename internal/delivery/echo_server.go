package delivery

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"gatekeeper/config"
	"gatekeeper/internal/delivery/middleware"
	"gatekeeper/internal/domain/lifecycle"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"golang.org/x/net/http2"
)

// EchoServerOptions names a server and says how it listens.
type EchoServerOptions struct {
	Name string
	Port int
	// H2C serves cleartext HTTP/2 alongside HTTP/1.1.
	H2C bool
}

// EchoServer serves one echo instance until the fx app stops.
type EchoServer struct {
	opts   EchoServerOptions
	echo   *echo.Echo
	logger *slog.Logger
}

// NewEcho returns an echo instance with the configured timeouts and the middleware every
// server shares: panic recovery, then request IDs, then request logging.
func NewEcho(cfg *config.Config, logger *slog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Server.ReadTimeout = cfg.HTTP.Timeouts.ReadTimeout
	e.Server.ReadHeaderTimeout = cfg.HTTP.Timeouts.ReadHeaderTimeout
	e.Server.WriteTimeout = cfg.HTTP.Timeouts.WriteTimeout
	e.Server.IdleTimeout = cfg.HTTP.Timeouts.IdleTimeout

	e.Use(echomiddleware.Recover())
	// Request IDs must exist before the logger middleware reads them.
	e.Use(middleware.NewRequestIDMiddleware(logger).Process)
	e.Use(middleware.NewLoggerMiddleware(logger, cfg).Handle)

	return e
}

// NewEchoServer wraps e and registers its graceful shutdown with lc.
func NewEchoServer(lc fx.Lifecycle, e *echo.Echo, opts EchoServerOptions, logger *slog.Logger) *EchoServer {
	srv := &EchoServer{
		opts:   opts,
		echo:   e,
		logger: logger.With(slog.String("server", opts.Name)),
	}

	lc.Append(fx.Hook{OnStop: srv.stop})

	return srv
}

// Serve blocks until the server is shut down.
func (s *EchoServer) Serve(_ context.Context) error {
	hostPort := net.JoinHostPort("0.0.0.0", strconv.Itoa(s.opts.Port))
	s.logger.Info("Starting HTTP server", slog.String("host_port", hostPort), slog.Bool("h2c", s.opts.H2C))

	var err error
	if s.opts.H2C {
		err = s.echo.StartH2CServer(hostPort, &http2.Server{IdleTimeout: s.echo.Server.IdleTimeout})
	} else {
		err = s.echo.Start(hostPort)
	}
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.WithStack(err)
	}

	return nil
}

func (s *EchoServer) stop(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("Shutting down HTTP server")

	return errors.WithStack(s.echo.Shutdown(shutdownCtx))
}
