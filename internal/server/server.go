package server

import (
	"context"
	"errors"
	"fmt"
	"net"

	"github.com/bilgisen/welcome/internal/api"
	"github.com/bilgisen/welcome/internal/config"
	"github.com/bilgisen/welcome/internal/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/rs/zerolog"
)

// Server owns the fiber application built from an explicit Config.
type Server struct {
	cfg *config.Config
	app *fiber.App
	log *zerolog.Logger
}

func New(cfg *config.Config, log *zerolog.Logger) *Server {
	app := fiber.New(fiber.Config{
		ReadTimeout:           cfg.HTTPTimeout,
		WriteTimeout:          cfg.HTTPTimeout,
		IdleTimeout:           cfg.IdleTimeout,
		CaseSensitive:         true,
		StrictRouting:         true,
		ErrorHandler:          middleware.NewErrorHandler(log),
		DisableStartupMessage: true,
	})

	app.Use(requestid.New())
	app.Use(middleware.RequestLogger(log))
	app.Use(recover.New())

	api.SetupRoutes(app, api.NewHandlers())

	return &Server{cfg: cfg, app: app, log: log}
}

// App exposes the underlying fiber application, mainly for app.Test.
func (s *Server) App() *fiber.App {
	return s.app
}

// Run listens on the configured address and serves until ctx is done.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen(fiber.NetworkTCP, s.cfg.Addr())
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.cfg.Addr(), err)
	}
	return s.Serve(ctx, ln)
}

// Serve accepts connections on ln until ctx is done, then shuts down
// gracefully within the configured shutdown timeout.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	errCh := make(chan error, 1)
	go func() {
		s.log.Info().
			Str("addr", ln.Addr().String()).
			Str("env", s.cfg.Env).
			Msg("Starting server")
		errCh <- s.app.Listener(ln)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	s.log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()

	shutdownErr := s.app.ShutdownWithContext(shutdownCtx)
	// Shutdown only closes listeners the server has already picked up.
	_ = ln.Close()
	listenErr := <-errCh

	if shutdownErr != nil {
		return fmt.Errorf("server forced to shutdown: %w", shutdownErr)
	}
	if err := listenErr; err != nil && !errors.Is(err, net.ErrClosed) {
		return fmt.Errorf("server error: %w", err)
	}

	s.log.Info().Msg("Server exited properly")
	return nil
}
