package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"CapIot.esp32mock/internal/config"
	"CapIot.esp32mock/internal/controller"
	"CapIot.esp32mock/internal/middleware"
	"CapIot.esp32mock/internal/routes"
	"CapIot.esp32mock/internal/sensor"
	"CapIot.esp32mock/internal/service"
	"github.com/rs/zerolog"
)

// NewHandler wires source -> service -> controller -> router and wraps the
// router in the middleware stack.
func NewHandler(cfg config.Config, source sensor.Source, logger zerolog.Logger) http.Handler {
	svc := service.NewSensorService(source, logger)
	ctrl := controller.NewDeviceController(svc)
	router := routes.NewRouter(ctrl)

	return middleware.Chain(router,
		middleware.CORS(cfg.AllowedOrigins),
		middleware.RequestID,
		middleware.AccessLog(logger),
		middleware.Recover(logger),
	)
}

type Server struct {
	cfg    config.Config
	http   *http.Server
	logger zerolog.Logger
}

func New(cfg config.Config, handler http.Handler, logger zerolog.Logger) *Server {
	return &Server{
		cfg: cfg,
		http: &http.Server{
			Addr:              cfg.Addr(),
			Handler:           handler,
			ReadHeaderTimeout: 10 * time.Second,
		},
		logger: logger.With().Str("component", "Server").Logger(),
	}
}

// Run listens on the configured address and serves until ctx is done.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.http.Addr)
	if err != nil {
		return fmt.Errorf("listening on %s: %w", s.http.Addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve accepts connections on ln until ctx is done, then shuts down
// gracefully within the configured timeout.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	s.logger.Info().
		Str("addr", ln.Addr().String()).
		Str("example", exampleURL(s.cfg.Host, ln.Addr())).
		Msg("ESP32 mock server listening")

	errCh := make(chan error, 1)
	go func() {
		errCh <- s.http.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	s.logger.Info().Msg("Shutdown requested")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()
	if err := s.http.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down http server: %w", err)
	}
	<-errCh
	s.logger.Info().Msg("Server stopped")
	return nil
}

func exampleURL(host string, addr net.Addr) string {
	if host == "" || host == "0.0.0.0" || host == "::" {
		host = "localhost"
	}
	port := "80"
	if tcp, ok := addr.(*net.TCPAddr); ok {
		port = strconv.Itoa(tcp.Port)
	}
	return "http://" + net.JoinHostPort(host, port) + "/api/status"
}
