// Package server exposes the dashboard API: sessions, assessments, rendered
// results, exports, consent and translation tables.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/ppiankov/cardiorisk/internal/consent"
	"github.com/ppiankov/cardiorisk/internal/export"
	"github.com/ppiankov/cardiorisk/internal/i18n"
	"github.com/ppiankov/cardiorisk/internal/model"
	"github.com/ppiankov/cardiorisk/internal/report"
	"github.com/ppiankov/cardiorisk/internal/session"
	"github.com/ppiankov/cardiorisk/internal/worker"
)

// Assessor runs one assessment.
type Assessor interface {
	Assess(ctx context.Context, patient model.PatientInput, lang i18n.Language) (*model.Assessment, error)
}

// Upstream reports on the prediction service.
type Upstream interface {
	Health(ctx context.Context) (map[string]any, error)
	Metrics(ctx context.Context) (map[string]any, error)
}

// Deps are the collaborators of a Server. Consent and Upstream are optional.
type Deps struct {
	Assessor Assessor
	Sessions *session.Store
	Consent  consent.Store
	Upstream Upstream
}

// Server is the dashboard HTTP server.
type Server struct {
	echo   *echo.Echo
	deps   Deps
	cfg    model.ServerConfig
	output model.OutputConfig
	print  report.PDFOptions
	logger zerolog.Logger
	now    func() time.Time
}

// New wires routes and middleware.
func New(cfg *model.Config, deps Deps, logger zerolog.Logger) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	s := &Server{
		echo:   e,
		deps:   deps,
		cfg:    cfg.Server,
		output: cfg.Output,
		print:  report.PDFOptions{ChromePath: cfg.Print.ChromePath, Timeout: cfg.Print.Timeout},
		logger: logger,
		now:    time.Now,
	}

	e.Use(RequestID())
	e.Use(Logger(logger))
	e.Use(Recovery(logger))

	e.GET("/health", s.health)

	api := e.Group("/api")
	api.GET("/i18n/:lang", s.translations)
	api.GET("/hints/:type/:level", s.hint)
	api.GET("/upstream/health", s.upstreamHealth)
	api.GET("/upstream/metrics", s.upstreamMetrics)

	sessions := api.Group("/sessions", RateLimit(worker.NewLimiter(cfg.Server.RateLimit, cfg.Server.RateBurst)))
	sessions.POST("", s.createSession)
	sessions.POST("/:id/assess", s.assess)
	sessions.GET("/:id/result", s.result)
	sessions.GET("/:id/export/:format", s.export)
	sessions.POST("/:id/consent", s.consent)

	return s
}

// Handler returns the router, for tests and embedding.
func (s *Server) Handler() http.Handler {
	return s.echo
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	if addr == "" {
		addr = s.cfg.Addr
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info().Str("addr", addr).Msg("starting server")
		if err := s.echo.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.logger.Info().Msg("shutting down server")
	timeout := s.cfg.ShutdownTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	if err := s.echo.Shutdown(shutdownCtx); err != nil {
		return err
	}
	s.logger.Info().Msg("server stopped")
	return nil
}

func (s *Server) exportOptions(lang i18n.Language) export.Options {
	return export.Options{
		Language: lang,
		Footer:   s.output.IncludeFooter,
		Now:      s.now(),
		PDF:      s.print,
	}
}
