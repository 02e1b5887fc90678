// Package server exposes the classifier over HTTP.
package server

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"fjacquet/extrato-classifier/internal/logging"
	"fjacquet/extrato-classifier/internal/models"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Classifier is what the HTTP layer needs from the classifier.
type Classifier interface {
	Classify(ctx context.Context, input models.ClassificationInput) (models.ClassificationResult, error)
	Categories() []string
}

// Options configures a Server.
type Options struct {
	Address         string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
	MaxBodyBytes    int64
}

// Server serves classification requests.
type Server struct {
	classifier Classifier
	opts       Options
	logger     logging.Logger
	router     chi.Router
}

// New builds a Server and its routes.
func New(classifier Classifier, opts Options, logger logging.Logger) *Server {
	if logger == nil {
		logger = logging.GetLogger()
	}
	if opts.ShutdownTimeout <= 0 {
		opts.ShutdownTimeout = 15 * time.Second
	}

	s := &Server{
		classifier: classifier,
		opts:       opts,
		logger:     logger,
	}
	s.router = s.routes()
	return s
}

// Handler returns the root HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(s.logger))
	r.Use(middleware.Recoverer)
	if s.opts.MaxBodyBytes > 0 {
		r.Use(middleware.RequestSize(s.opts.MaxBodyBytes))
	}

	r.MethodNotAllowed(s.HandleMethodNotAllowed)
	r.NotFound(s.HandleNotFound)

	r.Get("/healthz", s.HandleHealth)
	r.Post("/process_transaction", s.HandleProcessTransaction)
	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/classify", s.HandleClassify)
		r.Get("/categories", s.HandleCategories)
	})
	return r
}

// Run listens on the configured address until ctx is cancelled, then shuts
// down gracefully.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.opts.Address)
	if err != nil {
		return err
	}
	return s.Serve(ctx, ln)
}

// Serve is Run on an existing listener.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:      s.router,
		ReadTimeout:  s.opts.ReadTimeout,
		WriteTimeout: s.opts.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("Starting HTTP server",
			logging.Field{Key: logging.FieldAddress, Value: ln.Addr().String()})
		errCh <- srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	s.logger.Info("Shutting down HTTP server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.opts.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
