package docs

import (
	"context"
	stderrors "errors"
	"log/slog"
	"net"
	"net/http"
	"sync"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/orangehrm/oxd/internal/config"
	"github.com/orangehrm/oxd/internal/errors"
	"github.com/orangehrm/oxd/pkg/story"
)

const tracerName = "github.com/orangehrm/oxd/internal/docs"

// Options configures a Server.
type Options struct {
	// Title is shown in page headers. Default: config.DefaultTitle.
	Title string

	// Live enables websocket re-rendering on story pages.
	Live bool

	// Namespace prefixes metric names. Default: config.DefaultNamespace.
	Namespace string

	// Registry receives the server's metrics. Default: a new registry.
	Registry *prometheus.Registry

	// Logger receives request and websocket logs. Default: slog.Default().
	Logger *slog.Logger

	// TracerProvider creates render spans. Default: the global provider.
	TracerProvider trace.TracerProvider

	// ShutdownTimeout bounds graceful shutdown. Default: 5s.
	ShutdownTimeout time.Duration
}

// OptionsFromConfig maps oxd.json settings to server options.
func OptionsFromConfig(cfg *config.Config, logger *slog.Logger) Options {
	return Options{
		Title:     cfg.Docs.Title,
		Live:      cfg.Docs.Live,
		Namespace: cfg.Metrics.Namespace,
		Logger:    logger,
	}
}

func (o *Options) applyDefaults() {
	if o.Title == "" {
		o.Title = config.DefaultTitle
	}
	if o.Namespace == "" {
		o.Namespace = config.DefaultNamespace
	}
	if o.Logger == nil {
		o.Logger = slog.Default()
	}
	if o.TracerProvider == nil {
		o.TracerProvider = otel.GetTracerProvider()
	}
	if o.ShutdownTimeout <= 0 {
		o.ShutdownTimeout = 5 * time.Second
	}
}

// Server serves the component documentation site.
type Server struct {
	opts    Options
	logger  *slog.Logger
	tracer  trace.Tracer
	metrics *metrics
	hub     *Hub
	router  chi.Router

	mu   sync.RWMutex
	book *story.Book
}

// New creates a Server over book.
func New(book *story.Book, opts Options) *Server {
	opts.applyDefaults()
	s := &Server{
		opts:    opts,
		logger:  opts.Logger,
		tracer:  opts.TracerProvider.Tracer(tracerName),
		metrics: newMetrics(opts.Namespace, opts.Registry),
		book:    book,
	}
	s.hub = newHub(s)
	s.router = s.routes()
	return s
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.logRequests)
	r.Use(s.metrics.middleware)
	r.Use(s.traceRequests)

	r.Get("/", s.handleIndex)
	r.Get("/stories/{id}", s.handleStory)
	r.Get("/iframe/{id}", s.handleIframe)
	r.Get("/healthz", s.handleHealth)
	r.Handle("/metrics", s.metrics.handler())

	r.Route("/api", func(r chi.Router) {
		r.Get("/components", s.handleComponents)
		r.Get("/stories", s.handleStories)
		r.Get("/stories/{id}", s.handleStoryJSON)
		r.Post("/resolve/{component}", s.handleResolve)
	})

	if s.opts.Live {
		r.Get("/ws", s.hub.ServeHTTP)
	}
	return r
}

// Handler returns the server's HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Hub returns the live-control hub.
func (s *Server) Hub() *Hub {
	return s.hub
}

// Book returns the current story book.
func (s *Server) Book() *story.Book {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.book
}

// SetBook replaces the story book and tells live clients to reload.
func (s *Server) SetBook(b *story.Book) {
	s.mu.Lock()
	s.book = b
	s.mu.Unlock()
	s.hub.NotifyReload()
	s.logger.Info("stories reloaded", "count", b.Len())
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		if stderrors.Is(err, syscall.EADDRINUSE) {
			return errors.New(errors.CodePortInUse).
				WithDetailf("%s is already in use", addr).
				WithSuggestion("Stop the other process or pass --port").
				Wrap(err)
		}
		return errors.New(errors.CodeServe).Wrap(err)
	}
	return s.Serve(ctx, ln)
}

// Serve serves on ln until ctx is cancelled.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	errc := make(chan error, 1)
	go func() {
		errc <- srv.Serve(ln)
	}()
	s.logger.Info("docs server listening", "addr", ln.Addr().String(), "live", s.opts.Live)

	select {
	case err := <-errc:
		if stderrors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return errors.New(errors.CodeServe).Wrap(err)
	case <-ctx.Done():
	}

	s.logger.Info("docs server shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.opts.ShutdownTimeout)
	defer cancel()
	s.hub.Close()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return errors.New(errors.CodeServe).WithDetail("shutdown").Wrap(err)
	}
	return nil
}

// logRequests logs each request once it completes.
func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		level := slog.LevelDebug
		if status >= http.StatusInternalServerError {
			level = slog.LevelError
		}
		s.logger.Log(r.Context(), level, "request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", status,
			"bytes", ww.BytesWritten(),
			"duration", time.Since(start),
			"request_id", middleware.GetReqID(r.Context()),
		)
	})
}
