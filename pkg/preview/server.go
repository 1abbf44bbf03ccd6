package preview

import (
	"context"
	stderrors "errors"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/vango-dev/styled/internal/errors"
	"github.com/vango-dev/styled/pkg/render"
	"github.com/vango-dev/styled/pkg/showcase"
	"github.com/vango-dev/styled/pkg/vdom"
)

// Config configures the preview server.
type Config struct {
	// Address is the listen address (default "localhost:4100").
	Address string

	// Title is the gallery page title.
	Title string

	// Metrics exposes /metrics.
	Metrics bool

	// AllowedOrigins lists origins allowed to open /ws. Empty allows only
	// requests whose Origin host matches the Host header.
	AllowedOrigins []string

	// Registerer receives the metrics collectors.
	// Default: prometheus.DefaultRegisterer
	Registerer prometheus.Registerer

	// Gatherer is served on /metrics.
	// Default: prometheus.DefaultGatherer
	Gatherer prometheus.Gatherer

	// TracerName names the OpenTelemetry tracer (default "styled").
	TracerName string

	// ShutdownTimeout bounds graceful shutdown (default 5s).
	ShutdownTimeout time.Duration

	// Logger defaults to slog.Default().With("component", "preview").
	Logger *slog.Logger
}

func (c *Config) applyDefaults() {
	if c.Address == "" {
		c.Address = "localhost:4100"
	}
	if c.Title == "" {
		c.Title = "styled"
	}
	if c.Registerer == nil {
		c.Registerer = prometheus.DefaultRegisterer
	}
	if c.Gatherer == nil {
		c.Gatherer = prometheus.DefaultGatherer
	}
	if c.TracerName == "" {
		c.TracerName = "styled"
	}
	if c.ShutdownTimeout == 0 {
		c.ShutdownTimeout = 5 * time.Second
	}
	if c.Logger == nil {
		c.Logger = slog.Default().With("component", "preview")
	}
}

// Server serves the gallery, single-component renders and the live
// render websocket.
type Server struct {
	config   Config
	registry atomic.Pointer[showcase.Registry]
	renderer *render.Renderer
	metrics  *metrics
	tracer   trace.Tracer
	upgrader websocket.Upgrader
	logger   *slog.Logger
	router   chi.Router

	mu      sync.Mutex
	clients map[*liveClient]struct{}

	httpServer *http.Server
}

// New creates a server rendering from reg.
func New(reg *showcase.Registry, config Config) *Server {
	config.applyDefaults()

	s := &Server{
		config:   config,
		renderer: render.NewRenderer(render.RendererConfig{}),
		metrics:  newMetrics(config.Registerer),
		tracer:   otel.Tracer(config.TracerName),
		logger:   config.Logger,
		clients:  make(map[*liveClient]struct{}),
	}
	s.registry.Store(reg)
	s.upgrader = websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin:     checkOrigin(config.AllowedOrigins),
	}
	s.router = s.routes()
	return s
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.logRequests)

	r.Get("/", s.handleGallery)
	r.Get("/healthz", s.handleHealth)
	r.Get("/components/{name}", s.handleComponent)
	r.Post("/render/{name}", s.handleRender)
	r.Post("/style/{name}", s.handleStyle)
	r.Get("/ws", s.handleLive)
	if s.config.Metrics {
		r.Handle("/metrics", promhttp.HandlerFor(s.config.Gatherer, promhttp.HandlerOpts{}))
	}
	return r
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Registry returns the registry currently served.
func (s *Server) Registry() *showcase.Registry {
	return s.registry.Load()
}

// SetRegistry swaps the served registry and tells live clients to reload.
func (s *Server) SetRegistry(reg *showcase.Registry) {
	s.registry.Store(reg)
	s.broadcast(liveMessage{Type: messageReload})
}

// NotifyError sends err to every live client without changing the
// registry.
func (s *Server) NotifyError(err error) {
	s.broadcast(liveMessage{Type: messageError, Error: err.Error()})
}

// Run serves on the configured address until ctx is cancelled, then shuts
// down gracefully.
func (s *Server) Run(ctx context.Context) error {
	s.httpServer = &http.Server{
		Addr:              s.config.Address,
		Handler:           s,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("preview server starting", "address", s.config.Address)
		errCh <- s.httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != http.ErrServerClosed {
			return err
		}
		return nil
	case <-ctx.Done():
		s.logger.Info("shutting down...")
		return s.Shutdown(context.Background())
	}
}

// Shutdown closes live connections and stops the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, s.config.ShutdownTimeout)
	defer cancel()

	s.closeClients()

	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			s.logger.Error("shutdown error", "error", err)
			return err
		}
	}
	s.logger.Info("preview server stopped")
	return nil
}

// unknownComponent labels metrics for names the registry does not hold.
const unknownComponent = "unknown"

// renderOutcome is a rendered component plus its mapping report.
type renderOutcome struct {
	showcase.Result
	HTML string
}

// render renders one component inside a styled.render span and records
// metrics for it.
func (s *Server) render(ctx context.Context, name string, props vdom.Props) (renderOutcome, error) {
	_, span := s.tracer.Start(ctx, "styled.render", trace.WithAttributes(
		attribute.String("styled.component", name),
		attribute.Int("styled.props", len(props)),
	))
	defer span.End()

	start := time.Now()
	out, err := s.doRender(name, props)

	// Names outside the registry share one series.
	label := name
	if errorCode(err) == "E121" {
		label = unknownComponent
	}
	s.metrics.duration.WithLabelValues(label).Observe(time.Since(start).Seconds())

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		s.metrics.renders.WithLabelValues(label, "error").Inc()
		return out, err
	}

	dropped := len(out.Report.Dropped)
	span.SetAttributes(
		attribute.Int("styled.dropped", dropped),
		attribute.Int("styled.collisions", len(out.Report.Collisions)),
	)
	span.SetStatus(codes.Ok, "")
	s.metrics.renders.WithLabelValues(name, "success").Inc()
	if dropped > 0 {
		s.metrics.droppedProps.WithLabelValues(name).Add(float64(dropped))
	}
	if len(out.Report.Collisions) > 0 {
		s.logger.Debug("style collision", "component", name, "properties", out.Report.Collisions)
	}
	return out, nil
}

func (s *Server) doRender(name string, props vdom.Props) (out renderOutcome, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.New("E140").
				WithDetail(fmt.Sprintf("component %s panicked: %v", name, r))
		}
	}()

	res, err := s.Registry().Render(name, props)
	if err != nil {
		return out, err
	}
	html, err := s.renderer.RenderToString(res.Node)
	if err != nil {
		return out, errors.New("E140").Wrap(err)
	}
	return renderOutcome{Result: res, HTML: html}, nil
}

func errorCode(err error) string {
	var se *errors.StyledError
	if stderrors.As(err, &se) {
		return se.Code
	}
	return ""
}

// logRequests logs each request at debug level.
func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.logger.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration", time.Since(start),
			"request_id", middleware.GetReqID(r.Context()),
		)
	})
}
