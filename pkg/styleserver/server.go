package styleserver

import (
	"context"
	stderrors "errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/vango-dev/componentx/internal/dev"
	"github.com/vango-dev/componentx/pkg/middleware"
	"github.com/vango-dev/componentx/pkg/render"
	"github.com/vango-dev/componentx/pkg/style"
	"github.com/vango-dev/componentx/pkg/vdom"
)

// Server serves the stylesheets of one registry.
type Server struct {
	reg      *style.Registry
	dir      string
	logger   *slog.Logger
	hub      *dev.ReloadServer
	gatherer prometheus.Gatherer
	metrics  *middleware.Metrics
	tracing  []middleware.OTelOption
	debounce time.Duration
	router   chi.Router
}

// Option configures a Server.
type Option func(*Server)

// WithDir sets the style directory used by LoadDir and Watch.
func WithDir(dir string) Option {
	return func(s *Server) {
		s.dir = dir
	}
}

// WithLogger sets the server logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Server) {
		s.logger = l
	}
}

// WithGatherer exposes g on /metrics.
func WithGatherer(g prometheus.Gatherer) Option {
	return func(s *Server) {
		s.gatherer = g
	}
}

// WithRequestMetrics records every request in m.
func WithRequestMetrics(m *middleware.Metrics) Option {
	return func(s *Server) {
		s.metrics = m
	}
}

// WithTracing configures the request tracing middleware.
func WithTracing(opts ...middleware.OTelOption) Option {
	return func(s *Server) {
		s.tracing = opts
	}
}

// WithDebounce sets how long Watch collects file events before reloading.
func WithDebounce(d time.Duration) Option {
	return func(s *Server) {
		s.debounce = d
	}
}

// New creates a server for reg.
func New(reg *style.Registry, opts ...Option) *Server {
	s := &Server{reg: reg}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}
	s.hub = dev.NewReloadServer(s.logger)
	s.router = s.routes()
	return s
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.OpenTelemetry(s.tracing...))
	if s.metrics != nil {
		r.Use(s.metrics.Handler)
	}

	r.Get("/", s.handleIndex)
	r.Get("/styles.css", s.handleAll)
	r.Get("/styles/{name}.css", s.handleOne)
	r.Get("/_reload", s.hub.ServeHTTP)
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})
	if s.gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{}))
	}
	return r
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Hub returns the live reload hub.
func (s *Server) Hub() *dev.ReloadServer {
	return s.hub
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	names := s.reg.Names()
	items := vdom.Range(names, func(name string, _ int) *vdom.VNode {
		return vdom.Li(vdom.A(vdom.Href("/styles/"+name+".css"), vdom.Text(name)))
	})

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	err := render.RenderDocument(w, render.DocumentData{
		Title:        "componentx styles",
		Body:         vdom.Main(vdom.H1(vdom.Textf("%d stylesheets", len(names))), vdom.Ul(items)),
		Registry:     s.reg,
		ReloadScript: dev.ClientScript,
	})
	if err != nil {
		s.logger.Error("render index", "err", err)
	}
}

func (s *Server) handleAll(w http.ResponseWriter, r *http.Request) {
	var b strings.Builder
	for _, name := range s.reg.Names() {
		if css, ok := s.reg.Get(name); ok {
			b.WriteString("/* " + style.ElementID(name) + " */")
			b.WriteString(css)
		}
	}
	writeCSS(w, b.String())
}

func (s *Server) handleOne(w http.ResponseWriter, r *http.Request) {
	css, ok := s.reg.Get(chi.URLParam(r, "name"))
	if !ok {
		http.NotFound(w, r)
		return
	}
	writeCSS(w, css)
}

func writeCSS(w http.ResponseWriter, css string) {
	w.Header().Set("Content-Type", "text/css; charset=utf-8")
	w.Header().Set("Cache-Control", "no-cache")
	w.Write([]byte(css))
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s,
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("style server listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.hub.Close()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; err != nil && !stderrors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// IsSourceFile reports whether path names a style file such as
// Card.style.json.
func IsSourceFile(path string) bool {
	if !style.IsStyleFile(path) {
		return false
	}
	base := filepath.Base(path)
	return strings.HasSuffix(strings.TrimSuffix(base, filepath.Ext(base)), ".style")
}

// LoadDir compiles every style file in the server's directory into the
// registry, replacing styles already present. It returns the number of
// stylesheets loaded and stops at the first invalid file.
func (s *Server) LoadDir() (int, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return 0, err
	}

	var paths []string
	for _, e := range entries {
		if !e.IsDir() && IsSourceFile(e.Name()) {
			paths = append(paths, filepath.Join(s.dir, e.Name()))
		}
	}
	sort.Strings(paths)

	for i, p := range paths {
		if _, err := s.load(p); err != nil {
			return i, err
		}
	}
	return len(paths), nil
}

// load compiles path and replaces its component's style.
func (s *Server) load(path string) (string, error) {
	sheet, err := style.LoadFile(path)
	if err != nil {
		return "", err
	}
	name := style.ComponentName(path)
	s.reg.Forget(name)
	s.reg.Inject(name, style.Compile(sheet, name))
	return name, nil
}
