// Package server exposes the jurisdiction provider, resource resolver,
// lead relay and popup store over HTTP.
package server

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/NielsdaWheelz/filemyrti/internal/config"
	"github.com/NielsdaWheelz/filemyrti/internal/errors"
	"github.com/NielsdaWheelz/filemyrti/internal/events"
	"github.com/NielsdaWheelz/filemyrti/internal/leads"
	"github.com/NielsdaWheelz/filemyrti/internal/page"
	"github.com/NielsdaWheelz/filemyrti/internal/popup"
	"github.com/NielsdaWheelz/filemyrti/internal/provider"
)

const (
	maxLeadBody     = 16 << 10
	shutdownTimeout = 5 * time.Second
)

// Deps are the collaborators a Server is built from. Scheduler may be nil
// when the provider uses its timer fallback.
type Deps struct {
	Provider  *provider.Provider
	Scheduler *provider.IdleScheduler
	Pages     *page.Builder
	Leads     *leads.Client
	Popup     popup.Store
	Events    *events.Log
	Limiter   *IPRateLimiter
	Logger    *slog.Logger

	// Await bounds how long a request waits for the merged config.
	Await time.Duration
	// Listen is the address Run binds.
	Listen string
}

// Server is the HTTP surface.
type Server struct {
	deps    Deps
	handler http.Handler
}

// New wires a Server. Missing optional collaborators get defaults.
func New(d Deps) *Server {
	if d.Logger == nil {
		d.Logger = slog.Default()
	}
	if d.Provider == nil {
		d.Provider = provider.New(nil, nil)
	}
	if d.Pages == nil {
		d.Pages = page.NewBuilder(nil, "")
	}
	if d.Popup == nil {
		d.Popup = popup.NewMemoryStore()
	}
	if d.Leads == nil {
		d.Leads = leads.NewClient(leads.Config{}, leads.WithLogger(d.Logger))
	}
	if d.Limiter == nil {
		d.Limiter = NewIPRateLimiter(0, 0)
	}
	s := &Server{deps: d}
	s.handler = s.routes()
	return s
}

// NewFromConfig builds the full dependency graph from cfg.
func NewFromConfig(cfg config.Config, fetcher provider.Fetcher, store popup.Store, logger *slog.Logger) *Server {
	sched := provider.NewIdleScheduler(cfg.Remote.IdleBudget)
	ev := events.NewLog(cfg.EventsPath())
	return New(Deps{
		Provider: provider.New(nil, fetcher,
			provider.WithScheduler(sched),
			provider.WithFallbackDelay(cfg.Remote.FallbackDelay),
			provider.WithLogger(logger),
		),
		Scheduler: sched,
		Pages:     page.NewBuilder(nil, cfg.Assets.BaseURL),
		Leads: leads.NewClient(leads.Config{
			BaseURL:       cfg.Leads.BaseURL,
			Timeout:       cfg.Leads.Timeout,
			DefaultSource: cfg.Leads.DefaultSource,
		}, leads.WithEvents(ev), leads.WithLogger(logger)),
		Popup:   store,
		Events:  ev,
		Limiter: NewIPRateLimiter(cfg.Leads.RatePerMinute, cfg.Leads.Burst),
		Logger:  logger,
		Await:   cfg.Remote.Await,
		Listen:  cfg.Listen,
	})
}

// Handler returns the root handler with middleware applied.
func (s *Server) Handler() http.Handler {
	return s.handler
}

func (s *Server) routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /healthz", s.handleHealth)
	mux.HandleFunc("GET /api/states", s.handleListStates)
	mux.HandleFunc("GET /api/states/{slug}", s.handleGetState)
	mux.HandleFunc("GET /api/page", s.handlePage)
	mux.HandleFunc("GET /api/departments/{state}", s.handleDepartments)
	mux.HandleFunc("GET /api/resources", s.handleResource)
	mux.Handle("POST /api/leads", s.deps.Limiter.Middleware(http.HandlerFunc(s.handleLead)))
	mux.HandleFunc("GET /api/popup/{visitor}", s.handlePopupStatus)
	mux.HandleFunc("POST /api/popup/{visitor}", s.handlePopupDismiss)
	mux.HandleFunc("/", s.handleNotFound)

	var h http.Handler = mux
	h = withBusy(s.deps.Scheduler, h)
	h = withLogging(s.deps.Logger, h)
	h = withRequestID(h)
	return h
}

// Run listens on the configured address and serves until ctx is done.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.deps.Listen)
	if err != nil {
		return errors.WrapWithDetails(errors.EInternal, "failed to listen", err, map[string]string{
			"listen": s.deps.Listen,
			"hint":   "check listen in filemyrti.yaml or FILEMYRTI_LISTEN",
		})
	}
	return s.Serve(ctx, ln)
}

// Serve serves on ln until ctx is done, then shuts down gracefully.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	go s.deps.Limiter.Run(ctx)

	errCh := make(chan error, 1)
	go func() {
		s.deps.Logger.Info("listening", "addr", ln.Addr().String())
		errCh <- srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if err == http.ErrServerClosed {
			return nil
		}
		return errors.Wrap(errors.EInternal, "server stopped", err)
	case <-ctx.Done():
	}

	shutdownCtx, stop := context.WithTimeout(context.Background(), shutdownTimeout)
	defer stop()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return errors.Wrap(errors.EInternal, "graceful shutdown failed", err)
	}
	s.deps.Logger.Info("server stopped")
	return nil
}
