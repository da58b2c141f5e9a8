package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"

	"github.com/skyhealth/kpi-gateway/internal/config"
	httpcontroller "github.com/skyhealth/kpi-gateway/internal/controller/http"
	"github.com/skyhealth/kpi-gateway/internal/domain/analytics"
	"github.com/skyhealth/kpi-gateway/internal/domain/channels"
	"github.com/skyhealth/kpi-gateway/internal/domain/social/policy"
	"github.com/skyhealth/kpi-gateway/internal/domain/social/service"
	"github.com/skyhealth/kpi-gateway/internal/httpx/upstream/ga4"
	"github.com/skyhealth/kpi-gateway/internal/httpx/upstream/graph"
	"github.com/skyhealth/kpi-gateway/internal/httpx/upstream/linkedin"
	"github.com/skyhealth/kpi-gateway/internal/httpx/upstream/youtube"
	"github.com/skyhealth/kpi-gateway/internal/middleware"
)

// App is the main application container
type App struct {
	cfg        config.Config
	httpServer *http.Server
	router     *chi.Mux
	logger     *slog.Logger

	// Domain entry points (interfaces for HTTP handlers)
	socialPolicy *policy.Policy
	analyticsSvc *analytics.Service // nil when GA4 credentials are absent
	channelsSvc  *channels.Service
}

// NewApp creates and initializes the application
func NewApp(ctx context.Context, cfg config.Config) (*App, error) {
	// Initialize logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	// Initialize router with middleware
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Logger)
	r.Use(chimw.Timeout(30 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
		MaxAge:         86400,
	}))

	app := &App{
		cfg:    cfg,
		router: r,
		logger: logger,
	}

	// Initialize domain layers
	if err := app.initDomains(ctx); err != nil {
		return nil, fmt.Errorf("initializing domains: %w", err)
	}

	// Register routes
	app.registerRoutes()

	// Initialize HTTP server
	app.httpServer = &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      app.router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	return app, nil
}

// initDomains wires the upstream clients into the domain layers
func (a *App) initDomains(ctx context.Context) error {
	// Meta Graph API: both social platforms share one fetch adapter
	graphClient := graph.New(
		graph.WithBaseURL(a.cfg.Graph.BaseURL),
		graph.WithAPIVersion(a.cfg.Graph.APIVersion),
	)
	a.socialPolicy = policy.New(
		service.NewInstagram(graphClient),
		service.NewFacebook(graphClient),
		policy.Config{DefaultAccessToken: a.cfg.Graph.AccessToken},
	)

	// GA4 is optional: without Application Default Credentials the
	// endpoint reports itself unconfigured instead of failing startup
	ga4Client, err := ga4.New(ctx, ga4.WithBaseURL(a.cfg.GA4.BaseURL))
	if err != nil {
		a.logger.Warn("GA4 reporting disabled", "error", err)
	} else {
		a.analyticsSvc = analytics.New(ga4Client)
	}

	// YouTube and LinkedIn are optional per-credential
	var ytAPI channels.YouTubeAPI
	if a.cfg.YouTube.Configured() {
		tokens := youtube.NewTokenSource(ctx, a.cfg.YouTube.ClientID, a.cfg.YouTube.ClientSecret, a.cfg.YouTube.RefreshToken)
		ytAPI = youtube.New(tokens, youtube.WithBaseURL(a.cfg.YouTube.BaseURL))
	}
	var liAPI channels.LinkedInAPI
	if a.cfg.LinkedIn.AccessToken != "" {
		liAPI = linkedin.New(a.cfg.LinkedIn.AccessToken, linkedin.WithBaseURL(a.cfg.LinkedIn.BaseURL))
	}
	a.channelsSvc = channels.New(ytAPI, liAPI, a.cfg.TikTok.AccessToken != "", a.logger)

	return nil
}

// registerRoutes registers all HTTP routes
func (a *App) registerRoutes() {
	// Health checks stay outside the authenticated group
	a.router.Get("/healthz", a.healthHandler)
	a.router.Get("/readyz", a.readyHandler)

	// Swagger UI documentation
	swaggerHandler := httpcontroller.NewSwaggerHandler("SkyHealth KPI Gateway", OpenAPISpec)
	swaggerHandler.RegisterRoutes(a.router)

	// Authenticated, rate-limited KPI surface
	a.router.Group(func(r chi.Router) {
		r.Use(httprate.LimitByIP(a.cfg.RateLimit.RequestsPerMinute, time.Minute))
		r.Use(middleware.BearerAuth(a.cfg.Auth.BearerToken))

		httpcontroller.NewSocialHandler(a.socialPolicy, a.logger).RegisterRoutes(r)

		var analyticsSvc httpcontroller.AnalyticsService
		if a.analyticsSvc != nil {
			analyticsSvc = a.analyticsSvc
		}
		httpcontroller.NewAnalyticsHandler(analyticsSvc, a.cfg.GA4.PropertyID, a.logger).RegisterRoutes(r)

		httpcontroller.NewChannelsHandler(a.channelsSvc).RegisterRoutes(r)
		httpcontroller.NewProspectsHandler(a.cfg.Prospects.DefaultLimit).RegisterRoutes(r)
	})
}

// healthHandler handles health check requests
func (a *App) healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}

// readyHandler handles readiness check requests
func (a *App) readyHandler(w http.ResponseWriter, r *http.Request) {
	// The gateway keeps no connections open between requests; ready once up
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ready"}`))
}

// Run starts the application and blocks until shutdown signal
func (a *App) Run(ctx context.Context) error {
	// Channel to receive errors from server
	errCh := make(chan error, 1)

	// Start HTTP server in goroutine
	go func() {
		a.logger.Info("starting HTTP server", "addr", a.cfg.Server.Address())
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	// Wait for shutdown signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	case sig := <-quit:
		a.logger.Info("received shutdown signal", "signal", sig.String())
	case <-ctx.Done():
		a.logger.Info("context cancelled")
	}

	// Graceful shutdown
	return a.Shutdown(context.Background())
}

// Shutdown gracefully shuts down the application
func (a *App) Shutdown(ctx context.Context) error {
	a.logger.Info("shutting down...")

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := a.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down HTTP server: %w", err)
	}

	a.logger.Info("shutdown complete")
	return nil
}
