// Package app wires configuration, storage, services and transport into a
// running process.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/crypto/bcrypt"

	"github.com/snaplinkhq/snaplink-backend/internal/adapter/postgres"
	auditrepo "github.com/snaplinkhq/snaplink-backend/internal/adapter/postgres/audit"
	shortlinkrepo "github.com/snaplinkhq/snaplink-backend/internal/adapter/postgres/shortlink"
	tenantrepo "github.com/snaplinkhq/snaplink-backend/internal/adapter/postgres/tenant"
	userrepo "github.com/snaplinkhq/snaplink-backend/internal/adapter/postgres/user"
	"github.com/snaplinkhq/snaplink-backend/internal/adapter/redis"
	"github.com/snaplinkhq/snaplink-backend/internal/auth"
	"github.com/snaplinkhq/snaplink-backend/internal/config"
	shortlinksvc "github.com/snaplinkhq/snaplink-backend/internal/service/shortlink"
	tenantsvc "github.com/snaplinkhq/snaplink-backend/internal/service/tenant"
	usersvc "github.com/snaplinkhq/snaplink-backend/internal/service/user"
	"github.com/snaplinkhq/snaplink-backend/internal/transport/middleware"
	"github.com/snaplinkhq/snaplink-backend/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, connects to
// the database (and the optional redirect cache), builds the services and
// the HTTP router, and serves until ctx is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	if cfg.Database.MigrateOnStart {
		if err := postgres.Migrate(ctx, cfg.Database.DSN); err != nil {
			return err
		}
		logger.Info("migrations applied")
	}

	var cache *redis.Cache
	if cfg.Redis.Addr != "" {
		cache = redis.New(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB, cfg.Redis.TTL)
		if err := cache.Ping(ctx); err != nil {
			// The cache is an optimization; start without it rather than fail.
			logger.Warn("redirect cache unavailable", slog.String("error", err.Error()))
			cache = nil
		} else {
			defer cache.Close()
		}
	}

	tenants := tenantrepo.New(pool)
	users := userrepo.New(pool)
	links := shortlinkrepo.New(pool)
	audit := auditrepo.New(pool)
	tx := postgres.NewTxManager(pool)
	hasher := auth.NewPasswordHasher(bcrypt.DefaultCost)

	tenantSvc := tenantsvc.NewService(logger, tenants, audit, tx)
	userSvc := usersvc.NewService(logger, users, tenants, audit, tx, hasher)

	var linkSvc *shortlinksvc.Service
	if cache != nil {
		linkSvc = shortlinksvc.NewService(logger, links, audit, cache, cfg.ShortLink.MaxAllocAttempts)
	} else {
		linkSvc = shortlinksvc.NewService(logger, links, audit, nil, cfg.ShortLink.MaxAllocAttempts)
	}

	handler := buildRouter(cfg, logger, pool, cache, tenantSvc, userSvc, linkSvc)

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

func buildRouter(
	cfg *config.Config,
	logger *slog.Logger,
	pool pinger,
	cache *redis.Cache,
	tenantSvc *tenantsvc.Service,
	userSvc *usersvc.Service,
	linkSvc *shortlinksvc.Service,
) http.Handler {
	tenantH := rest.NewTenantHandler(tenantSvc, logger)
	userH := rest.NewUserHandler(userSvc, logger)
	linkH := rest.NewLinkHandler(linkSvc, logger)

	var cachePinger pinger
	if cache != nil {
		cachePinger = cache
	}
	healthH := rest.NewHealthHandler(pool, cachePinger, BuildVersion())

	apiMux := http.NewServeMux()

	apiMux.HandleFunc("POST /api/v1/tenants", tenantH.Create)
	apiMux.HandleFunc("GET /api/v1/tenants/{id}", tenantH.Get)
	apiMux.HandleFunc("GET /api/v1/tenants/by-subdomain/{subdomain}", tenantH.GetBySubdomain)
	apiMux.HandleFunc("PATCH /api/v1/tenants/{id}", tenantH.Update)
	apiMux.HandleFunc("DELETE /api/v1/tenants/{id}", tenantH.Delete)

	apiMux.HandleFunc("POST /api/v1/users", userH.Register)
	apiMux.HandleFunc("GET /api/v1/users/{id}", userH.Get)
	apiMux.HandleFunc("PATCH /api/v1/users/{id}", userH.Update)
	apiMux.HandleFunc("DELETE /api/v1/users/{id}", userH.Delete)
	apiMux.HandleFunc("PUT /api/v1/users/{id}/role", userH.ChangeRole)

	apiMux.HandleFunc("POST /api/v1/links", linkH.Create)
	apiMux.HandleFunc("GET /api/v1/links", linkH.List)
	apiMux.HandleFunc("GET /api/v1/links/{id}", linkH.Info)
	apiMux.HandleFunc("PATCH /api/v1/links/{id}", linkH.Update)
	apiMux.HandleFunc("DELETE /api/v1/links/{id}", linkH.Delete)
	apiMux.HandleFunc("POST /api/v1/links/{id}/claim", linkH.Claim)

	var api http.Handler = apiMux
	if cfg.Gateway.APIKey != "" {
		// Only the gateway holds the key; direct API access is gated.
		api = middleware.APIKey(cfg.Gateway.APIKey)(api)
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /live", healthH.Live)
	mux.HandleFunc("GET /ready", healthH.Ready)
	mux.HandleFunc("GET /health", healthH.Health)
	mux.Handle("GET /metrics", promhttp.Handler())
	mux.HandleFunc("GET /r/{code}", linkH.Redirect)
	mux.Handle("/api/v1/", api)

	return middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID,
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
		middleware.Principal,
	)(mux)
}

type pinger interface {
	Ping(ctx context.Context) error
}
