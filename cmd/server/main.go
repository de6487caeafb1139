// @title        Vexel Dashboard API
// @version      1.0
// @description  Per-user content dashboard: social links, calendar, ideas, assets, tasks, API keys, templates and lore notes.
// @BasePath     /
// @securityDefinitions.apikey  SessionCookie
// @in                          cookie
// @name                        app_session_id
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/cristianomarianoufsc-ops/vexel.2/internal/api"
	"github.com/cristianomarianoufsc-ops/vexel.2/internal/api/handler"
	"github.com/cristianomarianoufsc-ops/vexel.2/internal/core/ports"
	"github.com/cristianomarianoufsc-ops/vexel.2/internal/core/service"
	"github.com/cristianomarianoufsc-ops/vexel.2/internal/infrastructure/config"
	"github.com/cristianomarianoufsc-ops/vexel.2/internal/infrastructure/db/postgres"
	"github.com/cristianomarianoufsc-ops/vexel.2/internal/infrastructure/db/redis"
	"github.com/cristianomarianoufsc-ops/vexel.2/internal/infrastructure/http/handlers"
	"github.com/cristianomarianoufsc-ops/vexel.2/internal/infrastructure/notify"
	"github.com/cristianomarianoufsc-ops/vexel.2/internal/infrastructure/oauth"
	"github.com/cristianomarianoufsc-ops/vexel.2/internal/infrastructure/storage/minio"
	"github.com/cristianomarianoufsc-ops/vexel.2/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	defer stop()

	cfg, err := config.Load(ctx, ".env")
	if err != nil {
		l := logger.Init(logger.Options{})
		l.Fatal().Err(err).Msg("failed to load config")
	}

	log := logger.Init(logger.Options{Level: cfg.LogLevel, Pretty: cfg.IsDevelopment(), Env: cfg.Env})

	// The store connects lazily on first use; a failed connection degrades
	// reads to empty lists and fails writes.
	db := postgres.NewProvider(postgres.Config{DSN: cfg.Postgres.DSN}, logger.Component("postgres"))
	defer db.Close()
	store := postgres.NewStore(db, logger.Component("store"))

	health := []handlers.Dependency{{Name: "postgres", Check: db.Ping}}

	var guard ports.CodeGuard
	rdb, err := redis.Connect(ctx, redis.Config{Addr: cfg.Redis.Addr, Password: cfg.Redis.Password, DB: cfg.Redis.DB})
	if err != nil {
		log.Warn().Err(err).Msg("redis unavailable, oauth code replay guard disabled")
	} else {
		defer rdb.Close()
		guard = redis.NewCallbackGuard(rdb)
		health = append(health, handlers.Dependency{Name: "redis", Check: redis.Probe(rdb), Optional: true})
	}

	var storage ports.ObjectStorage
	if cfg.Storage.Endpoint != "" {
		mc, err := minio.New(ctx, minio.Config{
			Endpoint:  cfg.Storage.Endpoint,
			AccessKey: cfg.Storage.AccessKey,
			SecretKey: cfg.Storage.SecretKey,
			Bucket:    cfg.Storage.Bucket,
			UseSSL:    cfg.Storage.UseSSL,
			PublicURL: cfg.Storage.PublicURL,
		})
		if err != nil {
			log.Warn().Err(err).Msg("object storage unavailable, uploads disabled")
		} else {
			storage = mc
		}
	}

	idp := oauth.NewClient(oauth.Config{
		ServerURL: cfg.OAuth.ServerURL,
		PortalURL: cfg.OAuth.PortalURL,
		AppID:     cfg.AppID,
	})
	sessions := service.NewSessionManager(cfg.JWTSecret, cfg.AppID, cfg.Session.TTL)
	authService := service.NewAuthService(store, sessions, idp, guard, cfg.OwnerOpenID, logger.Component("auth"))
	notifier := notify.NewClient(notify.Config{URL: cfg.Notify.URL, APIKey: cfg.Notify.APIKey}, logger.Component("notify"))

	e := api.NewRouter(api.Dependencies{
		Log:           log,
		Auth:          authService,
		Store:         store,
		Dashboard:     service.NewDashboardService(store),
		APIKeys:       service.NewAPIKeyService(store),
		Notifications: service.NewNotificationService(notifier, logger.Component("notifications")),
		Migrations:    service.NewMigrationService(store, logger.Component("migration")),
		Storage:       storage,
		Cookie:        handler.CookieConfig{Name: cfg.Session.CookieName, MaxAge: cfg.Session.TTL},
		Health:        health,
		Registerer:    prometheus.DefaultRegisterer,
	})

	go func() {
		log.Info().Str("port", cfg.Port).Msg("server listening")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg("server stopped unexpectedly")
			stop()
		}
	}()

	<-ctx.Done()
	log.Info().Msg("received interruption signal, shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("error during server shutdown")
	}
	log.Info().Msg("shutdown complete")
}
