package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/slalom/capabilities-system/internal/api"
	"github.com/slalom/capabilities-system/internal/core/ports"
	"github.com/slalom/capabilities-system/internal/core/service"
	"github.com/slalom/capabilities-system/internal/infrastructure/audit"
	"github.com/slalom/capabilities-system/internal/infrastructure/http/handlers"
	"github.com/slalom/capabilities-system/internal/infrastructure/store"
	"github.com/slalom/capabilities-system/internal/pkg/config"
	"github.com/slalom/capabilities-system/pkg/logger"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	creds, err := store.LoadCredentialStore(cfg.UsersFile, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load credential store")
	}

	catalog, err := store.LoadCatalog(cfg.CatalogFile)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load capability catalog")
	}

	// --- Audit pipeline ---
	sinks := []ports.AuditSink{audit.NewLoggerSink(log)}
	var rdb *redis.Client
	if cfg.Redis.Addr != "" {
		rdb, err = audit.Connect(ctx, audit.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to redis")
		}
		defer rdb.Close()
		sinks = append(sinks, audit.NewStreamSink(rdb))
	}
	dispatcher := audit.NewDispatcher(cfg.AuditWorkers, log, sinks...)
	dispatcher.Start(ctx)

	// --- Services ---
	authService := service.NewAuthService(creds, cfg.JWTSecret, cfg.TokenTTL)
	capabilityService := service.NewCapabilityService(catalog, dispatcher, log)

	e := api.NewRouter(api.Deps{
		AuthService:       authService,
		CapabilityService: capabilityService,
		Health:            handlers.NewReadinessHandler(creds, rdb),
		Logger:            log,
	})

	go func() {
		addr := ":" + cfg.Port
		log.Info().Str("addr", addr).Str("env", cfg.Env).Int("capabilities", len(catalog)).Msg("server starting")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
	log.Info().Msg("server stopped")
}
