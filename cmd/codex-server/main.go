// Package main is the entry point for the Hunter Codex API server.
// Hunter Codex is an authenticated catalog API with a Redis read-through
// cache in front of the item store.
package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/prn-tf/hunter-codex/internal/auth"
	"github.com/prn-tf/hunter-codex/internal/cache/memory"
	"github.com/prn-tf/hunter-codex/internal/config"
	"github.com/prn-tf/hunter-codex/internal/handler"
	"github.com/prn-tf/hunter-codex/internal/pkg/metrics"
	"github.com/prn-tf/hunter-codex/internal/repository"
	"github.com/prn-tf/hunter-codex/internal/repository/cached"
	"github.com/prn-tf/hunter-codex/internal/repository/postgres"
	redisrepo "github.com/prn-tf/hunter-codex/internal/repository/redis"
	"github.com/prn-tf/hunter-codex/internal/repository/sqlite"
	"github.com/prn-tf/hunter-codex/internal/service"
)

// Version information (set at build time)
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	configPath := flag.String("config", "", "path to config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	logger := setupLogger(cfg.Logging)

	logger.Info().
		Str("version", Version).
		Str("build_time", BuildTime).
		Str("git_commit", GitCommit).
		Msg("starting Hunter Codex server")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Fatal().Err(err).Msg("server exited with error")
	}
}

func run(ctx context.Context, cfg *config.Config, logger zerolog.Logger) error {
	// Database: postgres or embedded sqlite, selected by config.
	var (
		userRepo repository.UserRepository
		itemRepo repository.ItemRepository
		closeDB  func() error
	)
	if cfg.Database.IsEmbedded() {
		db, err := sqlite.NewDB(ctx, sqlite.Config{
			Path:            cfg.Database.Path,
			JournalMode:     cfg.Database.JournalMode,
			BusyTimeout:     cfg.Database.BusyTimeout,
			SynchronousMode: cfg.Database.SynchronousMode,
		}, logger)
		if err != nil {
			return err
		}
		if err := db.Migrate(ctx); err != nil {
			db.Close()
			return err
		}
		userRepo = sqlite.NewUserRepository(db)
		itemRepo = sqlite.NewItemRepository(db)
		closeDB = db.Close
	} else {
		db, err := postgres.NewDB(ctx, cfg.Database, logger)
		if err != nil {
			return err
		}
		userRepo = postgres.NewUserRepository(db)
		itemRepo = postgres.NewItemRepository(db)
		closeDB = db.Close
	}
	defer closeDB()

	// Cache: Redis when enabled, in-process otherwise. A Redis connection
	// failure at startup is fatal; failures at request time degrade to
	// store reads inside the caching decorator.
	var itemCache repository.Cache
	if cfg.Redis.Enabled {
		redisCache, err := redisrepo.NewCache(ctx, cfg.Redis, logger)
		if err != nil {
			return err
		}
		defer redisCache.Close()
		itemCache = redisCache
	} else {
		memCache := memory.NewCache()
		defer memCache.Stop()
		itemCache = memCache
		logger.Info().Msg("redis disabled, using in-memory cache")
	}

	cachedItems := cached.NewItemRepository(itemRepo, itemCache, cfg.Cache.TTL, logger)

	tokens := auth.NewTokenManager([]byte(cfg.Auth.JWTSecret), cfg.Auth.TokenTTL)

	authService := service.NewAuthService(userRepo, tokens, logger)
	itemService := service.NewItemService(cachedItems, logger)

	var m *metrics.Metrics
	if cfg.Metrics.Enabled {
		m = metrics.New(prometheus.DefaultRegisterer)
	}

	router := handler.NewRouter(handler.RouterConfig{
		AuthHandler:    handler.NewAuthHandler(authService, logger),
		ItemHandler:    handler.NewItemHandler(itemService, logger),
		AuthMiddleware: auth.Middleware(tokens, logger),
		Metrics:        m,
		MetricsPath:    cfg.Metrics.Path,
		Logger:         logger,
	})

	server := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info().Str("addr", server.Addr).Msg("HTTP server listening")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info().Msg("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("graceful shutdown failed")
		return err
	}

	logger.Info().Msg("server stopped")
	return nil
}

// setupLogger configures zerolog from the logging config.
func setupLogger(cfg config.LoggingConfig) zerolog.Logger {
	level, err := zerolog.ParseLevel(strings.ToLower(cfg.Level))
	if err != nil {
		level = zerolog.InfoLevel
	}

	var out = os.Stdout
	if cfg.Output == "stderr" {
		out = os.Stderr
	}

	var logger zerolog.Logger
	if cfg.Format == "console" {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339})
	} else {
		logger = zerolog.New(out)
	}

	return logger.Level(level).With().Timestamp().Logger()
}
