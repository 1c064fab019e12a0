package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/feedback_ai/backend/internal/ai"
	"github.com/feedback_ai/backend/internal/config"
	"github.com/feedback_ai/backend/internal/db"
	httpapi "github.com/feedback_ai/backend/internal/http"
	"github.com/feedback_ai/backend/internal/metrics"
	"github.com/feedback_ai/backend/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	zerolog.TimeFieldFormat = time.RFC3339
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	logger := log.Level(level).With().Str("service", "feedback-ai").Logger()
	if cfg.Env != "dev" {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx := context.Background()
	store, closeStore, err := openStore(ctx, cfg, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to open review store")
	}
	defer closeStore()
	if err := store.EnsureInitialized(ctx); err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize review store")
	}

	provider, closeProvider := openProvider(ctx, cfg, logger)
	defer closeProvider()

	clientCfg := ai.DefaultClientConfig()
	if cfg.AIMaxAttempts > 0 {
		clientCfg.MaxAttempts = cfg.AIMaxAttempts
	}
	if cfg.AIRetryDelay > 0 {
		clientCfg.RetryDelay = cfg.AIRetryDelay
	}
	if cfg.AIAttemptTimeout > 0 {
		clientCfg.AttemptTimeout = cfg.AIAttemptTimeout
	}
	client := ai.NewClient(provider, clientCfg, logger)
	prometheus.MustRegister(metrics.AIEnabledGauge(client.Enabled))

	svc := service.NewFeedbackService(store, client, logger)
	router, err := httpapi.Router(cfg, svc, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to build router")
	}

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  cfg.RequestTimeout,
		WriteTimeout: cfg.RequestTimeout,
	}

	base := "http://localhost:" + cfg.Port
	logger.Info().
		Bool("ai_enabled", client.Enabled()).
		Str("ai_provider", client.ProviderName()).
		Msg("feedback service starting")
	logger.Info().Str("user", base+"/").Str("admin", base+"/admin").Str("export", base+"/export").Msg("dashboards")

	go func() {
		logger.Info().Str("port", cfg.Port).Msg("server started")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctxShutdown, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(ctxShutdown)
	logger.Info().Msg("server stopped")
}

// openStore picks PostgreSQL when DATABASE_URL is set and the JSON file otherwise.
func openStore(ctx context.Context, cfg config.Config, logger zerolog.Logger) (db.ReviewStore, func(), error) {
	if cfg.DatabaseURL != "" {
		pg, err := db.NewPostgres(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, nil, err
		}
		logger.Info().Msg("using postgres review store")
		return pg, pg.Close, nil
	}
	logger.Info().Str("path", cfg.DataFile).Msg("using file review store")
	return db.NewFileStore(cfg.DataFile), func() {}, nil
}

// openProvider returns nil when no provider can be built; the service then
// answers every submission from the canned replies.
func openProvider(ctx context.Context, cfg config.Config, logger zerolog.Logger) (ai.Provider, func()) {
	noop := func() {}
	switch cfg.AIProvider {
	case config.ProviderMock:
		logger.Info().Msg("using mock AI provider")
		return &ai.MockProvider{ModelVersion: "mock-v1"}, noop
	case config.ProviderOpenAI:
		p, err := ai.NewOpenAICompatProvider(cfg.AIBaseURL, cfg.AIModel, cfg.AIAPIKey)
		if err != nil {
			logger.Warn().Err(err).Msg("AI provider unavailable, using fallback replies")
			return nil, noop
		}
		return p, noop
	case config.ProviderGemini:
		p, err := ai.NewGeminiProvider(ctx, cfg.AIAPIKey, cfg.AIModel)
		if err != nil {
			logger.Warn().Err(err).Msg("AI provider unavailable, using fallback replies")
			return nil, noop
		}
		return p, func() { _ = p.Close() }
	default:
		logger.Warn().Str("provider", cfg.AIProvider).Msg("unknown AI provider, using fallback replies")
		return nil, noop
	}
}
