package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	pgRepo "knowledge-hub/internal/infra/adapter/persistence/postgres"
	infraAssistant "knowledge-hub/internal/infra/assistant"
	"knowledge-hub/internal/infra/db"
	"knowledge-hub/internal/observability/logging"
	"knowledge-hub/internal/observability/tracing"
	"knowledge-hub/pkg/config"

	artUC "knowledge-hub/internal/usecase/article"
	asstUC "knowledge-hub/internal/usecase/assistant"
	faqUC "knowledge-hub/internal/usecase/faq"
	refUC "knowledge-hub/internal/usecase/reference"

	hhttp "knowledge-hub/internal/handler/http"
	harticle "knowledge-hub/internal/handler/http/article"
	hassistant "knowledge-hub/internal/handler/http/assistant"
	hauth "knowledge-hub/internal/handler/http/auth"
	hfaq "knowledge-hub/internal/handler/http/faq"
	href "knowledge-hub/internal/handler/http/reference"
	"knowledge-hub/internal/handler/http/requestid"
)

func main() {
	logger := logging.NewLogger()
	slog.SetDefault(logger)

	database, err := db.Open()
	if err != nil {
		logger.Error("failed to open database", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if err := database.Close(); err != nil {
			logger.Error("failed to close database", slog.Any("error", err))
		}
	}()

	handler, err := setupServer(logger, database)
	if err != nil {
		logger.Error("failed to set up server", slog.Any("error", err))
		os.Exit(1)
	}

	runServer(logger, handler)
}

// setupServer wires repositories, services, and HTTP routes into a single handler.
func setupServer(logger *slog.Logger, database *sql.DB) (http.Handler, error) {
	artSvc := &artUC.Service{Repo: pgRepo.NewArticleRepo(database)}
	refSvc := &refUC.Service{Repo: pgRepo.NewReferenceRepo(database)}
	faqSvc := &faqUC.Service{Repo: pgRepo.NewFAQRepo(database)}

	provider, err := buildAssistantProvider(logger)
	if err != nil {
		return nil, err
	}
	asstSvc := asstUC.NewService(provider)

	var authz func(http.Handler) http.Handler
	if hauth.Enabled() {
		authz = hauth.Authz
		logger.Info("write endpoints require authentication")
	} else {
		logger.Warn("JWT_SECRET not set, write endpoints are unauthenticated")
	}

	mux := http.NewServeMux()
	harticle.Register(mux, artSvc, refSvc, authz)
	href.Register(mux, refSvc)
	hfaq.Register(mux, faqSvc)
	hassistant.Register(mux, asstSvc)

	mux.Handle("GET /health", &hhttp.HealthHandler{DB: database, Version: version()})
	mux.Handle("GET /ready", &hhttp.ReadyHandler{DB: database})
	mux.Handle("GET /live", &hhttp.LiveHandler{})
	mux.Handle("GET /metrics", hhttp.MetricsHandler())
	if hauth.Enabled() {
		mux.Handle("POST /auth/token", hauth.TokenHandler())
	}

	return hhttp.Chain(mux,
		requestid.Middleware,
		tracing.Middleware,
		hhttp.Recover(logger),
		hhttp.Logging(logger),
		hhttp.LimitRequestBody(1<<20),
		hhttp.MetricsMiddleware,
	), nil
}

// buildAssistantProvider selects the completion provider from environment
// configuration. When no provider is configured the endpoint fails closed.
func buildAssistantProvider(logger *slog.Logger) (asstUC.Provider, error) {
	cfg, err := infraAssistant.LoadConfig()
	if err != nil {
		return nil, err
	}

	switch name := config.GetEnvString("ASSISTANT_PROVIDER", "claude"); name {
	case "claude":
		apiKey := os.Getenv("ANTHROPIC_API_KEY")
		if apiKey == "" {
			logger.Warn("ANTHROPIC_API_KEY not set, assistant endpoint disabled")
			return infraAssistant.NewDisabled(), nil
		}
		logger.Info("assistant provider configured", slog.String("provider", "claude"), slog.String("model", cfg.Model))
		return infraAssistant.NewClaude(apiKey, cfg), nil
	case "openai":
		apiKey := os.Getenv("OPENAI_API_KEY")
		if apiKey == "" {
			logger.Warn("OPENAI_API_KEY not set, assistant endpoint disabled")
			return infraAssistant.NewDisabled(), nil
		}
		logger.Info("assistant provider configured", slog.String("provider", "openai"), slog.String("model", cfg.Model))
		return infraAssistant.NewOpenAI(apiKey, cfg), nil
	case "none":
		logger.Info("assistant provider disabled")
		return infraAssistant.NewDisabled(), nil
	default:
		logger.Warn("unknown assistant provider, endpoint disabled", slog.String("provider", name))
		return infraAssistant.NewDisabled(), nil
	}
}

func version() string {
	return config.GetEnvString("VERSION", "dev")
}

// runServer starts the HTTP server and blocks until a shutdown signal arrives.
func runServer(logger *slog.Logger, handler http.Handler) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	addr := ":" + config.GetEnvString("PORT", "3000")
	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},
	}

	go func() {
		logger.Info("server starting", slog.String("addr", addr), slog.String("version", version()))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", slog.Any("error", err))
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server...")

	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown failed", slog.Any("error", err))
	}
	logger.Info("server stopped")
}
