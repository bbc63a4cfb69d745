// Package app wires configuration, storage, the completion client and the
// services into runnable programs.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/flashcards-backend/internal/adapter/llm"
	"github.com/heartmarshall/flashcards-backend/internal/adapter/postgres"
	documentrepo "github.com/heartmarshall/flashcards-backend/internal/adapter/postgres/document"
	flashcardrepo "github.com/heartmarshall/flashcards-backend/internal/adapter/postgres/flashcard"
	"github.com/heartmarshall/flashcards-backend/internal/auth"
	"github.com/heartmarshall/flashcards-backend/internal/config"
	"github.com/heartmarshall/flashcards-backend/internal/service/document"
	"github.com/heartmarshall/flashcards-backend/internal/service/flashcard"
	"github.com/heartmarshall/flashcards-backend/internal/service/generation"
	"github.com/heartmarshall/flashcards-backend/internal/transport/middleware"
	"github.com/heartmarshall/flashcards-backend/internal/transport/rest"
)

// Services holds the wired application services.
type Services struct {
	Generation *generation.Service
	Flashcards *flashcard.Service
	Documents  *document.Service
}

// Connect opens the database pool and applies migrations when enabled.
func Connect(ctx context.Context, cfg config.DatabaseConfig, logger *slog.Logger) (*pgxpool.Pool, error) {
	pool, err := postgres.NewPool(ctx, cfg, appName)
	if err != nil {
		return nil, err
	}
	if cfg.AutoMigrate {
		if err := postgres.Migrate(ctx, pool, logger); err != nil {
			pool.Close()
			return nil, fmt.Errorf("migrate: %w", err)
		}
	}
	return pool, nil
}

// NewServices builds the services on top of an open pool.
func NewServices(cfg *config.Config, pool *pgxpool.Pool, logger *slog.Logger) (*Services, error) {
	client, err := llm.New(cfg.LLM, llm.WithLogger(logger))
	if err != nil {
		return nil, fmt.Errorf("llm client: %w", err)
	}
	prompt, err := generation.LoadPrompt(cfg.Generation.PromptPath)
	if err != nil {
		return nil, fmt.Errorf("load prompt: %w", err)
	}

	flashcards := flashcardrepo.New(pool)
	documents := documentrepo.New(pool)
	limits := generation.TextLimits{Min: cfg.Generation.MinTextLength, Max: cfg.Generation.MaxTextLength}

	gen := generation.NewService(logger, client, flashcards, documents, prompt, limits)
	return &Services{
		Generation: gen,
		Flashcards: flashcard.NewService(logger, flashcards, documents, postgres.NewTxManager(pool), cfg.Generation.MaxBulkApprove),
		Documents:  document.NewService(logger, documents, gen, limits),
	}, nil
}

// NewHandler assembles the HTTP handler with its middleware. The returned
// stop function releases background resources.
func NewHandler(cfg *config.Config, svc *Services, pool *pgxpool.Pool, logger *slog.Logger) (http.Handler, func()) {
	limiter := middleware.NewRateLimiter(time.Minute)

	router := rest.NewRouter(rest.Handlers{
		Health:          rest.NewHealthHandler(BuildVersion(), map[string]rest.Pinger{"database": pool}),
		Flashcards:      rest.NewFlashcardHandler(svc.Generation, svc.Flashcards, logger),
		Documents:       rest.NewDocumentHandler(svc.Documents, logger),
		GenerationLimit: limiter.Limit(cfg.Generation.RateLimitPerMinute),
	})

	handler := middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID,
		middleware.CORS(cfg.CORS),
		middleware.Auth(auth.NewVerifier(cfg.Auth), logger),
		middleware.Logger(logger),
	)(router)

	return handler, limiter.Stop
}

// Run starts the HTTP API and blocks until ctx is cancelled or the listener
// fails, then shuts the server down gracefully.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)
	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.String("llm_model", cfg.LLM.Model),
	)

	pool, err := Connect(ctx, cfg.Database, logger)
	if err != nil {
		return err
	}
	defer pool.Close()

	svc, err := NewServices(cfg, pool, logger)
	if err != nil {
		return err
	}

	handler, stop := NewHandler(cfg, svc, pool, logger)
	defer stop()

	srv := &http.Server{
		Addr:              net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:           handler,
		ReadTimeout:       cfg.Server.ReadTimeout,
		ReadHeaderTimeout: cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
		ErrorLog:          slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down", slog.Duration("timeout", cfg.Server.ShutdownTimeout))
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http server shutdown: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}
	logger.Info("server stopped")
	return nil
}
