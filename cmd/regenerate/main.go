// Command regenerate replaces the AI-generated flashcards of one document
// with a fresh generation run. Manual flashcards are kept.
//
// Usage:
//
//	regenerate -user <uuid> -document <uuid>
//
// Exit codes: 0 = success, 1 = error, 2 = bad arguments.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/flashcards-backend/internal/app"
	"github.com/heartmarshall/flashcards-backend/internal/config"
	"github.com/heartmarshall/flashcards-backend/internal/service/generation"
	"github.com/heartmarshall/flashcards-backend/pkg/ctxutil"
)

func main() {
	userFlag := flag.String("user", "", "id of the user who owns the document")
	documentFlag := flag.String("document", "", "id of the document to regenerate")
	timeout := flag.Duration("timeout", 5*time.Minute, "overall deadline")
	flag.Parse()

	userID, err := uuid.Parse(*userFlag)
	if err != nil {
		fmt.Fprintln(os.Stderr, "-user must be a valid UUID")
		os.Exit(2)
	}
	documentID, err := uuid.Parse(*documentFlag)
	if err != nil {
		fmt.Fprintln(os.Stderr, "-document must be a valid UUID")
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}
	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	pool, err := app.Connect(ctx, cfg.Database, logger)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	svc, err := app.NewServices(cfg, pool, logger)
	if err != nil {
		logger.Error("build services", slog.String("error", err.Error()))
		os.Exit(1)
	}

	result, err := svc.Generation.RegenerateFlashcards(ctxutil.WithUserID(ctx, userID), generation.RegenerateInput{
		DocumentID: &documentID,
	})
	if err != nil {
		logger.Error("regenerate failed",
			slog.String("document_id", documentID.String()),
			slog.String("error", err.Error()),
		)
		pool.Close()
		os.Exit(1)
	}

	logger.Info("regenerate completed",
		slog.String("document_id", documentID.String()),
		slog.Int("deleted", result.DeletedCount),
		slog.Int("generated", len(result.Flashcards)),
	)
}
