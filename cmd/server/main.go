package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/generative-ai-go/genai"
	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"
	"google.golang.org/api/option"

	"github.com/skylineguessr/api/internal/config"
	"github.com/skylineguessr/api/internal/database"
	"github.com/skylineguessr/api/internal/migrations"
	"github.com/skylineguessr/api/internal/question"
	"github.com/skylineguessr/api/internal/server"
	"github.com/skylineguessr/api/internal/stats"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, stdout io.Writer) error {
	// A .env file is optional; real deployments set the environment directly.
	godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := slog.New(slog.NewJSONHandler(stdout, &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}))

	// --- SQLite ---
	db, err := database.Open(ctx, cfg.DBPath)
	if err != nil {
		return fmt.Errorf("connecting to sqlite: %w", err)
	}
	defer db.Close()

	if err := migrations.Run(db); err != nil {
		return fmt.Errorf("running migrations: %w", err)
	}
	logger.Info("connected to sqlite", "path", cfg.DBPath)

	tallies, err := stats.Open(ctx, db, logger)
	if err != nil {
		return fmt.Errorf("loading city stats: %w", err)
	}

	// --- Gemini ---
	aiClient, err := genai.NewClient(ctx, option.WithAPIKey(cfg.GeminiAPIKey))
	if err != nil {
		return fmt.Errorf("creating generative client: %w", err)
	}
	defer aiClient.Close()

	photos := question.NewPhotoClient(cfg.PhotoAPIURL, cfg.PhotoAPIKey)
	gen := question.NewGenerator(aiClient, cfg.GeminiTextModel, cfg.GeminiImageModel, photos, logger)

	// --- HTTP Server ---
	srv := server.New(cfg.HTTPAddr, logger, server.NewSessionStore(db), tallies, gen, db, cfg.SPADir)

	// --- Run ---
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("starting http server", "addr", cfg.HTTPAddr)
		return srv.Run(gctx)
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down http server")
		return srv.Shutdown(context.Background())
	})

	return g.Wait()
}
