package server

import (
	"database/sql"
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/swaggest/swgui/v5emb"

	"github.com/skylineguessr/api/internal/stats"
)

func addRoutes(r chi.Router, logger *slog.Logger, store Store, tallies *stats.Store, gen QuestionGenerator, db *sql.DB, spaDir string) {
	broker := NewBroker()

	r.Get("/openapi.json", handleOpenAPI())
	r.Mount("/docs", v5emb.New("Skyline Guessr API", "/openapi.json", "/docs"))
	r.Get("/healthz", handleHealth(logger, db))

	r.Post("/api/session", handleCreateSession(store))

	// Game routes — require a Bearer session token.
	r.Route("/api/game", func(r chi.Router) {
		r.Post("/question", handleQuestion(logger, store, gen))
		r.Post("/guess", handleGuess(store, tallies, broker))
		r.Get("/state", handleGameState(store))
	})

	// Map data — the stats snapshot plus a live update stream.
	r.Get("/api/stats", handleStats(tallies))
	r.Get("/api/stats/events", handleStatsEvents(broker))

	if spaDir != "" {
		if info, err := os.Stat(spaDir); err == nil && info.IsDir() {
			logger.Info("serving SPA", "dir", spaDir)
			r.NotFound(handleSPA(spaDir))
		}
	}
}
