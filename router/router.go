// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"

	"tenpin/cliparse"
	"tenpin/handlers"
	"tenpin/middleware"
)

func NewRouter(db *sql.DB, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	gameHandler := handlers.NewGameHandler(db, cfg)
	frameHandler := handlers.NewFrameHandler(db, cfg)
	scoreboardHandler := handlers.NewScoreboardHandler(db, cfg)
	ballHandler := handlers.NewBallHandler(db, cfg)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Game management (scorer operations)
	mux.HandleFunc("POST /games", middleware.WithLogging(gameHandler.CreateGame))
	mux.HandleFunc("GET /games/{id}", middleware.WithLogging(gameHandler.GetGame))
	mux.HandleFunc("DELETE /games/{id}", middleware.WithLogging(gameHandler.DeleteGame))

	// Frame recording (scorer operations)
	mux.HandleFunc("POST /games/{id}/frames", middleware.WithLogging(frameHandler.RecordFrame))
	mux.HandleFunc("DELETE /games/{id}/frames/{number}", middleware.WithLogging(frameHandler.DeleteFrame))

	// Scoreboard (public, with sealed results)
	mux.HandleFunc("GET /scoreboard/{slug}", middleware.WithLogging(scoreboardHandler.GetScoreboard))
	mux.HandleFunc("GET /scoreboard/{slug}/summary", middleware.WithLogging(scoreboardHandler.GetSummary))
	mux.HandleFunc("GET /scoreboard/{slug}/qr", middleware.WithLogging(scoreboardHandler.GetQR))

	// Ball tracking
	mux.HandleFunc("POST /balls/register", middleware.WithLogging(ballHandler.Register))
	mux.HandleFunc("GET /balls/{uuid}", middleware.WithLogging(ballHandler.GetBall))
	mux.HandleFunc("GET /balls/{uuid}/games", middleware.WithLogging(ballHandler.ListGames))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("tenpin API v1"))
	})

	return mux
}
