// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"log/slog"
	"net/http"
	"time"

	"tenpin/auth"
	"tenpin/cliparse"
	"tenpin/middleware"
	"tenpin/models"
)

type GameHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewGameHandler(db *sql.DB, cfg cliparse.Config) *GameHandler {
	return &GameHandler{db: db, cfg: cfg}
}

// CreateGame handles POST /games
func (h *GameHandler) CreateGame(w http.ResponseWriter, r *http.Request) {
	var req models.CreateGameRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	// Validate input
	if req.Title == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "title is required")
		return
	}
	if req.BowlerName == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "bowler_name is required")
		return
	}

	// Generate game ID
	gameID, err := auth.GenerateID(16)
	if err != nil {
		slog.Error("failed to generate game ID", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create game")
		return
	}

	// Scorer key and share slug are both derived from the game ID, so the
	// scoreboard link exists from the first frame
	scorerKey := auth.GenerateScorerKey(gameID, h.cfg.ScorerKeySalt)
	shareSlug := auth.GenerateShareSlug(gameID, h.cfg.ShareSlugSalt)

	// Insert game into database
	_, err = h.db.Exec(`
		INSERT INTO game (id, title, bowler_name, status, share_slug, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, gameID, req.Title, req.BowlerName, models.StatusInProgress, shareSlug, time.Now())

	if err != nil {
		slog.Error("failed to insert game", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create game")
		return
	}

	slog.Info("game created", "game_id", gameID, "bowler", req.BowlerName)

	// Return response
	middleware.JSONResponse(w, http.StatusCreated, models.CreateGameResponse{
		GameID:    gameID,
		ScorerKey: scorerKey,
		ShareSlug: shareSlug,
		ShareURL:  h.cfg.BaseURL + "/scoreboard/" + shareSlug,
	})
}

// GetGame handles GET /games/:id
// Returns the scorekeeper view: game, live-scored frames, and stats
func (h *GameHandler) GetGame(w http.ResponseWriter, r *http.Request) {
	gameID := r.PathValue("id")
	if gameID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "game_id is required")
		return
	}

	// Validate scorer key
	scorerKey := r.Header.Get("X-Scorer-Key")
	if err := auth.ValidateScorerKey(gameID, scorerKey, h.cfg.ScorerKeySalt); err != nil {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Invalid scorer key")
		return
	}

	// Get game by ID
	var game models.Game
	err := h.db.QueryRow(`
		SELECT id, title, bowler_name, status, share_slug, completed_at, final_snapshot_id, created_at
		FROM game
		WHERE id = ?
	`, gameID).Scan(
		&game.ID, &game.Title, &game.BowlerName, &game.Status,
		&game.ShareSlug, &game.CompletedAt, &game.FinalSnapshotID, &game.CreatedAt,
	)

	if err == sql.ErrNoRows {
		middleware.ErrorResponse(w, http.StatusNotFound, "Game not found")
		return
	}
	if err != nil {
		slog.Error("failed to query game", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	sheet, err := ComputeScoresheet(h.db, gameID)
	if err != nil {
		slog.Error("failed to compute scoresheet", "error", err, "game_id", gameID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to score game")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.Scoreboard{
		Game:        game,
		Frames:      sheet.Frames,
		Stats:       sheet.Stats,
		Total:       sheet.Total,
		Provisional: sheet.Provisional,
	})
}

// DeleteGame handles DELETE /games/:id
func (h *GameHandler) DeleteGame(w http.ResponseWriter, r *http.Request) {
	gameID := r.PathValue("id")
	if gameID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "game_id is required")
		return
	}

	// Validate scorer key
	scorerKey := r.Header.Get("X-Scorer-Key")
	if err := auth.ValidateScorerKey(gameID, scorerKey, h.cfg.ScorerKeySalt); err != nil {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Invalid scorer key")
		return
	}

	// Frames and snapshots go with it via ON DELETE CASCADE
	result, err := h.db.Exec(`DELETE FROM game WHERE id = ?`, gameID)
	if err != nil {
		slog.Error("failed to delete game", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to delete game")
		return
	}

	affected, err := result.RowsAffected()
	if err != nil {
		slog.Error("failed to read rows affected", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to delete game")
		return
	}
	if affected == 0 {
		middleware.ErrorResponse(w, http.StatusNotFound, "Game not found")
		return
	}

	slog.Info("game deleted", "game_id", gameID)

	middleware.JSONResponse(w, http.StatusOK, map[string]string{
		"message": "Game deleted",
	})
}
