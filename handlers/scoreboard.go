// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/skip2/go-qrcode"

	"tenpin/cliparse"
	"tenpin/middleware"
	"tenpin/models"
)

type ScoreboardHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewScoreboardHandler(db *sql.DB, cfg cliparse.Config) *ScoreboardHandler {
	return &ScoreboardHandler{db: db, cfg: cfg}
}

// GetScoreboard handles GET /scoreboard/:slug
// In-progress games are scored live and flagged provisional. Completed games
// serve the sealed snapshot computed when the tenth frame went in.
func (h *ScoreboardHandler) GetScoreboard(w http.ResponseWriter, r *http.Request) {
	shareSlug := r.PathValue("slug")
	if shareSlug == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "slug is required")
		return
	}

	// Get game by share slug
	var game models.Game
	err := h.db.QueryRow(`
		SELECT id, title, bowler_name, status, share_slug, completed_at, final_snapshot_id, created_at
		FROM game
		WHERE share_slug = ?
	`, shareSlug).Scan(
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

	if game.Status == models.StatusCompleted && game.FinalSnapshotID != nil {
		payload, err := h.loadSnapshot(*game.FinalSnapshotID)
		if err != nil {
			slog.Error("failed to load snapshot", "error", err, "game_id", game.ID)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Results not available")
			return
		}

		middleware.JSONResponse(w, http.StatusOK, models.Scoreboard{
			Game:        game,
			Frames:      payload.Frames,
			Stats:       payload.Stats,
			Total:       payload.Total,
			Provisional: false,
		})
		return
	}

	// Live compute for in-progress games
	sheet, err := ComputeScoresheet(h.db, game.ID)
	if err != nil {
		slog.Error("failed to compute scoresheet", "error", err, "game_id", game.ID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to score game")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.Scoreboard{
		Game:        game,
		Frames:      sheet.Frames,
		Stats:       sheet.Stats,
		Total:       sheet.Total,
		Provisional: true,
	})
}

// GetSummary handles GET /scoreboard/:slug/summary
// Returns compact game data for link previews
func (h *ScoreboardHandler) GetSummary(w http.ResponseWriter, r *http.Request) {
	shareSlug := r.PathValue("slug")
	if shareSlug == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "slug is required")
		return
	}

	var gameID, title, bowlerName, status string
	var snapshotID sql.NullString
	err := h.db.QueryRow(`
		SELECT id, title, bowler_name, status, final_snapshot_id
		FROM game
		WHERE share_slug = ?
	`, shareSlug).Scan(&gameID, &title, &bowlerName, &status, &snapshotID)

	if err == sql.ErrNoRows {
		middleware.ErrorResponse(w, http.StatusNotFound, "Game not found")
		return
	}
	if err != nil {
		slog.Error("failed to query game", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	summary := models.SummaryResponse{
		Title:      title,
		BowlerName: bowlerName,
		Status:     status,
	}

	if status == models.StatusCompleted && snapshotID.Valid {
		payload, err := h.loadSnapshot(snapshotID.String)
		if err != nil {
			slog.Error("failed to load snapshot", "error", err, "game_id", gameID)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Results not available")
			return
		}
		summary.FramesRecorded = len(payload.Frames)
		summary.Total = payload.Total
		summary.Strikes = payload.Stats.Strikes
		summary.Spares = payload.Stats.Spares
	} else {
		sheet, err := ComputeScoresheet(h.db, gameID)
		if err != nil {
			slog.Error("failed to compute scoresheet", "error", err, "game_id", gameID)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to score game")
			return
		}
		summary.FramesRecorded = len(sheet.Frames)
		summary.Total = sheet.Total
		summary.Strikes = sheet.Stats.Strikes
		summary.Spares = sheet.Stats.Spares
		summary.Provisional = true
	}

	middleware.JSONResponse(w, http.StatusOK, summary)
}

// GetQR handles GET /scoreboard/:slug/qr
// Returns a PNG QR code pointing at the public scoreboard
func (h *ScoreboardHandler) GetQR(w http.ResponseWriter, r *http.Request) {
	shareSlug := r.PathValue("slug")
	if shareSlug == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "slug is required")
		return
	}

	var gameID string
	err := h.db.QueryRow(`SELECT id FROM game WHERE share_slug = ?`, shareSlug).Scan(&gameID)
	if err == sql.ErrNoRows {
		middleware.ErrorResponse(w, http.StatusNotFound, "Game not found")
		return
	}
	if err != nil {
		slog.Error("failed to query game", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	shareURL := h.cfg.BaseURL + "/scoreboard/" + shareSlug
	png, err := qrcode.Encode(shareURL, qrcode.Medium, 256)
	if err != nil {
		slog.Error("failed to generate QR code", "error", err, "game_id", gameID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to generate QR code")
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Write(png)
}

// loadSnapshot reads and decodes one sealed snapshot payload.
func (h *ScoreboardHandler) loadSnapshot(snapshotID string) (snapshotPayload, error) {
	var payloadJSON []byte
	err := h.db.QueryRow(`
		SELECT payload FROM score_snapshot WHERE id = ?
	`, snapshotID).Scan(&payloadJSON)
	if err != nil {
		return snapshotPayload{}, err
	}

	var payload snapshotPayload
	if err := json.Unmarshal(payloadJSON, &payload); err != nil {
		return snapshotPayload{}, err
	}
	return payload, nil
}
