// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"tenpin/auth"
	"tenpin/cliparse"
	"tenpin/middleware"
	"tenpin/models"
)

type BallHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewBallHandler(db *sql.DB, cfg cliparse.Config) *BallHandler {
	return &BallHandler{db: db, cfg: cfg}
}

// Register handles POST /balls/register
// Registers a ball under a client-generated UUID, or refreshes the existing
// record when the UUID is already known
func (h *BallHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterBallRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if _, err := uuid.Parse(req.BallUUID); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "ball_uuid must be a valid UUID")
		return
	}
	if req.Name == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "name is required")
		return
	}
	if req.WeightLbs < models.MinBallWeightLbs || req.WeightLbs > models.MaxBallWeightLbs {
		middleware.ErrorResponse(w, http.StatusBadRequest,
			fmt.Sprintf("weight_lbs must be between %d and %d", models.MinBallWeightLbs, models.MaxBallWeightLbs))
		return
	}

	// Check if ball already exists
	var existingID string
	err := h.db.QueryRow(`
		SELECT id FROM ball WHERE ball_uuid = ?
	`, req.BallUUID).Scan(&existingID)

	if err == nil {
		// Ball exists: refresh its details and last_used_at
		_, err = h.db.Exec(`
			UPDATE ball SET name = ?, weight_lbs = ?, coverstock = ?, last_used_at = ?
			WHERE id = ?
		`, req.Name, req.WeightLbs, req.Coverstock, time.Now(), existingID)
		if err != nil {
			slog.Error("failed to update ball", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to register ball")
			return
		}

		slog.Info("ball registered (existing)", "ball_id", existingID)
		middleware.JSONResponse(w, http.StatusOK, models.RegisterBallResponse{
			BallID: existingID,
			IsNew:  false,
		})
		return
	}

	if err != sql.ErrNoRows {
		slog.Error("failed to query ball", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	// Create new ball
	ballID, err := auth.GenerateID(16)
	if err != nil {
		slog.Error("failed to generate ball ID", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to register ball")
		return
	}

	now := time.Now()
	_, err = h.db.Exec(`
		INSERT INTO ball (id, ball_uuid, name, weight_lbs, coverstock, created_at, last_used_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, ballID, req.BallUUID, req.Name, req.WeightLbs, req.Coverstock, now, now)

	if err != nil {
		slog.Error("failed to insert ball", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to register ball")
		return
	}

	slog.Info("ball registered (new)", "ball_id", ballID, "name", req.Name, "weight_lbs", req.WeightLbs)

	middleware.JSONResponse(w, http.StatusCreated, models.RegisterBallResponse{
		BallID: ballID,
		IsNew:  true,
	})
}

// GetBall handles GET /balls/:uuid
func (h *BallHandler) GetBall(w http.ResponseWriter, r *http.Request) {
	ballUUID := r.PathValue("uuid")
	if _, err := uuid.Parse(ballUUID); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "ball_uuid must be a valid UUID")
		return
	}

	ball, err := h.lookupBall(ballUUID)
	if err == sql.ErrNoRows {
		middleware.ErrorResponse(w, http.StatusNotFound, "Ball not registered")
		return
	}
	if err != nil {
		slog.Error("failed to query ball", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, ball)
}

// ListGames handles GET /balls/:uuid/games
// Returns the games this ball has recorded frames in, newest first
func (h *BallHandler) ListGames(w http.ResponseWriter, r *http.Request) {
	ballUUID := r.PathValue("uuid")
	if _, err := uuid.Parse(ballUUID); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "ball_uuid must be a valid UUID")
		return
	}

	ball, err := h.lookupBall(ballUUID)
	if err == sql.ErrNoRows {
		middleware.ErrorResponse(w, http.StatusNotFound, "Ball not registered")
		return
	}
	if err != nil {
		slog.Error("failed to query ball", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	rows, err := h.db.Query(`
		SELECT g.id, g.title, g.bowler_name, g.status, COUNT(f.id) AS frames_recorded, g.created_at
		FROM game g
		JOIN frame f ON f.game_id = g.id
		WHERE f.ball_id = ?
		GROUP BY g.id, g.title, g.bowler_name, g.status, g.created_at
		ORDER BY g.created_at DESC
	`, ball.ID)

	if err != nil {
		slog.Error("failed to query ball games", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	defer rows.Close()

	games := []models.BallGameSummary{}
	for rows.Next() {
		var summary models.BallGameSummary
		if err := rows.Scan(
			&summary.GameID,
			&summary.Title,
			&summary.BowlerName,
			&summary.Status,
			&summary.FramesRecorded,
			&summary.CreatedAt,
		); err != nil {
			slog.Error("failed to scan game", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
			return
		}
		games = append(games, summary)
	}
	if err := rows.Err(); err != nil {
		slog.Error("failed to read ball games", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.BallGamesResponse{
		Ball:  ball,
		Games: games,
	})
}

func (h *BallHandler) lookupBall(ballUUID string) (models.Ball, error) {
	var ball models.Ball
	var coverstock sql.NullString
	err := h.db.QueryRow(`
		SELECT id, ball_uuid, name, weight_lbs, coverstock, created_at, last_used_at
		FROM ball
		WHERE ball_uuid = ?
	`, ballUUID).Scan(
		&ball.ID, &ball.BallUUID, &ball.Name, &ball.WeightLbs,
		&coverstock, &ball.CreatedAt, &ball.LastUsedAt,
	)
	if err != nil {
		return models.Ball{}, err
	}
	ball.Coverstock = coverstock.String
	return ball, nil
}
