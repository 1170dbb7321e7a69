// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"

	"tenpin/auth"
	"tenpin/cliparse"
	"tenpin/middleware"
	"tenpin/models"
	"tenpin/scoring"
)

type FrameHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewFrameHandler(db *sql.DB, cfg cliparse.Config) *FrameHandler {
	return &FrameHandler{db: db, cfg: cfg}
}

// RecordFrame handles POST /games/:id/frames
// Records or replaces one frame's throws. The write, the rescore, and any
// game completion all happen in a single transaction.
func (h *FrameHandler) RecordFrame(w http.ResponseWriter, r *http.Request) {
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

	// Parse request
	var req models.RecordFrameRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	// Reject illegal throw sequences before touching the database. The
	// message names the violated rule and goes to the client verbatim.
	if err := scoring.ValidateThrows(req.Throws, req.FrameNumber); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	// Resolve the optional ball reference
	var ballID sql.NullString
	if req.BallUUID != "" {
		if _, err := uuid.Parse(req.BallUUID); err != nil {
			middleware.ErrorResponse(w, http.StatusBadRequest, "ball_uuid must be a valid UUID")
			return
		}

		err := h.db.QueryRow("SELECT id FROM ball WHERE ball_uuid = ?", req.BallUUID).Scan(&ballID.String)
		if err == sql.ErrNoRows {
			middleware.ErrorResponse(w, http.StatusNotFound, "Ball not registered")
			return
		}
		if err != nil {
			slog.Error("failed to query ball", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
			return
		}
		ballID.Valid = true
	}

	throwsJSON, err := json.Marshal(req.Throws)
	if err != nil {
		slog.Error("failed to marshal throws", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to record frame")
		return
	}

	// Begin transaction for UPSERT + rescore
	tx, err := h.db.Begin()
	if err != nil {
		slog.Error("failed to begin transaction", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	defer tx.Rollback()

	// The status check runs inside the transaction so two writers racing on
	// the last frame cannot both seal the game.
	var status string
	err = tx.QueryRow("SELECT status FROM game WHERE id = ?", gameID).Scan(&status)
	if err == sql.ErrNoRows {
		middleware.ErrorResponse(w, http.StatusNotFound, "Game not found")
		return
	}
	if err != nil {
		slog.Error("failed to query game", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	if status != models.StatusInProgress {
		middleware.ErrorResponse(w, http.StatusConflict, "Game is already completed")
		return
	}

	// Check if this frame was already recorded
	var existingFrameID string
	err = tx.QueryRow(`
		SELECT id FROM frame WHERE game_id = ? AND frame_number = ?
	`, gameID, req.FrameNumber).Scan(&existingFrameID)

	isUpdate := err != sql.ErrNoRows
	var frameID string

	if isUpdate {
		// Replace the existing frame (a scoring correction)
		frameID = existingFrameID
		_, err = tx.Exec(`
			UPDATE frame
			SET throws = ?, ball_id = ?, recorded_at = ?
			WHERE id = ?
		`, string(throwsJSON), ballID, time.Now(), frameID)

		if err != nil {
			slog.Error("failed to update frame", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to record frame")
			return
		}
	} else {
		// Record a new frame
		frameID, _ = auth.GenerateID(16)
		_, err = tx.Exec(`
			INSERT INTO frame (id, game_id, frame_number, throws, ball_id, recorded_at)
			VALUES (?, ?, ?, ?, ?, ?)
		`, frameID, gameID, req.FrameNumber, string(throwsJSON), ballID, time.Now())

		if err != nil {
			slog.Error("failed to insert frame", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to record frame")
			return
		}
	}

	if ballID.Valid {
		_, err = tx.Exec(`UPDATE ball SET last_used_at = ? WHERE id = ?`, time.Now(), ballID.String)
		if err != nil {
			slog.Error("failed to update ball last_used_at", "error", err)
		}
	}

	// Rescore inside the transaction so the completion check sees the write
	frames, err := loadFrames(tx, gameID)
	if err != nil {
		slog.Error("failed to load frames", "error", err, "game_id", gameID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to score game")
		return
	}
	sheet, err := scoreFrames(frames)
	if err != nil {
		slog.Error("failed to score game", "error", err, "game_id", gameID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to score game")
		return
	}

	// All ten frames complete seals the game: final status, final snapshot,
	// same transaction as the frame write
	gameStatus := models.StatusInProgress
	if !sheet.Provisional {
		snapshotID, _ := auth.GenerateID(16)
		completedAt := time.Now()

		_, err = tx.Exec(`
			UPDATE game
			SET status = ?, completed_at = ?, final_snapshot_id = ?
			WHERE id = ?
		`, models.StatusCompleted, completedAt, snapshotID, gameID)

		if err != nil {
			slog.Error("failed to complete game", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to complete game")
			return
		}

		payload, err := json.Marshal(snapshotPayload{
			Frames:     sheet.Frames,
			Stats:      sheet.Stats,
			Total:      sheet.Total,
			InputsHash: inputsHash(frames),
		})
		if err != nil {
			slog.Error("failed to marshal snapshot payload", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to save results")
			return
		}

		_, err = tx.Exec(`
			INSERT INTO score_snapshot (id, game_id, computed_at, payload)
			VALUES (?, ?, ?, ?)
		`, snapshotID, gameID, completedAt, string(payload))

		if err != nil {
			slog.Error("failed to insert snapshot", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to save results")
			return
		}

		gameStatus = models.StatusCompleted
	}

	if err := tx.Commit(); err != nil {
		slog.Error("failed to commit transaction", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to record frame")
		return
	}

	message := humanize.Ordinal(req.FrameNumber) + " frame recorded"
	if isUpdate {
		message = humanize.Ordinal(req.FrameNumber) + " frame replaced"
	}
	if gameStatus == models.StatusCompleted {
		message += ", game complete"
	}

	slog.Info("frame recorded",
		"game_id", gameID,
		"frame_number", req.FrameNumber,
		"is_update", isUpdate,
		"game_status", gameStatus,
	)

	middleware.JSONResponse(w, http.StatusCreated, models.RecordFrameResponse{
		FrameID:    frameID,
		Frames:     sheet.Frames,
		GameStatus: gameStatus,
		Message:    message,
	})
}

// DeleteFrame handles DELETE /games/:id/frames/:number
// Removing a frame from a completed game reopens it and discards the sealed
// snapshot; later scores become provisional again.
func (h *FrameHandler) DeleteFrame(w http.ResponseWriter, r *http.Request) {
	gameID := r.PathValue("id")
	if gameID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "game_id is required")
		return
	}

	frameNumber, err := strconv.Atoi(r.PathValue("number"))
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "frame number must be an integer")
		return
	}
	if frameNumber < 1 || frameNumber > 10 {
		middleware.ErrorResponse(w, http.StatusBadRequest, scoring.ErrFrameNumber.Error())
		return
	}

	// Validate scorer key
	scorerKey := r.Header.Get("X-Scorer-Key")
	if err := auth.ValidateScorerKey(gameID, scorerKey, h.cfg.ScorerKeySalt); err != nil {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Invalid scorer key")
		return
	}

	tx, err := h.db.Begin()
	if err != nil {
		slog.Error("failed to begin transaction", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	defer tx.Rollback()

	// Check game exists
	var status string
	err = tx.QueryRow("SELECT status FROM game WHERE id = ?", gameID).Scan(&status)
	if err == sql.ErrNoRows {
		middleware.ErrorResponse(w, http.StatusNotFound, "Game not found")
		return
	}
	if err != nil {
		slog.Error("failed to query game", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	result, err := tx.Exec(`
		DELETE FROM frame WHERE game_id = ? AND frame_number = ?
	`, gameID, frameNumber)
	if err != nil {
		slog.Error("failed to delete frame", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to delete frame")
		return
	}

	affected, err := result.RowsAffected()
	if err != nil {
		slog.Error("failed to read rows affected", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to delete frame")
		return
	}
	if affected == 0 {
		middleware.ErrorResponse(w, http.StatusNotFound, "Frame not recorded")
		return
	}

	// A completed game is missing a frame now: reopen it and drop the seal
	if status == models.StatusCompleted {
		_, err = tx.Exec(`
			UPDATE game
			SET status = ?, completed_at = NULL, final_snapshot_id = NULL
			WHERE id = ?
		`, models.StatusInProgress, gameID)
		if err != nil {
			slog.Error("failed to reopen game", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to delete frame")
			return
		}

		_, err = tx.Exec(`DELETE FROM score_snapshot WHERE game_id = ?`, gameID)
		if err != nil {
			slog.Error("failed to delete snapshot", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to delete frame")
			return
		}
	}

	frames, err := loadFrames(tx, gameID)
	if err != nil {
		slog.Error("failed to load frames", "error", err, "game_id", gameID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to score game")
		return
	}
	sheet, err := scoreFrames(frames)
	if err != nil {
		slog.Error("failed to score game", "error", err, "game_id", gameID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to score game")
		return
	}

	if err := tx.Commit(); err != nil {
		slog.Error("failed to commit transaction", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to delete frame")
		return
	}

	slog.Info("frame deleted", "game_id", gameID, "frame_number", frameNumber, "was_completed", status == models.StatusCompleted)

	middleware.JSONResponse(w, http.StatusOK, models.RecordFrameResponse{
		Frames:     sheet.Frames,
		GameStatus: models.StatusInProgress,
		Message:    humanize.Ordinal(frameNumber) + " frame removed",
	})
}
