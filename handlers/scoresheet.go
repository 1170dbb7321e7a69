// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"tenpin/models"
	"tenpin/scoring"
)

// dbtx is the query subset satisfied by both *sql.DB and *sql.Tx, so the
// scoresheet can be computed live or inside the transaction that records a
// frame.
type dbtx interface {
	Query(query string, args ...any) (*sql.Rows, error)
	QueryRow(query string, args ...any) *sql.Row
}

// Scoresheet is a fully scored view of one game's recorded frames.
type Scoresheet struct {
	Frames      []models.ScoredFrame
	Stats       models.FrameStats
	Total       int
	Provisional bool
}

// ComputeScoresheet loads a game's frames and scores them with the official
// rules. Provisional is true until all ten frames are recorded and complete,
// meaning strike and spare bonuses near the end may still grow.
func ComputeScoresheet(q dbtx, gameID string) (Scoresheet, error) {
	frames, err := loadFrames(q, gameID)
	if err != nil {
		return Scoresheet{}, err
	}
	return scoreFrames(frames)
}

func scoreFrames(frames []models.Frame) (Scoresheet, error) {
	input := make([]scoring.Frame, len(frames))
	for i, f := range frames {
		input[i] = scoring.Frame{Number: f.FrameNumber, Throws: f.Throws}
	}

	scored, err := scoring.ScoreGame(input)
	if err != nil {
		return Scoresheet{}, fmt.Errorf("failed to score game: %w", err)
	}

	stats := scoring.Stats(scored)

	// Frames are sorted by number, so ball IDs line up by another pass
	ballByNumber := make(map[int]string, len(frames))
	for _, f := range frames {
		if f.BallID != nil {
			ballByNumber[f.FrameNumber] = *f.BallID
		}
	}

	sheet := Scoresheet{
		Frames: make([]models.ScoredFrame, len(scored)),
		Stats: models.FrameStats{
			Strikes: stats.Strikes,
			Spares:  stats.Spares,
			Opens:   stats.Opens,
		},
		Provisional: !allFramesComplete(scored),
	}
	for i, f := range scored {
		sheet.Frames[i] = models.ScoredFrame{
			FrameNumber:     f.Number,
			Throws:          f.Throws,
			CumulativeScore: f.Score,
			BallID:          ballByNumber[f.Number],
		}
	}
	if n := len(scored); n > 0 {
		sheet.Total = scored[n-1].Score
	}
	return sheet, nil
}

// allFramesComplete reports whether frames 1-10 are all recorded and each
// holds a finished throw sequence. This is the game-completion condition.
func allFramesComplete(frames []scoring.Frame) bool {
	if len(frames) != 10 {
		return false
	}
	for _, f := range frames {
		if !f.IsComplete() {
			return false
		}
	}
	return true
}

// loadFrames reads a game's frames in frame order, decoding the stored JSON
// throw arrays.
func loadFrames(q dbtx, gameID string) ([]models.Frame, error) {
	rows, err := q.Query(`
		SELECT id, game_id, frame_number, throws, ball_id, recorded_at
		FROM frame
		WHERE game_id = ?
		ORDER BY frame_number
	`, gameID)
	if err != nil {
		return nil, fmt.Errorf("failed to query frames: %w", err)
	}
	defer rows.Close()

	frames := []models.Frame{}
	for rows.Next() {
		var f models.Frame
		var throwsJSON string
		var ballID sql.NullString
		if err := rows.Scan(&f.ID, &f.GameID, &f.FrameNumber, &throwsJSON, &ballID, &f.RecordedAt); err != nil {
			return nil, fmt.Errorf("failed to scan frame: %w", err)
		}
		if err := json.Unmarshal([]byte(throwsJSON), &f.Throws); err != nil {
			return nil, fmt.Errorf("frame %d has corrupt throws %q: %w", f.FrameNumber, throwsJSON, err)
		}
		if ballID.Valid {
			f.BallID = &ballID.String
		}
		frames = append(frames, f)
	}
	return frames, rows.Err()
}

// snapshotPayload is the JSON shape sealed into score_snapshot.payload.
type snapshotPayload struct {
	Frames     []models.ScoredFrame `json:"frames"`
	Stats      models.FrameStats    `json:"stats"`
	Total      int                  `json:"total"`
	InputsHash string               `json:"inputs_hash"`
}

// inputsHash fingerprints the frame rows a snapshot was computed from, so a
// sealed result can be checked against the data that produced it.
func inputsHash(frames []models.Frame) string {
	ids := make([]string, len(frames))
	for i, f := range frames {
		ids[i] = f.ID
	}
	sort.Strings(ids)
	sum := sha256.Sum256([]byte(strings.Join(ids, ",")))
	return hex.EncodeToString(sum[:])
}
