// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"tenpin/auth"
	"tenpin/cliparse"
	"tenpin/db"
)

// SetupTestDB creates a fresh SQLite database in a per-test temp directory
// with the full schema. The file is removed with the temp dir when the test
// finishes.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	path := filepath.Join(t.TempDir(), "tenpin_test.db")
	conn, err := db.Open(path)
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	if err := db.CreateSchema(conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:          3654,
		DatabasePath:  "tenpin_test.db",
		BaseURL:       "http://localhost:3654",
		ScorerKeySalt: "test-scorer-salt",
		ShareSlugSalt: "test-slug-salt",
	}
}

// CreateTestGame creates a game in the database and returns its ID, scorer
// key, and share slug. status should be "in_progress" or "completed".
func CreateTestGame(t *testing.T, db *sql.DB, cfg cliparse.Config, status string) (gameID, scorerKey, shareSlug string) {
	t.Helper()

	gameID, _ = auth.GenerateID(16)
	scorerKey = auth.GenerateScorerKey(gameID, cfg.ScorerKeySalt)
	shareSlug = auth.GenerateShareSlug(gameID, cfg.ShareSlugSalt)

	var completedAt *time.Time
	if status == "completed" {
		now := time.Now()
		completedAt = &now
	}

	_, err := db.Exec(`
		INSERT INTO game (id, title, bowler_name, status, share_slug, completed_at, created_at)
		VALUES (?, 'Test Game', 'Test Bowler', ?, ?, ?, ?)
	`, gameID, status, shareSlug, completedAt, time.Now())
	if err != nil {
		t.Fatalf("Failed to create test game: %v", err)
	}

	return gameID, scorerKey, shareSlug
}

// InsertTestFrame writes a frame row directly and returns the frame ID.
// It bypasses the handler so tests can stage partial games without a server.
func InsertTestFrame(t *testing.T, db *sql.DB, gameID string, frameNumber int, throws []int) string {
	t.Helper()

	frameID, _ := auth.GenerateID(16)
	throwsJSON, err := json.Marshal(throws)
	if err != nil {
		t.Fatalf("Failed to marshal throws: %v", err)
	}

	_, err = db.Exec(`
		INSERT INTO frame (id, game_id, frame_number, throws, recorded_at)
		VALUES (?, ?, ?, ?, ?)
	`, frameID, gameID, frameNumber, string(throwsJSON), time.Now())
	if err != nil {
		t.Fatalf("Failed to insert test frame: %v", err)
	}

	return frameID
}

// RegisterTestBall creates a ball row and returns the ball ID
func RegisterTestBall(t *testing.T, db *sql.DB, ballUUID, name string, weightLbs int) string {
	t.Helper()

	ballID, _ := auth.GenerateID(16)
	_, err := db.Exec(`
		INSERT INTO ball (id, ball_uuid, name, weight_lbs, created_at, last_used_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, ballID, ballUUID, name, weightLbs, time.Now(), time.Now())
	if err != nil {
		t.Fatalf("Failed to register test ball: %v", err)
	}

	return ballID
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
