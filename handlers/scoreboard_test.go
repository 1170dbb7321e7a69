// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"tenpin/auth"
	"tenpin/models"
)

func TestGetScoreboard(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	cfg := getTestConfig()
	handler := NewScoreboardHandler(db, cfg)

	// Create an in-progress game with a few frames
	gameID, _ := auth.GenerateID(16)
	shareSlug := auth.GenerateShareSlug(gameID, cfg.ShareSlugSalt)
	_, err := db.Exec(`
		INSERT INTO game (id, title, bowler_name, status, share_slug, created_at)
		VALUES (?, 'League Night', 'Alice', 'in_progress', ?, ?)
	`, gameID, shareSlug, time.Now())
	if err != nil {
		t.Fatalf("Failed to create test game: %v", err)
	}

	insertTestFrame(t, db, gameID, 1, []int{10})
	insertTestFrame(t, db, gameID, 2, []int{5, 5})

	tests := []struct {
		name           string
		shareSlug      string
		expectedStatus int
		checkResponse  func(t *testing.T, resp *models.Scoreboard)
	}{
		{
			name:           "valid scoreboard retrieval",
			shareSlug:      shareSlug,
			expectedStatus: http.StatusOK,
			checkResponse: func(t *testing.T, resp *models.Scoreboard) {
				if resp.Game.ID != gameID {
					t.Errorf("Expected game ID %s, got %s", gameID, resp.Game.ID)
				}
				if resp.Game.Title != "League Night" {
					t.Errorf("Expected title 'League Night', got '%s'", resp.Game.Title)
				}
				if resp.Game.BowlerName != "Alice" {
					t.Errorf("Expected bowler 'Alice', got '%s'", resp.Game.BowlerName)
				}

				if len(resp.Frames) != 2 {
					t.Fatalf("Expected 2 frames, got %d", len(resp.Frames))
				}

				// Strike then spare: 20, then 30 with the spare bonus open
				if resp.Frames[0].CumulativeScore != 20 {
					t.Errorf("Expected frame 1 score 20, got %d", resp.Frames[0].CumulativeScore)
				}
				if resp.Frames[1].CumulativeScore != 30 {
					t.Errorf("Expected frame 2 score 30, got %d", resp.Frames[1].CumulativeScore)
				}

				if !resp.Provisional {
					t.Error("Expected provisional scores for an in-progress game")
				}
			},
		},
		{
			name:           "game not found",
			shareSlug:      "nonexistent",
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/scoreboard/"+tt.shareSlug, nil)
			req.SetPathValue("slug", tt.shareSlug)
			w := httptest.NewRecorder()

			handler.GetScoreboard(w, req)

			if w.Code != tt.expectedStatus {
				t.Errorf("Expected status %d, got %d. Body: %s", tt.expectedStatus, w.Code, w.Body.String())
			}

			if tt.expectedStatus == http.StatusOK && tt.checkResponse != nil {
				var resp models.Scoreboard
				if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
					t.Fatalf("Failed to decode response: %v", err)
				}
				tt.checkResponse(t, &resp)
			}
		})
	}
}

func TestGetScoreboardForCompletedGame(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	cfg := getTestConfig()
	handler := NewScoreboardHandler(db, cfg)

	// Create a completed game with a sealed snapshot. The frame table stays
	// empty so a live compute would return nothing; the handler must serve
	// the snapshot.
	gameID, _ := auth.GenerateID(16)
	shareSlug := auth.GenerateShareSlug(gameID, cfg.ShareSlugSalt)
	snapshotID, _ := auth.GenerateID(16)

	_, err := db.Exec(`
		INSERT INTO game (id, title, bowler_name, status, share_slug, final_snapshot_id, completed_at, created_at)
		VALUES (?, 'Finished Game', 'Alice', 'completed', ?, ?, ?, ?)
	`, gameID, shareSlug, snapshotID, time.Now(), time.Now())
	if err != nil {
		t.Fatalf("Failed to create test game: %v", err)
	}

	frames := make([]models.ScoredFrame, 10)
	for i := range frames {
		frames[i] = models.ScoredFrame{
			FrameNumber:     i + 1,
			Throws:          []int{4, 5},
			CumulativeScore: (i + 1) * 9,
		}
	}
	payloadJSON, _ := json.Marshal(snapshotPayload{
		Frames:     frames,
		Stats:      models.FrameStats{Opens: 9},
		Total:      90,
		InputsHash: "test-hash",
	})

	_, err = db.Exec(`
		INSERT INTO score_snapshot (id, game_id, computed_at, payload)
		VALUES (?, ?, ?, ?)
	`, snapshotID, gameID, time.Now(), string(payloadJSON))
	if err != nil {
		t.Fatalf("Failed to create snapshot: %v", err)
	}

	req := httptest.NewRequest("GET", "/scoreboard/"+shareSlug, nil)
	req.SetPathValue("slug", shareSlug)
	w := httptest.NewRecorder()

	handler.GetScoreboard(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status %d, got %d. Body: %s", http.StatusOK, w.Code, w.Body.String())
	}

	var resp models.Scoreboard
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}

	if resp.Provisional {
		t.Error("Expected final scores for a completed game")
	}
	if len(resp.Frames) != 10 {
		t.Errorf("Expected 10 frames from the snapshot, got %d", len(resp.Frames))
	}
	if resp.Total != 90 {
		t.Errorf("Expected total 90 from the snapshot, got %d", resp.Total)
	}
	if resp.Stats.Opens != 9 {
		t.Errorf("Expected 9 opens from the snapshot, got %d", resp.Stats.Opens)
	}
}

func TestGetSummary(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	cfg := getTestConfig()
	handler := NewScoreboardHandler(db, cfg)

	gameID, _ := auth.GenerateID(16)
	shareSlug := auth.GenerateShareSlug(gameID, cfg.ShareSlugSalt)
	_, err := db.Exec(`
		INSERT INTO game (id, title, bowler_name, status, share_slug, created_at)
		VALUES (?, 'League Night', 'Alice', 'in_progress', ?, ?)
	`, gameID, shareSlug, time.Now())
	if err != nil {
		t.Fatalf("Failed to create test game: %v", err)
	}

	insertTestFrame(t, db, gameID, 1, []int{10})
	insertTestFrame(t, db, gameID, 2, []int{5, 5})

	tests := []struct {
		name           string
		shareSlug      string
		expectedStatus int
		checkResponse  func(t *testing.T, resp *models.SummaryResponse)
	}{
		{
			name:           "valid summary retrieval",
			shareSlug:      shareSlug,
			expectedStatus: http.StatusOK,
			checkResponse: func(t *testing.T, resp *models.SummaryResponse) {
				if resp.Title != "League Night" {
					t.Errorf("Expected title 'League Night', got '%s'", resp.Title)
				}
				if resp.BowlerName != "Alice" {
					t.Errorf("Expected bowler 'Alice', got '%s'", resp.BowlerName)
				}
				if resp.Status != models.StatusInProgress {
					t.Errorf("Expected status 'in_progress', got '%s'", resp.Status)
				}
				if resp.FramesRecorded != 2 {
					t.Errorf("Expected 2 frames recorded, got %d", resp.FramesRecorded)
				}
				if resp.Total != 30 {
					t.Errorf("Expected total 30, got %d", resp.Total)
				}
				if resp.Strikes != 1 || resp.Spares != 1 {
					t.Errorf("Unexpected stats: %d strikes, %d spares", resp.Strikes, resp.Spares)
				}
				if !resp.Provisional {
					t.Error("Expected provisional summary for an in-progress game")
				}
			},
		},
		{
			name:           "game not found",
			shareSlug:      "nonexistent",
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/scoreboard/"+tt.shareSlug+"/summary", nil)
			req.SetPathValue("slug", tt.shareSlug)
			w := httptest.NewRecorder()

			handler.GetSummary(w, req)

			if w.Code != tt.expectedStatus {
				t.Errorf("Expected status %d, got %d. Body: %s", tt.expectedStatus, w.Code, w.Body.String())
			}

			if tt.expectedStatus == http.StatusOK && tt.checkResponse != nil {
				var resp models.SummaryResponse
				if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
					t.Fatalf("Failed to decode response: %v", err)
				}
				tt.checkResponse(t, &resp)
			}
		})
	}
}

func TestGetSummaryForCompletedGame(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	cfg := getTestConfig()
	handler := NewScoreboardHandler(db, cfg)

	gameID, _ := auth.GenerateID(16)
	shareSlug := auth.GenerateShareSlug(gameID, cfg.ShareSlugSalt)
	snapshotID, _ := auth.GenerateID(16)

	_, err := db.Exec(`
		INSERT INTO game (id, title, bowler_name, status, share_slug, final_snapshot_id, completed_at, created_at)
		VALUES (?, 'Finished Game', 'Bob', 'completed', ?, ?, ?, ?)
	`, gameID, shareSlug, snapshotID, time.Now(), time.Now())
	if err != nil {
		t.Fatalf("Failed to create test game: %v", err)
	}

	frames := make([]models.ScoredFrame, 10)
	for i := range frames {
		frames[i] = models.ScoredFrame{FrameNumber: i + 1, Throws: []int{10}, CumulativeScore: (i + 1) * 30}
	}
	payloadJSON, _ := json.Marshal(snapshotPayload{
		Frames:     frames,
		Stats:      models.FrameStats{Strikes: 11},
		Total:      300,
		InputsHash: "test-hash",
	})

	_, err = db.Exec(`
		INSERT INTO score_snapshot (id, game_id, computed_at, payload)
		VALUES (?, ?, ?, ?)
	`, snapshotID, gameID, time.Now(), string(payloadJSON))
	if err != nil {
		t.Fatalf("Failed to create snapshot: %v", err)
	}

	req := httptest.NewRequest("GET", "/scoreboard/"+shareSlug+"/summary", nil)
	req.SetPathValue("slug", shareSlug)
	w := httptest.NewRecorder()

	handler.GetSummary(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status %d, got %d. Body: %s", http.StatusOK, w.Code, w.Body.String())
	}

	var resp models.SummaryResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}

	if resp.Total != 300 {
		t.Errorf("Expected total 300 from the snapshot, got %d", resp.Total)
	}
	if resp.Strikes != 11 {
		t.Errorf("Expected 11 strikes from the snapshot, got %d", resp.Strikes)
	}
	if resp.Provisional {
		t.Error("Expected final summary for a completed game")
	}
}

func TestGetQR(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	cfg := getTestConfig()
	handler := NewScoreboardHandler(db, cfg)

	gameID, _ := auth.GenerateID(16)
	shareSlug := auth.GenerateShareSlug(gameID, cfg.ShareSlugSalt)
	_, err := db.Exec(`
		INSERT INTO game (id, title, bowler_name, status, share_slug, created_at)
		VALUES (?, 'League Night', 'Alice', 'in_progress', ?, ?)
	`, gameID, shareSlug, time.Now())
	if err != nil {
		t.Fatalf("Failed to create test game: %v", err)
	}

	tests := []struct {
		name           string
		shareSlug      string
		expectedStatus int
	}{
		{
			name:           "valid QR code",
			shareSlug:      shareSlug,
			expectedStatus: http.StatusOK,
		},
		{
			name:           "game not found",
			shareSlug:      "nonexistent",
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/scoreboard/"+tt.shareSlug+"/qr", nil)
			req.SetPathValue("slug", tt.shareSlug)
			w := httptest.NewRecorder()

			handler.GetQR(w, req)

			if w.Code != tt.expectedStatus {
				t.Errorf("Expected status %d, got %d. Body: %s", tt.expectedStatus, w.Code, w.Body.String())
			}

			if tt.expectedStatus == http.StatusOK {
				if ct := w.Header().Get("Content-Type"); ct != "image/png" {
					t.Errorf("Expected Content-Type 'image/png', got '%s'", ct)
				}

				// PNG signature
				if !bytes.HasPrefix(w.Body.Bytes(), []byte("\x89PNG")) {
					t.Error("Response body is not a PNG image")
				}
			}
		})
	}
}
