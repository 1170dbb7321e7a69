package models

import "time"

// Game status constants
const (
	StatusInProgress = "in_progress"
	StatusCompleted  = "completed"
)

// Ball weight bounds in pounds (house ball to maximum legal weight)
const (
	MinBallWeightLbs = 6
	MaxBallWeightLbs = 16
)

// Request types

type CreateGameRequest struct {
	Title      string `json:"title"`
	BowlerName string `json:"bowler_name"`
}

type RecordFrameRequest struct {
	FrameNumber int    `json:"frame_number"`
	Throws      []int  `json:"throws"`
	BallUUID    string `json:"ball_uuid,omitempty"`
}

type RegisterBallRequest struct {
	BallUUID   string `json:"ball_uuid"`
	Name       string `json:"name"`
	WeightLbs  int    `json:"weight_lbs"`
	Coverstock string `json:"coverstock,omitempty"`
}

// Response types

type CreateGameResponse struct {
	GameID    string `json:"game_id"`
	ScorerKey string `json:"scorer_key"`
	ShareSlug string `json:"share_slug"`
	ShareURL  string `json:"share_url"`
}

type RecordFrameResponse struct {
	FrameID    string        `json:"frame_id,omitempty"`
	Frames     []ScoredFrame `json:"frames"`
	GameStatus string        `json:"game_status"`
	Message    string        `json:"message"`
}

type RegisterBallResponse struct {
	BallID string `json:"ball_id"`
	IsNew  bool   `json:"is_new"`
}

type SummaryResponse struct {
	Title          string `json:"title"`
	BowlerName     string `json:"bowler_name"`
	Status         string `json:"status"`
	FramesRecorded int    `json:"frames_recorded"`
	Total          int    `json:"total"`
	Provisional    bool   `json:"provisional"`
	Strikes        int    `json:"strikes"`
	Spares         int    `json:"spares"`
}

type BallGamesResponse struct {
	Ball  Ball              `json:"ball"`
	Games []BallGameSummary `json:"games"`
}

// Domain types

type Game struct {
	ID              string     `json:"id"`
	Title           string     `json:"title"`
	BowlerName      string     `json:"bowler_name"`
	Status          string     `json:"status"`
	ShareSlug       string     `json:"share_slug"`
	FinalSnapshotID *string    `json:"final_snapshot_id,omitempty"`
	CompletedAt     *time.Time `json:"completed_at,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
}

type Frame struct {
	ID          string    `json:"id"`
	GameID      string    `json:"game_id"`
	FrameNumber int       `json:"frame_number"`
	Throws      []int     `json:"throws"`
	BallID      *string   `json:"ball_id,omitempty"`
	RecordedAt  time.Time `json:"recorded_at"`
}

type Ball struct {
	ID         string    `json:"id"`
	BallUUID   string    `json:"ball_uuid"`
	Name       string    `json:"name"`
	WeightLbs  int       `json:"weight_lbs"`
	Coverstock string    `json:"coverstock,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	LastUsedAt time.Time `json:"last_used_at"`
}

type BallGameSummary struct {
	GameID         string    `json:"game_id"`
	Title          string    `json:"title"`
	BowlerName     string    `json:"bowler_name"`
	Status         string    `json:"status"`
	FramesRecorded int       `json:"frames_recorded"`
	CreatedAt      time.Time `json:"created_at"`
}

// Scoresheet types

// ScoredFrame is one line of the scoresheet as clients see it.
type ScoredFrame struct {
	FrameNumber     int    `json:"frame_number"`
	Throws          []int  `json:"throws"`
	CumulativeScore int    `json:"cumulative_score"`
	BallID          string `json:"ball_id,omitempty"`
}

type FrameStats struct {
	Strikes int `json:"strikes"`
	Spares  int `json:"spares"`
	Opens   int `json:"opens"`
}

type Scoreboard struct {
	Game        Game          `json:"game"`
	Frames      []ScoredFrame `json:"frames"`
	Stats       FrameStats    `json:"stats"`
	Total       int           `json:"total"`
	Provisional bool          `json:"provisional"`
}

type ScoreSnapshot struct {
	ID         string        `json:"id"`
	GameID     string        `json:"game_id"`
	ComputedAt time.Time     `json:"computed_at"`
	Frames     []ScoredFrame `json:"frames"`
	Stats      FrameStats    `json:"stats"`
	Total      int           `json:"total"`
	InputsHash string        `json:"inputs_hash"` // Hash of all frame IDs for verification
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
