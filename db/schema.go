// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// Open opens the SQLite database at path with the pragmas the app needs:
// foreign keys on, WAL for concurrent readers, a busy timeout so overlapping
// writers queue instead of failing, and immediate transactions so a writer
// holds the write lock from BEGIN rather than racing to upgrade mid-way.
func Open(path string) (*sql.DB, error) {
	dsn := fmt.Sprintf("file:%s?_txlock=immediate&_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)", path)
	conn, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	return conn, nil
}

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

const schema = `
-- Games
CREATE TABLE IF NOT EXISTS game (
    id TEXT PRIMARY KEY,
    title TEXT NOT NULL,
    bowler_name TEXT NOT NULL,
    status TEXT NOT NULL DEFAULT 'in_progress' CHECK (status IN ('in_progress', 'completed')),
    share_slug TEXT NOT NULL UNIQUE,
    completed_at TIMESTAMP,
    final_snapshot_id TEXT,
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_game_share_slug ON game(share_slug);
CREATE INDEX IF NOT EXISTS idx_game_status ON game(status);

-- Balls
CREATE TABLE IF NOT EXISTS ball (
    id TEXT PRIMARY KEY,
    ball_uuid TEXT NOT NULL UNIQUE,
    name TEXT NOT NULL,
    weight_lbs INTEGER NOT NULL CHECK (weight_lbs BETWEEN 6 AND 16),
    coverstock TEXT,
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
    last_used_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_ball_uuid ON ball(ball_uuid);

-- Frames
-- throws holds the frame's throw sequence as a JSON array, e.g. [10] or [5,5,8]
CREATE TABLE IF NOT EXISTS frame (
    id TEXT PRIMARY KEY,
    game_id TEXT NOT NULL REFERENCES game(id) ON DELETE CASCADE,
    frame_number INTEGER NOT NULL CHECK (frame_number BETWEEN 1 AND 10),
    throws TEXT NOT NULL,
    ball_id TEXT REFERENCES ball(id),
    recorded_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
    UNIQUE (game_id, frame_number)
);

CREATE INDEX IF NOT EXISTS idx_frame_game_id ON frame(game_id);
CREATE INDEX IF NOT EXISTS idx_frame_ball_id ON frame(ball_id);

-- Score Snapshots
CREATE TABLE IF NOT EXISTS score_snapshot (
    id TEXT PRIMARY KEY,
    game_id TEXT NOT NULL REFERENCES game(id) ON DELETE CASCADE,
    computed_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
    payload TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_score_snapshot_game_id ON score_snapshot(game_id);
`
