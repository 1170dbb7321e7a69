// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles database connection and schema creation.

# Opening the Database

Open returns a SQLite connection with foreign keys enforced, WAL journaling,
and a busy timeout:

	conn, err := db.Open("tenpin.db")

The driver is modernc.org/sqlite (pure Go, no cgo).

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.

# Tables

The schema includes:

  - game: Game metadata and lifecycle state
  - frame: One row per recorded frame, throws stored as a JSON array
  - ball: Registered bowling balls (client-generated UUID)
  - score_snapshot: Immutable sealed scoresheets for completed games

# Relationships

	game 1──* frame
	game 1──* score_snapshot
	ball 1──* frame (optional per frame)

Frame rows are unique per (game_id, frame_number); recording a frame again
replaces it. Foreign keys from frame and score_snapshot to game use
ON DELETE CASCADE.

# Indexes

Performance indexes on:

  - game.share_slug (unique)
  - game.status
  - frame.game_id
  - frame.ball_id
  - ball.ball_uuid (unique)
  - score_snapshot.game_id
*/
package db
