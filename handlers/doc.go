// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the tenpin API.

# Handler Types

Each handler is a struct with database and config dependencies:

  - GameHandler: Game lifecycle (create, fetch, delete)
  - FrameHandler: Frame recording, replacement, and removal
  - ScoreboardHandler: Public scoreboard, summary, and QR code
  - BallHandler: Ball registration and per-ball game history

Handlers are created via constructor functions that accept *sql.DB and Config:

	gameHandler := handlers.NewGameHandler(db, cfg)

# Game Lifecycle

Games progress through two states: in_progress → completed

	POST   /games                       → CreateGame (returns scorer_key and share URL)
	GET    /games/{id}                  → GetGame (live scoreboard for the scorer)
	POST   /games/{id}/frames           → RecordFrame (create or replace one frame)
	DELETE /games/{id}/frames/{number}  → DeleteFrame (reopens a completed game)
	DELETE /games/{id}                  → DeleteGame

Scorer operations require the X-Scorer-Key header. A game seals itself the
moment all ten frames are complete: RecordFrame flips the status and writes a
final score snapshot in the same transaction as the frame write.

# Scoring

Frame scoring is implemented in scoresheet.go on top of the scoring package:

	sheet, err := ComputeScoresheet(db, gameID)

This loads the recorded frames, computes cumulative scores with strike and
spare bonuses, and reports whether the total is still provisional.

# Spectator Flow

Spectators interact via the share slug, no key required:

	GET /scoreboard/{slug}         → GetScoreboard
	GET /scoreboard/{slug}/summary → GetSummary
	GET /scoreboard/{slug}/qr      → GetQR (PNG)

Completed games serve the sealed snapshot; in-progress games are scored live
on every request.

# Ball Tracking

Optional ball tracking for bowlers who rotate equipment:

	POST /balls/register     → Register
	GET  /balls/{uuid}       → GetBall
	GET  /balls/{uuid}/games → ListGames

Balls are identified by a client-supplied UUID and linked to frames via the
optional ball_uuid field on RecordFrame.
*/
package handlers
