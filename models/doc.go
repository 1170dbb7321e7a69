// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Request Types

Types for parsing incoming JSON:

  - CreateGameRequest: title, bowler_name
  - RecordFrameRequest: frame_number, throws, ball_uuid (optional)
  - RegisterBallRequest: ball_uuid, name, weight_lbs, coverstock (optional)

# Response Types

Types for JSON responses:

  - CreateGameResponse: game_id, scorer_key, share_slug, share_url
  - RecordFrameResponse: frame_id, frames, game_status, message
  - RegisterBallResponse: ball_id, is_new
  - SummaryResponse: compact scoreboard for the share page
  - BallGamesResponse: ball info plus its game history
  - ErrorResponse: error, message

# Domain Types

Internal data structures:

  - Game: game metadata and lifecycle state
  - Frame: one recorded frame with its throw sequence
  - Ball: registered bowling ball
  - ScoredFrame: frame plus cumulative score, as clients see it
  - FrameStats: strike/spare/open tallies
  - Scoreboard: full scoresheet response
  - ScoreSnapshot: immutable sealed result record

# Constants

Status values:

	StatusInProgress = "in_progress"
	StatusCompleted  = "completed"

Ball weight bounds:

	MinBallWeightLbs = 6
	MaxBallWeightLbs = 16
*/
package models
