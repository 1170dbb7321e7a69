// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the tenpin API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(db, cfg)

# Endpoints

Health:

	GET /health

Game management (scorer, requires X-Scorer-Key):

	POST   /games      - Create game
	GET    /games/{id} - Get game with live scoresheet
	DELETE /games/{id} - Delete game and its frames

Frame recording (scorer, requires X-Scorer-Key):

	POST   /games/{id}/frames          - Record or replace a frame
	DELETE /games/{id}/frames/{number} - Remove a frame

Scoreboard (public, uses share slug):

	GET /scoreboard/{slug}         - Full scoresheet
	GET /scoreboard/{slug}/summary - Compact totals
	GET /scoreboard/{slug}/qr      - PNG QR code for the scoreboard URL

Ball tracking:

	POST /balls/register     - Register or update a ball
	GET  /balls/{uuid}       - Get ball info
	GET  /balls/{uuid}/games - List games the ball appeared in

# Handler Initialization

The router creates handler instances with dependency injection:

	gameHandler := handlers.NewGameHandler(db, cfg)
	frameHandler := handlers.NewFrameHandler(db, cfg)
	scoreboardHandler := handlers.NewScoreboardHandler(db, cfg)
	ballHandler := handlers.NewBallHandler(db, cfg)

All handlers receive the database connection and configuration.
*/
package router
