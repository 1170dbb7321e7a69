// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the tenpin API server.

Tenpin is a bowling score tracking service. A scorer records frames from
their phone, the score engine applies standard tenpin rules (strike and
spare bonuses, the three-throw tenth frame), and spectators follow the
game live through a shareable scoreboard link or QR code.

# Starting the Server

The server requires environment variables or CLI flags for configuration:

	SCORER_KEY_SALT=... SHARE_SLUG_SALT=... go run main.go

Or with flags:

	go run main.go -p 3654 -d "tenpin.db"

A .env file in the working directory is loaded automatically.

# Configuration

Required settings:

  - SCORER_KEY_SALT (--scorer-salt): Secret for scorer key HMAC
  - SHARE_SLUG_SALT (--slug-salt): Secret for share slug generation

Optional settings:

  - PORT (-p): Server port (default: 3654)
  - DATABASE_PATH (-d): SQLite database file (default: tenpin.db)
  - BASE_URL (--base-url): Public base URL for share links

# Architecture

The server uses a handler-based architecture with dependency injection:

  - handlers: HTTP request handlers (games, frames, scoreboard, balls)
  - scoring: Pure tenpin score computation
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers
  - models: Request/response types
  - auth: Key generation and validation
  - db: Schema creation
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
