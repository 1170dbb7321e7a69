// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 3654)
  - DatabasePath: SQLite database file path (default: tenpin.db)
  - BaseURL: Public base URL for share links (default: http://localhost:<port>)
  - ScorerKeySalt: Secret for scorer key HMAC (required)
  - ShareSlugSalt: Secret for share slug generation (required)

# CLI Flags

	-p            Server port
	-d            SQLite database path
	-base-url     Public base URL for share links
	-scorer-salt  Scorer key salt
	-slug-salt    Share slug salt

# Environment Variables

Flags fall back to environment variables:

	PORT            → -p
	DATABASE_PATH   → -d
	BASE_URL        → -base-url
	SCORER_KEY_SALT → -scorer-salt
	SHARE_SLUG_SALT → -slug-salt

CLI flags take precedence over environment variables.

# Validation

ParseFlags returns an error if required values are missing:

  - SCORER_KEY_SALT must be provided
  - SHARE_SLUG_SALT must be provided

# Example

	// In main.go
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}

	conn, err := db.Open(cfg.DatabasePath)
	// ...
	mux := router.NewRouter(conn, cfg)
*/
package cliparse
