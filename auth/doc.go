// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides authentication and token generation utilities.

# Scorer Keys

Scorer keys use HMAC-SHA256 to create deterministic, verifiable keys:

	scorerKey := auth.GenerateScorerKey(gameID, salt)
	err := auth.ValidateScorerKey(gameID, scorerKey, salt)

The key is URL-safe base64 encoded without padding. Since it's deterministic,
the same game ID and salt always produce the same key. This allows validation
without storing the key in the database.

# Share Slugs

Share slugs create URL-friendly identifiers for game scoreboards:

	slug := auth.GenerateShareSlug(gameID, salt)

Slugs are base62 encoded (alphanumeric only) for easy sharing. Like scorer
keys, they're deterministic from the game ID and salt.

# ID Generation

Random hex IDs for database records:

	id, err := auth.GenerateID(16)  // 32 hex characters
*/
package auth
