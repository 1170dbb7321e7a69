// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package scoring implements official ten-pin bowling scoring.

# Scoring a Game

ScoreGame takes recorded frames in any order and returns them sorted with
cumulative scores attached:

	scored, err := scoring.ScoreGame(frames)

All functions here are pure: no I/O, no stored state, inputs never mutated.
Callers may score concurrently without coordination.

# Bonus Rules

Frames 1-9 score their own pins plus bonus balls:

  - Strike: 10 plus the next two balls thrown
  - Spare: 10 plus the next one ball thrown
  - Open: pin count only

The tenth frame has no lookahead; its score is the plain sum of its two or
three balls. Bonus balls owed by frames not yet recorded count as zero, so
scores for an in-progress game are provisional.

# The Tenth Frame

TenthFrame is a small state machine for recording the final frame ball by
ball. A strike or spare earns a third ball and resets the pins:

	var t scoring.TenthFrame
	t.Roll(10) // strike, pins reset
	t.Roll(10)
	t.Roll(10) // perfect tenth

ValidateThrows replays this machine when checking a stored tenth frame, so
sequences like [10 4 7] are rejected the same way live rolls would be.

# Validation

ValidateThrows checks one frame's throw sequence against the rules of the
game and returns a sentinel error naming the violated rule. The sentinels
(ErrPinSum, ErrStrikeExtraThrow, ...) are exported so callers can branch on
them with errors.Is while surfacing the message text to clients.
*/
package scoring
