// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package scoring

import "errors"

// Validation errors. The messages are surfaced verbatim to API clients, so
// they name the rule that failed rather than the code path that caught it.
var (
	ErrFrameNumber       = errors.New("Frame number must be between 1 and 10")
	ErrNoThrows          = errors.New("Frame must have at least one throw")
	ErrThrowOutOfRange   = errors.New("Each throw must be between 0 and 10")
	ErrTooManyThrows     = errors.New("Frame cannot have more than two throws")
	ErrStrikeExtraThrow  = errors.New("Strike frame should have only one throw")
	ErrPinSum            = errors.New("Total pins cannot exceed 10 in a frame")
	ErrTenthTooFew       = errors.New("Frame 10 requires at least two throws")
	ErrTenthTooMany      = errors.New("Frame 10 cannot have more than three throws")
	ErrTenthStrikeThrows = errors.New("Frame 10 strike requires exactly three throws")
	ErrTenthSpareThrows  = errors.New("Frame 10 spare requires exactly three throws")
	ErrTenthOpenThrows   = errors.New("Frame 10 open frame should have exactly two throws")
	ErrFrameOver         = errors.New("Frame is already complete")
)

// ValidateThrows checks one frame's throw sequence against the scoring rules
// for its position in the game. A nil return means the throws are legal; a
// non-nil return identifies the violated rule. It is a report, not a guard:
// callers decide whether to reject the write.
//
// Frames 1-9 accept one throw (a strike or an open frame in progress) or two
// throws totalling at most ten pins. The tenth frame is validated in its
// final shape: two throws for an open frame, three when the opening pair
// earns a strike or spare, with bonus-ball bounds checked by replaying the
// tenth-frame state machine.
func ValidateThrows(throws []int, frameNumber int) error {
	if frameNumber < 1 || frameNumber > 10 {
		return ErrFrameNumber
	}
	if len(throws) == 0 {
		return ErrNoThrows
	}
	for _, t := range throws {
		if t < 0 || t > 10 {
			return ErrThrowOutOfRange
		}
	}

	if frameNumber == 10 {
		return validateTenth(throws)
	}

	if len(throws) > 2 {
		return ErrTooManyThrows
	}
	if throws[0] == 10 && len(throws) != 1 {
		return ErrStrikeExtraThrow
	}
	if pinSum(throws) > 10 {
		return ErrPinSum
	}
	return nil
}

func validateTenth(throws []int) error {
	if len(throws) < 2 {
		return ErrTenthTooFew
	}
	if len(throws) > 3 {
		return ErrTenthTooMany
	}

	// Shape first: a strike or spare opening earns a third ball, an open
	// frame does not.
	earnedThird := throws[0] == 10 || throws[0]+throws[1] == 10
	if earnedThird && len(throws) != 3 {
		if throws[0] == 10 {
			return ErrTenthStrikeThrows
		}
		return ErrTenthSpareThrows
	}
	if !earnedThird && len(throws) != 2 {
		return ErrTenthOpenThrows
	}

	// Replay the state machine to enforce the per-throw pin bounds,
	// including the mid-frame rack resets.
	var tf TenthFrame
	for _, pins := range throws {
		if err := tf.Roll(pins); err != nil {
			return err
		}
	}
	return nil
}
