// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package scoring

import (
	"fmt"
	"sort"
)

// frameIndex resolves lookahead by frame number. Bonus pins for a strike or
// spare come from later frames, and in a partially recorded game those frames
// may simply not exist yet; a lookup miss is an explicit miss here, never an
// out-of-bounds read on a positional slice.
type frameIndex map[int]Frame

func (idx frameIndex) frame(n int) (Frame, bool) {
	f, ok := idx[n]
	return f, ok
}

// ScoreGame computes the official cumulative score for each frame of a
// single game. Input order does not matter and the input is not mutated: the
// result is a fresh slice in ascending frame order with Score populated on
// every frame. Scoring the same frames twice yields identical results.
//
// Partial games are legal input. Bonus pins owed by frames that have not
// been recorded yet count as zero, so cumulative scores near the end of an
// in-progress game are provisional and change as later frames arrive.
//
// Structurally malformed input - illegal throw sequences, frame numbers
// outside 1-10, duplicate frame numbers - is rejected with a descriptive
// error rather than scored wrong.
func ScoreGame(frames []Frame) ([]Frame, error) {
	seen := make(map[int]bool, len(frames))
	for _, f := range frames {
		if err := ValidateThrows(f.Throws, f.Number); err != nil {
			return nil, fmt.Errorf("frame %d: %w", f.Number, err)
		}
		if seen[f.Number] {
			return nil, fmt.Errorf("duplicate frame %d", f.Number)
		}
		seen[f.Number] = true
	}

	scored := make([]Frame, len(frames))
	for i, f := range frames {
		throws := make([]int, len(f.Throws))
		copy(throws, f.Throws)
		scored[i] = Frame{Number: f.Number, Throws: throws}
	}
	sort.Slice(scored, func(i, j int) bool { return scored[i].Number < scored[j].Number })

	idx := make(frameIndex, len(scored))
	for _, f := range scored {
		idx[f.Number] = f
	}

	total := 0
	for i := range scored {
		total += frameScore(scored[i], idx)
		scored[i].Score = total
	}
	return scored, nil
}

// frameScore is the pins credited to one frame, bonus balls included. The
// tenth frame is terminal: its score is the plain sum of its throws.
func frameScore(f Frame, idx frameIndex) int {
	if f.Number == 10 {
		return pinSum(f.Throws)
	}
	switch {
	case f.IsStrike():
		return 10 + strikeBonus(f.Number, idx)
	case f.IsSpare():
		return 10 + spareBonus(f.Number, idx)
	default:
		return pinSum(f.Throws)
	}
}

// strikeBonus is the next two balls after a strike in frames 1-9.
//
// When the next frame is itself a strike (and not the tenth, which holds its
// own second ball), the second bonus ball lives two frames ahead. If that
// frame is not recorded yet the bonus is deliberately 10, not 0: the strike
// we can see counts, the ball nobody has thrown contributes nothing.
func strikeBonus(number int, idx frameIndex) int {
	next, ok := idx.frame(number + 1)
	if !ok {
		return 0
	}
	if next.IsStrike() && next.Number != 10 {
		bonus := 10
		if after, ok := idx.frame(number + 2); ok && len(after.Throws) > 0 {
			bonus += after.Throws[0]
		}
		return bonus
	}
	if len(next.Throws) >= 2 {
		return next.Throws[0] + next.Throws[1]
	}
	if len(next.Throws) == 1 {
		return next.Throws[0]
	}
	return 0
}

// spareBonus is the first ball after a spare, or zero while it is unthrown.
func spareBonus(number int, idx frameIndex) int {
	next, ok := idx.frame(number + 1)
	if !ok || len(next.Throws) == 0 {
		return 0
	}
	return next.Throws[0]
}
