// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package scoring

// Frame is one scoring unit of a ten-pin game: 1-3 throws depending on the
// frame number and outcome. Score is the cumulative total through this frame
// and is populated by ScoreGame; it is zero on input frames.
type Frame struct {
	Number int
	Throws []int
	Score  int
}

// IsStrike reports whether the frame opened with all ten pins down.
func (f Frame) IsStrike() bool {
	return len(f.Throws) > 0 && f.Throws[0] == 10
}

// IsSpare reports whether the first two throws together took all ten pins
// without a first-ball strike. For the tenth frame this describes the opening
// pair only; bonus balls are not considered.
func (f Frame) IsSpare() bool {
	return len(f.Throws) >= 2 && f.Throws[0] != 10 && f.Throws[0]+f.Throws[1] == 10
}

// IsComplete reports whether no more throws remain in the frame.
func (f Frame) IsComplete() bool {
	return IsComplete(f.Throws, f.Number)
}

// IsComplete reports whether a frame with the given throws needs no further
// throws. Frames 1-9 end on a strike or after two throws. The tenth frame
// needs two throws, or three when the first two earn a strike or spare.
func IsComplete(throws []int, frameNumber int) bool {
	if frameNumber == 10 {
		if len(throws) < 2 {
			return false
		}
		if throws[0] == 10 || throws[0]+throws[1] == 10 {
			return len(throws) >= 3
		}
		return true
	}
	if len(throws) == 0 {
		return false
	}
	return throws[0] == 10 || len(throws) >= 2
}

func pinSum(throws []int) int {
	sum := 0
	for _, t := range throws {
		sum += t
	}
	return sum
}
