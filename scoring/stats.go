// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package scoring

// FrameStats aggregates mark counts across the frames of one game.
type FrameStats struct {
	Strikes int `json:"strikes"`
	Spares  int `json:"spares"`
	Opens   int `json:"opens"`
}

// Stats tallies strikes, spares, and open frames. Frames 1-9 classify by
// their first two balls. The tenth frame can contribute more than one mark:
// a double opens with back-to-back strikes, and balls two and three can add
// a spare of their own. Open frames are only counted in frames 1-9; a tenth
// frame without a mark closes the game but is not scored as a missed spare
// attempt in these totals.
func Stats(frames []Frame) FrameStats {
	var s FrameStats
	for _, f := range frames {
		if f.Number == 10 {
			tenthStats(f.Throws, &s)
			continue
		}
		switch {
		case f.IsStrike():
			s.Strikes++
		case f.IsSpare():
			s.Spares++
		default:
			s.Opens++
		}
	}
	return s
}

func tenthStats(throws []int, s *FrameStats) {
	if len(throws) < 2 {
		return
	}
	first, second := throws[0], throws[1]
	switch {
	case first == 10:
		s.Strikes++
		// A second-ball strike after a first-ball strike is its own mark.
		if second == 10 {
			s.Strikes++
		}
	case first+second == 10:
		s.Spares++
	}
	// Balls two and three count as one more spare when they total ten.
	if second != 10 && len(throws) == 3 && second+throws[2] == 10 {
		s.Spares++
	}
}
