// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package scoring

// TenthState is the position of a tenth frame in its throw sequence.
type TenthState int

const (
	TenthAwaitingFirst TenthState = iota
	TenthAwaitingSecond
	TenthAwaitingThird
	TenthComplete
)

var tenthStateNames = map[TenthState]string{
	TenthAwaitingFirst:  "AwaitingFirst",
	TenthAwaitingSecond: "AwaitingSecond",
	TenthAwaitingThird:  "AwaitingThird",
	TenthComplete:       "Complete",
}

func (s TenthState) String() string {
	if name, ok := tenthStateNames[s]; ok {
		return name
	}
	return "Unknown"
}

// TenthFrame tracks the tenth frame throw by throw. The tenth frame is the
// only one where the pin deck can reset mid-frame: after a first-ball strike
// the second ball faces a fresh rack, after a double so does the third, and
// after a spare the third ball is likewise a fresh rack. Otherwise a bonus
// ball is bounded by the pins left standing.
//
// The zero value is an empty tenth frame ready for its first throw.
type TenthFrame struct {
	state  TenthState
	throws []int
}

// Roll records one throw, advancing the state machine. It returns an error
// when the throw is out of range, exceeds the pins standing, or arrives after
// the frame is complete; the frame is unchanged on error.
func (tf *TenthFrame) Roll(pins int) error {
	if pins < 0 || pins > 10 {
		return ErrThrowOutOfRange
	}

	switch tf.state {
	case TenthAwaitingFirst:
		tf.state = TenthAwaitingSecond

	case TenthAwaitingSecond:
		first := tf.throws[0]
		// No reset unless the first ball was a strike.
		if first < 10 && first+pins > 10 {
			return ErrPinSum
		}
		if first == 10 || first+pins == 10 {
			tf.state = TenthAwaitingThird
		} else {
			tf.state = TenthComplete
		}

	case TenthAwaitingThird:
		first, second := tf.throws[0], tf.throws[1]
		// Strike then a partial second ball: the third is bounded by what
		// stands. Double or spare: fresh rack, any 0-10 is legal.
		if first == 10 && second < 10 && second+pins > 10 {
			return ErrPinSum
		}
		tf.state = TenthComplete

	case TenthComplete:
		return ErrFrameOver
	}

	tf.throws = append(tf.throws, pins)
	return nil
}

// State returns the current position in the throw sequence.
func (tf *TenthFrame) State() TenthState {
	return tf.state
}

// IsComplete reports whether no throws remain.
func (tf *TenthFrame) IsComplete() bool {
	return tf.state == TenthComplete
}

// Throws returns a copy of the throws recorded so far.
func (tf *TenthFrame) Throws() []int {
	out := make([]int, len(tf.throws))
	copy(out, tf.throws)
	return out
}
