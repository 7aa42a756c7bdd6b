package bowling

import "golang.org/x/exp/slices"

const (
	// NumPins is the number of pins racked at the start of a frame
	NumPins int = 10
	// NumFrames is the number of frames in a game
	NumFrames int = 10
	// MaxBalls is the most balls a frame can take (only the final frame)
	MaxBalls int = 3
)

// Frame is one turn of bowling. Frames 1 to 9 take one or two balls.
// The final frame takes a third ball when its first two balls
// contain a strike or a spare.
type Frame struct {
	Index     int
	Final     bool
	Rolls     [MaxBalls]int
	RollCount int
}

// IsStrike returns true if all pins went down on the first ball
func (f *Frame) IsStrike() bool {
	return f.RollCount >= 1 && f.Rolls[0] == NumPins
}

// IsSpare returns true if all pins went down across the first two
// balls, the first not being a strike
func (f *Frame) IsSpare() bool {
	return f.RollCount >= 2 && !f.IsStrike() && f.Rolls[0]+f.Rolls[1] == NumPins
}

// IsComplete returns true if no further ball is owed to the frame
func (f *Frame) IsComplete() bool {
	if !f.Final {
		return f.RollCount >= 2 || f.IsStrike()
	}
	if f.RollCount < 2 {
		return false
	}
	if f.IsStrike() || f.IsSpare() {
		// Bonus ball
		return f.RollCount == MaxBalls
	}
	return true
}

// Pins returns the pin counts recorded so far, in order
func (f *Frame) Pins() []int {
	return slices.Clone(f.Rolls[:f.RollCount])
}

// Total is the sum of the pins knocked down in the frame, bonuses excluded
func (f *Frame) Total() int {
	total := 0
	for _, pins := range f.Rolls[:f.RollCount] {
		total += pins
	}
	return total
}

func (f *Frame) record(pins int) {
	f.Rolls[f.RollCount] = pins
	f.RollCount++
}
