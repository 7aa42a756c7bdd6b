package bowling

// Rack is the set of pins standing on the lane for the next ball
// of a frame.
type Rack struct {
	Standing int
}

// RackFor returns the Rack facing the next ball of the given Frame.
// In the final frame the pins are reset after a strike or a spare.
func RackFor(f *Frame) Rack {
	switch f.RollCount {
	case 0:
		return Rack{Standing: NumPins}
	case 1:
		if f.Final && f.IsStrike() {
			return Rack{Standing: NumPins}
		}
		return Rack{Standing: NumPins - f.Rolls[0]}
	case 2:
		if !f.Final {
			return Rack{}
		}
		if f.IsSpare() {
			return Rack{Standing: NumPins}
		}
		if f.IsStrike() {
			if f.Rolls[1] == NumPins {
				return Rack{Standing: NumPins}
			}
			return Rack{Standing: NumPins - f.Rolls[1]}
		}
	}
	return Rack{}
}

// Check returns an error if pins cannot be knocked down from the Rack
func (r Rack) Check(pins int) error {
	if pins < 0 || pins > NumPins {
		return ErrInvalidPinCount
	}
	if pins > r.Standing {
		return ErrTooManyPins
	}
	return nil
}

// IsEmpty returns true if no pin is left standing
func (r Rack) IsEmpty() bool {
	return r.Standing == 0
}
