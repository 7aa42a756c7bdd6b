package bowling

import (
	"fmt"

	"golang.org/x/exp/slices"
)

// FrameChain holds the ten frames of one player's game, the frame
// currently being played and whether the last frame is done.
type FrameChain struct {
	frames   [NumFrames]Frame
	current  int
	finished bool
}

func NewFrameChain() *FrameChain {
	c := &FrameChain{}
	for i := range c.frames {
		c.frames[i].Index = i + 1
	}
	c.frames[NumFrames-1].Final = true

	return c
}

// Roll records a ball in the current frame. It returns true if
// another ball is owed to that same frame, false once the frame
// is complete (and the chain moved on or finished).
// A rejected ball leaves the chain untouched.
func (c *FrameChain) Roll(pins int) (bool, error) {
	if c.finished {
		return false, ErrGameFinished
	}
	f := &c.frames[c.current]
	if f.IsComplete() {
		// Should not happen: complete frames are left right away
		return false, fmt.Errorf("frame %d: %w", f.Index, ErrFrameComplete)
	}
	if err := RackFor(f).Check(pins); err != nil {
		return false, fmt.Errorf("frame %d, ball %d: %w", f.Index, f.RollCount+1, err)
	}

	f.record(pins)
	if !f.IsComplete() {
		return true, nil
	}
	if f.Final {
		c.finished = true
		return false, nil
	}
	c.current++

	return false, nil
}

// Score returns the cumulative score of the chain. Bonuses that
// depend on balls not rolled yet count for nothing, so the score
// of a game in progress is always a valid partial score.
func (c *FrameChain) Score() int {
	total := 0
	for i := range c.frames {
		total += c.frameScore(i)
	}
	return total
}

// FrameScores returns the running total after each frame that has
// at least one ball recorded, as written on a paper scorecard.
func (c *FrameChain) FrameScores() []int {
	scores := make([]int, 0, NumFrames)
	total := 0
	for i := range c.frames {
		if c.frames[i].RollCount == 0 {
			break
		}
		total += c.frameScore(i)
		scores = append(scores, total)
	}
	return scores
}

func (c *FrameChain) frameScore(i int) int {
	f := &c.frames[i]
	if f.RollCount == 0 {
		return 0
	}
	if f.Final {
		// No forward bonus, the bonus balls are part of the frame
		return f.Total()
	}

	score := f.Rolls[0] + f.Rolls[1]
	switch {
	case f.IsStrike():
		score += c.strikeBonus(i)
	case f.IsSpare():
		score += c.spareBonus(i)
	}
	return score
}

// strikeBonus sums the next two balls following frame i.
// Unrecorded balls read as zero.
func (c *FrameChain) strikeBonus(i int) int {
	next := &c.frames[i+1]
	switch {
	case next.RollCount >= 2:
		return next.Rolls[0] + next.Rolls[1]
	case next.RollCount == 1:
		bonus := next.Rolls[0]
		if next.IsStrike() && !next.Final {
			bonus += c.frames[i+2].Rolls[0]
		}
		return bonus
	}
	return 0
}

func (c *FrameChain) spareBonus(i int) int {
	return c.frames[i+1].Rolls[0]
}

func (c *FrameChain) IsFinished() bool {
	return c.finished
}

// FrameNumber returns the number (1-10) of the frame being played
func (c *FrameChain) FrameNumber() int {
	return c.frames[c.current].Index
}

// NextBall returns the number (1-3) of the next ball in the current frame
func (c *FrameChain) NextBall() int {
	return c.frames[c.current].RollCount + 1
}

// PinsStanding returns the pins set up for the next ball, 0 once finished
func (c *FrameChain) PinsStanding() int {
	if c.finished {
		return 0
	}
	return RackFor(&c.frames[c.current]).Standing
}

// Frame returns a copy of frame n (1-10)
func (c *FrameChain) Frame(n int) (Frame, bool) {
	if n < 1 || n > NumFrames {
		return Frame{}, false
	}
	return c.frames[n-1], true
}

// Frames returns a copy of all ten frames
func (c *FrameChain) Frames() []Frame {
	return slices.Clone(c.frames[:])
}
