package bowling

import (
	"github.com/google/uuid"
)

type Player struct {
	ID     uuid.UUID
	Name   string
	Frames *FrameChain
}

func NewPlayer(name string) *Player {
	return &Player{
		ID:     uuid.New(),
		Name:   name,
		Frames: NewFrameChain(),
	}
}

// Score returns the player's cumulative score so far
func (p *Player) Score() int {
	return p.Frames.Score()
}
