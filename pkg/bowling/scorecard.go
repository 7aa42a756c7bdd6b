package bowling

import (
	"strconv"
	"strings"
)

// Scorecard is a read-only snapshot of a game, one line per player
type Scorecard struct {
	GameID   string       `yaml:"game_id" json:"game_id"`
	Finished bool         `yaml:"finished" json:"finished"`
	Players  []PlayerCard `yaml:"players" json:"players"`
}

// PlayerCard holds the balls of each frame played so far, the marks
// as written on paper and the running total after each frame.
type PlayerCard struct {
	ID      string   `yaml:"id" json:"id"`
	Name    string   `yaml:"name" json:"name"`
	Frames  [][]int  `yaml:"frames,flow" json:"frames"`
	Marks   []string `yaml:"marks,flow" json:"marks"`
	Running []int    `yaml:"running,flow" json:"running"`
	Total   int      `yaml:"total" json:"total"`
}

// Scorecard returns the scorecard of the current game, players in
// turn order
func (g *Game) Scorecard() *Scorecard {
	card := &Scorecard{
		GameID:   g.session.id.String(),
		Finished: !g.session.inProgress,
		Players:  make([]PlayerCard, 0, len(g.session.order)),
	}
	for _, name := range g.session.order {
		p := g.session.players[name]
		line := PlayerCard{
			ID:      p.ID.String(),
			Name:    p.Name,
			Running: p.Frames.FrameScores(),
			Total:   p.Score(),
		}
		for _, f := range p.Frames.Frames() {
			if f.RollCount == 0 {
				break
			}
			line.Frames = append(line.Frames, f.Pins())
			line.Marks = append(line.Marks, f.Marks())
		}
		card.Players = append(card.Players, line)
	}
	return card
}

// Marks renders the frame the way it is written on a scorecard:
// X for a strike, / for a spare, - for a miss.
func (f *Frame) Marks() string {
	var sb strings.Builder
	standing, fresh := NumPins, true
	for _, pins := range f.Rolls[:f.RollCount] {
		switch {
		case pins == standing && fresh:
			sb.WriteByte('X')
		case pins == standing:
			sb.WriteByte('/')
		case pins == 0:
			sb.WriteByte('-')
		default:
			sb.WriteString(strconv.Itoa(pins))
		}
		// Only the final frame racks the pins again
		if pins == standing {
			standing, fresh = NumPins, true
		} else {
			standing, fresh = standing-pins, false
		}
	}
	return sb.String()
}
