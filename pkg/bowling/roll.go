package bowling

import "fmt"

// RollItem is an entry in the roll list of a Game. It records who
// bowled the ball, where in their game it fell and how many pins
// went down.
type RollItem struct {
	Player string
	Frame  int
	Ball   int
	Pins   int
}

func (r RollItem) String() string {
	return fmt.Sprintf("%s frame #%d ball #%d: %d", r.Player, r.Frame, r.Ball, r.Pins)
}

// Replay starts a new game on g with the given players and registers
// every pin count in order. It returns the start message followed by
// the message of each roll. On error the messages produced so far are
// returned along with it.
func Replay(g *Game, names []string, pins []int) ([]string, error) {
	messages := make([]string, 0, len(pins)+1)
	msg, err := g.Start(names)
	if err != nil {
		return nil, err
	}
	messages = append(messages, msg)

	for i, p := range pins {
		msg, err := g.Roll(p)
		if err != nil {
			return messages, fmt.Errorf("roll %d: %w", i+1, err)
		}
		messages = append(messages, msg)
	}
	return messages, nil
}
