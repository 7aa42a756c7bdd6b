package bowling

import (
	"fmt"
	"math/rand"
)

// Strategy is implemented by automatic bowlers: given the state of
// the game it decides how many of the standing pins go down.
type Strategy interface {
	PickRoll(state *GameState) int
}

type Bot struct {
	Name string
	Strategy
}

func NewBot(name string, s Strategy) *Bot {
	return &Bot{
		Name:     name,
		Strategy: s,
	}
}

// Perfect knocks down every pin standing, every time
type Perfect struct{}

// Gutter never hits a pin
type Gutter struct{}

// Steady knocks down the same number of pins every ball, or what is
// left standing if that is fewer.
type Steady struct {
	Pins int
}

// Random knocks down a uniformly random number of the standing pins.
// Seed Rand for reproducible games.
type Random struct {
	Rand *rand.Rand
}

func (Perfect) PickRoll(state *GameState) int {
	return state.PinsStanding
}

func (Gutter) PickRoll(state *GameState) int {
	return 0
}

func (s Steady) PickRoll(state *GameState) int {
	return min(s.Pins, state.PinsStanding)
}

func (r *Random) PickRoll(state *GameState) int {
	// # nosec
	return r.Rand.Intn(state.PinsStanding + 1)
}

// Play bowls the game to its end, asking the Bot named after the
// player to move for every ball. A player without a Bot is an error.
func Play(g *Game, bots []*Bot) error {
	byName := make(map[string]*Bot, len(bots))
	for _, bot := range bots {
		byName[bot.Name] = bot
	}
	for !g.IsOver() {
		state := g.State()
		bot, ok := byName[state.Player]
		if !ok {
			return fmt.Errorf("no bot for player %q: %w", state.Player, ErrUnknownPlayer)
		}
		if _, err := g.Roll(bot.PickRoll(state)); err != nil {
			return err
		}
	}
	return nil
}

func min(i1, i2 int) int {
	if i1 <= i2 {
		return i1
	}
	return i2
}
