package bowling

import (
	"errors"
	"math/rand"
	"testing"

	. "github.com/smartystreets/assertions"
)

func TestBot_Strategies(t *testing.T) {
	tests := []struct {
		name     string
		strategy Strategy
		want     int
	}{
		{"perfect", Perfect{}, 300},
		{"gutter", Gutter{}, 0},
		{"steady four", Steady{Pins: 4}, 80},
		{"steady five", Steady{Pins: 5}, 150},
		{"steady more than a rack", Steady{Pins: 12}, 300},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := startGame(t, "Ada", "Grace")
			bots := []*Bot{
				NewBot("Ada", tt.strategy),
				NewBot("Grace", tt.strategy),
			}
			so(t, Play(g, bots), ShouldBeNil)
			so(t, g.IsOver(), ShouldBeTrue)

			for _, name := range []string{"Ada", "Grace"} {
				score, err := g.ScoreFor(name)
				so(t, err, ShouldBeNil)
				so(t, score, ShouldEqual, tt.want)
			}
		})
	}
}

func TestBot_RandomStaysOnTheLane(t *testing.T) {
	bot := NewBot("Ada", &Random{Rand: rand.New(rand.NewSource(1))})
	for standing := 0; standing <= NumPins; standing++ {
		for i := 0; i < 20; i++ {
			pins := bot.PickRoll(&GameState{PinsStanding: standing})
			so(t, pins, ShouldBeGreaterThanOrEqualTo, 0)
			so(t, pins, ShouldBeLessThanOrEqualTo, standing)
		}
	}
}

func TestPlay_MissingBot(t *testing.T) {
	g := startGame(t, "Ada", "Grace")
	err := Play(g, []*Bot{NewBot("Ada", Perfect{})})
	so(t, errors.Is(err, ErrUnknownPlayer), ShouldBeTrue)
	so(t, g.Status(), ShouldEqual, "Next roll: player Grace, frame #1, ball #1")
}

func TestPlay_MatchesBotsByName(t *testing.T) {
	g := startGame(t, "Ada", "Grace")
	err := Play(g, []*Bot{
		NewBot("Grace", Gutter{}),
		NewBot("Ada", Perfect{}),
	})
	so(t, err, ShouldBeNil)

	ada, _ := g.ScoreFor("Ada")
	grace, _ := g.ScoreFor("Grace")
	so(t, ada, ShouldEqual, 300)
	so(t, grace, ShouldEqual, 0)
}
