package bowling

import (
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/exp/slices"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Game schedules the turns of a multi-player bowling session.
// Players bowl in registration order, frame by frame: everyone
// plays frame N before anyone plays frame N+1.
//
// The zero value is a Game with English messages and no game started.
// A Game is not safe for concurrent use.
type Game struct {
	locale  language.Tag
	printer *message.Printer
	session session
}

// session is everything a new game resets, so that starting over
// is a single assignment.
type session struct {
	id         uuid.UUID
	order      []string
	players    map[string]*Player
	cursor     int
	inProgress bool
	rolls      []RollItem
}

// GameState contains the bare minimum of information that is
// needed for a robot player to decide on a roll.
type GameState struct {
	Player       string
	Frame        int
	Ball         int
	PinsStanding int
}

type Option func(*Game)

// WithLocale sets the language of the status messages.
// Unsupported languages fall back to English.
func WithLocale(tag language.Tag) Option {
	return func(g *Game) {
		g.locale = tag
	}
}

func NewGame(opts ...Option) *Game {
	g := &Game{locale: language.English}
	for _, opt := range opts {
		opt(g)
	}
	g.printer = newPrinter(g.locale)

	return g
}

// Start discards any previous game and starts a new one with a
// fresh frame chain per player. The first name bowls first.
// It returns the status message.
func (g *Game) Start(names []string) (string, error) {
	if len(names) == 0 {
		return "", ErrNoPlayers
	}

	order := make([]string, 0, len(names))
	players := make(map[string]*Player, len(names))
	for _, name := range names {
		if slices.Contains(order, name) {
			return "", fmt.Errorf("%q: %w", name, ErrDuplicatePlayer)
		}
		order = append(order, name)
		players[name] = NewPlayer(name)
	}

	g.session = session{
		id:         uuid.New(),
		order:      order,
		players:    players,
		inProgress: true,
	}
	return g.Status(), nil
}

// Roll registers a ball for the player whose turn it is and passes
// the turn on once that player's frame is complete.
// It returns the status message.
func (g *Game) Roll(pins int) (string, error) {
	if !g.session.inProgress {
		return "", ErrGameFinished
	}

	p := g.PlayerToMove()
	item := RollItem{
		Player: p.Name,
		Frame:  p.Frames.FrameNumber(),
		Ball:   p.Frames.NextBall(),
		Pins:   pins,
	}
	continues, err := p.Frames.Roll(pins)
	if err != nil {
		return "", fmt.Errorf("player %s: %w", p.Name, err)
	}
	g.session.rolls = append(g.session.rolls, item)

	if p.Frames.IsFinished() || !continues {
		g.session.inProgress = g.nextPlayer()
	}
	return g.Status(), nil
}

// nextPlayer moves the cursor to the next player in turn order.
// Running past the last player either starts a new round or, when
// the player who just bowled has finished, ends the game: only that
// player is checked, since all players reach the last frame together.
// It returns false when the game is over.
func (g *Game) nextPlayer() bool {
	next := g.session.cursor + 1
	if next == len(g.session.order) {
		if g.PlayerToMove().Frames.IsFinished() {
			return false
		}
		next = 0
	}
	g.session.cursor = next
	return true
}

// ScoreFor returns the current score of the named player
func (g *Game) ScoreFor(name string) (int, error) {
	p, ok := g.session.players[name]
	if !ok {
		return 0, fmt.Errorf("%q: %w", name, ErrUnknownPlayer)
	}
	return p.Score(), nil
}

// Status returns the message announcing the next ball, or the
// end of the game.
func (g *Game) Status() string {
	if g.printer == nil {
		g.printer = newPrinter(g.locale)
	}
	if !g.session.inProgress {
		return g.printer.Sprintf(finishedMsg)
	}
	p := g.PlayerToMove()
	return g.printer.Sprintf(nextRollMsg, p.Name, p.Frames.FrameNumber(), p.Frames.NextBall())
}

// IsOver returns true if no game is in progress
func (g *Game) IsOver() bool {
	return !g.session.inProgress
}

// PlayerToMove returns the player whose turn it is, or the last one
// to bowl if the game is over. It returns nil before the first game.
func (g *Game) PlayerToMove() *Player {
	if len(g.session.order) == 0 {
		return nil
	}
	return g.session.players[g.session.order[g.session.cursor]]
}

// PlayerNames returns the player names in turn order
func (g *Game) PlayerNames() []string {
	return slices.Clone(g.session.order)
}

// ID identifies the current game; it changes on every Start
func (g *Game) ID() uuid.UUID {
	return g.session.id
}

// Rolls returns every ball registered since the game started
func (g *Game) Rolls() []RollItem {
	return slices.Clone(g.session.rolls)
}

// State returns a new GameState describing the next ball, or nil
// if the game is over.
func (g *Game) State() *GameState {
	if !g.session.inProgress {
		return nil
	}
	p := g.PlayerToMove()
	return &GameState{
		Player:       p.Name,
		Frame:        p.Frames.FrameNumber(),
		Ball:         p.Frames.NextBall(),
		PinsStanding: p.Frames.PinsStanding(),
	}
}
