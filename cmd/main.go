package main

import (
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"
	"time"

	"golang.org/x/text/language"

	"bowling/pkg/bowling"
)

func main() {
	start := time.Now()
	log.SetFlags(0)

	cfg, err := LoadConfig(os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}
	tag, err := cfg.Tag()
	if err != nil {
		log.Fatal(err)
	}

	if cfg.Script != "" {
		err = runScript(os.Stdout, cfg, tag)
	} else {
		err = runSimulation(os.Stdout, cfg, tag)
	}
	if err != nil {
		log.Fatal(err)
	}
	log.Println("Took", time.Since(start))
}

// runScript replays the scripted balls, printing the status message
// after each one, then the scorecard.
func runScript(w io.Writer, cfg Config, tag language.Tag) error {
	rolls, err := cfg.Rolls()
	if err != nil {
		return err
	}

	g := bowling.NewGame(bowling.WithLocale(tag))
	messages, err := bowling.Replay(g, cfg.Players, rolls)
	for _, msg := range messages {
		fmt.Fprintln(w, msg)
	}
	if err != nil {
		return err
	}

	for _, name := range cfg.Players {
		score, err := g.ScoreFor(name)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "Player: %s, score: %d\n", name, score)
	}

	if cfg.Format == formatYAML {
		return writeYAML(w, g.Scorecard())
	}
	return writeScorecard(w, g.Scorecard())
}

// runSimulation plays cfg.Games games between random bowlers
// and reports score statistics.
func runSimulation(w io.Writer, cfg Config, tag language.Tag) error {
	rng := rand.New(rand.NewSource(cfg.Seed))
	bots := make([]*bowling.Bot, 0, len(cfg.Players))
	for _, name := range cfg.Players {
		bots = append(bots, bowling.NewBot(name, &bowling.Random{Rand: rng}))
	}

	scores := make(map[string][]float64, len(cfg.Players))
	wins := make(map[string]int, len(cfg.Players))
	summary := &Summary{Games: cfg.Games}

	for i := 0; i < cfg.Games; i++ {
		g, err := simulateGame(cfg.Players, bots, tag)
		if err != nil {
			return fmt.Errorf("game %d: %w", i+1, err)
		}

		winner, best := "", -1
		for _, name := range cfg.Players {
			score, err := g.ScoreFor(name)
			if err != nil {
				return err
			}
			scores[name] = append(scores[name], float64(score))
			switch {
			case score > best:
				winner, best = name, score
			case score == best:
				winner = ""
			}
		}
		if winner == "" {
			summary.Draws++
		} else {
			wins[winner]++
		}
		summary.LastGame = g.Scorecard()
	}
	summary.Players = summarize(cfg.Players, scores, wins)

	if cfg.Format == formatYAML {
		return writeYAML(w, summary)
	}
	return writeSummary(w, summary)
}

func simulateGame(players []string, bots []*bowling.Bot, tag language.Tag) (*bowling.Game, error) {
	g := bowling.NewGame(bowling.WithLocale(tag))
	if _, err := g.Start(players); err != nil {
		return nil, err
	}
	if err := bowling.Play(g, bots); err != nil {
		return nil, err
	}
	return g, nil
}
