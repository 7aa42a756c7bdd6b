package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
	"gopkg.in/yaml.v3"

	"bowling/pkg/bowling"
)

// PlayerStats summarizes the scores of one player over simulated games
type PlayerStats struct {
	Name   string  `yaml:"name"`
	Mean   float64 `yaml:"mean"`
	StdDev float64 `yaml:"stddev"`
	Best   float64 `yaml:"best"`
	Wins   int     `yaml:"wins"`
}

// Summary is the outcome of a simulation run
type Summary struct {
	Games    int                `yaml:"games"`
	Draws    int                `yaml:"draws"`
	Players  []PlayerStats      `yaml:"players"`
	LastGame *bowling.Scorecard `yaml:"last_game"`
}

func summarize(names []string, scores map[string][]float64, wins map[string]int) []PlayerStats {
	stats := make([]PlayerStats, 0, len(names))
	for _, name := range names {
		xs := scores[name]
		ps := PlayerStats{Name: name, Wins: wins[name]}
		if len(xs) > 0 {
			ps.Mean, ps.StdDev = stat.MeanStdDev(xs, nil)
			ps.Best = floats.Max(xs)
		}
		if len(xs) < 2 {
			// No spread with a single sample
			ps.StdDev = 0
		}
		stats = append(stats, ps)
	}
	return stats
}

func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}
	return enc.Close()
}

// writeScorecard prints one line of marks and one line of running
// totals per player.
func writeScorecard(w io.Writer, card *bowling.Scorecard) error {
	tw := tabwriter.NewWriter(w, 0, 0, 1, ' ', tabwriter.Debug)
	for _, p := range card.Players {
		fmt.Fprintf(tw, "%s\t%s\t%d\n", p.Name, strings.Join(p.Marks, "\t"), p.Total)
		running := make([]string, len(p.Running))
		for i, score := range p.Running {
			running[i] = fmt.Sprint(score)
		}
		fmt.Fprintf(tw, "\t%s\t\n", strings.Join(running, "\t"))
	}
	return tw.Flush()
}

func writeSummary(w io.Writer, s *Summary) error {
	fmt.Fprintf(w, "%v games were played, %v were draws.\n", s.Games, s.Draws)
	for _, p := range s.Players {
		fmt.Fprintf(w, "%s won %v games, average %.1f (σ %.1f), best %.0f\n",
			p.Name, p.Wins, p.Mean, p.StdDev, p.Best)
	}
	if s.LastGame == nil {
		return nil
	}
	fmt.Fprintln(w, "\nLast game:")
	return writeScorecard(w, s.LastGame)
}
