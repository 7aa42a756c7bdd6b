package main

import (
	"bytes"
	"testing"

	. "github.com/smartystreets/assertions"

	"bowling/pkg/bowling"
)

func TestSummarize(t *testing.T) {
	stats := summarize(
		[]string{"Alice", "Bob"},
		map[string][]float64{
			"Alice": {100, 200, 300},
			"Bob":   {90},
		},
		map[string]int{"Alice": 1},
	)

	so(t, stats, ShouldHaveLength, 2)
	so(t, stats[0].Name, ShouldEqual, "Alice")
	so(t, stats[0].Mean, ShouldEqual, 200.0)
	so(t, stats[0].StdDev, ShouldEqual, 100.0)
	so(t, stats[0].Best, ShouldEqual, 300.0)
	so(t, stats[0].Wins, ShouldEqual, 1)

	so(t, stats[1].Mean, ShouldEqual, 90.0)
	so(t, stats[1].StdDev, ShouldEqual, 0.0)
	so(t, stats[1].Wins, ShouldEqual, 0)
}

func TestWriteScorecard(t *testing.T) {
	g := bowling.NewGame()
	if _, err := bowling.Replay(g, []string{"John"}, []int{10, 3, 7, 4}); err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	so(t, writeScorecard(&out, g.Scorecard()), ShouldBeNil)
	so(t, out.String(), ShouldContainSubstring, "John")
	so(t, out.String(), ShouldContainSubstring, "X")
	so(t, out.String(), ShouldContainSubstring, "3/")
	so(t, out.String(), ShouldContainSubstring, "38")
}

func TestWriteYAML(t *testing.T) {
	g := bowling.NewGame()
	if _, err := bowling.Replay(g, []string{"John"}, []int{10, 6, 3}); err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	so(t, writeYAML(&out, g.Scorecard()), ShouldBeNil)
	so(t, out.String(), ShouldContainSubstring, "name: John")
	so(t, out.String(), ShouldContainSubstring, "running: [19, 28]")
	so(t, out.String(), ShouldContainSubstring, "total: 28")
}
