package bowling

import (
	"testing"

	. "github.com/smartystreets/assertions"
)

// so fails the test with the assertion's message when it does not hold
func so(t *testing.T, actual interface{}, assert func(interface{}, ...interface{}) string, expected ...interface{}) {
	t.Helper()
	if ok, message := So(actual, assert, expected...); !ok {
		t.Error("\n" + message)
	}
}

// rollMany registers the same pin count n times on the chain
func rollMany(t *testing.T, c *FrameChain, n, pins int) {
	t.Helper()
	for i := 0; i < n; i++ {
		if _, err := c.Roll(pins); err != nil {
			t.Fatalf("roll %d of %d pins: %v", i+1, pins, err)
		}
	}
}

func rollAll(t *testing.T, c *FrameChain, pins ...int) {
	t.Helper()
	for i, p := range pins {
		if _, err := c.Roll(p); err != nil {
			t.Fatalf("roll %d of %d pins: %v", i+1, p, err)
		}
	}
}
