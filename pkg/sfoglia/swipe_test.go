package sfoglia

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSwipeTriggersAboveThreshold(t *testing.T) {
	d := NewSwipeDetector(50)

	d.Begin(200, 100)
	assert.Equal(t, SwipeLeft, d.End(140, 110), "dx=-60 dy=10 is a left swipe")

	d.Begin(200, 100)
	assert.Equal(t, SwipeRight, d.End(260, 90), "dx=60 dy=-10 is a right swipe")
}

func TestSwipeBelowThresholdIgnored(t *testing.T) {
	d := NewSwipeDetector(50)

	d.Begin(200, 100)
	assert.Equal(t, SwipeNone, d.End(240, 100), "dx=40 is below the threshold")

	d.Begin(200, 100)
	assert.Equal(t, SwipeNone, d.End(250, 100), "dx=50 does not exceed the threshold")
}

func TestVerticalDominantSwipeIgnored(t *testing.T) {
	d := NewSwipeDetector(50)

	d.Begin(200, 100)
	assert.Equal(t, SwipeNone, d.End(130, 200), "dy=100 dominates dx=-70: a scroll, not a page turn")
}

func TestSwipeRequiresBegin(t *testing.T) {
	d := NewSwipeDetector(50)

	assert.Equal(t, SwipeNone, d.End(0, 0))

	d.Begin(200, 100)
	d.Cancel()
	assert.Equal(t, SwipeNone, d.End(0, 0), "cancelled gestures never resolve")
}

func TestSwipeDefaultThreshold(t *testing.T) {
	d := NewSwipeDetector(0)

	d.Begin(200, 100)
	assert.Equal(t, SwipeLeft, d.End(140, 100), "zero threshold falls back to the default")
}
