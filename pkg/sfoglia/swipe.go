package sfoglia

import (
	"github.com/BrandonKowalski/sfoglia/pkg/sfoglia/constants"
)

// SwipeDirection is the horizontal direction of a completed swipe gesture.
type SwipeDirection int

const (
	SwipeNone  SwipeDirection = iota
	SwipeLeft                 // Finger moved left; turns the page forward
	SwipeRight                // Finger moved right; turns the page back
)

// SwipeDetector turns begin/end touch positions into page-turn gestures.
// A gesture registers only when its horizontal displacement strictly exceeds
// the threshold and exceeds its vertical displacement; everything else is
// treated as a tap or a scroll and ignored.
type SwipeDetector struct {
	threshold int32
	active    bool
	originX   int32
	originY   int32
}

// NewSwipeDetector creates a detector with the given pixel threshold.
// A zero or negative threshold falls back to the default.
func NewSwipeDetector(threshold int32) *SwipeDetector {
	if threshold <= 0 {
		threshold = constants.DefaultSwipeThreshold
	}
	return &SwipeDetector{threshold: threshold}
}

// Begin records the start of a touch at x, y.
func (d *SwipeDetector) Begin(x, y int32) {
	d.active = true
	d.originX = x
	d.originY = y
}

// End completes the gesture at x, y and returns its direction, or SwipeNone
// when no touch was active or the movement did not qualify as a swipe.
func (d *SwipeDetector) End(x, y int32) SwipeDirection {
	if !d.active {
		return SwipeNone
	}
	d.active = false

	dx := x - d.originX
	dy := y - d.originY

	if abs32(dx) <= d.threshold || abs32(dx) <= abs32(dy) {
		return SwipeNone
	}

	if dx < 0 {
		return SwipeLeft
	}
	return SwipeRight
}

// Cancel discards any in-progress gesture, e.g. when the window loses focus
// mid-touch.
func (d *SwipeDetector) Cancel() {
	d.active = false
}

// Active reports whether a touch is in progress.
func (d *SwipeDetector) Active() bool {
	return d.active
}

func abs32(v int32) int32 {
	if v < 0 {
		return -v
	}
	return v
}
