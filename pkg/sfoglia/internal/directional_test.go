package internal

import (
	"testing"
	"time"

	"github.com/BrandonKowalski/sfoglia/pkg/sfoglia/constants"
	"github.com/stretchr/testify/assert"
)

func TestDirectionalInputRepeat(t *testing.T) {
	d := NewDirectionalInputWithTiming(0, 0)

	assert.Equal(t, DirectionNone, d.Update())

	assert.True(t, d.SetHeld(constants.VirtualButtonRight, true))
	assert.Equal(t, DirectionRight, d.Update())
	assert.Equal(t, DirectionRight, d.Update(), "repeats while held")

	d.SetHeld(constants.VirtualButtonRight, false)
	assert.Equal(t, DirectionNone, d.Update())
}

func TestDirectionalInputDelayBeforeFirstRepeat(t *testing.T) {
	d := NewDirectionalInputWithTiming(time.Hour, 0)

	d.SetHeld(constants.VirtualButtonLeft, true)
	assert.Equal(t, DirectionNone, d.Update(), "first repeat waits for the delay")
}

func TestDirectionalInputLeftWinsWhenBothHeld(t *testing.T) {
	d := NewDirectionalInputWithTiming(0, 0)

	d.SetHeld(constants.VirtualButtonLeft, true)
	d.SetHeld(constants.VirtualButtonRight, true)
	assert.Equal(t, DirectionLeft, d.HeldDirection())
}

func TestDirectionalInputIgnoresNonDirectional(t *testing.T) {
	d := NewDirectionalInput()

	assert.False(t, d.SetHeld(constants.VirtualButtonA, true))
	assert.False(t, d.IsHeld())
}

func TestHexToColor(t *testing.T) {
	c := HexToColor(0x9B2257)
	assert.Equal(t, uint8(0x9B), c.R)
	assert.Equal(t, uint8(0x22), c.G)
	assert.Equal(t, uint8(0x57), c.B)
	assert.Equal(t, uint8(255), c.A)
}
