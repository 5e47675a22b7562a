// Package constants defines shared constants, types, and configuration values
// used throughout the sfoglia notebook framework.
package constants

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// Development is the environment variable value for development mode.
const Development = "DEV"

// BackgroundPathEnvVar is the environment variable name for custom background image path.
const BackgroundPathEnvVar = "BACKGROUND_PATH"

// DebugEnvVar enables verbose internal logging when set.
const DebugEnvVar = "SFOGLIA_DEBUG"

// LanguageEnvVar overrides the locale used for indicator labels.
const LanguageEnvVar = "SFOGLIA_LANG"

// WindowWidthEnvVar and WindowHeightEnvVar override window size in dev mode.
const (
	WindowWidthEnvVar  = "WINDOW_WIDTH"
	WindowHeightEnvVar = "WINDOW_HEIGHT"
)

// IsDevMode returns true if running in development mode (ENVIRONMENT=DEV).
func IsDevMode() bool {
	return os.Getenv("ENVIRONMENT") == Development
}

// VirtualButton represents an abstract input button, mapped from physical hardware.
// This abstraction allows sfoglia to work with different controller configurations.
type VirtualButton int

const (
	VirtualButtonUnassigned VirtualButton = iota
	VirtualButtonUp
	VirtualButtonDown
	VirtualButtonLeft
	VirtualButtonRight
	VirtualButtonA
	VirtualButtonB
	VirtualButtonStart
	VirtualButtonSelect
	VirtualButtonMenu
	VirtualButtonPower
)

func (vb VirtualButton) GetName() string {
	switch vb {
	case VirtualButtonUp:
		return "Up"
	case VirtualButtonDown:
		return "Down"
	case VirtualButtonLeft:
		return "Left"
	case VirtualButtonRight:
		return "Right"
	case VirtualButtonA:
		return "A"
	case VirtualButtonB:
		return "B"
	case VirtualButtonStart:
		return "Start"
	case VirtualButtonSelect:
		return "Select"
	case VirtualButtonMenu:
		return "Menu"
	case VirtualButtonPower:
		return "Power"
	default:
		return "Unassigned"
	}
}

// ParseVirtualButton resolves a button name from a config file into a
// VirtualButton. Matching is case-insensitive.
func ParseVirtualButton(name string) (VirtualButton, error) {
	switch strings.ToLower(name) {
	case "up":
		return VirtualButtonUp, nil
	case "down":
		return VirtualButtonDown, nil
	case "left":
		return VirtualButtonLeft, nil
	case "right":
		return VirtualButtonRight, nil
	case "a":
		return VirtualButtonA, nil
	case "b":
		return VirtualButtonB, nil
	case "start":
		return VirtualButtonStart, nil
	case "select":
		return VirtualButtonSelect, nil
	case "menu":
		return VirtualButtonMenu, nil
	case "power":
		return VirtualButtonPower, nil
	}
	return VirtualButtonUnassigned, fmt.Errorf("unknown virtual button %q", name)
}

// TextAlign specifies horizontal text alignment.
type TextAlign int

const (
	TextAlignLeft   TextAlign = iota // Align text to the left edge
	TextAlignCenter                  // Center text horizontally
	TextAlignRight                   // Align text to the right edge
)

// Default timing and spacing constants.
const (
	DefaultInputDelay         = 20 * time.Millisecond // Debounce delay between input events
	DefaultTitleSpacing int32 = 5                     // Vertical spacing below title text

	// DefaultOpenDuration is how long the cover-opening animation holds the
	// animation lock.
	DefaultOpenDuration = 1000 * time.Millisecond

	// DefaultTurnDuration is how long a single page turn (forward or reverse)
	// holds the animation lock.
	DefaultTurnDuration = 600 * time.Millisecond

	// DefaultSwipeThreshold is the minimum horizontal displacement, in pixels,
	// for a touch gesture to register as a page-turn swipe.
	DefaultSwipeThreshold int32 = 50
)
