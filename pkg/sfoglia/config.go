package sfoglia

import (
	"fmt"
	"os"
	"time"

	"github.com/BrandonKowalski/sfoglia/pkg/sfoglia/constants"
	"github.com/BurntSushi/toml"
)

// InteractionMode selects how pointer input is zoned over the page area.
// The two shipped variants of the widget diverge here with no clear winner,
// so it stays a per-deployment choice.
type InteractionMode int

const (
	// InteractionSurface treats the whole content area as click zones:
	// left half turns back, right half turns forward.
	InteractionSurface InteractionMode = iota
	// InteractionButtons limits pointer turns to the chevron buttons drawn
	// at the page edges.
	InteractionButtons
)

// UnmarshalText implements encoding.TextUnmarshaler for TOML decoding.
func (m *InteractionMode) UnmarshalText(text []byte) error {
	switch string(text) {
	case "surface", "":
		*m = InteractionSurface
	case "buttons":
		*m = InteractionButtons
	default:
		return fmt.Errorf("unknown interaction mode %q", text)
	}
	return nil
}

// duration wraps time.Duration so TOML values can be written as "600ms".
type duration struct {
	time.Duration
}

func (d *duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = parsed
	return nil
}

// Config is the on-disk configuration for the framework, loaded from a TOML
// file (conventionally sfoglia.toml next to the binary).
type Config struct {
	Notebook NotebookConfig `toml:"notebook"`
	Input    InputConfig    `toml:"input"`
	Log      LogConfig      `toml:"log"`
}

// NotebookConfig carries the tunables of the Notebook widget.
type NotebookConfig struct {
	OpenDuration   duration        `toml:"open_duration"`
	TurnDuration   duration        `toml:"turn_duration"`
	SwipeThreshold int32           `toml:"swipe_threshold"`
	Interaction    InteractionMode `toml:"interaction"`
}

// InputConfig overrides input bindings.
type InputConfig struct {
	// Keyboard maps SDL key names ("Left", "Space", ...) to virtual button
	// names ("Left", "A", ...). Entries extend the default mapping.
	Keyboard map[string]string `toml:"keyboard"`
}

// LogConfig controls the application logger.
type LogConfig struct {
	Level string `toml:"level"`
	Path  string `toml:"path"`
}

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() Config {
	return Config{
		Notebook: NotebookConfig{
			OpenDuration:   duration{constants.DefaultOpenDuration},
			TurnDuration:   duration{constants.DefaultTurnDuration},
			SwipeThreshold: constants.DefaultSwipeThreshold,
			Interaction:    InteractionSurface,
		},
	}
}

// LoadConfig reads a TOML config file, applying defaults for anything the
// file leaves out. A missing file is not an error; it yields the defaults.
func LoadConfig(path string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return config, nil
		}
		return config, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, &config); err != nil {
		return DefaultConfig(), fmt.Errorf("parse config %s: %w", path, err)
	}

	if config.Notebook.OpenDuration.Duration <= 0 {
		config.Notebook.OpenDuration = duration{constants.DefaultOpenDuration}
	}
	if config.Notebook.TurnDuration.Duration <= 0 {
		config.Notebook.TurnDuration = duration{constants.DefaultTurnDuration}
	}
	if config.Notebook.SwipeThreshold <= 0 {
		config.Notebook.SwipeThreshold = constants.DefaultSwipeThreshold
	}

	return config, nil
}
