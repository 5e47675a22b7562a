// Package sfoglia provides a flip-open notebook widget for graphical
// applications on embedded Linux devices, particularly handheld gaming
// consoles running custom firmware like NextUI or Cannoli.
//
// The package handles SDL initialization, input processing, theming, and the
// Notebook widget: an animated cover-and-pages component driven by clicks,
// keyboard, controller, and touch swipes.
package sfoglia

import (
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/BrandonKowalski/sfoglia/pkg/sfoglia/constants"
	"github.com/BrandonKowalski/sfoglia/pkg/sfoglia/internal"
	"github.com/BrandonKowalski/sfoglia/pkg/sfoglia/platform/cannoli"
	"github.com/BrandonKowalski/sfoglia/pkg/sfoglia/platform/nextui"
)

// Options configures the sfoglia framework initialization.
type Options struct {
	WindowTitle          string                 // Window title displayed in windowed mode
	ShowBackground       bool                   // Whether to render the theme background
	WindowOptions        internal.WindowOptions // SDL window flags (borderless, resizable, etc.)
	PrimaryThemeColorHex uint32                 // Custom accent color (ignored on NextUI which uses system theme)
	IsCannoli            bool                   // Enable Cannoli CFW theming
	IsNextUI             bool                   // Enable NextUI CFW theming and power button handling
	ConfigPath           string                 // Path to the sfoglia.toml config file (optional)
	LogPath              string                 // Full path for log file including filename (creates parent directories)
}

// activeConfig supplies defaults for NotebookOptions. It is framework level
// configuration, not widget state; the page-turn controller itself is always
// an explicitly owned instance.
var activeConfig = DefaultConfig()

// Init initializes the SDL subsystems, theming, configuration, and input
// handling. Must be called before any other sfoglia functions.
func Init(options Options) {
	if options.ConfigPath != "" {
		config, err := LoadConfig(options.ConfigPath)
		if err != nil {
			internal.GetInternalLogger().Error("Failed to load config, using defaults", "path", options.ConfigPath, "error", err)
		}
		activeConfig = config
	}

	if options.LogPath != "" {
		internal.SetLogPath(options.LogPath)
	} else if activeConfig.Log.Path != "" {
		internal.SetLogPath(activeConfig.Log.Path)
	}

	if os.Getenv(constants.DebugEnvVar) != "" {
		internal.SetInternalLogLevel(slog.LevelDebug)
	} else {
		internal.SetInternalLogLevel(slog.LevelError)
	}
	if activeConfig.Log.Level != "" {
		internal.SetRawLogLevel(activeConfig.Log.Level)
	}

	pbc := internal.PowerButtonConfig{}

	if options.IsNextUI {
		theme := nextui.InitNextUITheme()

		// Detect power button input device path based on platform.
		// TG5050 uses /dev/input/event2, all others use /dev/input/event1.
		powerDevicePath := "/dev/input/event1"
		platformEnv := strings.ToUpper(os.Getenv("PLATFORM"))
		if strings.Contains(platformEnv, "TG5050") {
			powerDevicePath = "/dev/input/event2"
		}

		pbc = internal.PowerButtonConfig{
			ButtonCode:      116,
			DevicePath:      powerDevicePath,
			ShortPressMax:   2 * time.Second,
			CoolDownTime:    1 * time.Second,
			SuspendScript:   "/mnt/SDCARD/.system/tg5040/bin/suspend",
			ShutdownCommand: "/sbin/poweroff",
		}
		internal.SetTheme(theme)
	} else {
		internal.SetTheme(cannoli.InitCannoliTheme("/mnt/SDCARD/System/fonts/Cannoli.ttf"))
	}

	if options.PrimaryThemeColorHex != 0 && !options.IsNextUI {
		theme := internal.GetTheme()
		theme.AccentColor = internal.HexToColor(options.PrimaryThemeColorHex)
		internal.SetTheme(theme)
	}

	internal.Init(options.WindowTitle, options.ShowBackground, options.WindowOptions, pbc)

	if len(activeConfig.Input.Keyboard) > 0 {
		internal.GetInputProcessor().SetKeyboardMapping(activeConfig.Input.Keyboard)
	}
}

// Close releases all SDL resources and shuts down the framework.
// Must be called before program exit to prevent resource leaks.
func Close() {
	internal.SDLCleanup()
}

// ActiveConfig returns the configuration loaded during Init, or the defaults
// when no config file was given.
func ActiveConfig() Config {
	return activeConfig
}

// SetLogPath sets the full path for the log file, including filename.
// Creates all necessary parent directories.
// Call before Init() to take effect during initialization.
func SetLogPath(path string) {
	internal.SetLogPath(path)
}

// GetLogger returns the application logger for structured logging.
func GetLogger() *slog.Logger {
	return internal.GetLogger()
}

// SetLogLevel sets the minimum log level for the application logger.
func SetLogLevel(level slog.Level) {
	internal.SetLogLevel(level)
}

// SetRawLogLevel parses and sets the log level from a string (e.g., "debug", "info", "error").
func SetRawLogLevel(level string) {
	internal.SetRawLogLevel(level)
}

// GetWindow returns the underlying SDL window wrapper for advanced use cases.
func GetWindow() *internal.Window {
	return internal.GetWindow()
}

// HideWindow hides the application window.
func HideWindow() {
	internal.GetWindow().Window.Hide()
}

// ShowWindow shows the application window.
func ShowWindow() {
	internal.GetWindow().Window.Show()
}
