package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

const (
	WindowTitle  = "Display test"
	WindowWidth  = 800
	WindowHeight = 600

	// Side panel geometry
	PanelWidth   = 180
	PanelPadding = 10
	RowHeight    = 22
	BoxSize      = 12

	// Line style
	LineThickness = 1.0

	// Frame statistics window
	FrameRingSize = 120

	LogLevelEnv = "DISPLAY_TEST_LOG"
	LogJSONEnv  = "DISPLAY_TEST_LOG_JSON"
)

// SpeedOptions is the fixed speed menu in pixels per second, slowest first.
var SpeedOptions = []int{20, 30, 40, 50, 60, 90, 120, 150}

// Runtime holds the settings read from the environment at startup.
type Runtime struct {
	LogLevel zerolog.Level
	LogJSON  bool

	// Warnings collects values that were ignored, to be logged once a logger exists.
	Warnings []string
}

// Load reads the runtime settings through getenv. Unknown values fall back to
// defaults and are reported in Warnings.
func Load(getenv func(string) string) Runtime {
	rt := Runtime{LogLevel: zerolog.InfoLevel}

	if v := strings.TrimSpace(getenv(LogLevelEnv)); v != "" {
		lvl, err := zerolog.ParseLevel(strings.ToLower(v))
		if err != nil || lvl == zerolog.NoLevel {
			rt.Warnings = append(rt.Warnings, fmt.Sprintf("%s=%q is not a log level, using info", LogLevelEnv, v))
		} else {
			rt.LogLevel = lvl
		}
	}

	switch v := strings.ToLower(strings.TrimSpace(getenv(LogJSONEnv))); v {
	case "":
	case "1", "true", "yes":
		rt.LogJSON = true
	case "0", "false", "no":
		rt.LogJSON = false
	default:
		rt.Warnings = append(rt.Warnings, fmt.Sprintf("%s=%q is not a boolean, using console output", LogJSONEnv, v))
	}

	return rt
}

// FromEnv is Load over the process environment.
func FromEnv() Runtime {
	return Load(os.Getenv)
}
