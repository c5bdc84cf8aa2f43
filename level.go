package errlog

import (
	"fmt"
	"strings"
)

// Level is the severity of a message entry.
//
// Levels are ordered by verbosity: a Log with max level Warn shows Error and
// Warn messages and hides Info, Debug and Trace. LevelOff is only meaningful as
// a threshold, it hides every message while errors stay visible.
type Level uint8

// Predefined levels, in ascending verbosity.
const (
	LevelOff Level = iota
	LevelError
	LevelWarn
	LevelInfo
	LevelDebug
	LevelTrace
)

// String returns the upper case name of the level.
func (l Level) String() string {
	switch l {
	case LevelOff:
		return "OFF"
	case LevelError:
		return "ERROR"
	case LevelWarn:
		return "WARN"
	case LevelInfo:
		return "INFO"
	case LevelDebug:
		return "DEBUG"
	case LevelTrace:
		return "TRACE"
	default:
		return "UNKNOWN"
	}
}

// IsValid checks if the level is one of the predefined values
func (l Level) IsValid() bool {
	return l <= LevelTrace
}

// Enabled reports whether a message of level l passes the threshold max.
func (l Level) Enabled(max Level) bool {
	return l != LevelOff && l <= max
}

// ParseLevel takes a level name and returns the Level constant.
// Names are case insensitive, "warning" is accepted as an alias of "warn".
func ParseLevel(lvl string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(lvl)) {
	case "off", "none":
		return LevelOff, nil
	case "error":
		return LevelError, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "info":
		return LevelInfo, nil
	case "debug":
		return LevelDebug, nil
	case "trace":
		return LevelTrace, nil
	}

	return LevelOff, fmt.Errorf("not a valid Level: %q", lvl)
}
