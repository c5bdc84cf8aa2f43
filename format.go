package errlog

import (
	"fmt"
	"strings"

	"github.com/davecgh/go-spew/spew"
)

// FormatMode selects how error payloads are rendered to text.
type FormatMode uint8

const (
	// FormatNormal renders payloads with %v (default).
	FormatNormal FormatMode = iota
	// FormatDebug renders payloads with %#v on a single line.
	FormatDebug
	// FormatPrettyDebug renders payloads over multiple lines: %+v for types that
	// implement fmt.Formatter (stack traces), a structural dump otherwise.
	FormatPrettyDebug
)

var prettyConfig = spew.ConfigState{
	Indent:                  "  ",
	DisableMethods:          true,
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

func (m FormatMode) String() string {
	switch m {
	case FormatNormal:
		return "normal"
	case FormatDebug:
		return "debug"
	case FormatPrettyDebug:
		return "pretty_debug"
	default:
		return "unknown"
	}
}

// ParseFormatMode takes a mode name and returns the FormatMode constant.
func ParseFormatMode(mode string) (FormatMode, error) {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "", "normal":
		return FormatNormal, nil
	case "debug":
		return FormatDebug, nil
	case "pretty_debug", "pretty-debug", "prettydebug", "pretty":
		return FormatPrettyDebug, nil
	}
	return FormatNormal, fmt.Errorf("not a valid FormatMode: %q", mode)
}

// renderPayload renders an error payload. A panicking Error or Format method
// yields a placeholder instead of crashing the display.
func renderPayload(payload any, mode FormatMode) (out string) {
	defer func() {
		if r := recover(); r != nil {
			out = fmt.Sprintf("error formatting failed: %v", r)
		}
	}()

	switch mode {
	case FormatDebug:
		return fmt.Sprintf("%#v", payload)
	case FormatPrettyDebug:
		if _, ok := payload.(fmt.Formatter); ok {
			return fmt.Sprintf("%+v", payload)
		}
		return strings.TrimRight(prettyConfig.Sdump(payload), "\n")
	default:
		return fmt.Sprintf("%v", payload)
	}
}
