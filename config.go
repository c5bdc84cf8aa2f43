package errlog

import (
	"fmt"
	"io"
	"os"

	"github.com/titanous/json5"
)

// Config holds the presentation settings of a Log. It can be loaded from a
// JSON5 document:
//
//	{
//	  // hide debug and trace messages
//	  max_level: "info",
//	  format_mode: "debug",
//	  delimiter: "\n",
//	  join: false,
//	  instant_display: true,
//	}
//
// Empty level and mode names keep the defaults (trace, normal).
type Config struct {
	MaxLevel       string `json:"max_level"`
	FormatMode     string `json:"format_mode"`
	Delimiter      string `json:"delimiter"`
	Join           bool   `json:"join"`
	InstantDisplay bool   `json:"instant_display"`
}

// LoadConfig decodes a JSON5 config from r.
func LoadConfig(r io.Reader) (Config, error) {
	var cfg Config
	data, err := io.ReadAll(r)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := json5.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("decode config: %w", err)
	}
	if _, _, err := cfg.parse(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// LoadConfigFile decodes the JSON5 config stored at path.
func LoadConfigFile(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()
	return LoadConfig(f)
}

func (c Config) parse() (Level, FormatMode, error) {
	level := LevelTrace
	if c.MaxLevel != "" {
		var err error
		if level, err = ParseLevel(c.MaxLevel); err != nil {
			return level, FormatNormal, fmt.Errorf("config max_level: %w", err)
		}
	}
	mode, err := ParseFormatMode(c.FormatMode)
	if err != nil {
		return level, mode, fmt.Errorf("config format_mode: %w", err)
	}
	return level, mode, nil
}

// Apply sets the presentation settings of l from cfg. On error l is unchanged.
func (l *Log[T, E]) Apply(cfg Config) error {
	level, mode, err := cfg.parse()
	if err != nil {
		return err
	}
	l.WithMaxLevel(level).
		WithFormatMode(mode).
		WithDelimiter(cfg.Delimiter).
		WithJoin(cfg.Join).
		WithInstantDisplay(cfg.InstantDisplay)
	return nil
}

// NewFromConfig creates an empty Log with the settings of cfg.
func NewFromConfig[T, E any](cfg Config) (*Log[T, E], error) {
	l := New[T, E]()
	if err := l.Apply(cfg); err != nil {
		return nil, err
	}
	return l, nil
}
