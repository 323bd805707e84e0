// Package config loads the YAML run configuration of the patrol command.
package config

import (
	"errors"
	"fmt"
	"os"

	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

// ErrInvalid is returned when a loaded configuration fails validation.
var ErrInvalid = errors.New("config: invalid configuration")

// Config is the complete run configuration.
type Config struct {
	Search  SearchConfig  `yaml:"search"`
	Output  OutputConfig  `yaml:"output"`
	Logging LoggingConfig `yaml:"logging"`
}

// SearchConfig tunes the obstacle search.
type SearchConfig struct {
	Workers    int  `yaml:"workers"`    // 0 = one per CPU
	Exhaustive bool `yaml:"exhaustive"` // try every empty cell instead of the route only
}

// OutputConfig controls what is printed besides the two answers.
type OutputConfig struct {
	Annotate bool   `yaml:"annotate"` // print the map with the patrol marked
	Glyph    string `yaml:"glyph"`    // single character used for marked cells
}

// LoggingConfig configures the zap logger.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // json, console
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() *Config {
	return &Config{
		Search: SearchConfig{Workers: 0},
		Output: OutputConfig{Glyph: "X"},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Load reads a YAML file over the defaults. A missing file yields the
// defaults unchanged.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	if c.Search.Workers < 0 {
		return fmt.Errorf("%w: search.workers must not be negative (%d)", ErrInvalid, c.Search.Workers)
	}
	if len([]rune(c.Output.Glyph)) != 1 {
		return fmt.Errorf("%w: output.glyph must be a single character, got %q", ErrInvalid, c.Output.Glyph)
	}
	if _, err := c.Logging.ZapLevel(); err != nil {
		return err
	}
	switch c.Logging.Format {
	case "json", "console":
	default:
		return fmt.Errorf("%w: logging.format must be json or console, got %q", ErrInvalid, c.Logging.Format)
	}
	return nil
}

// GlyphRune returns the annotation glyph as a rune.
func (o OutputConfig) GlyphRune() rune {
	for _, r := range o.Glyph {
		return r
	}
	return 'X'
}

// ZapLevel parses Level into a zap level.
func (l LoggingConfig) ZapLevel() (zapcore.Level, error) {
	lvl, err := zapcore.ParseLevel(l.Level)
	if err != nil {
		return lvl, fmt.Errorf("%w: logging.level: %v", ErrInvalid, err)
	}
	return lvl, nil
}
