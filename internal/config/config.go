// Package config holds the settings of a bigo run.
//
// Settings start from Default, may be overridden by a YAML file and are
// finally overridden by command line flags.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/caio/go-bigo/internal/harness"
	"github.com/caio/go-bigo/internal/logging"
)

// ErrInvalid is returned for configuration that cannot be run.
var ErrInvalid = errors.New("invalid configuration")

// Config is the full set of run settings.
type Config struct {
	// Items is the input size. Zero means it must come from the command
	// line.
	Items int `yaml:"items"`
	// Seed makes the generated data reproducible. Zero picks a seed from
	// the current time.
	Seed       int64 `yaml:"seed"`
	MinValue   int64 `yaml:"min_value"`
	MaxValue   int64 `yaml:"max_value"`
	HanoiDisks int   `yaml:"hanoi_disks"`
	Repeat     int   `yaml:"repeat"`
	Verify     bool  `yaml:"verify"`
	// Format is the report encoding, text or json.
	Format string    `yaml:"format"`
	Log    LogConfig `yaml:"log"`
}

type LogConfig struct {
	Level string `yaml:"level"`
	JSON  bool   `yaml:"json"`
}

// Default returns the settings used when nothing else is given.
func Default() Config {
	return Config{
		MinValue:   0,
		MaxValue:   math.MaxInt32,
		HanoiDisks: harness.DefaultHanoiDisks,
		Repeat:     1,
		Format:     string(harness.FormatText),
		Log:        LogConfig{Level: "warn"},
	}
}

// Load reads a YAML file on top of Default. Unknown keys are rejected.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML on top of Default.
func Parse(data []byte) (Config, error) {
	cfg := Default()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("parsing config: %w: %w", ErrInvalid, err)
	}
	return cfg, nil
}

// Validate reports the first setting that cannot be run.
func (c Config) Validate() error {
	switch {
	case c.Items < 0:
		return fmt.Errorf("items %d is negative: %w", c.Items, ErrInvalid)
	case c.MinValue > c.MaxValue:
		return fmt.Errorf("min_value %d exceeds max_value %d: %w", c.MinValue, c.MaxValue, ErrInvalid)
	case c.MinValue < math.MinInt32 || c.MaxValue > math.MaxInt32:
		return fmt.Errorf("value range [%d, %d] does not fit in 32 bits: %w", c.MinValue, c.MaxValue, ErrInvalid)
	case c.HanoiDisks < 0 || c.HanoiDisks > harness.MaxHanoiDisks:
		return fmt.Errorf("hanoi_disks %d not in [0, %d]: %w", c.HanoiDisks, harness.MaxHanoiDisks, ErrInvalid)
	case c.Repeat < 1:
		return fmt.Errorf("repeat %d must be at least 1: %w", c.Repeat, ErrInvalid)
	}
	if _, err := harness.ParseFormat(c.Format); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	return nil
}

// Options translates the data generation settings for harness.Build.
// The seed must already be resolved.
func (c Config) Options(seed int64) []harness.Option {
	return []harness.Option{
		harness.Seed(seed),
		harness.ValueRange(c.MinValue, c.MaxValue),
		harness.HanoiDisks(c.HanoiDisks),
	}
}
