// SPDX-License-Identifier: EPL-2.0

// Package config loads the streamcat configuration from YAML, with
// AUDSTREAM_* environment overrides.
package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

var (
	// ErrInvalidConfig is returned by Validate.
	ErrInvalidConfig = errors.New("invalid config")
)

const (
	DefaultRate       = 44100
	DefaultBufferSize = 4096
)

// Environment variables that override the file.
const (
	EnvRate       = "AUDSTREAM_OUTPUT_RATE"
	EnvBufferSize = "AUDSTREAM_BUFFER_SIZE"
	EnvMono       = "AUDSTREAM_MONO"
	EnvSearchDirs = "AUDSTREAM_SEARCH_DIRS"
	EnvLogLevel   = "AUDSTREAM_LOG_LEVEL"
	EnvLogJSON    = "AUDSTREAM_LOG_JSON"
)

type Config struct {
	Output  OutputConfig  `yaml:"output"`
	Search  SearchConfig  `yaml:"search"`
	Logging LoggingConfig `yaml:"logging"`
}

type OutputConfig struct {
	Rate       int  `yaml:"rate"`
	BufferSize int  `yaml:"buffer_size"`
	Mono       bool `yaml:"mono"`
}

type SearchConfig struct {
	Dirs []string `yaml:"dirs"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
	JSON  bool   `yaml:"json"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Output: OutputConfig{
			Rate:       DefaultRate,
			BufferSize: DefaultBufferSize,
		},
		Search: SearchConfig{
			Dirs: []string{"."},
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load reads the YAML file at path over the defaults, then applies the
// environment. An empty path skips the file. When envFile is set, its
// variables are used for any AUDSTREAM_* variable the process environment
// does not define.
func Load(path, envFile string) (*Config, error) {
	fileEnv := map[string]string{}
	if envFile != "" {
		var err error
		if fileEnv, err = godotenv.Read(envFile); err != nil {
			return nil, fmt.Errorf("read env file: %w", err)
		}
	}

	return load(path, func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}
		v, ok := fileEnv[key]
		return v, ok
	})
}

func load(path string, lookup func(string) (string, bool)) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}

		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse yaml: %w", err)
		}
	}

	if err := cfg.applyEnv(lookup); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	ints := []struct {
		key string
		dst *int
	}{
		{EnvRate, &c.Output.Rate},
		{EnvBufferSize, &c.Output.BufferSize},
	}
	for _, f := range ints {
		if v, ok := lookup(f.key); ok {
			n, err := strconv.Atoi(strings.TrimSpace(v))
			if err != nil {
				return fmt.Errorf("%s: %w", f.key, err)
			}
			*f.dst = n
		}
	}

	bools := []struct {
		key string
		dst *bool
	}{
		{EnvMono, &c.Output.Mono},
		{EnvLogJSON, &c.Logging.JSON},
	}
	for _, f := range bools {
		if v, ok := lookup(f.key); ok {
			b, err := strconv.ParseBool(strings.TrimSpace(v))
			if err != nil {
				return fmt.Errorf("%s: %w", f.key, err)
			}
			*f.dst = b
		}
	}

	if v, ok := lookup(EnvSearchDirs); ok {
		c.Search.Dirs = c.Search.Dirs[:0]
		for _, dir := range strings.Split(v, ",") {
			if dir = strings.TrimSpace(dir); dir != "" {
				c.Search.Dirs = append(c.Search.Dirs, dir)
			}
		}
	}

	if v, ok := lookup(EnvLogLevel); ok {
		c.Logging.Level = strings.TrimSpace(v)
	}

	return nil
}

// Validate reports the first setting that cannot be used.
func (c *Config) Validate() error {
	if c.Output.Rate <= 0 {
		return fmt.Errorf("%w: output.rate %d", ErrInvalidConfig, c.Output.Rate)
	}

	if c.Output.BufferSize <= 0 {
		return fmt.Errorf("%w: output.buffer_size %d", ErrInvalidConfig, c.Output.BufferSize)
	}

	if len(c.Search.Dirs) == 0 {
		return fmt.Errorf("%w: search.dirs is empty", ErrInvalidConfig)
	}

	if _, err := c.level(); err != nil {
		return fmt.Errorf("%w: logging.level %q", ErrInvalidConfig, c.Logging.Level)
	}

	return nil
}

// OutputRate makes Config usable as an audio.OutputDevice.
func (c *Config) OutputRate() int { return c.Output.Rate }

func (c *Config) level() (slog.Level, error) {
	var l slog.Level
	err := l.UnmarshalText([]byte(c.Logging.Level))
	return l, err
}

// NewLogger returns a logger writing to w with the configured level and
// format.
func (c *Config) NewLogger(w io.Writer) *slog.Logger {
	level, err := c.level()
	if err != nil {
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	if c.Logging.JSON {
		return slog.New(slog.NewJSONHandler(w, opts))
	}

	return slog.New(slog.NewTextHandler(w, opts))
}
