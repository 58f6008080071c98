// Package config loads matcher settings from YAML.
package config

import (
	"fmt"
	"log/slog"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/mouse-blink/gooze-matcher/internal/adapter"
	m "github.com/mouse-blink/gooze-matcher/internal/model"
)

// Config holds the settings shared by every match run.
type Config struct {
	// Denylist holds the file markers the Go runtime reports for code that has
	// no readable source file.
	Denylist []string `yaml:"denylist"`
	Threads  int      `yaml:"threads"`
	LogLevel string   `yaml:"log_level"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Denylist: []string{"<autogenerated>", "?", ""},
		Threads:  1,
		LogLevel: "warn",
	}
}

// Load reads path through fs over the defaults. Keys missing from the file
// keep their default values; an empty path returns Default().
func Load(fs adapter.SourceFSAdapter, path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := fs.ReadFile(m.Path(path))
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to decode config %s: %w", path, err)
	}

	if cfg.Threads <= 0 {
		cfg.Threads = 1
	}

	return cfg, nil
}

// DenySet returns the denylist as a lookup set.
func (c Config) DenySet() map[string]struct{} {
	set := make(map[string]struct{}, len(c.Denylist))
	for _, entry := range c.Denylist {
		set[entry] = struct{}{}
	}

	return set
}

// Level parses LogLevel into a slog level.
func (c Config) Level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(c.LogLevel))); err != nil {
		return slog.LevelWarn, fmt.Errorf("invalid log level %q: %w", c.LogLevel, err)
	}

	return level, nil
}
