// Package config loads the optional arena.yaml session file: interpreter
// overrides for agent programs, timeout defaults, and the default game.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultPath is where Load looks when no path is given.
const DefaultPath = "arena.yaml"

// Config models arena.yaml. The zero value means "use built-in defaults".
type Config struct {
	// Interpreters maps program extensions to interpreter argv prefixes,
	// extending or overriding the built-in launch table.
	//
	//	interpreters:
	//	  .rb: [ruby]
	//	  .py: [python3, -u]
	Interpreters map[string][]string `yaml:"interpreters"`

	// MoveTimeoutMS bounds each agent turn, in milliseconds.
	MoveTimeoutMS int `yaml:"move_timeout_ms"`

	// InputTimeoutS bounds each interactive turn, in seconds.
	InputTimeoutS int `yaml:"input_timeout_s"`

	// Game selects the default rules: a built-in name or a path to a
	// .lua rules script.
	Game string `yaml:"game"`
}

// Load reads the config at path (DefaultPath when empty). A missing
// file is not an error — it yields the zero Config.
func Load(path string) (Config, error) {
	if path == "" {
		path = DefaultPath
	}
	var cfg Config
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, nil
}

// MoveTimeout returns the configured agent turn bound, zero if unset.
func (c Config) MoveTimeout() time.Duration {
	return time.Duration(c.MoveTimeoutMS) * time.Millisecond
}

// InputTimeout returns the configured interactive turn bound, zero if unset.
func (c Config) InputTimeout() time.Duration {
	return time.Duration(c.InputTimeoutS) * time.Second
}
