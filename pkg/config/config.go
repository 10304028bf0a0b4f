// Package config handles loading and saving tsg configuration.
//
// Configuration follows the XDG Base Directory specification:
//   - Config: ~/.config/tsg/config.yaml
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// UIConfig holds tutorial display preferences.
type UIConfig struct {
	StartLesson  int  `yaml:"start_lesson,omitempty"` // 1-based lesson shown first
	ShowExamples bool `yaml:"show_examples"`          // Show the example components pane
	AltScreen    bool `yaml:"alt_screen"`             // Run in the alternate screen
	CodeWidth    int  `yaml:"code_width,omitempty"`   // Word wrap for code samples (0 = fit)
}

// ExamplesConfig controls the example profile components.
type ExamplesConfig struct {
	Area           string `yaml:"area,omitempty"`
	RefreshDelayMS int    `yaml:"refresh_delay_ms,omitempty"` // Delay before the one-shot refresh
}

// Config is the top-level configuration for tsg.
type Config struct {
	UI       UIConfig       `yaml:"ui"`
	Examples ExamplesConfig `yaml:"examples,omitempty"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		UI: UIConfig{
			StartLesson:  1,
			ShowExamples: true,
			AltScreen:    true,
		},
		Examples: ExamplesConfig{
			Area:           "chicago",
			RefreshDelayMS: 300,
		},
	}
}

// RefreshDelay returns the example refresh delay as a duration.
func (c Config) RefreshDelay() time.Duration {
	return time.Duration(c.Examples.RefreshDelayMS) * time.Millisecond
}

// Validate reports configuration values that cannot be used.
func (c Config) Validate(lessonCount int) error {
	var errs []error
	if c.UI.StartLesson < 1 || c.UI.StartLesson > lessonCount {
		errs = append(errs, fmt.Errorf("ui.start_lesson %d out of range 1-%d", c.UI.StartLesson, lessonCount))
	}
	if c.UI.CodeWidth < 0 {
		errs = append(errs, fmt.Errorf("ui.code_width must not be negative"))
	}
	if c.Examples.RefreshDelayMS < 0 {
		errs = append(errs, fmt.Errorf("examples.refresh_delay_ms must not be negative"))
	}
	return errors.Join(errs...)
}

// ConfigDir returns the XDG config directory for tsg.
func ConfigDir() string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "tsg")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "tsg")
}

// ConfigPath returns the full path to config.yaml.
func ConfigPath() string {
	dir := ConfigDir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, "config.yaml")
}

// Load reads the config file from the XDG config directory.
// Returns DefaultConfig if the file doesn't exist.
func Load() (Config, error) {
	path := ConfigPath()
	if path == "" {
		return DefaultConfig(), nil
	}
	return LoadFrom(path)
}

// LoadFrom reads config from a specific path.
// Returns DefaultConfig if the file doesn't exist.
func LoadFrom(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return DefaultConfig(), fmt.Errorf("parsing config: %w", err)
	}

	if cfg.Examples.Area == "" {
		cfg.Examples.Area = DefaultConfig().Examples.Area
	}

	return cfg, nil
}

// SaveTo writes the config to a specific path.
func SaveTo(cfg Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	return nil
}
