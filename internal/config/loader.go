package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// Load loads the game configuration.
// Search order: customPath -> ~/.crazysnake/config.yaml -> ./configs/crazysnake.yaml -> embedded default
//
// Files are decoded on top of DefaultConfig, so a file only needs the keys it
// changes. Errors are returned only for an explicit customPath; broken files
// found on the search path are skipped.
func Load(customPath string) (Config, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DefaultConfig(), fmt.Errorf("config: read %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return DefaultConfig(), fmt.Errorf("config: %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := UserConfigPath(); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "crazysnake.yaml")); err == nil {
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultYAML)
	if err != nil {
		return DefaultConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes YAML on top of DefaultConfig and validates the result.
func Parse(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Marshal encodes the configuration as YAML.
func Marshal(cfg Config) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: marshal: %w", err)
	}
	return data, nil
}

// Validate rejects structurally unusable values. Food weights that do not sum
// to 100 are accepted; residual probability falls back to growing food.
func (c Config) Validate() error {
	switch {
	case c.Grid.Width <= 0 || c.Grid.Height <= 0:
		return fmt.Errorf("%w: grid must be at least 1x1, got %dx%d", ErrInvalid, c.Grid.Width, c.Grid.Height)
	case c.Grid.UnitSize <= 0:
		return fmt.Errorf("%w: unit_size must be positive", ErrInvalid)
	case c.Snake.StartLength <= 0:
		return fmt.Errorf("%w: start_length must be positive", ErrInvalid)
	case c.Speed.BaseTick <= 0:
		return fmt.Errorf("%w: base_tick must be positive", ErrInvalid)
	case c.Speed.Boost.Min <= 0 || c.Speed.Boost.Max < c.Speed.Boost.Min:
		return fmt.Errorf("%w: boost range [%g, %g]", ErrInvalid, c.Speed.Boost.Min, c.Speed.Boost.Max)
	case c.Speed.Decrease.Min <= 0 || c.Speed.Decrease.Max < c.Speed.Decrease.Min:
		return fmt.Errorf("%w: decrease range [%g, %g]", ErrInvalid, c.Speed.Decrease.Min, c.Speed.Decrease.Max)
	case c.Phone.MinDelay < 0 || c.Phone.MaxDelay < c.Phone.MinDelay:
		return fmt.Errorf("%w: phone delays [%s, %s]", ErrInvalid, c.Phone.MinDelay, c.Phone.MaxDelay)
	case len(c.Phone.Callers) == 0:
		return fmt.Errorf("%w: phone needs at least one caller", ErrInvalid)
	case c.Audio.Volume < 0 || c.Audio.Volume > 1:
		return fmt.Errorf("%w: audio volume %g outside [0, 1]", ErrInvalid, c.Audio.Volume)
	}

	for _, w := range c.Food.Ordered() {
		if w < 0 {
			return fmt.Errorf("%w: food weights must not be negative", ErrInvalid)
		}
	}

	bounds := c.Grid.Bounds()
	for _, p := range c.Snake.Segments() {
		if !bounds.Contains(p.X, p.Y) {
			return fmt.Errorf("%w: starting snake leaves the grid at %s", ErrInvalid, p)
		}
	}
	return nil
}

// UserConfigPath returns the path to the user config file, or empty if home is unavailable.
func UserConfigPath() string {
	dir := DataDir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, "config.yaml")
}

// DataDir returns ~/.crazysnake, or empty if home is unavailable.
func DataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".crazysnake")
}
