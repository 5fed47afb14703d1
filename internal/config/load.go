package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"gopkg.in/yaml.v3"

	"github.com/Faultbox/wavesurface/internal/engine/water"
)

// FileName is the config file looked up in standard locations.
const FileName = "water.yaml"

// Load loads configuration with priority: defaults < file < flags.
func Load() (*Config, error) {
	// Explicit path takes priority
	configPath := ConfigPath()
	if configPath == "" {
		configPath = findConfigFile()
	}

	cfg, err := LoadFrom(configPath)
	if err != nil {
		return nil, err
	}

	// CLI flags (highest priority)
	applyFlags(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFrom loads defaults merged with the file at path, without applying
// command-line flags. An empty path yields the defaults.
func LoadFrom(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		if err := loadFromFile(cfg, path); err != nil {
			return nil, fmt.Errorf("loading config from %s: %w", path, err)
		}
	}
	return cfg, nil
}

// Validate checks the values a controller cannot fix up on its own.
func (c *Config) Validate() error {
	var errs []error
	if _, err := c.WaterParams(); err != nil {
		errs = append(errs, err)
	}
	if c.Water.Segments < 1 {
		errs = append(errs, fmt.Errorf("water.segments must be positive, got %d", c.Water.Segments))
	}
	if c.Water.Size <= 0 {
		errs = append(errs, fmt.Errorf("water.size must be positive, got %g", c.Water.Size))
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height))
	}
	return errors.Join(errs...)
}

// ClampWater limits the water tunables to their recommended ranges and
// returns the names of the fields that were changed.
func (c *Config) ClampWater() []string {
	w := &c.Water
	var changed []string
	clamp := func(name string, v *float64, r water.Range) {
		if !r.Contains(*v) {
			*v = r.Clamp(*v)
			changed = append(changed, name)
		}
	}
	clamp("wave_length", &w.WaveLength, water.Ranges.WaveLength)
	clamp("frequency[0]", &w.Frequency[0], water.Ranges.FrequencyX)
	clamp("frequency[1]", &w.Frequency[1], water.Ranges.FrequencyY)
	clamp("wave_speed", &w.WaveSpeed, water.Ranges.WaveSpeed)
	clamp("small_wave_elevation", &w.SmallWaveElevation, water.Ranges.SmallWaveElevation)
	clamp("small_wave_frequency", &w.SmallWaveFrequency, water.Ranges.SmallWaveFrequency)
	clamp("small_wave_speed", &w.SmallWaveSpeed, water.Ranges.SmallWaveSpeed)
	clamp("color_offset", &w.ColorOffset, water.Ranges.ColorOffset)
	clamp("color_multiplier", &w.ColorMultiplier, water.Ranges.ColorMultiplier)
	return changed
}

// findConfigFile looks for config in standard locations.
func findConfigFile() string {
	candidates := []string{
		"./" + FileName,
		filepath.Join(ConfigDir(), FileName),
	}

	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// ConfigDir returns the OS-appropriate config directory.
func ConfigDir() string {
	switch runtime.GOOS {
	case "darwin":
		home, _ := os.UserHomeDir()
		return filepath.Join(home, "Library", "Application Support", "WaveSurface")
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "WaveSurface")
	default: // Linux and others
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, "wavesurface")
		}
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "wavesurface")
	}
}

// loadFromFile loads config from a YAML file, merging with existing values.
func loadFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}
