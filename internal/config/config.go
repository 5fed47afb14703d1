// Package config handles viewer configuration loading and management.
package config

import (
	"fmt"

	"github.com/Faultbox/wavesurface/internal/engine/water"
)

// Config holds all settings.
type Config struct {
	Window  WindowConfig  `yaml:"window"`
	Water   WaterConfig   `yaml:"water"`
	Camera  CameraConfig  `yaml:"camera"`
	Capture CaptureConfig `yaml:"capture"`
	Logging LoggingConfig `yaml:"logging"`
}

// WindowConfig holds display settings.
type WindowConfig struct {
	Width         int     `yaml:"width"`
	Height        int     `yaml:"height"`
	Fullscreen    bool    `yaml:"fullscreen"`
	VSync         bool    `yaml:"vsync"`
	MaxPixelRatio float32 `yaml:"max_pixel_ratio"`
}

// WaterConfig holds the surface tunables and grid topology.
// Colors stay as hex strings here and are parsed once by WaterParams.
type WaterConfig struct {
	WaveLength         float64    `yaml:"wave_length"`
	Frequency          [2]float64 `yaml:"frequency"`
	WaveSpeed          float64    `yaml:"wave_speed"`
	SmallWaveElevation float64    `yaml:"small_wave_elevation"`
	SmallWaveFrequency float64    `yaml:"small_wave_frequency"`
	SmallWaveSpeed     float64    `yaml:"small_wave_speed"`
	ColorOffset        float64    `yaml:"color_offset"`
	ColorMultiplier    float64    `yaml:"color_multiplier"`
	DepthColor         string     `yaml:"depth_color"`
	SurfaceColor       string     `yaml:"surface_color"`
	NoiseSeed          int64      `yaml:"noise_seed"`
	Segments           int        `yaml:"segments"`
	Size               float64    `yaml:"size"`
}

// CameraConfig holds the initial camera placement.
type CameraConfig struct {
	FOV      float32    `yaml:"fov"` // Vertical field of view, degrees
	Near     float32    `yaml:"near"`
	Far      float32    `yaml:"far"`
	Position [3]float32 `yaml:"position"`
	Damping  float32    `yaml:"damping"`
}

// CaptureConfig holds screenshot settings.
type CaptureConfig struct {
	Dir    string `yaml:"dir"`
	Prefix string `yaml:"prefix"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with the stock tuning.
func Default() *Config {
	p := water.DefaultParams()
	plane := water.DefaultPlane()
	return &Config{
		Window: WindowConfig{
			Width:         1280,
			Height:        720,
			Fullscreen:    false,
			VSync:         true,
			MaxPixelRatio: 2,
		},
		Water: WaterConfig{
			WaveLength:         p.WaveLength,
			Frequency:          p.Frequency,
			WaveSpeed:          p.WaveSpeed,
			SmallWaveElevation: p.SmallWaveElevation,
			SmallWaveFrequency: p.SmallWaveFrequency,
			SmallWaveSpeed:     p.SmallWaveSpeed,
			ColorOffset:        p.ColorOffset,
			ColorMultiplier:    p.ColorMultiplier,
			DepthColor:         water.DefaultDepthHex,
			SurfaceColor:       water.DefaultSurfaceHex,
			NoiseSeed:          0,
			Segments:           plane.Segments,
			Size:               plane.Width,
		},
		Camera: CameraConfig{
			FOV:      75,
			Near:     0.1,
			Far:      100,
			Position: [3]float32{0.25, 0.25, 1},
			Damping:  0.05,
		},
		Capture: CaptureConfig{
			Dir:    "screenshots",
			Prefix: "water",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// WaterParams converts the water section into evaluator parameters.
// Hex colors are parsed here, once.
func (c *Config) WaterParams() (water.Params, error) {
	w := c.Water
	depth, err := water.ParseHex(w.DepthColor)
	if err != nil {
		return water.Params{}, fmt.Errorf("water.depth_color: %w", err)
	}
	surface, err := water.ParseHex(w.SurfaceColor)
	if err != nil {
		return water.Params{}, fmt.Errorf("water.surface_color: %w", err)
	}
	return water.Params{
		WaveLength:         w.WaveLength,
		Frequency:          w.Frequency,
		WaveSpeed:          w.WaveSpeed,
		SmallWaveElevation: w.SmallWaveElevation,
		SmallWaveFrequency: w.SmallWaveFrequency,
		SmallWaveSpeed:     w.SmallWaveSpeed,
		ColorOffset:        w.ColorOffset,
		ColorMultiplier:    w.ColorMultiplier,
		DepthColor:         depth,
		SurfaceColor:       surface,
	}, nil
}

// Plane returns the grid topology described by the water section.
func (c *Config) Plane() water.Plane {
	return water.Plane{
		Width:    c.Water.Size,
		Depth:    c.Water.Size,
		Segments: c.Water.Segments,
	}
}
