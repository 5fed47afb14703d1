// Package main presents the water surface in a plain SDL window without
// any panel. Parameters come from the config file.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/wavesurface/internal/config"
	"github.com/Faultbox/wavesurface/internal/engine/camera"
	"github.com/Faultbox/wavesurface/internal/engine/debug"
	"github.com/Faultbox/wavesurface/internal/engine/input"
	"github.com/Faultbox/wavesurface/internal/engine/scene"
	"github.com/Faultbox/wavesurface/internal/engine/water"
	"github.com/Faultbox/wavesurface/internal/engine/window"
	"github.com/Faultbox/wavesurface/internal/logger"
)

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("=== Water Screen ===")
	for _, field := range cfg.ClampWater() {
		logger.Warn("config value out of range, clamped", zap.String("field", field))
	}

	if err := run(cfg); err != nil {
		logger.Error("water screen failed", zap.Error(err))
		os.Exit(1)
	}
	logger.Info("water screen closed normally")
}

func run(cfg *config.Config) error {
	params, err := cfg.WaterParams()
	if err != nil {
		return err
	}

	win, err := window.New(window.Config{
		Title:      "Water",
		Width:      cfg.Window.Width,
		Height:     cfg.Window.Height,
		Fullscreen: cfg.Window.Fullscreen,
		VSync:      cfg.Window.VSync,
	})
	if err != nil {
		return fmt.Errorf("creating window: %w", err)
	}
	defer win.Close()

	// The window drawable is already at native resolution, so no
	// offscreen target is needed here.
	sceneCfg := scene.DefaultConfig()
	sceneCfg.Offscreen = false
	sceneCfg.Width, sceneCfg.Height = win.DrawableSize()
	sc, err := scene.New(sceneCfg, cfg.Plane())
	if err != nil {
		return fmt.Errorf("creating scene: %w", err)
	}
	defer sc.Destroy()

	s := &screen{
		win:   win,
		scene: sc,
		in:    input.New(),
		cam:   camera.FromConfig(cfg.Camera),
		clock: water.NewClock(),
		shots: debug.NewScreenshotCapture(cfg.Capture.Dir, cfg.Capture.Prefix),
		log:   logger.Named("waterscreen"),
	}
	s.log.Info("screen ready",
		zap.Int32("width", sceneCfg.Width),
		zap.Int32("height", sceneCfg.Height),
		zap.Float32("pixel_ratio", win.PixelRatio()),
		zap.Int("segments", cfg.Water.Segments))
	s.loop(&params)
	return nil
}

type screen struct {
	win   *window.Window
	scene *scene.Scene
	in    *input.Input
	orbit input.Orbit
	cam   *camera.OrbitCamera
	clock *water.Clock
	shots *debug.ScreenshotCapture
	log   *zap.Logger
}

func (s *screen) loop(p *water.Params) {
	last := time.Now()
	for {
		if s.in.Update() || s.in.IsKeyPressed(sdl.SCANCODE_ESCAPE) {
			return
		}

		now := time.Now()
		dt := float32(now.Sub(last).Seconds())
		last = now

		s.handleEvents()

		s.cam.Update(dt)
		s.scene.Render(s.cam, s.clock.Elapsed(), p)

		// Read back before the swap while the back buffer is still valid.
		if s.in.IsKeyPressed(sdl.SCANCODE_F12) {
			s.capture()
		}
		s.win.SwapBuffers()
	}
}

func (s *screen) handleEvents() {
	events := s.in.Events()
	for _, e := range events {
		if e.Type == input.EventWindowResize {
			w, h := s.win.DrawableSize()
			s.scene.Resize(w, h)
			s.log.Debug("resized", zap.Int32("width", w), zap.Int32("height", h))
		}
	}

	d := s.orbit.Apply(events)
	if d.DragX != 0 || d.DragY != 0 {
		s.cam.HandleDrag(d.DragX, d.DragY)
	}
	if d.Zoom != 0 {
		s.cam.HandleZoom(d.Zoom)
	}

	if s.in.IsKeyPressed(sdl.SCANCODE_R) {
		s.cam.Reset()
	}
	if s.in.IsKeyPressed(sdl.SCANCODE_SPACE) {
		s.clock.Toggle()
		s.log.Info("clock toggled", zap.Bool("paused", s.clock.Paused()))
	}
}

func (s *screen) capture() {
	pixels, w, h := s.scene.ReadPixels()
	path, err := s.shots.CaptureFromPixels(pixels, w, h)
	if err != nil {
		s.log.Error("screenshot failed", zap.Error(err))
		return
	}
	s.log.Info("screenshot saved", zap.String("path", path))
	s.win.SetTitle("Water - " + path)
}
