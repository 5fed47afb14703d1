// Package scene renders the water surface into an offscreen target or the
// default framebuffer.
package scene

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/wavesurface/internal/engine/camera"
	"github.com/Faultbox/wavesurface/internal/engine/framebuffer"
	"github.com/Faultbox/wavesurface/internal/engine/water"
)

// Config contains scene configuration options.
type Config struct {
	Width      int32 // Framebuffer size in pixels
	Height     int32
	ClearColor [4]float32
	Offscreen  bool // Render into a framebuffer instead of the window
}

// DefaultConfig returns a default scene configuration.
func DefaultConfig() Config {
	return Config{
		Width:      1280,
		Height:     720,
		ClearColor: [4]float32{0.07, 0.09, 0.12, 1},
		Offscreen:  true,
	}
}

// Scene owns the water pass and, when offscreen, its render target.
type Scene struct {
	config      Config
	framebuffer *framebuffer.Framebuffer
	water       *WaterRenderer
}

// New creates a scene and uploads the plane mesh.
func New(cfg Config, plane water.Plane) (*Scene, error) {
	s := &Scene{config: cfg}

	var err error
	if cfg.Offscreen {
		s.framebuffer, err = framebuffer.New(cfg.Width, cfg.Height)
		if err != nil {
			return nil, fmt.Errorf("creating framebuffer: %w", err)
		}
	}

	s.water, err = NewWaterRenderer()
	if err != nil {
		s.Destroy()
		return nil, fmt.Errorf("creating water renderer: %w", err)
	}

	if err := s.water.Upload(plane); err != nil {
		s.Destroy()
		return nil, fmt.Errorf("uploading plane: %w", err)
	}

	return s, nil
}

// Water exposes the water pass for per-frame toggles.
func (s *Scene) Water() *WaterRenderer {
	return s.water
}

// SetPlane rebuilds the mesh with a new topology.
func (s *Scene) SetPlane(plane water.Plane) error {
	return s.water.Upload(plane)
}

// Render draws one frame for time t and returns the color texture when
// offscreen (0 otherwise).
func (s *Scene) Render(cam *camera.OrbitCamera, t float64, p *water.Params) uint32 {
	if s.framebuffer != nil {
		restore := s.framebuffer.BindWithViewport()
		defer restore()
	} else {
		gl.Viewport(0, 0, s.config.Width, s.config.Height)
	}

	c := s.config.ClearColor
	gl.ClearColor(c[0], c[1], c[2], c[3])
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	// Both faces are visible from below the surface.
	gl.Disable(gl.CULL_FACE)

	aspect := float32(s.config.Width) / float32(s.config.Height)
	s.water.Render(cam.ViewMatrix(), cam.Projection(aspect), t, p)

	if s.framebuffer == nil {
		return 0
	}
	return s.framebuffer.ColorTexture()
}

// Resize updates the render target size.
func (s *Scene) Resize(width, height int32) {
	width, height = max(width, 1), max(height, 1)
	if width == s.config.Width && height == s.config.Height {
		return
	}
	s.config.Width = width
	s.config.Height = height
	if s.framebuffer != nil {
		s.framebuffer.Resize(width, height)
	}
}

// Size returns the render target size.
func (s *Scene) Size() (width, height int32) {
	return s.config.Width, s.config.Height
}

// ColorTexture returns the rendered color texture, or 0 when not offscreen.
func (s *Scene) ColorTexture() uint32 {
	if s.framebuffer == nil {
		return 0
	}
	return s.framebuffer.ColorTexture()
}

// ReadPixels returns the last frame as bottom-up RGBA rows.
func (s *Scene) ReadPixels() ([]byte, int, int) {
	if s.framebuffer != nil {
		w, h := s.framebuffer.Size()
		return s.framebuffer.ReadPixels(), int(w), int(h)
	}
	return framebuffer.ReadDefault(s.config.Width, s.config.Height), int(s.config.Width), int(s.config.Height)
}

// Destroy releases all resources.
func (s *Scene) Destroy() {
	if s.water != nil {
		s.water.Destroy()
	}
	if s.framebuffer != nil {
		s.framebuffer.Destroy()
	}
}
