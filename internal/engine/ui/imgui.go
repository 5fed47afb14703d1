// Package ui provides ImGui-based user interface components.
package ui

import (
	"fmt"
	"os"

	"github.com/AllenDang/cimgui-go/backend"
	"github.com/AllenDang/cimgui-go/backend/sdlbackend"
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/wavesurface/internal/logger"
)

// fontPaths are tried in order; the ImGui default font is used if none exist.
var fontPaths = []string{
	"/System/Library/Fonts/SFNS.ttf",
	"/Library/Fonts/Arial.ttf",
	"C:\\Windows\\Fonts\\segoeui.ttf",
	"/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf",
	"/usr/share/fonts/TTF/DejaVuSans.ttf",
}

// Backend wraps the ImGui SDL backend.
type Backend struct {
	backend  backend.Backend[sdlbackend.SDLWindowFlags]
	fontSize float32
}

// NewBackend creates the SDL window, the ImGui context and loads GL.
func NewBackend(title string, width, height int32) (*Backend, error) {
	b := &Backend{fontSize: 15}

	var err error
	b.backend, err = backend.CreateBackend(sdlbackend.NewSDLBackend())
	if err != nil {
		return nil, fmt.Errorf("create backend: %w", err)
	}

	b.backend.SetAfterCreateContextHook(b.loadFont)
	b.backend.SetBgColor(imgui.NewVec4(0.07, 0.09, 0.12, 1.0))
	b.backend.CreateWindow(title, int(width), int(height))

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("init opengl: %w", err)
	}

	logger.Named("ui").Info("imgui backend ready",
		zap.Int32("width", width),
		zap.Int32("height", height),
		zap.String("gl", gl.GoStr(gl.GetString(gl.VERSION))))
	return b, nil
}

func (b *Backend) loadFont() {
	for _, path := range fontPaths {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		fontCfg := imgui.NewFontConfig()
		defer fontCfg.Destroy()
		imgui.CurrentIO().Fonts().AddFontFromFileTTFV(path, b.fontSize, fontCfg, nil)
		logger.Named("ui").Debug("font loaded", zap.String("path", path))
		return
	}
}

// Run starts the main render loop.
func (b *Backend) Run(renderFunc func()) {
	b.backend.Run(renderFunc)
}

// SetWindowTitle updates the window title.
func (b *Backend) SetWindowTitle(title string) {
	b.backend.SetWindowTitle(title)
}

// SetTargetFPS caps the loop rate; 0 leaves it uncapped.
func (b *Backend) SetTargetFPS(fps uint) {
	b.backend.SetTargetFPS(fps)
}

// GetViewport returns the main viewport work area.
func (b *Backend) GetViewport() (posX, posY, width, height float32) {
	viewport := imgui.MainViewport()
	workPos := viewport.WorkPos()
	workSize := viewport.WorkSize()
	return workPos.X, workPos.Y, workSize.X, workSize.Y
}

// PixelRatio returns the framebuffer scale of the display.
func (b *Backend) PixelRatio() float32 {
	return imgui.CurrentIO().DisplayFramebufferScale().X
}

// IsKeyPressed checks if a key was pressed this frame.
func IsKeyPressed(key imgui.Key) bool {
	return imgui.IsKeyChordPressed(imgui.KeyChord(key))
}

// WantsKeyboard reports whether a widget is consuming keyboard input.
func WantsKeyboard() bool {
	return imgui.IsAnyItemActive()
}
