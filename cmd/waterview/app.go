package main

import (
	"fmt"
	"time"

	"github.com/AllenDang/cimgui-go/imgui"
	"go.uber.org/zap"

	"github.com/Faultbox/wavesurface/internal/config"
	"github.com/Faultbox/wavesurface/internal/engine/camera"
	"github.com/Faultbox/wavesurface/internal/engine/debug"
	"github.com/Faultbox/wavesurface/internal/engine/framebuffer"
	"github.com/Faultbox/wavesurface/internal/engine/scene"
	"github.com/Faultbox/wavesurface/internal/engine/ui"
	"github.com/Faultbox/wavesurface/internal/engine/water"
	"github.com/Faultbox/wavesurface/internal/logger"
)

const panelWidth = 340

// App holds the viewer state.
type App struct {
	cfg *config.Config
	log *zap.Logger

	ui    *ui.Backend
	scene *scene.Scene
	cam   *camera.OrbitCamera
	clock *water.Clock
	field *water.Field

	cursor   probe
	cursorOK bool

	// params is the live parameter set; both the panel and the renderer
	// use it directly, so a slider change shows up on the next draw.
	params  water.Params
	initial water.Params
	colors  []*colorField

	segments  int32 // Slider value, applied on release
	viewport  ui.Viewport
	shots     *debug.ScreenshotCapture
	toast     *ui.Toast
	lastFrame time.Time

	showPanel        bool
	captureRequested bool
}

// NewApp creates the window, GL resources and initial state.
func NewApp(cfg *config.Config) (*App, error) {
	params, err := cfg.WaterParams()
	if err != nil {
		return nil, err
	}

	app := &App{
		cfg:       cfg,
		log:       logger.Named("waterview"),
		cam:       camera.FromConfig(cfg.Camera),
		clock:     water.NewClock(),
		field:     water.NewField(cfg.Water.NoiseSeed),
		params:    params,
		initial:   params,
		shots:     debug.NewScreenshotCapture(cfg.Capture.Dir, cfg.Capture.Prefix),
		toast:     ui.NewToast(2 * time.Second),
		showPanel: true,
		segments:  int32(cfg.Water.Segments),
	}
	app.colors = []*colorField{
		newColorField("Depth color", &app.params.DepthColor),
		newColorField("Surface color", &app.params.SurfaceColor),
	}

	app.ui, err = ui.NewBackend("Water", int32(cfg.Window.Width), int32(cfg.Window.Height))
	if err != nil {
		return nil, err
	}

	sceneCfg := scene.DefaultConfig()
	sceneCfg.Width, sceneCfg.Height = int32(cfg.Window.Width), int32(cfg.Window.Height)
	app.scene, err = scene.New(sceneCfg, cfg.Plane())
	if err != nil {
		return nil, fmt.Errorf("creating scene: %w", err)
	}

	app.log.Info("viewer ready",
		zap.Int("segments", cfg.Water.Segments),
		zap.Float64("size", cfg.Water.Size),
		zap.String("depth", params.DepthColor.Hex()),
		zap.String("surface", params.SurfaceColor.Hex()))
	return app, nil
}

// Run starts the main loop and blocks until the window closes.
func (app *App) Run() {
	app.lastFrame = time.Now()
	app.ui.Run(app.render)
}

// Close releases GL resources.
func (app *App) Close() {
	if app.scene != nil {
		app.scene.Destroy()
		app.scene = nil
	}
}

func (app *App) render() {
	now := time.Now()
	dt := float32(now.Sub(app.lastFrame).Seconds())
	app.lastFrame = now

	app.handleKeys()

	posX, posY, width, height := app.ui.GetViewport()
	if width < 1 || height < 1 {
		return
	}

	// Pixel ratio is capped so 3x displays do not triple the fill cost.
	pw, ph := framebuffer.PixelSize(width, height, app.ui.PixelRatio(), app.cfg.Window.MaxPixelRatio)
	app.scene.Resize(pw, ph)

	app.cam.Update(dt)
	tex := app.scene.Render(app.cam, app.clock.Elapsed(), &app.params)

	if app.captureRequested {
		app.captureRequested = false
		app.capture()
	}

	app.renderViewport(tex, posX, posY, width, height)

	if app.showPanel {
		imgui.SetNextWindowPos(imgui.NewVec2(posX+width-panelWidth-10, posY+10))
		imgui.SetNextWindowSize(imgui.NewVec2(panelWidth, 0))
		if imgui.BeginV("Water", &app.showPanel, imgui.WindowFlagsNoResize|imgui.WindowFlagsAlwaysAutoResize) {
			app.renderPanel()
		}
		imgui.End()
	}

	app.toast.Draw(posX+10, posY+10)
}

func (app *App) handleKeys() {
	if imgui.IsKeyChordPressed(imgui.KeyChord(imgui.KeyF12)) {
		app.captureRequested = true
	}
	if ui.WantsKeyboard() {
		return
	}
	if ui.IsKeyPressed(imgui.KeySpace) {
		app.togglePause()
	}
	if ui.IsKeyPressed(imgui.KeyR) {
		app.cam.Reset()
	}
	if ui.IsKeyPressed(imgui.KeyH) {
		app.showPanel = !app.showPanel
	}
}

func (app *App) renderViewport(tex uint32, x, y, w, h float32) {
	flags := imgui.WindowFlagsNoTitleBar | imgui.WindowFlagsNoResize | imgui.WindowFlagsNoMove |
		imgui.WindowFlagsNoScrollbar | imgui.WindowFlagsNoScrollWithMouse |
		imgui.WindowFlagsNoBringToFrontOnFocus | imgui.WindowFlagsNoCollapse

	imgui.SetNextWindowPos(imgui.NewVec2(x, y))
	imgui.SetNextWindowSize(imgui.NewVec2(w, h))
	imgui.PushStyleVarVec2(imgui.StyleVarWindowPadding, imgui.NewVec2(0, 0))
	if imgui.BeginV("##Viewport", nil, flags) {
		in := app.viewport.Draw(tex, w, h)
		if in.DragX != 0 || in.DragY != 0 {
			app.cam.HandleDrag(in.DragX, in.DragY)
		}
		if in.Wheel != 0 {
			app.cam.HandleZoom(in.Wheel)
		}
		app.updateProbe(in, w, h)
	}
	imgui.End()
	imgui.PopStyleVar()
}

func (app *App) updateProbe(in ui.ViewportInput, w, h float32) {
	app.cursorOK = false
	if !in.Hovered {
		return
	}
	ray, ok := cursorRay(app.cam.ViewMatrix(), app.cam.Projection(w/h), in.MouseX, in.MouseY, w, h)
	if !ok {
		return
	}
	app.cursor, app.cursorOK = probeSurface(app.field, app.cfg.Plane(), ray, app.clock.Elapsed(), &app.params)
}

func (app *App) setSegments(n int) {
	if n == app.cfg.Water.Segments {
		return
	}
	app.cfg.Water.Segments = n
	if err := app.scene.SetPlane(app.cfg.Plane()); err != nil {
		app.log.Error("rebuilding plane", zap.Int("segments", n), zap.Error(err))
		return
	}
	app.log.Info("plane rebuilt", zap.Int("segments", n), zap.Int("vertices", app.cfg.Plane().VertexCount()))
}

func (app *App) togglePause() {
	app.clock.Toggle()
	app.log.Debug("clock toggled", zap.Bool("paused", app.clock.Paused()), zap.Float64("time", app.clock.Elapsed()))
}

func (app *App) resetParams() {
	app.params = app.initial
	for _, f := range app.colors {
		f.sync()
	}
	app.log.Info("parameters reset")
}

func (app *App) capture() {
	pixels, w, h := app.scene.ReadPixels()
	path, err := app.shots.CaptureFromPixels(pixels, w, h)
	if err != nil {
		app.log.Error("screenshot failed", zap.Error(err))
		app.toast.Show("Screenshot failed: " + err.Error())
		return
	}
	app.log.Info("screenshot saved", zap.String("path", path), zap.Int("width", w), zap.Int("height", h))
	app.toast.Show("Saved " + path)
}
