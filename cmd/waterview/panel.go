package main

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"
	"go.uber.org/zap"
)

// renderPanel draws the tuning panel. Widgets write into app.params only
// when they report a change.
func (app *App) renderPanel() {
	imgui.Text("Waves")
	imgui.Separator()
	for _, t := range tunables(&app.params) {
		v := float32(*t.value)
		if imgui.SliderFloatV(t.label, &v, float32(t.rng.Min), float32(t.rng.Max), t.format, imgui.SliderFlagsNone) {
			t.set(v)
		}
	}

	imgui.Spacing()
	imgui.Text("Colors")
	imgui.Separator()
	for _, f := range app.colors {
		app.renderColor(f)
	}

	imgui.Spacing()
	imgui.Text("Camera")
	imgui.Separator()
	dist := app.cam.Distance
	if imgui.SliderFloatV("Camera Z", &dist, 0, 10, "%.2f", imgui.SliderFlagsNone) {
		app.cam.SetDistance(dist)
	}
	imgui.SliderInt("Segments", &app.segments, 8, 512)
	if imgui.IsItemDeactivatedAfterEdit() {
		app.setSegments(int(app.segments))
	}
	imgui.Checkbox("Wireframe", &app.scene.Water().Wireframe)

	imgui.Spacing()
	imgui.Separator()
	label := "Pause"
	if app.clock.Paused() {
		label = "Resume"
	}
	if imgui.Button(label) {
		app.togglePause()
	}
	imgui.SameLine()
	if imgui.Button("Reset time") {
		app.clock.Reset()
	}
	imgui.SameLine()
	if imgui.Button("Reset camera") {
		app.cam.Reset()
	}
	if imgui.Button("Reset parameters") {
		app.resetParams()
	}
	imgui.SameLine()
	if imgui.Button("Screenshot") {
		app.captureRequested = true
	}

	imgui.Spacing()
	w, h := app.scene.Size()
	imgui.TextDisabled(fmt.Sprintf("t=%.2fs  %.0f fps  %dx%d", app.clock.Elapsed(), imgui.CurrentIO().Framerate(), w, h))
	imgui.TextDisabled(fmt.Sprintf("max |e| %.3f", app.params.MaxElevation()))
	if app.cursorOK {
		c := app.cursor
		imgui.TextDisabled(fmt.Sprintf("cursor (%.3f, %.3f)  e %+.3f  mix %.2f  %s", c.X, c.Z, c.Elevation, c.Mix, c.Color.Hex()))
	}
	imgui.TextDisabled("Drag to orbit, scroll to zoom. Space pause, R reset, H hide, F12 capture")
}

func (app *App) renderColor(f *colorField) {
	imgui.SetNextItemWidth(90)
	if imgui.InputTextWithHint("##hex "+f.label, "#rrggbb", &f.hex, imgui.InputTextFlagsEnterReturnsTrue, nil) {
		if err := f.commitHex(); err != nil {
			app.log.Warn("invalid color", zap.String("field", f.label), zap.Error(err))
		}
	}
	imgui.SameLine()
	if imgui.ColorEdit3V(f.label, &f.picker, imgui.ColorEditFlagsNoInputs) {
		f.commitPicker()
	}
	if f.err != nil {
		imgui.TextColored(imgui.NewVec4(1, 0.4, 0.3, 1), f.err.Error())
	}
}
