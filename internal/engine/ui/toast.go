package ui

import (
	"time"

	"github.com/AllenDang/cimgui-go/imgui"
)

// Toast is a short-lived status message drawn in a corner of the window.
type Toast struct {
	msg   string
	shown time.Time
	ttl   time.Duration
	now   func() time.Time
}

// NewToast creates a toast that stays visible for ttl.
func NewToast(ttl time.Duration) *Toast {
	return &Toast{ttl: ttl, now: time.Now}
}

// Show replaces the current message and restarts the timer.
func (t *Toast) Show(msg string) {
	t.msg = msg
	t.shown = t.now()
}

// Message returns the message while it is still visible.
func (t *Toast) Message() (string, bool) {
	if t.msg == "" || t.now().Sub(t.shown) >= t.ttl {
		return "", false
	}
	return t.msg, true
}

// Draw renders the toast at (x, y) if it is visible.
func (t *Toast) Draw(x, y float32) {
	msg, ok := t.Message()
	if !ok {
		return
	}
	flags := imgui.WindowFlagsNoTitleBar | imgui.WindowFlagsNoResize |
		imgui.WindowFlagsNoMove | imgui.WindowFlagsNoScrollbar |
		imgui.WindowFlagsAlwaysAutoResize | imgui.WindowFlagsNoFocusOnAppearing
	imgui.SetNextWindowPos(imgui.NewVec2(x, y))
	imgui.SetNextWindowBgAlpha(0.85)
	if imgui.BeginV("##Toast", nil, flags) {
		imgui.Text(msg)
	}
	imgui.End()
}
