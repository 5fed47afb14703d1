package input

import "github.com/veandco/go-sdl2/sdl"

// Orbit turns mouse events into orbit camera deltas: left-button drag
// rotates, the wheel zooms.
type Orbit struct {
	dragging bool
}

// OrbitDelta is the camera input gathered over one frame.
type OrbitDelta struct {
	DragX, DragY float32
	Zoom         float32
}

// Apply folds a frame's events into a delta.
func (o *Orbit) Apply(events []Event) OrbitDelta {
	var d OrbitDelta
	for _, e := range events {
		switch e.Type {
		case EventMouseDown:
			if e.Button == sdl.BUTTON_LEFT {
				o.dragging = true
			}
		case EventMouseUp:
			if e.Button == sdl.BUTTON_LEFT {
				o.dragging = false
			}
		case EventMouseMove:
			if o.dragging {
				d.DragX += float32(e.RelX)
				d.DragY += float32(e.RelY)
			}
		case EventMouseWheel:
			d.Zoom += e.Wheel
		}
	}
	return d
}

// Dragging reports whether the left button is held.
func (o *Orbit) Dragging() bool {
	return o.dragging
}
