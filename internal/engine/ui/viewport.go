package ui

import "github.com/AllenDang/cimgui-go/imgui"

// ViewportInput is the mouse input gathered over the viewport image.
type ViewportInput struct {
	Hovered      bool
	DragX, DragY float32
	Wheel        float32

	// MouseX and MouseY are relative to the image's top-left corner.
	MouseX, MouseY float32
}

// Viewport draws a GL color texture filling the given size and reports
// drag and wheel input that happened over it.
type Viewport struct {
	lastMouse imgui.Vec2
	dragging  bool
}

// Draw shows the texture. The V axis is flipped since GL textures start at
// the bottom row.
func (v *Viewport) Draw(textureID uint32, width, height float32) ViewportInput {
	texRef := imgui.NewTextureRefTextureID(imgui.TextureID(textureID))
	imgui.ImageWithBgV(
		*texRef,
		imgui.NewVec2(width, height),
		imgui.NewVec2(0, 1),
		imgui.NewVec2(1, 0),
		imgui.NewVec4(0, 0, 0, 1),
		imgui.NewVec4(1, 1, 1, 1),
	)

	in := ViewportInput{Hovered: imgui.IsItemHovered()}
	mouse := imgui.MousePos()
	origin := imgui.ItemRectMin()
	in.MouseX, in.MouseY = mouse.X-origin.X, mouse.Y-origin.Y

	// A drag that starts over the image keeps going when the cursor leaves it.
	down := imgui.IsMouseDown(imgui.MouseButtonLeft)
	if !down {
		v.dragging = false
	} else if in.Hovered && imgui.IsMouseClickedBool(imgui.MouseButtonLeft) {
		v.dragging = true
	}
	if v.dragging {
		in.DragX = mouse.X - v.lastMouse.X
		in.DragY = mouse.Y - v.lastMouse.Y
	}
	v.lastMouse = mouse

	if in.Hovered {
		in.Wheel = imgui.CurrentIO().MouseWheel()
	}
	return in
}
