package framebuffer

import "math"

// PixelSize converts a logical viewport size to a render target size.
// The display pixel ratio is capped at maxRatio; maxRatio <= 0 means no cap.
// Both results are at least 1.
func PixelSize(width, height, ratio, maxRatio float32) (int32, int32) {
	if ratio <= 0 {
		ratio = 1
	}
	if maxRatio > 0 {
		ratio = min(ratio, maxRatio)
	}
	w := int32(math.Round(float64(width * ratio)))
	h := int32(math.Round(float64(height * ratio)))
	return max(w, 1), max(h, 1)
}
