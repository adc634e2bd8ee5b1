package shading

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Normalize maps an integer pixel coordinate to normalized device
// coordinates, roughly [-1,1] on each axis with +y up. The image center maps
// to (0,0) and the shorter axis spans the full range, so a non-square target
// shows a cropped view along the longer axis instead of a stretched one.
//
// The center uses integer division: even sizes bisect exactly, odd sizes
// truncate toward the lower pixel.
func Normalize(px, py, w, h int) mgl32.Vec2 {
	cx := w / 2
	cy := h / 2
	m := float32(min(w, h))
	return mgl32.Vec2{
		float32(px-cx) / m * 2,
		-(float32(py-cy) / m * 2),
	}
}

// InBounds reports whether a dispatch-grid invocation lands on the image.
// Invocations padded past the image edge must not write.
func InBounds(px, py, w, h int) bool {
	return px >= 0 && py >= 0 && px < w && py < h
}
