// Package shading holds the per-pixel math of the glow kernel: coordinate
// normalization, light accumulation, gamma encoding and ordered dithering.
// Everything here is a pure function of its inputs so the GPU and software
// renderers share one reference implementation.
package shading

import (
	"github.com/go-gl/mathgl/mgl32"
)

// MaxLights bounds the number of lights in a LightRig. The GPU uniform
// layout is sized to the same constant.
const MaxLights = 8

// Falloff controls how sharply a contribution decays with squared distance.
// The denominator d2*Falloff+1 never drops below 1, so the peak contribution
// at distance zero is exactly the light color and there is no singularity.
const Falloff = 300.0

// LightRig is the shared read-only light state for one frame: sized position
// and color arrays plus an explicit count. Only the first Count entries are
// live.
type LightRig struct {
	Positions [MaxLights]mgl32.Vec2
	Colors    [MaxLights]mgl32.Vec3
	Count     int
}

// Contribution is a single light's color scaled by the falloff term for the
// given squared distance.
func Contribution(color mgl32.Vec3, distSqrd float32) mgl32.Vec3 {
	return color.Mul(1 / (distSqrd*Falloff + 1))
}

// Accumulate sums every light's contribution at an NDC coordinate. Channels
// accumulate independently and the result is linear, non-negative and
// unclamped.
func (r *LightRig) Accumulate(ndc mgl32.Vec2) mgl32.Vec3 {
	var acc mgl32.Vec3
	for i := 0; i < r.Count; i++ {
		delta := ndc.Sub(r.Positions[i])
		acc = acc.Add(Contribution(r.Colors[i], delta.Dot(delta)))
	}
	return acc
}
