package shading

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// InvGamma is the exponent applied per channel to encode linear light for an
// 8-bit display-referred target.
const InvGamma = 1.0 / 2.2

// Clamp01 clamps every channel to [0,1]. Applying it twice is the same as
// applying it once.
func Clamp01(c mgl32.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{
		mgl32.Clamp(c.X(), 0, 1),
		mgl32.Clamp(c.Y(), 0, 1),
		mgl32.Clamp(c.Z(), 0, 1),
	}
}

// Gamma applies the 1/2.2 encoding per channel. Inputs are non-negative by
// construction (channel sums of non-negative contributions).
func Gamma(c mgl32.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{
		float32(math.Pow(float64(c.X()), InvGamma)),
		float32(math.Pow(float64(c.Y()), InvGamma)),
		float32(math.Pow(float64(c.Z()), InvGamma)),
	}
}

// ShadeClamped is the direct-to-display policy: accumulate and clamp, no
// gamma, no dither. Used when the target gets no further post-processing.
func ShadeClamped(rig *LightRig, ndc mgl32.Vec2) mgl32.Vec3 {
	return Clamp01(rig.Accumulate(ndc))
}

// ShadeDithered is the compute-kernel policy: accumulate, gamma-encode, then
// add the pixel's dither offset to all three channels. No clamp is applied
// here; saturation happens when the value is stored to the 8-bit target.
func ShadeDithered(rig *LightRig, px, py, w, h int) mgl32.Vec3 {
	c := Gamma(rig.Accumulate(Normalize(px, py, w, h)))
	d := DitherOffset(px, py)
	return mgl32.Vec3{c.X() + d, c.Y() + d, c.Z() + d}
}
