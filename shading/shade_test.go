package shading

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClamp01_Idempotent(t *testing.T) {
	values := []mgl32.Vec3{
		{0.5, 0.25, 0.75},
		{1.5, -0.5, 0},
		{2, 2, 2},
		{-1, 1, 0.999},
	}
	for _, v := range values {
		once := Clamp01(v)
		assert.Equal(t, once, Clamp01(once), "clamp twice must equal clamp once for %v", v)
	}
}

func TestGamma_FixedPoints(t *testing.T) {
	assert.Equal(t, mgl32.Vec3{0, 0, 0}, Gamma(mgl32.Vec3{0, 0, 0}))
	assert.Equal(t, mgl32.Vec3{1, 1, 1}, Gamma(mgl32.Vec3{1, 1, 1}))

	// Gamma encoding brightens mid-tones.
	mid := Gamma(mgl32.Vec3{0.5, 0.5, 0.5})
	assert.Greater(t, mid.X(), float32(0.5))
	assert.Less(t, mid.X(), float32(1))
}

func TestShadeClamped_SaturatesAndStaysPut(t *testing.T) {
	// Two white lights on top of each other push channels past 1.
	rig := &LightRig{Count: 2}
	rig.Colors[0] = mgl32.Vec3{1, 1, 1}
	rig.Colors[1] = mgl32.Vec3{1, 1, 1}

	got := ShadeClamped(rig, mgl32.Vec2{0, 0})
	require.Equal(t, mgl32.Vec3{1, 1, 1}, got)
}

func TestShadeDithered_CenterPixel(t *testing.T) {
	// 100x100 image, white light at the origin, pixel at the exact center:
	// accumulation is exactly (1,1,1), gamma leaves 1 unchanged, and the
	// dither cell is (50%8, 50%8) = (2,2).
	rig := &LightRig{Count: 1}
	rig.Colors[0] = mgl32.Vec3{1, 1, 1}

	want := 1 + DitherOffset(50, 50)
	got := ShadeDithered(rig, 50, 50, 100, 100)
	assert.InDelta(t, want, got.X(), 1e-6)
	assert.InDelta(t, want, got.Y(), 1e-6)
	assert.InDelta(t, want, got.Z(), 1e-6)
}

func TestShadeDithered_NoFinalClamp(t *testing.T) {
	// Park the light on a pixel whose threshold is above the matrix mean so
	// the dither offset is positive: the shaded value must exceed 1, proving
	// nothing clamps before the store.
	px, py := 51, 50
	require.Greater(t, Threshold(px, py), uint8(32))

	rig := &LightRig{Count: 1}
	rig.Colors[0] = mgl32.Vec3{1, 1, 1}
	rig.Positions[0] = Normalize(px, py, 100, 100)

	got := ShadeDithered(rig, px, py, 100, 100)
	assert.Greater(t, got.X(), float32(1))
}

func TestShadeDithered_SameOffsetOnAllChannels(t *testing.T) {
	rig := &LightRig{Count: 1}
	rig.Colors[0] = mgl32.Vec3{0.9, 0.4, 0.1}
	rig.Positions[0] = mgl32.Vec2{0.2, -0.3}

	px, py := 17, 63
	base := Gamma(rig.Accumulate(Normalize(px, py, 200, 150)))
	got := ShadeDithered(rig, px, py, 200, 150)

	off := DitherOffset(px, py)
	assert.InDelta(t, base.X()+off, got.X(), 1e-7)
	assert.InDelta(t, base.Y()+off, got.Y(), 1e-7)
	assert.InDelta(t, base.Z()+off, got.Z(), 1e-7)
}
