package shading

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContribution_PeakIsExactColor(t *testing.T) {
	color := mgl32.Vec3{0.25, 0.5, 1}
	// Denominator is exactly 1 at distance zero, so the peak is the raw
	// color with no rounding.
	require.Equal(t, color, Contribution(color, 0))
}

func TestContribution_StrictlyDecreasing(t *testing.T) {
	color := mgl32.Vec3{1, 1, 1}
	prev := Contribution(color, 0)
	for _, d2 := range []float32{1e-6, 1e-4, 0.01, 0.1, 0.5, 1, 2, 8} {
		cur := Contribution(color, d2)
		if cur.X() >= prev.X() {
			t.Errorf("contribution not strictly decreasing at d2=%v: %v >= %v", d2, cur.X(), prev.X())
		}
		prev = cur
	}
}

func TestAccumulate_CenterPeak(t *testing.T) {
	rig := &LightRig{Count: 1}
	rig.Colors[0] = mgl32.Vec3{1, 1, 1}

	got := rig.Accumulate(mgl32.Vec2{0, 0})
	require.Equal(t, mgl32.Vec3{1, 1, 1}, got)
}

func TestAccumulate_OnlyLiveLightsCount(t *testing.T) {
	rig := &LightRig{Count: 2}
	for i := range rig.Colors {
		rig.Colors[i] = mgl32.Vec3{1, 1, 1}
		rig.Positions[i] = mgl32.Vec2{float32(i) * 0.1, 0}
	}

	at := mgl32.Vec2{0.3, -0.2}
	want := mgl32.Vec3{}
	for i := 0; i < 2; i++ {
		delta := at.Sub(rig.Positions[i])
		want = want.Add(Contribution(rig.Colors[i], delta.Dot(delta)))
	}

	assert.Equal(t, want, rig.Accumulate(at))
}

func TestAccumulate_ChannelsIndependent(t *testing.T) {
	rig := &LightRig{Count: 2}
	rig.Positions[0] = mgl32.Vec2{-0.5, 0}
	rig.Colors[0] = mgl32.Vec3{1, 0, 0}
	rig.Positions[1] = mgl32.Vec2{0.5, 0}
	rig.Colors[1] = mgl32.Vec3{0, 1, 0}

	got := rig.Accumulate(mgl32.Vec2{0, 0})
	assert.Greater(t, got.X(), float32(0))
	assert.Greater(t, got.Y(), float32(0))
	assert.Equal(t, float32(0), got.Z(), "no light feeds the blue channel")
}
