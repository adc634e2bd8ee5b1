package glowdots

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/gekko3d/glowdots/shading"
)

// defaultPalette cycles when more than four lights are requested. The first
// four match the classic demo: white, red, green, blue.
var defaultPalette = [4]mgl32.Vec3{
	{1, 1, 1},
	{1, 0, 0},
	{0, 1, 0},
	{0, 0, 1},
}

// orbitRadius places four lights at (±0.5, ±0.5).
const orbitRadius = math.Sqrt2 / 2

type orbitState struct {
	base [shading.MaxLights]mgl32.Vec2
}

// LightsModule installs the shared LightRig resource and the orbit
// animation. Count defaults to 4 and is bounded by shading.MaxLights.
type LightsModule struct {
	Count int
}

func (mod LightsModule) Install(app *App, cmd *Commands) {
	count := mod.Count
	if count <= 0 {
		count = 4
	}
	if count > shading.MaxLights {
		count = shading.MaxLights
	}

	rig := &shading.LightRig{Count: count}
	orbit := &orbitState{}
	for i := 0; i < count; i++ {
		theta := -3*math.Pi/4 + 2*math.Pi*float64(i)/float64(count)
		orbit.base[i] = mgl32.Vec2{
			orbitRadius * float32(math.Cos(theta)),
			orbitRadius * float32(math.Sin(theta)),
		}
		rig.Positions[i] = orbit.base[i]
		rig.Colors[i] = defaultPalette[i%len(defaultPalette)]
	}

	cmd.AddResources(rig, orbit)
	cmd.UseSystem(System(orbitSystem).InStage(Update))
}

// orbitSystem rotates the base positions around the center by a
// time-dependent angle whose magnitude also pulses the radius.
func orbitSystem(timeResource *Time, rig *shading.LightRig, orbit *orbitState) {
	r := -timeResource.Elapsed.Seconds() * math.Pi / 2
	sinR, cosR := math.Sincos(r)
	scale := (sinR + 1) / 2
	sin := float32(sinR * scale)
	cos := float32(cosR * scale)

	for i := 0; i < rig.Count; i++ {
		b := orbit.base[i]
		rig.Positions[i] = mgl32.Vec2{
			b.X()*cos - b.Y()*sin,
			b.X()*sin + b.Y()*cos,
		}
	}
}
