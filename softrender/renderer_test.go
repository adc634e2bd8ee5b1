package softrender

import (
	"bytes"
	"image"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gekko3d/glowdots/shading"
)

func testRig() *shading.LightRig {
	rig := &shading.LightRig{Count: 4}
	rig.Positions = [shading.MaxLights]mgl32.Vec2{
		{-0.5, -0.5}, {0.5, -0.5}, {0.5, 0.5}, {-0.5, 0.5},
	}
	rig.Colors = [shading.MaxLights]mgl32.Vec3{
		{1, 1, 1}, {1, 0, 0}, {0, 1, 0}, {0, 0, 1},
	}
	return rig
}

func TestRenderer_MatchesPerPixelReference(t *testing.T) {
	rig := testRig()
	img := image.NewRGBA(image.Rect(0, 0, 20, 12))

	r := Renderer{Workers: 3}
	r.Render(img, rig)

	for py := 0; py < 12; py++ {
		for px := 0; px < 20; px++ {
			c := shading.ShadeDithered(rig, px, py, 20, 12)
			i := img.PixOffset(px, py)
			if img.Pix[i] != storeUnorm8(c.X()) || img.Pix[i+1] != storeUnorm8(c.Y()) || img.Pix[i+2] != storeUnorm8(c.Z()) {
				t.Fatalf("pixel (%d,%d) = %v, want shaded %v", px, py, img.Pix[i:i+4], c)
			}
			if img.Pix[i+3] != 0xff {
				t.Fatalf("pixel (%d,%d) alpha = %d, want 255", px, py, img.Pix[i+3])
			}
		}
	}
}

func TestRenderer_DeterministicAcrossWorkerCounts(t *testing.T) {
	rig := testRig()

	render := func(workers int) []byte {
		img := image.NewRGBA(image.Rect(0, 0, 33, 17))
		r := Renderer{Workers: workers}
		r.Render(img, rig)
		return img.Pix
	}

	one := render(1)
	require.True(t, bytes.Equal(one, render(8)), "worker count must not change output")
	require.True(t, bytes.Equal(one, render(1)), "repeat renders must be identical")
}

func TestRenderer_PaddedGridCoversOddSizes(t *testing.T) {
	// 13x9 is not a multiple of the group size; every pixel must still be
	// written exactly once (alpha tells us a write happened).
	rig := testRig()
	img := image.NewRGBA(image.Rect(0, 0, 13, 9))

	var r Renderer
	r.Render(img, rig)

	for py := 0; py < 9; py++ {
		for px := 0; px < 13; px++ {
			if img.Pix[img.PixOffset(px, py)+3] != 0xff {
				t.Fatalf("pixel (%d,%d) never written", px, py)
			}
		}
	}
}

func TestRenderer_LeavesPixelsOutsideBoundsAlone(t *testing.T) {
	// Render into a sub-rectangle of a larger buffer: nothing outside it may
	// be touched, padding invocations included.
	rig := testRig()
	full := image.NewRGBA(image.Rect(0, 0, 30, 30))
	sub := full.SubImage(image.Rect(10, 10, 23, 19)).(*image.RGBA)

	var r Renderer
	r.Render(sub, rig)

	for py := 0; py < 30; py++ {
		for px := 0; px < 30; px++ {
			inside := px >= 10 && px < 23 && py >= 10 && py < 19
			a := full.Pix[full.PixOffset(px, py)+3]
			if inside && a != 0xff {
				t.Fatalf("pixel (%d,%d) inside target never written", px, py)
			}
			if !inside && a != 0 {
				t.Fatalf("pixel (%d,%d) outside target was written", px, py)
			}
		}
	}
}

func TestRenderer_SaturatesAtStore(t *testing.T) {
	// Park a white light on a pixel whose dither offset is positive: the
	// shaded value exceeds 1 and the store must saturate to 255 instead of
	// wrapping.
	px, py := 11, 8
	require.Greater(t, shading.Threshold(px, py), uint8(32))

	rig := &shading.LightRig{Count: 1}
	rig.Colors[0] = mgl32.Vec3{1, 1, 1}
	rig.Positions[0] = shading.Normalize(px, py, 16, 16)

	img := image.NewRGBA(image.Rect(0, 0, 16, 16))
	var r Renderer
	r.Render(img, rig)

	i := img.PixOffset(px, py)
	assert.Equal(t, []uint8{255, 255, 255, 255}, img.Pix[i:i+4])
}

func TestStoreUnorm8(t *testing.T) {
	cases := []struct {
		in   float32
		want uint8
	}{
		{-0.5, 0},
		{0, 0},
		{0.5, 128},
		{1, 255},
		{1.5, 255},
	}
	for _, c := range cases {
		if got := storeUnorm8(c.in); got != c.want {
			t.Errorf("storeUnorm8(%v) = %d, want %d", c.in, got, c.want)
		}
	}
}

func TestDrawLabel_MarksPixels(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 64, 32))
	DrawLabel(img, 4, 16, "fps 60.0")

	marked := false
	for _, p := range img.Pix {
		if p != 0 {
			marked = true
			break
		}
	}
	assert.True(t, marked, "label should touch at least one pixel")
}
