// Package softrender runs the glow kernel on the CPU. It mirrors the GPU
// dispatch: the image is covered by 8x8 invocation groups, padded groups are
// bounds-checked per pixel, and every invocation writes exactly one pixel,
// so bands can run on separate goroutines without synchronization.
package softrender

import (
	"image"
	"runtime"
	"sync"

	"github.com/gekko3d/glowdots/shading"
)

// GroupSize matches the compute shader's workgroup tile. The dither matrix
// happens to share the same period; the two are not coupled.
const GroupSize = 8

type Renderer struct {
	// Workers caps the number of concurrent row bands. Zero means
	// runtime.NumCPU().
	Workers int
}

// Render shades every pixel of img with the gamma+dither policy. Values are
// stored with rgba8unorm semantics: clamp to [0,1], scale to 255, round.
// The kernel itself never clamps; saturation is the store's job.
func (r *Renderer) Render(img *image.RGBA, rig *shading.LightRig) {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w == 0 || h == 0 {
		return
	}

	workers := r.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	// One band per group row, padded like a GPU dispatch grid.
	bands := (h + GroupSize - 1) / GroupSize
	jobs := make(chan int)

	var wg sync.WaitGroup
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for band := range jobs {
				r.renderBand(img, rig, w, h, band*GroupSize)
			}
		}()
	}
	for band := 0; band < bands; band++ {
		jobs <- band
	}
	close(jobs)
	wg.Wait()
}

func (r *Renderer) renderBand(img *image.RGBA, rig *shading.LightRig, w, h, y0 int) {
	for py := y0; py < y0+GroupSize; py++ {
		for px := 0; px < w; px++ {
			if !shading.InBounds(px, py, w, h) {
				continue
			}
			c := shading.ShadeDithered(rig, px, py, w, h)
			i := img.PixOffset(px+img.Rect.Min.X, py+img.Rect.Min.Y)
			img.Pix[i+0] = storeUnorm8(c.X())
			img.Pix[i+1] = storeUnorm8(c.Y())
			img.Pix[i+2] = storeUnorm8(c.Z())
			img.Pix[i+3] = 0xff
		}
	}
}

// storeUnorm8 saturates and quantizes one channel, like a store to an
// rgba8unorm texture.
func storeUnorm8(v float32) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v*255 + 0.5)
}
