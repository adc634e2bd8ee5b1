package glowdots

import (
	"fmt"
	"image"

	"github.com/cogentcore/webgpu/wgpu"

	"github.com/gekko3d/glowdots/shading"
	"github.com/gekko3d/glowdots/softrender"
)

// Framebuffer is the CPU-side shading target of the software renderer.
// Other modules (capture, overlays) may read it after the PreRender stage.
type Framebuffer struct {
	Img *image.RGBA
}

type softRenderState struct {
	gpu *GpuState

	blitPipeline *wgpu.RenderPipeline
	sampler      *wgpu.Sampler

	targetTexture *wgpu.Texture
	targetView    *wgpu.TextureView
	blitBindGroup *wgpu.BindGroup

	renderer softrender.Renderer
	overlay  bool

	width, height int

	counter fpsCounter
}

// SoftwareRenderModule runs the glow kernel on the CPU into a Framebuffer
// resource, uploads it to a texture and blits it to the surface. Overlay
// stamps the FPS estimate onto the framebuffer.
type SoftwareRenderModule struct {
	Overlay bool
	Workers int
}

func (mod SoftwareRenderModule) Install(app *App, cmd *Commands) {
	var ws *WindowState
	for _, r := range app.resources {
		if w, ok := r.(*WindowState); ok {
			ws = w
		}
	}
	if ws == nil {
		panic("SoftwareRenderModule requires a window; install it via UseRenderer")
	}

	state := &softRenderState{
		gpu:      createGpuState(ws, wgpu.PresentModeFifo),
		renderer: softrender.Renderer{Workers: mod.Workers},
		overlay:  mod.Overlay,
	}
	state.blitPipeline = createBlitPipeline(state.gpu)
	state.sampler = createBlitSampler(state.gpu)

	fb := &Framebuffer{}
	state.setupTargets(fb, ws.WindowWidth, ws.WindowHeight)

	cmd.AddResources(state, fb)
	cmd.UseSystem(System(softRenderSystem).InStage(Render))
	app.Logger().Infof("Software renderer ready (%dx%d, workers=%d)", ws.WindowWidth, ws.WindowHeight, mod.Workers)
}

func (s *softRenderState) setupTargets(fb *Framebuffer, width, height int) {
	if s.targetTexture != nil {
		s.targetTexture.Release()
	}

	fb.Img = image.NewRGBA(image.Rect(0, 0, width, height))
	s.targetTexture, s.targetView = createTargetTexture(
		s.gpu, width, height,
		wgpu.TextureUsageTextureBinding|wgpu.TextureUsageCopyDst,
	)
	s.blitBindGroup = createBlitBindGroup(s.gpu, s.blitPipeline, s.targetView, s.sampler)
	s.width, s.height = width, height
}

func softRenderSystem(s *softRenderState, ws *WindowState, rig *shading.LightRig, fb *Framebuffer) {
	if ws.WindowWidth != s.width || ws.WindowHeight != s.height {
		s.gpu.resizeSurface(ws.WindowWidth, ws.WindowHeight)
		s.setupTargets(fb, ws.WindowWidth, ws.WindowHeight)
	}

	s.renderer.Render(fb.Img, rig)
	if s.overlay {
		softrender.DrawLabel(fb.Img, 10, 20, fmt.Sprintf("fps %.1f", s.counter.fps))
	}

	s.gpu.queue.WriteTexture(
		s.targetTexture.AsImageCopy(),
		fb.Img.Pix,
		&wgpu.TextureDataLayout{
			Offset:       0,
			BytesPerRow:  uint32(4 * s.width),
			RowsPerImage: uint32(s.height),
		},
		&wgpu.Extent3D{
			Width:              uint32(s.width),
			Height:             uint32(s.height),
			DepthOrArrayLayers: 1,
		},
	)

	nextTexture, err := s.gpu.surface.GetCurrentTexture()
	if err != nil {
		fmt.Printf("ERROR: GetCurrentTexture failed: %v\n", err)
		return
	}
	defer nextTexture.Release()

	view, err := nextTexture.CreateView(nil)
	if err != nil {
		fmt.Printf("ERROR: CreateView failed: %v\n", err)
		return
	}
	defer view.Release()

	encoder, err := s.gpu.device.CreateCommandEncoder(nil)
	if err != nil {
		fmt.Printf("ERROR: CreateCommandEncoder failed: %v\n", err)
		return
	}

	rPass := encoder.BeginRenderPass(&wgpu.RenderPassDescriptor{
		ColorAttachments: []wgpu.RenderPassColorAttachment{{
			View:       view,
			LoadOp:     wgpu.LoadOpClear,
			StoreOp:    wgpu.StoreOpStore,
			ClearValue: wgpu.Color{R: 0, G: 0, B: 0, A: 1},
		}},
	})
	rPass.SetPipeline(s.blitPipeline)
	rPass.SetBindGroup(0, s.blitBindGroup, nil)
	rPass.Draw(3, 1, 0, 0)
	if err := rPass.End(); err != nil {
		fmt.Printf("ERROR: Render pass End failed: %v\n", err)
	}

	cmdBuffer, err := encoder.Finish(nil)
	if err != nil {
		fmt.Printf("ERROR: Encoder Finish failed: %v\n", err)
		return
	}
	s.gpu.queue.Submit(cmdBuffer)
	s.gpu.surface.Present()

	s.counter.tick()
}
