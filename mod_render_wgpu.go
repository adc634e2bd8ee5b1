package glowdots

import (
	"fmt"
	"unsafe"

	"github.com/cogentcore/webgpu/wgpu"

	"github.com/gekko3d/glowdots/shading"
)

// Uniform data is double buffered so a frame's light positions are not
// overwritten while the previous frame is still in flight.
const numFramesInFlight = 2

// lightRigUniform mirrors the WGSL LightRig layout: vec2 positions padded to
// vec4 stride, vec3 colors padded to vec4 stride, count padded to a 16-byte
// struct tail.
type lightRigUniform struct {
	Positions [shading.MaxLights][4]float32
	Colors    [shading.MaxLights][4]float32
	Count     uint32
	_         [3]uint32
}

func makeLightRigUniform(rig *shading.LightRig) lightRigUniform {
	var u lightRigUniform
	u.Count = uint32(rig.Count)
	for i := 0; i < rig.Count; i++ {
		u.Positions[i][0] = rig.Positions[i].X()
		u.Positions[i][1] = rig.Positions[i].Y()
		u.Colors[i][0] = rig.Colors[i].X()
		u.Colors[i][1] = rig.Colors[i].Y()
		u.Colors[i][2] = rig.Colors[i].Z()
	}
	return u
}

func (u *lightRigUniform) bytes() []byte {
	return unsafe.Slice((*byte)(unsafe.Pointer(u)), int(unsafe.Sizeof(*u)))
}

type wgpuFrameData struct {
	rigBuffer *wgpu.Buffer
	bindGroup *wgpu.BindGroup
}

type wgpuRenderState struct {
	gpu *GpuState

	glowPipeline *wgpu.ComputePipeline
	blitPipeline *wgpu.RenderPipeline
	sampler      *wgpu.Sampler

	targetTexture *wgpu.Texture
	targetView    *wgpu.TextureView
	blitBindGroup *wgpu.BindGroup

	frames     [numFramesInFlight]wgpuFrameData
	frameIndex int

	width, height int

	counter fpsCounter
}

// WgpuRenderModule renders with the glow compute shader: one invocation per
// pixel of an rgba8unorm storage texture, then a fullscreen blit to the
// surface. Turbo disables vsync.
type WgpuRenderModule struct {
	Turbo bool
}

func (mod WgpuRenderModule) Install(app *App, cmd *Commands) {
	var ws *WindowState
	for _, r := range app.resources {
		if w, ok := r.(*WindowState); ok {
			ws = w
		}
	}
	if ws == nil {
		panic("WgpuRenderModule requires a window; install it via UseRenderer")
	}

	presentMode := wgpu.PresentModeFifo
	if mod.Turbo {
		presentMode = wgpu.PresentModeImmediate
	}

	state := &wgpuRenderState{
		gpu: createGpuState(ws, presentMode),
	}
	state.glowPipeline = createGlowPipeline(state.gpu)
	state.blitPipeline = createBlitPipeline(state.gpu)
	state.sampler = createBlitSampler(state.gpu)

	for i := range state.frames {
		buffer, err := state.gpu.device.CreateBuffer(&wgpu.BufferDescriptor{
			Label: fmt.Sprintf("Light Rig %d", i),
			Size:  uint64(unsafe.Sizeof(lightRigUniform{})),
			Usage: wgpu.BufferUsageUniform | wgpu.BufferUsageCopyDst,
		})
		if err != nil {
			panic(err)
		}
		state.frames[i].rigBuffer = buffer
	}

	state.setupTargets(ws.WindowWidth, ws.WindowHeight)

	cmd.AddResources(state)
	cmd.UseSystem(System(wgpuRenderSystem).InStage(Render))
	app.Logger().Infof("WGPU renderer ready (%dx%d, turbo=%v)", ws.WindowWidth, ws.WindowHeight, mod.Turbo)
}

// setupTargets (re)creates the storage texture and every bind group that
// references its view. Called at install time and again on resize.
func (s *wgpuRenderState) setupTargets(width, height int) {
	if s.targetTexture != nil {
		s.targetTexture.Release()
	}

	s.targetTexture, s.targetView = createTargetTexture(
		s.gpu, width, height,
		wgpu.TextureUsageStorageBinding|wgpu.TextureUsageTextureBinding,
	)

	layout := s.glowPipeline.GetBindGroupLayout(0)
	defer layout.Release()

	for i := range s.frames {
		bindGroup, err := s.gpu.device.CreateBindGroup(&wgpu.BindGroupDescriptor{
			Layout: layout,
			Entries: []wgpu.BindGroupEntry{
				{Binding: 0, Buffer: s.frames[i].rigBuffer, Size: wgpu.WholeSize},
				{Binding: 1, TextureView: s.targetView},
			},
		})
		if err != nil {
			panic(err)
		}
		s.frames[i].bindGroup = bindGroup
	}

	s.blitBindGroup = createBlitBindGroup(s.gpu, s.blitPipeline, s.targetView, s.sampler)
	s.width, s.height = width, height
}

func wgpuRenderSystem(s *wgpuRenderState, ws *WindowState, rig *shading.LightRig) {
	if ws.WindowWidth != s.width || ws.WindowHeight != s.height {
		s.gpu.resizeSurface(ws.WindowWidth, ws.WindowHeight)
		s.setupTargets(ws.WindowWidth, ws.WindowHeight)
	}

	frame := &s.frames[s.frameIndex]
	uniform := makeLightRigUniform(rig)
	s.gpu.queue.WriteBuffer(frame.rigBuffer, 0, uniform.bytes())

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

	// Compute pass: one 8x8 workgroup per tile, grid padded up; the kernel
	// bounds-checks the padding.
	cPass := encoder.BeginComputePass(nil)
	cPass.SetPipeline(s.glowPipeline)
	cPass.SetBindGroup(0, frame.bindGroup, nil)
	wgX := (uint32(s.width) + 7) / 8
	wgY := (uint32(s.height) + 7) / 8
	cPass.DispatchWorkgroups(wgX, wgY, 1)
	if err := cPass.End(); err != nil {
		fmt.Printf("ERROR: Compute pass End failed: %v\n", err)
	}

	// Blit pass
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

	s.frameIndex = (s.frameIndex + 1) % numFramesInFlight
	if s.counter.tick() {
		fmt.Printf("\rfps %7.1f", s.counter.fps)
	}
}
