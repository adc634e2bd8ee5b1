package glowdots

import (
	"fmt"
	"image/png"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// CaptureModule saves the software renderer's framebuffer to a PNG when P is
// pressed. Requires the Framebuffer resource, so it only works alongside
// SoftwareRenderModule.
type CaptureModule struct {
	Dir string
}

func (mod CaptureModule) Install(app *App, cmd *Commands) {
	dir := mod.Dir
	if dir == "" {
		dir = "."
	}
	cmd.AddResources(&captureState{dir: dir})
	cmd.UseSystem(System(captureSystem).InStage(PostRender))
}

type captureState struct {
	dir string
}

func captureSystem(state *captureState, input *Input, fb *Framebuffer) {
	if !input.JustPressed[KeyP] || fb.Img == nil {
		return
	}

	name := filepath.Join(state.dir, fmt.Sprintf("glowdots-%s.png", uuid.NewString()))
	f, err := os.Create(name)
	if err != nil {
		fmt.Printf("ERROR: screenshot create failed: %v\n", err)
		return
	}
	defer f.Close()

	if err := png.Encode(f, fb.Img); err != nil {
		fmt.Printf("ERROR: screenshot encode failed: %v\n", err)
		return
	}
	fmt.Printf("Saved %s\n", name)
}
