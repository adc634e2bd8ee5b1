package glowdots

import (
	"github.com/go-gl/glfw/v3.3/glfw"
)

const (
	KeyEscape int = iota
	KeyF
	KeyP
	KeySpace
	numKeys
)

var keyToGlfw = map[int]glfw.Key{
	KeyEscape: glfw.KeyEscape,
	KeyF:      glfw.KeyF,
	KeyP:      glfw.KeyP,
	KeySpace:  glfw.KeySpace,
}

type InputModule struct{}

type Input struct {
	Pressed [numKeys]bool

	JustPressed  [numKeys]bool
	JustReleased [numKeys]bool
}

func (mod InputModule) Install(app *App, cmd *Commands) {
	cmd.AddResources(&Input{})
	cmd.UseSystem(System(inputSystem).InStage(PreUpdate))
}

func inputSystem(s *WindowState, input *Input) {
	for key, glfwKey := range keyToGlfw {
		action := s.windowGlfw.GetKey(glfwKey)

		input.JustPressed[key] = false
		input.JustReleased[key] = false

		if glfw.Press == action {
			if !input.Pressed[key] {
				input.JustPressed[key] = true
			}
			input.Pressed[key] = true
		} else if glfw.Release == action {
			if input.Pressed[key] {
				input.JustReleased[key] = true
			}
			input.Pressed[key] = false
		}
	}
}

// ControlsModule maps the demo's keys: Escape quits, F toggles fullscreen.
type ControlsModule struct{}

func (mod ControlsModule) Install(app *App, cmd *Commands) {
	cmd.UseSystem(System(controlsSystem).InStage(Update))
}

func controlsSystem(input *Input, s *WindowState, cmd *Commands) {
	if input.JustPressed[KeyEscape] {
		cmd.Quit()
	}
	if input.JustPressed[KeyF] {
		s.ToggleFullscreen()
	}
}
