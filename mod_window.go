package glowdots

import (
	"reflect"
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"
)

// WindowState is the single shared GLFW window. WindowWidth/WindowHeight
// track the framebuffer size and are refreshed every frame, so renderers can
// react to resizes.
type WindowState struct {
	windowGlfw   *glfw.Window
	WindowWidth  int
	WindowHeight int
	windowTitle  string

	// windowed geometry, restored when leaving fullscreen
	restoreX, restoreY int
	restoreW, restoreH int
}

// PlatformWindowModule ensures a single shared GLFW window (WindowState) is
// created and made available as a resource for any renderer or input module.
// Install is idempotent: if a WindowState resource already exists, it is
// reused.
type PlatformWindowModule struct {
	Width  int
	Height int
	Title  string
}

// NewPlatformWindow creates a module that provides a shared WindowState
// resource. If Width/Height are zero, sensible defaults are used.
func NewPlatformWindow(width, height int, title string) *PlatformWindowModule {
	if width <= 0 {
		width = 500
	}
	if height <= 0 {
		height = 500
	}
	if title == "" {
		title = "glowdots"
	}
	return &PlatformWindowModule{
		Width:  width,
		Height: height,
		Title:  title,
	}
}

func (m PlatformWindowModule) Install(app *App, cmd *Commands) {
	t := reflect.TypeOf((*WindowState)(nil)).Elem()
	if _, ok := app.resources[t]; ok {
		// Already created by another module; preserve the single-window invariant.
		return
	}

	ws := createWindowState(m.Width, m.Height, m.Title)
	app.addResources(ws)
	cmd.UseSystem(System(windowEventsSystem).InStage(Prelude))
}

func createWindowState(windowWidth int, windowHeight int, windowTitle string) *WindowState {
	runtime.LockOSThread()
	if err := glfw.Init(); err != nil {
		panic(err)
	}

	glfw.WindowHint(glfw.ClientAPI, glfw.NoAPI) // Important: tell GLFW we don't want OpenGL
	glfw.WindowHint(glfw.Resizable, glfw.True)

	win, err := glfw.CreateWindow(windowWidth, windowHeight, windowTitle, nil, nil)
	if err != nil {
		panic(err)
	}

	w, h := win.GetFramebufferSize()

	return &WindowState{
		windowGlfw:   win,
		WindowWidth:  max(w, 1),
		WindowHeight: max(h, 1),
		windowTitle:  windowTitle,
	}
}

func windowEventsSystem(s *WindowState, cmd *Commands) {
	glfw.PollEvents()

	if s.windowGlfw.ShouldClose() {
		cmd.Quit()
		return
	}

	w, h := s.windowGlfw.GetFramebufferSize()
	s.WindowWidth = max(w, 1)
	s.WindowHeight = max(h, 1)
}

// ToggleFullscreen switches between borderless fullscreen on the primary
// monitor and the previous windowed geometry.
func (s *WindowState) ToggleFullscreen() {
	if s.windowGlfw.GetMonitor() != nil {
		s.windowGlfw.SetMonitor(nil, s.restoreX, s.restoreY, s.restoreW, s.restoreH, 0)
		return
	}

	s.restoreX, s.restoreY = s.windowGlfw.GetPos()
	s.restoreW, s.restoreH = s.windowGlfw.GetSize()

	monitor := glfw.GetPrimaryMonitor()
	mode := monitor.GetVideoMode()
	s.windowGlfw.SetMonitor(monitor, 0, 0, mode.Width, mode.Height, mode.RefreshRate)
}
