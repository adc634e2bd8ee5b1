package glowdots

import (
	"reflect"
)

// RendererName identifies a concrete renderer module.
// Keep names aligned with ensureSingleRenderer tags.
type RendererName string

const (
	RendererWGPU     RendererName = "wgpu"
	RendererSoftware RendererName = "software"
)

// Renderer is an alias to Module for semantic clarity in APIs.
type Renderer interface {
	Module
}

// ensureWindowResource guarantees a single shared WindowState resource
// exists. If missing, it creates one with provided overrides or sensible
// defaults, and installs the window event pump.
func ensureWindowResource(app *App, width, height int, title string) {
	t := reflect.TypeOf((*WindowState)(nil)).Elem()
	if _, ok := app.resources[t]; ok {
		return
	}
	app.UseModules(*NewPlatformWindow(width, height, title))
	app.Logger().Infof("Created shared window (%dx%d)", width, height)
}

// UseRenderer installs exactly one renderer module, enforcing exclusivity
// via ensureSingleRenderer, and ensures a shared WindowState exists.
func (app *App) UseRenderer(name RendererName, mod Module) *App {
	return app.UseRendererWithWindow(name, mod, 0, 0, "")
}

// UseRendererWithWindow installs the renderer and ensures a shared window
// with explicit size/title.
func (app *App) UseRendererWithWindow(name RendererName, mod Module, width, height int, title string) *App {
	ensureSingleRenderer(app, string(name))
	ensureWindowResource(app, width, height, title)
	app.Logger().Infof("Renderer selected: %s", name)
	app.UseModules(mod)
	return app
}

// UseWGPU selects the compute-shader renderer and ensures a shared window
// with the given parameters.
func (app *App) UseWGPU(width, height int, title string, turbo bool) *App {
	return app.UseRendererWithWindow(RendererWGPU, WgpuRenderModule{
		Turbo: turbo,
	}, width, height, title)
}

// UseSoftware selects the CPU renderer and ensures a shared window with the
// given parameters.
func (app *App) UseSoftware(width, height int, title string) *App {
	return app.UseRendererWithWindow(RendererSoftware, SoftwareRenderModule{
		Overlay: true,
	}, width, height, title)
}
