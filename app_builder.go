package glowdots

import (
	"reflect"
)

// NewApp creates an empty App with the default stage order. Install behavior
// with UseModules, then call Run.
func NewApp() *App {
	app := &App{
		resources: make(map[reflect.Type]any),
		systems:   make(map[string][]systemFn),
	}
	for _, stage := range defaultStages() {
		app.stages = append(app.stages, stage)
		app.systems[stage.Name] = make([]systemFn, 0)
	}
	return app
}

// UseModules installs modules in order. Installation is immediate, so later
// modules can rely on resources added by earlier ones.
func (app *App) UseModules(modules ...Module) *App {
	cmd := &Commands{app: app}
	for _, module := range modules {
		module.Install(app, cmd)
		app.modules = append(app.modules, module)
	}
	return app
}
