// Package app provides the application context for cfgbeast.
// It allows dependency injection for testing.
package app

import (
	"github.com/firefly-engineering/cfgbeast/internal/config"
	"github.com/firefly-engineering/cfgbeast/internal/cvar"
	"github.com/firefly-engineering/cfgbeast/internal/generator"
	"github.com/firefly-engineering/cfgbeast/internal/locator"
	"github.com/firefly-engineering/cfgbeast/internal/logging"
	"github.com/firefly-engineering/cfgbeast/internal/store"
	"github.com/firefly-engineering/cfgbeast/internal/system"
)

// App holds the application dependencies
type App struct {
	// Settings holds flag and environment overrides
	Settings *config.Settings

	// Paths holds the per-user locations
	Paths *config.Paths

	// FS is the filesystem every component reads and writes through
	FS system.FileSystem

	// Store persists the installation directory
	Store *store.Store

	// Locator resolves the installation directory
	Locator *locator.Locator

	// Generator writes map configs
	Generator *generator.Generator

	scanNotice func()
	resolved   *locator.Resolution
}

// Option is a function that configures the App
type Option func(*App)

// WithSettings sets the runtime settings
func WithSettings(settings *config.Settings) Option {
	return func(a *App) {
		a.Settings = settings
	}
}

// WithPaths sets custom paths
func WithPaths(paths *config.Paths) Option {
	return func(a *App) {
		a.Paths = paths
	}
}

// WithFileSystem sets a custom filesystem
func WithFileSystem(fsys system.FileSystem) Option {
	return func(a *App) {
		a.FS = fsys
	}
}

// WithStore sets a custom location store
func WithStore(st *store.Store) Option {
	return func(a *App) {
		a.Store = st
	}
}

// WithLocator sets a custom locator
func WithLocator(l *locator.Locator) Option {
	return func(a *App) {
		a.Locator = l
	}
}

// WithScanNotice sets a callback run before a slow installation scan
func WithScanNotice(fn func()) Option {
	return func(a *App) {
		a.scanNotice = fn
	}
}

// New creates a new App with the given options.
// Components not provided are built from the settings and paths.
func New(opts ...Option) *App {
	app := &App{}

	for _, opt := range opts {
		opt(app)
	}

	if app.Settings == nil {
		app.Settings = config.DefaultSettings()
	}
	if app.FS == nil {
		app.FS = system.DefaultFS()
	}
	if app.Paths == nil {
		app.Paths = config.DefaultPaths(app.Settings)
	}
	if app.Store == nil {
		app.Store = store.New(app.FS, app.Paths.StorePath)
	}
	if app.Locator == nil {
		app.Locator = locator.New(app.Store,
			locator.WithFileSystem(app.FS),
			locator.WithRoots(app.Settings.ScanRoots...),
			locator.WithMaxDepth(app.Settings.ScanDepth),
			locator.WithScanNotice(app.scanNotice),
		)
	}
	if app.Generator == nil {
		app.Generator = generator.New(app.FS)
	}

	return app
}

// Resolve returns the installation directory, resolving it on first use.
func (a *App) Resolve() (locator.Resolution, error) {
	if a.resolved != nil {
		return *a.resolved, nil
	}

	res, err := a.Locator.Resolve()
	if err != nil {
		return locator.Resolution{}, err
	}

	logging.Debug("install dir resolved", "dir", res.Dir, "source", res.Source.String())
	a.resolved = &res
	return res, nil
}

// Rescan re-resolves the installation directory and replaces the record.
func (a *App) Rescan() (locator.Resolution, error) {
	res, err := a.Locator.Rescan()
	if err != nil {
		return locator.Resolution{}, err
	}
	a.resolved = &res
	return res, nil
}

// Forget clears the persisted installation directory.
func (a *App) Forget() error {
	a.resolved = nil
	return a.Store.Clear()
}

// Catalog returns the cvar catalog of the installation.
func (a *App) Catalog() (*cvar.Catalog, error) {
	res, err := a.Resolve()
	if err != nil {
		return nil, err
	}
	return cvar.NewCatalog(a.FS, res.Dir), nil
}

// Create runs a config write request.
func (a *App) Create(req generator.Request) (int, error) {
	return a.Generator.Create(req)
}

// Default is the default application instance
var Default = New()

// SetDefault sets the default application instance
func SetDefault(app *App) {
	Default = app
}

// ResetDefault resets to the default application instance
func ResetDefault() {
	Default = New()
}
