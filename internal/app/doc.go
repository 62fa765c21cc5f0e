// Package app provides the application context for cfgbeast.
//
// This package wires settings, paths and the domain components together
// using the functional options pattern, enabling easy testing through
// dependency injection.
//
// # App Context
//
//	type App struct {
//	    Settings  *config.Settings     // Flag and environment overrides
//	    Paths     *config.Paths        // Per-user locations
//	    FS        system.FileSystem    // Filesystem abstraction
//	    Store     *store.Store         // Persisted install directory
//	    Locator   *locator.Locator     // Install directory resolution
//	    Generator *generator.Generator // Map config writer
//	}
//
// # Creating an App
//
//	// Production usage
//	a := app.New(app.WithSettings(settings))
//
//	// Testing with custom dependencies
//	a := app.New(
//	    app.WithFileSystem(system.NewMockFS()),
//	    app.WithPaths(testPaths),
//	)
//
// The installation directory is resolved lazily by Resolve and cached for
// the life of the App.
package app
