// Package locator finds the Sven Co-op content directory, the folder that
// holds default_map_settings.cfg, and remembers it between runs.
//
// Resolution order:
//
//	1. the persisted location record
//	2. the working directory, if it holds the marker file
//	3. a depth-bounded scan of every scan root
//
// A directory found by 2 or 3 is written back to the record.
package locator

import (
	"os"
	"path/filepath"

	"github.com/firefly-engineering/cfgbeast/internal/config"
	"github.com/firefly-engineering/cfgbeast/internal/errors"
	"github.com/firefly-engineering/cfgbeast/internal/logging"
	"github.com/firefly-engineering/cfgbeast/internal/store"
	"github.com/firefly-engineering/cfgbeast/internal/system"
)

// Source says how an installation directory was found.
type Source int

const (
	SourceStore Source = iota
	SourceWorkingDir
	SourceScan
)

func (s Source) String() string {
	switch s {
	case SourceStore:
		return "record"
	case SourceWorkingDir:
		return "working directory"
	case SourceScan:
		return "scan"
	default:
		return "unknown"
	}
}

// Resolution is a located installation directory.
type Resolution struct {
	Dir    string
	Source Source
}

// Locator resolves the installation directory.
type Locator struct {
	store    *store.Store
	fs       system.FileSystem
	roots    []string
	maxDepth int
	getwd    func() (string, error)
	onScan   func()
}

// Option configures a Locator.
type Option func(*Locator)

// WithRoots replaces the scan roots. An empty list keeps DefaultRoots.
func WithRoots(roots ...string) Option {
	return func(l *Locator) {
		if len(roots) > 0 {
			l.roots = roots
		}
	}
}

// WithMaxDepth bounds how far below each root the scan descends.
func WithMaxDepth(depth int) Option {
	return func(l *Locator) {
		if depth > 0 {
			l.maxDepth = depth
		}
	}
}

// WithFileSystem sets the filesystem used for the working directory check.
func WithFileSystem(fsys system.FileSystem) Option {
	return func(l *Locator) {
		l.fs = fsys
	}
}

// WithWorkingDir overrides how the working directory is obtained.
func WithWorkingDir(getwd func() (string, error)) Option {
	return func(l *Locator) {
		l.getwd = getwd
	}
}

// WithScanNotice registers fn to run once before a filesystem scan starts.
func WithScanNotice(fn func()) Option {
	return func(l *Locator) {
		l.onScan = fn
	}
}

// New creates a Locator backed by st.
func New(st *store.Store, opts ...Option) *Locator {
	l := &Locator{
		store:    st,
		fs:       system.DefaultFS(),
		maxDepth: config.DefaultScanDepth,
		getwd:    os.Getwd,
	}
	for _, opt := range opts {
		opt(l)
	}
	if len(l.roots) == 0 {
		l.roots = DefaultRoots()
	}
	return l
}

// Roots returns the scan roots in use.
func (l *Locator) Roots() []string {
	return l.roots
}

// Resolve returns the installation directory, consulting the record first.
// A malformed record is returned as a ParseError without scanning.
func (l *Locator) Resolve() (Resolution, error) {
	rec, err := l.store.Read()
	if err != nil {
		return Resolution{}, err
	}

	if dir, ok := rec.Dir(); ok {
		logging.Debug("install dir from record", "dir", dir)
		return Resolution{Dir: dir, Source: SourceStore}, nil
	}

	return l.Rescan()
}

// Rescan ignores the record, re-resolves the installation directory and
// overwrites the record with the result.
func (l *Locator) Rescan() (Resolution, error) {
	res, err := l.discover()
	if err != nil {
		return Resolution{}, err
	}

	if err := l.store.Write(store.NewRecord(res.Dir)); err != nil {
		logging.Warn("failed to save install dir", "path", l.store.Path(), "error", err)
	}
	return res, nil
}

func (l *Locator) discover() (Resolution, error) {
	if wd, err := l.getwd(); err == nil {
		if l.fs.Exists(filepath.Join(wd, config.DefaultMapSettings)) {
			logging.Debug("install dir is working directory", "dir", wd)
			return Resolution{Dir: wd, Source: SourceWorkingDir}, nil
		}
	} else {
		logging.Debug("working directory unavailable", "error", err)
	}

	if l.onScan != nil {
		l.onScan()
	}

	for _, root := range l.roots {
		logging.Debug("scanning", "root", root, "depth", l.maxDepth)
		if dir, ok := scanRoot(root, config.DefaultMapSettings, l.maxDepth); ok {
			logging.Info("found install dir", "dir", dir)
			return Resolution{Dir: dir, Source: SourceScan}, nil
		}
	}

	return Resolution{}, errors.ErrInstallNotFound
}
