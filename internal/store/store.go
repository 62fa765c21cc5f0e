// Package store persists the resolved Sven Co-op installation directory
// between runs as a small TOML record.
package store

import (
	"bytes"
	"io/fs"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/firefly-engineering/cfgbeast/internal/errors"
	"github.com/firefly-engineering/cfgbeast/internal/logging"
	"github.com/firefly-engineering/cfgbeast/internal/system"
)

// Record is the persisted location record.
type Record struct {
	// InstallDir is the game's content directory, the one holding
	// default_map_settings.cfg. Nil means nothing has been resolved yet.
	InstallDir *string `toml:"install_dir,omitempty"`
}

// Dir returns the recorded installation directory, if any.
func (r *Record) Dir() (string, bool) {
	if r == nil || r.InstallDir == nil || *r.InstallDir == "" {
		return "", false
	}
	return *r.InstallDir, true
}

// NewRecord returns a record pointing at dir.
func NewRecord(dir string) *Record {
	return &Record{InstallDir: &dir}
}

// Store reads and writes the location record at a fixed path.
type Store struct {
	fs   system.FileSystem
	path string
}

// New creates a Store for the record at path.
func New(fsys system.FileSystem, path string) *Store {
	if fsys == nil {
		fsys = system.DefaultFS()
	}
	return &Store{fs: fsys, path: path}
}

// Path returns the location of the record file.
func (s *Store) Path() string {
	return s.path
}

// Read loads the record. A missing file yields an empty record; a file
// that cannot be decoded is a ParseError.
func (s *Store) Read() (*Record, error) {
	data, err := s.fs.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &Record{}, nil
		}
		return nil, errors.IOError("read", s.path, err)
	}

	var rec Record
	if _, err := toml.Decode(string(data), &rec); err != nil {
		return nil, errors.ParseError(s.path, err)
	}
	return &rec, nil
}

// Write persists rec atomically: it is encoded to <path>.tmp which is
// then renamed over the record.
func (s *Store) Write(rec *Record) error {
	if rec == nil {
		rec = &Record{}
	}

	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(rec); err != nil {
		return errors.Wrap(errors.ExitIO, "I/O error", "failed to encode location record", err)
	}

	if err := s.fs.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return errors.IOError("create directory for", s.path, err)
	}

	tmpPath := s.path + ".tmp"
	if err := s.fs.WriteFile(tmpPath, buf.Bytes(), 0o644); err != nil {
		return errors.IOError("write", tmpPath, err)
	}

	if err := s.fs.Rename(tmpPath, s.path); err != nil {
		_ = s.fs.Remove(tmpPath)
		return errors.IOError("rename", tmpPath, err)
	}

	logging.Debug("location record written", "path", s.path)
	return nil
}

// Clear removes the record. Clearing an absent record is not an error.
func (s *Store) Clear() error {
	if err := s.fs.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return errors.IOError("remove", s.path, err)
	}
	return nil
}
