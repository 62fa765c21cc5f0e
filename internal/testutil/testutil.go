package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/firefly-engineering/cfgbeast/internal/bsp"
	"github.com/firefly-engineering/cfgbeast/internal/config"
	"github.com/firefly-engineering/cfgbeast/internal/store"
)

// TestEnv holds the test environment
type TestEnv struct {
	T *testing.T

	// TmpDir is the root of everything the environment creates.
	TmpDir string

	// DataDir is exported as CFGBEAST_DATA_DIR.
	DataDir string

	// InstallDir holds both marker files.
	InstallDir string

	// MapsDir holds the .bsp files and is the working directory.
	MapsDir string

	// EmptyRoot is exported as CFGBEAST_SCAN_ROOTS so scans find nothing.
	EmptyRoot string
}

// NewTestEnv lays out a fake installation with one .bsp per map name and
// changes into its maps folder. Environment and working directory are
// restored when the test ends.
func NewTestEnv(t *testing.T, maps ...string) *TestEnv {
	t.Helper()

	tmpDir := t.TempDir()
	env := &TestEnv{
		T:          t,
		TmpDir:     tmpDir,
		DataDir:    filepath.Join(tmpDir, "data"),
		InstallDir: filepath.Join(tmpDir, "svencoop"),
		MapsDir:    filepath.Join(tmpDir, "svencoop", "maps"),
		EmptyRoot:  filepath.Join(tmpDir, "empty"),
	}

	// Create directories
	for _, dir := range []string{env.DataDir, env.MapsDir, env.EmptyRoot} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			t.Fatalf("Failed to create directory %s: %v", dir, err)
		}
	}

	for _, name := range []string{config.DefaultMapSettings, config.SkillSettings} {
		data, err := LoadFixture(name)
		if err != nil {
			t.Fatalf("Failed to load fixture %s: %v", name, err)
		}
		env.WriteFile(filepath.Join(env.InstallDir, name), string(data))
	}

	for _, name := range maps {
		env.WriteFile(filepath.Join(env.MapsDir, name+bsp.Ext), "BSP")
	}

	t.Setenv("CFGBEAST_DATA_DIR", env.DataDir)
	t.Setenv("CFGBEAST_SCAN_ROOTS", env.EmptyRoot)
	t.Setenv("CFGBEAST_SCAN_DEPTH", "10")
	t.Chdir(env.MapsDir)

	return env
}

// WriteFile writes content to path, failing the test on error.
func (e *TestEnv) WriteFile(path, content string) {
	e.T.Helper()

	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		e.T.Fatalf("Failed to write %s: %v", path, err)
	}
}

// RecordPath returns where the location record lives for this environment.
func (e *TestEnv) RecordPath() string {
	return filepath.Join(e.DataDir, config.AppName, config.StoreFileName)
}

// SaveInstall records InstallDir so commands skip the scan.
func (e *TestEnv) SaveInstall() {
	e.T.Helper()
	e.SaveRecord(e.InstallDir)
}

// SaveRecord writes dir as the recorded installation.
func (e *TestEnv) SaveRecord(dir string) {
	e.T.Helper()

	if err := store.New(nil, e.RecordPath()).Write(store.NewRecord(dir)); err != nil {
		e.T.Fatalf("Failed to write record: %v", err)
	}
}

// ReadMapCfg returns the contents of a file in MapsDir.
func (e *TestEnv) ReadMapCfg(name string) string {
	e.T.Helper()

	data, err := os.ReadFile(filepath.Join(e.MapsDir, name))
	if err != nil {
		e.T.Fatalf("Failed to read %s: %v", name, err)
	}
	return string(data)
}

// MapCfgExists reports whether name exists in MapsDir.
func (e *TestEnv) MapCfgExists(name string) bool {
	_, err := os.Stat(filepath.Join(e.MapsDir, name))
	return err == nil
}
