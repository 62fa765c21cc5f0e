package config

import (
	"fmt"
	"os"
	"path/filepath"

	securejoin "github.com/cyphar/filepath-securejoin"

	"github.com/firefly-engineering/cfgbeast/internal/errors"
	"github.com/firefly-engineering/cfgbeast/internal/logging"
)

const (
	// AppName names the per-user data folder and the location record.
	AppName = "CFGBeast"

	// StoreFileName is the location record inside the app data folder.
	StoreFileName = AppName + ".toml"

	// DefaultMapSettings is the marker file that identifies the game's content directory.
	DefaultMapSettings = "default_map_settings.cfg"

	// SkillSettings is the skill marker file, a sibling of DefaultMapSettings.
	SkillSettings = "skill.cfg"

	// DefaultScanDepth bounds the installation scan below each root.
	DefaultScanDepth = 10
)

// Paths holds the per-user locations cfgbeast writes to.
type Paths struct {
	// DataDir is the per-user application data base directory.
	DataDir string

	// AppDir is DataDir/CFGBeast.
	AppDir string

	// StorePath is the location record, AppDir/CFGBeast.toml.
	StorePath string
}

// NewPaths builds the path set rooted at dataDir.
func NewPaths(dataDir string) (*Paths, error) {
	appDir, err := securejoin.SecureJoin(dataDir, AppName)
	if err != nil {
		return nil, fmt.Errorf("invalid data directory %s: %w", dataDir, err)
	}

	storePath, err := securejoin.SecureJoin(appDir, StoreFileName)
	if err != nil {
		return nil, fmt.Errorf("invalid data directory %s: %w", dataDir, err)
	}

	return &Paths{
		DataDir:   dataDir,
		AppDir:    appDir,
		StorePath: storePath,
	}, nil
}

// DefaultPaths returns the path configuration for the given settings.
// An explicit data directory wins; otherwise the per-user location is
// resolved with ResolveDataDir, falling back to the working directory.
func DefaultPaths(settings *Settings) *Paths {
	dataDir := ""
	if settings != nil {
		dataDir = settings.DataDir
	}

	if dataDir == "" {
		dir, err := ResolveDataDir(os.Getenv, os.UserConfigDir, os.Getwd)
		if err != nil {
			logging.Warn("using working directory for app data", "dir", dir, "error", err)
		}
		dataDir = dir
	}

	paths, err := NewPaths(dataDir)
	if err != nil {
		logging.Debug("falling back to plain join for app data", "error", err)
		appDir := filepath.Join(dataDir, AppName)
		return &Paths{
			DataDir:   dataDir,
			AppDir:    appDir,
			StorePath: filepath.Join(appDir, StoreFileName),
		}
	}
	return paths
}

// ResolveDataDir picks the per-user application data directory:
// %LOCALAPPDATA%, then %APPDATA%, then the OS user config directory.
// When none is available it returns the working directory together with
// an EnvironmentError; the returned directory is usable either way.
func ResolveDataDir(getenv func(string) string, userConfigDir func() (string, error), getwd func() (string, error)) (string, error) {
	for _, key := range []string{"LOCALAPPDATA", "APPDATA"} {
		if dir := getenv(key); dir != "" {
			return dir, nil
		}
	}

	dir, cfgErr := userConfigDir()
	if cfgErr == nil && dir != "" {
		return dir, nil
	}

	wd, err := getwd()
	if err != nil {
		wd = "."
	}
	return wd, errors.EnvironmentError("no per-user data directory", cfgErr)
}
