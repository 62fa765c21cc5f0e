package config

import (
	"fmt"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"

	"github.com/firefly-engineering/cfgbeast/internal/errors"
)

func TestNewPaths(t *testing.T) {
	dataDir := t.TempDir()

	paths, err := NewPaths(dataDir)
	if err != nil {
		t.Fatalf("NewPaths() error = %v", err)
	}

	if paths.DataDir != dataDir {
		t.Errorf("DataDir = %q, want %q", paths.DataDir, dataDir)
	}
	if want := filepath.Join(dataDir, "CFGBeast"); paths.AppDir != want {
		t.Errorf("AppDir = %q, want %q", paths.AppDir, want)
	}
	if want := filepath.Join(dataDir, "CFGBeast", "CFGBeast.toml"); paths.StorePath != want {
		t.Errorf("StorePath = %q, want %q", paths.StorePath, want)
	}
}

func TestDefaultPaths_ExplicitDataDir(t *testing.T) {
	dataDir := t.TempDir()

	paths := DefaultPaths(&Settings{DataDir: dataDir, ScanDepth: DefaultScanDepth})

	if paths.DataDir != dataDir {
		t.Errorf("DataDir = %q, want %q", paths.DataDir, dataDir)
	}
	if filepath.Base(paths.StorePath) != StoreFileName {
		t.Errorf("StorePath = %q, want basename %q", paths.StorePath, StoreFileName)
	}
}

func TestResolveDataDir(t *testing.T) {
	noConfig := func() (string, error) { return "", fmt.Errorf("$HOME is not defined") }
	config := func() (string, error) { return "/home/u/.config", nil }
	wd := func() (string, error) { return "/games/svencoop", nil }

	tests := []struct {
		name          string
		env           map[string]string
		userConfigDir func() (string, error)
		want          string
		wantErr       bool
	}{
		{
			name:          "local app data first",
			env:           map[string]string{"LOCALAPPDATA": `C:\Users\u\AppData\Local`, "APPDATA": `C:\Users\u\AppData\Roaming`},
			userConfigDir: config,
			want:          `C:\Users\u\AppData\Local`,
		},
		{
			name:          "roaming app data second",
			env:           map[string]string{"APPDATA": `C:\Users\u\AppData\Roaming`},
			userConfigDir: config,
			want:          `C:\Users\u\AppData\Roaming`,
		},
		{
			name:          "user config dir third",
			env:           map[string]string{},
			userConfigDir: config,
			want:          "/home/u/.config",
		},
		{
			name:          "working directory fallback",
			env:           map[string]string{},
			userConfigDir: noConfig,
			want:          "/games/svencoop",
			wantErr:       true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			getenv := func(key string) string { return tt.env[key] }

			got, err := ResolveDataDir(getenv, tt.userConfigDir, wd)
			if got != tt.want {
				t.Errorf("ResolveDataDir() = %q, want %q", got, tt.want)
			}
			if (err != nil) != tt.wantErr {
				t.Fatalf("ResolveDataDir() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && errors.GetExitCode(err) != errors.ExitEnvironment {
				t.Errorf("exit code = %d, want %d", errors.GetExitCode(err), errors.ExitEnvironment)
			}
		})
	}
}

func TestResolveDataDir_GetwdFails(t *testing.T) {
	getenv := func(string) string { return "" }
	noConfig := func() (string, error) { return "", fmt.Errorf("no home") }
	noWd := func() (string, error) { return "", fmt.Errorf("removed") }

	got, err := ResolveDataDir(getenv, noConfig, noWd)
	if got != "." {
		t.Errorf("ResolveDataDir() = %q, want %q", got, ".")
	}
	if err == nil {
		t.Error("expected environment error")
	}
}

func newSettingsFlags() *pflag.FlagSet {
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("data-dir", "", "")
	flags.Int("scan-depth", DefaultScanDepth, "")
	flags.StringSlice("scan-root", nil, "")
	return flags
}

func TestLoadSettings_Defaults(t *testing.T) {
	settings, err := LoadSettings(nil)
	if err != nil {
		t.Fatalf("LoadSettings() error = %v", err)
	}

	if settings.DataDir != "" {
		t.Errorf("DataDir = %q, want empty", settings.DataDir)
	}
	if settings.ScanDepth != DefaultScanDepth {
		t.Errorf("ScanDepth = %d, want %d", settings.ScanDepth, DefaultScanDepth)
	}
	if len(settings.ScanRoots) != 0 {
		t.Errorf("ScanRoots = %v, want none", settings.ScanRoots)
	}
}

func TestLoadSettings_Environment(t *testing.T) {
	t.Setenv("CFGBEAST_DATA_DIR", "/var/lib/cfgbeast")
	t.Setenv("CFGBEAST_SCAN_DEPTH", "4")
	t.Setenv("CFGBEAST_SCAN_ROOTS", "/games,/mnt/steam")

	settings, err := LoadSettings(newSettingsFlags())
	if err != nil {
		t.Fatalf("LoadSettings() error = %v", err)
	}

	if settings.DataDir != "/var/lib/cfgbeast" {
		t.Errorf("DataDir = %q, want %q", settings.DataDir, "/var/lib/cfgbeast")
	}
	if settings.ScanDepth != 4 {
		t.Errorf("ScanDepth = %d, want 4", settings.ScanDepth)
	}
	if len(settings.ScanRoots) != 2 || settings.ScanRoots[0] != "/games" || settings.ScanRoots[1] != "/mnt/steam" {
		t.Errorf("ScanRoots = %v, want [/games /mnt/steam]", settings.ScanRoots)
	}
}

func TestLoadSettings_FlagsOverrideEnvironment(t *testing.T) {
	t.Setenv("CFGBEAST_SCAN_DEPTH", "4")

	flags := newSettingsFlags()
	if err := flags.Parse([]string{"--scan-depth", "7", "--data-dir", "/tmp/data"}); err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	settings, err := LoadSettings(flags)
	if err != nil {
		t.Fatalf("LoadSettings() error = %v", err)
	}

	if settings.ScanDepth != 7 {
		t.Errorf("ScanDepth = %d, want 7", settings.ScanDepth)
	}
	if settings.DataDir != "/tmp/data" {
		t.Errorf("DataDir = %q, want %q", settings.DataDir, "/tmp/data")
	}
}

func TestLoadSettings_InvalidDepth(t *testing.T) {
	t.Setenv("CFGBEAST_SCAN_DEPTH", "0")

	_, err := LoadSettings(nil)
	if err == nil {
		t.Fatal("expected validation error")
	}
	if errors.GetExitCode(err) != errors.ExitValidation {
		t.Errorf("exit code = %d, want %d", errors.GetExitCode(err), errors.ExitValidation)
	}
}
