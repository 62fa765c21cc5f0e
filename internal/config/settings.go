package config

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/firefly-engineering/cfgbeast/internal/errors"
)

// EnvPrefix prefixes every environment override, e.g. CFGBEAST_DATA_DIR.
const EnvPrefix = "CFGBEAST"

// Settings holds the runtime knobs that can come from flags or the environment.
type Settings struct {
	// DataDir overrides the per-user data base directory.
	DataDir string `mapstructure:"data_dir"`

	// ScanDepth bounds the installation scan below each root.
	ScanDepth int `mapstructure:"scan_depth"`

	// ScanRoots replaces the platform roots for the installation scan.
	ScanRoots []string `mapstructure:"scan_roots"`
}

// flagKeys maps pflag names to settings keys.
var flagKeys = map[string]string{
	"data-dir":   "data_dir",
	"scan-depth": "scan_depth",
	"scan-root":  "scan_roots",
}

// DefaultSettings returns settings with no overrides.
func DefaultSettings() *Settings {
	return &Settings{ScanDepth: DefaultScanDepth}
}

// LoadSettings resolves settings from defaults, CFGBEAST_* environment
// variables and any matching flags in flags (which may be nil).
// Changed flags take precedence over the environment.
func LoadSettings(flags *pflag.FlagSet) (*Settings, error) {
	v := viper.New()

	defaults := DefaultSettings()
	v.SetDefault("data_dir", defaults.DataDir)
	v.SetDefault("scan_depth", defaults.ScanDepth)
	v.SetDefault("scan_roots", []string{})

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if flags != nil {
		for name, key := range flagKeys {
			flag := flags.Lookup(name)
			if flag == nil {
				continue
			}
			if err := v.BindPFlag(key, flag); err != nil {
				return nil, fmt.Errorf("failed to bind flag %s: %w", name, err)
			}
		}
	}

	var settings Settings
	if err := v.Unmarshal(&settings); err != nil {
		return nil, fmt.Errorf("failed to parse settings: %w", err)
	}

	if err := settings.Validate(); err != nil {
		return nil, err
	}

	return &settings, nil
}

// Validate checks that the Settings are usable.
func (s *Settings) Validate() error {
	if s.ScanDepth < 1 {
		return errors.ValidationError(fmt.Sprintf("scan depth must be at least 1 (got %d)", s.ScanDepth))
	}
	return nil
}
