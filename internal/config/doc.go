// Package config holds cfgbeast's constants, per-user paths and runtime settings.
//
// # Paths
//
// The location record lives at <data dir>/CFGBeast/CFGBeast.toml. The data
// dir is resolved in this order:
//
//	1. --data-dir flag or CFGBEAST_DATA_DIR
//	2. %LOCALAPPDATA%
//	3. %APPDATA%
//	4. os.UserConfigDir()
//	5. the working directory (reported as an EnvironmentError, not fatal)
//
// # Settings
//
// LoadSettings layers defaults, CFGBEAST_* environment variables and bound
// flags through viper:
//
//	CFGBEAST_DATA_DIR     per-user data base directory
//	CFGBEAST_SCAN_DEPTH   installation scan depth (default 10)
//	CFGBEAST_SCAN_ROOTS   comma separated scan roots
//
// # Marker Files
//
// DefaultMapSettings and SkillSettings name the two game files the cvar
// catalog parses and the locator searches for.
package config
