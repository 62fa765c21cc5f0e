// Package testutil provides test fixtures and utilities.
//
// This package contains embedded game config fixtures and a helper that
// lays out a fake Sven Co-op installation for command tests.
//
// # Fixtures
//
// Fixtures are embedded using go:embed:
//
//	fixtures/default_map_settings.cfg
//	fixtures/skill.cfg
//
// # Test Environment
//
// NewTestEnv builds <tmp>/svencoop with both marker files and a maps
// folder, points CFGBEAST_DATA_DIR and CFGBEAST_SCAN_ROOTS into the temp
// dir and changes into the maps folder:
//
//	func TestCreate(t *testing.T) {
//	    env := testutil.NewTestEnv(t, "hl_c00", "svencoop1")
//	    env.SaveInstall()
//	    // run the command, then
//	    got := env.ReadMapCfg("hl_c00.cfg")
//	}
package testutil
