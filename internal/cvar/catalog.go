// Package cvar builds the list of known configuration variables offered to
// the user, read from the game's own default_map_settings.cfg and skill.cfg.
package cvar

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"path/filepath"
	"slices"
	"strings"

	"github.com/firefly-engineering/cfgbeast/internal/config"
	"github.com/firefly-engineering/cfgbeast/internal/logging"
	"github.com/firefly-engineering/cfgbeast/internal/system"
)

// FailureHeader is the first line of the list returned when a marker file
// cannot be loaded.
const FailureHeader = "! Failed to load cvars."

// Supplemental holds map keys and cvars the game accepts in a map config
// but that default_map_settings.cfg does not list.
var Supplemental = []string{
	"map_script",
	"globalmodellist",
	"globalsoundlist",
	"sentence_file",
	"materials_file",
	"forcepmodels",
	"as_command",
	"nomaptrans",
	// equipment
	"nomedkit",
	"nosuit",
	"item_longjump",
	// ammo
	"ammo_9mm",
	"ammo_buckshot",
	"ammo_gaussclip",
	"ammo_crossbow",
	"ammo_556",
	"ammo_rpg",
	// weapons
	"weapon_357",
	"weapon_eagle",
	"weapon_uzi",
	"weapon_uziakimbo",
	"weapon_mp5",
	"weapon_shotgun",
	"weapon_m16",
	"weapon_crossbow",
	"weapon_sniperrifle",
	"weapon_m249",
	"weapon_rpg",
	"weapon_minigun",
	"weapon_gauss",
	"weapon_egon",
	"weapon_displacer",
	"weapon_tripmine",
	"weapon_handgrenade",
	"weapon_satchel",
	"weapon_hivehand",
	"weapon_snark",
	"weapon_grapple",
	"weapon_sporelauncher",
	// mp_ cvars missing from the stock file
	"mp_allowmodelselection",
	"mp_telefrag 0",
	"mp_monsterpoints 1",
	"mp_teamlist 0",
	"mp_teamoverride 1",
	"mp_timeleft",
	"mp_timeleft_empty",
	"mp_survival_retries",
	"mp_survival_voteallow",
	"mp_classic_mode 0",
}

// maxLine bounds a single cvar line.
const maxLine = 1024 * 1024

// Parse reads one cvar per line. Lines are trimmed; blank lines and lines
// starting with "//" or "#" are dropped. The result is sorted and keeps
// duplicates. On a read error the lines read so far are returned with it.
func Parse(r io.Reader) ([]string, error) {
	var cvars []string

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLine)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "//") || strings.HasPrefix(line, "#") {
			continue
		}
		cvars = append(cvars, line)
	}

	slices.Sort(cvars)
	return cvars, scanner.Err()
}

// Catalog reads cvar lists from an installation directory.
type Catalog struct {
	// Dir is the game content directory holding the marker files.
	Dir string

	fs system.FileSystem
}

// NewCatalog creates a Catalog for the installation directory dir.
func NewCatalog(fsys system.FileSystem, dir string) *Catalog {
	if fsys == nil {
		fsys = system.DefaultFS()
	}
	return &Catalog{Dir: dir, fs: fsys}
}

// MarkerPath returns the path of default_map_settings.cfg.
func (c *Catalog) MarkerPath() string {
	return filepath.Join(c.Dir, config.DefaultMapSettings)
}

// SkillPath returns the path of skill.cfg, the sibling of the marker file.
func (c *Catalog) SkillPath() string {
	marker := c.MarkerPath()
	return filepath.Join(filepath.Dir(marker), config.SkillSettings)
}

// DefaultCvars returns the parsed marker file plus Supplemental, sorted.
// It never fails: a load error yields the two-line failure list.
func (c *Catalog) DefaultCvars() []string {
	cvars, err := c.load(c.MarkerPath())
	if err != nil {
		return failure(err)
	}

	cvars = append(cvars, Supplemental...)
	slices.Sort(cvars)
	return cvars
}

// SkillCvars returns the parsed skill.cfg, sorted. A load error yields the
// two-line failure list.
func (c *Catalog) SkillCvars() []string {
	cvars, err := c.load(c.SkillPath())
	if err != nil {
		return failure(err)
	}
	return cvars
}

// Cvars returns SkillCvars when skill is set, DefaultCvars otherwise.
func (c *Catalog) Cvars(skill bool) []string {
	if skill {
		return c.SkillCvars()
	}
	return c.DefaultCvars()
}

func (c *Catalog) load(path string) ([]string, error) {
	data, err := c.fs.ReadFile(path)
	if err != nil {
		logging.Debug("failed to load cvars", "path", path, "error", err)
		return nil, err
	}

	cvars, err := Parse(bytes.NewReader(data))
	if err != nil {
		logging.Warn("cvar file partly read", "path", path, "error", err)
	}
	return cvars, nil
}

func failure(err error) []string {
	return []string{FailureHeader, fmt.Sprintf("Reason: %v", err)}
}

// IsFailure reports whether cvars is the failure list returned when a
// marker file could not be loaded.
func IsFailure(cvars []string) bool {
	return len(cvars) == 2 && cvars[0] == FailureHeader && strings.HasPrefix(cvars[1], "Reason: ")
}
