package testutil

import (
	"embed"

	"github.com/firefly-engineering/cfgbeast/internal/config"
)

//go:embed fixtures/*.cfg
var fixturesFS embed.FS

// LoadFixture loads a fixture file by name.
func LoadFixture(name string) ([]byte, error) {
	return fixturesFS.ReadFile("fixtures/" + name)
}

// DefaultMapSettings returns the default_map_settings.cfg fixture.
func DefaultMapSettings() ([]byte, error) {
	return LoadFixture(config.DefaultMapSettings)
}

// SkillSettings returns the skill.cfg fixture.
func SkillSettings() ([]byte, error) {
	return LoadFixture(config.SkillSettings)
}
