// Package bsp lists compiled map files and narrows them with a whitelist.
package bsp

import (
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/kballard/go-shellquote"

	"github.com/firefly-engineering/cfgbeast/internal/errors"
	"github.com/firefly-engineering/cfgbeast/internal/logging"
	"github.com/firefly-engineering/cfgbeast/internal/system"
)

// Ext is the map file extension, compared case-insensitively.
const Ext = ".bsp"

// Entry is a map shown for selection. Entries start selected.
type Entry struct {
	Path     string
	Selected bool
}

// Name returns the map name shown for the entry.
func (e Entry) Name() string {
	return Stem(e.Path)
}

// Dir returns dir when it exists, otherwise the working directory.
func Dir(fsys system.FileSystem, dir string) string {
	if dir != "" && fsys.Exists(dir) {
		return dir
	}

	wd, err := os.Getwd()
	if err != nil {
		logging.Debug("working directory unavailable", "error", err)
		return "."
	}
	if dir != "" {
		logging.Debug("map directory missing, using working directory", "dir", dir, "wd", wd)
	}
	return wd
}

// Load returns the full paths of the .bsp files directly inside dir,
// sorted by name. A missing dir falls back to the working directory; an
// unreadable one yields no maps.
func Load(fsys system.FileSystem, dir string) []string {
	if fsys == nil {
		fsys = system.DefaultFS()
	}
	dir = Dir(fsys, dir)

	entries, err := fsys.ReadDir(dir)
	if err != nil {
		logging.Debug("failed to read map directory", "dir", dir, "error", err)
		return nil
	}

	var bsps []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		// A bare ".bsp" is a dotfile, not a map.
		if strings.EqualFold(filepath.Ext(entry.Name()), Ext) && Stem(entry.Name()) != "" {
			bsps = append(bsps, filepath.Join(dir, entry.Name()))
		}
	}

	slices.Sort(bsps)
	return bsps
}

// Stem returns the file name of path without its extension.
func Stem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// FilterWhitelist keeps the BSPs whose stem matches a whitelist entry,
// ignoring case and any extension on the entry. An empty whitelist keeps
// everything.
func FilterWhitelist(bsps, whitelist []string) []string {
	if len(whitelist) == 0 {
		return bsps
	}

	stems := make([]string, 0, len(whitelist))
	for _, w := range whitelist {
		if w = strings.TrimSpace(w); w != "" {
			stems = append(stems, Stem(w))
		}
	}

	var kept []string
	for _, path := range bsps {
		stem := Stem(path)
		for _, w := range stems {
			if strings.EqualFold(w, stem) {
				kept = append(kept, path)
				break
			}
		}
	}
	return kept
}

// Entries wraps paths as selected entries.
func Entries(paths []string) []Entry {
	entries := make([]Entry, len(paths))
	for i, p := range paths {
		entries[i] = Entry{Path: p, Selected: true}
	}
	return entries
}

// Selected returns the file names of the selected entries, for use as a
// whitelist. FilterWhitelist strips the extension again, so names with
// dots such as sc_v1.5.bsp survive the round trip.
func Selected(entries []Entry) []string {
	var names []string
	for _, e := range entries {
		if e.Selected {
			names = append(names, filepath.Base(e.Path))
		}
	}
	return names
}

// ParseWhitelist splits a typed whitelist into map names using shell
// quoting rules, so names with spaces can be quoted.
func ParseWhitelist(s string) ([]string, error) {
	words, err := shellquote.Split(s)
	if err != nil {
		return nil, errors.ValidationError("invalid map list: " + err.Error())
	}
	return words, nil
}
