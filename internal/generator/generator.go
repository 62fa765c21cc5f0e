package generator

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/firefly-engineering/cfgbeast/internal/bsp"
	"github.com/firefly-engineering/cfgbeast/internal/errors"
	"github.com/firefly-engineering/cfgbeast/internal/logging"
	"github.com/firefly-engineering/cfgbeast/internal/system"
)

// SkillSuffix is appended to the map name for skill configs.
const SkillSuffix = "_skl"

// Failed is the count returned when a request is rejected before any file
// is touched.
const Failed = -1

// Request describes one batch of config writes.
type Request struct {
	// Cvars is the text written, appended or removed. Lines are separated by "\n".
	Cvars string

	Operation Operation

	// Skill targets <map>_skl.cfg instead of <map>.cfg.
	Skill bool

	// Dir holds the maps. A missing Dir falls back to the working directory.
	Dir string

	// Whitelist narrows the maps by name. Empty means every map.
	Whitelist []string
}

// Validate checks the request before any file is read.
func (r *Request) Validate() error {
	if r.Cvars == "" && r.Operation != Delete {
		return errors.ErrNoCvars
	}
	if _, ok := operationNames[r.Operation]; !ok {
		return errors.ValidationError(fmt.Sprintf("unknown operation %d", int(r.Operation)))
	}
	return nil
}

// TargetName returns the config file name for a map file.
func TargetName(bspPath string, skill bool) string {
	stem := bsp.Stem(bspPath)
	if skill {
		return stem + SkillSuffix + ".cfg"
	}
	return stem + ".cfg"
}

// Generator applies Requests to the map configs on a filesystem.
type Generator struct {
	fs system.FileSystem
}

// New creates a Generator. A nil fsys uses the OS filesystem.
func New(fsys system.FileSystem) *Generator {
	if fsys == nil {
		fsys = system.DefaultFS()
	}
	return &Generator{fs: fsys}
}

// Create applies req to the config of every matching map and returns how
// many configs were processed. A rejected request returns Failed with one
// of ErrNoCvars, ErrNoBSPs or ErrNoWhitelistMatch and touches nothing.
// Failures on individual configs are logged and not counted.
func (g *Generator) Create(req Request) (int, error) {
	if err := req.Validate(); err != nil {
		return Failed, err
	}

	all := bsp.Load(g.fs, req.Dir)
	if len(all) == 0 {
		return Failed, errors.ErrNoBSPs
	}

	bsps := bsp.FilterWhitelist(all, req.Whitelist)
	if len(bsps) == 0 {
		return Failed, errors.ErrNoWhitelistMatch
	}

	log := logging.With("operation", req.Operation.String(), "skill", req.Skill)
	count := 0
	for _, bspPath := range bsps {
		// TargetName is a single path element; symlinked configs are followed.
		target := filepath.Join(filepath.Dir(bspPath), TargetName(bspPath, req.Skill))

		done, err := g.apply(req, target)
		if err != nil {
			log.Warn("config not written", "path", target, "error", err)
			continue
		}
		if done {
			log.Debug("config processed", "path", target)
			count++
		}
	}

	return count, nil
}

// apply runs the operation on one target. It reports false without an
// error when there was nothing to do.
func (g *Generator) apply(req Request, target string) (bool, error) {
	content := []byte(req.Cvars + "\n")

	switch req.Operation {
	case Overwrite:
		if err := g.fs.WriteFile(target, content, 0o644); err != nil {
			return false, errors.IOError("write", target, err)
		}

	case Append:
		if err := g.fs.AppendFile(target, content, 0o644); err != nil {
			return false, errors.IOError("append to", target, err)
		}

	case Remove:
		if !g.fs.Exists(target) {
			return false, nil
		}
		data, err := g.fs.ReadFile(target)
		if err != nil {
			return false, errors.IOError("read", target, err)
		}
		body := StripCvars(string(data), req.Cvars)
		if err := g.fs.WriteFile(target, []byte(body), 0o644); err != nil {
			return false, errors.IOError("write", target, err)
		}

	case Delete:
		if !g.fs.Exists(target) {
			return false, nil
		}
		if err := g.fs.Remove(target); err != nil {
			return false, errors.IOError("delete", target, err)
		}
	}

	return true, nil
}

// StripCvars removes every occurrence of each non-empty line of cvars from
// body. Matching is plain substring replacement, so "mp_timeleft" also
// shortens "mp_timeleft_empty 1".
func StripCvars(body, cvars string) string {
	for _, line := range strings.Split(cvars, "\n") {
		line = strings.TrimSuffix(line, "\r")
		if line == "" {
			continue
		}
		body = strings.ReplaceAll(body, line, "")
	}
	return body
}

// Summary returns the title and message shown after a batch of count
// processed configs.
func Summary(count int) (title, message string) {
	if count <= 0 {
		return errors.ErrNothingWritten.Title,
			"No CFG files written. Run from a map folder with valid BSPs and try again."
	}
	return "Done", fmt.Sprintf("Processed %d .cfg file(s).", count)
}
