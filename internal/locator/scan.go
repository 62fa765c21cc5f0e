package locator

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/firefly-engineering/cfgbeast/internal/logging"
)

// trashDirs are skipped wherever they appear. Matched case-insensitively.
var trashDirs = []string{"$recycle.bin", "recycler", "recycled", ".trash", ".trashes"}

// virtualDirs are kernel filesystems that never hold game files.
var virtualDirs = map[string]bool{"/proc": true, "/sys": true, "/dev": true}

// DefaultRoots returns the platform scan roots: every existing drive
// letter on Windows, the filesystem root elsewhere.
func DefaultRoots() []string {
	if runtime.GOOS != "windows" {
		return []string{"/"}
	}

	var roots []string
	for letter := 'A'; letter <= 'Z'; letter++ {
		root := fmt.Sprintf(`%c:\`, letter)
		if _, err := os.Stat(root); err == nil {
			roots = append(roots, root)
		}
	}
	return roots
}

// isPruned reports whether a directory should not be descended into.
func isPruned(path, name string) bool {
	lower := strings.ToLower(name)
	for _, trash := range trashDirs {
		if lower == trash {
			return true
		}
	}
	if strings.HasPrefix(lower, ".trash-") {
		return true
	}
	return runtime.GOOS != "windows" && virtualDirs[path]
}

// depthOf counts the path components of path below root.
func depthOf(root, path string) int {
	rel, err := filepath.Rel(root, path)
	if err != nil || rel == "." {
		return 0
	}
	return strings.Count(rel, string(filepath.Separator)) + 1
}

// scanRoot walks root looking for a file named marker, at most maxDepth
// levels down. It returns the directory of the first match.
func scanRoot(root, marker string, maxDepth int) (string, bool) {
	var found string

	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			logging.Debug("skipping unreadable path", "path", path, "error", err)
			return nil
		}

		if d.IsDir() {
			if path == root {
				return nil
			}
			if isPruned(path, d.Name()) || depthOf(root, path) >= maxDepth {
				return fs.SkipDir
			}
			return nil
		}

		if strings.EqualFold(d.Name(), marker) {
			found = filepath.Dir(path)
			return fs.SkipAll
		}
		return nil
	})

	return found, found != ""
}
