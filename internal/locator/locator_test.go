package locator

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/firefly-engineering/cfgbeast/internal/config"
	"github.com/firefly-engineering/cfgbeast/internal/errors"
	"github.com/firefly-engineering/cfgbeast/internal/store"
	"github.com/firefly-engineering/cfgbeast/internal/system"
)

const recordPath = "/data/CFGBeast/CFGBeast.toml"

// writeMarker creates the marker file under root/rel and returns its directory.
func writeMarker(t *testing.T, root, rel, name string) string {
	t.Helper()
	dir := filepath.Join(root, rel)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("MkdirAll() error = %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, name), []byte("mp_timelimit\n"), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	return dir
}

func fixedWd(dir string) func() (string, error) {
	return func() (string, error) { return dir, nil }
}

func recordedDir(t *testing.T, st *store.Store) string {
	t.Helper()
	rec, err := st.Read()
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	dir, _ := rec.Dir()
	return dir
}

func TestResolve_FromRecord(t *testing.T) {
	st := store.New(system.NewMockFS(), recordPath)
	if err := st.Write(store.NewRecord("/games/svencoop")); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	scanned := false
	l := New(st,
		WithRoots(t.TempDir()),
		WithWorkingDir(fixedWd(t.TempDir())),
		WithScanNotice(func() { scanned = true }),
	)

	res, err := l.Resolve()
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if res.Dir != "/games/svencoop" || res.Source != SourceStore {
		t.Errorf("Resolve() = %+v, want /games/svencoop from record", res)
	}
	if scanned {
		t.Error("a recorded directory should not trigger a scan")
	}
}

func TestResolve_WorkingDirectory(t *testing.T) {
	wd := t.TempDir()
	writeMarker(t, wd, "", config.DefaultMapSettings)
	st := store.New(system.NewMockFS(), recordPath)

	l := New(st, WithRoots(t.TempDir()), WithWorkingDir(fixedWd(wd)))

	res, err := l.Resolve()
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if res.Dir != wd || res.Source != SourceWorkingDir {
		t.Errorf("Resolve() = %+v, want %s from working directory", res, wd)
	}
	if got := recordedDir(t, st); got != wd {
		t.Errorf("recorded dir = %q, want %q", got, wd)
	}
}

func TestResolve_Scan(t *testing.T) {
	root := t.TempDir()
	want := writeMarker(t, root, filepath.Join("Steam", "steamapps", "common", "Sven Co-op", "svencoop"), config.DefaultMapSettings)
	st := store.New(system.NewMockFS(), recordPath)

	notices := 0
	l := New(st,
		WithRoots(root),
		WithWorkingDir(fixedWd(t.TempDir())),
		WithScanNotice(func() { notices++ }),
	)

	res, err := l.Resolve()
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if res.Dir != want || res.Source != SourceScan {
		t.Errorf("Resolve() = %+v, want %s from scan", res, want)
	}
	if notices != 1 {
		t.Errorf("scan notices = %d, want 1", notices)
	}
	if got := recordedDir(t, st); got != want {
		t.Errorf("recorded dir = %q, want %q", got, want)
	}

	// The second resolution comes from the record.
	res, err = l.Resolve()
	if err != nil {
		t.Fatalf("second Resolve() error = %v", err)
	}
	if res.Source != SourceStore || notices != 1 {
		t.Errorf("second Resolve() = %+v after %d scans, want record hit without scanning", res, notices)
	}
}

func TestResolve_ScanMatchesCaseInsensitively(t *testing.T) {
	root := t.TempDir()
	want := writeMarker(t, root, "svencoop", "DEFAULT_MAP_SETTINGS.CFG")

	l := New(store.New(system.NewMockFS(), recordPath), WithRoots(root), WithWorkingDir(fixedWd(t.TempDir())))

	res, err := l.Resolve()
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if res.Dir != want {
		t.Errorf("Dir = %q, want %q", res.Dir, want)
	}
}

func TestResolve_ScanRootsInOrder(t *testing.T) {
	empty := t.TempDir()
	second := t.TempDir()
	want := writeMarker(t, second, "svencoop", config.DefaultMapSettings)

	l := New(store.New(system.NewMockFS(), recordPath), WithRoots(empty, second), WithWorkingDir(fixedWd(t.TempDir())))

	res, err := l.Resolve()
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if res.Dir != want {
		t.Errorf("Dir = %q, want %q", res.Dir, want)
	}
}

func TestResolve_ScanDepth(t *testing.T) {
	tests := []struct {
		name     string
		rel      string
		maxDepth int
		found    bool
	}{
		{"marker at the bound", filepath.Join("a", "b"), 3, true},
		{"marker past the bound", filepath.Join("a", "b", "c"), 3, false},
		{"marker in root", "", 1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := t.TempDir()
			writeMarker(t, root, tt.rel, config.DefaultMapSettings)

			l := New(store.New(system.NewMockFS(), recordPath),
				WithRoots(root),
				WithMaxDepth(tt.maxDepth),
				WithWorkingDir(fixedWd(t.TempDir())),
			)

			_, err := l.Resolve()
			if tt.found && err != nil {
				t.Fatalf("Resolve() error = %v", err)
			}
			if !tt.found && !errors.Is(err, errors.ErrInstallNotFound) {
				t.Fatalf("Resolve() error = %v, want ErrInstallNotFound", err)
			}
		})
	}
}

func TestResolve_SkipsTrash(t *testing.T) {
	for _, trash := range []string{"$Recycle.Bin", "RECYCLER", ".Trash", ".Trash-1000"} {
		t.Run(trash, func(t *testing.T) {
			root := t.TempDir()
			writeMarker(t, root, filepath.Join(trash, "svencoop"), config.DefaultMapSettings)
			st := store.New(system.NewMockFS(), recordPath)

			l := New(st, WithRoots(root), WithWorkingDir(fixedWd(t.TempDir())))

			_, err := l.Resolve()
			if !errors.Is(err, errors.ErrInstallNotFound) {
				t.Fatalf("Resolve() error = %v, want ErrInstallNotFound", err)
			}
			if got := recordedDir(t, st); got != "" {
				t.Errorf("recorded dir = %q, want nothing", got)
			}
		})
	}
}

func TestResolve_NotFound(t *testing.T) {
	l := New(store.New(system.NewMockFS(), recordPath), WithRoots(t.TempDir()), WithWorkingDir(fixedWd(t.TempDir())))

	_, err := l.Resolve()
	if !errors.Is(err, errors.ErrInstallNotFound) {
		t.Fatalf("Resolve() error = %v, want ErrInstallNotFound", err)
	}
	if code := errors.GetExitCode(err); code != errors.ExitNotFound {
		t.Errorf("exit code = %d, want %d", code, errors.ExitNotFound)
	}
}

func TestResolve_MalformedRecord(t *testing.T) {
	fsys := system.NewMockFS()
	fsys.AddFile(recordPath, []byte("install_dir = = ="), 0o644)

	wd := t.TempDir()
	writeMarker(t, wd, "", config.DefaultMapSettings)

	scanned := false
	l := New(store.New(fsys, recordPath),
		WithRoots(t.TempDir()),
		WithWorkingDir(fixedWd(wd)),
		WithScanNotice(func() { scanned = true }),
	)

	_, err := l.Resolve()
	if code := errors.GetExitCode(err); code != errors.ExitParse {
		t.Fatalf("Resolve() error = %v, want parse error", err)
	}
	if scanned {
		t.Error("a malformed record should not trigger a scan")
	}
}

func TestResolve_WriteThroughFailureIsNotFatal(t *testing.T) {
	fsys := system.NewMockFS()
	fsys.RenameErr = fmt.Errorf("read-only filesystem")

	wd := t.TempDir()
	writeMarker(t, wd, "", config.DefaultMapSettings)

	l := New(store.New(fsys, recordPath), WithRoots(t.TempDir()), WithWorkingDir(fixedWd(wd)))

	res, err := l.Resolve()
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if res.Dir != wd {
		t.Errorf("Dir = %q, want %q", res.Dir, wd)
	}
}

func TestRescan_ReplacesRecord(t *testing.T) {
	st := store.New(system.NewMockFS(), recordPath)
	if err := st.Write(store.NewRecord("/stale")); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	wd := t.TempDir()
	writeMarker(t, wd, "", config.DefaultMapSettings)

	l := New(st, WithRoots(t.TempDir()), WithWorkingDir(fixedWd(wd)))

	res, err := l.Rescan()
	if err != nil {
		t.Fatalf("Rescan() error = %v", err)
	}
	if res.Dir != wd {
		t.Errorf("Dir = %q, want %q", res.Dir, wd)
	}
	if got := recordedDir(t, st); got != wd {
		t.Errorf("recorded dir = %q, want %q", got, wd)
	}
}

func TestRescan_NotFoundKeepsRecord(t *testing.T) {
	st := store.New(system.NewMockFS(), recordPath)
	if err := st.Write(store.NewRecord("/kept")); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	l := New(st, WithRoots(t.TempDir()), WithWorkingDir(fixedWd(t.TempDir())))

	if _, err := l.Rescan(); !errors.Is(err, errors.ErrInstallNotFound) {
		t.Fatalf("Rescan() error = %v, want ErrInstallNotFound", err)
	}
	if got := recordedDir(t, st); got != "/kept" {
		t.Errorf("recorded dir = %q, want %q", got, "/kept")
	}
}

func TestDepthOf(t *testing.T) {
	root := filepath.Join("/", "games")
	tests := []struct {
		path string
		want int
	}{
		{root, 0},
		{filepath.Join(root, "a"), 1},
		{filepath.Join(root, "a", "b", "c"), 3},
	}

	for _, tt := range tests {
		if got := depthOf(root, tt.path); got != tt.want {
			t.Errorf("depthOf(%q) = %d, want %d", tt.path, got, tt.want)
		}
	}
}

func TestSource_String(t *testing.T) {
	if SourceScan.String() != "scan" || SourceStore.String() != "record" || Source(9).String() != "unknown" {
		t.Error("unexpected Source names")
	}
}

func TestDefaultRoots(t *testing.T) {
	if len(DefaultRoots()) == 0 {
		t.Error("DefaultRoots() should return at least one root")
	}
}
