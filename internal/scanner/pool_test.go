package scanner

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// buildTree creates a small fixture with nested directories, files of
// different sizes, and a symlink.
func buildTree(t *testing.T) string {
	t.Helper()

	tmp := t.TempDir()
	if err := os.MkdirAll(filepath.Join(tmp, "a", "b"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.MkdirAll(filepath.Join(tmp, "c"), 0o755); err != nil {
		t.Fatal(err)
	}

	files := map[string]int{
		"file1.txt":                       5,
		filepath.Join("a", "file2.txt"):   4096,
		filepath.Join("a", "b", "f3.txt"): 70000,
		filepath.Join("c", "f4.txt"):      1,
	}
	for name, size := range files {
		if err := os.WriteFile(filepath.Join(tmp, name), bytes.Repeat([]byte("x"), size), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	if err := os.Symlink("file1.txt", filepath.Join(tmp, "link")); err != nil {
		t.Fatal(err)
	}

	return tmp
}

// sequentialBlocks measures a tree the slow way, with a plain recursive
// walk, as an independent oracle for the concurrent scanners.
func sequentialBlocks(t *testing.T, path string) int64 {
	t.Helper()

	blocks, isDir, err := probe(path)
	if err != nil {
		t.Fatalf("probe %s: %v", path, err)
	}
	if !isDir {
		return blocks
	}

	entries, err := os.ReadDir(path)
	if err != nil {
		t.Fatalf("read dir %s: %v", path, err)
	}
	for _, e := range entries {
		blocks += sequentialBlocks(t, filepath.Join(path, e.Name()))
	}
	return blocks
}

func scanOne(t *testing.T, sc Scanner, root string) int64 {
	t.Helper()

	totals, errored := sc.Scan([]string{root})
	if errored {
		t.Fatalf("unexpected scan errors for %s", root)
	}
	if len(totals) != 1 {
		t.Fatalf("expected 1 total, got %d", len(totals))
	}
	return totals[0].Blocks
}

func TestPoolMatchesSequentialWalk(t *testing.T) {
	tmp := buildTree(t)
	want := sequentialBlocks(t, tmp)

	got := scanOne(t, NewPool(4), tmp)
	if got != want {
		t.Errorf("expected %d blocks, got %d", want, got)
	}
}

func TestPoolWorkerCountInvariance(t *testing.T) {
	tmp := buildTree(t)

	base := scanOne(t, NewPool(1), tmp)
	for _, workers := range []int{2, 3, 8, 32} {
		got := scanOne(t, NewPool(workers), tmp)
		if got != base {
			t.Errorf("%d workers: expected %d blocks, got %d", workers, base, got)
		}
	}
}

func TestPoolClampsWorkers(t *testing.T) {
	tmp := buildTree(t)
	want := sequentialBlocks(t, tmp)

	for _, workers := range []int{0, -3} {
		got := scanOne(t, NewPool(workers), tmp)
		if got != want {
			t.Errorf("workers=%d: expected %d blocks, got %d", workers, want, got)
		}
	}
}

func TestPoolFileRoot(t *testing.T) {
	tmp := t.TempDir()
	file := filepath.Join(tmp, "plain.txt")
	if err := os.WriteFile(file, []byte("hello"), 0o644); err != nil {
		t.Fatal(err)
	}

	want, _, err := probe(file)
	if err != nil {
		t.Fatal(err)
	}

	p := NewPool(2)
	got := scanOne(t, p, file)
	if got != want {
		t.Errorf("expected %d blocks, got %d", want, got)
	}
	if p.Progress().Files != 1 {
		t.Errorf("expected 1 file counted, got %d", p.Progress().Files)
	}
}

func TestPoolEmptyDirRoot(t *testing.T) {
	tmp := t.TempDir()
	dir := filepath.Join(tmp, "empty")
	if err := os.Mkdir(dir, 0o755); err != nil {
		t.Fatal(err)
	}

	want, _, err := probe(dir)
	if err != nil {
		t.Fatal(err)
	}

	got := scanOne(t, NewPool(2), dir)
	if got != want {
		t.Errorf("expected the directory's own %d blocks, got %d", want, got)
	}
}

func TestPoolMultipleRoots(t *testing.T) {
	tmp := buildTree(t)
	file := filepath.Join(tmp, "file1.txt")
	dir := filepath.Join(tmp, "a")

	wantFile, _, err := probe(file)
	if err != nil {
		t.Fatal(err)
	}
	wantDir := sequentialBlocks(t, dir)

	totals, errored := NewPool(4).Scan([]string{file, dir})
	if errored {
		t.Fatal("unexpected scan errors")
	}
	if totals[0].Path != file || totals[0].Blocks != wantFile {
		t.Errorf("file root: expected %d blocks for %s, got %+v", wantFile, file, totals[0])
	}
	if totals[1].Path != dir || totals[1].Blocks != wantDir {
		t.Errorf("dir root: expected %d blocks for %s, got %+v", wantDir, dir, totals[1])
	}
}

func TestPoolMissingRoot(t *testing.T) {
	tmp := buildTree(t)
	missing := filepath.Join(tmp, "does-not-exist")
	want := sequentialBlocks(t, tmp)

	var errOut bytes.Buffer
	p := NewPool(2)
	p.SetErrorOutput(&errOut)

	totals, errored := p.Scan([]string{missing, tmp})
	if !errored {
		t.Error("expected the error flag to be set")
	}
	if totals[0].Blocks != 0 {
		t.Errorf("expected 0 blocks for missing root, got %d", totals[0].Blocks)
	}
	if totals[1].Blocks != want {
		t.Errorf("healthy root affected: expected %d blocks, got %d", want, totals[1].Blocks)
	}
	if !strings.Contains(errOut.String(), missing) {
		t.Errorf("expected diagnostic naming %q, got %q", missing, errOut.String())
	}
}

func TestPoolUnreadableSubdir(t *testing.T) {
	if os.Getuid() == 0 {
		t.Skip("running as root, permission checks do not apply")
	}

	tmp := t.TempDir()
	if err := os.MkdirAll(filepath.Join(tmp, "ok"), 0o755); err != nil {
		t.Fatal(err)
	}
	bad := filepath.Join(tmp, "bad")
	if err := os.Mkdir(bad, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(tmp, "ok", "f.txt"), []byte("readable"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(bad, "secret.txt"), bytes.Repeat([]byte("s"), 4096), 0o644); err != nil {
		t.Fatal(err)
	}

	// Best-effort total: everything except the unreadable directory's
	// contents. The directory's own blocks are still credited, because its
	// parent could lstat it.
	full := sequentialBlocks(t, tmp)
	badOwn, _, err := probe(bad)
	if err != nil {
		t.Fatal(err)
	}
	want := full - (sequentialBlocks(t, bad) - badOwn)

	if err := os.Chmod(bad, 0o000); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chmod(bad, 0o755) })

	other := buildTree(t)
	wantOther := sequentialBlocks(t, other)

	var errOut bytes.Buffer
	p := NewPool(4)
	p.SetErrorOutput(&errOut)

	totals, errored := p.Scan([]string{tmp, other})
	if !errored {
		t.Error("expected the error flag to be set")
	}
	if totals[0].Blocks != want {
		t.Errorf("expected best-effort total of %d blocks, got %d", want, totals[0].Blocks)
	}
	if totals[1].Blocks != wantOther {
		t.Errorf("unrelated root affected: expected %d blocks, got %d", wantOther, totals[1].Blocks)
	}
	if !strings.Contains(errOut.String(), bad) {
		t.Errorf("expected diagnostic naming %q, got %q", bad, errOut.String())
	}
}

// TestPoolNoLostWork checks that every directory discovered during a real
// scan is pushed and popped exactly once before termination.
func TestPoolNoLostWork(t *testing.T) {
	tmp := buildTree(t)

	p := NewPool(8)
	p.SetErrorOutput(io.Discard)
	if _, errored := p.Scan([]string{tmp}); errored {
		t.Fatal("unexpected scan errors")
	}

	pushed, popped := p.queue.stats()
	if pushed != popped {
		t.Errorf("lost work: %d pushed but %d popped", pushed, popped)
	}
	if pushed != p.Progress().Dirs {
		t.Errorf("expected one push per directory: %d pushes, %d dirs", pushed, p.Progress().Dirs)
	}
}

func TestPoolProgressCounts(t *testing.T) {
	tmp := buildTree(t)

	p := NewPool(4)
	if _, errored := p.Scan([]string{tmp}); errored {
		t.Fatal("unexpected scan errors")
	}

	snap := p.Progress()
	// 4 regular files + 1 symlink, root + a + a/b + c
	if snap.Files != 5 {
		t.Errorf("expected 5 files, got %d", snap.Files)
	}
	if snap.Dirs != 4 {
		t.Errorf("expected 4 dirs, got %d", snap.Dirs)
	}
	if snap.Blocks != sequentialBlocks(t, tmp) {
		t.Errorf("expected block counter to match the total")
	}
}
