package fsutil

import (
	"os"
	"path/filepath"
	"testing"
)

func TestEnsureDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b")

	if err := EnsureDir(dir); err != nil {
		t.Fatalf("EnsureDir failed: %v", err)
	}
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		t.Fatalf("expected directory at %s", dir)
	}

	// second call on an existing directory is a no-op
	if err := EnsureDir(dir); err != nil {
		t.Fatalf("EnsureDir on existing dir failed: %v", err)
	}
}

func TestFileExists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "file.txt")

	if FileExists(path) {
		t.Error("FileExists reported a missing file as present")
	}

	if err := os.WriteFile(path, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	if !FileExists(path) {
		t.Error("FileExists reported an existing file as missing")
	}
}

func TestRemove(t *testing.T) {
	path := filepath.Join(t.TempDir(), "clip.mp4")

	removed, err := Remove(path)
	if err != nil {
		t.Fatalf("Remove on missing file failed: %v", err)
	}
	if removed {
		t.Error("Remove reported removal of a missing file")
	}

	if err := os.WriteFile(path, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	removed, err = Remove(path)
	if err != nil {
		t.Fatalf("Remove failed: %v", err)
	}
	if !removed {
		t.Error("Remove did not report removal")
	}
	if FileExists(path) {
		t.Error("file still present after Remove")
	}
}
