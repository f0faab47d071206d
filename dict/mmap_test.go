package dict

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/libraz/suzume/grammar"
)

func TestAutoLoadPathsFindsDataDirEnv(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "core.dic"), []byte("x"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	t.Setenv("SUZUME_DATA_DIR", dir)

	core, user, found := AutoLoadPaths()
	if !found {
		t.Fatal("found = false, want true")
	}
	if core != filepath.Join(dir, "core.dic") {
		t.Errorf("core = %q, want %s", core, filepath.Join(dir, "core.dic"))
	}
	if user != "" {
		t.Errorf("user = %q, want empty (no user.dic present)", user)
	}
}

func TestAutoLoadPathsFindsUserDictAlongsideCore(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "core.dic"), []byte("x"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "user.dic"), []byte("y"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	t.Setenv("SUZUME_DATA_DIR", dir)

	_, user, found := AutoLoadPaths()
	if !found {
		t.Fatal("found = false, want true")
	}
	if user != filepath.Join(dir, "user.dic") {
		t.Errorf("user = %q, want %s", user, filepath.Join(dir, "user.dic"))
	}
}

func TestAutoLoadPathsNotFound(t *testing.T) {
	t.Setenv("SUZUME_DATA_DIR", t.TempDir())
	t.Setenv("HOME", t.TempDir())
	if _, _, found := AutoLoadPaths(); found {
		t.Error("found = true, want false (no core.dic anywhere in the chain)")
	}
}

func TestLoadFileMissingReturnsFileNotFound(t *testing.T) {
	_, _, err := LoadFile(filepath.Join(t.TempDir(), "missing.dic"))
	if err == nil {
		t.Fatal("expected an error for a missing file")
	}
	if grammar.CodeOf(err) != grammar.FileNotFound {
		t.Errorf("error code = %v, want FileNotFound", grammar.CodeOf(err))
	}
}
