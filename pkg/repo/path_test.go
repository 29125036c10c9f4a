package repo

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func bareHandle(t *testing.T) *Repository {
	t.Helper()
	dir := t.TempDir()
	r := newRepository(dir, buildOptions(nil))
	if err := os.Mkdir(r.GitDir, 0o755); err != nil {
		t.Fatal(err)
	}
	return r
}

func TestPath(t *testing.T) {
	r := bareHandle(t)
	if got, want := r.Path("objects"), filepath.Join(r.WorkTree, ".git", "objects"); got != want {
		t.Errorf("Path = %q, want %q", got, want)
	}
	if got, want := r.Path("refs", "heads", "master"), filepath.Join(r.WorkTree, ".git", "refs", "heads", "master"); got != want {
		t.Errorf("Path = %q, want %q", got, want)
	}
}

func TestDir(t *testing.T) {
	r := bareHandle(t)

	got, err := r.Dir(false, "missing")
	if err != nil || got != "" {
		t.Errorf("Dir(missing) = %q, %v; want \"\", nil", got, err)
	}

	got, err = r.Dir(true, "new_dir")
	if err != nil {
		t.Fatalf("Dir(mkdir): %v", err)
	}
	if got != r.Path("new_dir") {
		t.Errorf("Dir = %q, want %q", got, r.Path("new_dir"))
	}
	assertDir(t, got)

	got, err = r.Dir(false, "new_dir")
	if err != nil || got != r.Path("new_dir") {
		t.Errorf("Dir(existing) = %q, %v", got, err)
	}
}

func TestDir_FailsOnFile(t *testing.T) {
	r := bareHandle(t)
	if err := os.WriteFile(r.Path("not_a_dir"), []byte("test content"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := r.Dir(true, "not_a_dir"); !errors.Is(err, ErrNotADirectory) {
		t.Fatalf("Dir: err = %v, want ErrNotADirectory", err)
	}
}

func TestFile(t *testing.T) {
	r := bareHandle(t)

	got, err := r.File(false, "refs", "heads", "master")
	if err != nil || got != "" {
		t.Errorf("File without parent = %q, %v; want \"\", nil", got, err)
	}

	got, err = r.File(true, "new", "path", "file.txt")
	if err != nil {
		t.Fatalf("File(mkdir): %v", err)
	}
	if want := r.Path("new", "path", "file.txt"); got != want {
		t.Errorf("File = %q, want %q", got, want)
	}
	assertDir(t, filepath.Dir(got))
}
