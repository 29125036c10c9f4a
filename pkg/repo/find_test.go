package repo

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestFind_FromSubdirectory(t *testing.T) {
	dir := t.TempDir()

	if _, err := Init(dir); err != nil {
		t.Fatalf("Init: %v", err)
	}

	sub := filepath.Join(dir, "a", "b", "c")
	if err := os.MkdirAll(sub, 0o755); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}

	r, err := Find(sub, true)
	if err != nil {
		t.Fatalf("Find(%q): %v", sub, err)
	}
	if r.WorkTree != dir {
		t.Errorf("WorkTree = %q, want %q", r.WorkTree, dir)
	}
	if r.GitDir != filepath.Join(dir, ".git") {
		t.Errorf("GitDir = %q, want %q", r.GitDir, filepath.Join(dir, ".git"))
	}
	if r.Config == nil || r.Config.Core.RepositoryFormatVersion != 0 {
		t.Errorf("Config = %+v, want loaded default config", r.Config)
	}
	if r.Store == nil {
		t.Error("Store is nil after Find")
	}
}

func TestFind_AtRoot(t *testing.T) {
	dir := t.TempDir()
	if _, err := Init(dir); err != nil {
		t.Fatalf("Init: %v", err)
	}
	r, err := Find(dir, true)
	if err != nil {
		t.Fatalf("Find: %v", err)
	}
	if r.WorkTree != dir {
		t.Errorf("WorkTree = %q, want %q", r.WorkTree, dir)
	}
}

func TestFind_NearestWins(t *testing.T) {
	outer := t.TempDir()
	if _, err := Init(outer); err != nil {
		t.Fatalf("Init outer: %v", err)
	}
	inner := filepath.Join(outer, "vendor", "inner")
	if _, err := Init(inner); err != nil {
		t.Fatalf("Init inner: %v", err)
	}
	sub := filepath.Join(inner, "pkg")
	if err := os.MkdirAll(sub, 0o755); err != nil {
		t.Fatal(err)
	}

	r, err := Find(sub, true)
	if err != nil {
		t.Fatalf("Find: %v", err)
	}
	if r.WorkTree != inner {
		t.Errorf("WorkTree = %q, want %q", r.WorkTree, inner)
	}
}

func TestFind_NoRepo(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "x", "y")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}

	_, err := Find(dir, true)
	if !errors.Is(err, ErrRepositoryNotFound) {
		t.Fatalf("Find required: err = %v, want ErrRepositoryNotFound", err)
	}

	r, err := Find(dir, false)
	if err != nil {
		t.Fatalf("Find optional: %v", err)
	}
	if r != nil {
		t.Fatalf("Find optional = %+v, want nil", r)
	}
}

func TestFind_IgnoresMetaFile(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, ".git"), []byte("not a dir"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Find(dir, true); !errors.Is(err, ErrRepositoryNotFound) {
		t.Fatalf("Find: err = %v, want ErrRepositoryNotFound", err)
	}
}

func TestFind_MissingConfig(t *testing.T) {
	dir := t.TempDir()
	if err := os.Mkdir(filepath.Join(dir, ".git"), 0o755); err != nil {
		t.Fatal(err)
	}
	_, err := Find(dir, true)
	if err == nil {
		t.Fatal("Find should fail when .git/config is missing")
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("err = %v, want wrapped os.ErrNotExist", err)
	}
}

func TestFind_RelativePath(t *testing.T) {
	dir := t.TempDir()
	if _, err := Init(dir); err != nil {
		t.Fatalf("Init: %v", err)
	}
	sub := filepath.Join(dir, "a")
	if err := os.Mkdir(sub, 0o755); err != nil {
		t.Fatal(err)
	}
	chdir(t, sub)

	r, err := Find(".", true)
	if err != nil {
		t.Fatalf("Find(.): %v", err)
	}
	if r.GitDir != filepath.Join(dir, ".git") {
		t.Errorf("GitDir = %q, want %q", r.GitDir, filepath.Join(dir, ".git"))
	}
}

func TestFind_GitStyleConfig(t *testing.T) {
	dir := t.TempDir()
	if _, err := Init(dir); err != nil {
		t.Fatalf("Init: %v", err)
	}

	gitConfig := "[core]\n" +
		"\trepositoryformatversion = 0\n" +
		"\tfilemode = true\n" +
		"\tbare = false\n" +
		"\tlogallrefupdates = true\n" +
		"[remote \"origin\"]\n" +
		"\turl = https://example.com/x.git\n" +
		"\tfetch = +refs/heads/*:refs/remotes/origin/*\n" +
		"[branch \"master\"]\n" +
		"\tremote = origin\n" +
		"\tmerge = refs/heads/master\n"
	if err := os.WriteFile(filepath.Join(dir, ".git", "config"), []byte(gitConfig), 0o644); err != nil {
		t.Fatal(err)
	}

	sub := filepath.Join(dir, "src")
	if err := os.Mkdir(sub, 0o755); err != nil {
		t.Fatal(err)
	}
	r, err := Find(sub, true)
	if err != nil {
		t.Fatalf("Find: %v", err)
	}
	if r.WorkTree != dir {
		t.Errorf("WorkTree = %q, want %q", r.WorkTree, dir)
	}
	if !r.Config.Core.FileMode || r.Config.Core.Bare || r.Config.Core.RepositoryFormatVersion != 0 {
		t.Errorf("Config.Core = %+v, want filemode=true bare=false version=0", r.Config.Core)
	}
}

// chdir mirrors testing.T.Chdir (Go 1.24+) for older toolchains: it changes
// the working directory for the duration of the test and restores it on cleanup.
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Setenv("PWD", abs)
	t.Cleanup(func() {
		if err := os.Chdir(old); err != nil {
			t.Fatalf("restoring working directory: %v", err)
		}
	})
}
