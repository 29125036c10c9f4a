package repo

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

const defaultDescription = "Unnamed repository; edit this file 'description' to name the repository.\n"

// layoutDirs are the directories Init creates under .git/.
var layoutDirs = [][]string{
	{"branches"},
	{"objects"},
	{"refs", "tags"},
	{"refs", "heads"},
}

// Init creates a new repository at path. path must be absent (it is created
// with its parents) or an existing directory whose .git/ is absent or
// empty. It creates branches/, objects/, refs/tags/ and refs/heads/, then
// writes description, HEAD and config.
func Init(path string, opts ...Option) (*Repository, error) {
	o := buildOptions(opts)

	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("init: abs path: %w", err)
	}
	r := newRepository(abs, o)

	info, err := os.Stat(abs)
	switch {
	case err == nil:
		if !info.IsDir() {
			return nil, fmt.Errorf("init: %s: %w", abs, ErrNotADirectory)
		}
		if err := checkMetaDirEmpty(r.GitDir); err != nil {
			return nil, fmt.Errorf("init: %w", err)
		}
	case errors.Is(err, os.ErrNotExist):
		o.logger.Debug("creating work tree", "path", abs)
		if err := os.MkdirAll(abs, 0o755); err != nil {
			return nil, fmt.Errorf("init: mkdir %s: %w", abs, err)
		}
	default:
		return nil, fmt.Errorf("init: stat %s: %w", abs, err)
	}

	for _, d := range layoutDirs {
		if _, err := r.Dir(true, d...); err != nil {
			return nil, fmt.Errorf("init: %w", err)
		}
	}

	files := []struct {
		name string
		data string
	}{
		{"description", defaultDescription},
		{"HEAD", "ref: refs/heads/" + DefaultBranch + "\n"},
	}
	for _, f := range files {
		p, err := r.File(true, f.name)
		if err != nil {
			return nil, fmt.Errorf("init: %w", err)
		}
		if err := writeFileAtomic(r.GitDir, p, []byte(f.data)); err != nil {
			return nil, fmt.Errorf("init: write %s: %w", f.name, err)
		}
	}

	if err := r.WriteConfig(DefaultConfig()); err != nil {
		return nil, fmt.Errorf("init: %w", err)
	}

	o.logger.Debug("initialized repository", "gitdir", r.GitDir)
	return r, nil
}

// checkMetaDirEmpty fails unless gitDir is absent or an empty directory.
func checkMetaDirEmpty(gitDir string) error {
	entries, err := os.ReadDir(gitDir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		if info, statErr := os.Stat(gitDir); statErr == nil && !info.IsDir() {
			return fmt.Errorf("%s: %w", gitDir, ErrNotADirectory)
		}
		return fmt.Errorf("read %s: %w", gitDir, err)
	}
	if len(entries) > 0 {
		return fmt.Errorf("%s: %w", gitDir, ErrRepositoryAlreadyExists)
	}
	return nil
}
