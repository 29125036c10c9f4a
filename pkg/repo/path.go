package repo

import (
	"fmt"
	"os"
	"path/filepath"
)

// Path joins parts under the repository's .git/ directory.
func (r *Repository) Path(parts ...string) string {
	return filepath.Join(append([]string{r.GitDir}, parts...)...)
}

// Dir is Path for a directory. If the directory is absent it is created
// when mkdir is set; otherwise Dir returns "" with a nil error. A
// non-directory at the path fails with ErrNotADirectory.
func (r *Repository) Dir(mkdir bool, parts ...string) (string, error) {
	p := r.Path(parts...)
	info, err := os.Stat(p)
	if err == nil {
		if !info.IsDir() {
			return "", fmt.Errorf("%s: %w", p, ErrNotADirectory)
		}
		return p, nil
	}
	if !os.IsNotExist(err) {
		return "", fmt.Errorf("stat %s: %w", p, err)
	}
	if !mkdir {
		return "", nil
	}
	r.logger.Debug("creating directory", "path", p)
	if err := os.MkdirAll(p, 0o755); err != nil {
		return "", fmt.Errorf("mkdir %s: %w", p, err)
	}
	return p, nil
}

// File is Path for a file whose parent directory must exist, or is
// created when mkdir is set. It returns "" with a nil error when the parent
// is absent and mkdir is not set.
func (r *Repository) File(mkdir bool, parts ...string) (string, error) {
	if len(parts) == 0 {
		return "", fmt.Errorf("file: empty path")
	}
	dir, err := r.Dir(mkdir, parts[:len(parts)-1]...)
	if err != nil || dir == "" {
		return "", err
	}
	return r.Path(parts...), nil
}
