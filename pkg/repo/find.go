package repo

import (
	"fmt"
	"os"
	"path/filepath"
)

// Find searches upward from path for a directory containing .git/ and opens
// the repository rooted there, loading its config. When the filesystem root
// is reached without a match, Find returns ErrRepositoryNotFound if required
// is set and (nil, nil) otherwise.
func Find(path string, required bool, opts ...Option) (*Repository, error) {
	o := buildOptions(opts)

	// Resolve to absolute path for consistent traversal.
	cur, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("find: abs path: %w", err)
	}
	start := cur

	for {
		gitDir := filepath.Join(cur, MetaDirName)
		info, err := os.Stat(gitDir)
		if err == nil && info.IsDir() {
			o.logger.Debug("found repository", "start", start, "worktree", cur)
			r := newRepository(cur, o)
			if err := r.ReloadConfig(); err != nil {
				return nil, fmt.Errorf("find: %w", err)
			}
			return r, nil
		}

		parent := filepath.Dir(cur)
		if parent == cur {
			// Reached filesystem root without finding .git/.
			if required {
				return nil, fmt.Errorf("find: %s: %w", start, ErrRepositoryNotFound)
			}
			return nil, nil
		}
		cur = parent
	}
}
