package repo

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/odvcencio/mygit/pkg/object"
)

// MetaDirName is the metadata directory that marks a work area root.
const MetaDirName = ".git"

// DefaultBranch is the branch HEAD points at after Init.
const DefaultBranch = "master"

var (
	ErrNotADirectory           = errors.New("not a directory")
	ErrRepositoryAlreadyExists = errors.New("repository already exists")
	ErrRepositoryNotFound      = errors.New("not a repository (or any of the parent directories)")
)

// Repository represents an opened repository.
type Repository struct {
	WorkTree string        // working directory root
	GitDir   string        // .git/ directory
	Config   *Config       // contents of .git/config
	Store    *object.Store // content-addressed object store

	logger *slog.Logger
}

// Option configures Init and Find.
type Option func(*options)

type options struct {
	logger *slog.Logger
}

// WithLogger routes debug output about layout creation and discovery to l.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

func buildOptions(opts []Option) options {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return o
}

func newRepository(workTree string, o options) *Repository {
	gitDir := filepath.Join(workTree, MetaDirName)
	return &Repository{
		WorkTree: workTree,
		GitDir:   gitDir,
		Store:    object.NewStore(gitDir),
		logger:   o.logger,
	}
}

// Head returns the target of .git/HEAD: the ref path for a symbolic HEAD
// ("refs/heads/master" after Init), or the object ID when detached.
func (r *Repository) Head() (string, error) {
	data, err := os.ReadFile(r.Path("HEAD"))
	if err != nil {
		return "", fmt.Errorf("head: %w", err)
	}
	content := strings.TrimSpace(string(data))
	if target, ok := strings.CutPrefix(content, "ref: "); ok {
		return target, nil
	}
	if _, err := object.ParseID(content); err != nil {
		return "", fmt.Errorf("head: %s: %w", r.Path("HEAD"), err)
	}
	return content, nil
}
