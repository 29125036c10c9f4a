package main

import (
	"io"
	"log/slog"
	"path/filepath"

	"github.com/odvcencio/mygit/pkg/repo"
)

// globalOptions holds settings shared by all subcommands. It is built once
// in main and handed to each command constructor.
type globalOptions struct {
	workDir string
	verbose bool

	logger *slog.Logger
}

func (o *globalOptions) setup(stderr io.Writer) {
	level := slog.LevelWarn
	if o.verbose {
		level = slog.LevelDebug
	}
	o.logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
}

// resolve interprets path relative to the -C directory.
func (o *globalOptions) resolve(path string) string {
	if path == "" {
		path = "."
	}
	if o.workDir == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(o.workDir, path)
}

func (o *globalOptions) repoOptions() []repo.Option {
	if o.logger == nil {
		return nil
	}
	return []repo.Option{repo.WithLogger(o.logger)}
}

// findRepo locates the repository enclosing the working directory.
func (o *globalOptions) findRepo() (*repo.Repository, error) {
	return repo.Find(o.resolve("."), true, o.repoOptions()...)
}
