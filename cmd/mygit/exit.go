package main

import (
	"errors"

	"github.com/odvcencio/mygit/pkg/object"
	"github.com/odvcencio/mygit/pkg/repo"
	"github.com/spf13/cobra"
)

const (
	exitFailure            = 1
	exitUsage              = 2
	exitNotADirectory      = 3
	exitRepositoryExists   = 4
	exitRepositoryNotFound = 5
	exitUnknownObjectType  = 6
	exitCorruptObject      = 7
	exitObjectNotFound     = 8
	exitTypeNotImplemented = 9
	exitInvalidObjectID    = 10
)

// usageError marks bad flags or arguments.
type usageError struct {
	err error
}

func (e *usageError) Error() string { return e.err.Error() }
func (e *usageError) Unwrap() error { return e.err }

// usageArgs wraps a positional argument validator so its failures map to
// exitUsage.
func usageArgs(v cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := v(cmd, args); err != nil {
			return &usageError{err: err}
		}
		return nil
	}
}

// exitCode maps each error kind to a distinct process exit status.
func exitCode(err error) int {
	var ue *usageError
	switch {
	case err == nil:
		return 0
	case errors.As(err, &ue):
		return exitUsage
	case errors.Is(err, repo.ErrNotADirectory):
		return exitNotADirectory
	case errors.Is(err, repo.ErrRepositoryAlreadyExists):
		return exitRepositoryExists
	case errors.Is(err, repo.ErrRepositoryNotFound):
		return exitRepositoryNotFound
	case errors.Is(err, object.ErrUnknownObjectType):
		return exitUnknownObjectType
	case errors.Is(err, object.ErrCorruptObject):
		return exitCorruptObject
	case errors.Is(err, object.ErrObjectNotFound):
		return exitObjectNotFound
	case errors.Is(err, object.ErrObjectTypeNotImplemented):
		return exitTypeNotImplemented
	case errors.Is(err, object.ErrInvalidID):
		return exitInvalidObjectID
	default:
		return exitFailure
	}
}
