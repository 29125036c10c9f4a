package main

import (
	"fmt"

	"github.com/odvcencio/mygit/pkg/object"
	"github.com/spf13/cobra"
)

func newCatFileCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:       "cat-file <type> <object>",
		Short:     "Provide content of repository objects",
		Args:      usageArgs(cobra.ExactArgs(2)),
		ValidArgs: []string{"blob", "commit", "tag", "tree"},
		RunE: func(cmd *cobra.Command, args []string) error {
			want, err := object.ParseType(args[0])
			if err != nil {
				return &usageError{err: err}
			}
			id, err := object.ParseID(args[1])
			if err != nil {
				return err
			}

			r, err := opts.findRepo()
			if err != nil {
				return err
			}
			obj, err := r.Store.Read(id)
			if err != nil {
				return err
			}
			if obj.Type() != want {
				return fmt.Errorf("cat-file: object %s is a %s, not a %s", id, obj.Type(), want)
			}

			_, err = cmd.OutOrStdout().Write(obj.Serialize())
			return err
		},
	}
}
