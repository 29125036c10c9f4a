package main

import (
	"github.com/odvcencio/mygit/pkg/repo"
	"github.com/spf13/cobra"
)

func newInitCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "init [directory]",
		Short: "Initialize a new, empty repository",
		Args:  usageArgs(cobra.MaximumNArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "."
			if len(args) > 0 {
				path = args[0]
			}

			r, err := repo.Init(opts.resolve(path), opts.repoOptions()...)
			if err != nil {
				return err
			}
			head, err := r.Head()
			if err != nil {
				return err
			}
			opts.logger.Debug("initialized empty repository", "gitdir", r.GitDir, "head", head)
			return nil
		},
	}
}
