package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	opts := &globalOptions{}
	root := newRootCmd(opts)
	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "mygit: %v\n", err)
		os.Exit(exitCode(err))
	}
}

// newRootCmd builds the command tree around opts. Every subcommand reads its
// shared settings from opts rather than from package state.
func newRootCmd(opts *globalOptions) *cobra.Command {
	root := &cobra.Command{
		Use:           "mygit",
		Short:         "Content tracker backed by a content-addressed object store",
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			opts.setup(cmd.ErrOrStderr())
			return nil
		},
	}
	root.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return &usageError{err: err}
	})

	root.PersistentFlags().StringVarP(&opts.workDir, "chdir", "C", "", "run as if started in `dir`")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "log repository operations to stderr")

	root.AddCommand(newVersionCmd())
	root.AddCommand(newInitCmd(opts))
	root.AddCommand(newHashObjectCmd(opts))
	root.AddCommand(newCatFileCmd(opts))
	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version",
		Args:  usageArgs(cobra.NoArgs),
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "mygit 0.1.0-dev")
		},
	}
}
