package main

import (
	"fmt"
	"io"
	"os"

	"github.com/odvcencio/mygit/pkg/object"
	"github.com/spf13/cobra"
)

func newHashObjectCmd(opts *globalOptions) *cobra.Command {
	var (
		write   bool
		objType string
		stdin   bool
	)

	cmd := &cobra.Command{
		Use:   "hash-object [-w] [-t type] (--stdin | <file>)",
		Short: "Compute object ID and optionally store the object",
		Args: usageArgs(func(cmd *cobra.Command, args []string) error {
			if stdin {
				return cobra.NoArgs(cmd, args)
			}
			return cobra.ExactArgs(1)(cmd, args)
		}),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := object.ParseType(objType)
			if err != nil {
				return err
			}

			var data []byte
			if stdin {
				data, err = io.ReadAll(cmd.InOrStdin())
			} else {
				data, err = os.ReadFile(opts.resolve(args[0]))
			}
			if err != nil {
				return fmt.Errorf("hash-object: read input: %w", err)
			}

			obj, err := object.New(t, data)
			if err != nil {
				return fmt.Errorf("hash-object: %w", err)
			}

			id := object.HashOf(obj)
			if write {
				r, err := opts.findRepo()
				if err != nil {
					return err
				}
				if id, err = r.Store.Write(obj); err != nil {
					return err
				}
				opts.logger.Debug("stored object", "id", id, "type", t, "size", len(data))
			}

			fmt.Fprintln(cmd.OutOrStdout(), id)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&write, "write", "w", false, "write the object into the object store")
	cmd.Flags().StringVarP(&objType, "type", "t", string(object.TypeBlob), "object `type`")
	cmd.Flags().BoolVar(&stdin, "stdin", false, "read the object from standard input")
	return cmd
}
