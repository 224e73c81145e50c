package cmd

import (
	"github.com/spf13/cobra"

	"github.com/jig-dev/jig/instance"
	"github.com/jig-dev/jig/runfile"
)

func init() {
	instance.AddCommandBuilders(func() *cobra.Command {
		return &cobra.Command{
			Use:   "exec <file> [args...]",
			Short: "Run a standalone source file, compiling it first if needed",
			Args:  cobra.MinimumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return runfile.Exec(cmd.Context(), args[0], args[1:])
			},
		}
	})
}
