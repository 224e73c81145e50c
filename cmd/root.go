package cmd

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jig-dev/jig/instance"
	"github.com/jig-dev/jig/recipe"
)

func Root() *cobra.Command {
	var longDesc strings.Builder
	fmt.Fprintf(&longDesc, "%s version %s\n", instance.AppName(), instance.Version())
	fmt.Fprint(&longDesc, "A task runner for day-to-day project workflows.\n")
	fmt.Fprint(&longDesc, "With no recipe named, lists the available recipes.")

	var verbose bool
	root := &cobra.Command{
		Use:           instance.AppName(),
		Short:         "Project task runner",
		Long:          longDesc.String(),
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       instance.Version(),
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				logLevel.Set(slog.LevelDebug)
			}
		},
		// the default recipe: list what's available
		RunE: listRecipes,
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"enable debug logging")
	root.AddCommand(recipeCommands(recipe.Default())...)
	root.AddCommand(instance.Commands()...)
	return root
}
