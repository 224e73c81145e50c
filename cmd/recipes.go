package cmd

import (
	"github.com/spf13/cobra"

	"github.com/jig-dev/jig/recipe"
)

// recipeCommands surfaces every registered recipe as a subcommand.
func recipeCommands(reg *recipe.Registry) []*cobra.Command {
	recs := reg.Recipes()
	cmds := make([]*cobra.Command, 0, len(recs))
	for _, rec := range recs {
		cmds = append(cmds, recipeCommand(reg, rec))
	}
	return cmds
}

func recipeCommand(reg *recipe.Registry, rec *recipe.Recipe) *cobra.Command {
	c := &cobra.Command{
		Use:     rec.Name,
		Aliases: rec.Aliases,
		Short:   rec.Summary,
		RunE: func(cmd *cobra.Command, args []string) error {
			return reg.Run(cmd.Context(), rec.Name, args)
		},
	}
	if rec.ForwardsArgs {
		c.Use += " [args...]"
		c.Args = cobra.ArbitraryArgs
		// everything after the recipe name is forwarded verbatim, flags
		// included
		c.DisableFlagParsing = true
	} else {
		c.Args = cobra.NoArgs
	}
	return c
}
