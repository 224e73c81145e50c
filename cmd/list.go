package cmd

import (
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/jig-dev/jig/instance"
	"github.com/jig-dev/jig/recipe"
)

func listRecipes(cmd *cobra.Command, _ []string) error {
	renderRecipeList(cmd.OutOrStdout())
	return nil
}

func renderRecipeList(out io.Writer) {
	tw := table.NewWriter()
	tw.SetOutputMirror(out)
	tw.SetStyle(table.StyleLight)
	tw.AppendHeader(table.Row{"Recipe", "Description"})
	for _, rec := range recipe.Default().Recipes() {
		name := rec.Name
		if rec.ForwardsArgs {
			name += " [args...]"
			if len(rec.DefaultArgs) > 0 {
				name += " (default: " + strings.Join(rec.DefaultArgs, " ") + ")"
			}
		}
		tw.AppendRow(table.Row{name, rec.Summary})
	}
	tw.Render()
}

func init() {
	instance.AddCommandBuilders(func() *cobra.Command {
		return &cobra.Command{
			Use:   "list",
			Short: "List the available recipes",
			Args:  cobra.NoArgs,
			RunE:  listRecipes,
		}
	})
}
