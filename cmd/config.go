package cmd

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/jig-dev/jig/config"
	"github.com/jig-dev/jig/instance"
)

func configCmd() *cobra.Command {
	cfg := &cobra.Command{
		Use:   "config",
		Short: "Inspect the user configuration",
	}
	cfg.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tw := table.NewWriter()
			tw.SetOutputMirror(cmd.OutOrStdout())
			tw.SetStyle(table.StyleLight)
			tw.AppendHeader(table.Row{"Key", "Value", "Source"})
			for _, e := range config.All() {
				src := "config file"
				if e.Default {
					src = "default"
				}
				tw.AppendRow(table.Row{e.Name, fmt.Sprintf("%v", e.Value), src})
			}
			tw.Render()
			return nil
		},
	})
	cfg.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Print the config file location",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), config.Path())
			return nil
		},
	})
	return cfg
}

func init() {
	instance.AddCommandBuilders(configCmd)
}
