package instance

import (
	"github.com/spf13/cobra"

	"github.com/jig-dev/jig/internal"
)

var commandBuilders []func() *cobra.Command

// AddCommandBuilders registers functions that will be called during app
// startup to add additional commands to the root command. Builders run after
// customization lockdown, so they may read final configuration.
func AddCommandBuilders(fns ...func() *cobra.Command) {
	internal.CheckCanCustomize()
	commandBuilders = append(commandBuilders, fns...)
}

// Commands builds the registered extra commands. Called from cmd.Root during
// app startup.
func Commands() []*cobra.Command {
	internal.CheckLockedDown()
	cmds := make([]*cobra.Command, 0, len(commandBuilders))
	for _, fn := range commandBuilders {
		cmds = append(cmds, fn())
	}
	return cmds
}
