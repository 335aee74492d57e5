// Package bridge implements the development bridge commands.
package bridge

import (
	"github.com/spf13/cobra"
	"github.com/wabridge/hookctl/cmd"
)

// Command is the bridge command.
var Command = &cobra.Command{
	Use:                "bridge",
	Short:              "Run a development bridge API",
	Long:               "Run a local implementation of the bridge webhook API backed by a database.",
	PersistentPreRunE:  cmd.InitBackendContext,
	PersistentPostRunE: cmd.CloseDBContext,
}

func init() {
	Command.AddCommand(
		serveCommand,
		migrateCommand,
	)
}
