package app

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/stigmerge/cmd/stigmerge/cmd/cci"
	"github.com/agentstation/stigmerge/cmd/stigmerge/cmd/merge"
)

// registerCommands registers all subcommands with the root command.
func (a *App) registerCommands(rootCmd *cobra.Command) {
	rootCmd.AddCommand(merge.NewMergeCommand(a))
	rootCmd.AddCommand(merge.NewCopyCommand(a))
	rootCmd.AddCommand(cci.NewCommand(a))
	rootCmd.AddCommand(a.NewVersionCommand())
}

// NewVersionCommand creates the version command.
func (a *App) NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			cmd.Printf("stigmerge %s\n", a.version)
			if a.config.Verbose {
				cmd.Printf("  commit:   %s\n", a.commit)
				cmd.Printf("  built:    %s\n", a.date)
				cmd.Printf("  built by: %s\n", a.builtBy)
			}
		},
	}
}
