package app

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/agentstation/stigmerge/internal/cmd/output"
)

// Execute runs the stigmerge CLI application with the given arguments.
// This is the main entry point called from main.go.
func (a *App) Execute(ctx context.Context, args []string) error {
	rootCmd := a.createRootCommand()
	rootCmd.SetArgs(args)
	return rootCmd.ExecuteContext(ctx)
}

// createRootCommand creates the root cobra command with all subcommands.
func (a *App) createRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "stigmerge",
		Short:   "Merge DISA STIG Viewer checklists",
		Version: a.version,
		Long: `stigmerge copies review results between two copies of a DISA STIG Viewer
checklist (.ckl). Status, finding details and comments recorded in a source
checklist are propagated into a master or target checklist, and the result
is written to a new file next to it. Neither input is modified.

Propagation can be limited to a NIST SP 800-53 control family with --filter,
resolved through the DISA CCI list embedded in the binary.`,
		PersistentPreRunE: a.setupCommand,
		SilenceUsage:      true,
		SilenceErrors:     true,
	}

	rootCmd.AddGroup(&cobra.Group{
		ID:    "core",
		Title: "Core Commands:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "reference",
		Title: "Reference Commands:",
	})

	// Flag defaults come from the loaded configuration so that config
	// files and environment variables survive flag parsing.
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.config.ConfigFile, "config", a.config.ConfigFile, "config file (default is $HOME/.stigmerge.yaml)")
	flags.BoolVarP(&a.config.Verbose, "verbose", "v", a.config.Verbose, "verbose output (shortcut for --log-level=debug)")
	flags.BoolVarP(&a.config.Quiet, "quiet", "q", a.config.Quiet, "minimal output (shortcut for --log-level=warn)")
	flags.BoolVar(&a.config.NoColor, "no-color", a.config.NoColor, "disable colored output")
	flags.StringVar(&a.config.Format, "format", a.config.Format, "output format: table, json, yaml, wide")
	flags.StringVar(&a.config.LogLevel, "log-level", a.config.LogLevel, "log level: trace, debug, info, warn, error (overrides -v/-q)")
	flags.StringVar(&a.config.CCIList, "cci-list", a.config.CCIList, "CCI list XML to use instead of the embedded copy")

	rootCmd.SetVersionTemplate("stigmerge {{.Version}}\n")

	a.registerCommands(rootCmd)

	return rootCmd
}

// setupCommand is called before any command runs.
func (a *App) setupCommand(cmd *cobra.Command, _ []string) error {
	if cmd.Flags().Changed("config") {
		if err := a.config.Reload(a.config.ConfigFile, cmd.Flags()); err != nil {
			return err
		}
	}

	if _, err := output.ParseFormat(a.config.Format); err != nil {
		return err
	}

	// Reinitialize logger with the parsed flags
	logger := NewLogger(a.config)
	a.logger = &logger

	return nil
}

// ExitOnError is a helper that prints an error and exits with status 1.
// This is meant to be used in main.go for top-level error handling.
func ExitOnError(err error) {
	if err != nil {
		//nolint:errcheck // Ignoring write error since we're exiting anyway
		_, _ = os.Stderr.WriteString("Error: " + err.Error() + "\n")
		os.Exit(1)
	}
}
