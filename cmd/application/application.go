// Package application provides the application interface for stigmerge commands.
//
// Commands accept this interface rather than the concrete App type so they
// can be exercised in tests with internal/cmd/application.Mock.
//
// Usage in Commands:
//
//	func NewCommand(app application.Application) *cobra.Command {
//	    return &cobra.Command{
//	        RunE: func(cmd *cobra.Command, args []string) error {
//	            catalog, err := app.Catalog()
//	            if err != nil {
//	                return err
//	            }
//	            // ... use catalog
//	            return nil
//	        },
//	    }
//	}
package application

import (
	"github.com/rs/zerolog"

	"github.com/agentstation/stigmerge/pkg/cci"
)

// Application provides what commands need from the application.
// The App struct from cmd/stigmerge/app implements this interface.
type Application interface {
	// Catalog returns the CCI list, loading it on first use. The list
	// comes from the configured cci_list file, a list saved by
	// "cci update", or the embedded copy.
	Catalog() (*cci.Catalog, error)

	// CCIListPath returns where "cci update" saves the downloaded list.
	CCIListPath() string

	// Logger returns the configured logger instance.
	Logger() *zerolog.Logger

	// OutputFormat returns the configured output format (table, json, yaml, wide).
	OutputFormat() string

	// Strict reports whether strict entry matching is configured as the default.
	Strict() bool

	// Version returns the application version string.
	Version() string

	// Commit returns the git commit hash.
	Commit() string

	// Date returns the build date.
	Date() string

	// BuiltBy returns the build system identifier.
	BuiltBy() string
}
