// Package app provides the application context and dependency management
// for the stigmerge CLI: configuration, logging, the CCI catalog and the
// root command.
package app

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/rs/zerolog"

	"github.com/agentstation/stigmerge/pkg/cci"
	"github.com/agentstation/stigmerge/pkg/constants"
	"github.com/agentstation/stigmerge/pkg/errors"
)

// App represents the stigmerge application with all its dependencies.
type App struct {
	// Version information
	version string
	commit  string
	date    string
	builtBy string

	config *Config
	logger *zerolog.Logger

	// CCI catalog (lazy-initialized, loaded at most once)
	mu      sync.Mutex
	catalog *cci.Catalog
}

// New creates a new App instance with the given version information.
func New(version, commit, date, builtBy string, opts ...Option) (*App, error) {
	app := &App{
		version: version,
		commit:  commit,
		date:    date,
		builtBy: builtBy,
	}

	config, err := LoadConfig("")
	if err != nil {
		return nil, err
	}
	app.config = config

	logger := NewLogger(config)
	app.logger = &logger

	for _, opt := range opts {
		if err := opt(app); err != nil {
			return nil, err
		}
	}

	return app, nil
}

// Version returns the version information.
func (a *App) Version() string {
	return a.version
}

// Commit returns the git commit hash.
func (a *App) Commit() string {
	return a.commit
}

// Date returns the build date.
func (a *App) Date() string {
	return a.date
}

// BuiltBy returns the build system identifier.
func (a *App) BuiltBy() string {
	return a.builtBy
}

// Config returns the application configuration.
func (a *App) Config() *Config {
	return a.config
}

// Logger returns the application logger.
func (a *App) Logger() *zerolog.Logger {
	return a.logger
}

// OutputFormat returns the configured output format.
func (a *App) OutputFormat() string {
	return a.config.Format
}

// Strict returns the configured default for strict entry matching.
func (a *App) Strict() bool {
	return a.config.Strict
}

// CCIListPath returns the configured cci_list file, or the list
// "stigmerge cci update" maintains under $HOME/.stigmerge.
func (a *App) CCIListPath() string {
	if a.config.CCIList != "" {
		return a.config.CCIList
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".stigmerge", constants.CCIListFile)
}

// Catalog returns the CCI catalog, loading it on first use from the
// configured cci_list file, a list saved by "cci update", or the
// embedded list, in that order.
func (a *App) Catalog() (*cci.Catalog, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.catalog != nil {
		return a.catalog, nil
	}

	var (
		catalog *cci.Catalog
		err     error
		source  = cci.EmbeddedSource
	)
	path := a.CCIListPath()
	if a.config.CCIList == "" && !exists(path) {
		path = ""
	}
	if path != "" {
		source = path
		catalog, err = cci.LoadFile(path)
	} else {
		catalog, err = cci.Load()
	}
	if err != nil {
		return nil, err
	}

	a.logger.Debug().
		Str("source", source).
		Str("version", catalog.Metadata.Version).
		Int("items", catalog.Len()).
		Msg("Loaded CCI list")

	a.catalog = catalog
	return catalog, nil
}

func exists(path string) bool {
	if path == "" {
		return false
	}
	_, err := os.Stat(path)
	return err == nil
}

// Option is a functional option for configuring the App.
type Option func(*App) error

// WithConfig sets a custom configuration.
func WithConfig(config *Config) Option {
	return func(a *App) error {
		if config == nil {
			return errors.NewValidationError("config", nil, "cannot be nil")
		}
		a.config = config
		logger := NewLogger(config)
		a.logger = &logger
		return nil
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger *zerolog.Logger) Option {
	return func(a *App) error {
		a.logger = logger
		return nil
	}
}

// WithCatalog sets a preloaded CCI catalog (useful for testing).
func WithCatalog(catalog *cci.Catalog) Option {
	return func(a *App) error {
		a.catalog = catalog
		return nil
	}
}
