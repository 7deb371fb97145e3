package app

import (
	"errors"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	pkgerrors "github.com/agentstation/stigmerge/pkg/errors"
)

// envPrefix scopes stigmerge settings in the environment (STIGMERGE_CCI_LIST, ...).
const envPrefix = "STIGMERGE"

// Config holds the application configuration loaded from various sources
// including config files, environment variables, and .env files.
type Config struct {
	// Global flags
	Verbose bool
	Quiet   bool
	NoColor bool
	Format  string

	// Config file
	ConfigFile string

	// Merge configuration
	CCIList string // CCI list to use instead of the embedded copy
	Strict  bool   // default for --strict

	// Logging configuration
	LogLevel  string
	LogFormat string
	LogOutput string
}

// LoadConfig loads configuration from all sources in order of precedence:
// 1. Command-line flags (handled by cobra)
// 2. Environment variables
// 3. .env files
// 4. Config file (configFile, or .stigmerge.yaml in $HOME or the working directory)
// 5. Defaults
func LoadConfig(configFile string) (*Config, error) {
	// Load .env files first (before Viper env binding)
	loadEnvFiles()

	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))

	if configFile == "" {
		configFile = v.GetString("config")
	}

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, pkgerrors.WrapIO("read", configFile, err)
		}
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
		v.AddConfigPath(".")
		v.SetConfigType("yaml")
		v.SetConfigName(".stigmerge")

		var notFound viper.ConfigFileNotFoundError
		if err := v.ReadInConfig(); err != nil && !errors.As(err, &notFound) {
			return nil, pkgerrors.WrapIO("read", v.ConfigFileUsed(), err)
		}
	}

	config := &Config{
		Verbose: v.GetBool("verbose"),
		Quiet:   v.GetBool("quiet"),
		NoColor: v.GetBool("no-color") || os.Getenv("NO_COLOR") != "",
		Format:  v.GetString("format"),

		ConfigFile: v.ConfigFileUsed(),

		CCIList: v.GetString("cci_list"),
		Strict:  v.GetBool("strict"),

		// An empty level lets -v/-q decide (see determineLogLevel)
		LogLevel:  firstNonEmpty(v.GetString("log_level"), os.Getenv("LOG_LEVEL")),
		LogFormat: getEnvOrDefault("LOG_FORMAT", "auto"),
		LogOutput: getEnvOrDefault("LOG_OUTPUT", "stderr"),
	}

	return config, nil
}

// Reload re-reads configuration from path, keeping every value whose
// flag was set on the command line.
func (c *Config) Reload(path string, flags *pflag.FlagSet) error {
	fresh, err := LoadConfig(path)
	if err != nil {
		return err
	}

	changed := flags.Changed
	if !changed("verbose") {
		c.Verbose = fresh.Verbose
	}
	if !changed("quiet") {
		c.Quiet = fresh.Quiet
	}
	if !changed("no-color") {
		c.NoColor = fresh.NoColor
	}
	if !changed("format") {
		c.Format = fresh.Format
	}
	if !changed("cci-list") {
		c.CCIList = fresh.CCIList
	}
	if !changed("log-level") {
		c.LogLevel = fresh.LogLevel
	}
	c.Strict = fresh.Strict
	c.ConfigFile = fresh.ConfigFile
	return nil
}

// loadEnvFiles loads environment variables from .env files. godotenv never
// overrides a variable that is already set, so .env.local is read first.
func loadEnvFiles() {
	for _, envFile := range []string{".env.local", ".env"} {
		_ = godotenv.Load(envFile)
	}
}

// getEnvOrDefault returns the environment variable value or the default if not set.
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
