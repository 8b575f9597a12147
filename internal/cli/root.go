package cli

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/pcarver/galleria/internal/config"
	"github.com/pcarver/galleria/pkg/version"
)

// isTerminal checks if the given file is a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// logger is the package-level logger for CLI operations.
var logger zerolog.Logger //nolint:gochecknoglobals // Required for zerolog context integration

// NewRootCmd creates the root Cobra command for the galleria CLI. It
// wires up configuration loading, logging, and the browse/list/config
// subcommands.
func NewRootCmd(ver string) *cobra.Command {
	var (
		cfg        *config.Config
		logCleanup func()
	)

	cmd := &cobra.Command{
		Use:     "galleria",
		Short:   "Browse the Art Institute of Chicago collection from the terminal",
		Long:    "galleria: a paginated gallery browser for the Art Institute of Chicago public API",
		Version: ver,
		Example: rootCmdExample,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			var err error
			cfg, err = loadConfig(cmd)
			if err != nil {
				return err
			}

			loggingCfg := cfg.Logging
			if debug, _ := cmd.Flags().GetBool("debug"); debug {
				loggingCfg.Level = "debug"
			}

			var baseLogger zerolog.Logger
			baseLogger, logCleanup, err = config.NewLogger(loggingCfg)
			if err != nil {
				return err
			}
			logger = baseLogger.With().Str("component", "cli").Logger()

			logger.Debug().
				Str("command", cmd.Name()).
				Str("version", ver).
				Bool("prerelease", version.IsPrerelease()).
				Msg("command started")
			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if logCleanup != nil {
				logCleanup()
			}
		},
	}

	cmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	cmd.PersistentFlags().String("api-url", "", "override the collections API base URL")
	cmd.PersistentFlags().String("config", "", "path to config file (default ~/.galleria/config.yaml)")

	cmd.AddCommand(
		newBrowseCmd(func() *config.Config { return cfg }),
		newListCmd(func() *config.Config { return cfg }),
		newConfigCmd(),
	)

	return cmd
}

// loadConfig resolves configuration from file, environment, and flags.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	configPath, _ := cmd.Flags().GetString("config")

	var (
		cfg *config.Config
		err error
	)
	if configPath != "" {
		cfg, err = config.LoadFrom(configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, err
	}

	if apiURL, _ := cmd.Flags().GetString("api-url"); apiURL != "" {
		cfg.API.BaseURL = apiURL
	}

	return cfg, nil
}

const rootCmdExample = `  # Browse the collection interactively
  galleria browse

  # Dump page 3, sorted by start year, newest first
  galleria list --page 3 --page-size 12 --sort date_start:desc

  # Same page addressed by row offset, as JSON
  galleria list --offset 24 --output json

  # Write the default config file
  galleria config init`
