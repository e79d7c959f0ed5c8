// Package commands implements the CLI commands for xdg-dirs.
package commands

import (
	"log/slog"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/francisco-colaco/xdg-directories/internal/config"
	xdgerrors "github.com/francisco-colaco/xdg-directories/internal/errors"
	"github.com/francisco-colaco/xdg-directories/internal/logging"
	"github.com/francisco-colaco/xdg-directories/pkg/xdgdirs"
)

// version is set at build time via ldflags.
// Default to a development version for local builds.
const version = "0.1.0"

// cfgFile holds the value of the --config flag.
var cfgFile string

// appFlag holds the value of the -a/--app flag.
var appFlag string

// verbosity holds the count of -v flags.
var verbosity int

// quiet holds the value of the -q/--quiet flag.
var quiet bool

// logFormat holds the value of the --log-format flag.
var logFormat string

// logFile holds the path to the log file.
var logFile string

// loadedConfig and configLoadErr hold the result of config loading.
var (
	loadedConfig  *config.Config
	configLoadErr error
)

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "",
		"config file (default: <XDG_CONFIG_HOME>/xdg-dirs/config.yaml)")
	rootCmd.PersistentFlags().StringVarP(&appFlag, "app", "a", "",
		"application namespace appended to each base directory (default from config)")
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v",
		"increase verbosity level (e.g., -v, -vv)")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false,
		"suppress non-error output")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text",
		"log format: text, json")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "",
		"write logs to file in JSON format")

	rootCmd.Version = version
	rootCmd.SetVersionTemplate("xdg-dirs version {{.Version}}\n")

	// Silence errors and usage so main controls error output
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true
}

func initConfig() {
	config.Init()
	loadedConfig, configLoadErr = config.Load(cfgFile)
}

var rootCmd = &cobra.Command{
	Use:   "xdg-dirs",
	Short: "Resolve XDG base, application, and user directories",
	Long: `xdg-dirs resolves canonical filesystem locations for an application's
config, data, cache, and runtime files following the XDG Base Directory
Specification, plus the platform user directories (Desktop, Documents,
and so on) reported by the xdg-user-dir utility.

Environment variables take precedence, documented defaults fill the
gaps, and every directory can be overridden through the configuration
file or XDG_DIRS_* environment variables.`,
	Example: `  # Show the four base directories
  xdg-dirs base

  # Show emacs application directories as JSON
  xdg-dirs app --app emacs --output json

  # Locate a config file, creating parent directories
  xdg-dirs locate config init.el --create

  # Resolve the Documents directory
  xdg-dirs user documents`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setupLogging(cmd)
	},
	Run: func(cmd *cobra.Command, args []string) {
		_ = cmd.Help()
	},
}

// setupLogging configures the default logger based on verbosity flags.
func setupLogging(cmd *cobra.Command) error {
	if quiet && verbosity > 0 {
		return xdgerrors.NewUserError(nil, "cannot use --quiet and --verbose together")
	}

	var level slog.Level
	if quiet {
		level = slog.LevelError
	} else {
		level = logging.LevelFromVerbosity(verbosity)
	}

	opts := &slog.HandlerOptions{Level: level}

	var primaryHandler slog.Handler
	switch logging.Format(logFormat) {
	case logging.FormatJSON:
		primaryHandler = slog.NewJSONHandler(cmd.ErrOrStderr(), opts)
	default:
		primaryHandler = logging.NewHandler(cmd.ErrOrStderr(), opts)
	}

	handlers := []slog.Handler{primaryHandler}

	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return xdgerrors.NewUserError(err, "failed to open log file")
		}
		// File output uses JSON format
		handlers = append(handlers, slog.NewJSONHandler(f, opts))
	}

	var handler slog.Handler
	if len(handlers) > 1 {
		handler = logging.NewMultiHandler(handlers...)
	} else {
		handler = handlers[0]
	}

	slog.SetDefault(slog.New(handler))
	return nil
}

// resolver builds the path resolver from the loaded configuration, with
// the --app flag taking precedence over the configured namespace.
func resolver() (*xdgdirs.Resolver, error) {
	cfg, err := currentConfig()
	if err != nil {
		return nil, err
	}
	if appFlag != "" {
		patched := *cfg
		patched.App = appFlag
		cfg = &patched
	}
	r, err := cfg.BuildResolver()
	if err != nil {
		return nil, xdgerrors.NewUserError(err, "Check the app_dirs section of your config file")
	}
	return r, nil
}

// userDirs builds the user-directory view from the loaded configuration.
// When commandOnly is true the fallback provider is omitted, so a missing
// utility surfaces as an error instead of a well-known default.
func userDirs(commandOnly bool) (*xdgdirs.UserDirs, error) {
	cfg, err := currentConfig()
	if err != nil {
		return nil, err
	}
	if commandOnly {
		return xdgdirs.NewUserDirs(&xdgdirs.CommandProvider{
			Command: cfg.Lookup.Command,
			Timeout: cfg.Lookup.Timeout,
		}), nil
	}
	return xdgdirs.NewUserDirs(cfg.Provider()), nil
}

func currentConfig() (*config.Config, error) {
	if configLoadErr != nil {
		return nil, xdgerrors.NewUserError(configLoadErr, "Check your xdg-dirs config file")
	}
	if loadedConfig == nil {
		return nil, xdgerrors.NewUserError(errors.New("configuration not initialized"), "")
	}
	return loadedConfig, nil
}

// Execute runs the root command. A default logger is installed up front so
// anything emitted before flag parsing refines it still goes through our
// handler.
func Execute() error {
	slog.SetDefault(logging.Default())
	return rootCmd.Execute()
}
