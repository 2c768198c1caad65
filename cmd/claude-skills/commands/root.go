// Package commands implements the CLI commands for claude-skills.
package commands

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/ai-labs/claude-skills/cmd"
	"github.com/ai-labs/claude-skills/internal/config"
	"github.com/ai-labs/claude-skills/internal/errors"
	"github.com/ai-labs/claude-skills/internal/logging"
)

// verbosity holds the count of -v flags.
var verbosity int

// quiet holds the value of the -q/--quiet flag.
var quiet bool

// logFormat holds the value of the --log-format flag.
var logFormat string

// logFile holds the path to the log file.
var logFile string

// configFile holds the value of the --config flag.
var configFile string

// loadedConfig is the configuration read by initConfig.
var loadedConfig *config.Config

// configLoadErr holds any error that occurred during config loading.
var configLoadErr error

// logSink is the open --log-file, closed by Execute.
var logSink io.Closer

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v",
		"increase verbosity level (e.g., -v, -vv, -vvv)")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false,
		"suppress non-error output")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text",
		"log format: text, json")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "",
		"write logs to file in JSON format")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "",
		"config file (default: ./config.yaml, then ~/.config/claude-skills/config.yaml)")

	addInstallFlags(rootCmd)

	rootCmd.Version = cmd.Version
	rootCmd.SetVersionTemplate("claude-skills version {{.Version}}\n")

	// Silence errors and usage so main controls error output
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true
}

func initConfig() {
	config.Init()
	loadedConfig, configLoadErr = config.Load(configFile)
}

// currentConfig returns the loaded configuration, or the defaults when
// loading failed or has not happened.
func currentConfig() *config.Config {
	if loadedConfig == nil {
		return config.Default()
	}
	return loadedConfig
}

var rootCmd = &cobra.Command{
	Use:   "claude-skills",
	Short: "Install bundled Claude skills into the enclosing project",
	Long: `claude-skills copies the skills shipped in its dist/skills bundle into
the .claude/skills directory of the project it is installed in.

The project root is the nearest ancestor of the installer's directory that
holds a package.json and is not inside node_modules. Existing skill files are
overwritten; files the bundle does not contain are left alone.

Without a subcommand, claude-skills runs install.`,
	Example: `  # Install from the package's own bundle
  claude-skills

  # Install a locally built bundle into the current project
  claude-skills install --bundle ./dist/skills --from .

  # Generate missing package.json files for development skills
  claude-skills scaffold manifests

  See Also: claude-skills install, claude-skills scaffold, claude-skills config`,
	Args: cobra.NoArgs,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		if err := setupLogging(cmd); err != nil {
			return err
		}
		return checkConfig(cmd)
	},
	RunE: runInstall,
}

// setupLogging configures the default logger based on verbosity flags.
func setupLogging(cmd *cobra.Command) error {
	if quiet && verbosity > 0 {
		return errors.NewUserError(
			errors.New("--quiet and --verbose cannot be used together"),
			"Pass only one of -q or -v")
	}

	format, err := logging.ParseFormat(logFormat)
	if err != nil {
		return errors.NewUserError(err, "Use --log-format text or --log-format json")
	}

	var level slog.Level
	if quiet {
		level = slog.LevelError
	} else {
		v := verbosity

		// CLI flags take precedence, but if not set, check env var
		if v == 0 {
			v = logging.VerbosityFromEnv()
		}
		level = logging.LevelFromVerbosity(v)
	}

	var file io.Writer
	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return errors.NewUserError(errors.Wrap(err, "opening log file"), "Check the --log-file path")
		}
		closeLogSink()
		logSink = f
		file = f
	}

	logger := logging.New(logging.Config{
		Level:  level,
		Format: format,
		Output: cmd.ErrOrStderr(),
		File:   file,
	})
	slog.SetDefault(logger)
	logging.ConfigureColor(cmd.OutOrStdout())

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(logging.NewContext(ctx, logger))

	return nil
}

// checkConfig surfaces config load errors for commands that use the config.
func checkConfig(cmd *cobra.Command) error {
	switch cmd.Name() {
	case "help", "version", "gen-doc", "path":
		return nil
	}
	if configLoadErr != nil {
		return errors.NewConfigError(configLoadErr)
	}
	return nil
}

func closeLogSink() {
	if logSink != nil {
		_ = logSink.Close()
		logSink = nil
	}
}

// Execute runs the root command.
func Execute() error {
	defer closeLogSink()
	return rootCmd.Execute()
}
