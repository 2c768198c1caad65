package commands

import (
	"fmt"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ai-labs/claude-skills/internal/config"
	"github.com/ai-labs/claude-skills/internal/errors"
	"github.com/ai-labs/claude-skills/internal/paths"
	"github.com/ai-labs/claude-skills/pkg/fileutil"
)

var (
	configFormat string
	configForce  bool
)

func init() {
	configShowCmd.Flags().StringVarP(&configFormat, "format", "f", "yaml", "output format: yaml, json, toml")
	configInitCmd.Flags().StringVarP(&configFormat, "format", "f", "yaml", "file format: yaml, json, toml")
	configInitCmd.Flags().BoolVar(&configForce, "force", false, "overwrite an existing config file")

	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configInitCmd)
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect claude-skills configuration",
	Long: `Inspect the effective claude-skills configuration.

Values come from, in increasing precedence: built-in defaults, config.yaml in
the working directory or ~/.config/claude-skills, and CLAUDE_SKILLS_* environment
variables. Command-line flags override all of them.

Without a subcommand, shows the effective configuration.`,
	Example: `  # Show the effective configuration
  claude-skills config

  # Get a single value
  claude-skills config get scaffold.scope

See Also: claude-skills install, claude-skills scaffold`,
	RunE: runConfigShow,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	Long:  `Print the effective configuration as YAML, JSON or TOML.`,
	Example: `  claude-skills config show
  claude-skills config show --format toml`,
	Args: cobra.NoArgs,
	RunE: runConfigShow,
}

var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Get a configuration value",
	Long: `Get a single configuration value by key.

Supports dot notation for nested keys, e.g. scaffold.scope.`,
	Example: `  claude-skills config get exclude_match
  claude-skills config get scaffold.author`,
	Args: cobra.ExactArgs(1),
	RunE: runConfigGet,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file in use",
	Long: `Print the config file that was read, or the default location if none
was found.`,
	Args: cobra.NoArgs,
	RunE: runConfigPath,
}

var configInitCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Write the default configuration to a file",
	Long: `Write the built-in defaults to a config file.

Without [path], writes to ~/.config/claude-skills/config.<format>. An existing
file is left untouched unless --force is given.`,
	Example: `  claude-skills config init
  claude-skills config init ./config.toml --format toml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runConfigInit,
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	data, err := renderConfig(currentConfig(), configFormat)
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(data)
	return errors.Wrap(err, "writing config")
}

func runConfigGet(cmd *cobra.Command, args []string) error {
	key := args[0]
	if !viper.IsSet(key) {
		return errors.NewUserError(
			errors.Newf("unknown config key %q", key),
			"Run: claude-skills config show")
	}
	fmt.Fprintln(cmd.OutOrStdout(), viper.GetString(key))
	return nil
}

func runConfigPath(cmd *cobra.Command, _ []string) error {
	path := viper.ConfigFileUsed()
	if path == "" {
		path = config.DefaultConfigPath()
	}
	fmt.Fprintln(cmd.OutOrStdout(), path)
	return nil
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	data, err := renderConfig(config.Default(), configFormat)
	if err != nil {
		return err
	}

	path := filepath.Join(config.Dir(), config.FileName+"."+configFormat)
	if len(args) == 1 {
		path = args[0]
	}
	if err := paths.EnsureDir(filepath.Dir(path), paths.DefaultDirPerm); err != nil {
		return errors.NewSystemError(err, "")
	}

	if configForce {
		err = fileutil.AtomicWriteFile(path, data, 0o644)
	} else {
		err = fileutil.AtomicCreateFile(path, data, 0o644)
	}
	if errors.Is(err, fileutil.ErrExists) {
		return errors.NewUserError(
			errors.Newf("config file %s already exists", path),
			"Pass --force to overwrite it")
	}
	if err != nil {
		return errors.NewSystemError(errors.Wrap(err, "writing config file"), "")
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
	return nil
}

// renderConfig encodes cfg in the named format.
func renderConfig(cfg *config.Config, format string) ([]byte, error) {
	var (
		data []byte
		err  error
	)
	switch format {
	case "yaml", "yml":
		data, err = fileutil.MarshalYAML(cfg)
	case "json":
		data, err = fileutil.MarshalJSON(cfg)
	case "toml":
		data, err = toml.Marshal(cfg)
	default:
		return nil, errors.NewUserError(
			errors.Newf("unknown format %q", format),
			"Use --format yaml, json or toml")
	}
	if err != nil {
		return nil, errors.Wrapf(err, "marshaling config as %s", format)
	}
	return data, nil
}
