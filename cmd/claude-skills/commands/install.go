package commands

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/ai-labs/claude-skills/internal/errors"
	"github.com/ai-labs/claude-skills/internal/install"
	"github.com/ai-labs/claude-skills/internal/logging"
	"github.com/ai-labs/claude-skills/internal/paths"
	"github.com/ai-labs/claude-skills/internal/project"
)

var (
	installBundle string
	installFrom   string
	installStrict bool
	installOutput string
)

func init() {
	addInstallFlags(installCmd)
	rootCmd.AddCommand(installCmd)
}

// addInstallFlags registers the install flags on c. The root command and
// install share them so that a bare invocation installs.
func addInstallFlags(c *cobra.Command) {
	c.Flags().StringVar(&installBundle, "bundle", "",
		"skills bundle to copy (default: <installer dir>/dist/skills)")
	c.Flags().StringVar(&installFrom, "from", "",
		"directory the project root search starts from (default: installer dir)")
	c.Flags().BoolVar(&installStrict, "strict", false,
		"exit with code 2 when the install is partial or fails")
	c.Flags().StringVarP(&installOutput, "output", "o", "text",
		"report format: text, json")
}

var installCmd = &cobra.Command{
	Use:   "install",
	Short: "Copy the bundled skills into <project>/.claude/skills",
	Long: `Copy every file under the skills bundle into the .claude/skills directory
of the enclosing project, creating .claude and .claude/skills as needed.

Files with the same relative path are overwritten. Files the bundle does not
contain are left in place. A missing bundle is reported as a warning.

By default the command exits 0 even when the copy fails midway, so package
installs are never blocked. Pass --strict (or set strict: true) to exit 2.`,
	Example: `  # Install from the installer's own bundle
  claude-skills install

  # Install a specific bundle into the project enclosing the current directory
  claude-skills install --bundle ./dist/skills --from .

  # Fail the calling script when anything goes wrong
  claude-skills install --strict

  See Also: claude-skills scaffold, claude-skills config`,
	Args: cobra.NoArgs,
	RunE: runInstall,
}

func runInstall(cmd *cobra.Command, _ []string) error {
	logger := logging.FromContext(cmd.Context())
	cfg := currentConfig()

	format, err := install.ParseFormat(installOutput)
	if err != nil {
		return errors.NewUserError(err, "Use --output text or --output json")
	}

	bundleDir, startDir, err := installDirs()
	if err != nil {
		return err
	}

	match, err := project.ParseMatchMode(cfg.ExcludeMatch)
	if err != nil {
		return errors.NewConfigError(err)
	}
	resolver := &project.Resolver{
		ManifestFile: cfg.ManifestFile,
		ExcludedDir:  cfg.ExcludedDir,
		Match:        match,
	}
	root := resolver.FindRoot(startDir)
	logger.Debug("resolved project root", "start", startDir, "root", root)

	res := install.New(install.Options{
		ProjectRoot:   root,
		BundleDir:     bundleDir,
		ConfigDirName: cfg.ConfigDir,
		SkillsDirName: cfg.SkillsDir,
	}, logger).Run()

	out := cmd.OutOrStdout()
	if quiet && format == install.FormatText {
		out = io.Discard
	}
	if err := install.NewReporter(out, cmd.ErrOrStderr(), format).Report(res); err != nil {
		return errors.NewSystemError(err, "")
	}

	if (installStrict || cfg.Strict) && res.Status != install.StatusSuccess {
		return errors.NewSystemError(res.Err(), "Re-run with -vv to see each copied file")
	}
	return nil
}

// installDirs returns the bundle directory and the root search start. Flags
// win over config, and config wins over the installer's own location.
func installDirs() (bundleDir, startDir string, err error) {
	cfg := currentConfig()
	bundleDir = firstNonEmpty(installBundle, cfg.BundleDir)
	startDir = firstNonEmpty(installFrom, cfg.StartDir)
	if bundleDir != "" && startDir != "" {
		return bundleDir, startDir, nil
	}

	installerDir, err := paths.InstallerDir()
	if err != nil {
		return "", "", errors.NewSystemError(err, "Pass --bundle and --from explicitly")
	}
	if bundleDir == "" {
		bundleDir = paths.BundleDir(installerDir)
	}
	if startDir == "" {
		startDir = installerDir
	}
	return bundleDir, startDir, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
