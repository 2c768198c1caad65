package commands

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/ai-labs/claude-skills/internal/errors"
	"github.com/ai-labs/claude-skills/internal/logging"
	"github.com/ai-labs/claude-skills/internal/scaffold"
)

var (
	scaffoldDir        string
	scaffoldScope      string
	scaffoldLicense    string
	scaffoldAuthor     string
	scaffoldPkgVersion string
)

func init() {
	scaffoldCmd.PersistentFlags().StringVarP(&scaffoldDir, "dir", "d", "",
		"skills tree with one folder per skill (default: packages/skills)")

	scaffoldManifestsCmd.Flags().StringVar(&scaffoldScope, "scope", "",
		"npm scope prefixed to each package name (default: @ai-labs-claude-skills)")
	scaffoldManifestsCmd.Flags().StringVar(&scaffoldLicense, "license", "", "package license (default: MIT)")
	scaffoldManifestsCmd.Flags().StringVar(&scaffoldAuthor, "author", "", "package author (default: AI Labs)")
	scaffoldManifestsCmd.Flags().StringVar(&scaffoldPkgVersion, "pkg-version", "", "package version (default: 1.0.0)")

	scaffoldCmd.AddCommand(scaffoldManifestsCmd)
	scaffoldCmd.AddCommand(scaffoldTemplatesCmd)
	rootCmd.AddCommand(scaffoldCmd)
}

var scaffoldCmd = &cobra.Command{
	Use:   "scaffold",
	Short: "Generate missing per-skill package files",
	Long: `Generate files for every skill folder in the development skills tree.

Each immediate subdirectory of --dir is a skill. Plain files such as packaged
.skill archives are ignored. Existing files are never overwritten.`,
	Example: `  # Add a package.json to every skill that lacks one
  claude-skills scaffold manifests

  # Add an index.js entry point stub to every skill that lacks one
  claude-skills scaffold templates --dir ./skills`,
}

var scaffoldManifestsCmd = &cobra.Command{
	Use:   "manifests",
	Short: "Create a default package.json in each skill folder",
	Long: `Create a package.json in each skill folder that does not have one.

The package is named <scope>/<folder>, points main at index.js and publishes
the whole folder.`,
	Example: `  # Default scope and metadata
  claude-skills scaffold manifests

  # Custom scope and author
  claude-skills scaffold manifests --scope @acme --author "Acme Inc"`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		sc := currentConfig().Scaffold
		g := &scaffold.ManifestGenerator{
			Scope:   firstNonEmpty(scaffoldScope, sc.Scope),
			Version: firstNonEmpty(scaffoldPkgVersion, sc.Version),
			License: firstNonEmpty(scaffoldLicense, sc.License),
			Author:  firstNonEmpty(scaffoldAuthor, sc.Author),
		}
		return runScaffold(cmd, g)
	},
}

var scaffoldTemplatesCmd = &cobra.Command{
	Use:   "templates",
	Short: "Create a stub index.js in each skill folder",
	Long: `Create an index.js entry point in each skill folder that does not have one.

The stub exports an async function named after the folder, with every
character that is not valid in a JavaScript identifier replaced by "_".`,
	Example: `  claude-skills scaffold templates`,
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runScaffold(cmd, scaffold.NewTemplateGenerator())
	},
}

func runScaffold(cmd *cobra.Command, g scaffold.Generator) error {
	dir := firstNonEmpty(scaffoldDir, currentConfig().Scaffold.Dir)
	logger := logging.FromContext(cmd.Context())
	logger.Debug("scaffolding", "dir", dir, "file", g.FileName())

	report, err := scaffold.Generate(dir, g)
	if report != nil {
		printScaffoldReport(cmd, report)
	}
	if err != nil {
		if errors.Is(err, scaffold.ErrSkillsDirNotFound) {
			return errors.NewUserError(err, "Run from the repository root or pass --dir")
		}
		return errors.NewSystemError(err, "")
	}

	if !quiet {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "\nAll missing %s files generated! (%d created, %d skipped)\n",
			report.FileName, report.Created(), report.Skipped())
	}
	return nil
}

func printScaffoldReport(cmd *cobra.Command, report *scaffold.Report) {
	if quiet {
		return
	}
	out := cmd.OutOrStdout()
	for _, e := range report.Entries {
		switch e.Action {
		case scaffold.ActionSkipped:
			fmt.Fprintf(out, "%s Skipping %s (%s already exists)\n",
				color.HiBlackString("-"), e.Folder, report.FileName)
		case scaffold.ActionCreated:
			fmt.Fprintf(out, "%s Created %s for %s\n",
				color.GreenString("+"), report.FileName, e.Folder)
		}
	}
}
