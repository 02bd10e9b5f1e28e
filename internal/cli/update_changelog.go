package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tkhquang/relkit/internal/errors"
	"github.com/tkhquang/relkit/internal/header"
	"github.com/tkhquang/relkit/internal/output"
	"github.com/tkhquang/relkit/internal/semver"
)

var (
	updateChangelogVersionFlag string
	updateChangelogTitleFlag   string
	updateChangelogEntryFlag   string
)

var updateChangelogCmd = &cobra.Command{
	Use:   "update-changelog",
	Short: "Add a changelog section for a version",
	Long: `Insert a new section into the changelog without touching the version header.

The target version defaults to the current version from the header; use
--version to record an entry for a different release. If a section for the
version already exists the update is skipped with a warning.`,
	Example: `  # Entry for the current version
  relkit update-changelog --changelog "- Fixed overlay detection"

  # Entry for an explicit version with a section title
  relkit update-changelog --version 2.0.0 --title "Big Rewrite" --changelog "- Everything is new"`,
	Args: cobra.NoArgs,
	RunE: runUpdateChangelog,
}

func init() {
	rootCmd.AddCommand(updateChangelogCmd)

	updateChangelogCmd.Flags().StringVar(&updateChangelogVersionFlag, "version", "", "Version to use (defaults to current version)")
	updateChangelogCmd.Flags().StringVar(&updateChangelogTitleFlag, "title", "", "Title for the changelog section")
	updateChangelogCmd.Flags().StringVar(&updateChangelogEntryFlag, "changelog", "", "Changelog entry text (required)")
	_ = updateChangelogCmd.MarkFlagRequired("changelog")
}

func runUpdateChangelog(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	var version semver.Version
	if updateChangelogVersionFlag != "" {
		version, err = semver.Parse(updateChangelogVersionFlag)
		if err != nil {
			return errors.NewArgumentErrorWithUsage(err.Error(),
				"relkit update-changelog --version X.Y.Z --changelog TEXT")
		}
	} else {
		version, err = header.NewStore(cfg.VersionHeader).Read()
		if err != nil {
			return storeError(err, cfg)
		}
	}

	if err := applyChangelogUpdate(cmd, cfg, version, updateChangelogTitleFlag, updateChangelogEntryFlag); err != nil {
		return err
	}

	output.PrintResult(cmd.OutOrStdout(), fmt.Sprintf("Successfully updated changelog for version %s", version))
	return nil
}
