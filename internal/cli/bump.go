package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tkhquang/relkit/internal/gitmeta"
	"github.com/tkhquang/relkit/internal/header"
	"github.com/tkhquang/relkit/internal/output"
	"github.com/tkhquang/relkit/internal/semver"
)

var (
	bumpTitleFlag     string
	bumpChangelogFlag string
	bumpTagFlag       bool
)

var bumpCmd = &cobra.Command{
	Use:   "bump {major|minor|patch}",
	Short: "Bump the project version and update release files",
	Long: `Bump one component of the project version.

The new version is written back to the version header, the readme version
line is rewritten, and - when a changelog entry is supplied - a new section
is inserted at the top of the changelog.

Bumping major zeroes minor and patch; bumping minor zeroes patch.`,
	Example: `  # 1.4.9 -> 1.5.0
  relkit bump minor

  # Bump and record the change in one step
  relkit bump patch --changelog "- Fixed hotkey detection on AZERTY layouts"

  # Bump, record, and tag the release
  relkit bump major --title "Stable Release" --changelog "- Final API" --tag`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"major", "minor", "patch"},
	RunE:      runBump,
}

func init() {
	rootCmd.AddCommand(bumpCmd)

	bumpCmd.Flags().StringVar(&bumpTitleFlag, "title", "", "Title for the changelog section (e.g. 'Feature Update')")
	bumpCmd.Flags().StringVar(&bumpChangelogFlag, "changelog", "", "Changelog entry for the new version")
	bumpCmd.Flags().BoolVar(&bumpTagFlag, "tag", false, "Create a git release tag for the new version")
}

func runBump(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	output.PrintStep(out, fmt.Sprintf("Bumping %s version", args[0]))

	store := header.NewStore(cfg.VersionHeader)
	newVersion, err := store.Bump(semver.Part(args[0]))
	if err != nil {
		return storeError(err, cfg)
	}
	output.PrintSuccess(out, fmt.Sprintf("Version bumped to %s in %s", newVersion, cfg.VersionHeader))

	patchReadme(cmd, cfg, newVersion)

	if bumpChangelogFlag != "" {
		if err := applyChangelogUpdate(cmd, cfg, newVersion, bumpTitleFlag, bumpChangelogFlag); err != nil {
			return err
		}
	}

	if bumpTagFlag {
		tag := cfg.TagPrefix + newVersion.String()
		if err := gitmeta.CreateTag(".", tag); err != nil {
			// The release files are already written at this point.
			output.PrintWarning(out, fmt.Sprintf("could not create tag %s: %v", tag, err))
		} else {
			output.PrintSuccess(out, fmt.Sprintf("Created tag %s", tag))
		}
	}

	output.PrintResult(out, fmt.Sprintf("Successfully bumped version to %s", newVersion))
	return nil
}
