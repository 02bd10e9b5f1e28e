// Package cli implements the relkit command-line interface.
package cli

import (
	stderrors "errors"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/tkhquang/relkit/internal/errors"
)

var (
	configFlag  string
	plainFlag   bool
	verboseFlag bool
)

var rootCmd = &cobra.Command{
	Use:   "relkit",
	Short: "Release bookkeeping for version headers, changelogs, and readmes",
	Long: `relkit performs release bookkeeping for a single project.

It reads the semantic version from the VERSION_MAJOR/MINOR/PATCH defines of a
header file, bumps one component, writes the new version back, and reflects
the change into the changelog document and the plain-text readme.

relkit is a one-shot, single-operator tool: each file is read in full,
transformed in memory, and written in full. There is no locking; concurrent
invocations against the same files can race.`,
	Example: `  # Bump the minor version and record the change
  relkit bump minor --title "Feature Update" --changelog "- Added profile support"

  # Add a changelog entry for the current version
  relkit update-changelog --changelog "- Fixed crash on startup"

  # Print the current version
  relkit current`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if plainFlag {
			color.NoColor = true
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "Path to config file (default .relkit/config.yml)")
	rootCmd.PersistentFlags().BoolVar(&plainFlag, "plain", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolVar(&verboseFlag, "verbose", false, "Verbose output")
}

// Execute runs the root command. Structured CLI errors are printed with their
// remediation guidance and terminate the process with a category-specific
// exit code; anything else is reported to the caller.
func Execute() error {
	err := rootCmd.Execute()
	if err == nil {
		return nil
	}

	var cliErr *errors.CLIError
	if stderrors.As(err, &cliErr) {
		errors.PrintError(cliErr)
		os.Exit(exitCodeFor(cliErr.Category))
	}

	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	return err
}
