package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tkhquang/relkit/internal/header"
)

var currentTagFlag bool

var currentCmd = &cobra.Command{
	Use:   "current",
	Short: "Print the current project version",
	Long:  "Read the version header and print the current version without changing anything.",
	Example: `  # Bare version (e.g. 1.5.0)
  relkit current

  # Tag form (e.g. v1.5.0)
  relkit current --tag`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		v, err := header.NewStore(cfg.VersionHeader).Read()
		if err != nil {
			return storeError(err, cfg)
		}

		if currentTagFlag {
			fmt.Fprintf(cmd.OutOrStdout(), "%s%s\n", cfg.TagPrefix, v)
			return nil
		}
		fmt.Fprintln(cmd.OutOrStdout(), v)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(currentCmd)

	currentCmd.Flags().BoolVar(&currentTagFlag, "tag", false, "Print the tag form (prefix + version)")
}
