package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tkhquang/relkit/internal/config"
	"github.com/tkhquang/relkit/internal/errors"
	"github.com/tkhquang/relkit/internal/output"
)

var initForceFlag bool

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Generate a project config file",
	Long: `Write a commented .relkit/config.yml with the default settings.

The generated file documents every option; edit it to point relkit at your
version header, readme, and changelog.`,
	Example: `  relkit init
  relkit init --force   # overwrite an existing config`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)

	initCmd.Flags().BoolVar(&initForceFlag, "force", false, "Overwrite an existing config file")
}

func runInit(cmd *cobra.Command, args []string) error {
	path := config.ProjectConfigPath()

	if _, err := os.Stat(path); err == nil && !initForceFlag {
		return errors.NewArgumentError(
			fmt.Sprintf("%s already exists", path),
			"use --force to overwrite it")
	}

	if err := os.MkdirAll(config.ProjectConfigDir(), 0755); err != nil {
		return errors.WrapWithMessage(err, errors.Runtime, "creating config directory")
	}

	if err := os.WriteFile(path, []byte(config.GetDefaultConfigTemplate()), 0644); err != nil {
		return errors.WrapWithMessage(err, errors.Runtime, "writing config file")
	}

	output.PrintSuccess(cmd.OutOrStdout(), fmt.Sprintf("Wrote %s", path))
	return nil
}
