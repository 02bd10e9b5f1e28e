package cli

import (
	stderrors "errors"
	"fmt"
	"io/fs"

	"github.com/spf13/cobra"

	"github.com/tkhquang/relkit/internal/changelog"
	"github.com/tkhquang/relkit/internal/config"
	"github.com/tkhquang/relkit/internal/errors"
	"github.com/tkhquang/relkit/internal/gitmeta"
	"github.com/tkhquang/relkit/internal/header"
	"github.com/tkhquang/relkit/internal/output"
	"github.com/tkhquang/relkit/internal/readme"
	"github.com/tkhquang/relkit/internal/semver"
)

// loadConfig loads the configuration honoring the global --config flag.
func loadConfig() (*config.Configuration, error) {
	cfg, err := config.Load(configFlag)
	if err != nil {
		return nil, errors.Wrap(err, errors.Runtime,
			"check the syntax of .relkit/config.yml",
			"run 'relkit init' to generate a fresh config file")
	}
	return cfg, nil
}

// storeError maps version store failures to structured CLI errors.
// Every store error is fatal: without a readable version nothing else can run.
func storeError(err error, cfg *config.Configuration) *errors.CLIError {
	var parseErr *header.ParseError
	switch {
	case stderrors.Is(err, semver.ErrInvalidPart):
		return errors.NewArgumentErrorWithUsage(err.Error(),
			"relkit bump {major|minor|patch}")
	case stderrors.Is(err, fs.ErrNotExist):
		return errors.NewNotFoundError(
			fmt.Sprintf("version header %s not found", cfg.VersionHeader),
			"create the header with #define VERSION_MAJOR/MINOR/PATCH lines",
			"or point version_header in .relkit/config.yml at the right file")
	case stderrors.As(err, &parseErr):
		return errors.Wrap(err, errors.Parse,
			"the header must declare #define VERSION_MAJOR, VERSION_MINOR and VERSION_PATCH with integer values")
	default:
		return errors.Wrap(err, errors.Runtime)
	}
}

// patchReadme updates the readme version line. Readme failures are contained
// here: they are printed as warnings and never stop the release.
func patchReadme(cmd *cobra.Command, cfg *config.Configuration, v semver.Version) {
	out := cmd.OutOrStdout()
	patcher := readme.NewPatcher(cfg.Readme)

	if err := patcher.Update(v); err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			output.PrintWarning(out, fmt.Sprintf("%s not found, skipping.", cfg.Readme))
		} else {
			output.PrintWarning(out, fmt.Sprintf("could not update %s: %v", cfg.Readme, err))
		}
		return
	}
	output.PrintSuccess(out, fmt.Sprintf("Updated %s", cfg.Readme))
}

// applyChangelogUpdate runs the changelog editor for a version. Duplicate
// sections and empty entries are warnings; anything else is fatal.
func applyChangelogUpdate(cmd *cobra.Command, cfg *config.Configuration, v semver.Version, title, entry string) error {
	out := cmd.OutOrStdout()

	editor := changelog.NewEditor(cfg.Changelog, cfg.ProjectName, resolveRepoURL(cmd, cfg), cfg.TagPrefix)
	err := editor.Update(v, title, entry)

	var dup *changelog.DuplicateVersionError
	var empty *changelog.EmptyEntryError
	switch {
	case err == nil:
		output.PrintSuccess(out, fmt.Sprintf("Updated %s with version %s", cfg.Changelog, v))
		return nil
	case stderrors.As(err, &dup), stderrors.As(err, &empty):
		output.PrintWarning(out, err.Error())
		return nil
	default:
		return errors.WrapWithMessage(err, errors.Runtime, "updating changelog")
	}
}

// resolveRepoURL returns the configured repository URL, falling back to the
// git origin remote of the working directory. Detection failure is not fatal;
// link synthesis then produces repository-relative URLs.
func resolveRepoURL(cmd *cobra.Command, cfg *config.Configuration) string {
	if cfg.RepoURL != "" {
		return cfg.RepoURL
	}

	url, err := gitmeta.DetectRepoURL(".")
	if err != nil {
		if verboseFlag {
			output.PrintWarning(cmd.OutOrStdout(),
				fmt.Sprintf("could not detect repository URL (%v); set repo_url in .relkit/config.yml", err))
		}
		return ""
	}
	return url
}
