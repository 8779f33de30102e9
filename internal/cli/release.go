package cli

import (
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/ariel-frischer/keepachangelog/internal/changelog"
	clierrors "github.com/ariel-frischer/keepachangelog/internal/errors"
	"github.com/ariel-frischer/keepachangelog/internal/git"
)

var releaseCmd = &cobra.Command{
	Use:   "release [version]",
	Short: "Release the unreleased section",
	Long: `Release the unreleased section under a new version dated today.

Without a version argument the next version is computed from the unreleased
notes: removed or changed notes bump the major version, fixes alone bump the
patch version, anything else bumps the minor version, and a prerelease is
promoted to its stable release.

A fresh empty unreleased section replaces the released one, and compare links
("[Unreleased]: .../v1.0.0...HEAD") are split into the released range and the
new unreleased range. The file is rewritten in place; sections that did not
change keep their exact formatting.

With nothing to release the file is left untouched and the command succeeds.`,
	Example: `  # Release under the computed version
  keepachangelog release

  # Release under an explicit version and date
  keepachangelog release 2.0.0 --date 2024-01-31

  # Preview the released changelog without writing it
  keepachangelog release --dry-run

  # Release and create an annotated git tag v<version>
  keepachangelog release --tag --tag-message "Release notes in CHANGELOG.md"`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRelease,
}

func init() {
	releaseCmd.GroupID = GroupChangelog
	releaseCmd.Flags().String("date", "", "Release date as YYYY-MM-DD (default: today)")
	releaseCmd.Flags().Bool("dry-run", false, "Print the released changelog instead of writing it")
	releaseCmd.Flags().Bool("tag", false, "Create a git tag <tag_prefix><version> at HEAD")
	releaseCmd.Flags().String("tag-message", "", "Create an annotated tag with this message (implies --tag)")
	rootCmd.AddCommand(releaseCmd)
}

func runRelease(cmd *cobra.Command, args []string) error {
	dateFlag, _ := cmd.Flags().GetString("date")
	dryRun, _ := cmd.Flags().GetBool("dry-run")
	tag, _ := cmd.Flags().GetBool("tag")
	tagMessage, _ := cmd.Flags().GetString("tag-message")
	tag = tag || tagMessage != ""

	if dryRun && tag {
		return clierrors.InvalidFlagCombination("--dry-run --tag", "A dry run never creates tags; drop one of the flags")
	}

	day, err := releaseDay(dateFlag)
	if err != nil {
		return err
	}

	var version string
	if len(args) == 1 {
		version = args[0]
	}

	cfg := configFromContext(cmd.Context())
	logger := loggerFromContext(cmd.Context())
	path := cfg.File

	c, err := loadLocalChangelog(cmd, path)
	if err != nil {
		return err
	}

	p := newProgress(logger)
	released, err := c.ReleaseOn(version, day)
	if errors.Is(err, changelog.ErrNothingToRelease) {
		logger.Warn("nothing to release", "file", path)
		return nil
	}
	if err != nil {
		return releaseError(version, err)
	}

	if dryRun {
		return c.RenderMarkdown(cmd.OutOrStdout(), true)
	}

	var repoDir, tagName string
	if tag {
		repoDir = filepath.Dir(path)
		tagName = cfg.TagPrefix + released
		if err := checkTaggable(repoDir, tagName); err != nil {
			return err
		}
	}

	if err := c.Save(path); err != nil {
		return clierrors.FileNotWritable(path, err)
	}
	p.done("released", "version", released, "file", path)

	if tag {
		if err := createTag(logger, repoDir, tagName, tagMessage); err != nil {
			return err
		}
		logger.Info("tagged", "tag", tagName)
	}

	fmt.Fprintln(cmd.OutOrStdout(), released)
	return nil
}

// releaseDay parses the --date flag, defaulting to now.
func releaseDay(value string) (time.Time, error) {
	if value == "" {
		return time.Now(), nil
	}
	day, err := time.ParseInLocation("2006-01-02", value, time.Local)
	if err != nil {
		return time.Time{}, clierrors.InvalidDate(value)
	}
	return day, nil
}

// checkTaggable verifies, before anything is written, that tag can be created.
func checkTaggable(dir, tag string) error {
	if !git.IsGitRepository(dir) {
		return clierrors.GitNotRepository()
	}
	exists, err := git.TagExists(dir, tag)
	if err != nil {
		return fmt.Errorf("checking tag %s: %w", tag, err)
	}
	if exists {
		return clierrors.TagExists(tag)
	}
	return nil
}

func createTag(logger *log.Logger, dir, tag, message string) error {
	if branch, err := git.GetCurrentBranch(dir); err == nil && branch != "" {
		logger.Debug("tagging", "tag", tag, "branch", branch)
	}
	err := git.CreateTag(dir, tag, message)
	if errors.Is(err, git.ErrTagExists) {
		return clierrors.TagExists(tag)
	}
	if err != nil {
		return fmt.Errorf("creating tag %s: %w", tag, err)
	}
	return nil
}
