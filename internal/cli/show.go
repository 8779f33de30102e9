package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/ariel-frischer/keepachangelog/internal/changelog"
	clierrors "github.com/ariel-frischer/keepachangelog/internal/errors"
)

var showCmd = &cobra.Command{
	Use:   "show [version] [file]",
	Short: "Show changelog entries",
	Long: `Show changelog entries.

By default, shows the 5 most recent entries. Use a version argument to
see all entries for a specific version, or use --last to control entry count.

The changelog is read from --file, the optional file argument, or the
configured file. Read-only commands also accept http(s) URLs.`,
	Example: `  keepachangelog show                        # Show 5 most recent entries
  keepachangelog show v1.2.0                 # Show all entries for version 1.2.0
  keepachangelog show 1.2.0                  # Same (v prefix optional)
  keepachangelog show unreleased             # Show unreleased changes
  keepachangelog show 1.2.0 --raw            # Show the section as written
  keepachangelog show 1.2.0 -o json          # Dictionary form of the section
  keepachangelog show --last 10              # Show 10 most recent entries
  keepachangelog show 1.2.0 https://example.com/CHANGELOG.md`,
	Args: cobra.MaximumNArgs(2),
	RunE: runShow,
}

func init() {
	showCmd.GroupID = GroupChangelog
	showCmd.Flags().Int("last", 5, "Number of entries to show")
	showCmd.Flags().Bool("raw", false, "Show the section body exactly as written")
	showCmd.Flags().StringP("output", "o", FormatText, "Output format: text, json, yaml, markdown")
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	last, _ := cmd.Flags().GetInt("last")
	raw, _ := cmd.Flags().GetBool("raw")
	output, _ := cmd.Flags().GetString("output")

	if err := checkFormat("output format", output, FormatText, FormatJSON, FormatYAML, FormatMarkdown); err != nil {
		return err
	}
	if len(args) == 0 && output != FormatText {
		return clierrors.InvalidFlagCombination("--output "+output+" without a version",
			"Use 'keepachangelog export --format "+output+"' for the whole changelog")
	}

	c, err := loadChangelog(cmd, changelogSource(cmd, args, 1))
	if err != nil {
		return err
	}

	cfg := configFromContext(cmd.Context())
	opts := changelog.FormatOptions{Plain: cfg.Plain, MaxWidth: cfg.Width}

	// If version specified, show that version
	if len(args) > 0 {
		return showVersion(cmd, c, args[0], output, raw, opts)
	}

	// Otherwise show last N entries
	return showLastEntries(cmd, c, last, opts)
}

func showVersion(cmd *cobra.Command, c *changelog.Changelog, version, output string, raw bool, opts changelog.FormatOptions) error {
	ch, err := lookupVersion(c, version)
	if err != nil {
		var notFound *changelog.VersionNotFoundError
		if errors.As(err, &notFound) && output != FormatText {
			return clierrors.VersionNotFound(version, notFound.AvailableVersions, err)
		}
		if notFound != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "Version %q not found.\n\n", version)
			fmt.Fprintf(cmd.ErrOrStderr(), "Available versions:\n")
			for _, ver := range c.ListVersions() {
				fmt.Fprintf(cmd.ErrOrStderr(), "  %s\n", ver)
			}
			return NewExitError(ExitInvalidArguments)
		}
		return fmt.Errorf("getting version: %w", err)
	}

	out := cmd.OutOrStdout()
	switch output {
	case FormatJSON, FormatYAML:
		return writeData(out, output, ch.ToDict(raw))
	case FormatMarkdown:
		_, err := io.WriteString(out, ch.ToMarkdown(raw))
		return err
	}

	if raw {
		_, err := io.WriteString(out, ch.RawText())
		return err
	}
	return changelog.FormatChange(ch, out, opts)
}

func showLastEntries(cmd *cobra.Command, c *changelog.Changelog, n int, opts changelog.FormatOptions) error {
	entries := c.GetLastN(n)
	if len(entries) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No changelog entries found.")
		return nil
	}

	if err := changelog.FormatTerminal(entries, cmd.OutOrStdout(), opts); err != nil {
		return fmt.Errorf("formatting entries: %w", err)
	}

	total := c.GetEntryCount()
	if total > len(entries) {
		fmt.Fprintf(cmd.OutOrStdout(), "\n(%d of %d entries shown. Use --last %d to see all)\n",
			len(entries), total, total)
	}

	return nil
}
