package cli

import (
	"bytes"

	"github.com/spf13/cobra"

	"github.com/ariel-frischer/keepachangelog/internal/changelog"
	clierrors "github.com/ariel-frischer/keepachangelog/internal/errors"
)

var exportCmd = &cobra.Command{
	Use:   "export [file]",
	Short: "Export the changelog as JSON, YAML, Markdown or HTML",
	Long: `Export the whole changelog.

JSON and YAML use the dictionary form: one object per released version,
keyed by lower-cased version, holding a "metadata" object and one array of
notes per category. --raw replaces the arrays by the section text, and
--show-unreleased includes sections without a release date.

Markdown is re-derived from the notes, or written as read with --raw.`,
	Example: `  keepachangelog export                          # JSON on stdout
  keepachangelog export --format yaml --show-unreleased
  keepachangelog export --format html -o changelog.html
  keepachangelog export https://example.com/CHANGELOG.md --raw`,
	Args: cobra.MaximumNArgs(1),
	RunE: runExport,
}

func init() {
	exportCmd.GroupID = GroupChangelog
	exportCmd.Flags().String("format", FormatJSON, "Output format: json, yaml, markdown, html")
	exportCmd.Flags().Bool("raw", false, "Keep section text as written")
	exportCmd.Flags().Bool("show-unreleased", false, "Include unreleased sections in JSON and YAML")
	exportCmd.Flags().StringP("output", "o", "", "Output file path (default: stdout)")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")
	raw, _ := cmd.Flags().GetBool("raw")
	showUnreleased, _ := cmd.Flags().GetBool("show-unreleased")
	output, _ := cmd.Flags().GetString("output")

	if err := checkFormat("export format", format, FormatJSON, FormatYAML, FormatMarkdown, FormatHTML); err != nil {
		return err
	}

	c, err := loadChangelog(cmd, changelogSource(cmd, args, 0))
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := exportTo(&buf, c, format, raw, showUnreleased); err != nil {
		return err
	}

	return writeOutput(cmd, output, buf.Bytes())
}

func exportTo(buf *bytes.Buffer, c *changelog.Changelog, format string, raw, showUnreleased bool) error {
	switch format {
	case FormatMarkdown:
		return c.RenderMarkdown(buf, raw)
	case FormatHTML:
		return c.RenderHTML(buf, raw)
	default:
		return writeData(buf, format, c.ToDict(showUnreleased, raw))
	}
}

// writeOutput writes data to path, or to stdout when path is empty.
func writeOutput(cmd *cobra.Command, path string, data []byte) error {
	if path == "" {
		_, err := cmd.OutOrStdout().Write(data)
		return err
	}
	if err := changelog.WriteFileAtomic(path, data); err != nil {
		return clierrors.FileNotWritable(path, err)
	}
	loggerFromContext(cmd.Context()).Info("written", "file", path, "bytes", len(data))
	return nil
}
