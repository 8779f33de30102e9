package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ariel-frischer/keepachangelog/internal/changelog"
	clierrors "github.com/ariel-frischer/keepachangelog/internal/errors"
)

var renderCmd = &cobra.Command{
	Use:   "render <records.json|records.yaml>",
	Short: "Render changelog records as Keep a Changelog Markdown",
	Long: `Render changelog records, in the dictionary form written by
'keepachangelog export --format json' or '--format yaml', as Markdown with the
standard Keep a Changelog preamble.

Records holding a structured "semantic_version" must agree with their
"version" string. Unreleased records come first, then releases newest first.
Use "-" to read JSON records from stdin.`,
	Example: `  # Render records to stdout
  keepachangelog render changes.json

  # Write the rendered changelog to a file
  keepachangelog render changes.yaml -o CHANGELOG.md

  # Round-trip through the dictionary form
  keepachangelog export --raw --show-unreleased | keepachangelog render -`,
	Args: cobra.ExactArgs(1),
	RunE: runRender,
}

func init() {
	renderCmd.GroupID = GroupChangelog
	renderCmd.Flags().StringP("output", "o", "", "Output file path (default: stdout)")
	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, args []string) error {
	output, _ := cmd.Flags().GetString("output")
	logger := loggerFromContext(cmd.Context())

	records, err := readRecords(cmd, args[0])
	if err != nil {
		return err
	}

	p := newProgress(logger)
	c, err := changelog.FromRecords(records)
	var unmatching *changelog.UnmatchingSemanticVersionError
	if errors.As(err, &unmatching) {
		return clierrors.UnmatchingRecord(err)
	}
	if err != nil {
		return fmt.Errorf("building changelog: %w", err)
	}
	p.done("rendered records", "sections", c.Len())

	md := strings.TrimRight(c.ToMarkdown(true), "\n") + "\n"
	return writeOutput(cmd, output, []byte(md))
}

// readRecords decodes the records file, choosing the decoder from its
// extension. "-" reads JSON from stdin.
func readRecords(cmd *cobra.Command, path string) (map[string]changelog.ChangeRecord, error) {
	decode := changelog.DecodeRecordsJSON
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
	case ".yaml", ".yml":
		decode = changelog.DecodeRecordsYAML
	default:
		if path != "-" {
			return nil, clierrors.NewArgumentErrorWithUsage(
				fmt.Sprintf("unsupported records format: %s", path),
				"keepachangelog render <records.json|records.yaml>",
				"Records files must end in .json, .yaml or .yml",
			)
		}
	}

	var r io.Reader = cmd.InOrStdin()
	if path != "-" {
		f, err := os.Open(path)
		if errors.Is(err, os.ErrNotExist) {
			return nil, clierrors.NewArgumentError(fmt.Sprintf("records file not found: %s", path))
		}
		if err != nil {
			return nil, fmt.Errorf("opening records: %w", err)
		}
		defer f.Close()
		r = f
	}

	records, err := decode(r)
	if err != nil {
		return nil, clierrors.WrapWithMessage(err, clierrors.Document, "invalid changelog records",
			"Records use the shape written by 'keepachangelog export --format json'")
	}
	return records, nil
}
