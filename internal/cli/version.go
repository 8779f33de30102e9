package cli

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/ariel-frischer/keepachangelog/internal/build"
)

// SourceURL is the project source URL
const SourceURL = "https://github.com/ariel-frischer/keepachangelog"

var versionCmd = &cobra.Command{
	Use:     "version",
	Aliases: []string{"V"},
	Short:   "Display version information",
	Long:    "Display version, commit, build date, and Go version information for keepachangelog",
	Example: `  # Show version info
  keepachangelog version

  # Plain output (for scripts)
  keepachangelog version --plain

  # Machine-readable output
  keepachangelog version --json`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		asJSON, _ := cmd.Flags().GetBool("json")
		info := build.Current()
		out := cmd.OutOrStdout()

		switch {
		case asJSON:
			return writeData(out, FormatJSON, info)
		case configFromContext(cmd.Context()).Plain:
			printPlainVersion(out, info)
		default:
			printPrettyVersion(out, info)
		}
		return nil
	},
}

func init() {
	versionCmd.GroupID = GroupConfiguration
	versionCmd.Flags().Bool("json", false, "Print version information as JSON")
	rootCmd.AddCommand(versionCmd)
}

// printPlainVersion prints a simple version output for scripting
func printPlainVersion(w io.Writer, info build.Info) {
	fmt.Fprintf(w, "keepachangelog %s\n", info.Version)
	fmt.Fprintf(w, "commit: %s\n", info.Commit)
	fmt.Fprintf(w, "built: %s\n", info.BuildDate)
	fmt.Fprintf(w, "go: %s\n", info.GoVersion)
	fmt.Fprintf(w, "platform: %s\n", info.Platform)
}

// printPrettyVersion prints a styled version output
func printPrettyVersion(w io.Writer, info build.Info) {
	cyan := color.New(color.FgCyan, color.Bold).SprintFunc()
	dim := color.New(color.Faint).SprintFunc()
	white := color.New(color.FgWhite, color.Bold).SprintFunc()

	fmt.Fprintf(w, "%s %s\n", cyan("keepachangelog"), white(info.Version))
	rows := []struct {
		label string
		value string
	}{
		{"Commit", info.ShortCommit()},
		{"Built", info.BuildDate},
		{"Go", info.GoVersion},
		{"Platform", info.Platform},
		{"Source", SourceURL},
	}
	for _, row := range rows {
		fmt.Fprintf(w, "  %s %s\n", dim(fmt.Sprintf("%-9s", row.label+":")), row.value)
	}
}
