package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var nextCmd = &cobra.Command{
	Use:   "next [file]",
	Short: "Print the version the unreleased notes would be released as",
	Long: `Print the version 'keepachangelog release' would use, without modifying
the changelog.`,
	Example: `  keepachangelog next
  keepachangelog next docs/CHANGELOG.md`,
	Args: cobra.MaximumNArgs(1),
	RunE: runNext,
}

func init() {
	nextCmd.GroupID = GroupChangelog
	rootCmd.AddCommand(nextCmd)
}

func runNext(cmd *cobra.Command, args []string) error {
	c, err := loadChangelog(cmd, changelogSource(cmd, args, 0))
	if err != nil {
		return err
	}

	next, err := c.NextVersion()
	if err != nil {
		return releaseError("", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), next.String())
	return nil
}
