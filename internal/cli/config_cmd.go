package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/ariel-frischer/keepachangelog/internal/changelog"
	"github.com/ariel-frischer/keepachangelog/internal/config"
	clierrors "github.com/ariel-frischer/keepachangelog/internal/errors"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage keepachangelog configuration",
	Long: `Manage keepachangelog configuration settings.

Configuration is loaded with the following priority (highest to lowest):
  1. Command-line flags
  2. Environment variables (KEEPACHANGELOG_*)
  3. Project config (.keepachangelog.yml, .yaml, .json or .toml)
  4. User config (~/.config/keepachangelog/config.yml)
  5. Built-in defaults`,
	Example: `  # Show the effective configuration
  keepachangelog config show

  # Write a commented project config
  keepachangelog config init`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the effective configuration",
	Long:  "Print the configuration after merging every source, as YAML (or JSON with --json).",
	Args:  cobra.NoArgs,
	RunE:  runConfigShow,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a commented project configuration",
	Long:  "Write the default configuration, with every option documented, to .keepachangelog.yml.",
	Example: `  keepachangelog config init
  keepachangelog config init --force`,
	Args: cobra.NoArgs,
	RunE: runConfigInit,
}

func init() {
	configCmd.GroupID = GroupConfiguration
	configShowCmd.Flags().Bool("json", false, "Output in JSON format")
	configInitCmd.Flags().Bool("force", false, "Overwrite an existing configuration file")
	configCmd.AddCommand(configShowCmd, configInitCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	cfg := configFromContext(cmd.Context())
	out := cmd.OutOrStdout()

	asJSON, _ := cmd.Flags().GetBool("json")
	if asJSON {
		return writeData(out, FormatJSON, cfg)
	}

	if !cfg.Plain {
		fmt.Fprintln(out, color.New(color.Faint).Sprint("# Configuration Sources: "+configSources()))
	}
	return writeData(out, FormatYAML, cfg)
}

// configSources lists the config files that exist, lowest priority first.
func configSources() string {
	sources := "defaults"
	if userPath, err := config.UserConfigPath(); err == nil {
		if _, err := os.Stat(userPath); err == nil {
			sources += ", " + userPath
		}
	}
	for _, candidate := range config.ProjectConfigCandidates() {
		if _, err := os.Stat(candidate); err == nil {
			sources += ", " + candidate
			break
		}
	}
	return sources + ", environment, flags"
}

func runConfigInit(cmd *cobra.Command, _ []string) error {
	force, _ := cmd.Flags().GetBool("force")
	path := config.ProjectConfigPath()

	if _, err := os.Stat(path); err == nil && !force {
		return clierrors.NewArgumentError(
			fmt.Sprintf("config file already exists: %s", path),
			"Use --force to overwrite it",
			"Run 'keepachangelog config show' to see the current configuration",
		)
	} else if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return clierrors.FileNotWritable(path, err)
	}

	if err := changelog.WriteFileAtomic(path, []byte(config.GetDefaultConfigTemplate())); err != nil {
		return clierrors.FileNotWritable(path, err)
	}

	loggerFromContext(cmd.Context()).Info("written", "path", path)
	return nil
}
