// Package cli implements the keepachangelog command-line interface.
//
// Commands read the changelog named by --file (or the configured "file"),
// and report failures as categorized errors with remediation steps. The
// process exit code is derived from the returned error by ExitCode.
//
// Configuration is loaded once per invocation by the root command and, with
// the logger, passed to commands through the command context.
package cli

import (
	"context"
	"errors"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/ariel-frischer/keepachangelog/internal/config"
	clierrors "github.com/ariel-frischer/keepachangelog/internal/errors"
	"github.com/ariel-frischer/keepachangelog/internal/git"
)

// Command groups shown in help output
const (
	GroupChangelog     = "changelog"
	GroupIntegration   = "integration"
	GroupConfiguration = "configuration"
)

// configKeyAnnotation marks a flag whose value overrides a configuration key.
const configKeyAnnotation = "keepachangelog/config-key"

var rootCmd = &cobra.Command{
	Use:   "keepachangelog",
	Short: "Parse, release and render Keep a Changelog files",
	Long: `keepachangelog reads changelogs written in the Keep a Changelog format,
computes the next semantic version from the unreleased notes, releases them
and renders the result as Markdown, JSON, YAML or HTML.

Configuration precedence (highest to lowest):
  1. Command-line flags
  2. Environment variables (KEEPACHANGELOG_*)
  3. Project config (.keepachangelog.yml, .yaml, .json or .toml)
  4. User config (~/.config/keepachangelog/config.yml)
  5. Built-in defaults`,
	Example: `  # Show the 5 most recent entries
  keepachangelog show

  # Release the unreleased notes under the computed version and tag it
  keepachangelog release --tag

  # Export a changelog as JSON
  keepachangelog export --file docs/CHANGELOG.md --format json`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setupCommand,
}

func init() {
	rootCmd.AddGroup(
		&cobra.Group{ID: GroupChangelog, Title: "Changelog Commands:"},
		&cobra.Group{ID: GroupIntegration, Title: "Integration Commands:"},
		&cobra.Group{ID: GroupConfiguration, Title: "Configuration Commands:"},
	)

	rootCmd.PersistentFlags().String("config", "", "Config file (default: .keepachangelog.yml in the current directory)")
	rootCmd.PersistentFlags().StringP("file", "f", "", "Changelog file, or http(s) URL for read-only commands (default: CHANGELOG.md)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().Bool("plain", false, "Plain output without colors or icons")
	bindConfigKey(rootCmd.PersistentFlags(), "file", "file")
	bindConfigKey(rootCmd.PersistentFlags(), "plain", "plain")

	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return clierrors.NewArgumentErrorWithUsage(err.Error(), cmd.UseLine(),
			"Run 'keepachangelog "+cmd.Name()+" --help' to see valid flags")
	})
}

// bindConfigKey makes the flag name, when set, override the configuration key.
func bindConfigKey(flags *pflag.FlagSet, name, key string) {
	_ = flags.SetAnnotation(name, configKeyAnnotation, []string{key})
}

// Execute runs the keepachangelog CLI and returns an error if any command
// fails. The error has already been reported on stderr; pass it to ExitCode
// for the process exit status.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := rootCmd.ExecuteContext(ctx)
	if err != nil {
		plain, _ := rootCmd.PersistentFlags().GetBool("plain")
		reportError(rootCmd.ErrOrStderr(), err, plain || color.NoColor)
	}
	return err
}

// reportError prints err unless it is an ExitError whose problem was already
// reported.
func reportError(w io.Writer, err error, plain bool) {
	var exitErr *ExitError
	if errors.As(err, &exitErr) && exitErr.Err == nil {
		return
	}
	clierrors.FprintAny(w, err, plain)
}

// setupCommand loads the configuration, applying the flags bound to config
// keys, and attaches it and the logger to the command context.
func setupCommand(cmd *cobra.Command, _ []string) error {
	cfgPath, _ := cmd.Flags().GetString("config")

	cfg, err := config.LoadWithOptions(config.LoadOptions{
		ProjectConfigPath: cfgPath,
		Overrides:         flagOverrides(cmd.Flags()),
		WarningWriter:     cmd.ErrOrStderr(),
	})
	if err != nil {
		if cfgPath != "" {
			return clierrors.ConfigParseError(cfgPath, err)
		}
		return clierrors.WrapWithMessage(err, clierrors.Configuration, "loading configuration",
			"Check .keepachangelog.yml and ~/.config/keepachangelog/config.yml",
			"Check KEEPACHANGELOG_* environment variables")
	}

	verbose, _ := cmd.Flags().GetBool("verbose")
	logger := newLogger(cmd.ErrOrStderr(), logLevel(cfg.LogLevel, verbose))
	git.SetDebugLogger(logger.Debugf)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(withConfig(withLogger(ctx, logger), cfg))
	return nil
}

// flagOverrides collects the values of changed flags bound to config keys.
func flagOverrides(flags *pflag.FlagSet) map[string]any {
	overrides := make(map[string]any)
	flags.VisitAll(func(f *pflag.Flag) {
		keys := f.Annotations[configKeyAnnotation]
		if !f.Changed || len(keys) == 0 {
			return
		}
		overrides[keys[0]] = f.Value.String()
	})
	return overrides
}
