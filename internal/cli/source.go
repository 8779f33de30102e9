package cli

import (
	"context"
	"errors"
	"fmt"
	"io/fs"

	"github.com/spf13/cobra"

	"github.com/ariel-frischer/keepachangelog/internal/changelog"
	clierrors "github.com/ariel-frischer/keepachangelog/internal/errors"
	"github.com/ariel-frischer/keepachangelog/internal/semver"
)

// changelogSource returns the positional file argument at index i, or the
// configured file when it is absent.
func changelogSource(cmd *cobra.Command, args []string, i int) string {
	if len(args) > i && args[i] != "" {
		return args[i]
	}
	return configFromContext(cmd.Context()).File
}

// loadChangelog reads and parses source, a file path or an http(s) URL.
func loadChangelog(cmd *cobra.Command, source string) (*changelog.Changelog, error) {
	ctx := cmd.Context()
	cfg := configFromContext(ctx)
	logger := loggerFromContext(ctx)

	remote := changelog.IsRemote(source)
	logger.Debug("loading changelog", "source", source, "remote", remote)

	stop := func() {}
	if remote {
		stop = startSpinner(cmd.ErrOrStderr(), "fetching "+source, cfg.Plain)
	}
	c, err := changelog.LoadSource(ctx, source, cfg.RemoteTimeout)
	stop()
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return nil, clierrors.ChangelogNotFound(source, err)
	case errors.Is(err, context.DeadlineExceeded):
		return nil, clierrors.TimeoutError(cfg.RemoteTimeout.String(), source, err)
	case err != nil:
		return nil, fmt.Errorf("loading changelog %s: %w", source, err)
	}

	logger.Debug("parsed changelog", "source", source, "sections", c.Len(), "entries", c.GetEntryCount())
	return c, nil
}

// loadLocalChangelog is loadChangelog for commands that write the file back.
func loadLocalChangelog(cmd *cobra.Command, source string) (*changelog.Changelog, error) {
	if changelog.IsRemote(source) {
		return nil, clierrors.NewArgumentError(
			fmt.Sprintf("cannot modify a remote changelog: %s", source),
			"Download the file and pass its local path with --file",
		)
	}
	return loadChangelog(cmd, source)
}

// lookupVersion finds a section by version. "unreleased" also matches an
// unreleased section with another name.
func lookupVersion(c *changelog.Changelog, version string) (*changelog.Change, error) {
	ch, err := c.GetVersion(version)
	if err == nil {
		return ch, nil
	}
	if changelog.NormalizeVersion(version) == changelog.Unreleased {
		if unreleased := c.GetUnreleased(); unreleased != nil {
			return unreleased, nil
		}
	}
	return nil, err
}

// releaseError translates release engine errors into CLI errors.
func releaseError(version string, err error) error {
	var ambiguous *changelog.AmbiguousUnreleasedError
	if errors.As(err, &ambiguous) {
		return clierrors.AmbiguousUnreleased(ambiguous.Versions, err)
	}
	if errors.Is(err, changelog.ErrUnreleasedKey) {
		return clierrors.ReservedVersion(version, err)
	}
	if errors.Is(err, changelog.ErrVersionExists) {
		return clierrors.VersionExists(version, err)
	}
	var invalid *semver.InvalidVersionError
	if errors.As(err, &invalid) {
		return clierrors.NonSemanticHistory(err)
	}
	return err
}
