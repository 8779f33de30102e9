package errors

import (
	"fmt"
	"strings"
)

// Common error messages for the keepachangelog CLI.
// These templates ensure consistent, actionable error messages.

// ChangelogNotFound creates an error for a missing changelog file.
func ChangelogNotFound(path string, err error) *CLIError {
	return &CLIError{
		Category: Argument,
		Message:  fmt.Sprintf("changelog not found: %s", path),
		Remediation: []string{
			"Pass the file explicitly: keepachangelog show --file docs/CHANGELOG.md",
			"Or set \"file\" in .keepachangelog.yml",
		},
		Err: err,
	}
}

// ReservedVersion creates an error when a release is requested under the
// name of the unreleased section.
func ReservedVersion(version string, err error) *CLIError {
	return &CLIError{
		Category: Argument,
		Message:  fmt.Sprintf("cannot release as %q: it names the unreleased section", version),
		Usage:    "keepachangelog release [MAJOR.MINOR.PATCH[-PRERELEASE][+BUILD]]",
		Remediation: []string{
			"Use a version such as 1.2.3, 1.2.3-rc1 or 1.2.3+build.5",
			"Omit the version to let it be computed from the unreleased notes",
		},
		Err: err,
	}
}

// VersionExists creates an error when a release would replace a section
// that is already released.
func VersionExists(version string, err error) *CLIError {
	return &CLIError{
		Category: Argument,
		Message:  fmt.Sprintf("version %s is already released", version),
		Usage:    "keepachangelog release [MAJOR.MINOR.PATCH[-PRERELEASE][+BUILD]]",
		Remediation: []string{
			"Pick a version that is not in the changelog yet",
			"Run 'keepachangelog next' to see the computed version",
		},
		Err: err,
	}
}

// VersionNotFound creates an error when a requested version is not in the changelog.
func VersionNotFound(version string, available []string, err error) *CLIError {
	hint := "The changelog has no versions yet"
	if len(available) > 0 {
		hint = "Available versions: " + strings.Join(available, ", ")
	}
	return &CLIError{
		Category:    Argument,
		Message:     fmt.Sprintf("version not found: %s", version),
		Remediation: []string{hint, "Versions are matched case-insensitively, a leading \"v\" is ignored"},
		Err:         err,
	}
}

// AmbiguousUnreleased creates an error when more than one section lacks a release date.
func AmbiguousUnreleased(versions []string, err error) *CLIError {
	return &CLIError{
		Category: Document,
		Message:  fmt.Sprintf("more than one unreleased section: %s", strings.Join(versions, ", ")),
		Remediation: []string{
			"Keep a single \"## [Unreleased]\" section",
			"Add a release date to the other sections: ## [1.0.0] - 2020-01-01",
		},
		Err: err,
	}
}

// NonSemanticHistory creates an error when the latest release cannot be bumped.
func NonSemanticHistory(err error) *CLIError {
	return WrapWithMessage(err, Document,
		"cannot compute the next version",
		"Pass the version explicitly: keepachangelog release 2.0.0",
		"Or rename the latest release to a semantic version",
	)
}

// UnmatchingRecord creates an error when a record's structured version
// disagrees with its version string.
func UnmatchingRecord(err error) *CLIError {
	return WrapWithMessage(err, Document,
		"invalid changelog records",
		"Make \"semantic_version\" agree with \"version\", build metadata included",
		"Or drop \"semantic_version\" from the record",
	)
}

// ConfigParseError creates an error for invalid config file format.
func ConfigParseError(path string, err error) *CLIError {
	return WrapWithMessage(err, Configuration,
		fmt.Sprintf("failed to parse config file: %s", path),
		"Check the file for syntax errors",
		"Supported formats: .yml, .yaml, .json, .toml",
	)
}

// InvalidFlagCombination creates an error for incompatible flag combinations.
func InvalidFlagCombination(flags string, reason string) *CLIError {
	return NewArgumentError(
		fmt.Sprintf("invalid flag combination: %s", flags),
		reason,
		"Use 'keepachangelog <command> --help' to see valid options",
	)
}

// InvalidDate creates an error for a --date flag that is not YYYY-MM-DD.
func InvalidDate(value string) *CLIError {
	return NewArgumentErrorWithUsage(
		fmt.Sprintf("invalid release date: %s", value),
		"keepachangelog release --date YYYY-MM-DD",
		"Example: keepachangelog release --date 2024-01-31",
	)
}

// TimeoutError creates an error when fetching a remote changelog times out.
func TimeoutError(duration string, source string, err error) *CLIError {
	return &CLIError{
		Category: Runtime,
		Message:  fmt.Sprintf("timed out after %s fetching %s", duration, source),
		Remediation: []string{
			"Increase the timeout: KEEPACHANGELOG_REMOTE_TIMEOUT=30s",
			"Or set \"remote_timeout\" in .keepachangelog.yml",
		},
		Err: err,
	}
}

// FileNotWritable creates an error when a file cannot be written.
func FileNotWritable(path string, err error) *CLIError {
	return WrapWithMessage(err, Runtime,
		fmt.Sprintf("cannot write to file: %s", path),
		"Check file permissions: ls -la "+path,
		"Ensure parent directory exists and is writable",
	)
}

// GitNotRepository creates an error when --tag is used outside a git repository.
func GitNotRepository() *CLIError {
	return NewArgumentError(
		"not a git repository",
		"Run the release from inside the repository",
		"Or drop --tag and tag the release yourself",
	)
}

// TagExists creates an error when the release tag is already present.
func TagExists(tag string) *CLIError {
	return NewRuntimeError(
		fmt.Sprintf("tag already exists: %s", tag),
		"Release a different version, or delete the tag: git tag -d "+tag,
		"List tags with: git tag --list",
	)
}
