package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/ariel-frischer/keepachangelog/internal/changelog"
	clierrors "github.com/ariel-frischer/keepachangelog/internal/errors"
	"github.com/ariel-frischer/keepachangelog/internal/semver"
)

// Exit codes for the keepachangelog CLI
// These codes support programmatic composition and CI/CD integration
const (
	// ExitSuccess indicates successful command execution
	ExitSuccess = 0

	// ExitFailure indicates a generic failure such as an unwritable file
	ExitFailure = 1

	// ExitInvalidArguments indicates invalid command arguments, including
	// unknown versions and missing changelog files
	ExitInvalidArguments = 3

	// ExitInvalidDocument indicates the changelog cannot be used as asked,
	// such as an ambiguous unreleased section
	ExitInvalidDocument = 4

	// ExitTimeout indicates a remote changelog could not be fetched in time
	ExitTimeout = 5
)

// ExitError ends the command with a specific exit code. Commands that have
// already reported the problem return one without Err.
type ExitError struct {
	Code int
	Err  error
}

// NewExitError returns an ExitError for a problem already reported to the user.
func NewExitError(code int) *ExitError {
	return &ExitError{Code: code}
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return fmt.Sprintf("exit status %d", e.Code)
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// ExitCode maps an error returned by Execute to the process exit code.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return ExitTimeout
	}

	if cliErr := clierrors.AsCLIError(err); cliErr != nil {
		switch cliErr.Category {
		case clierrors.Argument:
			return ExitInvalidArguments
		case clierrors.Document:
			return ExitInvalidDocument
		}
	}

	var (
		invalid    *semver.InvalidVersionError
		notFound   *changelog.VersionNotFoundError
		ambiguous  *changelog.AmbiguousUnreleasedError
		unmatching *changelog.UnmatchingSemanticVersionError
	)
	switch {
	case errors.As(err, &invalid), errors.As(err, &notFound), errors.Is(err, changelog.ErrUnreleasedKey),
		errors.Is(err, changelog.ErrVersionExists):
		return ExitInvalidArguments
	case errors.As(err, &ambiguous), errors.As(err, &unmatching):
		return ExitInvalidDocument
	}

	return ExitFailure
}
