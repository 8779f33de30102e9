// Package errors defines the errors keepachangelog reports to the terminal.
//
// A CLIError pairs a message with the category of the problem and the steps
// that fix it. The category also selects the process exit status: argument
// problems (an unknown version, a bad --date, a missing changelog) exit with
// 3, document problems (two unreleased sections, a history that is not
// semantic, records that contradict their version) exit with 4, a remote
// changelog that does not arrive in time exits with 5, and other
// configuration and runtime problems exit with 1.
//
// Constructors for the situations keepachangelog runs into live in
// messages.go; the generic ones below serve one-off cases.
package errors

import (
	stderrors "errors"
	"fmt"
)

// ErrorCategory classifies a CLIError.
type ErrorCategory int

const (
	// Argument covers what the user typed: versions, dates, flags and the
	// changelog path.
	Argument ErrorCategory = iota
	// Configuration covers .keepachangelog.* files and KEEPACHANGELOG_* values.
	Configuration
	// Document covers changelogs that parse but cannot serve the request.
	Document
	// Runtime covers I/O, network and git failures.
	Runtime
)

var categoryNames = map[ErrorCategory]string{
	Argument:      "Argument Error",
	Configuration: "Configuration Error",
	Document:      "Document Error",
	Runtime:       "Runtime Error",
}

// String returns the label shown in brackets after "Error".
func (c ErrorCategory) String() string {
	if name, ok := categoryNames[c]; ok {
		return name
	}
	return "Error"
}

// CLIError is an error with a category, an optional usage line and the
// remediation steps printed under "To fix this:".
type CLIError struct {
	Category    ErrorCategory
	Message     string
	Remediation []string

	// Usage is the command synopsis, set for argument errors.
	Usage string
	// Err is the cause. It is not printed, but errors.Is and errors.As see it.
	Err error
}

// Error returns the message alone; the cause is already part of it when it
// matters to the user.
func (e *CLIError) Error() string {
	return e.Message
}

func (e *CLIError) Unwrap() error {
	return e.Err
}

func newError(category ErrorCategory, message string, remediation []string) *CLIError {
	return &CLIError{Category: category, Message: message, Remediation: remediation}
}

// NewArgumentError reports bad command input.
func NewArgumentError(message string, remediation ...string) *CLIError {
	return newError(Argument, message, remediation)
}

// NewArgumentErrorWithUsage is NewArgumentError with the command synopsis.
func NewArgumentErrorWithUsage(message, usage string, remediation ...string) *CLIError {
	e := newError(Argument, message, remediation)
	e.Usage = usage
	return e
}

// NewConfigError reports an unusable configuration value.
func NewConfigError(message string, remediation ...string) *CLIError {
	return newError(Configuration, message, remediation)
}

// NewDocumentError reports a changelog that cannot serve the request.
func NewDocumentError(message string, remediation ...string) *CLIError {
	return newError(Document, message, remediation)
}

// NewRuntimeError reports a failure outside the user's input.
func NewRuntimeError(message string, remediation ...string) *CLIError {
	return newError(Runtime, message, remediation)
}

// Wrap categorizes err, keeping its message. A nil err stays nil.
func Wrap(err error, category ErrorCategory, remediation ...string) *CLIError {
	if err == nil {
		return nil
	}
	e := newError(category, err.Error(), remediation)
	e.Err = err
	return e
}

// WrapWithMessage is Wrap with "message: " in front of err's text.
func WrapWithMessage(err error, category ErrorCategory, message string, remediation ...string) *CLIError {
	if err == nil {
		return nil
	}
	e := newError(category, fmt.Sprintf("%s: %v", message, err), remediation)
	e.Err = err
	return e
}

// IsCLIError reports whether err is, or wraps, a CLIError.
func IsCLIError(err error) bool {
	return AsCLIError(err) != nil
}

// AsCLIError returns the first CLIError in err's chain, or nil.
func AsCLIError(err error) *CLIError {
	var cliErr *CLIError
	if stderrors.As(err, &cliErr) {
		return cliErr
	}
	return nil
}
