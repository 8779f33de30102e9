package errors

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

// palette styles the parts of a printed CLIError.
type palette struct {
	label, message, category, usageLabel, usage, fixLabel, bullet func(a ...any) string
}

// colored follows fatih/color's detection, so it degrades to plain text
// when stderr is not a terminal or NO_COLOR is set.
var colored = palette{
	label:      color.New(color.FgRed, color.Bold).SprintFunc(),
	message:    color.New(color.FgRed).SprintFunc(),
	category:   color.New(color.FgYellow).SprintFunc(),
	usageLabel: color.New(color.FgCyan, color.Bold).SprintFunc(),
	usage:      color.New(color.FgCyan).SprintFunc(),
	fixLabel:   color.New(color.FgGreen, color.Bold).SprintFunc(),
	bullet:     color.New(color.FgGreen).SprintFunc(),
}

var plain = palette{
	label:      fmt.Sprint,
	message:    fmt.Sprint,
	category:   fmt.Sprint,
	usageLabel: fmt.Sprint,
	usage:      fmt.Sprint,
	fixLabel:   fmt.Sprint,
	bullet:     fmt.Sprint,
}

// FormatError renders err as keepachangelog prints it on stderr:
//
//	Error [Argument Error]: version 9.9.9 not found
//
//	To fix this:
//	  • Available versions: 1.1.0, 1.0.0
func FormatError(err *CLIError) string {
	if err == nil {
		return ""
	}
	return formatError(err, colored)
}

// FormatErrorPlain is FormatError without colors.
func FormatErrorPlain(err *CLIError) string {
	if err == nil {
		return ""
	}
	return formatError(err, plain)
}

func formatError(err *CLIError, p palette) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "%s [%s]: %s\n", p.label("Error"), p.category(err.Category.String()), p.message(err.Message))

	if err.Usage != "" {
		fmt.Fprintf(&sb, "\n%s%s\n", p.usageLabel("Usage: "), p.usage(err.Usage))
	}

	if len(err.Remediation) > 0 {
		fmt.Fprintf(&sb, "\n%s\n", p.fixLabel("To fix this:"))
		for _, step := range err.Remediation {
			fmt.Fprintf(&sb, "  %s %s\n", p.bullet("•"), step)
		}
	}

	return sb.String()
}

// FprintError writes err to w, in color unless plainOutput is set.
func FprintError(w io.Writer, err *CLIError, plainOutput bool) {
	if err == nil {
		return
	}
	p := colored
	if plainOutput {
		p = plain
	}
	fmt.Fprint(w, formatError(err, p))
}

// FprintAny writes err to w. The first CLIError in the chain is printed with
// its remediation; any other error is printed as a Runtime error.
func FprintAny(w io.Writer, err error, plainOutput bool) {
	if err == nil {
		return
	}
	cliErr := AsCLIError(err)
	if cliErr == nil {
		cliErr = &CLIError{Category: Runtime, Message: err.Error(), Err: err}
	}
	FprintError(w, cliErr, plainOutput)
}
