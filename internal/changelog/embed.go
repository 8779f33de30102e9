package changelog

import (
	_ "embed"
)

//go:embed header.md
var embeddedHeader string

// DefaultHeader returns the standard Keep a Changelog preamble, one element
// per line, used when a document is built from records rather than parsed.
func DefaultHeader() []string {
	return splitLines(embeddedHeader)
}
