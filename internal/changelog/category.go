package changelog

import (
	"strings"
)

// CategoryKind names one of the fixed note slots of a section.
type CategoryKind int

const (
	// Uncategorized holds notes that precede any "### Category" header.
	Uncategorized CategoryKind = iota
	Added
	Changed
	Deprecated
	Removed
	Fixed
	Security

	categoryCount
)

var categoryNames = [categoryCount]string{
	Uncategorized: "uncategorized",
	Added:         "added",
	Changed:       "changed",
	Deprecated:    "deprecated",
	Removed:       "removed",
	Fixed:         "fixed",
	Security:      "security",
}

// Categories returns the six Keep a Changelog categories in rendering order.
// Uncategorized is not included.
func Categories() []CategoryKind {
	return []CategoryKind{Added, Changed, Deprecated, Removed, Fixed, Security}
}

// ValidCategories returns the lower-case names of the six categories.
func ValidCategories() []string {
	kinds := Categories()
	names := make([]string, len(kinds))
	for i, k := range kinds {
		names[i] = k.String()
	}
	return names
}

// ParseCategoryKind maps a header name to its kind, ignoring case and
// surrounding spaces.
func ParseCategoryKind(name string) (CategoryKind, bool) {
	name = strings.ToLower(strings.Trim(name, " "))
	for k, n := range categoryNames {
		if n == name {
			return CategoryKind(k), true
		}
	}
	return Uncategorized, false
}

func (k CategoryKind) String() string {
	if k < 0 || k >= categoryCount {
		return "unknown"
	}
	return categoryNames[k]
}

// Title returns the capitalized header name, e.g. "Added".
func (k CategoryKind) Title() string {
	return capitalizeFirst(k.String())
}

// Category is the ordered list of notes of one kind within a section.
type Category []string

// ExtractNote strips bullet decoration from a line: leading spaces, "*" and
// "-", and trailing spaces and "-".
func ExtractNote(line string) string {
	return strings.TrimRight(strings.TrimLeft(line, " *-"), " -")
}

// Streamline appends the note carried by line, if any.
func (c *Category) Streamline(line string) {
	if note := ExtractNote(line); note != "" {
		*c = append(*c, note)
	}
}
