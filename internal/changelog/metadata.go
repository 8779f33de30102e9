package changelog

import (
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/ariel-frischer/keepachangelog/internal/semver"
)

// Unreleased is the version key of the pending section.
const Unreleased = "unreleased"

var (
	datedReleasePattern = regexp.MustCompile(`^## \[(.*)\] - (\d{4})-(\d{2})-(\d{2})\s*$`)
	namedReleasePattern = regexp.MustCompile(`^## \[(.*)\]\s*$`)
)

// UnmatchingSemanticVersionError is returned when an explicit structured
// version disagrees with the version string it was supplied with.
type UnmatchingSemanticVersionError struct {
	Version         string
	SemanticVersion semver.Version
}

func (e *UnmatchingSemanticVersionError) Error() string {
	return fmt.Sprintf("semantic version %s does not match version %s", e.SemanticVersion, e.Version)
}

// Metadata describes one version section: its version label, release date
// and comparison link.
type Metadata struct {
	Version     string
	ReleaseDate ReleaseDate
	URL         string

	// line is the release header as read, if any.
	line string
}

// NewMetadata builds metadata for version. When sv is non-nil it must match
// version exactly, build metadata included. An empty version takes the string
// form of sv, except for the 0.0.0 sentinel which stays empty.
func NewMetadata(version string, sv *semver.Version) (Metadata, error) {
	if sv == nil {
		return Metadata{Version: version}, nil
	}
	if version == "" {
		if sv.IsZero() {
			return Metadata{}, nil
		}
		return Metadata{Version: sv.String()}, nil
	}

	parsed, err := semver.Parse(version)
	if err != nil || parsed != *sv {
		return Metadata{}, &UnmatchingSemanticVersionError{Version: version, SemanticVersion: *sv}
	}
	return Metadata{Version: version}, nil
}

// ParseReleaseLine reads a "## ..." line. Strict "## [NAME]" and
// "## [VERSION] - YYYY-MM-DD" headers are recognized first; anything else
// goes through the best-effort reader, which never fails.
func ParseReleaseLine(line string) Metadata {
	m := parseReleaseLine(line)
	m.line = line
	return m
}

func parseReleaseLine(line string) Metadata {
	if m := datedReleasePattern.FindStringSubmatch(line); m != nil {
		raw := m[2] + "-" + m[3] + "-" + m[4]
		if t, err := time.Parse(isoLayout, raw); err == nil {
			return Metadata{Version: m[1], ReleaseDate: ReleaseDate{kind: DateParsed, t: t, raw: raw}}
		}
		// Impossible calendar dates like 2020-13-45 are kept as text below.
	} else if m := namedReleasePattern.FindStringSubmatch(line); m != nil {
		return Metadata{Version: m[1]}
	}
	return parseReleaseLineBestEffort(line)
}

// parseReleaseLineBestEffort handles shapes like "## 1.0.0 (2017-01-01)" and
// "## [1.0.1] - May 01, 2018".
func parseReleaseLineBestEffort(line string) Metadata {
	rest := ""
	if len(line) > 3 {
		rest = strings.TrimSpace(line[3:])
	}

	version, dateText := rest, ""
	if i := strings.IndexFunc(rest, unicode.IsSpace); i >= 0 {
		_, size := utf8.DecodeRuneInString(rest[i:])
		version, dateText = rest[:i], rest[i+size:]
	}

	return Metadata{
		Version:     trimDecoration(version),
		ReleaseDate: ParseReleaseDate(trimDecoration(dateText)),
	}
}

// trimDecoration strips surrounding whitespace and ASCII punctuation, such as
// the brackets around a version or the parentheses around a date.
func trimDecoration(s string) string {
	return strings.TrimFunc(s, func(r rune) bool {
		return unicode.IsSpace(r) || r < unicode.MaxASCII && (unicode.IsPunct(r) || unicode.IsSymbol(r))
	})
}

// Key is the case-insensitive map key of the section.
func (m Metadata) Key() string {
	return strings.ToLower(m.Version)
}

// IsUnreleased reports whether the version is the unreleased sentinel.
func (m Metadata) IsUnreleased() bool {
	return m.Key() == Unreleased
}

// IsReleased reports whether the section is a real release: it is not the
// unreleased sentinel and it carries a date or a link.
func (m Metadata) IsReleased() bool {
	return !m.IsUnreleased() && (!m.ReleaseDate.IsZero() || m.URL != "")
}

// IsNamedVersion reports whether the version is a label such as "master"
// rather than a semantic version.
func (m Metadata) IsNamedVersion() bool {
	_, ok := m.SemanticVersion()
	return m.Version != "" && !ok
}

// SemanticVersion parses the version. The empty version parses to 0.0.0.
func (m Metadata) SemanticVersion() (semver.Version, bool) {
	v, err := semver.Parse(m.Version)
	if err != nil {
		return semver.Version{}, false
	}
	return v, true
}

// SemanticVersionStrict is SemanticVersion with semver.Floor in place of a
// parse failure, so that every section can be ordered.
func (m Metadata) SemanticVersionStrict() semver.Version {
	if v, ok := m.SemanticVersion(); ok {
		return v
	}
	return semver.Floor
}

// ReleaseLine renders the "## [Version] - date" header of the section. The
// date text is written as it was read.
func (m Metadata) ReleaseLine() string {
	if m.ReleaseDate.IsZero() {
		return "## [" + m.Version + "]"
	}
	return "## [" + m.Version + "] - " + m.ReleaseDate.Raw()
}

// RawReleaseLine is ReleaseLine, except that a header read in that exact form
// is returned as it was read, trailing whitespace included.
func (m Metadata) RawReleaseLine() string {
	line := m.ReleaseLine()
	if m.line != "" && strings.TrimRightFunc(m.line, unicode.IsSpace) == line {
		return m.line
	}
	return line
}

// ToDict returns the "metadata" object of the dictionary form.
func (m Metadata) ToDict() map[string]any {
	out := map[string]any{
		"version": m.Key(),
	}
	if !m.ReleaseDate.IsZero() {
		out["release_date"] = m.ReleaseDate.String()
	} else if m.IsNamedVersion() {
		out["release_date"] = nil
	}
	if v, ok := m.SemanticVersion(); ok {
		out["semantic_version"] = v.ToMap(true)
	}
	if m.URL != "" {
		out["url"] = m.URL
	}
	return out
}
