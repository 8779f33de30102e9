// Package semver parses, orders and bumps semantic versions as they appear in
// changelog release headers.
//
// The grammar follows https://semver.org with one relaxation found in real
// changelogs: the prerelease separator may be "-", "." or, before a letter,
// omitted entirely, so "1.2.3-b1", "1.2.3.b1" and "1.2.3b1" all parse to the
// same value.
//
// Ordering is total over (major, minor, patch), then a release outranks any
// prerelease of the same triple, then prereleases compare as plain strings.
// Build metadata never takes part in ordering or equality.
package semver

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// prereleaseIdent is one dot-separated prerelease identifier.
const prereleaseIdent = `(?:0|[1-9]\d*|\d*[a-zA-Z-][0-9a-zA-Z-]*)`

// versionPattern is the semver.org reference expression with an optional
// prerelease separator. Without a separator the prerelease must start with a
// letter, so "1.2.03" is a leading zero and not the prerelease "3".
var versionPattern = regexp.MustCompile(
	`^(0|[1-9]\d*)\.(0|[1-9]\d*)\.(0|[1-9]\d*)` +
		`(?:[-.](` + prereleaseIdent + `(?:\.` + prereleaseIdent + `)*)` +
		`|([a-zA-Z][0-9a-zA-Z-]*(?:\.` + prereleaseIdent + `)*))?` +
		`(?:\+([0-9a-zA-Z-]+(?:\.[0-9a-zA-Z-]+)*))?$`,
)

// Version is an immutable semantic version. The zero value is 0.0.0, which
// doubles as the "unset" sentinel.
type Version struct {
	Major         int    `json:"major" yaml:"major"`
	Minor         int    `json:"minor" yaml:"minor"`
	Patch         int    `json:"patch" yaml:"patch"`
	Prerelease    string `json:"prerelease" yaml:"prerelease"`
	BuildMetadata string `json:"buildmetadata" yaml:"buildmetadata"`
}

// Floor sorts below every parseable version. It is never rendered.
var Floor = Version{Major: -1, Minor: -1, Patch: -1}

// InvalidVersionError is returned when a string does not follow the version
// grammar.
type InvalidVersionError struct {
	Version string
}

func (e *InvalidVersionError) Error() string {
	return fmt.Sprintf("%s is not following semantic versioning. Check https://semver.org for more information.", e.Version)
}

// Parse parses s. An empty string yields the zero version without error.
func Parse(s string) (Version, error) {
	if s == "" {
		return Version{}, nil
	}

	m := versionPattern.FindStringSubmatch(s)
	if m == nil {
		return Version{}, &InvalidVersionError{Version: s}
	}

	// The pattern guarantees digits; Atoi only fails on overflow.
	major, err := strconv.Atoi(m[1])
	if err != nil {
		return Version{}, &InvalidVersionError{Version: s}
	}
	minor, err := strconv.Atoi(m[2])
	if err != nil {
		return Version{}, &InvalidVersionError{Version: s}
	}
	patch, err := strconv.Atoi(m[3])
	if err != nil {
		return Version{}, &InvalidVersionError{Version: s}
	}

	return Version{
		Major:         major,
		Minor:         minor,
		Patch:         patch,
		Prerelease:    m[4] + m[5],
		BuildMetadata: m[6],
	}, nil
}

// MustParse is like Parse but panics on error. Intended for tests and constants.
func MustParse(s string) Version {
	v, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return v
}

// IsValid reports whether s parses as a version.
func IsValid(s string) bool {
	_, err := Parse(s)
	return err == nil
}

// Compare returns -1, 0 or +1 depending on whether a sorts before, equal to or
// after b.
func Compare(a, b Version) int {
	if c := compareInt(a.Major, b.Major); c != 0 {
		return c
	}
	if c := compareInt(a.Minor, b.Minor); c != 0 {
		return c
	}
	if c := compareInt(a.Patch, b.Patch); c != 0 {
		return c
	}

	switch {
	case a.Prerelease == b.Prerelease:
		return 0
	case a.Prerelease == "":
		return 1
	case b.Prerelease == "":
		return -1
	}
	// Plain string comparison, not the per-identifier precedence of semver.org.
	return strings.Compare(a.Prerelease, b.Prerelease)
}

func compareInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// Compare is the method form of the package-level Compare.
func (v Version) Compare(o Version) int {
	return Compare(v, o)
}

// Less reports whether v sorts before o.
func (v Version) Less(o Version) bool {
	return Compare(v, o) < 0
}

// Equal reports whether v and o have the same precedence. Build metadata is
// ignored.
func (v Version) Equal(o Version) bool {
	return Compare(v, o) == 0
}

// IsZero reports whether v is the 0.0.0 sentinel with no prerelease and no
// build metadata.
func (v Version) IsZero() bool {
	return v == Version{}
}

// BumpMajor returns (major+1).0.0.
func (v Version) BumpMajor() Version {
	return Version{Major: v.Major + 1}
}

// BumpMinor returns major.(minor+1).0.
func (v Version) BumpMinor() Version {
	return Version{Major: v.Major, Minor: v.Minor + 1}
}

// BumpPatch returns major.minor.(patch+1).
func (v Version) BumpPatch() Version {
	return Version{Major: v.Major, Minor: v.Minor, Patch: v.Patch + 1}
}

// Release drops the prerelease and build metadata, promoting a prerelease to
// its own stable release.
func (v Version) Release() Version {
	return Version{Major: v.Major, Minor: v.Minor, Patch: v.Patch}
}

// String returns MAJOR.MINOR.PATCH[-PRERELEASE][+BUILDMETADATA].
func (v Version) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d.%d.%d", v.Major, v.Minor, v.Patch)
	if v.Prerelease != "" {
		b.WriteString("-")
		b.WriteString(v.Prerelease)
	}
	if v.BuildMetadata != "" {
		b.WriteString("+")
		b.WriteString(v.BuildMetadata)
	}
	return b.String()
}

// ToMap returns the component map used by dictionary serialization. The zero
// sentinel yields nil unless force is set. Absent prerelease and build
// metadata are explicit nils.
func (v Version) ToMap(force bool) map[string]any {
	if v.IsZero() && !force {
		return nil
	}
	return map[string]any{
		"major":         v.Major,
		"minor":         v.Minor,
		"patch":         v.Patch,
		"prerelease":    optional(v.Prerelease),
		"buildmetadata": optional(v.BuildMetadata),
	}
}

func optional(s string) any {
	if s == "" {
		return nil
	}
	return s
}
