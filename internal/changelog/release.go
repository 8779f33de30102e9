package changelog

import (
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/ariel-frischer/keepachangelog/internal/semver"
)

// ErrNothingToRelease is returned by Release when the unreleased section holds
// no notes. The document is left untouched.
var ErrNothingToRelease = errors.New("nothing to release")

// ErrUnreleasedKey is returned by Release when asked to release under the
// name of the unreleased section.
var ErrUnreleasedKey = errors.New("cannot release under the unreleased key")

// ErrVersionExists is returned by Release when the target version is already
// a released section with content of its own.
var ErrVersionExists = errors.New("version already released")

// AmbiguousUnreleasedError is returned when more than one section lacks
// release information.
type AmbiguousUnreleasedError struct {
	Versions []string
}

func (e *AmbiguousUnreleasedError) Error() string {
	return fmt.Sprintf("more than one unreleased section found: %s", strings.Join(e.Versions, ", "))
}

// comparePattern splits a compare link ".../<from>...<to><rest>".
var comparePattern = regexp.MustCompile(`^(.*/)([^/]*)\.\.\.(\w*)(.*)$`)

// CurrentVersion returns the section with the highest version, released
// sections first. It returns nil for an empty document.
func (c *Changelog) CurrentVersion() *Change {
	var current *Change
	for _, ch := range c.Changes() {
		if current == nil || outranks(ch, current) {
			current = ch
		}
	}
	return current
}

func outranks(a, b *Change) bool {
	if a.IsReleased() != b.IsReleased() {
		return a.IsReleased()
	}
	return b.SemanticVersionStrict().Less(a.SemanticVersionStrict())
}

// UnreleasedUnique returns the single section without release information.
// When there is none it returns an empty, detached placeholder.
func (c *Changelog) UnreleasedUnique() (*Change, error) {
	var pending []*Change
	for _, ch := range c.Changes() {
		if !ch.IsReleased() {
			pending = append(pending, ch)
		}
	}

	switch len(pending) {
	case 0:
		return NewChange(Metadata{Version: "Unreleased"}), nil
	case 1:
		return pending[0], nil
	}

	versions := make([]string, len(pending))
	for i, ch := range pending {
		versions[i] = ch.Version
	}
	return nil, &AmbiguousUnreleasedError{Versions: versions}
}

// NextVersion computes the version the unreleased section would be released
// as. A prerelease is promoted to its stable release. Otherwise removed or
// changed notes bump the major version, fixes alone bump the patch version and
// anything else bumps the minor version.
func (c *Changelog) NextVersion() (semver.Version, error) {
	unreleased, err := c.UnreleasedUnique()
	if err != nil {
		return semver.Version{}, err
	}

	var base semver.Version
	if current := c.CurrentVersion(); current != nil && current.IsReleased() {
		base, err = semver.Parse(current.Version)
		if err != nil {
			return semver.Version{}, err
		}
	}

	if base.Prerelease != "" {
		return base.Release(), nil
	}

	switch {
	case len(unreleased.Category(Removed)) > 0 || len(unreleased.Category(Changed)) > 0:
		return base.BumpMajor(), nil
	case len(unreleased.Category(Fixed)) > 0 && len(unreleased.Category(Fixed)) == unreleased.Count():
		return base.BumpPatch(), nil
	default:
		return base.BumpMinor(), nil
	}
}

// Release promotes the unreleased section to version, dated today. An empty
// version means NextVersion. It returns the version released.
func (c *Changelog) Release(version string) (string, error) {
	return c.ReleaseOn(version, time.Now())
}

// ReleaseOn is Release with an explicit release day.
//
// The unreleased section is re-keyed under the new version and a fresh empty
// unreleased section takes its place. A compare link on the unreleased section
// is split into the released range and a new unreleased range.
func (c *Changelog) ReleaseOn(version string, day time.Time) (string, error) {
	unreleased, err := c.UnreleasedUnique()
	if err != nil {
		return "", err
	}
	if unreleased.IsEmpty() {
		return "", ErrNothingToRelease
	}

	if version == "" {
		next, err := c.NextVersion()
		if err != nil {
			return "", err
		}
		version = next.String()
	}
	if strings.ToLower(version) == unreleased.Key() || strings.ToLower(version) == Unreleased {
		return "", fmt.Errorf("%w %q", ErrUnreleasedKey, version)
	}

	var currentVersion string
	if current := c.CurrentVersion(); current != nil && current.IsReleased() {
		currentVersion = current.Version
	}

	stray, hasStray := c.Get(version)
	if hasStray && holdsRelease(stray) {
		return "", fmt.Errorf("%w: %s", ErrVersionExists, version)
	}

	releasedURL, unreleasedURL := rewriteURL(unreleased.URL, currentVersion, version)
	if hasStray && releasedURL == "" {
		releasedURL = stray.URL
	}

	placeholder := NewChange(Metadata{Version: unreleased.Version, URL: unreleasedURL})
	placeholder.appendRaw("")
	c.Set(placeholder)

	unreleased.Version = version
	unreleased.ReleaseDate = NewReleaseDate(day)
	unreleased.URL = releasedURL
	c.insertAfter(placeholder.Key(), unreleased)

	return version, nil
}

// holdsRelease reports whether ch carries more than a link: notes, a body or
// a release date. Only link-only sections may be replaced by a release.
func holdsRelease(ch *Change) bool {
	return !ch.IsEmpty() || ch.RawText() != "" || !ch.ReleaseDate.IsZero()
}

// rewriteURL returns the link of the released section and the new link of
// the unreleased section. Links that are not compare links, or documents
// without a prior release, are kept as they are.
func rewriteURL(url, currentVersion, newVersion string) (released, unreleased string) {
	if url == "" {
		return "", ""
	}
	m := comparePattern.FindStringSubmatch(url)
	if m == nil || currentVersion == "" {
		return url, url
	}

	fromTag := m[2]
	released = m[1] + fromTag + "..." + strings.ReplaceAll(fromTag, currentVersion, newVersion) + m[4]
	unreleased = strings.ReplaceAll(url, currentVersion, newVersion)
	return released, unreleased
}

// SortedChanges returns unreleased sections first, in document order, then
// released sections newest first.
func (c *Changelog) SortedChanges() []*Change {
	var pending, released []*Change
	for _, ch := range c.Changes() {
		if ch.IsReleased() {
			released = append(released, ch)
		} else {
			pending = append(pending, ch)
		}
	}

	sort.SliceStable(released, func(i, j int) bool {
		return released[j].SemanticVersionStrict().Less(released[i].SemanticVersionStrict())
	})

	return append(pending, released...)
}
