package changelog

import (
	"fmt"
	"strings"
)

// VersionNotFoundError is returned when a requested version doesn't exist.
type VersionNotFoundError struct {
	Version           string
	AvailableVersions []string
}

func (e *VersionNotFoundError) Error() string {
	return fmt.Sprintf("version %q not found (available: %s)",
		e.Version, strings.Join(e.AvailableVersions, ", "))
}

// NormalizeVersion lower-cases a version and strips a leading "v" so that
// "v1.2.0" and "1.2.0" refer to the same section.
func NormalizeVersion(version string) string {
	return strings.TrimPrefix(strings.ToLower(strings.TrimSpace(version)), "v")
}

// GetVersion retrieves a specific section.
// Accepts both "v0.6.0" and "0.6.0" formats (normalizes the input).
// Returns VersionNotFoundError if the version doesn't exist.
func (c *Changelog) GetVersion(version string) (*Change, error) {
	if ch, ok := c.Get(version); ok {
		return ch, nil
	}

	normalized := NormalizeVersion(version)
	for _, ch := range c.Changes() {
		if NormalizeVersion(ch.Version) == normalized {
			return ch, nil
		}
	}

	return nil, &VersionNotFoundError{
		Version:           version,
		AvailableVersions: c.ListVersions(),
	}
}

// GetUnreleased retrieves the unreleased section.
// Returns nil if there is none or it is ambiguous.
func (c *Changelog) GetUnreleased() *Change {
	ch, err := c.UnreleasedUnique()
	if err != nil {
		return nil
	}
	if _, ok := c.Get(ch.Version); !ok {
		return nil
	}
	return ch
}

// ListVersions returns the version labels in sorted order (unreleased first,
// then newest first).
func (c *Changelog) ListVersions() []string {
	sorted := c.SortedChanges()
	versions := make([]string, len(sorted))
	for i, ch := range sorted {
		versions[i] = ch.Version
	}
	return versions
}

// GetLastN retrieves the N most recent entries across all versions.
// Entries are returned newest first.
// If N is greater than the total number of entries, all entries are returned.
func (c *Changelog) GetLastN(n int) []Entry {
	if n <= 0 {
		return []Entry{}
	}

	entries := c.AllEntries()
	if len(entries) <= n {
		return entries
	}
	return entries[:n]
}

// AllEntries returns all entries from all versions, newest first.
// Entries within each version start with uncategorized notes and then follow
// category order: added, changed, deprecated, removed, fixed, security.
func (c *Changelog) AllEntries() []Entry {
	var entries []Entry
	for _, ch := range c.SortedChanges() {
		entries = append(entries, ch.Entries()...)
	}
	return entries
}

// GetEntryCount returns the total number of entries across all versions.
func (c *Changelog) GetEntryCount() int {
	count := 0
	for _, ch := range c.Changes() {
		count += ch.Count()
	}
	return count
}

// HasUnreleased returns true if the changelog has a non-empty unreleased section.
func (c *Changelog) HasUnreleased() bool {
	ch := c.GetUnreleased()
	return ch != nil && !ch.IsEmpty()
}

// GetLatestRelease returns the most recent released version.
// Returns nil if there are no released versions.
func (c *Changelog) GetLatestRelease() *Change {
	current := c.CurrentVersion()
	if current == nil || !current.IsReleased() {
		return nil
	}
	return current
}
