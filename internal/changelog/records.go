package changelog

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/ariel-frischer/keepachangelog/internal/semver"
)

// MetadataRecord is the decoded "metadata" object of the dictionary form.
type MetadataRecord struct {
	Version         string          `json:"version" yaml:"version"`
	ReleaseDate     *string         `json:"release_date" yaml:"release_date"`
	SemanticVersion *semver.Version `json:"semantic_version" yaml:"semantic_version"`
	URL             string          `json:"url" yaml:"url"`
}

// ChangeRecord is one decoded section of the dictionary form.
type ChangeRecord struct {
	Metadata      MetadataRecord `json:"metadata" yaml:"metadata"`
	Uncategorized []string       `json:"uncategorized" yaml:"uncategorized"`
	Added         []string       `json:"added" yaml:"added"`
	Changed       []string       `json:"changed" yaml:"changed"`
	Deprecated    []string       `json:"deprecated" yaml:"deprecated"`
	Removed       []string       `json:"removed" yaml:"removed"`
	Fixed         []string       `json:"fixed" yaml:"fixed"`
	Security      []string       `json:"security" yaml:"security"`
	Raw           string         `json:"raw" yaml:"raw"`
}

func (r ChangeRecord) notes(k CategoryKind) []string {
	switch k {
	case Uncategorized:
		return r.Uncategorized
	case Added:
		return r.Added
	case Changed:
		return r.Changed
	case Deprecated:
		return r.Deprecated
	case Removed:
		return r.Removed
	case Fixed:
		return r.Fixed
	case Security:
		return r.Security
	}
	return nil
}

// DecodeRecordsJSON reads records in the dictionary form from JSON.
func DecodeRecordsJSON(r io.Reader) (map[string]ChangeRecord, error) {
	var records map[string]ChangeRecord
	if err := json.NewDecoder(r).Decode(&records); err != nil {
		return nil, fmt.Errorf("decoding JSON records: %w", err)
	}
	return records, nil
}

// DecodeRecordsYAML reads records in the dictionary form from YAML.
func DecodeRecordsYAML(r io.Reader) (map[string]ChangeRecord, error) {
	var records map[string]ChangeRecord
	if err := yaml.NewDecoder(r).Decode(&records); err != nil {
		return nil, fmt.Errorf("decoding YAML records: %w", err)
	}
	return records, nil
}

// NewChangeFromRecord builds a section from a decoded record. A structured
// semantic version must agree with the version string. A record holding raw
// text has its notes re-derived from that text.
func NewChangeFromRecord(r ChangeRecord) (*Change, error) {
	m, err := NewMetadata(r.Metadata.Version, r.Metadata.SemanticVersion)
	if err != nil {
		return nil, err
	}
	if r.Metadata.ReleaseDate != nil {
		m.ReleaseDate = ParseReleaseDate(*r.Metadata.ReleaseDate)
	}
	m.URL = r.Metadata.URL

	ch := NewChange(m)
	if r.Raw != "" {
		k := Uncategorized
		for _, line := range splitLines(r.Raw) {
			k = streamlineBody(ch, k, line)
		}
		if n := len(ch.raw); n == 0 || strings.TrimSpace(ch.raw[n-1]) != "" {
			ch.appendRaw("")
		}
		return ch, nil
	}

	for _, k := range append([]CategoryKind{Uncategorized}, Categories()...) {
		ch.Add(k, r.notes(k)...)
	}
	ch.raw = append(renderBody(ch), "")
	return ch, nil
}

// FromRecords builds a document with the standard preamble from decoded
// records. Sections are ordered unreleased first, then newest first.
func FromRecords(records map[string]ChangeRecord) (*Changelog, error) {
	keys := make([]string, 0, len(records))
	for key := range records {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	staged := New()
	for _, key := range keys {
		r := records[key]
		if r.Metadata.Version == "" && r.Metadata.SemanticVersion == nil {
			r.Metadata.Version = key
		}
		ch, err := NewChangeFromRecord(r)
		if err != nil {
			return nil, fmt.Errorf("record %q: %w", key, err)
		}
		staged.Set(ch)
	}

	c := New()
	c.Header = append(DefaultHeader(), "")
	for _, ch := range staged.SortedChanges() {
		c.Set(ch)
	}
	return c, nil
}
