package changelog

import (
	"time"
)

// DateKind identifies which variant a ReleaseDate holds.
type DateKind int

const (
	// DateAbsent means the release line carried no date at all.
	DateAbsent DateKind = iota
	// DateParsed means the date text matched one of the accepted layouts.
	DateParsed
	// DateText means date text was present but matched no accepted layout.
	DateText
)

// isoLayout is the layout of dates written by a release and of the dictionary form.
const isoLayout = "2006-01-02"

// acceptedLayouts are tried in order; the first one that parses wins.
var acceptedLayouts = []string{
	"2006-1-2",        // 2020-10-09
	"2-1-2006",        // 09-10-2020
	"2006/1/2",        // 2020/10/09
	"2/1/2006",        // 09/10/2020
	"Jan 2, 2006",     // Oct 9, 2020
	"January 2, 2006", // October 9, 2020
	"Jan 2 2006",      // Oct 9 2020
	"January 2 2006",  // October 9 2020
}

// ReleaseDate is the date of a release section. It is either absent, a
// calendar date, or the opaque text found in the release line when that text
// could not be parsed. The original text is always kept for raw output.
type ReleaseDate struct {
	kind DateKind
	t    time.Time
	raw  string
}

// NewReleaseDate returns a parsed date for the calendar day of t.
func NewReleaseDate(t time.Time) ReleaseDate {
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	return ReleaseDate{kind: DateParsed, t: day, raw: day.Format(isoLayout)}
}

// UnparsedReleaseDate returns a date that only carries text.
func UnparsedReleaseDate(text string) ReleaseDate {
	if text == "" {
		return ReleaseDate{}
	}
	return ReleaseDate{kind: DateText, raw: text}
}

// ParseReleaseDate tries every accepted layout against text and falls back to
// an unparsed date. Empty text yields an absent date.
func ParseReleaseDate(text string) ReleaseDate {
	if text == "" {
		return ReleaseDate{}
	}
	for _, layout := range acceptedLayouts {
		if t, err := time.Parse(layout, text); err == nil {
			return ReleaseDate{kind: DateParsed, t: t, raw: text}
		}
	}
	return UnparsedReleaseDate(text)
}

// Kind reports which variant d holds.
func (d ReleaseDate) Kind() DateKind {
	return d.kind
}

// IsZero reports whether the date is absent.
func (d ReleaseDate) IsZero() bool {
	return d.kind == DateAbsent
}

// Time returns the parsed date and true, or the zero time and false when the
// date is absent or unparsed.
func (d ReleaseDate) Time() (time.Time, bool) {
	if d.kind != DateParsed {
		return time.Time{}, false
	}
	return d.t, true
}

// Raw returns the date text exactly as it appeared in the release line.
func (d ReleaseDate) Raw() string {
	return d.raw
}

// String returns the ISO form of a parsed date, the opaque text of an
// unparsed one, or "" when absent.
func (d ReleaseDate) String() string {
	switch d.kind {
	case DateParsed:
		return d.t.Format(isoLayout)
	case DateText:
		return d.raw
	default:
		return ""
	}
}
