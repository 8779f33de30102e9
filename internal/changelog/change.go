package changelog

import (
	"strings"
)

// Change is one version section. It keeps two views of the same content:
// the notes sorted into category slots, and the verbatim source lines that
// followed the release header.
type Change struct {
	Metadata

	notes   [categoryCount]Category
	indents [categoryCount][]int // bullet indentation of each note
	raw     []string
}

// NewChange returns an empty section for the given metadata.
func NewChange(m Metadata) *Change {
	return &Change{Metadata: m}
}

// Category returns the notes of kind k.
func (c *Change) Category(k CategoryKind) Category {
	if k < 0 || k >= categoryCount {
		return nil
	}
	return c.notes[k]
}

// Add appends notes to slot k without touching the raw buffer.
func (c *Change) Add(k CategoryKind, notes ...string) {
	if k < 0 || k >= categoryCount {
		return
	}
	c.notes[k] = append(c.notes[k], notes...)
	c.indents[k] = append(c.indents[k], make([]int, len(notes))...)
}

// Streamline records a body line: verbatim in the raw buffer, and as a note
// of kind k when it carries one.
func (c *Change) Streamline(k CategoryKind, line string) {
	c.raw = append(c.raw, line)
	if k < 0 || k >= categoryCount {
		return
	}
	n := len(c.notes[k])
	c.notes[k].Streamline(line)
	if len(c.notes[k]) > n {
		c.indents[k] = append(c.indents[k], indentWidth(line))
	}
}

// NoteDepths returns the nesting depth of each note of kind k. A note is
// nested below the closest earlier note with a smaller indentation.
func (c *Change) NoteDepths(k CategoryKind) []int {
	if k < 0 || k >= categoryCount {
		return nil
	}
	indents := c.indents[k]
	depths := make([]int, len(indents))
	var open []int
	for i, w := range indents {
		for len(open) > 0 && open[len(open)-1] >= w {
			open = open[:len(open)-1]
		}
		depths[i] = len(open)
		open = append(open, w)
	}
	return depths
}

// NoteTree returns the notes of kind k arranged by nesting.
func (c *Change) NoteTree(k CategoryKind) []*NoteNode {
	return BuildNoteTree(c.Category(k), c.NoteDepths(k))
}

// appendRaw records a structural line such as a category header.
func (c *Change) appendRaw(line string) {
	c.raw = append(c.raw, line)
}

// Raw returns the verbatim body lines.
func (c *Change) Raw() []string {
	return c.raw
}

// RawText returns the non-blank body lines, each terminated by a newline.
func (c *Change) RawText() string {
	var b strings.Builder
	for _, line := range c.raw {
		if strings.TrimSpace(line) == "" {
			continue
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}

// IsEmpty reports whether no slot holds a note.
func (c *Change) IsEmpty() bool {
	return c.Count() == 0
}

// Count returns the number of notes across all slots.
func (c *Change) Count() int {
	n := 0
	for _, notes := range c.notes {
		n += len(notes)
	}
	return n
}

// Entries flattens the notes into entries, uncategorized first and then in
// category order.
func (c *Change) Entries() []Entry {
	var entries []Entry
	for _, k := range append([]CategoryKind{Uncategorized}, Categories()...) {
		depths := c.NoteDepths(k)
		for i, note := range c.notes[k] {
			entries = append(entries, Entry{Text: note, Category: k, Version: c.Version, Depth: depths[i]})
		}
	}
	return entries
}

// ToDict returns the dictionary form of the section: a "metadata" object plus
// either one array per non-empty slot or a single "raw" text.
func (c *Change) ToDict(raw bool) map[string]any {
	out := map[string]any{
		"metadata": c.Metadata.ToDict(),
	}
	if raw {
		out["raw"] = c.RawText()
		return out
	}
	for k, notes := range c.notes {
		if len(notes) > 0 {
			out[CategoryKind(k).String()] = []string(notes)
		}
	}
	return out
}

// Entry is a single note with its category and version. Depth is 0 for a
// top-level note and grows by one per nesting level.
type Entry struct {
	Text     string
	Category CategoryKind
	Version  string
	Depth    int
}
