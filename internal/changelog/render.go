package changelog

import (
	"fmt"
	"io"
	"strings"
)

// ToMarkdown renders the document as Keep a Changelog Markdown.
//
// When raw is false each section body is re-derived from its notes. When raw
// is true the header and every section body are written exactly as they were
// read, so unmodified documents round-trip byte for byte.
func (c *Changelog) ToMarkdown(raw bool) string {
	var lines []string
	if raw {
		lines = append(lines, c.Header...)
	} else if header := trimTrailingBlank(c.Header); len(header) > 0 {
		lines = append(lines, header...)
		lines = append(lines, "")
	}

	for _, ch := range c.Changes() {
		if raw {
			lines = append(lines, ch.RawReleaseLine())
			lines = append(lines, ch.Raw()...)
		} else {
			lines = append(lines, ch.ReleaseLine())
			lines = append(lines, renderBody(ch)...)
			lines = append(lines, "")
		}
	}

	if !raw {
		lines = trimTrailingBlank(lines)
	}

	if links := c.linkLines(); len(links) > 0 {
		if !raw {
			lines = append(lines, "")
		}
		lines = append(lines, links...)
	}

	if len(lines) == 0 {
		return ""
	}
	return strings.Join(lines, "\n") + "\n"
}

// RenderMarkdown writes ToMarkdown(raw) to w.
func (c *Changelog) RenderMarkdown(w io.Writer, raw bool) error {
	if _, err := io.WriteString(w, c.ToMarkdown(raw)); err != nil {
		return fmt.Errorf("writing markdown: %w", err)
	}
	return nil
}

// ToMarkdown renders a single section: its release line followed by the
// derived body, or by the verbatim body when raw is set.
func (c *Change) ToMarkdown(raw bool) string {
	var lines []string
	if raw {
		lines = append(lines, c.RawReleaseLine())
		lines = append(lines, trimTrailingBlank(c.Raw())...)
	} else {
		lines = append(lines, c.ReleaseLine())
		lines = append(lines, renderBody(c)...)
	}
	return strings.Join(lines, "\n") + "\n"
}

// renderBody derives the body of a section from its notes: uncategorized
// notes as "*" bullets, then one "### Name" block per non-empty category.
// Nested notes are indented two spaces per level.
func renderBody(ch *Change) []string {
	lines := BulletTree{Nodes: ch.NoteTree(Uncategorized), Bullet: "*"}.Lines()

	for _, k := range Categories() {
		if len(ch.Category(k)) == 0 {
			continue
		}
		lines = append(lines, "", "### "+k.Title())
		lines = append(lines, BulletTree{Nodes: ch.NoteTree(k), Bullet: "-"}.Lines()...)
	}
	return lines
}

// linkLines returns the "[Version]: url" definitions in sorted order.
func (c *Changelog) linkLines() []string {
	var links []string
	for _, ch := range c.SortedChanges() {
		if ch.URL != "" {
			links = append(links, "["+ch.Version+"]: "+ch.URL)
		}
	}
	return links
}

func trimTrailingBlank(lines []string) []string {
	end := len(lines)
	for end > 0 && strings.TrimSpace(lines[end-1]) == "" {
		end--
	}
	return lines[:end]
}
