package changelog

import (
	"bytes"
	"fmt"
	"io"
	"sync"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
)

// The converter configuration never changes and goldmark keeps per-call
// state in Convert, so one instance serves every caller.
var (
	markdownInstance goldmark.Markdown
	markdownOnce     sync.Once
)

func getMarkdown() goldmark.Markdown {
	markdownOnce.Do(func() {
		markdownInstance = goldmark.New(
			goldmark.WithExtensions(extension.GFM),
			goldmark.WithParserOptions(parser.WithAutoHeadingID()),
		)
	})
	return markdownInstance
}

// RenderHTML writes the document as an HTML fragment. Release links are
// resolved from the reference definitions, so version headers become links.
func (c *Changelog) RenderHTML(w io.Writer, raw bool) error {
	if err := getMarkdown().Convert([]byte(c.ToMarkdown(raw)), w); err != nil {
		return fmt.Errorf("converting markdown to HTML: %w", err)
	}
	return nil
}

// HTMLString is a convenience wrapper around RenderHTML.
func (c *Changelog) HTMLString(raw bool) (string, error) {
	var b bytes.Buffer
	if err := c.RenderHTML(&b, raw); err != nil {
		return "", err
	}
	return b.String(), nil
}
