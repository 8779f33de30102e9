package changelog

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatChange_Plain(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		input   string
		version string
		want    string
	}{
		"dated with uncategorized notes": {
			input:   "## [1.0.0] - 2020-01-01\n* loose\n### Fixed\n- b\n### Added\n- a\n",
			version: "1.0.0",
			want:    "## 1.0.0 (2020-01-01)\n  * loose\n\n### Added\n  - a\n\n### Fixed\n  - b\n",
		},
		"unreleased": {
			input:   "## [unreleased]\n### Security\n- patched\n",
			version: "unreleased",
			want:    "## Unreleased\n\n### Security\n  - patched\n",
		},
		"named without date": {
			input:   "## [Develop]\n- wip\n",
			version: "develop",
			want:    "## Develop\n  * wip\n",
		},
		"text date": {
			input:   "## [2.0.0] - 1er mai 2017\n### Removed\n- old\n",
			version: "2.0.0",
			want:    "## 2.0.0 (1er mai 2017)\n\n### Removed\n  - old\n",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			ch, ok := ParseString(tt.input).Get(tt.version)
			require.True(t, ok)

			var buf bytes.Buffer
			require.NoError(t, FormatChange(ch, &buf, FormatOptions{Plain: true, MaxWidth: 80}))
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestFormatTerminal_Plain(t *testing.T) {
	t.Parallel()

	c := ParseString("## [Unreleased]\n### Added\n- new\n\n## [1.0.0] - 2020-01-01\n### Fixed\n- bug\n")

	var buf bytes.Buffer
	require.NoError(t, FormatTerminal(c.AllEntries(), &buf, FormatOptions{Plain: true, MaxWidth: 80}))
	assert.Equal(t, "## Unreleased\n\n### Added\n  - new\n\n## 1.0.0\n\n### Fixed\n  - bug\n", buf.String())

	buf.Reset()
	require.NoError(t, FormatTerminal(nil, &buf, FormatOptions{Plain: true}))
	assert.Empty(t, buf.String())
}

func TestFormatTerminal_Colored(t *testing.T) {
	t.Parallel()

	entries := []Entry{{Text: "new thing", Category: Added, Version: "1.0.0"}}

	var buf bytes.Buffer
	require.NoError(t, FormatTerminal(entries, &buf, FormatOptions{MaxWidth: 80}))
	assert.Contains(t, buf.String(), "1.0.0")
	assert.Contains(t, buf.String(), "Added")
	assert.Contains(t, buf.String(), "new thing")
}

func TestWrapText(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		text     string
		maxWidth int
		want     string
	}{
		"fits":           {text: "short text", maxWidth: 20, want: "short text"},
		"no limit":       {text: "short text", maxWidth: 0, want: "short text"},
		"wraps at space": {text: "one two three four", maxWidth: 9, want: "one two\n    three\n    four"},
		"no space":       {text: "abcdefghij", maxWidth: 4, want: "abcd\n    efgh\n    ij"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, wrapText(tt.text, tt.maxWidth, "    "))
		})
	}
}

func TestFormatEntrySummary(t *testing.T) {
	t.Parallel()

	entry := Entry{Text: strings.Repeat("x", 70), Category: Fixed, Version: "1.0.0"}

	got := FormatEntrySummary(entry, FormatOptions{Plain: true})
	assert.Equal(t, "[fixed] "+strings.Repeat("x", 57)+"...", got)

	colored := FormatEntrySummary(Entry{Text: "short", Category: Added}, FormatOptions{})
	assert.Contains(t, colored, "short")
}

func TestTruncateText(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "abc", truncateText("abc", 5))
	assert.Equal(t, "ab...", truncateText("abcdefgh", 5))
}
