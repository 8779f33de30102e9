package changelog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseCategoryKind(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		name   string
		want   CategoryKind
		wantOK bool
	}{
		"lower":         {name: "added", want: Added, wantOK: true},
		"title":         {name: "Changed", want: Changed, wantOK: true},
		"upper":         {name: "SECURITY", want: Security, wantOK: true},
		"padded":        {name: "  Fixed ", want: Fixed, wantOK: true},
		"uncategorized": {name: "Uncategorized", want: Uncategorized, wantOK: true},
		"unknown":       {name: "Improvements", wantOK: false},
		"empty":         {name: "", wantOK: false},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			got, ok := ParseCategoryKind(tt.name)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestCategoryKind_Names(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{"added", "changed", "deprecated", "removed", "fixed", "security"}, ValidCategories())
	assert.Equal(t, "Deprecated", Deprecated.Title())
	assert.Equal(t, "uncategorized", Uncategorized.String())
	assert.Equal(t, "unknown", CategoryKind(42).String())
}

func TestExtractNote(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		line string
		want string
	}{
		"dash bullet":          {line: "- Bug fix 1", want: "Bug fix 1"},
		"star bullet":          {line: "* Known issue 1", want: "Known issue 1"},
		"indented sub bullet":  {line: " - sub bug 1", want: "sub bug 1"},
		"trailing space":       {line: "- Deprecated feature 1 ", want: "Deprecated feature 1"},
		"trailing dash":        {line: "- note -", want: "note"},
		"inner emphasis kept":  {line: "- sub *enhancement 1*", want: "sub *enhancement 1*"},
		"no bullet":            {line: "plain text", want: "plain text"},
		"only decoration":      {line: " - * - ", want: ""},
		"blank":                {line: "", want: ""},
		"trailing star kept":   {line: "- *bold*", want: "bold*"},
		"internal dashes kept": {line: "- a - b", want: "a - b"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, ExtractNote(tt.line))
		})
	}
}

func TestCategory_Streamline(t *testing.T) {
	t.Parallel()

	var c Category
	c.Streamline("- first")
	c.Streamline("")
	c.Streamline("   ")
	c.Streamline(" * second")

	assert.Equal(t, Category{"first", "second"}, c)
}
