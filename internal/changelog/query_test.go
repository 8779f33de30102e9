package changelog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetVersion(t *testing.T) {
	t.Parallel()

	c := ParseString(standardChangelog)

	tests := map[string]struct {
		version     string
		wantVersion string
		wantErr     bool
	}{
		"exact":          {version: "1.2.0", wantVersion: "1.2.0"},
		"v prefix":       {version: "v1.2.0", wantVersion: "1.2.0"},
		"upper v prefix": {version: "V1.1.0", wantVersion: "1.1.0"},
		"padded":         {version: " 1.0.0 ", wantVersion: "1.0.0"},
		"unreleased":     {version: "UNRELEASED", wantVersion: "Unreleased"},
		"link only":      {version: "1.0.2", wantVersion: "1.0.2"},
		"missing":        {version: "9.9.9", wantErr: true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			ch, err := c.GetVersion(tt.version)
			if tt.wantErr {
				var notFound *VersionNotFoundError
				require.ErrorAs(t, err, &notFound)
				assert.Equal(t, []string{"Unreleased", "1.2.0", "1.1.0", "1.0.2", "1.0.1", "1.0.0"}, notFound.AvailableVersions)
				assert.Contains(t, err.Error(), `version "9.9.9" not found`)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantVersion, ch.Version)
		})
	}
}

func TestNormalizeVersion(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "1.0.0", NormalizeVersion("v1.0.0"))
	assert.Equal(t, "1.0.0", NormalizeVersion(" V1.0.0"))
	assert.Equal(t, "unreleased", NormalizeVersion("Unreleased"))
}

func TestGetUnreleased(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		input          string
		wantNil        bool
		wantHasPending bool
	}{
		"empty section":  {input: standardChangelog},
		"with notes":     {input: "## [Unreleased]\n- a\n", wantHasPending: true},
		"no section":     {input: "## [1.0.0] - 2020-01-01\n", wantNil: true},
		"ambiguous":      {input: "## [Unreleased]\n- a\n## [master]\n- b\n", wantNil: true},
		"empty document": {input: "", wantNil: true},
		"named pending":  {input: "## [Develop]\n- wip\n## [1.0.0] - 2020-01-01\n", wantHasPending: true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			c := ParseString(tt.input)
			assert.Equal(t, tt.wantNil, c.GetUnreleased() == nil)
			assert.Equal(t, tt.wantHasPending, c.HasUnreleased())
		})
	}
}

func TestGetLatestRelease(t *testing.T) {
	t.Parallel()

	latest := ParseString(standardChangelog).GetLatestRelease()
	require.NotNil(t, latest)
	assert.Equal(t, "1.2.0", latest.Version)

	assert.Nil(t, ParseString("## [Unreleased]\n- a\n").GetLatestRelease())
	assert.Nil(t, New().GetLatestRelease())
}

func TestEntries(t *testing.T) {
	t.Parallel()

	c := ParseString(standardChangelog)
	assert.Equal(t, 26, c.GetEntryCount())
	assert.Len(t, c.AllEntries(), 26)

	tests := map[string]struct {
		n    int
		want []Entry
	}{
		"zero":     {n: 0, want: []Entry{}},
		"negative": {n: -1, want: []Entry{}},
		"first three": {n: 3, want: []Entry{
			{Text: "Enhancement 1", Category: Added, Version: "1.2.0"},
			{Text: "sub enhancement 1", Category: Added, Version: "1.2.0"},
			{Text: "sub enhancement 2", Category: Added, Version: "1.2.0"},
		}},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, c.GetLastN(tt.n))
		})
	}

	assert.Len(t, c.GetLastN(1000), 26)
}

func TestChange_EntriesOrder(t *testing.T) {
	t.Parallel()

	c := ParseString("## [1.0.0] - 2020-01-01\n### Fixed\n- f\n### Added\n- a\n\n* loose\n")
	ch, _ := c.Get("1.0.0")

	// "* loose" follows the Added header, so it is an added note.
	assert.Equal(t, []Entry{
		{Text: "a", Category: Added, Version: "1.0.0"},
		{Text: "loose", Category: Added, Version: "1.0.0"},
		{Text: "f", Category: Fixed, Version: "1.0.0"},
	}, ch.Entries())
}
