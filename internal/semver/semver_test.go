package semver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Valid(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		input string
		want  Version
	}{
		"empty is zero sentinel":  {input: "", want: Version{}},
		"Ma.Mi.Pa":                {input: "1.2.3", want: Version{Major: 1, Minor: 2, Patch: 3}},
		"Ma.Mi.PaPr":              {input: "1.2.3b1", want: Version{Major: 1, Minor: 2, Patch: 3, Prerelease: "b1"}},
		"Ma.Mi.Pa-Pr":             {input: "1.2.3-b1", want: Version{Major: 1, Minor: 2, Patch: 3, Prerelease: "b1"}},
		"Ma.Mi.Pa.Pr":             {input: "1.2.3.b1", want: Version{Major: 1, Minor: 2, Patch: 3, Prerelease: "b1"}},
		"Ma.Mi.Pa+BMD":            {input: "1.2.3+42", want: Version{Major: 1, Minor: 2, Patch: 3, BuildMetadata: "42"}},
		"Ma.Mi.PaPr+BMD":          {input: "1.2.3b1+42", want: Version{Major: 1, Minor: 2, Patch: 3, Prerelease: "b1", BuildMetadata: "42"}},
		"Ma.Mi.Pa-Pr+BMD":         {input: "1.2.3-b1+42", want: Version{Major: 1, Minor: 2, Patch: 3, Prerelease: "b1", BuildMetadata: "42"}},
		"Ma.Mi.Pa.Pr1.Pr2":        {input: "1.2.3.b1.42", want: Version{Major: 1, Minor: 2, Patch: 3, Prerelease: "b1.42"}},
		"dotted prerelease+build": {input: "1.2.3.4.8.15+16.23.42", want: Version{Major: 1, Minor: 2, Patch: 3, Prerelease: "4.8.15", BuildMetadata: "16.23.42"}},
		"dev prerelease":          {input: "1.1.0.dev0", want: Version{Major: 1, Minor: 1, Prerelease: "dev0"}},
		"numeric prerelease":      {input: "1.2.3-4", want: Version{Major: 1, Minor: 2, Patch: 3, Prerelease: "4"}},
		"large components":        {input: "10.9.90", want: Version{Major: 10, Minor: 9, Patch: 90}},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			got, err := Parse(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParse_Invalid(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"Ma":                                   "1",
		"Ma.Mi":                                "1.2",
		"MaS.Mi.Pa":                            "a.2.2",
		"Ma.MiS.Pa":                            "1.b.3",
		"Ma.Mi.PaS":                            "1.2.c",
		"Ma.Mi-Pr":                             "1.2-alpha",
		"Ma.Mi-Pr+BMD":                         "1.2-alpha+dev",
		"Ma.Mi+BMD":                            "1.2+dev",
		"date label":                           "20180531",
		"named":                                "unreleased",
		"leading zero":                         "01.2.3",
		"leading zero patch":                   "1.2.03",
		"leading zero minor":                   "1.02.3",
		"numeric prerelease with leading zero": "1.2.3-01",
	}

	for name, input := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			_, err := Parse(input)
			require.Error(t, err)

			var invalid *InvalidVersionError
			require.ErrorAs(t, err, &invalid)
			assert.Equal(t, input, invalid.Version)
		})
	}
}

func TestInvalidVersionError_Message(t *testing.T) {
	t.Parallel()

	_, err := Parse("20180531")
	require.Error(t, err)
	assert.Equal(t,
		"20180531 is not following semantic versioning. Check https://semver.org for more information.",
		err.Error())
}

func TestCompare_Less(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		low  string
		high string
	}{
		"patch":                 {low: "1.0.0", high: "1.0.1"},
		"minor":                 {low: "1.0.0", high: "1.1.0"},
		"major":                 {low: "1.0.0", high: "2.0.0"},
		"numeric not lexical":   {low: "9.10.100", high: "10.9.90"},
		"prerelease-release":    {low: "1.0.0-dev", high: "1.0.0"},
		"prerelease-prerelease": {low: "1.0.0-dev1", high: "1.0.0-dev2"},
		"pre1.BMD-pre2.BMD":     {low: "1.0.0-dev1+2", high: "1.0.0-dev2+1"},
		"dotted dev below":      {low: "1.1.0.dev0", high: "1.1.0"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			low := MustParse(tt.low)
			high := MustParse(tt.high)
			assert.True(t, low.Less(high))
			assert.Equal(t, -1, Compare(low, high))
			assert.Equal(t, 1, Compare(high, low))
		})
	}
}

func TestCompare_Equal(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		a string
		b string
	}{
		"same":          {a: "1.0.0", b: "1.0.0"},
		"BMD-BMD":       {a: "1.0.0+1", b: "1.0.0+2"},
		"BMD_os-BMD_os": {a: "1.0.0+posix", b: "1.0.0+win64"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.True(t, MustParse(tt.a).Equal(MustParse(tt.b)))
		})
	}
}

func TestCompare_PrereleaseIsLexical(t *testing.T) {
	t.Parallel()

	// Per-identifier numeric precedence would order rc.2 before rc.10.
	assert.True(t, MustParse("1.0.0-rc.10").Less(MustParse("1.0.0-rc.2")))
}

func TestReleaseOutranksAnyPrerelease(t *testing.T) {
	t.Parallel()

	for _, base := range []string{"0.0.1", "1.2.3", "10.0.0"} {
		for _, pre := range []string{"alpha", "b1", "rc.1", "zzz", "0"} {
			release := MustParse(base)
			prerelease := MustParse(base + "-" + pre)
			assert.True(t, prerelease.Less(release), "%s-%s should sort before %s", base, pre, base)
		}
	}
}

func TestFloor(t *testing.T) {
	t.Parallel()

	assert.True(t, Floor.Less(Version{}))
	assert.True(t, Floor.Less(MustParse("0.0.0-a")))
	assert.False(t, Floor.IsZero())
}

func TestBumps(t *testing.T) {
	t.Parallel()

	v := MustParse("1.2.3-rc.1+build")

	tests := map[string]struct {
		got  Version
		want string
	}{
		"major":   {got: v.BumpMajor(), want: "2.0.0"},
		"minor":   {got: v.BumpMinor(), want: "1.3.0"},
		"patch":   {got: v.BumpPatch(), want: "1.2.4"},
		"release": {got: v.Release(), want: "1.2.3"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, MustParse(tt.want), tt.got)
		})
	}

	// Bumps never mutate the receiver.
	assert.Equal(t, "1.2.3-rc.1+build", v.String())
}

func TestString(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		v    Version
		want string
	}{
		"triple":     {v: Version{Major: 1, Minor: 2, Patch: 3}, want: "1.2.3"},
		"prerelease": {v: Version{Major: 1, Prerelease: "b1"}, want: "1.0.0-b1"},
		"build":      {v: Version{Patch: 1, BuildMetadata: "win64"}, want: "0.0.1+win64"},
		"both":       {v: Version{Major: 2, Prerelease: "rc.1", BuildMetadata: "42"}, want: "2.0.0-rc.1+42"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.v.String())
		})
	}
}

func TestToMap(t *testing.T) {
	t.Parallel()

	assert.Nil(t, Version{}.ToMap(false))
	assert.Equal(t, map[string]any{
		"major":         0,
		"minor":         0,
		"patch":         0,
		"prerelease":    nil,
		"buildmetadata": nil,
	}, Version{}.ToMap(true))
	assert.Equal(t, map[string]any{
		"major":         1,
		"minor":         2,
		"patch":         3,
		"prerelease":    "b1",
		"buildmetadata": "42",
	}, MustParse("1.2.3b1+42").ToMap(false))
}
