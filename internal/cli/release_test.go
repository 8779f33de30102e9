package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// commitAll makes dir a git repository with a single commit of its files.
func commitAll(t *testing.T, dir string) *gogit.Repository {
	t.Helper()
	repo, err := gogit.PlainInit(dir, false)
	require.NoError(t, err)

	worktree, err := repo.Worktree()
	require.NoError(t, err)
	require.NoError(t, worktree.AddGlob("."))
	_, err = worktree.Commit("Initial commit", &gogit.CommitOptions{
		Author: &object.Signature{Name: "Test", Email: "test@test.com"},
	})
	require.NoError(t, err)
	return repo
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	b, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(b)
}

func TestRelease(t *testing.T) {
	tests := map[string]struct {
		args        []string
		wantVersion string
		wantLines   []string
	}{
		"computed version": {
			args:        []string{"release", "--date", "2024-03-01"},
			wantVersion: "1.2.0",
			wantLines: []string{
				"## [Unreleased]\n\n## [1.2.0] - 2024-03-01\n### Added\n- Export command\n",
				"[Unreleased]: https://github.com/acme/widget/compare/v1.2.0...HEAD\n",
				"[1.2.0]: https://github.com/acme/widget/compare/v1.1.0...v1.2.0\n",
				"[1.1.0]: https://github.com/acme/widget/compare/v1.0.0...v1.1.0\n",
			},
		},
		"explicit version": {
			args:        []string{"release", "2.0.0", "--date", "2024-03-01"},
			wantVersion: "2.0.0",
			wantLines: []string{
				"## [2.0.0] - 2024-03-01\n### Added\n- Export command\n",
				"[2.0.0]: https://github.com/acme/widget/compare/v1.1.0...v2.0.0\n",
			},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			dir := isolate(t)
			path := writeChangelog(t, dir, cliChangelog)

			stdout, stderr, err := executeCommand(t, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.wantVersion+"\n", stdout)
			assert.Contains(t, stderr, "released")

			got := readFile(t, path)
			for _, line := range tt.wantLines {
				assert.Contains(t, got, line)
			}
			// Untouched sections keep their text.
			assert.Contains(t, got, "## [1.1.0] - 2024-02-01\n### Fixed\n- Crash on empty input\n")
		})
	}
}

func TestRelease_DryRun(t *testing.T) {
	dir := isolate(t)
	path := writeChangelog(t, dir, cliChangelog)

	stdout, _, err := executeCommand(t, "release", "--dry-run", "--date", "2024-03-01")
	require.NoError(t, err)
	assert.Contains(t, stdout, "## [1.2.0] - 2024-03-01\n")
	assert.Equal(t, cliChangelog, readFile(t, path), "a dry run leaves the file untouched")
}

func TestRelease_NothingToRelease(t *testing.T) {
	dir := isolate(t)
	content := "# Changelog\n\n## [Unreleased]\n\n## [1.0.0] - 2024-01-01\n- Initial release\n"
	path := writeChangelog(t, dir, content)

	stdout, stderr, err := executeCommand(t, "release")
	require.NoError(t, err)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "nothing to release")
	assert.Equal(t, content, readFile(t, path))
}

func TestRelease_Errors(t *testing.T) {
	tests := map[string]struct {
		content  string
		args     []string
		wantCode int
		wantErr  string
	}{
		"reserved version": {
			content:  cliChangelog,
			args:     []string{"release", "Unreleased"},
			wantCode: ExitInvalidArguments,
			wantErr:  "names the unreleased section",
		},
		"version already released": {
			content:  cliChangelog,
			args:     []string{"release", "1.0.0"},
			wantCode: ExitInvalidArguments,
			wantErr:  "version 1.0.0 is already released",
		},
		"invalid date": {
			content:  cliChangelog,
			args:     []string{"release", "--date", "01/03/2024"},
			wantCode: ExitInvalidArguments,
			wantErr:  "01/03/2024",
		},
		"dry run with tag": {
			content:  cliChangelog,
			args:     []string{"release", "--dry-run", "--tag-message", "notes"},
			wantCode: ExitInvalidArguments,
			wantErr:  "--dry-run --tag",
		},
		"ambiguous unreleased": {
			content:  "## [Unreleased]\n### Added\n- a\n\n## [master]\n- b\n",
			args:     []string{"release"},
			wantCode: ExitInvalidDocument,
			wantErr:  "Unreleased, master",
		},
		"non semantic history": {
			content:  "## [Unreleased]\n### Added\n- a\n\n## [stable] - 2024-01-01\n- b\n",
			args:     []string{"release"},
			wantCode: ExitInvalidDocument,
			wantErr:  "next version",
		},
		"remote file": {
			content:  cliChangelog,
			args:     []string{"release", "--file", "https://example.com/CHANGELOG.md"},
			wantCode: ExitInvalidArguments,
			wantErr:  "cannot modify a remote changelog",
		},
		"tag outside a repository": {
			content:  cliChangelog,
			args:     []string{"release", "--tag"},
			wantCode: ExitInvalidArguments,
			wantErr:  "git",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			dir := isolate(t)
			path := writeChangelog(t, dir, tt.content)

			_, _, err := executeCommand(t, tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
			assert.Equal(t, tt.wantCode, ExitCode(err))
			assert.Equal(t, tt.content, readFile(t, path), "a failed release leaves the file untouched")
		})
	}
}

func TestRelease_Tag(t *testing.T) {
	tests := map[string]struct {
		args          []string
		wantTag       string
		wantAnnotated bool
	}{
		"lightweight": {
			args:    []string{"release", "--tag"},
			wantTag: "v1.2.0",
		},
		"annotated": {
			args:          []string{"release", "--tag-message", "Widget 1.2.0"},
			wantTag:       "v1.2.0",
			wantAnnotated: true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			dir := isolate(t)
			writeChangelog(t, dir, cliChangelog)
			repo := commitAll(t, dir)

			stdout, stderr, err := executeCommand(t, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, "1.2.0\n", stdout)
			assert.Contains(t, stderr, "tagged")

			ref, err := repo.Reference(plumbing.NewTagReferenceName(tt.wantTag), false)
			require.NoError(t, err)
			tagObj, err := repo.TagObject(ref.Hash())
			if tt.wantAnnotated {
				require.NoError(t, err)
				assert.Equal(t, "Widget 1.2.0", strings.TrimSpace(tagObj.Message))
			} else {
				assert.ErrorIs(t, err, plumbing.ErrObjectNotFound)
			}
		})
	}
}

func TestRelease_TagPrefixAndExisting(t *testing.T) {
	dir := isolate(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".keepachangelog.yml"), []byte("tag_prefix: release-\n"), 0o644))
	path := writeChangelog(t, dir, cliChangelog)
	repo := commitAll(t, dir)

	head, err := repo.Head()
	require.NoError(t, err)
	_, err = repo.CreateTag("release-1.2.0", head.Hash(), nil)
	require.NoError(t, err)

	_, _, err = executeCommand(t, "release", "--tag")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "release-1.2.0")
	assert.Equal(t, ExitFailure, ExitCode(err))
	assert.Equal(t, cliChangelog, readFile(t, path), "the tag is checked before the file is written")
}
