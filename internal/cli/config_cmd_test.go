package cli

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/ariel-frischer/keepachangelog/internal/config"
)

func TestConfigInit(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, config.ProjectConfigPath())

	_, stderr, err := executeCommand(t, "config", "init")
	require.NoError(t, err)
	assert.Contains(t, stderr, "written")
	assert.Equal(t, config.GetDefaultConfigTemplate(), readFile(t, path))

	require.NoError(t, os.WriteFile(path, []byte("file: custom.md\n"), 0o644))
	_, _, err = executeCommand(t, "config", "init")
	require.Error(t, err)
	assert.Equal(t, ExitInvalidArguments, ExitCode(err))
	assert.Contains(t, err.Error(), "already exists")
	assert.Equal(t, "file: custom.md\n", readFile(t, path))

	_, _, err = executeCommand(t, "config", "init", "--force")
	require.NoError(t, err)
	assert.Equal(t, config.GetDefaultConfigTemplate(), readFile(t, path))
}

func TestConfigShow(t *testing.T) {
	dir := isolate(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".keepachangelog.yml"), []byte("tag_prefix: release-\n"), 0o644))

	stdout, _, err := executeCommand(t, "config", "show", "--file", "docs/CHANGES.md")
	require.NoError(t, err)
	assert.Contains(t, stdout, "# Configuration Sources: defaults, .keepachangelog.yml, environment, flags")

	var got map[string]any
	require.NoError(t, yaml.Unmarshal([]byte(stdout), &got))
	assert.Equal(t, "docs/CHANGES.md", got["file"])
	assert.Equal(t, "release-", got["tag_prefix"])
	assert.Equal(t, "5s", got["remote_timeout"])
	assert.Equal(t, map[string]any{
		"addr":            ":8080",
		"path":            "/changelog",
		"show_unreleased": false,
		"watch":           true,
	}, got["serve"])
}

func TestConfigShow_JSON(t *testing.T) {
	isolate(t)

	stdout, _, err := executeCommand(t, "config", "show", "--json", "--plain")
	require.NoError(t, err)

	var got config.Configuration
	require.NoError(t, json.Unmarshal([]byte(stdout), &got))
	assert.Equal(t, "CHANGELOG.md", got.File)
	assert.True(t, got.Plain)
	assert.Equal(t, config.DefaultRemoteTimeout, got.RemoteTimeout)
}
