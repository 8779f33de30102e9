package config

import (
	"os"
	"path/filepath"
)

// UserConfigPath returns the path to the user-level config file.
// This follows the XDG Base Directory Specification:
// - Linux: ~/.config/keepachangelog/config.yml
// - macOS: ~/Library/Application Support/keepachangelog/config.yml
// - Windows: %APPDATA%\keepachangelog\config.yml
//
// If XDG_CONFIG_HOME is set, it will be respected on Linux.
func UserConfigPath() (string, error) {
	configDir, err := UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "config.yml"), nil
}

// UserConfigDir returns the path to the user-level config directory.
func UserConfigDir() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "keepachangelog"), nil
}

// ProjectConfigPath returns the path written by 'config init'.
func ProjectConfigPath() string {
	return ".keepachangelog.yml"
}

// ProjectConfigCandidates returns the project config files looked up in the
// current directory, in order of preference.
func ProjectConfigCandidates() []string {
	return []string{
		".keepachangelog.yml",
		".keepachangelog.yaml",
		".keepachangelog.json",
		".keepachangelog.toml",
	}
}
