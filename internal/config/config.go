// keepachangelog - Keep a Changelog tooling
// Author: Ariel Frischer
// Source: https://github.com/ariel-frischer/keepachangelog

// Package config provides hierarchical configuration management for keepachangelog using koanf.
// Configuration is loaded with priority: flags > environment variables > project config
// (.keepachangelog.yml) > user config (~/.config/keepachangelog/config.yml) > defaults.
// Project files may be YAML, JSON or TOML.
package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix is the prefix of environment overrides. A double underscore
// separates nested keys: KEEPACHANGELOG_SERVE__ADDR sets serve.addr.
const EnvPrefix = "KEEPACHANGELOG_"

// Configuration represents the keepachangelog CLI configuration
type Configuration struct {
	// File is the changelog path (or http(s) URL for read-only commands).
	File string `koanf:"file" json:"file" yaml:"file" validate:"required"`
	// LogLevel is one of debug, info, warn, error. --verbose forces debug.
	LogLevel string `koanf:"log_level" json:"log_level" yaml:"log_level" validate:"oneof=debug info warn error"`
	// Plain disables colors and icons in terminal output.
	Plain bool `koanf:"plain" json:"plain" yaml:"plain"`
	// Width wraps terminal output; 0 detects the terminal width.
	Width int `koanf:"width" json:"width" yaml:"width" validate:"min=0,max=1000"`
	// TagPrefix is prepended to the version by `release --tag`.
	TagPrefix string `koanf:"tag_prefix" json:"tag_prefix" yaml:"tag_prefix"`
	// RemoteTimeout bounds fetches of http(s) changelogs.
	RemoteTimeout time.Duration `koanf:"remote_timeout" json:"remote_timeout" yaml:"remote_timeout"`

	Serve ServeConfig `koanf:"serve" json:"serve" yaml:"serve"`
}

// ServeConfig configures the HTTP adapter.
type ServeConfig struct {
	Addr           string `koanf:"addr" json:"addr" yaml:"addr" validate:"required"`
	Path           string `koanf:"path" json:"path" yaml:"path" validate:"required,startswith=/"`
	ShowUnreleased bool   `koanf:"show_unreleased" json:"show_unreleased" yaml:"show_unreleased"`
	Watch          bool   `koanf:"watch" json:"watch" yaml:"watch"`
}

// LoadOptions configures how configuration is loaded
type LoadOptions struct {
	// ProjectConfigPath overrides project config discovery (the --config flag)
	ProjectConfigPath string
	// Overrides are applied last, as flag values keyed like the config file
	Overrides map[string]any
	// WarningWriter receives shadowed-file warnings (default: os.Stderr)
	WarningWriter io.Writer
	// SkipWarnings suppresses warnings
	SkipWarnings bool
}

// Load loads configuration from user, project, and environment sources.
// Priority: Environment variables > Project config > User config > Defaults
func Load(projectConfigPath string) (*Configuration, error) {
	return LoadWithOptions(LoadOptions{ProjectConfigPath: projectConfigPath})
}

// LoadWithOptions loads configuration with custom options
func LoadWithOptions(opts LoadOptions) (*Configuration, error) {
	k := koanf.New(".")
	warningWriter := getWarningWriter(opts.WarningWriter)

	loadDefaults(k)

	if err := loadUserConfig(k); err != nil {
		return nil, err
	}

	if err := loadProjectConfig(k, opts.ProjectConfigPath, warningWriter, opts.SkipWarnings); err != nil {
		return nil, err
	}

	if err := loadEnvironmentConfig(k); err != nil {
		return nil, err
	}

	for key, value := range opts.Overrides {
		if err := k.Set(key, value); err != nil {
			return nil, fmt.Errorf("applying flag override %s: %w", key, err)
		}
	}

	return finalizeConfig(k)
}

// getWarningWriter returns the warning writer or defaults to stderr
func getWarningWriter(w io.Writer) io.Writer {
	if w == nil {
		return os.Stderr
	}
	return w
}

// loadDefaults applies default configuration values
func loadDefaults(k *koanf.Koanf) {
	for key, value := range GetDefaults() {
		_ = k.Set(key, value)
	}
}

// loadUserConfig loads ~/.config/keepachangelog/config.yml when it exists.
func loadUserConfig(k *koanf.Koanf) error {
	userPath, err := UserConfigPath()
	if err != nil || !fileExists(userPath) {
		return nil
	}
	if err := loadConfigFile(k, userPath, "user"); err != nil {
		return fmt.Errorf("loading user config: %w", err)
	}
	return nil
}

// loadProjectConfig loads the explicit project config, or the first existing
// candidate. Further candidates are reported as ignored.
func loadProjectConfig(k *koanf.Koanf, customPath string, warningWriter io.Writer, skipWarnings bool) error {
	if customPath != "" {
		if !fileExists(customPath) {
			return fmt.Errorf("config file not found: %s", customPath)
		}
		if err := loadConfigFile(k, customPath, "project"); err != nil {
			return fmt.Errorf("loading project config: %w", err)
		}
		return nil
	}

	var found []string
	for _, candidate := range ProjectConfigCandidates() {
		if fileExists(candidate) {
			found = append(found, candidate)
		}
	}
	if len(found) == 0 {
		return nil
	}

	if err := loadConfigFile(k, found[0], "project"); err != nil {
		return fmt.Errorf("loading project config: %w", err)
	}
	warnShadowed(warningWriter, found[0], found[1:], skipWarnings)
	return nil
}

// loadConfigFile picks a parser from the file extension and loads path.
func loadConfigFile(k *koanf.Koanf, path, configType string) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yml", ".yaml":
		return loadYAMLConfig(k, path, configType)
	case ".json":
		if err := k.Load(file.Provider(path), json.Parser()); err != nil {
			return fmt.Errorf("failed to load %s config %s: %w", configType, path, err)
		}
	case ".toml":
		if err := k.Load(file.Provider(path), TOMLParser()); err != nil {
			return fmt.Errorf("failed to load %s config %s: %w", configType, path, err)
		}
	default:
		return fmt.Errorf("unsupported config format %q: %s", filepath.Ext(path), path)
	}
	return nil
}

// loadYAMLConfig validates and loads a YAML config file
func loadYAMLConfig(k *koanf.Koanf, path, configType string) error {
	if err := ValidateYAMLSyntax(path); err != nil {
		return fmt.Errorf("validating YAML syntax for %s config: %w", configType, err)
	}
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return fmt.Errorf("failed to load %s config %s: %w", configType, path, err)
	}
	return nil
}

// warnShadowed warns about project config files that lost to an earlier candidate
func warnShadowed(warningWriter io.Writer, used string, ignored []string, skipWarnings bool) {
	if skipWarnings {
		return
	}
	for _, path := range ignored {
		fmt.Fprintf(warningWriter, "Warning: config file %s ignored (using %s)\n", path, used)
	}
}

// loadEnvironmentConfig loads environment variable overrides
func loadEnvironmentConfig(k *koanf.Koanf) error {
	if err := k.Load(env.Provider(EnvPrefix, ".", envTransform), nil); err != nil {
		return fmt.Errorf("failed to load environment config: %w", err)
	}
	return nil
}

// finalizeConfig unmarshals, validates, and applies final transformations
func finalizeConfig(k *koanf.Koanf) (*Configuration, error) {
	var cfg Configuration
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := ValidateConfigValues(&cfg, "config"); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	cfg.File = expandHomePath(cfg.File)

	return &cfg, nil
}

// fileExists returns true if the file exists and is readable
func fileExists(path string) bool {
	if path == "" {
		return false
	}
	_, err := os.Stat(path)
	return err == nil
}

// envTransform converts environment variable names to config keys
// Example: KEEPACHANGELOG_SERVE__SHOW_UNRELEASED -> serve.show_unreleased
func envTransform(s string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "__", ".")
}

// expandHomePath expands ~ to the user's home directory
func expandHomePath(path string) string {
	if strings.HasPrefix(path, "~/") {
		homeDir, err := os.UserHomeDir()
		if err == nil {
			return filepath.Join(homeDir, path[2:])
		}
	}
	return path
}
