package config

import "time"

// DefaultRemoteTimeout is the default bound on fetching an http(s) changelog.
const DefaultRemoteTimeout = 5 * time.Second

// GetDefaultConfigTemplate returns a fully commented config template
// that helps users understand all available options
func GetDefaultConfigTemplate() string {
	return `# keepachangelog configuration
# Precedence: flags > KEEPACHANGELOG_* env > this file > ~/.config/keepachangelog/config.yml

file: CHANGELOG.md                    # Changelog path (http(s) URLs work for read-only commands)
log_level: info                       # debug | info | warn | error
plain: false                          # Disable colors and icons
width: 0                              # Wrap width for terminal output (0 = auto-detect)
tag_prefix: v                         # Prefix of tags created by 'release --tag'
remote_timeout: 5s                    # Timeout for fetching remote changelogs

# HTTP adapter ('keepachangelog serve')
serve:
  addr: ":8080"                       # Listen address
  path: /changelog                    # JSON at <path>, Markdown at <path>.md, HTML at <path>.html
  show_unreleased: false              # Include unreleased sections in the JSON view
  watch: true                         # Reload the changelog when the file changes
`
}

// GetDefaults returns the default configuration values
func GetDefaults() map[string]interface{} {
	return map[string]interface{}{
		"file":      "CHANGELOG.md",
		"log_level": "info",
		"plain":     false,
		// width: 0 detects the terminal width, falling back to 80 columns.
		"width":          0,
		"tag_prefix":     "v",
		"remote_timeout": DefaultRemoteTimeout.String(),
		// serve: HTTP adapter settings. Environment variable support via
		// KEEPACHANGELOG_SERVE__* (double underscore for nesting).
		"serve": map[string]interface{}{
			"addr":            ":8080",
			"path":            "/changelog",
			"show_unreleased": false,
			"watch":           true,
		},
	}
}
