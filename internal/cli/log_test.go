package cli

import (
	"bytes"
	"context"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"

	"github.com/ariel-frischer/keepachangelog/internal/config"
)

func TestLogLevel(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		name    string
		verbose bool
		want    log.Level
	}{
		"debug":           {name: "debug", want: log.DebugLevel},
		"warn":            {name: "WARN", want: log.WarnLevel},
		"error":           {name: "error", want: log.ErrorLevel},
		"info":            {name: "info", want: log.InfoLevel},
		"unknown":         {name: "", want: log.InfoLevel},
		"verbose wins":    {name: "error", verbose: true, want: log.DebugLevel},
		"verbose default": {verbose: true, want: log.DebugLevel},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, logLevel(tt.name, tt.verbose))
		})
	}
}

func TestProgress_Done(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	p := newProgress(newLogger(&buf, log.InfoLevel))
	p.done("released", "version", "1.2.0")

	out := buf.String()
	assert.Contains(t, out, "released")
	assert.Contains(t, out, "version=1.2.0")
	assert.Contains(t, out, "elapsed=")
}

func TestNewLogger_FiltersLevel(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	l := newLogger(&buf, log.WarnLevel)
	l.Info("hidden")
	l.Warn("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}

func TestContextValues(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	assert.Same(t, log.Default(), loggerFromContext(ctx))
	assert.Equal(t, "CHANGELOG.md", configFromContext(ctx).File)
	assert.Equal(t, config.DefaultRemoteTimeout, configFromContext(ctx).RemoteTimeout)

	l := log.New(&bytes.Buffer{})
	cfg := &config.Configuration{File: "docs/CHANGES.md"}
	ctx = withConfig(withLogger(ctx, l), cfg)
	assert.Same(t, l, loggerFromContext(ctx))
	assert.Same(t, cfg, configFromContext(ctx))
}
