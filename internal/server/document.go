package server

import (
	"errors"
	"io/fs"
	"sync"

	"github.com/ariel-frischer/keepachangelog/internal/changelog"
)

// Document loads the changelog file served by a Handler. A caching Document
// keeps the parsed changelog until Invalidate is called; otherwise the file
// is parsed on every Get.
type Document struct {
	path  string
	cache bool

	mu     sync.RWMutex
	parsed *changelog.Changelog
	valid  bool
}

// NewDocument returns a Document for the file at path.
func NewDocument(path string, cache bool) *Document {
	return &Document{path: path, cache: cache}
}

// Path returns the changelog file path.
func (d *Document) Path() string {
	return d.path
}

// Get returns the parsed changelog, or nil when the file does not exist.
// Callers must not modify the result.
func (d *Document) Get() (*changelog.Changelog, error) {
	if !d.cache {
		return d.load()
	}

	d.mu.RLock()
	if d.valid {
		c := d.parsed
		d.mu.RUnlock()
		return c, nil
	}
	d.mu.RUnlock()

	d.mu.Lock()
	defer d.mu.Unlock()
	if d.valid {
		return d.parsed, nil
	}

	c, err := d.load()
	if err != nil {
		return nil, err
	}
	d.parsed, d.valid = c, true
	return c, nil
}

// Invalidate drops the cached changelog.
func (d *Document) Invalidate() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.parsed, d.valid = nil, false
}

func (d *Document) load() (*changelog.Changelog, error) {
	c, err := changelog.Load(d.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	return c, err
}
