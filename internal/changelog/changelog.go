package changelog

import (
	"strings"
)

// Changelog is a parsed Keep a Changelog document: the preamble lines and
// the version sections keyed by lower-cased version, in first-seen order.
type Changelog struct {
	Header []string

	keys    []string
	changes map[string]*Change
}

// New returns an empty document.
func New() *Changelog {
	return &Changelog{changes: make(map[string]*Change)}
}

// Len returns the number of sections.
func (c *Changelog) Len() int {
	return len(c.keys)
}

// Keys returns the section keys in document order.
func (c *Changelog) Keys() []string {
	out := make([]string, len(c.keys))
	copy(out, c.keys)
	return out
}

// Changes returns the sections in document order.
func (c *Changelog) Changes() []*Change {
	out := make([]*Change, 0, len(c.keys))
	for _, k := range c.keys {
		out = append(out, c.changes[k])
	}
	return out
}

// Get returns the section stored under version, ignoring case.
func (c *Changelog) Get(version string) (*Change, bool) {
	ch, ok := c.changes[strings.ToLower(version)]
	return ch, ok
}

// Set stores ch under its own key. An existing key keeps its position.
func (c *Changelog) Set(ch *Change) {
	c.ensure()
	key := ch.Key()
	if _, ok := c.changes[key]; !ok {
		c.keys = append(c.keys, key)
	}
	c.changes[key] = ch
}

// insertAfter stores ch right after the section keyed by after, removing any
// previous position of ch's key.
func (c *Changelog) insertAfter(after string, ch *Change) {
	c.ensure()
	key := ch.Key()
	c.delete(key)

	pos := len(c.keys)
	for i, k := range c.keys {
		if k == after {
			pos = i + 1
			break
		}
	}
	c.keys = append(c.keys, "")
	copy(c.keys[pos+1:], c.keys[pos:])
	c.keys[pos] = key
	c.changes[key] = ch
}

func (c *Changelog) delete(key string) {
	if _, ok := c.changes[key]; !ok {
		return
	}
	delete(c.changes, key)
	for i, k := range c.keys {
		if k == key {
			c.keys = append(c.keys[:i], c.keys[i+1:]...)
			return
		}
	}
}

// lookupOrCreate returns the section for version, creating an empty one at
// the end of the document when it does not exist yet.
func (c *Changelog) lookupOrCreate(version string) *Change {
	if ch, ok := c.Get(version); ok {
		return ch
	}
	ch := NewChange(Metadata{Version: version})
	c.Set(ch)
	return ch
}

func (c *Changelog) ensure() {
	if c.changes == nil {
		c.changes = make(map[string]*Change)
	}
}
