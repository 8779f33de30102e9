package changelog

// ToDict returns the dictionary form of the document, keyed by lower-cased
// version. Sections without release information are only included when
// showUnreleased is set. With raw, each section carries its body text instead
// of per-category arrays.
func (c *Changelog) ToDict(showUnreleased, raw bool) map[string]any {
	out := make(map[string]any, c.Len())
	for _, ch := range c.Changes() {
		if ch.IsReleased() || showUnreleased {
			out[ch.Key()] = ch.ToDict(raw)
		}
	}
	return out
}

// ChangeDict returns the dictionary form of a single section.
func (c *Changelog) ChangeDict(version string, raw bool) (map[string]any, error) {
	ch, err := c.GetVersion(version)
	if err != nil {
		return nil, err
	}
	return ch.ToDict(raw), nil
}
