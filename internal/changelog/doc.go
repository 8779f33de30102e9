// Package changelog parses, releases and renders Keep a Changelog documents.
//
// A document is read line by line into a header and an ordered set of
// version sections. Each section keeps its notes sorted into the fixed
// categories (added, changed, deprecated, removed, fixed, security, plus
// uncategorized) and, separately, the verbatim lines it was read from, so
// that a released document can be written back without reformatting the
// sections that did not change.
//
// Parsing never fails on malformed historical content: unknown date formats
// are kept as text and unknown category headers are ignored. Only the release
// engine and explicit version parsing return errors.
//
// Typical use:
//
//	c, err := changelog.Load("CHANGELOG.md")
//	if err != nil {
//		return err
//	}
//	version, err := c.Release("")
//	if errors.Is(err, changelog.ErrNothingToRelease) {
//		return nil
//	}
//	if err != nil {
//		return err
//	}
//	return c.Save("CHANGELOG.md")
package changelog
