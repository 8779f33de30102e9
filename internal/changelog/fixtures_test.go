package changelog

const preamble = `# Changelog
All notable changes to this project will be documented in this file.

The format is based on [Keep a Changelog](https://keepachangelog.com/en/1.0.0/),
and this project adheres to [Semantic Versioning](https://semver.org/spec/v2.0.0.html).
`

// standardChangelog exercises every category, a link-only version and
// reference definitions at the end of the file.
const standardChangelog = preamble + `
## [Unreleased]

## [1.2.0] - 2018-06-01
### Changed
- Release note 1.
- Release note 2.

### Added
- Enhancement 1
- sub enhancement 1
- sub enhancement 2
- Enhancement 2

### Fixed
- Bug fix 1
- sub bug 1
- sub bug 2
- Bug fix 2

### Security
- Known issue 1
- Known issue 2

### Deprecated
- Deprecated feature 1
- Future removal 2

### Removed
- Deprecated feature 2
- Future removal 1

## [1.1.0] - 2018-05-31
### Changed
- Enhancement 1 (1.1.0)
- sub enhancement 1
- sub enhancement 2
- Enhancement 2 (1.1.0)

## [1.0.1] - 2018-05-31
### Fixed
- Bug fix 1 (1.0.1)
- sub bug 1
- sub bug 2
- Bug fix 2 (1.0.1)

## [1.0.0] - 2017-04-10
### Deprecated
- Known issue 1 (1.0.0)
- Known issue 2 (1.0.0)

[Unreleased]: https://github.test_url/test_project/compare/v1.1.0...HEAD
[1.1.0]: https://github.test_url/test_project/compare/v1.0.2...v1.1.0
[1.0.2]: https://github.test_url/test_project/compare/v1.0.1...v1.0.2
[1.0.1]: https://github.test_url/test_project/compare/v1.0.0...v1.0.1
[1.0.0]: https://github.test_url/test_project/releases/tag/v1.0.0
`

// nonStandardChangelog uses bare versions, loose dates, odd bullets and
// uncategorized notes.
const nonStandardChangelog = `Changelog
=========

Some free text.

## 1.2.0 (June 1, 2018)
Uncategorized note before any category.
### changed
- Release note 1.
* Release note 2.
### Improvements
- Still attributed to changed.

## [1.1.0] (May 31 2018)
### Added
 - Enhancement 1 (1.1.0)
 * sub enhancement 1

## 1.0.0 - 1er mai 2017
### Fixed
- Bug fix 1 (1.0.0)

## Develop
- Work in progress
`

func sv(major, minor, patch int) map[string]any {
	return map[string]any{
		"major":         major,
		"minor":         minor,
		"patch":         patch,
		"prerelease":    nil,
		"buildmetadata": nil,
	}
}
