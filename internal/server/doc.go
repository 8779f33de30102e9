// Package server exposes a changelog file over HTTP.
//
// The endpoints, mounted under a configurable path such as /changelog, are:
//
//	GET /changelog            dictionary form of the released sections as JSON ({} when the file is missing)
//	GET /changelog/{version}  dictionary form of one section, 404 when absent
//	GET /changelog.md         Markdown (?raw=true for the verbatim document)
//	GET /changelog.html       HTML rendering
//
// Register mounts the endpoints on an existing chi router. Server runs a
// standalone HTTP server that caches the parsed document and drops the cache
// whenever the file changes on disk.
package server
