// Package contentsearch implements full-text search over Drive file
// contents: it enumerates candidate files, decodes each supported format
// to plain text, applies a literal or regex pattern, and returns results
// with highlighted snippets.
//
// The package is deliberately independent of the MCP layer. The Searcher
// talks to Drive through the Store interface so tests can run against an
// in-memory store.
package contentsearch
