// Package drive_tools provides MCP tools for Google Drive: metadata
// search, file retrieval and download, and full-content search across
// Google Docs, PDF, plain-text, CSV and DOCX files.
//
// Content search tools:
//   - drive_search_content: sweep a folder (or the whole Drive) for a
//     literal or regex pattern, returning snippets per file. Files that
//     cannot be fetched or decoded are skipped, not fatal.
//   - drive_search_file_content: search a single file by ID; decode
//     failures are surfaced to the caller.
package drive_tools
