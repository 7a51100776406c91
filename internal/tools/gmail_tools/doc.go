// Package gmail_tools provides MCP tools for Gmail: message search and
// message retrieval with decoded text bodies.
package gmail_tools
