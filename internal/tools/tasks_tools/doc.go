// Package tasks_tools provides MCP tools for Google Tasks: task list
// and task listing, client-side text and due-date search (the Tasks
// API has no server-side search), and task creation, update and
// completion. Mutating tools are only registered when the server is
// not in read-only mode.
package tasks_tools
