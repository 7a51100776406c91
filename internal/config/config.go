package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
)

// Environment variable names for runtime configuration.
const (
	EnvDefaultCalendarIDs         = "DEFAULT_CALENDAR_IDS"
	EnvDefaultTaskListID          = "DEFAULT_TASK_LIST_ID"
	EnvMaxContentSearchResults    = "MAX_CONTENT_SEARCH_RESULTS"
	EnvContentSearchSnippetLength = "CONTENT_SEARCH_SNIPPET_LENGTH"
	EnvMaxTaskSearchResults       = "MAX_TASK_SEARCH_RESULTS"
	EnvDefaultTaskMaxResults      = "DEFAULT_TASK_MAX_RESULTS"
)

// Built-in defaults used when the corresponding environment variable is unset.
const (
	DefaultCalendarID                 = "primary"
	DefaultTaskList                   = "@default"
	DefaultMaxContentSearchResults    = 50
	DefaultContentSearchSnippetLength = 200
	DefaultMaxTaskSearchResults       = 100
	DefaultTaskMaxResultsValue        = 100
)

// DefaultCalendarIDs returns the list of calendar IDs to use when a tool call
// does not name specific calendars. The DEFAULT_CALENDAR_IDS environment
// variable holds a comma-separated list; entries are trimmed and empty
// entries dropped.
func DefaultCalendarIDs() []string {
	raw := os.Getenv(EnvDefaultCalendarIDs)
	if raw == "" {
		raw = DefaultCalendarID
	}

	var ids []string
	for _, id := range strings.Split(raw, ",") {
		id = strings.TrimSpace(id)
		if id != "" {
			ids = append(ids, id)
		}
	}
	if len(ids) == 0 {
		ids = []string{DefaultCalendarID}
	}
	return ids
}

// ValidateCalendarIDs normalizes a caller-supplied list of calendar IDs:
// entries are trimmed, duplicates removed (order preserved), and an empty
// result falls back to the configured defaults.
func ValidateCalendarIDs(calendarIDs []string) []string {
	if len(calendarIDs) == 0 {
		return DefaultCalendarIDs()
	}

	seen := make(map[string]bool, len(calendarIDs))
	var validated []string
	for _, id := range calendarIDs {
		id = strings.TrimSpace(id)
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		validated = append(validated, id)
	}

	if len(validated) == 0 {
		slog.Warn("no valid calendar IDs provided, using defaults")
		return DefaultCalendarIDs()
	}
	return validated
}

// DefaultTaskListID returns the task list used when a tool call does not name
// one. Controlled by DEFAULT_TASK_LIST_ID; defaults to the Tasks API alias
// "@default".
func DefaultTaskListID() string {
	if id := strings.TrimSpace(os.Getenv(EnvDefaultTaskListID)); id != "" {
		return id
	}
	return DefaultTaskList
}

// ValidateTaskListID normalizes a caller-supplied task list ID, falling back
// to the configured default when empty.
func ValidateTaskListID(taskListID string) string {
	taskListID = strings.TrimSpace(taskListID)
	if taskListID == "" {
		slog.Warn("no task list ID provided, using default")
		return DefaultTaskListID()
	}
	return taskListID
}

// MaxContentSearchResults returns the result cap for Drive content search
// sweeps (MAX_CONTENT_SEARCH_RESULTS, default 50).
func MaxContentSearchResults() int {
	return intFromEnv(EnvMaxContentSearchResults, DefaultMaxContentSearchResults)
}

// ContentSearchSnippetLength returns the snippet budget in characters for
// content search results (CONTENT_SEARCH_SNIPPET_LENGTH, default 200).
func ContentSearchSnippetLength() int {
	return intFromEnv(EnvContentSearchSnippetLength, DefaultContentSearchSnippetLength)
}

// MaxTaskSearchResults returns the result cap for task search operations
// (MAX_TASK_SEARCH_RESULTS, default 100).
func MaxTaskSearchResults() int {
	return intFromEnv(EnvMaxTaskSearchResults, DefaultMaxTaskSearchResults)
}

// DefaultTaskMaxResults returns the default page size for task listing
// operations (DEFAULT_TASK_MAX_RESULTS, default 100).
func DefaultTaskMaxResults() int {
	return intFromEnv(EnvDefaultTaskMaxResults, DefaultTaskMaxResultsValue)
}

// intFromEnv reads a positive integer from the environment, returning the
// fallback for unset, malformed, or non-positive values.
func intFromEnv(key string, fallback int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n <= 0 {
		slog.Warn("invalid value in environment, using default", "key", key, "value", raw, "default", fallback)
		return fallback
	}
	return n
}
