// Package calendar_tools provides MCP tools for Google Calendar:
// multi-calendar event listing, free-text event search, event
// retrieval, and calendar list access. Default calendars come from
// the DEFAULT_CALENDAR_IDS environment variable.
package calendar_tools
