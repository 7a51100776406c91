package calendar_tools

import (
	"fmt"
	"strings"
	"time"

	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/craibo/google-workspace-mcp/internal/config"
	"github.com/craibo/google-workspace-mcp/internal/server"
)

// RegisterCalendarTools registers all Calendar-related tools with the MCP server.
func RegisterCalendarTools(s *mcpserver.MCPServer, sc *server.ServerContext) error {
	if err := registerEventTools(s, sc); err != nil {
		return fmt.Errorf("failed to register event tools: %w", err)
	}

	if err := registerCalendarListTools(s, sc); err != nil {
		return fmt.Errorf("failed to register calendar list tools: %w", err)
	}

	return nil
}

// calendarIDsFromArgs resolves the calendar IDs for a request: the
// comma-separated "calendarIds" argument when given, otherwise the
// configured defaults.
func calendarIDsFromArgs(args map[string]interface{}) []string {
	raw, _ := args["calendarIds"].(string)
	if raw == "" {
		return config.DefaultCalendarIDs()
	}
	return config.ValidateCalendarIDs(strings.Split(raw, ","))
}

// parseTimeArg parses an optional RFC3339 time argument. A missing or
// empty argument yields the zero time; a malformed one is an error.
func parseTimeArg(args map[string]interface{}, key string) (time.Time, error) {
	raw, ok := args[key].(string)
	if !ok || raw == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("%s must be RFC3339 (e.g. 2026-01-02T15:04:05Z): %w", key, err)
	}
	return t, nil
}
