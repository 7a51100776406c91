package tasks_tools

import (
	"fmt"

	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/craibo/google-workspace-mcp/internal/config"
	"github.com/craibo/google-workspace-mcp/internal/server"
)

// RegisterTasksTools registers all Tasks-related tools with the MCP
// server. Write tools (create/update/complete) are registered only
// when readOnly is false.
func RegisterTasksTools(s *mcpserver.MCPServer, sc *server.ServerContext, readOnly bool) error {
	if err := registerReadTools(s, sc); err != nil {
		return fmt.Errorf("failed to register task read tools: %w", err)
	}

	if !readOnly {
		if err := registerWriteTools(s, sc); err != nil {
			return fmt.Errorf("failed to register task write tools: %w", err)
		}
	}

	return nil
}

// taskListIDFromArgs resolves the task list ID, falling back to the
// configured default ("@default" unless overridden).
func taskListIDFromArgs(args map[string]interface{}) string {
	id, _ := args["taskListId"].(string)
	return config.ValidateTaskListID(id)
}
