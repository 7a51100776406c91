package drive_tools

import (
	"fmt"

	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/craibo/google-workspace-mcp/internal/drive"
	"github.com/craibo/google-workspace-mcp/internal/server"
)

// getDriveClient retrieves or creates a Drive client for the account.
func getDriveClient(account string, sc *server.ServerContext) (*drive.Client, error) {
	return sc.DriveClientForAccount(account)
}

// RegisterDriveTools registers all Drive-related tools with the MCP server.
func RegisterDriveTools(s *mcpserver.MCPServer, sc *server.ServerContext) error {
	if err := registerFileTools(s, sc); err != nil {
		return fmt.Errorf("failed to register file tools: %w", err)
	}

	if err := registerSearchTools(s, sc); err != nil {
		return fmt.Errorf("failed to register content search tools: %w", err)
	}

	return nil
}
