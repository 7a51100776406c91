package calendar_tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/craibo/google-workspace-mcp/internal/server"
	"github.com/craibo/google-workspace-mcp/internal/tools/common"
)

// registerCalendarListTools registers tools over the user's calendar list.
func registerCalendarListTools(s *mcpserver.MCPServer, sc *server.ServerContext) error {
	listCalendarsTool := mcp.NewTool("calendar_list_calendars",
		mcp.WithDescription("List all calendars the authenticated user has access to"),
		mcp.WithString("account",
			mcp.Description("Account name (default: 'default'). Used to manage multiple Google accounts."),
		),
	)

	s.AddTool(listCalendarsTool, common.InstrumentedToolHandlerWithService("calendar_list_calendars", "calendar", "list_calendars", sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			args := request.GetArguments()
			account := common.GetAccountFromArgs(args)

			client, err := sc.CalendarClientForAccount(account)
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}

			calendars, err := client.ListCalendars(ctx)
			if err != nil {
				return mcp.NewToolResultError(fmt.Sprintf("Failed to list calendars: %v", err)), nil
			}

			result, _ := json.MarshalIndent(calendars, "", "  ")
			return mcp.NewToolResultText(string(result)), nil
		}))

	return nil
}
