package calendar_tools

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/craibo/google-workspace-mcp/internal/calendar"
	"github.com/craibo/google-workspace-mcp/internal/server"
	"github.com/craibo/google-workspace-mcp/internal/tools/common"
)

// defaultListWindow is the event window used when the caller gives no
// time bounds: from now until seven days ahead.
const defaultListWindow = 7 * 24 * time.Hour

// registerEventTools registers event listing, search and retrieval tools.
func registerEventTools(s *mcpserver.MCPServer, sc *server.ServerContext) error {
	listEventsTool := mcp.NewTool("calendar_list_events",
		mcp.WithDescription("List upcoming events across one or more calendars, ordered by start time"),
		mcp.WithString("account",
			mcp.Description("Account name (default: 'default'). Used to manage multiple Google accounts."),
		),
		mcp.WithString("calendarIds",
			mcp.Description("Comma-separated calendar IDs (default: configured calendars, usually 'primary')"),
		),
		mcp.WithString("timeMin",
			mcp.Description("Lower time bound in RFC3339 format (default: now)"),
		),
		mcp.WithString("timeMax",
			mcp.Description("Upper time bound in RFC3339 format (default: 7 days from now)"),
		),
		mcp.WithNumber("maxResults",
			mcp.Description("Maximum events per calendar (default: API default)"),
		),
	)

	s.AddTool(listEventsTool, common.InstrumentedToolHandlerWithService("calendar_list_events", "calendar", "list", sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			args := request.GetArguments()
			account := common.GetAccountFromArgs(args)

			timeMin, err := parseTimeArg(args, "timeMin")
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}
			timeMax, err := parseTimeArg(args, "timeMax")
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}
			if timeMin.IsZero() {
				timeMin = time.Now()
			}
			if timeMax.IsZero() {
				timeMax = timeMin.Add(defaultListWindow)
			}

			options := calendar.ListEventsOptions{
				TimeMin: timeMin,
				TimeMax: timeMax,
			}
			if n, ok := args["maxResults"].(float64); ok && n > 0 {
				options.MaxResults = int64(n)
			}

			client, err := sc.CalendarClientForAccount(account)
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}

			events, err := client.ListEventsMulti(ctx, calendarIDsFromArgs(args), options)
			if err != nil {
				return mcp.NewToolResultError(fmt.Sprintf("Failed to list events: %v", err)), nil
			}

			result, _ := json.MarshalIndent(events, "", "  ")
			return mcp.NewToolResultText(string(result)), nil
		}))

	searchEventsTool := mcp.NewTool("calendar_search_events",
		mcp.WithDescription("Search events by free text across one or more calendars"),
		mcp.WithString("account",
			mcp.Description("Account name (default: 'default'). Used to manage multiple Google accounts."),
		),
		mcp.WithString("query",
			mcp.Required(),
			mcp.Description("Free-text search over event summary, description, location and attendees"),
		),
		mcp.WithString("calendarIds",
			mcp.Description("Comma-separated calendar IDs (default: configured calendars, usually 'primary')"),
		),
		mcp.WithString("timeMin",
			mcp.Description("Lower time bound in RFC3339 format"),
		),
		mcp.WithString("timeMax",
			mcp.Description("Upper time bound in RFC3339 format"),
		),
		mcp.WithNumber("maxResults",
			mcp.Description("Maximum events per calendar (default: API default)"),
		),
	)

	s.AddTool(searchEventsTool, common.InstrumentedToolHandlerWithService("calendar_search_events", "calendar", "search", sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			args := request.GetArguments()
			account := common.GetAccountFromArgs(args)

			query, ok := args["query"].(string)
			if !ok || query == "" {
				return mcp.NewToolResultError("query is required"), nil
			}

			timeMin, err := parseTimeArg(args, "timeMin")
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}
			timeMax, err := parseTimeArg(args, "timeMax")
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}

			options := calendar.ListEventsOptions{
				TimeMin: timeMin,
				TimeMax: timeMax,
				Query:   query,
			}
			if n, ok := args["maxResults"].(float64); ok && n > 0 {
				options.MaxResults = int64(n)
			}

			client, err := sc.CalendarClientForAccount(account)
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}

			events, err := client.ListEventsMulti(ctx, calendarIDsFromArgs(args), options)
			if err != nil {
				return mcp.NewToolResultError(fmt.Sprintf("Failed to search events: %v", err)), nil
			}

			result, _ := json.MarshalIndent(events, "", "  ")
			return mcp.NewToolResultText(string(result)), nil
		}))

	getEventTool := mcp.NewTool("calendar_get_event",
		mcp.WithDescription("Get details of a specific calendar event"),
		mcp.WithString("account",
			mcp.Description("Account name (default: 'default'). Used to manage multiple Google accounts."),
		),
		mcp.WithString("eventId",
			mcp.Required(),
			mcp.Description("The ID of the event to retrieve"),
		),
		mcp.WithString("calendarId",
			mcp.Description("Calendar containing the event (default: 'primary')"),
		),
	)

	s.AddTool(getEventTool, common.InstrumentedToolHandlerWithService("calendar_get_event", "calendar", "get", sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			args := request.GetArguments()
			account := common.GetAccountFromArgs(args)

			eventID, ok := args["eventId"].(string)
			if !ok || eventID == "" {
				return mcp.NewToolResultError("eventId is required"), nil
			}

			calendarID := "primary"
			if id, ok := args["calendarId"].(string); ok && id != "" {
				calendarID = id
			}

			client, err := sc.CalendarClientForAccount(account)
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}

			event, err := client.GetEvent(ctx, calendarID, eventID)
			if err != nil {
				return mcp.NewToolResultError(fmt.Sprintf("Failed to get event: %v", err)), nil
			}

			result, _ := json.MarshalIndent(event, "", "  ")
			return mcp.NewToolResultText(string(result)), nil
		}))

	return nil
}
