package tasks_tools

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/craibo/google-workspace-mcp/internal/config"
	"github.com/craibo/google-workspace-mcp/internal/server"
	"github.com/craibo/google-workspace-mcp/internal/tasks"
	"github.com/craibo/google-workspace-mcp/internal/tools/common"
)

// registerReadTools registers task listing and search tools.
func registerReadTools(s *mcpserver.MCPServer, sc *server.ServerContext) error {
	listTaskListsTool := mcp.NewTool("tasks_list_task_lists",
		mcp.WithDescription("List all task lists for the authenticated user"),
		mcp.WithString("account",
			mcp.Description("Account name (default: 'default'). Used to manage multiple Google accounts."),
		),
	)

	s.AddTool(listTaskListsTool, common.InstrumentedToolHandlerWithService("tasks_list_task_lists", "tasks", "list_task_lists", sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			args := request.GetArguments()
			account := common.GetAccountFromArgs(args)

			client, err := sc.TasksClientForAccount(account)
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}

			lists, err := client.ListTaskLists(ctx)
			if err != nil {
				return mcp.NewToolResultError(fmt.Sprintf("Failed to list task lists: %v", err)), nil
			}

			result, _ := json.MarshalIndent(lists, "", "  ")
			return mcp.NewToolResultText(string(result)), nil
		}))

	listTasksTool := mcp.NewTool("tasks_list_tasks",
		mcp.WithDescription("List tasks in a task list"),
		mcp.WithString("account",
			mcp.Description("Account name (default: 'default'). Used to manage multiple Google accounts."),
		),
		mcp.WithString("taskListId",
			mcp.Description("The ID of the task list (default: the configured default list)"),
		),
		mcp.WithBoolean("showCompleted",
			mcp.Description("Include completed tasks (default: false)"),
		),
		mcp.WithNumber("maxResults",
			mcp.Description("Maximum number of tasks to return (default: 100)"),
		),
	)

	s.AddTool(listTasksTool, common.InstrumentedToolHandlerWithService("tasks_list_tasks", "tasks", "list", sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			args := request.GetArguments()
			account := common.GetAccountFromArgs(args)
			taskListID := taskListIDFromArgs(args)

			options := tasks.ListTasksOptions{
				MaxResults: int64(config.DefaultTaskMaxResults()),
			}
			if show, ok := args["showCompleted"].(bool); ok {
				options.ShowCompleted = show
			}
			if n, ok := args["maxResults"].(float64); ok && n > 0 {
				options.MaxResults = int64(n)
			}

			client, err := sc.TasksClientForAccount(account)
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}

			items, err := client.ListTasks(ctx, taskListID, options)
			if err != nil {
				return mcp.NewToolResultError(fmt.Sprintf("Failed to list tasks: %v", err)), nil
			}

			result, _ := json.MarshalIndent(items, "", "  ")
			return mcp.NewToolResultText(string(result)), nil
		}))

	searchTasksTool := mcp.NewTool("tasks_search_tasks",
		mcp.WithDescription("Search tasks by text in title or notes. The Tasks API has no server-side search, so this filters the list client-side."),
		mcp.WithString("account",
			mcp.Description("Account name (default: 'default'). Used to manage multiple Google accounts."),
		),
		mcp.WithString("query",
			mcp.Required(),
			mcp.Description("Case-insensitive substring to look for in task titles and notes"),
		),
		mcp.WithString("taskListId",
			mcp.Description("The ID of the task list (default: the configured default list)"),
		),
		mcp.WithBoolean("showCompleted",
			mcp.Description("Include completed tasks (default: false)"),
		),
	)

	s.AddTool(searchTasksTool, common.InstrumentedToolHandlerWithService("tasks_search_tasks", "tasks", "search", sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			args := request.GetArguments()
			account := common.GetAccountFromArgs(args)
			taskListID := taskListIDFromArgs(args)

			query, ok := args["query"].(string)
			if !ok || query == "" {
				return mcp.NewToolResultError("query is required"), nil
			}

			options := tasks.ListTasksOptions{
				MaxResults: int64(config.DefaultTaskMaxResults()),
			}
			if show, ok := args["showCompleted"].(bool); ok {
				options.ShowCompleted = show
			}

			client, err := sc.TasksClientForAccount(account)
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}

			items, err := client.ListTasks(ctx, taskListID, options)
			if err != nil {
				return mcp.NewToolResultError(fmt.Sprintf("Failed to list tasks: %v", err)), nil
			}

			matched := tasks.FilterTasksByQuery(items, query, config.MaxTaskSearchResults())

			result, _ := json.MarshalIndent(matched, "", "  ")
			return mcp.NewToolResultText(string(result)), nil
		}))

	searchByPeriodTool := mcp.NewTool("tasks_search_tasks_by_period",
		mcp.WithDescription("Find tasks whose due date falls inside a date window (day granularity)"),
		mcp.WithString("account",
			mcp.Description("Account name (default: 'default'). Used to manage multiple Google accounts."),
		),
		mcp.WithString("startDate",
			mcp.Required(),
			mcp.Description("Window start date in RFC3339 format (inclusive)"),
		),
		mcp.WithString("endDate",
			mcp.Required(),
			mcp.Description("Window end date in RFC3339 format (inclusive)"),
		),
		mcp.WithString("taskListId",
			mcp.Description("The ID of the task list (default: the configured default list)"),
		),
		mcp.WithBoolean("showCompleted",
			mcp.Description("Include completed tasks (default: false)"),
		),
	)

	s.AddTool(searchByPeriodTool, common.InstrumentedToolHandlerWithService("tasks_search_tasks_by_period", "tasks", "search_by_period", sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			args := request.GetArguments()
			account := common.GetAccountFromArgs(args)
			taskListID := taskListIDFromArgs(args)

			startStr, _ := args["startDate"].(string)
			endStr, _ := args["endDate"].(string)
			start, err := time.Parse(time.RFC3339, startStr)
			if err != nil {
				return mcp.NewToolResultError(fmt.Sprintf("startDate must be RFC3339: %v", err)), nil
			}
			end, err := time.Parse(time.RFC3339, endStr)
			if err != nil {
				return mcp.NewToolResultError(fmt.Sprintf("endDate must be RFC3339: %v", err)), nil
			}
			if end.Before(start) {
				return mcp.NewToolResultError("endDate must not be before startDate"), nil
			}

			options := tasks.ListTasksOptions{
				MaxResults: int64(config.DefaultTaskMaxResults()),
			}
			if show, ok := args["showCompleted"].(bool); ok {
				options.ShowCompleted = show
			}

			client, err := sc.TasksClientForAccount(account)
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}

			items, err := client.ListTasks(ctx, taskListID, options)
			if err != nil {
				return mcp.NewToolResultError(fmt.Sprintf("Failed to list tasks: %v", err)), nil
			}

			matched := tasks.FilterTasksByDueRange(items, start, end, config.MaxTaskSearchResults())

			result, _ := json.MarshalIndent(matched, "", "  ")
			return mcp.NewToolResultText(string(result)), nil
		}))

	return nil
}
