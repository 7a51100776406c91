package tasks_tools

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/craibo/google-workspace-mcp/internal/server"
	"github.com/craibo/google-workspace-mcp/internal/tasks"
	"github.com/craibo/google-workspace-mcp/internal/tools/batch"
	"github.com/craibo/google-workspace-mcp/internal/tools/common"
)

// registerWriteTools registers task mutation tools. These are skipped
// entirely when the server runs in read-only mode.
func registerWriteTools(s *mcpserver.MCPServer, sc *server.ServerContext) error {
	createTaskTool := mcp.NewTool("tasks_create_task",
		mcp.WithDescription("Create a task in a task list"),
		mcp.WithString("account",
			mcp.Description("Account name (default: 'default'). Used to manage multiple Google accounts."),
		),
		mcp.WithString("title",
			mcp.Required(),
			mcp.Description("The title of the new task"),
		),
		mcp.WithString("taskListId",
			mcp.Description("The ID of the task list (default: the configured default list)"),
		),
		mcp.WithString("notes",
			mcp.Description("Notes or description for the task"),
		),
		mcp.WithString("due",
			mcp.Description("Due date in RFC3339 format (the API keeps day granularity only)"),
		),
		mcp.WithString("parent",
			mcp.Description("Parent task ID to create a subtask"),
		),
	)

	s.AddTool(createTaskTool, common.InstrumentedToolHandlerWithService("tasks_create_task", "tasks", "create", sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			args := request.GetArguments()
			account := common.GetAccountFromArgs(args)
			taskListID := taskListIDFromArgs(args)

			title, ok := args["title"].(string)
			if !ok || title == "" {
				return mcp.NewToolResultError("title is required"), nil
			}

			input := tasks.TaskInput{
				Title:  title,
				Status: "needsAction",
			}
			if notes, ok := args["notes"].(string); ok {
				input.Notes = notes
			}
			if parent, ok := args["parent"].(string); ok {
				input.Parent = parent
			}
			if dueStr, ok := args["due"].(string); ok && dueStr != "" {
				due, err := time.Parse(time.RFC3339, dueStr)
				if err != nil {
					return mcp.NewToolResultError(fmt.Sprintf("due must be RFC3339: %v", err)), nil
				}
				input.Due = due
			}

			client, err := sc.TasksClientForAccount(account)
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}

			task, err := client.CreateTask(ctx, taskListID, input)
			if err != nil {
				return mcp.NewToolResultError(fmt.Sprintf("Failed to create task: %v", err)), nil
			}

			result, _ := json.MarshalIndent(task, "", "  ")
			return mcp.NewToolResultText(fmt.Sprintf("Task created successfully:\n%s", string(result))), nil
		}))

	updateTaskTool := mcp.NewTool("tasks_update_task",
		mcp.WithDescription("Update an existing task; only the provided fields change"),
		mcp.WithString("account",
			mcp.Description("Account name (default: 'default'). Used to manage multiple Google accounts."),
		),
		mcp.WithString("taskId",
			mcp.Required(),
			mcp.Description("The ID of the task to update"),
		),
		mcp.WithString("taskListId",
			mcp.Description("The ID of the task list (default: the configured default list)"),
		),
		mcp.WithString("title",
			mcp.Description("New title for the task"),
		),
		mcp.WithString("notes",
			mcp.Description("New notes or description for the task"),
		),
		mcp.WithString("status",
			mcp.Description("New status: 'needsAction' or 'completed'"),
		),
		mcp.WithString("due",
			mcp.Description("New due date in RFC3339 format"),
		),
	)

	s.AddTool(updateTaskTool, common.InstrumentedToolHandlerWithService("tasks_update_task", "tasks", "update", sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			args := request.GetArguments()
			account := common.GetAccountFromArgs(args)
			taskListID := taskListIDFromArgs(args)

			taskID, ok := args["taskId"].(string)
			if !ok || taskID == "" {
				return mcp.NewToolResultError("taskId is required"), nil
			}

			input := tasks.TaskInput{}
			if title, ok := args["title"].(string); ok {
				input.Title = title
			}
			if notes, ok := args["notes"].(string); ok {
				input.Notes = notes
			}
			if status, ok := args["status"].(string); ok {
				if status != "" && status != "needsAction" && status != "completed" {
					return mcp.NewToolResultError("status must be 'needsAction' or 'completed'"), nil
				}
				input.Status = status
			}
			if dueStr, ok := args["due"].(string); ok && dueStr != "" {
				due, err := time.Parse(time.RFC3339, dueStr)
				if err != nil {
					return mcp.NewToolResultError(fmt.Sprintf("due must be RFC3339: %v", err)), nil
				}
				input.Due = due
			}

			client, err := sc.TasksClientForAccount(account)
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}

			task, err := client.UpdateTask(ctx, taskListID, taskID, input)
			if err != nil {
				return mcp.NewToolResultError(fmt.Sprintf("Failed to update task: %v", err)), nil
			}

			result, _ := json.MarshalIndent(task, "", "  ")
			return mcp.NewToolResultText(fmt.Sprintf("Task updated successfully:\n%s", string(result))), nil
		}))

	completeTaskTool := mcp.NewTool("tasks_complete_task",
		mcp.WithDescription("Mark one or more tasks as completed"),
		mcp.WithString("account",
			mcp.Description("Account name (default: 'default'). Used to manage multiple Google accounts."),
		),
		mcp.WithString("taskIds",
			mcp.Required(),
			mcp.Description("Task ID (string) or array of task IDs to complete"),
		),
		mcp.WithString("taskListId",
			mcp.Description("The ID of the task list (default: the configured default list)"),
		),
	)

	s.AddTool(completeTaskTool, common.InstrumentedToolHandlerWithService("tasks_complete_task", "tasks", "complete", sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			args := request.GetArguments()
			account := common.GetAccountFromArgs(args)
			taskListID := taskListIDFromArgs(args)

			taskIDs, err := batch.ParseStringOrArray(args["taskIds"], "taskIds")
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}

			client, err := sc.TasksClientForAccount(account)
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}

			results := batch.ProcessBatch(ctx, taskIDs, func(taskID string) (string, error) {
				task, err := client.SetTaskCompleted(ctx, taskListID, taskID, true)
				if err != nil {
					return "", err
				}
				return fmt.Sprintf("Task %s (%s) completed", taskID, task.Title), nil
			})

			return mcp.NewToolResultText(batch.FormatResults(results)), nil
		}))

	return nil
}
