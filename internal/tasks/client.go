package tasks

import (
	"context"
	"fmt"
	"time"

	"google.golang.org/api/option"
	tasks "google.golang.org/api/tasks/v1"

	"github.com/craibo/google-workspace-mcp/internal/google"
)

// Client wraps the Google Tasks service
type Client struct {
	svc     *tasks.Service
	account string // The account this client is associated with
}

// Account returns the account name this client is associated with
func (c *Client) Account() string {
	return c.account
}

// NewClientForAccount creates a new Tasks client with OAuth2 authentication for a specific account
func NewClientForAccount(ctx context.Context, account string) (*Client, error) {
	client, err := google.GetHTTPClientForAccount(ctx, account)
	if err != nil {
		return nil, fmt.Errorf("no valid Google OAuth token found for account %s. Please authorize access first: %w", account, err)
	}

	svc, err := tasks.NewService(ctx, option.WithHTTPClient(client))
	if err != nil {
		return nil, fmt.Errorf("failed to create Tasks service: %w", err)
	}

	return &Client{
		svc:     svc,
		account: account,
	}, nil
}

// NewClient creates a new Tasks client for the default account
func NewClient(ctx context.Context) (*Client, error) {
	return NewClientForAccount(ctx, "default")
}

// ListTaskLists lists all task lists for the authenticated user
func (c *Client) ListTaskLists(ctx context.Context) ([]TaskList, error) {
	result, err := c.svc.Tasklists.List().Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to list task lists: %w", err)
	}

	var taskLists []TaskList
	for _, tl := range result.Items {
		taskLists = append(taskLists, toTaskList(tl))
	}

	return taskLists, nil
}

// ListTasks lists tasks in a task list. Each returned task carries the
// task list ID it came from.
func (c *Client) ListTasks(ctx context.Context, taskListID string, options ListTasksOptions) ([]Task, error) {
	call := c.svc.Tasks.List(taskListID).
		Context(ctx).
		ShowCompleted(options.ShowCompleted).
		ShowHidden(options.ShowHidden)

	if options.MaxResults > 0 {
		call = call.MaxResults(options.MaxResults)
	}

	result, err := call.Do()
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}

	var taskList []Task
	for _, t := range result.Items {
		taskList = append(taskList, toTask(t, taskListID))
	}

	return taskList, nil
}

// GetTask retrieves a specific task by ID
func (c *Client) GetTask(ctx context.Context, taskListID, taskID string) (*Task, error) {
	t, err := c.svc.Tasks.Get(taskListID, taskID).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to get task: %w", err)
	}

	result := toTask(t, taskListID)
	return &result, nil
}

// CreateTask creates a new task, optionally as a subtask of input.Parent
func (c *Client) CreateTask(ctx context.Context, taskListID string, input TaskInput) (*Task, error) {
	if input.Title == "" {
		return nil, fmt.Errorf("task title is required")
	}

	t := &tasks.Task{
		Title: input.Title,
		Notes: input.Notes,
	}
	if !input.Due.IsZero() {
		t.Due = input.Due.Format(time.RFC3339)
	}

	call := c.svc.Tasks.Insert(taskListID, t).Context(ctx)
	if input.Parent != "" {
		call = call.Parent(input.Parent)
	}

	created, err := call.Do()
	if err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	result := toTask(created, taskListID)
	return &result, nil
}

// UpdateTask updates an existing task. Only the fields set in input are
// sent; the Tasks API patch semantics leave the rest untouched.
func (c *Client) UpdateTask(ctx context.Context, taskListID, taskID string, input TaskInput) (*Task, error) {
	patch := &tasks.Task{
		Title:  input.Title,
		Notes:  input.Notes,
		Status: input.Status,
	}
	if !input.Due.IsZero() {
		patch.Due = input.Due.Format(time.RFC3339)
	}

	updated, err := c.svc.Tasks.Patch(taskListID, taskID, patch).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to update task: %w", err)
	}

	result := toTask(updated, taskListID)
	return &result, nil
}

// SetTaskCompleted marks a task as completed or reopens it
func (c *Client) SetTaskCompleted(ctx context.Context, taskListID, taskID string, completed bool) (*Task, error) {
	patch := &tasks.Task{}
	if completed {
		patch.Status = "completed"
		now := time.Now().UTC().Format(time.RFC3339)
		patch.Completed = &now
	} else {
		patch.Status = "needsAction"
		patch.NullFields = []string{"Completed"}
	}

	updated, err := c.svc.Tasks.Patch(taskListID, taskID, patch).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to update task completion: %w", err)
	}

	result := toTask(updated, taskListID)
	return &result, nil
}
