package calendar

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	calendar "google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"

	"github.com/craibo/google-workspace-mcp/internal/google"
	"github.com/craibo/google-workspace-mcp/internal/logging"
)

// Client wraps the Google Calendar service
type Client struct {
	svc     *calendar.Service
	account string // The account this client is associated with
}

// Account returns the account name this client is associated with
func (c *Client) Account() string {
	return c.account
}

// NewClientForAccount creates a new Calendar client with OAuth2 authentication for a specific account
func NewClientForAccount(ctx context.Context, account string) (*Client, error) {
	client, err := google.GetHTTPClientForAccount(ctx, account)
	if err != nil {
		return nil, fmt.Errorf("no valid Google OAuth token found for account %s. Please authorize access first: %w", account, err)
	}

	svc, err := calendar.NewService(ctx, option.WithHTTPClient(client))
	if err != nil {
		return nil, fmt.Errorf("failed to create Calendar service: %w", err)
	}

	return &Client{
		svc:     svc,
		account: account,
	}, nil
}

// NewClient creates a new Calendar client for the default account
func NewClient(ctx context.Context) (*Client, error) {
	return NewClientForAccount(ctx, "default")
}

// ListCalendars lists all calendars visible to the authenticated user
func (c *Client) ListCalendars(ctx context.Context) ([]CalendarInfo, error) {
	result, err := c.svc.CalendarList.List().Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to list calendars: %w", err)
	}

	var calendars []CalendarInfo
	for _, entry := range result.Items {
		calendars = append(calendars, toCalendarInfo(entry))
	}

	return calendars, nil
}

// ListEvents lists events in one calendar, expanded to single events and
// ordered by start time
func (c *Client) ListEvents(ctx context.Context, calendarID string, options ListEventsOptions) ([]EventSummary, error) {
	call := c.svc.Events.List(calendarID).
		Context(ctx).
		SingleEvents(true).
		OrderBy("startTime")

	if !options.TimeMin.IsZero() {
		call = call.TimeMin(options.TimeMin.Format(time.RFC3339))
	}
	if !options.TimeMax.IsZero() {
		call = call.TimeMax(options.TimeMax.Format(time.RFC3339))
	}
	if options.Query != "" {
		call = call.Q(options.Query)
	}
	if options.MaxResults > 0 {
		call = call.MaxResults(options.MaxResults)
	}

	events, err := call.Do()
	if err != nil {
		return nil, fmt.Errorf("failed to list events in calendar %s: %w", calendarID, err)
	}

	var summaries []EventSummary
	for _, event := range events.Items {
		summaries = append(summaries, toEventSummary(event, calendarID))
	}

	return summaries, nil
}

// ListEventsMulti lists events across several calendars, concatenated in
// calendar order. A calendar that cannot be read is logged and skipped;
// the call fails only when every calendar fails.
func (c *Client) ListEventsMulti(ctx context.Context, calendarIDs []string, options ListEventsOptions) ([]EventSummary, error) {
	var all []EventSummary
	var lastErr error
	failures := 0

	for _, id := range calendarIDs {
		events, err := c.ListEvents(ctx, id, options)
		if err != nil {
			slog.Warn("skipping unreadable calendar",
				logging.Service("calendar"),
				slog.String("calendar_id", id),
				logging.Err(err))
			failures++
			lastErr = err
			continue
		}
		all = append(all, events...)
	}

	if failures > 0 && failures == len(calendarIDs) {
		return nil, fmt.Errorf("all %d calendars failed: %w", failures, lastErr)
	}
	return all, nil
}

// GetEvent retrieves a specific event by ID
func (c *Client) GetEvent(ctx context.Context, calendarID, eventID string) (*EventSummary, error) {
	event, err := c.svc.Events.Get(calendarID, eventID).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to get event %s: %w", eventID, err)
	}

	summary := toEventSummary(event, calendarID)
	return &summary, nil
}
