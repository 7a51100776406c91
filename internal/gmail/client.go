package gmail

import (
	"context"
	"fmt"
	"log/slog"

	gmail "google.golang.org/api/gmail/v1"
	"google.golang.org/api/option"

	"github.com/craibo/google-workspace-mcp/internal/google"
	"github.com/craibo/google-workspace-mcp/internal/logging"
)

// Client wraps the Gmail Users service
type Client struct {
	svc     *gmail.UsersService
	account string // The account this client is associated with
}

// Account returns the account name this client is associated with
func (c *Client) Account() string {
	return c.account
}

// NewClientForAccount creates a new Gmail client with OAuth2 authentication for a specific account
func NewClientForAccount(ctx context.Context, account string) (*Client, error) {
	client, err := google.GetHTTPClientForAccount(ctx, account)
	if err != nil {
		return nil, fmt.Errorf("no valid Google OAuth token found for account %s. Please authorize access first: %w", account, err)
	}

	svc, err := gmail.NewService(ctx, option.WithHTTPClient(client))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gmail service: %w", err)
	}

	return &Client{
		svc:     svc.Users,
		account: account,
	}, nil
}

// NewClient creates a new Gmail client for the default account
func NewClient(ctx context.Context) (*Client, error) {
	return NewClientForAccount(ctx, "default")
}

// SearchMessages searches for messages matching Gmail's query syntax
// (e.g. "from:alice subject:invoice is:unread") and returns compact
// summaries with the Subject/From/Date headers resolved.
func (c *Client) SearchMessages(ctx context.Context, query string, maxResults int64) ([]MessageSummary, error) {
	if query == "" {
		return nil, fmt.Errorf("query is required")
	}

	call := c.svc.Messages.List("me").Context(ctx).Q(query)
	if maxResults > 0 {
		call = call.MaxResults(maxResults)
	}

	res, err := call.Do()
	if err != nil {
		return nil, fmt.Errorf("failed to search messages: %w", err)
	}

	// The list call returns only IDs; headers need a metadata fetch.
	return collectSummaries(ctx, res.Messages, func(id string) (*gmail.Message, error) {
		return c.svc.Messages.Get("me", id).
			Context(ctx).
			Format("metadata").
			MetadataHeaders("Subject", "From", "Date").
			Do()
	})
}

// collectSummaries resolves message references to header summaries. A
// reference whose metadata fetch fails is dropped so one bad message
// does not sink a multi-result search; a cancelled context still fails
// the whole call.
func collectSummaries(ctx context.Context, refs []*gmail.Message, fetch func(id string) (*gmail.Message, error)) ([]MessageSummary, error) {
	summaries := make([]MessageSummary, 0, len(refs))
	for _, ref := range refs {
		msg, err := fetch(ref.Id)
		if err != nil {
			if ctx.Err() != nil {
				return nil, fmt.Errorf("failed to get message %s: %w", ref.Id, err)
			}
			slog.Debug("skipping message in search results",
				logging.Service("gmail"),
				slog.String("message_id", ref.Id),
				logging.Err(err))
			continue
		}
		summaries = append(summaries, toMessageSummary(msg))
	}
	return summaries, nil
}

// GetMessage fetches one message in full, including its decoded
// plain-text body.
func (c *Client) GetMessage(ctx context.Context, messageID string) (*MessageDetails, error) {
	if messageID == "" {
		return nil, fmt.Errorf("messageID is required")
	}

	msg, err := c.svc.Messages.Get("me", messageID).
		Context(ctx).
		Format("full").
		Do()
	if err != nil {
		return nil, fmt.Errorf("failed to get message %s: %w", messageID, err)
	}

	details := toMessageDetails(msg)
	return &details, nil
}
