package gmail_tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/craibo/google-workspace-mcp/internal/server"
	"github.com/craibo/google-workspace-mcp/internal/tools/common"
)

const defaultSearchResults = 10

// RegisterGmailTools registers all Gmail-related tools with the MCP server.
func RegisterGmailTools(s *mcpserver.MCPServer, sc *server.ServerContext) error {
	searchTool := mcp.NewTool("gmail_search_messages",
		mcp.WithDescription("Search Gmail messages using Gmail's query syntax (e.g. \"from:alice subject:invoice\")"),
		mcp.WithString("account",
			mcp.Description("Account name (default: 'default'). Used to manage multiple Google accounts."),
		),
		mcp.WithString("query",
			mcp.Required(),
			mcp.Description("Gmail search query, see https://support.google.com/mail/answer/7190"),
		),
		mcp.WithNumber("maxResults",
			mcp.Description("Maximum number of messages to return (default: 10)"),
		),
	)

	s.AddTool(searchTool, common.InstrumentedToolHandlerWithService("gmail_search_messages", "gmail", "search", sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			args := request.GetArguments()
			account := common.GetAccountFromArgs(args)

			query, ok := args["query"].(string)
			if !ok || query == "" {
				return mcp.NewToolResultError("query is required"), nil
			}

			maxResults := int64(defaultSearchResults)
			if n, ok := args["maxResults"].(float64); ok && n > 0 {
				maxResults = int64(n)
			}

			client, err := sc.GmailClientForAccount(account)
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}

			messages, err := client.SearchMessages(ctx, query, maxResults)
			if err != nil {
				return mcp.NewToolResultError(fmt.Sprintf("Failed to search messages: %v", err)), nil
			}

			result, _ := json.MarshalIndent(messages, "", "  ")
			return mcp.NewToolResultText(string(result)), nil
		}))

	getMessageTool := mcp.NewTool("gmail_get_message",
		mcp.WithDescription("Get a Gmail message with headers and decoded text body"),
		mcp.WithString("account",
			mcp.Description("Account name (default: 'default'). Used to manage multiple Google accounts."),
		),
		mcp.WithString("messageId",
			mcp.Required(),
			mcp.Description("The ID of the message to retrieve"),
		),
	)

	s.AddTool(getMessageTool, common.InstrumentedToolHandlerWithService("gmail_get_message", "gmail", "get", sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			args := request.GetArguments()
			account := common.GetAccountFromArgs(args)

			messageID, ok := args["messageId"].(string)
			if !ok || messageID == "" {
				return mcp.NewToolResultError("messageId is required"), nil
			}

			client, err := sc.GmailClientForAccount(account)
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}

			message, err := client.GetMessage(ctx, messageID)
			if err != nil {
				return mcp.NewToolResultError(fmt.Sprintf("Failed to get message: %v", err)), nil
			}

			result, _ := json.MarshalIndent(message, "", "  ")
			return mcp.NewToolResultText(string(result)), nil
		}))

	return nil
}
