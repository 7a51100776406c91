package drive_tools

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/craibo/google-workspace-mcp/internal/config"
	"github.com/craibo/google-workspace-mcp/internal/contentsearch"
	"github.com/craibo/google-workspace-mcp/internal/instrumentation"
	"github.com/craibo/google-workspace-mcp/internal/server"
	"github.com/craibo/google-workspace-mcp/internal/tools/common"
)

// parseFormats parses a comma-separated list of format names. An empty
// list means all supported formats.
func parseFormats(raw string) ([]contentsearch.Format, error) {
	if raw == "" {
		return nil, nil
	}

	var formats []contentsearch.Format
	for _, name := range strings.Split(raw, ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		format := contentsearch.Format(name)
		if format.MimeType() == "" {
			return nil, fmt.Errorf("unsupported format %q (supported: google-doc, pdf, text, csv, docx)", name)
		}
		formats = append(formats, format)
	}
	return formats, nil
}

// queryFromArgs builds a content search query from request arguments.
func queryFromArgs(args map[string]interface{}) (contentsearch.Query, error) {
	pattern, _ := args["pattern"].(string)

	q := contentsearch.Query{
		Pattern:       pattern,
		MaxResults:    config.MaxContentSearchResults(),
		SnippetLength: config.ContentSearchSnippetLength(),
	}

	if regex, ok := args["regex"].(bool); ok {
		q.Regex = regex
	}
	if caseSensitive, ok := args["caseSensitive"].(bool); ok {
		q.CaseSensitive = caseSensitive
	}
	if folderID, ok := args["folderId"].(string); ok {
		q.Scope.FolderID = folderID
	}
	if formatsStr, ok := args["formats"].(string); ok {
		formats, err := parseFormats(formatsStr)
		if err != nil {
			return q, err
		}
		q.Scope.Formats = formats
	}
	if n, ok := args["maxResults"].(float64); ok && n > 0 {
		q.MaxResults = int(n)
	}
	if n, ok := args["snippetLength"].(float64); ok && n > 0 {
		q.SnippetLength = int(n)
	}

	return q, nil
}

// newSearcher builds a content searcher backed by the account's Drive client.
func newSearcher(account string, sc *server.ServerContext) (*contentsearch.Searcher, error) {
	client, err := getDriveClient(account, sc)
	if err != nil {
		return nil, err
	}
	return contentsearch.NewSearcher(contentsearch.NewDriveStore(client), contentsearch.Config{
		MaxResults:    config.MaxContentSearchResults(),
		SnippetLength: config.ContentSearchSnippetLength(),
	}), nil
}

// registerSearchTools registers the content search tools.
func registerSearchTools(s *mcpserver.MCPServer, sc *server.ServerContext) error {
	searchContentTool := mcp.NewTool("drive_search_content",
		mcp.WithDescription("Search inside Drive file contents (Google Docs, PDF, text, CSV, DOCX). "+
			"Returns matching files with highlighted snippets; files that cannot be decoded are skipped."),
		mcp.WithString("account",
			mcp.Description("Account name (default: 'default'). Used to manage multiple Google accounts."),
		),
		mcp.WithString("pattern",
			mcp.Required(),
			mcp.Description("Text or regular expression to search for"),
		),
		mcp.WithBoolean("regex",
			mcp.Description("Treat the pattern as a regular expression (default: false)"),
		),
		mcp.WithBoolean("caseSensitive",
			mcp.Description("Match case-sensitively (default: false)"),
		),
		mcp.WithString("folderId",
			mcp.Description("Restrict the search to direct children of this folder"),
		),
		mcp.WithString("formats",
			mcp.Description("Comma-separated formats to search: google-doc, pdf, text, csv, docx (default: all)"),
		),
		mcp.WithNumber("maxResults",
			mcp.Description("Maximum number of files in the result set (default: 50)"),
		),
		mcp.WithNumber("snippetLength",
			mcp.Description("Snippet length in characters (default: 200)"),
		),
	)

	s.AddTool(searchContentTool, common.InstrumentedToolHandlerWithService("drive_search_content", "drive", "search_content", sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			args := request.GetArguments()
			account := common.GetAccountFromArgs(args)

			q, err := queryFromArgs(args)
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}

			searcher, err := newSearcher(account, sc)
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}

			start := time.Now()
			resultSet, err := searcher.Search(ctx, q)
			duration := time.Since(start)

			metrics := sc.Metrics()
			if err != nil {
				if metrics != nil {
					metrics.RecordContentSearch(ctx, instrumentation.StatusError, 0, 0, duration)
				}

				var queryErr *contentsearch.QueryError
				if errors.As(err, &queryErr) {
					return mcp.NewToolResultError(fmt.Sprintf("Invalid search pattern: %v", queryErr.Err)), nil
				}
				return mcp.NewToolResultError(fmt.Sprintf("Content search failed: %v", err)), nil
			}

			if metrics != nil {
				metrics.RecordContentSearch(ctx, instrumentation.StatusSuccess, resultSet.SkippedFiles, resultSet.TotalMatches, duration)
			}

			result, _ := json.MarshalIndent(resultSet, "", "  ")
			return mcp.NewToolResultText(string(result)), nil
		}))

	searchFileContentTool := mcp.NewTool("drive_search_file_content",
		mcp.WithDescription("Search inside the content of a single Drive file"),
		mcp.WithString("account",
			mcp.Description("Account name (default: 'default'). Used to manage multiple Google accounts."),
		),
		mcp.WithString("fileId",
			mcp.Required(),
			mcp.Description("The ID of the file to search"),
		),
		mcp.WithString("pattern",
			mcp.Required(),
			mcp.Description("Text or regular expression to search for"),
		),
		mcp.WithBoolean("regex",
			mcp.Description("Treat the pattern as a regular expression (default: false)"),
		),
		mcp.WithBoolean("caseSensitive",
			mcp.Description("Match case-sensitively (default: false)"),
		),
		mcp.WithNumber("snippetLength",
			mcp.Description("Snippet length in characters (default: 200)"),
		),
	)

	s.AddTool(searchFileContentTool, common.InstrumentedToolHandlerWithService("drive_search_file_content", "drive", "search_file_content", sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			args := request.GetArguments()
			account := common.GetAccountFromArgs(args)

			fileID, ok := args["fileId"].(string)
			if !ok || fileID == "" {
				return mcp.NewToolResultError("fileId is required"), nil
			}

			q, err := queryFromArgs(args)
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}

			searcher, err := newSearcher(account, sc)
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}

			fileResult, err := searcher.SearchFile(ctx, fileID, q)
			if err != nil {
				var decodeErr *contentsearch.DecodeError
				if errors.As(err, &decodeErr) {
					return mcp.NewToolResultError(fmt.Sprintf("Cannot decode file %s (%s): %v", decodeErr.FileID, decodeErr.Format, decodeErr.Err)), nil
				}
				return mcp.NewToolResultError(fmt.Sprintf("Content search failed: %v", err)), nil
			}

			if fileResult == nil {
				return mcp.NewToolResultText("No matches found."), nil
			}

			result, _ := json.MarshalIndent(fileResult, "", "  ")
			return mcp.NewToolResultText(string(result)), nil
		}))

	return nil
}
