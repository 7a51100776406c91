package drive_tools

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/craibo/google-workspace-mcp/internal/drive"
	"github.com/craibo/google-workspace-mcp/internal/server"
	"github.com/craibo/google-workspace-mcp/internal/tools/common"
)

// maxDownloadBytes bounds the amount of file content returned by
// drive_download_file; larger files are truncated.
const maxDownloadBytes = 1 << 20

// registerFileTools registers file metadata and download tools.
func registerFileTools(s *mcpserver.MCPServer, sc *server.ServerContext) error {
	searchFilesTool := mcp.NewTool("drive_search_files",
		mcp.WithDescription("Search Google Drive files by metadata using the Drive query language (e.g. \"name contains 'report'\")"),
		mcp.WithString("account",
			mcp.Description("Account name (default: 'default'). Used to manage multiple Google accounts."),
		),
		mcp.WithString("query",
			mcp.Required(),
			mcp.Description("Drive query string, see https://developers.google.com/drive/api/guides/search-files"),
		),
		mcp.WithNumber("maxResults",
			mcp.Description("Maximum number of files to return (default: 25)"),
		),
	)

	s.AddTool(searchFilesTool, common.InstrumentedToolHandlerWithService("drive_search_files", "drive", "list", sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			args := request.GetArguments()
			account := common.GetAccountFromArgs(args)

			query, ok := args["query"].(string)
			if !ok || query == "" {
				return mcp.NewToolResultError("query is required"), nil
			}

			maxResults := 25
			if n, ok := args["maxResults"].(float64); ok && n > 0 {
				maxResults = int(n)
			}

			client, err := getDriveClient(account, sc)
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}

			files, _, err := client.ListFiles(ctx, &drive.ListOptions{
				Query:      query,
				MaxResults: maxResults,
			})
			if err != nil {
				return mcp.NewToolResultError(fmt.Sprintf("Failed to search files: %v", err)), nil
			}

			result, _ := json.MarshalIndent(files, "", "  ")
			return mcp.NewToolResultText(string(result)), nil
		}))

	getFileTool := mcp.NewTool("drive_get_file",
		mcp.WithDescription("Get metadata for a Google Drive file"),
		mcp.WithString("account",
			mcp.Description("Account name (default: 'default'). Used to manage multiple Google accounts."),
		),
		mcp.WithString("fileId",
			mcp.Required(),
			mcp.Description("The ID of the file to retrieve"),
		),
	)

	s.AddTool(getFileTool, common.InstrumentedToolHandlerWithService("drive_get_file", "drive", "get", sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			args := request.GetArguments()
			account := common.GetAccountFromArgs(args)

			fileID, ok := args["fileId"].(string)
			if !ok || fileID == "" {
				return mcp.NewToolResultError("fileId is required"), nil
			}

			client, err := getDriveClient(account, sc)
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}

			file, err := client.GetFile(ctx, fileID)
			if err != nil {
				return mcp.NewToolResultError(fmt.Sprintf("Failed to get file: %v", err)), nil
			}

			result, _ := json.MarshalIndent(file, "", "  ")
			return mcp.NewToolResultText(string(result)), nil
		}))

	downloadFileTool := mcp.NewTool("drive_download_file",
		mcp.WithDescription("Download the raw content of a Google Drive file (truncated to 1 MiB)"),
		mcp.WithString("account",
			mcp.Description("Account name (default: 'default'). Used to manage multiple Google accounts."),
		),
		mcp.WithString("fileId",
			mcp.Required(),
			mcp.Description("The ID of the file to download"),
		),
	)

	s.AddTool(downloadFileTool, common.InstrumentedToolHandlerWithService("drive_download_file", "drive", "download", sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			args := request.GetArguments()
			account := common.GetAccountFromArgs(args)

			fileID, ok := args["fileId"].(string)
			if !ok || fileID == "" {
				return mcp.NewToolResultError("fileId is required"), nil
			}

			client, err := getDriveClient(account, sc)
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}

			body, err := client.DownloadFile(ctx, fileID)
			if err != nil {
				return mcp.NewToolResultError(fmt.Sprintf("Failed to download file: %v", err)), nil
			}
			defer body.Close()

			content, err := io.ReadAll(io.LimitReader(body, maxDownloadBytes))
			if err != nil {
				return mcp.NewToolResultError(fmt.Sprintf("Failed to read file content: %v", err)), nil
			}

			return mcp.NewToolResultText(string(content)), nil
		}))

	return nil
}
