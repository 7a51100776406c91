package drive

import (
	"context"
	"fmt"
	"io"
	"time"

	drive "google.golang.org/api/drive/v3"
	"google.golang.org/api/option"

	"github.com/craibo/google-workspace-mcp/internal/google"
)

const (
	// FolderMimeType is the MIME type for Google Drive folders
	FolderMimeType = "application/vnd.google-apps.folder"
)

const fileFields = "id, name, mimeType, size, createdTime, modifiedTime, webViewLink, parents, owners, shared, trashed"

// Client wraps the Google Drive API service
type Client struct {
	service *drive.Service
	account string // The account this client is associated with
}

// Account returns the account name this client is associated with
func (c *Client) Account() string {
	return c.account
}

// NewClientForAccount creates a new Google Drive client with OAuth2 authentication for a specific account
// Returns an error if no valid token exists - use google.HasTokenForAccount() to check first
func NewClientForAccount(ctx context.Context, account string) (*Client, error) {
	client, err := google.GetHTTPClientForAccount(ctx, account)
	if err != nil {
		return nil, fmt.Errorf("no valid Google OAuth token found for account %s. Please authorize access first: %w", account, err)
	}

	driveService, err := drive.NewService(ctx, option.WithHTTPClient(client))
	if err != nil {
		return nil, fmt.Errorf("failed to create Drive service: %w", err)
	}

	return &Client{
		service: driveService,
		account: account,
	}, nil
}

// NewClient creates a new Google Drive client for the default account
func NewClient(ctx context.Context) (*Client, error) {
	return NewClientForAccount(ctx, "default")
}

// ListFiles lists files in Google Drive with optional filtering
func (c *Client) ListFiles(ctx context.Context, options *ListOptions) ([]*FileInfo, string, error) {
	call := c.service.Files.List().
		Context(ctx).
		Fields("nextPageToken, files(" + fileFields + ")")

	query := ""
	if options != nil {
		query = options.Query
		if options.MaxResults > 0 {
			call = call.PageSize(int64(options.MaxResults))
		}
		if options.OrderBy != "" {
			call = call.OrderBy(options.OrderBy)
		}
		if options.PageToken != "" {
			call = call.PageToken(options.PageToken)
		}
	}
	if options == nil || !options.IncludeTrashed {
		if query != "" {
			query = "(" + query + ") and trashed=false"
		} else {
			query = "trashed=false"
		}
	}
	if query != "" {
		call = call.Q(query)
	}

	fileList, err := call.Do()
	if err != nil {
		return nil, "", fmt.Errorf("failed to list files: %w", err)
	}

	files := make([]*FileInfo, len(fileList.Files))
	for i, f := range fileList.Files {
		files[i] = convertToFileInfo(f)
	}

	return files, fileList.NextPageToken, nil
}

// GetFile retrieves metadata for a specific file
func (c *Client) GetFile(ctx context.Context, fileID string) (*FileInfo, error) {
	if fileID == "" {
		return nil, fmt.Errorf("fileID is required")
	}

	file, err := c.service.Files.Get(fileID).
		Context(ctx).
		Fields(fileFields).
		Do()
	if err != nil {
		return nil, fmt.Errorf("failed to get file %s: %w", fileID, err)
	}

	return convertToFileInfo(file), nil
}

// DownloadFile downloads the raw content of a file. The caller must
// close the returned reader.
func (c *Client) DownloadFile(ctx context.Context, fileID string) (io.ReadCloser, error) {
	if fileID == "" {
		return nil, fmt.Errorf("fileID is required")
	}

	resp, err := c.service.Files.Get(fileID).
		Context(ctx).
		Download()
	if err != nil {
		return nil, fmt.Errorf("failed to download file %s: %w", fileID, err)
	}

	return resp.Body, nil
}

// ExportFile exports a Google-native document (Docs, Sheets, Slides) to
// the given MIME type, e.g. "text/plain". Regular files cannot be
// exported; use DownloadFile for those.
func (c *Client) ExportFile(ctx context.Context, fileID, mimeType string) ([]byte, error) {
	if fileID == "" {
		return nil, fmt.Errorf("fileID is required")
	}
	if mimeType == "" {
		return nil, fmt.Errorf("mimeType is required")
	}

	resp, err := c.service.Files.Export(fileID, mimeType).
		Context(ctx).
		Download()
	if err != nil {
		return nil, fmt.Errorf("failed to export file %s as %s: %w", fileID, mimeType, err)
	}
	defer resp.Body.Close()

	content, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read export of file %s: %w", fileID, err)
	}

	return content, nil
}

// GetFolderName resolves a folder ID to its display name
func (c *Client) GetFolderName(ctx context.Context, folderID string) (string, error) {
	if folderID == "" {
		return "", fmt.Errorf("folderID is required")
	}

	folder, err := c.service.Files.Get(folderID).
		Context(ctx).
		Fields("id, name, mimeType").
		Do()
	if err != nil {
		return "", fmt.Errorf("failed to get folder %s: %w", folderID, err)
	}

	return folder.Name, nil
}

// convertToFileInfo converts a Drive API File to our FileInfo type
func convertToFileInfo(f *drive.File) *FileInfo {
	fileInfo := &FileInfo{
		ID:          f.Id,
		Name:        f.Name,
		MimeType:    f.MimeType,
		Size:        f.Size,
		WebViewLink: f.WebViewLink,
		Parents:     f.Parents,
		Shared:      f.Shared,
		Trashed:     f.Trashed,
	}

	// Parse timestamps
	if f.CreatedTime != "" {
		if t, err := time.Parse(time.RFC3339, f.CreatedTime); err == nil {
			fileInfo.CreatedTime = t
		}
	}
	if f.ModifiedTime != "" {
		if t, err := time.Parse(time.RFC3339, f.ModifiedTime); err == nil {
			fileInfo.ModifiedTime = t
		}
	}

	// Convert owners
	for _, owner := range f.Owners {
		fileInfo.Owners = append(fileInfo.Owners, User{
			DisplayName:  owner.DisplayName,
			EmailAddress: owner.EmailAddress,
		})
	}

	return fileInfo
}
