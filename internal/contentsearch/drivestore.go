package contentsearch

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/craibo/google-workspace-mcp/internal/drive"
)

// DriveStore adapts the Drive client to the Store interface. Scope
// restrictions are compiled into Drive's query language so filtering
// happens server-side.
type DriveStore struct {
	client *drive.Client
}

// NewDriveStore wraps an authenticated Drive client.
func NewDriveStore(client *drive.Client) *DriveStore {
	return &DriveStore{client: client}
}

// ListPage fetches one page of candidates matching the scope.
func (s *DriveStore) ListPage(ctx context.Context, scope Scope, pageSize int, pageToken string) ([]DocumentRef, string, error) {
	files, next, err := s.client.ListFiles(ctx, &drive.ListOptions{
		Query:      buildScopeQuery(scope),
		MaxResults: pageSize,
		OrderBy:    "name",
		PageToken:  pageToken,
	})
	if err != nil {
		return nil, "", err
	}
	refs := make([]DocumentRef, len(files))
	for i, f := range files {
		refs[i] = toDocumentRef(f)
	}
	return refs, next, nil
}

// GetFile fetches the metadata snapshot for one file.
func (s *DriveStore) GetFile(ctx context.Context, fileID string) (*DocumentRef, error) {
	f, err := s.client.GetFile(ctx, fileID)
	if err != nil {
		return nil, err
	}
	ref := toDocumentRef(f)
	return &ref, nil
}

// FetchRaw downloads a file's raw bytes.
func (s *DriveStore) FetchRaw(ctx context.Context, fileID string) ([]byte, error) {
	rc, err := s.client.DownloadFile(ctx, fileID)
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return io.ReadAll(rc)
}

// ExportText exports a Google-native document as plain text.
func (s *DriveStore) ExportText(ctx context.Context, fileID string) (string, error) {
	content, err := s.client.ExportFile(ctx, fileID, "text/plain")
	if err != nil {
		return "", err
	}
	return string(content), nil
}

// FolderName resolves a folder ID to its display name.
func (s *DriveStore) FolderName(ctx context.Context, folderID string) (string, error) {
	return s.client.GetFolderName(ctx, folderID)
}

// buildScopeQuery translates a Scope into Drive query syntax. The MIME
// type clause always restricts to decodable formats so the sweep never
// downloads files it cannot search.
func buildScopeQuery(scope Scope) string {
	formats := scope.Formats
	if len(formats) == 0 {
		formats = SearchableFormats()
	}
	clauses := make([]string, 0, len(formats))
	for _, f := range formats {
		if mime := f.MimeType(); mime != "" {
			clauses = append(clauses, fmt.Sprintf("mimeType='%s'", mime))
		}
	}
	query := "(" + strings.Join(clauses, " or ") + ")"
	if scope.FolderID != "" {
		query += fmt.Sprintf(" and '%s' in parents", escapeQueryValue(scope.FolderID))
	}
	return query
}

// escapeQueryValue escapes single quotes and backslashes for embedding
// in a Drive query string literal.
func escapeQueryValue(v string) string {
	v = strings.ReplaceAll(v, `\`, `\\`)
	return strings.ReplaceAll(v, `'`, `\'`)
}

func toDocumentRef(f *drive.FileInfo) DocumentRef {
	ref := DocumentRef{
		ID:       f.ID,
		Name:     f.Name,
		MimeType: f.MimeType,
		Size:     f.Size,
	}
	if len(f.Parents) > 0 {
		ref.ParentID = f.Parents[0]
	}
	if !f.CreatedTime.IsZero() {
		ref.CreatedTime = f.CreatedTime.Format(time.RFC3339)
	}
	if !f.ModifiedTime.IsZero() {
		ref.ModifiedTime = f.ModifiedTime.Format(time.RFC3339)
	}
	return ref
}
