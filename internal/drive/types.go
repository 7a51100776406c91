package drive

import "time"

// FileInfo represents metadata about a file or folder in Google Drive
type FileInfo struct {
	// ID is the unique identifier for the file
	ID string `json:"id"`

	// Name is the name of the file
	Name string `json:"name"`

	// MimeType is the MIME type of the file
	MimeType string `json:"mimeType"`

	// Size is the size of the file in bytes (not populated for folders)
	Size int64 `json:"size,omitempty"`

	// CreatedTime is when the file was created
	CreatedTime time.Time `json:"createdTime"`

	// ModifiedTime is when the file was last modified
	ModifiedTime time.Time `json:"modifiedTime"`

	// WebViewLink is a link for opening the file in a relevant Google editor or viewer
	WebViewLink string `json:"webViewLink,omitempty"`

	// Parents are the IDs of the parent folders
	Parents []string `json:"parents,omitempty"`

	// Owners are the owners of the file
	Owners []User `json:"owners,omitempty"`

	// Shared indicates whether the file is shared
	Shared bool `json:"shared"`

	// Trashed indicates whether the file is in the trash
	Trashed bool `json:"trashed"`
}

// User represents a Google Drive user (owner, permission holder, etc.)
type User struct {
	// DisplayName is the display name of the user
	DisplayName string `json:"displayName"`

	// EmailAddress is the email address of the user
	EmailAddress string `json:"emailAddress"`
}

// ListOptions contains options for listing files
type ListOptions struct {
	// Query is a query for filtering the file results using Google Drive's query language
	// See https://developers.google.com/drive/api/guides/search-files
	// Examples:
	//   "name contains 'report'"
	//   "mimeType='application/pdf'"
	//   "'folder-id' in parents"
	Query string

	// MaxResults is the maximum number of files to return per page (max: 1000)
	MaxResults int

	// OrderBy specifies the sort order of the result set
	// Examples: "folder,modifiedTime desc,name"
	OrderBy string

	// PageToken is a token for retrieving the next page of results
	PageToken string

	// IncludeTrashed includes trashed files in results
	IncludeTrashed bool
}
