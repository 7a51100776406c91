package google

// DefaultOAuthScopes are the Google OAuth scopes required for full MCP
// functionality. The server is read-mostly: Drive, Gmail and Calendar are
// accessed read-only, while Tasks needs write access for the task creation
// and completion tools.
var DefaultOAuthScopes = []string{
	// Google Drive scope (file listing, download, export for content search)
	"https://www.googleapis.com/auth/drive.readonly",

	// Gmail scope (message search and retrieval)
	"https://www.googleapis.com/auth/gmail.readonly",

	// Google Calendar scope (event listing and search)
	"https://www.googleapis.com/auth/calendar.readonly",

	// Google Tasks scope (full access: list, search, create, update, complete)
	"https://www.googleapis.com/auth/tasks",
}
