package contentsearch

// DocumentRef is an immutable snapshot of a candidate file's metadata,
// taken once per search pass.
type DocumentRef struct {
	ID           string
	Name         string
	MimeType     string
	Size         int64
	ParentID     string
	CreatedTime  string
	ModifiedTime string
}

// Scope bounds which files a sweep considers. A zero Scope means the
// whole Drive, restricted to searchable formats.
type Scope struct {
	// FolderID restricts the sweep to direct children of a folder.
	FolderID string
	// Formats restricts the sweep to a subset of the supported formats.
	// Empty means all supported formats.
	Formats []Format
}

// Query describes one content search. It is fully specified before
// execution and never mutated during a sweep.
type Query struct {
	Pattern       string
	Regex         bool
	CaseSensitive bool
	Scope         Scope
	// MaxResults caps the number of files in the result set. Zero means
	// the searcher's configured default.
	MaxResults int
	// SnippetLength is the target snippet size in characters, excluding
	// marker overhead. Zero means the searcher's configured default.
	SnippetLength int
}

// Match is a half-open [Start, End) interval of rune offsets into the
// decoded text of one document.
type Match struct {
	Start int
	End   int
}

// FileResult is one matching document with its highlighted snippets.
type FileResult struct {
	FileID       string   `json:"fileId"`
	FileName     string   `json:"fileName"`
	ParentFolder string   `json:"parentFolder"`
	MatchCount   int      `json:"matchCount"`
	Snippets     []string `json:"snippets"`
}

// ResultSet is the outcome of one sweep. Results keep enumeration order,
// not match-count order. SkippedFiles counts documents dropped because
// they could not be fetched or decoded; skips never fail the sweep.
type ResultSet struct {
	Results      []FileResult `json:"results"`
	TotalMatches int          `json:"totalMatches"`
	SkippedFiles int          `json:"skippedFiles"`
}
