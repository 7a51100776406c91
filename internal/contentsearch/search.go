package contentsearch

import (
	"context"
	"log/slog"

	"github.com/craibo/google-workspace-mcp/internal/logging"
)

// Config carries the tunable limits for a Searcher. Zero values fall
// back to the package defaults at construction.
type Config struct {
	// MaxResults caps the number of files in a sweep's result set.
	MaxResults int
	// SnippetLength is the snippet content budget in runes.
	SnippetLength int
	// PageSize is the store page size used while enumerating.
	PageSize int
}

const (
	defaultMaxResults    = 50
	defaultSnippetLength = 200
	defaultPageSize      = 100
)

// Searcher runs content searches against one Store. It is safe for
// concurrent use; each invocation owns all of its intermediate state.
type Searcher struct {
	store Store
	cfg   Config
}

// NewSearcher builds a Searcher over the given store, filling in
// defaults for any zero Config field.
func NewSearcher(store Store, cfg Config) *Searcher {
	if cfg.MaxResults <= 0 {
		cfg.MaxResults = defaultMaxResults
	}
	if cfg.SnippetLength <= 0 {
		cfg.SnippetLength = defaultSnippetLength
	}
	if cfg.PageSize <= 0 {
		cfg.PageSize = defaultPageSize
	}
	return &Searcher{store: store, cfg: cfg}
}

// Search sweeps every candidate in the query's scope and returns the
// matching files in enumeration order. A file that cannot be fetched or
// decoded is counted as a skip and never aborts the sweep; query
// validation failures, scope listing failures and context cancellation
// surface as errors.
func (s *Searcher) Search(ctx context.Context, q Query) (*ResultSet, error) {
	matcher, err := NewMatcher(q)
	if err != nil {
		return nil, err
	}
	maxResults := q.MaxResults
	if maxResults <= 0 {
		maxResults = s.cfg.MaxResults
	}
	snippetLen := q.SnippetLength
	if snippetLen <= 0 {
		snippetLen = s.cfg.SnippetLength
	}

	enum := newEnumerator(s.store, q.Scope, s.cfg.PageSize)
	folderNames := map[string]string{}
	rs := &ResultSet{Results: []FileResult{}}

	for len(rs.Results) < maxResults {
		ref, err := enum.Next(ctx)
		if err != nil {
			return nil, err
		}
		if ref == nil {
			break
		}
		text, err := s.loadText(ctx, ref)
		if err != nil {
			// Skips cover per-file failures only. Once the caller's
			// context is done every remaining fetch fails the same way,
			// and a cancelled call must fail, not return a partial set.
			if ctx.Err() != nil {
				return nil, err
			}
			slog.Debug("skipping file during content search",
				logging.Service("drive"),
				slog.String(logging.KeyFileID, ref.ID),
				logging.Err(err))
			rs.SkippedFiles++
			continue
		}
		matches := matcher.Find(text)
		if len(matches) == 0 {
			continue
		}
		rs.Results = append(rs.Results, s.buildResult(ctx, ref, text, matches, snippetLen, folderNames))
		rs.TotalMatches += len(matches)
	}
	return rs, nil
}

// SearchFile runs the query against a single known file, skipping
// enumeration. It returns (nil, nil) when the file has no matches.
// Unlike a sweep there is nothing to skip to, so fetch and decode
// failures are returned to the caller.
func (s *Searcher) SearchFile(ctx context.Context, fileID string, q Query) (*FileResult, error) {
	matcher, err := NewMatcher(q)
	if err != nil {
		return nil, err
	}
	snippetLen := q.SnippetLength
	if snippetLen <= 0 {
		snippetLen = s.cfg.SnippetLength
	}
	ref, err := s.store.GetFile(ctx, fileID)
	if err != nil {
		return nil, &StoreAccessError{Op: "get", FileID: fileID, Err: err}
	}
	text, err := s.loadText(ctx, ref)
	if err != nil {
		return nil, err
	}
	matches := matcher.Find(text)
	if len(matches) == 0 {
		return nil, nil
	}
	result := s.buildResult(ctx, ref, text, matches, snippetLen, map[string]string{})
	return &result, nil
}

// loadText produces the normalized text for one candidate. Drive-native
// documents go through the export capability; everything else is
// downloaded raw and decoded locally.
func (s *Searcher) loadText(ctx context.Context, ref *DocumentRef) (string, error) {
	format := DetectFormat(ref.MimeType)
	if format == FormatGoogleDoc {
		text, err := s.store.ExportText(ctx, ref.ID)
		if err != nil {
			return "", &StoreAccessError{Op: "export", FileID: ref.ID, Err: err}
		}
		return text, nil
	}
	raw, err := s.store.FetchRaw(ctx, ref.ID)
	if err != nil {
		return "", &StoreAccessError{Op: "download", FileID: ref.ID, Err: err}
	}
	return Decode(ref.ID, format, raw)
}

func (s *Searcher) buildResult(ctx context.Context, ref *DocumentRef, text string, matches []Match, snippetLen int, folderNames map[string]string) FileResult {
	snippets := make([]string, 0, len(matches))
	for _, m := range matches {
		snippets = append(snippets, ExtractSnippet(text, m, snippetLen))
	}
	return FileResult{
		FileID:       ref.ID,
		FileName:     ref.Name,
		ParentFolder: s.folderName(ctx, ref.ParentID, folderNames),
		MatchCount:   len(matches),
		Snippets:     snippets,
	}
}

// folderName resolves a parent folder's display name, memoized per
// sweep. Resolution failures degrade to an empty name rather than
// failing the result.
func (s *Searcher) folderName(ctx context.Context, folderID string, memo map[string]string) string {
	if folderID == "" {
		return ""
	}
	if name, ok := memo[folderID]; ok {
		return name
	}
	name, err := s.store.FolderName(ctx, folderID)
	if err != nil {
		slog.Debug("could not resolve parent folder name",
			logging.Service("drive"),
			slog.String(logging.KeyFileID, folderID),
			logging.Err(err))
		name = ""
	}
	memo[folderID] = name
	return name
}
