package contentsearch

import "context"

// Store is the document-store capability the searcher depends on. The
// production implementation wraps the Drive client; tests provide an
// in-memory store.
type Store interface {
	// ListPage returns one page of candidates in scope plus the token for
	// the next page ("" when exhausted). Scoping is pushed down into the
	// store's own query syntax, not filtered client-side.
	ListPage(ctx context.Context, scope Scope, pageSize int, pageToken string) ([]DocumentRef, string, error)
	// GetFile fetches the metadata snapshot for a single file.
	GetFile(ctx context.Context, fileID string) (*DocumentRef, error)
	// FetchRaw downloads a file's raw bytes.
	FetchRaw(ctx context.Context, fileID string) ([]byte, error)
	// ExportText exports a Drive-native document as plain text.
	ExportText(ctx context.Context, fileID string) (string, error)
	// FolderName resolves a folder ID to its display name.
	FolderName(ctx context.Context, folderID string) (string, error)
}

// Enumerator yields candidate documents lazily, one store page at a
// time, so a sweep that hits its result cap early never lists the rest
// of the scope. Each Enumerator re-queries the store fresh; it is not
// reusable across sweeps.
type Enumerator struct {
	store    Store
	scope    Scope
	pageSize int

	buf       []DocumentRef
	pos       int
	pageToken string
	exhausted bool
}

func newEnumerator(store Store, scope Scope, pageSize int) *Enumerator {
	return &Enumerator{store: store, scope: scope, pageSize: pageSize}
}

// Next returns the next candidate, or (nil, nil) once the scope is
// exhausted. A list failure is returned as a StoreAccessError; the
// enumerator's position is untouched, so a later Next retries the same
// page rather than reporting a clean end of scope.
func (e *Enumerator) Next(ctx context.Context) (*DocumentRef, error) {
	for e.pos >= len(e.buf) {
		if e.exhausted {
			return nil, nil
		}
		refs, token, err := e.store.ListPage(ctx, e.scope, e.pageSize, e.pageToken)
		if err != nil {
			return nil, &StoreAccessError{Op: "list", Err: err}
		}
		e.buf = refs
		e.pos = 0
		e.pageToken = token
		if token == "" {
			e.exhausted = true
		}
	}
	ref := e.buf[e.pos]
	e.pos++
	return &ref, nil
}
