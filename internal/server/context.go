package server

import (
	"context"
	"fmt"
	"sync"

	"github.com/craibo/google-workspace-mcp/internal/calendar"
	"github.com/craibo/google-workspace-mcp/internal/drive"
	"github.com/craibo/google-workspace-mcp/internal/gmail"
	"github.com/craibo/google-workspace-mcp/internal/google"
	"github.com/craibo/google-workspace-mcp/internal/instrumentation"
	"github.com/craibo/google-workspace-mcp/internal/tasks"
)

// ServerContext holds shared state for the MCP server, including
// per-account Google service clients. Clients are created lazily on
// first use and cached for the lifetime of the server.
type ServerContext struct {
	ctx    context.Context
	cancel context.CancelFunc

	driveClients    map[string]*drive.Client
	gmailClients    map[string]*gmail.Client
	calendarClients map[string]*calendar.Client
	tasksClients    map[string]*tasks.Client

	metrics *instrumentation.Metrics

	mu       sync.RWMutex
	shutdown bool
}

// NewServerContext creates a new server context.
func NewServerContext(ctx context.Context) *ServerContext {
	ctx, cancel := context.WithCancel(ctx)
	return &ServerContext{
		ctx:             ctx,
		cancel:          cancel,
		driveClients:    make(map[string]*drive.Client),
		gmailClients:    make(map[string]*gmail.Client),
		calendarClients: make(map[string]*calendar.Client),
		tasksClients:    make(map[string]*tasks.Client),
	}
}

// Context returns the server's base context.
func (sc *ServerContext) Context() context.Context {
	return sc.ctx
}

// SetMetrics attaches a metrics recorder. A nil recorder is valid and
// disables recording.
func (sc *ServerContext) SetMetrics(m *instrumentation.Metrics) {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	sc.metrics = m
}

// Metrics returns the attached metrics recorder, which may be nil.
// The recorder is safe to call when nil.
func (sc *ServerContext) Metrics() *instrumentation.Metrics {
	sc.mu.RLock()
	defer sc.mu.RUnlock()
	return sc.metrics
}

// authRequiredError builds the guidance returned when no OAuth token
// exists for an account yet.
func authRequiredError(account string) error {
	return fmt.Errorf(`Google OAuth token not found for account %q. To authorize access:

1. Visit this URL in your browser:
   %s

2. Sign in with your Google account and grant access
3. Copy the authorization code
4. Run: google-workspace-mcp auth --account %s --code <authorization code>

You only need to authorize once; tokens are refreshed automatically.`,
		account, google.GetAuthenticationErrorMessage(account), account)
}

// DriveClientForAccount returns a cached Drive client for the account,
// creating one if a token exists.
func (sc *ServerContext) DriveClientForAccount(account string) (*drive.Client, error) {
	sc.mu.RLock()
	if client, ok := sc.driveClients[account]; ok {
		sc.mu.RUnlock()
		return client, nil
	}
	sc.mu.RUnlock()

	sc.mu.Lock()
	defer sc.mu.Unlock()

	// Re-check under the write lock.
	if client, ok := sc.driveClients[account]; ok {
		return client, nil
	}

	if !google.HasTokenForAccount(account) {
		return nil, authRequiredError(account)
	}

	client, err := drive.NewClientForAccount(sc.ctx, account)
	if err != nil {
		return nil, fmt.Errorf("failed to create Drive client for account %q: %w", account, err)
	}

	sc.driveClients[account] = client
	return client, nil
}

// GmailClientForAccount returns a cached Gmail client for the account,
// creating one if a token exists.
func (sc *ServerContext) GmailClientForAccount(account string) (*gmail.Client, error) {
	sc.mu.RLock()
	if client, ok := sc.gmailClients[account]; ok {
		sc.mu.RUnlock()
		return client, nil
	}
	sc.mu.RUnlock()

	sc.mu.Lock()
	defer sc.mu.Unlock()

	if client, ok := sc.gmailClients[account]; ok {
		return client, nil
	}

	if !google.HasTokenForAccount(account) {
		return nil, authRequiredError(account)
	}

	client, err := gmail.NewClientForAccount(sc.ctx, account)
	if err != nil {
		return nil, fmt.Errorf("failed to create Gmail client for account %q: %w", account, err)
	}

	sc.gmailClients[account] = client
	return client, nil
}

// CalendarClientForAccount returns a cached Calendar client for the
// account, creating one if a token exists.
func (sc *ServerContext) CalendarClientForAccount(account string) (*calendar.Client, error) {
	sc.mu.RLock()
	if client, ok := sc.calendarClients[account]; ok {
		sc.mu.RUnlock()
		return client, nil
	}
	sc.mu.RUnlock()

	sc.mu.Lock()
	defer sc.mu.Unlock()

	if client, ok := sc.calendarClients[account]; ok {
		return client, nil
	}

	if !google.HasTokenForAccount(account) {
		return nil, authRequiredError(account)
	}

	client, err := calendar.NewClientForAccount(sc.ctx, account)
	if err != nil {
		return nil, fmt.Errorf("failed to create Calendar client for account %q: %w", account, err)
	}

	sc.calendarClients[account] = client
	return client, nil
}

// TasksClientForAccount returns a cached Tasks client for the account,
// creating one if a token exists.
func (sc *ServerContext) TasksClientForAccount(account string) (*tasks.Client, error) {
	sc.mu.RLock()
	if client, ok := sc.tasksClients[account]; ok {
		sc.mu.RUnlock()
		return client, nil
	}
	sc.mu.RUnlock()

	sc.mu.Lock()
	defer sc.mu.Unlock()

	if client, ok := sc.tasksClients[account]; ok {
		return client, nil
	}

	if !google.HasTokenForAccount(account) {
		return nil, authRequiredError(account)
	}

	client, err := tasks.NewClientForAccount(sc.ctx, account)
	if err != nil {
		return nil, fmt.Errorf("failed to create Tasks client for account %q: %w", account, err)
	}

	sc.tasksClients[account] = client
	return client, nil
}

// IsShuttingDown reports whether Shutdown has been called.
func (sc *ServerContext) IsShuttingDown() bool {
	sc.mu.RLock()
	defer sc.mu.RUnlock()
	return sc.shutdown
}

// Shutdown cancels the server context and drops all cached clients.
func (sc *ServerContext) Shutdown() {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	if sc.shutdown {
		return
	}
	sc.shutdown = true
	sc.cancel()

	sc.driveClients = make(map[string]*drive.Client)
	sc.gmailClients = make(map[string]*gmail.Client)
	sc.calendarClients = make(map[string]*calendar.Client)
	sc.tasksClients = make(map[string]*tasks.Client)
}
