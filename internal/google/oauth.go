package google

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

const cacheDirName = "google-workspace-mcp"

// HasTokenForAccount checks if a valid OAuth token exists for the specified account
func HasTokenForAccount(account string) bool {
	_, err := os.ReadFile(tokenFileForAccount(account))
	return err == nil
}

// HasToken checks if a valid OAuth token exists for the default account
func HasToken() bool {
	return HasTokenForAccount("default")
}

// GetAuthURLForAccount returns the OAuth URL for user authorization for a specific account
func GetAuthURLForAccount(account string) string {
	conf := GetOAuthConfig()
	return conf.AuthCodeURL("state-" + account)
}

// GetAuthURL returns the OAuth URL for user authorization for the default account
func GetAuthURL() string {
	return GetAuthURLForAccount("default")
}

// GetAuthenticationErrorMessage returns the auth URL a user should visit to
// authorize the given account. Used by the tool layer to build actionable
// error messages when no token exists.
func GetAuthenticationErrorMessage(account string) string {
	return GetAuthURLForAccount(account)
}

// SaveTokenForAccount exchanges an authorization code for tokens and saves them for a specific account
func SaveTokenForAccount(ctx context.Context, account string, authCode string) error {
	conf := GetOAuthConfig()

	t, err := conf.Exchange(ctx, authCode)
	if err != nil {
		return fmt.Errorf("failed to exchange auth code: %w", err)
	}

	tokenFile := tokenFileForAccount(account)
	if err := os.MkdirAll(filepath.Dir(tokenFile), 0700); err != nil {
		return fmt.Errorf("failed to create cache directory: %w", err)
	}

	tokenData := t.AccessToken + " " + t.RefreshToken
	if err := os.WriteFile(tokenFile, []byte(tokenData), 0600); err != nil {
		return fmt.Errorf("failed to write token file: %w", err)
	}

	return nil
}

// SaveToken exchanges an authorization code for tokens and saves them for the default account
func SaveToken(ctx context.Context, authCode string) error {
	return SaveTokenForAccount(ctx, "default", authCode)
}

// GetOAuthConfig returns the OAuth2 configuration for all Google services.
// Client credentials come from GOOGLE_CLIENT_ID and GOOGLE_CLIENT_SECRET.
func GetOAuthConfig() *oauth2.Config {
	const OOB = "urn:ietf:wg:oauth:2.0:oob"
	return &oauth2.Config{
		ClientID:     os.Getenv("GOOGLE_CLIENT_ID"),
		ClientSecret: os.Getenv("GOOGLE_CLIENT_SECRET"),
		Endpoint:     google.Endpoint,
		RedirectURL:  OOB,
		Scopes:       DefaultOAuthScopes,
	}
}

// GetTokenSourceForAccount returns an OAuth2 token source for the stored token
// of a specific account. Returns an error if no valid token exists.
func GetTokenSourceForAccount(ctx context.Context, account string) (oauth2.TokenSource, error) {
	conf := GetOAuthConfig()

	slurp, err := os.ReadFile(tokenFileForAccount(account))
	if err != nil {
		return nil, fmt.Errorf("no valid Google OAuth token found for account %s", account)
	}

	f := strings.Fields(strings.TrimSpace(string(slurp)))
	if len(f) != 2 {
		return nil, fmt.Errorf("invalid token format")
	}

	ts := conf.TokenSource(ctx, &oauth2.Token{
		AccessToken:  f[0],
		TokenType:    "Bearer",
		RefreshToken: f[1],
		Expiry:       time.Unix(1, 0),
	})

	// Validate the token
	if _, err := ts.Token(); err != nil {
		return nil, fmt.Errorf("cached token is invalid: %w", err)
	}

	return ts, nil
}

// GetTokenSource returns an OAuth2 token source for the default account
func GetTokenSource(ctx context.Context) (oauth2.TokenSource, error) {
	return GetTokenSourceForAccount(ctx, "default")
}

// GetHTTPClientForAccount returns an HTTP client configured with OAuth2
// authentication for a specific account. The client is configured to use
// HTTP/1.1 to avoid HTTP/2 protocol errors against the Google APIs.
func GetHTTPClientForAccount(ctx context.Context, account string) (*http.Client, error) {
	ts, err := GetTokenSourceForAccount(ctx, account)
	if err != nil {
		return nil, err
	}

	client := oauth2.NewClient(ctx, ts)

	// Force HTTP/1.1 by disabling HTTP/2
	transport := client.Transport.(*oauth2.Transport)
	baseTransport := &http.Transport{
		ForceAttemptHTTP2: false,
	}
	transport.Base = baseTransport

	return client, nil
}

// GetHTTPClient returns an OAuth2-authenticated HTTP client for the default account
func GetHTTPClient(ctx context.Context) (*http.Client, error) {
	return GetHTTPClientForAccount(ctx, "default")
}

// tokenFileForAccount returns the on-disk token path for an account.
// Account names are sanitized so they cannot escape the cache directory.
func tokenFileForAccount(account string) string {
	if account == "" {
		account = "default"
	}
	account = strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', ':':
			return '_'
		}
		return r
	}, account)
	return filepath.Join(userCacheDir(), cacheDirName, account+".token")
}

func userCacheDir() string {
	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(homeDir(), "Library", "Caches")
	case "windows":
		for _, ev := range []string{"TEMP", "TMP"} {
			if v := os.Getenv(ev); v != "" {
				return v
			}
		}
		panic("No Windows TEMP or TMP environment variables found")
	}
	if xdg := os.Getenv("XDG_CACHE_HOME"); xdg != "" {
		return xdg
	}
	return filepath.Join(homeDir(), ".cache")
}

func homeDir() string {
	if runtime.GOOS == "windows" {
		return os.Getenv("HOMEDRIVE") + os.Getenv("HOMEPATH")
	}
	return os.Getenv("HOME")
}
