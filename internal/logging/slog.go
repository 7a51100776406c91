package logging

import (
	"log/slog"
	"os"
	"strings"
	"time"
)

// Attribute keys used across the server. Keeping them here avoids drift
// between packages that log the same concepts.
const (
	KeyAccount   = "account"
	KeyService   = "service"
	KeyOperation = "operation"
	KeyTool      = "tool"
	KeyStatus    = "status"
	KeyError     = "error"
	KeyDuration  = "duration_ms"
	KeyFileID    = "file_id"
	KeyQuery     = "query"
	KeyCount     = "count"
)

// Setup installs the process-wide slog default logger. Logs always go to
// stderr so the stdio MCP transport keeps stdout clean for protocol frames.
func Setup(debug bool) {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(handler))
}

// Account returns an account attribute with the email anonymized.
func Account(email string) slog.Attr {
	return slog.String(KeyAccount, AnonymizeEmail(email))
}

// Service returns a Google service name attribute (drive, gmail, ...).
func Service(name string) slog.Attr {
	return slog.String(KeyService, name)
}

// Operation returns an operation name attribute.
func Operation(name string) slog.Attr {
	return slog.String(KeyOperation, name)
}

// Tool returns an MCP tool name attribute.
func Tool(name string) slog.Attr {
	return slog.String(KeyTool, name)
}

// Status returns a status attribute, typically "success" or "error".
func Status(status string) slog.Attr {
	return slog.String(KeyStatus, status)
}

// Err returns an error attribute. A nil error yields an empty string.
func Err(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}

// Duration returns an elapsed-time attribute in milliseconds.
func Duration(d time.Duration) slog.Attr {
	return slog.Float64(KeyDuration, float64(d.Microseconds())/1000.0)
}

// AnonymizeEmail masks the local part of an email address so logs do not
// carry full identities. "alice@example.com" becomes "a***@example.com".
// Values without an "@" are returned unchanged.
func AnonymizeEmail(email string) string {
	at := strings.Index(email, "@")
	if at <= 0 {
		return email
	}
	return email[:1] + "***" + email[at:]
}
