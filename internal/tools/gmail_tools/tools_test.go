package gmail_tools

import (
	"context"
	"testing"

	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/craibo/google-workspace-mcp/internal/server"
)

func TestRegisterGmailTools(t *testing.T) {
	s := mcpserver.NewMCPServer("test", "0.0.1")
	sc := server.NewServerContext(context.Background())
	defer sc.Shutdown()

	if err := RegisterGmailTools(s, sc); err != nil {
		t.Fatalf("RegisterGmailTools() error = %v", err)
	}
}
