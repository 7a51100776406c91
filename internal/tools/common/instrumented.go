package common

import (
	"context"
	"log/slog"
	"time"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/craibo/google-workspace-mcp/internal/instrumentation"
	"github.com/craibo/google-workspace-mcp/internal/logging"
	"github.com/craibo/google-workspace-mcp/internal/server"
)

// InstrumentedToolHandler wraps a tool handler with metrics and debug
// logging. Invocation count and duration are recorded per tool.
//
// Usage:
//
//	s.AddTool(myTool, common.InstrumentedToolHandler("my_tool", sc, handler))
func InstrumentedToolHandler(
	toolName string,
	sc *server.ServerContext,
	handler func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error),
) func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		metrics := sc.Metrics()
		if metrics == nil {
			return handler(ctx, request)
		}

		start := time.Now()
		account := GetAccountFromArgs(request.GetArguments())

		result, err := handler(ctx, request)
		duration := time.Since(start)

		status := instrumentation.StatusSuccess
		if err != nil || (result != nil && result.IsError) {
			status = instrumentation.StatusError
		}

		metrics.RecordToolInvocationWithAccount(ctx, toolName, status, account, duration)

		slog.Debug("tool invocation",
			logging.Tool(toolName),
			logging.Account(account),
			logging.Status(status),
			logging.Duration(duration),
		)

		return result, err
	}
}

// InstrumentedToolHandlerWithService is like InstrumentedToolHandler
// but also records the Google service and operation, feeding the
// per-service API metrics.
func InstrumentedToolHandlerWithService(
	toolName, serviceName, operation string,
	sc *server.ServerContext,
	handler func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error),
) func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		metrics := sc.Metrics()
		if metrics == nil {
			return handler(ctx, request)
		}

		start := time.Now()
		account := GetAccountFromArgs(request.GetArguments())

		result, err := handler(ctx, request)
		duration := time.Since(start)

		status := instrumentation.StatusSuccess
		if err != nil || (result != nil && result.IsError) {
			status = instrumentation.StatusError
		}

		metrics.RecordToolInvocationWithAccount(ctx, toolName, status, account, duration)
		metrics.RecordGoogleAPIOperation(ctx, serviceName, operation, status, duration)

		slog.Debug("tool invocation",
			logging.Tool(toolName),
			logging.Account(account),
			logging.Service(serviceName),
			logging.Operation(operation),
			logging.Status(status),
			logging.Duration(duration),
		)

		return result, err
	}
}
