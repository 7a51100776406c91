package cmd

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/craibo/google-workspace-mcp/internal/instrumentation"
	"github.com/craibo/google-workspace-mcp/internal/logging"
	"github.com/craibo/google-workspace-mcp/internal/server"
	"github.com/craibo/google-workspace-mcp/internal/tools/calendar_tools"
	"github.com/craibo/google-workspace-mcp/internal/tools/drive_tools"
	"github.com/craibo/google-workspace-mcp/internal/tools/gmail_tools"
	"github.com/craibo/google-workspace-mcp/internal/tools/tasks_tools"
)

// MetricsConfig holds configuration for the metrics server
type MetricsConfig struct {
	// Enabled determines whether to start the metrics server (default: true)
	Enabled bool

	// Addr is the address for the metrics server (e.g., ":9090")
	Addr string
}

func newServeCmd() *cobra.Command {
	var (
		debugMode bool
		transport string
		httpAddr  string
		yolo      bool
		// Metrics server configuration
		metricsEnabled bool
		metricsAddr    string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the MCP server",
		Long: `Start the Model Context Protocol (MCP) server exposing Google Drive,
Gmail, Calendar and Tasks tools for AI assistants.

Supports multiple transport types:
  - stdio: Standard input/output (default)
  - streamable-http: Streamable HTTP transport

Safety Mode:
  By default, the server operates in read-only mode, providing only safe
  operations. Use --yolo to enable write operations (task creation,
  completion, etc.)

Authentication:
  Tools require a Google OAuth token on disk for each account they are
  invoked with. Run "google-workspace-mcp auth" once per account to
  authorize; tokens are refreshed automatically afterwards.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			metricsConfig := MetricsConfig{
				Enabled: metricsEnabled,
				Addr:    metricsAddr,
			}
			return runServe(transport, debugMode, httpAddr, yolo, metricsConfig)
		},
	}

	cmd.Flags().BoolVar(&debugMode, "debug", false, "Enable debug logging")
	cmd.Flags().StringVar(&transport, "transport", "stdio", "Transport type: stdio or streamable-http")
	cmd.Flags().StringVar(&httpAddr, "http-addr", ":8080", "HTTP server address (for streamable-http transport)")
	cmd.Flags().BoolVar(&yolo, "yolo", false, "Enable write operations (task creation, completion, etc.). Default is read-only mode.")

	// Metrics server flags
	cmd.Flags().BoolVar(&metricsEnabled, "metrics-enabled", true, "Enable the metrics server on a dedicated port. Can also use METRICS_ENABLED env var.")
	cmd.Flags().StringVar(&metricsAddr, "metrics-addr", server.DefaultMetricsAddr, "Metrics server address. Can also use METRICS_ADDR env var.")

	return cmd
}

func runServe(transport string, debugMode bool, httpAddr string, yolo bool, metricsConfig MetricsConfig) error {
	// Setup graceful shutdown
	shutdownCtx, cancel := signal.NotifyContext(context.Background(),
		os.Interrupt, syscall.SIGTERM)
	defer cancel()

	logging.Setup(debugMode)

	// Load metrics config from environment if not set via flags
	if !metricsConfig.Enabled {
		if os.Getenv("METRICS_ENABLED") == "true" {
			metricsConfig.Enabled = true
		}
	}
	if metricsConfig.Addr == "" || metricsConfig.Addr == server.DefaultMetricsAddr {
		if addr := os.Getenv("METRICS_ADDR"); addr != "" {
			metricsConfig.Addr = addr
		}
	}

	// Initialize instrumentation provider
	instrConfig := instrumentation.DefaultConfig()
	instrConfig.ServiceVersion = version

	provider, err := instrumentation.NewProvider(shutdownCtx, instrConfig)
	if err != nil {
		return fmt.Errorf("failed to create instrumentation provider: %w", err)
	}
	defer func() {
		if err := provider.Shutdown(shutdownCtx); err != nil {
			if transport != "stdio" {
				log.Printf("Error during instrumentation shutdown: %v", err)
			}
		}
	}()

	serverContext := server.NewServerContext(shutdownCtx)
	if provider.Enabled() {
		serverContext.SetMetrics(provider.Metrics())
	}

	healthChecker := server.NewHealthChecker(serverContext)

	// Start metrics server if enabled and not in stdio mode
	var metricsServer *server.MetricsServer
	if transport != "stdio" && metricsConfig.Enabled && provider.Enabled() {
		var err error
		metricsServer, err = server.NewMetricsServer(server.MetricsServerConfig{
			Addr:                    metricsConfig.Addr,
			InstrumentationProvider: provider,
			HealthChecker:           healthChecker,
		})
		if err != nil {
			return fmt.Errorf("failed to create metrics server: %w", err)
		}

		// Use ready channel to confirm metrics server started successfully
		metricsReady := make(chan struct{})
		metricsErr := make(chan error, 1)
		go func() {
			if err := metricsServer.StartWithReadySignal(metricsReady); err != nil && err != http.ErrServerClosed {
				metricsErr <- err
			}
			close(metricsErr)
		}()

		select {
		case <-metricsReady:
			log.Printf("Metrics server started on %s", metricsServer.Addr())
		case err := <-metricsErr:
			return fmt.Errorf("metrics server failed to start: %w", err)
		case <-time.After(5 * time.Second):
			return fmt.Errorf("metrics server startup timed out")
		}
	}

	defer func() {
		if metricsServer != nil {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if err := metricsServer.Shutdown(shutdownCtx); err != nil {
				log.Printf("Error during metrics server shutdown: %v", err)
			}
		}
		serverContext.Shutdown()
	}()

	// Session hooks keep the active-session gauge accurate across both
	// transports.
	hooks := &mcpserver.Hooks{}
	hooks.AddOnRegisterSession(func(ctx context.Context, session mcpserver.ClientSession) {
		if m := serverContext.Metrics(); m != nil {
			m.IncrementActiveSessions(ctx)
		}
	})
	hooks.AddOnUnregisterSession(func(ctx context.Context, session mcpserver.ClientSession) {
		if m := serverContext.Metrics(); m != nil {
			m.DecrementActiveSessions(ctx)
		}
	})

	mcpSrv := mcpserver.NewMCPServer("google-workspace-mcp", version,
		mcpserver.WithToolCapabilities(true),
		mcpserver.WithHooks(hooks),
	)

	// readOnly is the inverse of yolo
	readOnly := !yolo

	// Log the mode for visibility (only for non-stdio transports)
	if transport != "stdio" {
		if readOnly {
			log.Println("Starting server in READ-ONLY mode (use --yolo to enable write operations)")
		} else {
			log.Println("Starting server with WRITE operations enabled (--yolo flag is set)")
		}
	}

	if err := registerAllTools(mcpSrv, serverContext, readOnly); err != nil {
		return err
	}

	switch transport {
	case "stdio":
		return runStdioServer(mcpSrv)
	case "streamable-http":
		return runStreamableHTTPServer(shutdownCtx, mcpSrv, serverContext, healthChecker, httpAddr)
	default:
		return fmt.Errorf("unsupported transport type: %s (supported: stdio, streamable-http)", transport)
	}
}

func runStdioServer(mcpSrv *mcpserver.MCPServer) error {
	serverDone := make(chan error, 1)
	go func() {
		defer close(serverDone)
		if err := mcpserver.ServeStdio(mcpSrv); err != nil {
			serverDone <- err
		}
	}()

	err := <-serverDone
	if err != nil {
		return fmt.Errorf("server stopped with error: %w", err)
	}
	return nil
}

func runStreamableHTTPServer(ctx context.Context, mcpSrv *mcpserver.MCPServer, serverContext *server.ServerContext, health *server.HealthChecker, addr string) error {
	httpServer := server.NewHTTPServer(mcpSrv)
	httpServer.SetHealthChecker(health)
	if m := serverContext.Metrics(); m != nil {
		httpServer.SetMetrics(m)
	}

	serverDone := make(chan error, 1)
	go func() {
		defer close(serverDone)
		if err := httpServer.Start(addr); err != nil && err != http.ErrServerClosed {
			serverDone <- err
		}
	}()

	health.SetReady(true)
	log.Printf("MCP server listening on %s (endpoint /mcp)", addr)

	select {
	case <-ctx.Done():
		health.SetReady(false)
		shutdownCtx, cancel := context.WithTimeout(context.Background(), server.DefaultShutdownTimeout)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("error during HTTP server shutdown: %w", err)
		}
		return nil
	case err := <-serverDone:
		if err != nil {
			return fmt.Errorf("server stopped with error: %w", err)
		}
		return nil
	}
}

// registerAllTools registers all MCP tools
func registerAllTools(mcpSrv *mcpserver.MCPServer, ctx *server.ServerContext, readOnly bool) error {
	type toolRegistration struct {
		name     string
		register func() error
	}

	registrations := []toolRegistration{
		{
			name: "Drive",
			register: func() error {
				return drive_tools.RegisterDriveTools(mcpSrv, ctx)
			},
		},
		{
			name: "Gmail",
			register: func() error {
				return gmail_tools.RegisterGmailTools(mcpSrv, ctx)
			},
		},
		{
			name: "Calendar",
			register: func() error {
				return calendar_tools.RegisterCalendarTools(mcpSrv, ctx)
			},
		},
		{
			name: "Tasks",
			register: func() error {
				return tasks_tools.RegisterTasksTools(mcpSrv, ctx, readOnly)
			},
		},
	}

	for _, reg := range registrations {
		if err := reg.register(); err != nil {
			return fmt.Errorf("failed to register %s: %w", reg.name, err)
		}
	}

	return nil
}
