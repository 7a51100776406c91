package cmd

import (
	"context"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/craibo/google-workspace-mcp/internal/server"
)

func newGenerateDocsCmd() *cobra.Command {
	var (
		outputFile string
	)

	cmd := &cobra.Command{
		Use:   "generate-docs",
		Short: "Generate MCP tool documentation",
		Long: `Generate markdown documentation for all available MCP tools.
This command introspects the registered tools and outputs their documentation
in markdown format, ensuring the documentation is always accurate and in sync
with the actual tool implementations.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerateDocs(outputFile)
		},
	}

	cmd.Flags().StringVarP(&outputFile, "output", "o", "", "Output file (default: stdout)")

	return cmd
}

func runGenerateDocs(outputFile string) error {
	// Tool registration only needs a server context; no credentials are
	// touched until a tool is actually invoked.
	serverContext := server.NewServerContext(context.Background())
	defer serverContext.Shutdown()

	mcpSrv := mcpserver.NewMCPServer("google-workspace-mcp", version,
		mcpserver.WithToolCapabilities(true),
	)

	// Register write tools too so the docs cover everything.
	if err := registerAllTools(mcpSrv, serverContext, false); err != nil {
		return err
	}

	serverTools := mcpSrv.ListTools()

	tools := make([]mcp.Tool, 0, len(serverTools))
	for _, serverTool := range serverTools {
		tools = append(tools, serverTool.Tool)
	}

	markdown := generateToolsMarkdown(tools)

	if outputFile != "" {
		if err := os.WriteFile(outputFile, []byte(markdown), 0644); err != nil {
			return fmt.Errorf("failed to write output file: %w", err)
		}
		fmt.Fprintf(os.Stderr, "Documentation written to: %s\n", outputFile)
	} else {
		fmt.Print(markdown)
	}

	return nil
}

func generateToolsMarkdown(tools []mcp.Tool) string {
	var sb strings.Builder

	sb.WriteString("# MCP Tools Reference\n\n")
	sb.WriteString("This document provides a complete reference of all tools available when running google-workspace-mcp as an MCP server.\n\n")
	sb.WriteString("**Note:** This documentation is automatically generated from the tool definitions.\n\n")

	toolsByCategory := groupToolsByCategory(tools)

	sb.WriteString("## Table of Contents\n\n")
	categories := make([]string, 0, len(toolsByCategory))
	for category := range toolsByCategory {
		categories = append(categories, category)
	}
	sort.Strings(categories)

	for _, category := range categories {
		anchor := strings.ToLower(strings.ReplaceAll(category, " ", "-"))
		sb.WriteString(fmt.Sprintf("- [%s](#%s)\n", category, anchor))
	}
	sb.WriteString("\n")

	sb.WriteString("## Multi-Account Support\n\n")
	sb.WriteString("All tools support an optional `account` parameter to specify which Google account to use:\n\n")
	sb.WriteString("- **Default behavior:** If `account` is not specified, the `default` account is used\n")
	sb.WriteString("- **Multiple accounts:** You can manage multiple Google accounts (e.g., `work`, `personal`)\n")
	sb.WriteString("- **Per-tool specification:** Each tool call can use a different account\n\n")

	for _, category := range categories {
		categoryTools := toolsByCategory[category]
		sort.Slice(categoryTools, func(i, j int) bool {
			return categoryTools[i].Name < categoryTools[j].Name
		})

		sb.WriteString(fmt.Sprintf("## %s\n\n", category))

		for _, tool := range categoryTools {
			sb.WriteString(generateToolMarkdown(tool))
			sb.WriteString("\n")
		}
	}

	return sb.String()
}

func groupToolsByCategory(tools []mcp.Tool) map[string][]mcp.Tool {
	categories := make(map[string][]mcp.Tool)

	for _, tool := range tools {
		category := getCategoryFromToolName(tool.Name)
		categories[category] = append(categories[category], tool)
	}

	return categories
}

func getCategoryFromToolName(name string) string {
	prefix, _, _ := strings.Cut(name, "_")
	switch prefix {
	case "drive":
		return "Google Drive Tools"
	case "gmail":
		return "Gmail Tools"
	case "calendar":
		return "Google Calendar Tools"
	case "tasks":
		return "Google Tasks Tools"
	default:
		return "Other"
	}
}

func generateToolMarkdown(tool mcp.Tool) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("### %s\n\n", tool.Name))

	if tool.Description != "" {
		sb.WriteString(fmt.Sprintf("%s\n\n", tool.Description))
	}

	if len(tool.InputSchema.Properties) > 0 {
		sb.WriteString("**Arguments:**\n")

		// Sort properties for consistent output
		propNames := make([]string, 0, len(tool.InputSchema.Properties))
		for name := range tool.InputSchema.Properties {
			propNames = append(propNames, name)
		}
		sort.Strings(propNames)

		for _, name := range propNames {
			prop := tool.InputSchema.Properties[name]
			isRequired := contains(tool.InputSchema.Required, name)

			requiredStr := "optional"
			if isRequired {
				requiredStr = "required"
			}

			propMap, ok := prop.(map[string]interface{})
			if !ok {
				continue
			}

			propType := getPropertyType(propMap)

			sb.WriteString(fmt.Sprintf("- `%s` (%s): ", name, requiredStr))

			if desc, ok := propMap["description"].(string); ok {
				sb.WriteString(desc)
			} else {
				sb.WriteString(fmt.Sprintf("%s parameter", propType))
			}

			sb.WriteString("\n")
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

func getPropertyType(prop map[string]interface{}) string {
	if t, ok := prop["type"].(string); ok {
		return t
	}
	return "any"
}

func contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}
