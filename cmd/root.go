package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command for the google-workspace-mcp application
var rootCmd = &cobra.Command{
	Use:   "google-workspace-mcp",
	Short: "MCP server for Google Workspace",
	Long: `google-workspace-mcp is a Model Context Protocol (MCP) server exposing
Google Drive, Gmail, Calendar and Tasks to AI assistants.

Its centerpiece is Drive content search: it looks inside Google Docs, PDF,
plain-text, CSV and DOCX files and returns matches with highlighted snippets.`,
	SilenceUsage: true,
}

// version will be set by main
var version = "dev"

// SetVersion sets the version for the root command
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}

// Execute is the main entry point for the CLI application
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "google-workspace-mcp version %s\n" .Version}}`)

	// If no subcommand is provided, run the serve command by default
	if len(os.Args) == 1 {
		os.Args = append(os.Args, "serve")
	}

	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newAuthCmd())
	rootCmd.AddCommand(newGenerateDocsCmd())
	rootCmd.AddCommand(newVersionCmd())
}
