package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/craibo/google-workspace-mcp/internal/google"
)

func newAuthCmd() *cobra.Command {
	var (
		account string
		code    string
	)

	cmd := &cobra.Command{
		Use:   "auth",
		Short: "Authorize a Google account",
		Long: `Authorize a Google account for use with the MCP server.

Run without --code to print the authorization URL. Visit it in a browser,
sign in, grant access and copy the authorization code. Then run again with
--code to exchange it for a token, which is stored on disk and refreshed
automatically.

Multiple accounts are supported: pass --account to authorize each one
under its own name (e.g. "work", "personal").`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if code == "" {
				if google.HasTokenForAccount(account) {
					fmt.Printf("Account %q is already authorized. Re-authorizing replaces the stored token.\n\n", account)
				}
				fmt.Println("Visit this URL in your browser to authorize access:")
				fmt.Println()
				fmt.Printf("  %s\n", google.GetAuthURLForAccount(account))
				fmt.Println()
				fmt.Printf("Then run: google-workspace-mcp auth --account %s --code <authorization code>\n", account)
				return nil
			}

			if err := google.SaveTokenForAccount(cmd.Context(), account, code); err != nil {
				return fmt.Errorf("failed to save token for account %q: %w", account, err)
			}

			fmt.Printf("Account %q authorized successfully.\n", account)
			return nil
		},
	}

	cmd.Flags().StringVar(&account, "account", "default", "Account name to authorize")
	cmd.Flags().StringVar(&code, "code", "", "Authorization code from the Google consent page")

	return cmd
}
