package common

// GetAccountFromArgs extracts the account name from request arguments,
// defaulting to "default" when none is given. Every tool accepts an
// optional "account" argument so multiple Google accounts can be used
// side by side.
func GetAccountFromArgs(args map[string]interface{}) string {
	if account, ok := args["account"].(string); ok && account != "" {
		return account
	}
	return "default"
}
