// Package gmail provides a read-only client for the Gmail API.
//
// The client covers searching messages with Gmail's query syntax and
// fetching single messages with their headers and decoded plain-text
// body. Multipart messages are walked for their first text/plain part.
//
// The client supports multi-account functionality; each instance is
// bound to one account and authenticates through the unified OAuth
// token from the google package (gmail.readonly scope).
package gmail
