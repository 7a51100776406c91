// Package common holds helpers shared by all tool packages: account
// resolution from request arguments and handler wrappers that record
// invocation metrics.
package common
