// Package tasks provides a client for the Google Tasks API.
//
// The client covers listing task lists, listing/creating/updating tasks
// and toggling completion. Because the Tasks API offers no server-side
// search, text and due-date filtering are provided as client-side
// helpers over listed tasks (see search.go).
//
// The client supports multi-account functionality; each instance is
// bound to one account and authenticates through the unified OAuth
// token from the google package.
package tasks
