// Package calendar provides a read-only client for the Google Calendar API.
//
// The client covers listing the user's calendars, listing and searching
// events in a time window across one or several calendars, and fetching
// single events. Events listed across multiple calendars are annotated
// with the calendar they came from.
//
// The client supports multi-account functionality; each instance is
// bound to one account and authenticates through the unified OAuth
// token from the google package (calendar.readonly scope).
package calendar
