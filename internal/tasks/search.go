package tasks

import (
	"strings"
	"time"
)

// The Tasks API has no server-side search, so text and date filtering
// happen here over a listed page of tasks.

// FilterTasksByQuery returns the tasks whose title or notes contain the
// query, case-insensitively, capped at maxResults (0 = no cap). Input
// order is preserved.
func FilterTasksByQuery(items []Task, query string, maxResults int) []Task {
	q := strings.ToLower(query)
	var matched []Task
	for _, t := range items {
		if maxResults > 0 && len(matched) >= maxResults {
			break
		}
		if strings.Contains(strings.ToLower(t.Title), q) ||
			strings.Contains(strings.ToLower(t.Notes), q) {
			matched = append(matched, t)
		}
	}
	return matched
}

// FilterTasksByDueRange returns the tasks whose due date falls within
// [start, end] inclusive, compared at day granularity. Tasks without a
// due date are excluded. Capped at maxResults (0 = no cap).
func FilterTasksByDueRange(items []Task, start, end time.Time, maxResults int) []Task {
	startDay := toDay(start)
	endDay := toDay(end)

	var matched []Task
	for _, t := range items {
		if maxResults > 0 && len(matched) >= maxResults {
			break
		}
		if t.Due.IsZero() {
			continue
		}
		due := toDay(t.Due)
		if !due.Before(startDay) && !due.After(endDay) {
			matched = append(matched, t)
		}
	}
	return matched
}

func toDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
