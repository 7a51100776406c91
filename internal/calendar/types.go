package calendar

import (
	"time"

	calendar "google.golang.org/api/calendar/v3"
)

// EventSummary represents a simplified calendar event for listing
type EventSummary struct {
	ID          string         `json:"id"`
	CalendarID  string         `json:"calendarId,omitempty"`
	Summary     string         `json:"summary"`
	Description string         `json:"description,omitempty"`
	Location    string         `json:"location,omitempty"`
	Start       time.Time      `json:"start"`
	End         time.Time      `json:"end"`
	AllDay      bool           `json:"allDay,omitempty"`
	Creator     string         `json:"creator,omitempty"`
	Organizer   string         `json:"organizer,omitempty"`
	Status      string         `json:"status,omitempty"`
	Attendees   []AttendeeInfo `json:"attendees,omitempty"`
	MeetLink    string         `json:"meetLink,omitempty"`
}

// AttendeeInfo represents information about an event attendee
type AttendeeInfo struct {
	Email          string `json:"email"`
	DisplayName    string `json:"displayName,omitempty"`
	ResponseStatus string `json:"responseStatus,omitempty"` // "needsAction", "declined", "tentative", "accepted"
	Optional       bool   `json:"optional,omitempty"`
	Organizer      bool   `json:"organizer,omitempty"`
}

// CalendarInfo represents information about a calendar
type CalendarInfo struct {
	ID          string `json:"id"`
	Summary     string `json:"summary"`
	Description string `json:"description,omitempty"`
	TimeZone    string `json:"timeZone,omitempty"`
	Primary     bool   `json:"primary,omitempty"`
	AccessRole  string `json:"accessRole,omitempty"` // "owner", "writer", "reader", "freeBusyReader"
}

// ListEventsOptions controls event listing and searching
type ListEventsOptions struct {
	// TimeMin is the lower bound (inclusive) for an event's end time
	TimeMin time.Time

	// TimeMax is the upper bound (exclusive) for an event's start time
	TimeMax time.Time

	// Query is a free-text search over event fields (summary, description,
	// location, attendees)
	Query string

	// MaxResults limits events per calendar (0 = API default)
	MaxResults int64
}

// toEventSummary converts a Google Calendar event to an EventSummary,
// recording which calendar it was read from
func toEventSummary(event *calendar.Event, calendarID string) EventSummary {
	summary := EventSummary{
		ID:          event.Id,
		CalendarID:  calendarID,
		Summary:     event.Summary,
		Description: event.Description,
		Location:    event.Location,
		Status:      event.Status,
	}

	// Parse start time; all-day events carry a date instead of a dateTime
	if event.Start != nil {
		if event.Start.DateTime != "" {
			if t, err := time.Parse(time.RFC3339, event.Start.DateTime); err == nil {
				summary.Start = t
			}
		} else if event.Start.Date != "" {
			if t, err := time.Parse("2006-01-02", event.Start.Date); err == nil {
				summary.Start = t
				summary.AllDay = true
			}
		}
	}

	// Parse end time
	if event.End != nil {
		if event.End.DateTime != "" {
			if t, err := time.Parse(time.RFC3339, event.End.DateTime); err == nil {
				summary.End = t
			}
		} else if event.End.Date != "" {
			if t, err := time.Parse("2006-01-02", event.End.Date); err == nil {
				summary.End = t
			}
		}
	}

	// Creator and organizer
	if event.Creator != nil {
		summary.Creator = event.Creator.Email
	}
	if event.Organizer != nil {
		summary.Organizer = event.Organizer.Email
	}

	// Attendees
	for _, att := range event.Attendees {
		summary.Attendees = append(summary.Attendees, AttendeeInfo{
			Email:          att.Email,
			DisplayName:    att.DisplayName,
			ResponseStatus: att.ResponseStatus,
			Optional:       att.Optional,
			Organizer:      att.Organizer,
		})
	}

	// Google Meet link
	if event.ConferenceData != nil && len(event.ConferenceData.EntryPoints) > 0 {
		for _, ep := range event.ConferenceData.EntryPoints {
			if ep.EntryPointType == "video" {
				summary.MeetLink = ep.Uri
				break
			}
		}
	}

	return summary
}

// toCalendarInfo converts a Google Calendar list entry to CalendarInfo
func toCalendarInfo(entry *calendar.CalendarListEntry) CalendarInfo {
	return CalendarInfo{
		ID:          entry.Id,
		Summary:     entry.Summary,
		Description: entry.Description,
		TimeZone:    entry.TimeZone,
		Primary:     entry.Primary,
		AccessRole:  entry.AccessRole,
	}
}
