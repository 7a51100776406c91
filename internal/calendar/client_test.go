package calendar

import (
	"testing"
	"time"

	calendar "google.golang.org/api/calendar/v3"
)

func TestToEventSummary(t *testing.T) {
	event := &calendar.Event{
		Id:          "event1",
		Summary:     "Team Meeting",
		Description: "Weekly sync",
		Location:    "Room 4",
		Status:      "confirmed",
		Start:       &calendar.EventDateTime{DateTime: "2023-01-01T10:00:00Z"},
		End:         &calendar.EventDateTime{DateTime: "2023-01-01T11:00:00Z"},
		Creator:     &calendar.EventCreator{Email: "creator@example.com"},
		Organizer:   &calendar.EventOrganizer{Email: "organizer@example.com"},
		Attendees: []*calendar.EventAttendee{
			{
				Email:          "attendee@example.com",
				DisplayName:    "Attendee",
				ResponseStatus: "accepted",
			},
		},
		ConferenceData: &calendar.ConferenceData{
			EntryPoints: []*calendar.EntryPoint{
				{EntryPointType: "phone", Uri: "tel:+1234"},
				{EntryPointType: "video", Uri: "https://meet.google.com/abc-defg-hij"},
			},
		},
	}

	summary := toEventSummary(event, "primary")

	if summary.ID != "event1" {
		t.Errorf("Expected ID event1, got %s", summary.ID)
	}
	if summary.CalendarID != "primary" {
		t.Errorf("Expected CalendarID primary, got %s", summary.CalendarID)
	}
	if summary.Summary != "Team Meeting" {
		t.Errorf("Expected Summary Team Meeting, got %s", summary.Summary)
	}

	wantStart, _ := time.Parse(time.RFC3339, "2023-01-01T10:00:00Z")
	if !summary.Start.Equal(wantStart) {
		t.Errorf("Expected Start %v, got %v", wantStart, summary.Start)
	}
	if summary.AllDay {
		t.Error("Timed event must not be marked all-day")
	}

	if summary.Creator != "creator@example.com" {
		t.Errorf("Expected creator email, got %s", summary.Creator)
	}
	if summary.Organizer != "organizer@example.com" {
		t.Errorf("Expected organizer email, got %s", summary.Organizer)
	}

	if len(summary.Attendees) != 1 {
		t.Fatalf("Expected 1 attendee, got %d", len(summary.Attendees))
	}
	if summary.Attendees[0].ResponseStatus != "accepted" {
		t.Errorf("Expected accepted, got %s", summary.Attendees[0].ResponseStatus)
	}

	if summary.MeetLink != "https://meet.google.com/abc-defg-hij" {
		t.Errorf("Expected video entry point as meet link, got %s", summary.MeetLink)
	}
}

func TestToEventSummaryAllDay(t *testing.T) {
	event := &calendar.Event{
		Id:      "event2",
		Summary: "Holiday",
		Start:   &calendar.EventDateTime{Date: "2023-06-15"},
		End:     &calendar.EventDateTime{Date: "2023-06-16"},
	}

	summary := toEventSummary(event, "primary")

	if !summary.AllDay {
		t.Error("Date-only event must be marked all-day")
	}
	want := time.Date(2023, 6, 15, 0, 0, 0, 0, time.UTC)
	if !summary.Start.Equal(want) {
		t.Errorf("Expected Start %v, got %v", want, summary.Start)
	}
}

func TestToEventSummaryInvalidTimesIgnored(t *testing.T) {
	event := &calendar.Event{
		Id:    "event3",
		Start: &calendar.EventDateTime{DateTime: "garbage"},
	}

	summary := toEventSummary(event, "primary")
	if !summary.Start.IsZero() {
		t.Errorf("Expected zero Start for unparseable time, got %v", summary.Start)
	}
}

func TestToCalendarInfo(t *testing.T) {
	entry := &calendar.CalendarListEntry{
		Id:         "work@company.com",
		Summary:    "Work",
		TimeZone:   "Europe/Berlin",
		Primary:    true,
		AccessRole: "owner",
	}

	info := toCalendarInfo(entry)

	if info.ID != "work@company.com" || info.Summary != "Work" {
		t.Errorf("unexpected conversion: %+v", info)
	}
	if !info.Primary {
		t.Error("Expected Primary true")
	}
	if info.AccessRole != "owner" {
		t.Errorf("Expected owner, got %s", info.AccessRole)
	}
}
