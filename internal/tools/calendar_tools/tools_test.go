package calendar_tools

import (
	"testing"
	"time"
)

func TestCalendarIDsFromArgs(t *testing.T) {
	tests := []struct {
		name string
		args map[string]interface{}
		want []string
	}{
		{
			name: "explicit list",
			args: map[string]interface{}{"calendarIds": "primary,team@example.com"},
			want: []string{"primary", "team@example.com"},
		},
		{
			name: "whitespace and duplicates removed",
			args: map[string]interface{}{"calendarIds": " primary , primary ,work"},
			want: []string{"primary", "work"},
		},
		{
			name: "missing falls back to defaults",
			args: map[string]interface{}{},
			want: []string{"primary"},
		},
		{
			name: "empty falls back to defaults",
			args: map[string]interface{}{"calendarIds": ""},
			want: []string{"primary"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := calendarIDsFromArgs(tt.args)
			if len(got) != len(tt.want) {
				t.Fatalf("calendarIDsFromArgs() = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("calendarIDsFromArgs()[%d] = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestParseTimeArg(t *testing.T) {
	args := map[string]interface{}{
		"timeMin": "2026-03-01T09:00:00Z",
		"bad":     "yesterday",
	}

	got, err := parseTimeArg(args, "timeMin")
	if err != nil {
		t.Fatalf("parseTimeArg() unexpected error: %v", err)
	}
	want := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("parseTimeArg() = %v, want %v", got, want)
	}

	if got, err := parseTimeArg(args, "missing"); err != nil || !got.IsZero() {
		t.Errorf("parseTimeArg(missing) = %v, %v; want zero time, nil", got, err)
	}

	if _, err := parseTimeArg(args, "bad"); err == nil {
		t.Error("parseTimeArg(bad) expected error, got nil")
	}
}
