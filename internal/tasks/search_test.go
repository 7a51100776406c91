package tasks

import (
	"testing"
	"time"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestFilterTasksByQuery(t *testing.T) {
	items := []Task{
		{ID: "1", Title: "Buy groceries", Notes: "milk and eggs"},
		{ID: "2", Title: "Quarterly REPORT", Notes: ""},
		{ID: "3", Title: "Call dentist", Notes: "about the report"},
		{ID: "4", Title: "Unrelated"},
	}

	got := FilterTasksByQuery(items, "report", 0)
	if len(got) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(got))
	}
	if got[0].ID != "2" || got[1].ID != "3" {
		t.Errorf("expected order [2 3], got [%s %s]", got[0].ID, got[1].ID)
	}
}

func TestFilterTasksByQueryMaxResults(t *testing.T) {
	items := []Task{
		{ID: "1", Title: "task one"},
		{ID: "2", Title: "task two"},
		{ID: "3", Title: "task three"},
	}

	got := FilterTasksByQuery(items, "task", 2)
	if len(got) != 2 {
		t.Fatalf("expected 2 results with cap, got %d", len(got))
	}
}

func TestFilterTasksByQueryNoMatch(t *testing.T) {
	items := []Task{{ID: "1", Title: "something"}}
	if got := FilterTasksByQuery(items, "absent", 0); len(got) != 0 {
		t.Errorf("expected no matches, got %d", len(got))
	}
}

func TestFilterTasksByDueRange(t *testing.T) {
	items := []Task{
		{ID: "before", Due: day(2024, 1, 1)},
		{ID: "start", Due: day(2024, 1, 10)},
		{ID: "mid", Due: time.Date(2024, 1, 15, 18, 30, 0, 0, time.UTC)},
		{ID: "end", Due: day(2024, 1, 20)},
		{ID: "after", Due: day(2024, 2, 1)},
		{ID: "nodue"},
	}

	got := FilterTasksByDueRange(items, day(2024, 1, 10), day(2024, 1, 20), 0)
	if len(got) != 3 {
		t.Fatalf("expected 3 tasks in range, got %d", len(got))
	}
	wantIDs := []string{"start", "mid", "end"}
	for i, want := range wantIDs {
		if got[i].ID != want {
			t.Errorf("result %d: expected %s, got %s", i, want, got[i].ID)
		}
	}
}

func TestFilterTasksByDueRangeSkipsMissingDue(t *testing.T) {
	items := []Task{{ID: "nodue"}}
	if got := FilterTasksByDueRange(items, day(2024, 1, 1), day(2024, 12, 31), 0); len(got) != 0 {
		t.Errorf("tasks without a due date must be excluded, got %d", len(got))
	}
}

func TestToTaskAnnotatesTaskList(t *testing.T) {
	task := toTask(nil, "list1")
	if task.ID != "" {
		t.Errorf("nil task should convert to zero value")
	}
}
