package domain

import (
	"testing"
	"time"
)

func TestParseItemDate(t *testing.T) {
	tests := []struct {
		value string
		ok    bool
	}{
		{"2026-09-15T10:00:00Z", true},
		{"2026-09-15T10:00:00-03:00", true},
		{"2026-09-15T10:00:00", true},
		{"2026-09-15 10:00:00", true},
		{"2026-09-15", true},
		{"", false},
		{"not-a-date", false},
		{"15/09/2026", false},
	}
	for _, tt := range tests {
		if _, ok := ParseItemDate(tt.value); ok != tt.ok {
			t.Errorf("ParseItemDate(%q) ok = %v, want %v", tt.value, ok, tt.ok)
		}
	}
}

func TestItemsForDayTimeOrdering(t *testing.T) {
	day := time.Date(2026, time.September, 15, 0, 0, 0, 0, time.UTC)
	items := []AgendaItem{
		{ID: "late", Date: "2026-09-15", Time: "09:00"},
		{ID: "untimed", Date: "2026-09-15"},
		{ID: "early", Date: "2026-09-15", Time: "08:00"},
		{ID: "other-day", Date: "2026-09-16", Time: "07:00"},
	}

	result := ItemsForDay(items, day)
	want := []string{"untimed", "early", "late"}
	if len(result) != len(want) {
		t.Fatalf("got %d items, want %d", len(result), len(want))
	}
	for i, id := range want {
		if result[i].ID != id {
			t.Errorf("position %d = %q, want %q", i, result[i].ID, id)
		}
	}
}

func TestItemsForDayEqualTimesKeepInsertionOrder(t *testing.T) {
	day := time.Date(2026, time.September, 15, 0, 0, 0, 0, time.UTC)
	items := []AgendaItem{
		{ID: "first", Date: "2026-09-15", Time: "10:00"},
		{ID: "second", Date: "2026-09-15", Time: "10:00"},
		{ID: "third", Date: "2026-09-15", Time: "10:00"},
	}
	result := ItemsForDay(items, day)
	for i, id := range []string{"first", "second", "third"} {
		if result[i].ID != id {
			t.Errorf("position %d = %q, want %q", i, result[i].ID, id)
		}
	}
}

func TestSortForListOrdersByDayThenTime(t *testing.T) {
	items := []AgendaItem{
		{ID: "d2-early", Date: "2026-09-16", Time: "08:00"},
		{ID: "d1-late", Date: "2026-09-15", Time: "22:00"},
		{ID: "d1-untimed", Date: "2026-09-15"},
		{ID: "broken", Date: "someday"},
		{ID: "d1-early", Date: "2026-09-15", Time: "07:30"},
	}

	result := SortForList(items)
	want := []string{"d1-untimed", "d1-early", "d1-late", "d2-early"}
	if len(result) != len(want) {
		t.Fatalf("got %d items, want %d (unparseable dates excluded)", len(result), len(want))
	}
	for i, id := range want {
		if result[i].ID != id {
			t.Errorf("position %d = %q, want %q", i, result[i].ID, id)
		}
	}
}

func TestSortForListMalformedTimeSortsFirst(t *testing.T) {
	items := []AgendaItem{
		{ID: "timed", Date: "2026-09-15", Time: "01:00"},
		{ID: "garbled", Date: "2026-09-15", Time: "noonish"},
	}
	result := SortForList(items)
	// rank("noonish") = 0, rank("01:00") = 100
	if result[0].ID != "garbled" {
		t.Fatalf("first = %q, want the malformed time to sort before 01:00", result[0].ID)
	}
}

func TestSameDayIgnoresTimeOfDay(t *testing.T) {
	a := time.Date(2026, time.September, 15, 23, 59, 0, 0, time.UTC)
	b := time.Date(2026, time.September, 15, 0, 1, 0, 0, time.UTC)
	if !SameDay(a, b) {
		t.Error("same calendar day reported as different")
	}
	c := time.Date(2026, time.September, 16, 0, 0, 0, 0, time.UTC)
	if SameDay(a, c) {
		t.Error("different days reported as equal")
	}
}
