package domain

import (
	"sort"
	"strconv"
	"strings"
	"time"
)

// Layouts tried when the strict RFC3339 parse fails. The portal historically
// stored a few loose variants alongside proper ISO strings.
var fallbackDateLayouts = []string{
	"2006-01-02T15:04:05.999Z07:00",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseItemDate parses an item's date string, strict first, permissive after.
// The second return value is false when the string is unusable; such items are
// excluded from date-bounded views but kept everywhere else.
func ParseItemDate(value string) (time.Time, bool) {
	if value == "" {
		return time.Time{}, false
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, true
	}
	for _, layout := range fallbackDateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// Day returns the item's calendar day, time-of-day stripped.
func (i AgendaItem) Day() (time.Time, bool) {
	t, ok := ParseItemDate(i.Date)
	if !ok {
		return time.Time{}, false
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), true
}

// timeRank orders "HH:MM" strings numerically; an absent or malformed time
// sorts first.
func timeRank(value string) int {
	if value == "" {
		return 0
	}
	n, err := strconv.Atoi(strings.ReplaceAll(value, ":", ""))
	if err != nil {
		return 0
	}
	return n
}

// SameDay reports calendar-day equality regardless of time-of-day.
func SameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

// ItemsForDay returns the items scheduled on the given day, ordered by
// time-of-day ascending. The sort is stable so equal times keep insertion
// order.
func ItemsForDay(items []AgendaItem, day time.Time) []AgendaItem {
	var result []AgendaItem
	for _, item := range items {
		d, ok := item.Day()
		if !ok {
			continue
		}
		if SameDay(d, day) {
			result = append(result, item)
		}
	}
	sort.SliceStable(result, func(i, j int) bool {
		return timeRank(result[i].Time) < timeRank(result[j].Time)
	})
	return result
}

// SortForList orders items by day ascending, then time-of-day ascending,
// stably. Items with unparseable dates are excluded.
func SortForList(items []AgendaItem) []AgendaItem {
	type keyed struct {
		item AgendaItem
		day  int64
		rank int
	}
	entries := make([]keyed, 0, len(items))
	for _, item := range items {
		d, ok := item.Day()
		if !ok {
			continue
		}
		entries = append(entries, keyed{item: item, day: d.Unix(), rank: timeRank(item.Time)})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].day != entries[j].day {
			return entries[i].day < entries[j].day
		}
		return entries[i].rank < entries[j].rank
	})
	result := make([]AgendaItem, len(entries))
	for i, e := range entries {
		result[i] = e.item
	}
	return result
}
