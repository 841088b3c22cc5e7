package domain

import "time"

// DayCell is one cell of a month grid.
type DayCell struct {
	Date           time.Time `json:"date"`
	InCurrentMonth bool      `json:"in_current_month"`
}

// MonthGrid builds the calendar grid for the given month: Monday-first, leading
// days of the previous month, trailing days of the next month, always a whole
// number of weeks (28, 35 or 42 cells).
func MonthGrid(year int, month time.Month) []DayCell {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	// Day zero of the next month is the last day of this one.
	daysInMonth := time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()

	// time.Weekday is Sunday-indexed; remap so Monday is 0.
	lead := (int(first.Weekday()) + 6) % 7
	total := (lead + daysInMonth + 6) / 7 * 7

	cells := make([]DayCell, 0, total)
	for i := lead; i > 0; i-- {
		cells = append(cells, DayCell{Date: first.AddDate(0, 0, -i)})
	}
	for d := 0; d < daysInMonth; d++ {
		cells = append(cells, DayCell{Date: first.AddDate(0, 0, d), InCurrentMonth: true})
	}
	for len(cells) < total {
		last := cells[len(cells)-1].Date
		cells = append(cells, DayCell{Date: last.AddDate(0, 0, 1)})
	}
	return cells
}
