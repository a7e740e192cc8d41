// Package calendar implements the month layout engine: it maps a target
// year+month and a country's week-start convention onto an ordered grid of
// cells ready for rendering.
package calendar

import (
	"fmt"
	"time"

	"worklog/internal/core"
	"worklog/internal/locale"
)

// Cell is one slot of the month grid. Leading padding cells before day 1
// have Empty set and carry no date. Day cells carry the formatted date key,
// the day's entry if one exists, and whether the cell is today.
type Cell struct {
	Empty   bool
	Day     int
	Date    string
	Entry   *core.DayEntry
	IsToday bool
}

// Grid is the laid-out month.
type Grid struct {
	Year           int
	Month          int
	MonthLabel     string
	WeekdayHeaders [7]string
	Cells          []Cell
}

// Build lays out the given month for a country. The number of leading empty
// cells is the offset of day 1's weekday from the country's week start; day
// cells follow for every real day of the month. Pure function of its inputs;
// "today" detection compares formatted YYYY-MM-DD strings against now.
func Build(year, month int, entries map[string]core.DayEntry, country core.CountryCode, now time.Time) Grid {
	policy := locale.Lookup(country)

	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	daysInMonth := first.AddDate(0, 1, -1).Day()
	todayStr := now.Format(core.DateLayout)

	leading := leadingEmptyCells(first.Weekday(), policy.WeekStart)

	cells := make([]Cell, 0, leading+daysInMonth)
	for i := 0; i < leading; i++ {
		cells = append(cells, Cell{Empty: true})
	}
	for d := 1; d <= daysInMonth; d++ {
		date := fmt.Sprintf("%04d-%02d-%02d", year, month, d)
		cell := Cell{
			Day:     d,
			Date:    date,
			IsToday: date == todayStr,
		}
		if e, ok := entries[date]; ok {
			entry := e
			cell.Entry = &entry
		}
		cells = append(cells, cell)
	}

	return Grid{
		Year:           year,
		Month:          month,
		MonthLabel:     locale.MonthLabel(country, month),
		WeekdayHeaders: policy.Weekdays,
		Cells:          cells,
	}
}

// leadingEmptyCells returns how many padding slots precede day 1. With a
// Sunday week start the offset is the raw weekday index; with a Monday start
// Sunday wraps to the end of the week.
func leadingEmptyCells(firstDay, weekStart time.Weekday) int {
	if weekStart == time.Sunday {
		return int(firstDay)
	}
	if firstDay == time.Sunday {
		return 6
	}
	return int(firstDay) - 1
}
