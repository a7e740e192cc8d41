package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"worklog/internal/calendar"
	"worklog/internal/core"
)

var calendarMonth string

var calendarCmd = &cobra.Command{
	Use:   "calendar",
	Short: "Show the month grid with recorded days",
	Long: `Render the target month as a week-aligned grid. Day marks:
X full day, / half day, a number for hourly entries, $ advance, 0 day off.
The current day is bracketed.`,
	Args: cobra.NoArgs,
	RunE: runCalendar,
}

func init() {
	calendarCmd.Flags().StringVar(&calendarMonth, "month", "", "Target month as YYYY-MM (default: current month)")
}

func runCalendar(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	year, month, err := parseMonth(calendarMonth, time.Now())
	if err != nil {
		return err
	}

	grid := appLogbook.Grid(ctx, year, month)

	fmt.Printf("%s %d\n", grid.MonthLabel, grid.Year)
	for _, h := range grid.WeekdayHeaders {
		fmt.Printf("%6s", h)
	}
	fmt.Println()

	col := 0
	for _, cell := range grid.Cells {
		fmt.Printf("%6s", renderCell(cell))
		col++
		if col == 7 {
			fmt.Println()
			col = 0
		}
	}
	if col != 0 {
		fmt.Println()
	}
	return nil
}

func renderCell(c calendar.Cell) string {
	if c.Empty {
		return ""
	}
	label := fmt.Sprintf("%d%s", c.Day, entryMark(c.Entry))
	if c.IsToday {
		label = "[" + label + "]"
	}
	return label
}

// entryMark mirrors the calendar glyphs: X full, / half, hours for hourly,
// $ advance, 0 off.
func entryMark(e *core.DayEntry) string {
	if e == nil {
		return ""
	}
	switch e.Type {
	case core.WorkFull:
		return ":X"
	case core.WorkHalf:
		return ":/"
	case core.WorkHourly:
		return ":" + strings.TrimRight(strings.TrimRight(fmt.Sprintf("%.2f", e.CustomHours), "0"), ".") + "h"
	case core.WorkAdvance:
		return ":$"
	case core.WorkOff:
		return ":0"
	}
	return ""
}
