package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"worklog/internal/core"
)

var logNote string

var logCmd = &cobra.Command{
	Use:   "log <date> <full|half|hourly|advance|off> [amount]",
	Short: "Record a day's work state",
	Long: `Record one state for a calendar day. The date is YYYY-MM-DD or "today".
hourly takes a worked-hours amount, advance takes a cash amount; the other
types take none. Saving a date that already has an entry overwrites it.`,
	Args: cobra.RangeArgs(2, 3),
	RunE: runLog,
}

func init() {
	logCmd.Flags().StringVar(&logNote, "note", "", "Optional note for the day")
}

var workTypeNames = map[string]core.WorkType{
	"full":    core.WorkFull,
	"half":    core.WorkHalf,
	"hourly":  core.WorkHourly,
	"advance": core.WorkAdvance,
	"off":     core.WorkOff,
}

func runLog(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	now := time.Now()

	date, err := parseDate(args[0], now)
	if err != nil {
		return err
	}

	workType, ok := workTypeNames[args[1]]
	if !ok {
		return fmt.Errorf("unknown work type %q: expected full, half, hourly, advance or off", args[1])
	}

	var amount float64
	if workType == core.WorkHourly || workType == core.WorkAdvance {
		if len(args) < 3 {
			return fmt.Errorf("%s requires an amount", args[1])
		}
		amount, err = core.ParseAmount(args[2])
		if err != nil {
			return fmt.Errorf("invalid amount %q: must be a positive number", args[2])
		}
	}

	entries, err := appLogbook.SaveEntry(ctx, date, workType, amount, logNote)
	if err != nil {
		return err
	}

	e := entries[date]
	switch e.Type {
	case core.WorkHourly:
		fmt.Printf("Logged %s: %v hours\n", date, e.CustomHours)
	case core.WorkAdvance:
		settings := appLogbook.Settings(ctx)
		fmt.Printf("Logged %s: advance of %v %s\n", date, e.AdvanceAmount, settings.Currency)
	default:
		fmt.Printf("Logged %s: %s\n", date, e.Type)
	}
	return nil
}
