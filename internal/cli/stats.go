package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var statsMonth string

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show the monthly earnings summary",
	Args:  cobra.NoArgs,
	RunE:  runStats,
}

func init() {
	statsCmd.Flags().StringVar(&statsMonth, "month", "", "Target month as YYYY-MM (default: current month)")
}

func runStats(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	year, month, err := parseMonth(statsMonth, time.Now())
	if err != nil {
		return err
	}

	settings := appLogbook.Settings(ctx)
	stats := appLogbook.Stats(ctx, year, month)

	fmt.Printf("%s %d\n", stats.MonthLabel, year)
	fmt.Println("--------------------------------")
	fmt.Printf("%-16s%d\n", "Full days", stats.TotalFullDays)
	fmt.Printf("%-16s%d\n", "Half days", stats.TotalHalfDays)
	fmt.Printf("%-16s%g\n", "Hours", stats.TotalHours)
	fmt.Printf("%-16s%g %s\n", "Advances", stats.TotalAdvances, settings.Currency)
	fmt.Println("--------------------------------")
	fmt.Printf("%-16s%g %s\n", "Gross", stats.GrossEarnings, settings.Currency)
	fmt.Printf("%-16s%g %s\n", "Net payable", stats.NetPayable, settings.Currency)
	return nil
}
