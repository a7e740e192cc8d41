package cli

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"worklog/internal/core"
	"worklog/internal/log"
	"worklog/internal/services"
	"worklog/internal/storage"
)

var (
	appLogger  *log.Logger
	appRepo    *storage.Repository
	appLogbook *services.Logbook
)

var rootCmd = &cobra.Command{
	Use:   "worklog",
	Short: "worklog – a personal work-log and pay calculator",
	Long: `worklog records one work state per calendar day (full day, half day,
hourly, cash advance, day off) and aggregates them into a monthly
earnings summary. All data lives in a local database.`,
	SilenceUsage:      true,
	PersistentPreRunE: setupApp,
	PersistentPostRun: teardownApp,
}

// Execute is the entry point called from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(logCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(calendarCmd)
	rootCmd.AddCommand(settingsCmd)
	rootCmd.AddCommand(countryCmd)
	rootCmd.AddCommand(setupCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(clearCmd)
}

func setupApp(cmd *cobra.Command, args []string) error {
	LoadEnvFile()

	cfg, err := LoadAndValidateConfig()
	if err != nil {
		return err
	}
	level, err := cfg.SlogLevel()
	if err != nil {
		return err
	}
	appLogger = SetupLogger(level)

	appRepo, err = OpenStorage(appLogger, cfg.DBPath)
	if err != nil {
		return err
	}

	appLogbook = services.NewLogbook(
		storage.NewEntryStore(appRepo, appLogger),
		storage.NewSettingsStore(appRepo, appLogger),
		appLogger,
	)
	return nil
}

func teardownApp(cmd *cobra.Command, args []string) {
	if appRepo != nil {
		if err := appRepo.Close(); err != nil {
			appLogger.Warn("close storage", log.FieldError, err)
		}
	}
}

// parseMonth parses a YYYY-MM flag value; empty means the current month.
func parseMonth(s string, now time.Time) (year, month int, err error) {
	if s == "" {
		return now.Year(), int(now.Month()), nil
	}
	parts := strings.SplitN(s, "-", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid month %q: expected YYYY-MM", s)
	}
	year, err = strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid month %q: expected YYYY-MM", s)
	}
	month, err = strconv.Atoi(parts[1])
	if err != nil || month < 1 || month > 12 {
		return 0, 0, fmt.Errorf("invalid month %q: expected YYYY-MM", s)
	}
	return year, month, nil
}

// parseDate resolves a date argument; "today" is accepted as a shortcut.
func parseDate(s string, now time.Time) (string, error) {
	if s == "today" {
		return now.Format(core.DateLayout), nil
	}
	if _, err := time.Parse(core.DateLayout, s); err != nil {
		return "", fmt.Errorf("invalid date %q: expected YYYY-MM-DD", s)
	}
	return s, nil
}
