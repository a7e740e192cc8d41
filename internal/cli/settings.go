package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"worklog/internal/core"
	"worklog/internal/locale"
)

var (
	settingsRate     string
	settingsRateType string
	settingsHours    string
	settingsName     string
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Show or change pay settings",
	Args:  cobra.NoArgs,
	RunE:  runSettings,
}

func init() {
	settingsCmd.Flags().StringVar(&settingsRate, "rate", "", "Pay rate (per day or per hour, see --rate-type)")
	settingsCmd.Flags().StringVar(&settingsRateType, "rate-type", "", "How the rate is denominated: daily or hourly")
	settingsCmd.Flags().StringVar(&settingsHours, "hours", "", "Hours that count as one full day")
	settingsCmd.Flags().StringVar(&settingsName, "name", "", "Display name")
}

func runSettings(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	settings := appLogbook.Settings(ctx)

	changed := false
	if settingsRate != "" {
		rate, err := core.ParseAmount(settingsRate)
		if err != nil {
			return fmt.Errorf("invalid rate %q: must be a positive number", settingsRate)
		}
		settings.Rate = rate
		changed = true
	}
	if settingsRateType != "" {
		switch settingsRateType {
		case "daily":
			settings.RateType = core.RateDaily
		case "hourly":
			settings.RateType = core.RateHourly
		default:
			return fmt.Errorf("invalid rate type %q: expected daily or hourly", settingsRateType)
		}
		changed = true
	}
	if settingsHours != "" {
		hours, err := core.ParseAmount(settingsHours)
		if err != nil {
			return fmt.Errorf("invalid hours %q: must be a positive number", settingsHours)
		}
		settings.StandardHours = hours
		changed = true
	}
	if settingsName != "" {
		settings.UserName = settingsName
		changed = true
	}

	if changed {
		appLogbook.SaveSettings(ctx, settings)
		fmt.Println("Settings saved.")
	}

	fmt.Printf("%-16s%s\n", "Name", settings.UserName)
	fmt.Printf("%-16s%s\n", "Country", settings.Country)
	fmt.Printf("%-16s%s\n", "Currency", settings.Currency)
	fmt.Printf("%-16s%g per %s\n", "Rate", settings.Rate, rateUnit(settings.RateType))
	fmt.Printf("%-16s%g\n", "Standard hours", settings.StandardHours)
	fmt.Printf("%-16s%d\n", "Entries saved", settings.LifetimeEntryCount)
	if settings.PremiumActive(time.Now()) {
		fmt.Printf("%-16s%s\n", "Premium until", time.UnixMilli(settings.PremiumExpiry).Format(core.DateLayout))
	}
	return nil
}

func rateUnit(t core.RateType) string {
	if t == core.RateHourly {
		return "hour"
	}
	return "day"
}

var countryCmd = &cobra.Command{
	Use:   "country [code]",
	Short: "Show or change the country",
	Long: `With no argument, list the supported countries. With a code, switch to
that country and re-derive currency and standard hours from its defaults.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCountry,
}

func runCountry(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	if len(args) == 0 {
		current := appLogbook.Settings(ctx).Country
		for _, code := range locale.Codes() {
			policy := locale.Lookup(code)
			marker := "  "
			if code == current {
				marker = "* "
			}
			fmt.Printf("%s%s  %s, %gh day\n", marker, code, policy.Currency, policy.StandardHours)
		}
		return nil
	}

	code := core.CountryCode(args[0])
	if !locale.Known(code) {
		fmt.Printf("Unknown country %q, using defaults of %s\n", args[0], locale.DefaultCountry)
	}
	settings := appLogbook.ChangeCountry(ctx, code)
	fmt.Printf("Country set to %s (%s, %gh day)\n", settings.Country, settings.Currency, settings.StandardHours)
	return nil
}

var (
	setupPassword string
	setupRecovery string
)

var setupCmd = &cobra.Command{
	Use:   "setup <name>",
	Short: "Run first-time setup",
	Args:  cobra.ExactArgs(1),
	RunE:  runSetup,
}

func init() {
	setupCmd.Flags().StringVar(&setupPassword, "password", "", "Local edit-gate password")
	setupCmd.Flags().StringVar(&setupRecovery, "recovery", "", "Recovery answer for password reset")
}

func runSetup(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	settings := appLogbook.CompleteSetup(ctx, args[0], setupPassword, setupRecovery)
	fmt.Printf("Welcome, %s. Country %s, %s, %gh day.\n",
		settings.UserName, settings.Country, settings.Currency, settings.StandardHours)
	return nil
}
