// Package paycalc implements the monthly pay aggregation engine.
//
// The computation is pure and re-derived in full on every call: the entry
// set is bounded by the days of a user's history, and correctness under
// arbitrary mutation order matters more than recomputation cost.
package paycalc

import (
	"worklog/internal/core"
	"worklog/internal/locale"
)

// fallbackStandardHours is used when settings carry no usable value, so a
// half-configured settings record still yields finite earnings.
const fallbackStandardHours = 8

// Compute derives the MonthlyStats for a target month from the full entry
// collection and the current settings.
//
// An entry belongs to the month when the year/month components of its stored
// date key match; day values and date-range containment play no part. OFF
// entries and notes never contribute to any sum, and HOURLY/ADVANCE entries
// with a missing number contribute zero rather than failing.
func Compute(entries map[string]core.DayEntry, year, month int, settings core.AppSettings) core.MonthlyStats {
	var (
		fullDays  int
		halfDays  int
		hourlySum float64
		advances  float64
	)

	for _, e := range entries {
		if !e.InMonth(year, month) {
			continue
		}
		switch e.Type {
		case core.WorkFull:
			fullDays++
		case core.WorkHalf:
			halfDays++
		case core.WorkHourly:
			hourlySum += e.CustomHours
		case core.WorkAdvance:
			advances += e.AdvanceAmount
		}
	}

	stdHours := settings.StandardHours
	if stdHours <= 0 {
		stdHours = fallbackStandardHours
	}

	var gross float64
	if settings.RateType == core.RateHourly {
		// Day units normalized to hour-equivalents.
		gross += float64(fullDays) * stdHours * settings.Rate
		gross += float64(halfDays) * (stdHours / 2) * settings.Rate
		gross += hourlySum * settings.Rate
	} else {
		// Hourly work normalized to day-equivalents.
		gross += float64(fullDays) * settings.Rate
		gross += float64(halfDays) * (settings.Rate / 2)
		gross += (hourlySum / stdHours) * settings.Rate
	}

	return core.MonthlyStats{
		TotalFullDays: fullDays,
		TotalHalfDays: halfDays,
		TotalHours:    hourlySum,
		TotalAdvances: advances,
		GrossEarnings: gross,
		NetPayable:    gross - advances,
		MonthLabel:    locale.MonthLabel(settings.Country, month),
	}
}
