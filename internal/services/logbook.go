// Package services wires the stores and the two engines together behind the
// handlers the surrounding UI shell calls into.
package services

import (
	"context"
	"fmt"
	"time"

	"worklog/internal/calendar"
	"worklog/internal/core"
	"worklog/internal/locale"
	"worklog/internal/log"
	"worklog/internal/paycalc"
	"worklog/internal/storage"
)

// adFreeEntryLimit is how many entries a free user can hold before the
// shell starts showing ads.
const adFreeEntryLimit = 6

// Logbook orchestrates entry and settings mutations and exposes the
// derived views. It holds no state of its own beyond the injected stores;
// every computation re-reads and re-derives.
type Logbook struct {
	entries  *storage.EntryStore
	settings *storage.SettingsStore
	logger   *log.Logger
	now      func() time.Time
}

func NewLogbook(entries *storage.EntryStore, settings *storage.SettingsStore, logger *log.Logger) *Logbook {
	return &Logbook{
		entries:  entries,
		settings: settings,
		logger:   logger.WithComponent(log.ComponentLogbook),
		now:      time.Now,
	}
}

// WithClock overrides the time source, for tests.
func (l *Logbook) WithClock(now func() time.Time) *Logbook {
	l.now = now
	return l
}

// SelectDay gates the edit flow for a date: malformed dates and dates
// strictly after today (date-only comparison) are rejected before any
// editing begins.
func (l *Logbook) SelectDay(date string) error {
	if _, err := time.Parse(core.DateLayout, date); err != nil {
		return core.ErrInvalidDate
	}
	// Lexicographic comparison is exact for YYYY-MM-DD keys.
	if date > l.now().Format(core.DateLayout) {
		return core.ErrFutureDate
	}
	return nil
}

// SaveEntry records a day's state. For HOURLY and ADVANCE the amount must
// be positive or the save is refused before anything is written; for the
// other types the amount is ignored. A successful save bumps the lifetime
// entry counter by exactly one and returns the updated collection.
func (l *Logbook) SaveEntry(ctx context.Context, date string, t core.WorkType, amount float64, note string) (map[string]core.DayEntry, error) {
	if err := l.SelectDay(date); err != nil {
		return nil, err
	}

	var entry core.DayEntry
	switch t {
	case core.WorkHourly:
		if amount <= 0 {
			return nil, core.ErrInvalidHours
		}
		entry = core.NewHourlyEntry(date, amount, note)
	case core.WorkAdvance:
		if amount <= 0 {
			return nil, core.ErrInvalidAmount
		}
		entry = core.NewAdvanceEntry(date, amount, note)
	default:
		entry = core.NewDayEntry(date, t, note)
	}
	if err := entry.Validate(); err != nil {
		return nil, fmt.Errorf("validate entry: %w", err)
	}

	entries := l.entries.Save(ctx, entry)

	settings := l.settings.Get(ctx)
	settings.LifetimeEntryCount++
	l.settings.Save(ctx, settings)

	l.logger.Info("entry saved",
		log.FieldDate, date,
		log.FieldEntryType, string(entry.Type),
		"lifetime_count", settings.LifetimeEntryCount)

	return entries, nil
}

// Entries returns the current persisted collection.
func (l *Logbook) Entries(ctx context.Context) map[string]core.DayEntry {
	return l.entries.GetAll(ctx)
}

// Settings returns the current settings merged over defaults.
func (l *Logbook) Settings(ctx context.Context) core.AppSettings {
	return l.settings.Get(ctx)
}

// SaveSettings persists a full settings record.
func (l *Logbook) SaveSettings(ctx context.Context, settings core.AppSettings) {
	l.settings.Save(ctx, settings)
}

// ApplyCountryDefaults switches the record to a new country and re-derives
// currency and standard hours from that country's policy table. Pure; the
// caller decides whether to persist.
func ApplyCountryDefaults(settings core.AppSettings, code core.CountryCode) core.AppSettings {
	policy := locale.Lookup(code)
	settings.Country = code
	settings.Currency = policy.Currency
	settings.StandardHours = policy.StandardHours
	return settings
}

// ChangeCountry applies a country's defaults and persists the result.
func (l *Logbook) ChangeCountry(ctx context.Context, code core.CountryCode) core.AppSettings {
	settings := ApplyCountryDefaults(l.settings.Get(ctx), code)
	l.settings.Save(ctx, settings)
	l.logger.Info("country changed", log.FieldCountry, string(code))
	return settings
}

// CompleteSetup records the first-run identity fields and marks setup done.
func (l *Logbook) CompleteSetup(ctx context.Context, name, password, recoveryKey string) core.AppSettings {
	settings := l.settings.Get(ctx)
	settings.UserName = name
	settings.Password = password
	settings.RecoveryKey = recoveryKey
	settings.IsSetupCompleted = true
	l.settings.Save(ctx, settings)
	return settings
}

// ResetPassword replaces the local edit-gate password.
func (l *Logbook) ResetPassword(ctx context.Context, newPassword string) {
	settings := l.settings.Get(ctx)
	settings.Password = newPassword
	l.settings.Save(ctx, settings)
}

// AdsVisible reports whether the shell should show ads: free tier with more
// than adFreeEntryLimit lifetime entries or at least that many active ones.
func (l *Logbook) AdsVisible(ctx context.Context) bool {
	settings := l.settings.Get(ctx)
	if settings.PremiumActive(l.now()) {
		return false
	}
	return settings.LifetimeEntryCount > adFreeEntryLimit ||
		len(l.entries.GetAll(ctx)) >= adFreeEntryLimit
}

// Stats recomputes the monthly statistics for a target month.
func (l *Logbook) Stats(ctx context.Context, year, month int) core.MonthlyStats {
	return paycalc.Compute(l.entries.GetAll(ctx), year, month, l.settings.Get(ctx))
}

// Grid lays out a target month's calendar for the current country.
func (l *Logbook) Grid(ctx context.Context, year, month int) calendar.Grid {
	settings := l.settings.Get(ctx)
	return calendar.Build(year, month, l.entries.GetAll(ctx), settings.Country, l.now())
}

// ClearEntries drops the whole entry collection. Settings survive.
func (l *Logbook) ClearEntries(ctx context.Context) {
	l.entries.Clear(ctx)
	l.logger.Info("entries cleared", log.FieldOperation, log.OpClear)
}
