package services

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"worklog/internal/core"
	"worklog/internal/log"
	"worklog/internal/storage"
)

var testNow = time.Date(2025, 6, 15, 10, 30, 0, 0, time.UTC)

func newTestLogbook(t *testing.T) *Logbook {
	t.Helper()
	repo, err := storage.Open(filepath.Join(t.TempDir(), "worklog.db"))
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })

	logger := log.New(log.DefaultConfig())
	lb := NewLogbook(
		storage.NewEntryStore(repo, logger),
		storage.NewSettingsStore(repo, logger),
		logger,
	)
	return lb.WithClock(func() time.Time { return testNow })
}

func TestSelectDayFutureGate(t *testing.T) {
	lb := newTestLogbook(t)

	assert.NoError(t, lb.SelectDay("2025-06-15"), "today is editable")
	assert.NoError(t, lb.SelectDay("2025-06-14"), "the past is editable")

	err := lb.SelectDay("2025-06-16")
	assert.ErrorIs(t, err, core.ErrFutureDate)

	err = lb.SelectDay("tomorrow")
	assert.ErrorIs(t, err, core.ErrInvalidDate)
}

func TestSaveEntryBumpsLifetimeCounter(t *testing.T) {
	ctx := context.Background()
	lb := newTestLogbook(t)

	_, err := lb.SaveEntry(ctx, "2025-06-10", core.WorkFull, 0, "")
	require.NoError(t, err)
	_, err = lb.SaveEntry(ctx, "2025-06-11", core.WorkHalf, 0, "")
	require.NoError(t, err)

	assert.Equal(t, 2, lb.Settings(ctx).LifetimeEntryCount)

	// Overwriting a date still counts as one more save.
	_, err = lb.SaveEntry(ctx, "2025-06-10", core.WorkOff, 0, "")
	require.NoError(t, err)
	assert.Equal(t, 3, lb.Settings(ctx).LifetimeEntryCount)
	assert.Len(t, lb.Entries(ctx), 2)
}

func TestSaveEntryRefusesBadNumbers(t *testing.T) {
	ctx := context.Background()
	lb := newTestLogbook(t)

	_, err := lb.SaveEntry(ctx, "2025-06-10", core.WorkHourly, 0, "")
	assert.ErrorIs(t, err, core.ErrInvalidHours)

	_, err = lb.SaveEntry(ctx, "2025-06-10", core.WorkAdvance, -50, "")
	assert.ErrorIs(t, err, core.ErrInvalidAmount)

	// Refused saves write nothing and leave the counter alone.
	assert.Empty(t, lb.Entries(ctx))
	assert.Equal(t, 0, lb.Settings(ctx).LifetimeEntryCount)
}

func TestSaveEntryRejectsFutureDates(t *testing.T) {
	ctx := context.Background()
	lb := newTestLogbook(t)

	_, err := lb.SaveEntry(ctx, "2025-07-01", core.WorkFull, 0, "")
	assert.ErrorIs(t, err, core.ErrFutureDate)
	assert.Empty(t, lb.Entries(ctx))
}

func TestChangeCountryRederivesDefaults(t *testing.T) {
	ctx := context.Background()
	lb := newTestLogbook(t)

	settings := lb.ChangeCountry(ctx, "DE")
	assert.Equal(t, core.CountryCode("DE"), settings.Country)
	assert.Equal(t, "EUR", settings.Currency)
	assert.Equal(t, 8.0, settings.StandardHours)

	// Persisted, not just returned.
	got := lb.Settings(ctx)
	assert.Equal(t, "EUR", got.Currency)

	// Unknown code falls back to the default country's policy.
	settings = lb.ChangeCountry(ctx, "XX")
	assert.Equal(t, "TL", settings.Currency)
	assert.Equal(t, 9.0, settings.StandardHours)
}

func TestCompleteSetupAndPasswordReset(t *testing.T) {
	ctx := context.Background()
	lb := newTestLogbook(t)

	lb.CompleteSetup(ctx, "Ayşe", "1234", "first pet")
	settings := lb.Settings(ctx)
	assert.True(t, settings.IsSetupCompleted)
	assert.Equal(t, "Ayşe", settings.UserName)
	assert.Equal(t, "1234", settings.Password)
	assert.Equal(t, "first pet", settings.RecoveryKey)

	lb.ResetPassword(ctx, "5678")
	assert.Equal(t, "5678", lb.Settings(ctx).Password)
	// Other fields untouched by the reset.
	assert.Equal(t, "Ayşe", lb.Settings(ctx).UserName)
}

func TestAdsVisible(t *testing.T) {
	ctx := context.Background()
	lb := newTestLogbook(t)

	assert.False(t, lb.AdsVisible(ctx), "fresh install shows no ads")

	for d := 1; d <= 6; d++ {
		_, err := lb.SaveEntry(ctx, time.Date(2025, 6, d, 0, 0, 0, 0, time.UTC).Format(core.DateLayout), core.WorkFull, 0, "")
		require.NoError(t, err)
	}
	assert.True(t, lb.AdsVisible(ctx), "6 active entries trip the limit")

	// Premium turns them off regardless of counters.
	settings := lb.Settings(ctx)
	settings.PremiumExpiry = testNow.Add(24 * time.Hour).UnixMilli()
	lb.SaveSettings(ctx, settings)
	assert.False(t, lb.AdsVisible(ctx))
}

func TestStatsAndGridUseCurrentState(t *testing.T) {
	ctx := context.Background()
	lb := newTestLogbook(t)

	settings := lb.Settings(ctx)
	settings.Rate = 1000
	settings.RateType = core.RateDaily
	settings.StandardHours = 8
	lb.SaveSettings(ctx, settings)

	_, err := lb.SaveEntry(ctx, "2025-06-02", core.WorkFull, 0, "")
	require.NoError(t, err)
	_, err = lb.SaveEntry(ctx, "2025-06-03", core.WorkAdvance, 300, "")
	require.NoError(t, err)

	stats := lb.Stats(ctx, 2025, 6)
	assert.Equal(t, 1, stats.TotalFullDays)
	assert.InDelta(t, 700, stats.NetPayable, 1e-9)

	grid := lb.Grid(ctx, 2025, 6)
	var today int
	for _, c := range grid.Cells {
		if c.IsToday {
			today++
			assert.Equal(t, "2025-06-15", c.Date)
		}
	}
	assert.Equal(t, 1, today)
}

func TestBackupRoundTrip(t *testing.T) {
	ctx := context.Background()
	lb := newTestLogbook(t)

	settings := lb.Settings(ctx)
	settings.UserName = "Mehmet"
	settings.Rate = 850
	lb.SaveSettings(ctx, settings)
	_, err := lb.SaveEntry(ctx, "2025-06-01", core.WorkFull, 0, "site A")
	require.NoError(t, err)
	_, err = lb.SaveEntry(ctx, "2025-06-02", core.WorkHourly, 5.5, "")
	require.NoError(t, err)

	wantSettings := lb.Settings(ctx)
	wantEntries := lb.Entries(ctx)

	data, err := lb.ExportBackup(ctx)
	require.NoError(t, err)

	// Wreck the live state, then restore.
	lb.ClearEntries(ctx)
	lb.SaveSettings(ctx, core.AppSettings{})
	require.NoError(t, lb.ImportBackup(ctx, data))

	assert.Equal(t, wantSettings, lb.Settings(ctx))
	assert.Equal(t, wantEntries, lb.Entries(ctx))
}

func TestImportBackupRejectsMalformedFiles(t *testing.T) {
	ctx := context.Background()
	lb := newTestLogbook(t)

	_, err := lb.SaveEntry(ctx, "2025-06-01", core.WorkFull, 0, "")
	require.NoError(t, err)
	before := lb.Entries(ctx)

	cases := []string{
		"not json at all",
		`{}`,
		`{"settings":{}}`,
		`{"entries":{}}`,
		`{"settings":[],"entries":{}}`,
		`{"settings":{},"entries":"nope"}`,
	}
	for _, in := range cases {
		err := lb.ImportBackup(ctx, []byte(in))
		if !errors.Is(err, core.ErrInvalidBackup) {
			t.Errorf("input %q: error = %v, want ErrInvalidBackup", in, err)
		}
	}

	// No partial mutation happened.
	assert.Equal(t, before, lb.Entries(ctx))
}
