package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"worklog/internal/core"
	"worklog/internal/log"
)

func newTestRepo(t *testing.T) *Repository {
	t.Helper()
	repo, err := Open(filepath.Join(t.TempDir(), "worklog.db"))
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })
	return repo
}

func testLogger() *log.Logger {
	return log.New(log.DefaultConfig())
}

func TestRepositoryRoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)

	_, ok, err := repo.Get(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, repo.Put(ctx, "k", `{"a":1}`))
	v, ok, err := repo.Get(ctx, "k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `{"a":1}`, v)

	// Full replace on conflict.
	require.NoError(t, repo.Put(ctx, "k", `{"a":2}`))
	v, _, err = repo.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, `{"a":2}`, v)

	require.NoError(t, repo.Delete(ctx, "k"))
	_, ok, err = repo.Get(ctx, "k")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestEntryStoreLastWriteWins(t *testing.T) {
	ctx := context.Background()
	store := NewEntryStore(newTestRepo(t), testLogger())

	store.Save(ctx, core.NewDayEntry("2025-01-10", core.WorkFull, ""))
	store.Save(ctx, core.NewHourlyEntry("2025-01-10", 4, "rewrote the day"))

	entries := store.GetAll(ctx)
	require.Len(t, entries, 1)
	e := entries["2025-01-10"]
	assert.Equal(t, core.WorkHourly, e.Type)
	assert.Equal(t, 4.0, e.CustomHours)
	assert.Equal(t, "rewrote the day", e.Note)
}

func TestEntryStoreSurvivesCorruptPayload(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)
	store := NewEntryStore(repo, testLogger())

	require.NoError(t, repo.Put(ctx, KeyEntries, "{not json"))

	entries := store.GetAll(ctx)
	assert.Empty(t, entries, "corruption must degrade to no data")

	// The store keeps working after the bad read.
	entries = store.Save(ctx, core.NewDayEntry("2025-02-01", core.WorkHalf, ""))
	assert.Len(t, entries, 1)
}

func TestEntryStoreReplaceAllAndClear(t *testing.T) {
	ctx := context.Background()
	store := NewEntryStore(newTestRepo(t), testLogger())

	store.Save(ctx, core.NewDayEntry("2025-03-01", core.WorkFull, ""))
	store.ReplaceAll(ctx, map[string]core.DayEntry{
		"2025-03-02": core.NewDayEntry("2025-03-02", core.WorkOff, ""),
	})

	entries := store.GetAll(ctx)
	require.Len(t, entries, 1)
	assert.Contains(t, entries, "2025-03-02")

	store.Clear(ctx)
	assert.Empty(t, store.GetAll(ctx))
}

func TestSettingsStoreDefaults(t *testing.T) {
	ctx := context.Background()
	store := NewSettingsStore(newTestRepo(t), testLogger())

	settings := store.Get(ctx)
	assert.Equal(t, core.RateDaily, settings.RateType)
	assert.Equal(t, "TL", settings.Currency)
	assert.Equal(t, 8.0, settings.StandardHours)
	assert.Equal(t, core.CountryCode("TR"), settings.Country)
	assert.False(t, settings.IsSetupCompleted)
}

func TestSettingsStoreMergesOverDefaults(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)
	store := NewSettingsStore(repo, testLogger())

	// A payload written before premiumExpiry and standardHours existed.
	old := `{"userName":"Ayşe","rate":1200,"rateType":"DAILY","country":"TR"}`
	require.NoError(t, repo.Put(ctx, KeySettings, old))

	settings := store.Get(ctx)
	assert.Equal(t, "Ayşe", settings.UserName)
	assert.Equal(t, 1200.0, settings.Rate)
	assert.Equal(t, 8.0, settings.StandardHours, "missing field inherits default")
	assert.EqualValues(t, 0, settings.PremiumExpiry)
}

func TestSettingsStoreSaveReplaces(t *testing.T) {
	ctx := context.Background()
	store := NewSettingsStore(newTestRepo(t), testLogger())

	settings := store.Get(ctx)
	settings.UserName = "Mehmet"
	settings.Rate = 950
	settings.LifetimeEntryCount = 7
	store.Save(ctx, settings)

	got := store.Get(ctx)
	assert.Equal(t, "Mehmet", got.UserName)
	assert.Equal(t, 950.0, got.Rate)
	assert.Equal(t, 7, got.LifetimeEntryCount)
}

func TestSettingsStoreCorruptPayloadYieldsDefaults(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)
	store := NewSettingsStore(repo, testLogger())

	require.NoError(t, repo.Put(ctx, KeySettings, "]["))

	settings := store.Get(ctx)
	assert.Equal(t, DefaultSettings(), settings)
}
