package storage

import (
	"context"
	"encoding/json"

	"worklog/internal/core"
	"worklog/internal/locale"
	"worklog/internal/log"
)

// SettingsStore owns the persisted settings record. Reads merge the stored
// payload over the default record, so fields introduced after a payload was
// written still come back with a defined value.
type SettingsStore struct {
	repo   *Repository
	logger *log.Logger
}

func NewSettingsStore(repo *Repository, logger *log.Logger) *SettingsStore {
	return &SettingsStore{
		repo:   repo,
		logger: logger.WithComponent(log.ComponentSettings),
	}
}

// DefaultSettings is the fixed first-run record: Turkey, daily rate,
// eight-hour day, everything else empty.
func DefaultSettings() core.AppSettings {
	return core.AppSettings{
		RateType:      core.RateDaily,
		Currency:      "TL",
		StandardHours: 8,
		Country:       locale.DefaultCountry,
	}
}

// Get returns the persisted settings merged over defaults. A missing record
// or unreadable payload yields the default record, never an error.
func (s *SettingsStore) Get(ctx context.Context) core.AppSettings {
	settings := DefaultSettings()

	raw, ok, err := s.repo.Get(ctx, KeySettings)
	if err != nil {
		s.logger.Warn("settings read failed, using defaults", log.FieldOperation, log.OpRead, log.FieldError, err)
		return settings
	}
	if !ok {
		return settings
	}

	// Unmarshalling over the prefilled record keeps defaults for any field
	// absent from the stored payload.
	if err := json.Unmarshal([]byte(raw), &settings); err != nil {
		s.logger.Warn("settings record corrupt, using defaults", log.FieldOperation, log.OpRead, log.FieldError, err)
		return DefaultSettings()
	}
	return settings
}

// Save persists the full settings record, replacing any previous value.
// Write failures are logged, not surfaced.
func (s *SettingsStore) Save(ctx context.Context, settings core.AppSettings) {
	data, err := json.Marshal(settings)
	if err != nil {
		s.logger.Error("settings encode failed", log.FieldOperation, log.OpWrite, log.FieldError, err)
		return
	}
	if err := s.repo.Put(ctx, KeySettings, string(data)); err != nil {
		s.logger.Error("settings write failed", log.FieldOperation, log.OpWrite, log.FieldError, err)
	}
}
