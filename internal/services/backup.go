package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"worklog/internal/core"
)

// Backup is the interchange document: the full settings record, the full
// entry collection, and an informational export timestamp that is not
// validated on import.
type Backup struct {
	Settings   core.AppSettings         `json:"settings"`
	Entries    map[string]core.DayEntry `json:"entries"`
	BackupDate string                   `json:"backupDate"`
}

// ExportBackup serializes the current settings and entry collection.
func (l *Logbook) ExportBackup(ctx context.Context) ([]byte, error) {
	doc := Backup{
		Settings:   l.settings.Get(ctx),
		Entries:    l.entries.GetAll(ctx),
		BackupDate: l.now().Format(time.RFC3339),
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode backup: %w", err)
	}
	return data, nil
}

// ImportBackup replaces both the settings record and the entry collection
// from a backup document. The whole document is validated before any state
// changes: a file missing settings or entries, or one that does not parse,
// is rejected with ErrInvalidBackup and leaves the prior state untouched.
func (l *Logbook) ImportBackup(ctx context.Context, data []byte) error {
	var probe struct {
		Settings json.RawMessage `json:"settings"`
		Entries  json.RawMessage `json:"entries"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return fmt.Errorf("%w: %v", core.ErrInvalidBackup, err)
	}
	if probe.Settings == nil {
		return fmt.Errorf("%w: missing settings", core.ErrInvalidBackup)
	}
	if probe.Entries == nil {
		return fmt.Errorf("%w: missing entries", core.ErrInvalidBackup)
	}

	var settings core.AppSettings
	if err := json.Unmarshal(probe.Settings, &settings); err != nil {
		return fmt.Errorf("%w: bad settings: %v", core.ErrInvalidBackup, err)
	}
	entries := make(map[string]core.DayEntry)
	if err := json.Unmarshal(probe.Entries, &entries); err != nil {
		return fmt.Errorf("%w: bad entries: %v", core.ErrInvalidBackup, err)
	}

	// All-or-nothing: both records validated, now replace both.
	l.settings.Save(ctx, settings)
	l.entries.ReplaceAll(ctx, entries)

	l.logger.Info("backup restored", "entry_count", len(entries))
	return nil
}
