package storage

import (
	"context"
	"encoding/json"

	"worklog/internal/core"
	"worklog/internal/log"
)

// EntryStore owns the persisted entry collection: a JSON object mapping
// date keys to day entries, stored as a single document and rewritten in
// full on every save.
//
// Per the error policy, read failures degrade to an empty collection and
// write failures are logged but never surfaced: the in-memory collection
// returned to the caller stays the source of truth for the session.
type EntryStore struct {
	repo   *Repository
	logger *log.Logger
}

func NewEntryStore(repo *Repository, logger *log.Logger) *EntryStore {
	return &EntryStore{
		repo:   repo,
		logger: logger.WithComponent(log.ComponentEntries),
	}
}

// GetAll returns the full persisted collection. A missing record or an
// unreadable payload yields an empty map, never an error.
func (s *EntryStore) GetAll(ctx context.Context) map[string]core.DayEntry {
	entries := make(map[string]core.DayEntry)

	raw, ok, err := s.repo.Get(ctx, KeyEntries)
	if err != nil {
		s.logger.Warn("entry read failed, starting empty", log.FieldOperation, log.OpRead, log.FieldError, err)
		return entries
	}
	if !ok {
		return entries
	}

	if err := json.Unmarshal([]byte(raw), &entries); err != nil {
		s.logger.Warn("entry record corrupt, starting empty", log.FieldOperation, log.OpRead, log.FieldError, err)
		return make(map[string]core.DayEntry)
	}
	return entries
}

// Save inserts or overwrites the entry under its date key, persists the
// full updated collection and returns it. One entry per date: saving an
// existing date replaces the previous value.
func (s *EntryStore) Save(ctx context.Context, entry core.DayEntry) map[string]core.DayEntry {
	entries := s.GetAll(ctx)
	entries[entry.Date] = entry
	s.writeAll(ctx, entries)
	return entries
}

// ReplaceAll overwrites the whole collection, used by backup restore.
func (s *EntryStore) ReplaceAll(ctx context.Context, entries map[string]core.DayEntry) {
	if entries == nil {
		entries = make(map[string]core.DayEntry)
	}
	s.writeAll(ctx, entries)
}

// Clear drops the persisted collection.
func (s *EntryStore) Clear(ctx context.Context) {
	if err := s.repo.Delete(ctx, KeyEntries); err != nil {
		s.logger.Error("entry clear failed", log.FieldOperation, log.OpClear, log.FieldError, err)
	}
}

func (s *EntryStore) writeAll(ctx context.Context, entries map[string]core.DayEntry) {
	data, err := json.Marshal(entries)
	if err != nil {
		s.logger.Error("entry encode failed", log.FieldOperation, log.OpWrite, log.FieldError, err)
		return
	}
	if err := s.repo.Put(ctx, KeyEntries, string(data)); err != nil {
		s.logger.Error("entry write failed", log.FieldOperation, log.OpWrite, log.FieldError, err)
	}
}
