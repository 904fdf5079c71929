package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/evkarev/cozydiary/internal/common"
	"github.com/evkarev/cozydiary/internal/logging"
	"github.com/evkarev/cozydiary/internal/models"
	"github.com/evkarev/cozydiary/internal/repositories/records"
	"github.com/evkarev/cozydiary/internal/weather"
)

// ErrNotOpen is returned when a DiaryService operation runs before Open.
var ErrNotOpen = errors.New("diary service is not open")

// IndexedEntry pairs an entry with its index in the underlying collection.
// Search results carry the underlying index so that positional update and
// delete calls resolve against the collection, not the filtered view.
type IndexedEntry struct {
	Index int
	Entry models.DiaryEntry
}

// DiaryService owns the ordered diary collection: newest-created-first,
// identified positionally and by stable entry ID. Every mutation rewrites
// the whole serialized collection as one record, so a reader never observes
// half of a change. The in-memory state is not rolled back when the write
// fails; the error is surfaced instead.
type DiaryService struct {
	records records.Repository
	weather weather.Provider
	log     logging.Logger
	now     func() time.Time

	// preserveMetaOnEdit keeps the original creation date and weather
	// snapshot when an entry is edited. Off by default: historically every
	// save re-stamped both, and existing diaries expect that.
	preserveMetaOnEdit bool

	mu      sync.Mutex
	entries []models.DiaryEntry
	open    bool
}

// DiaryOption customizes a DiaryService.
type DiaryOption func(*DiaryService)

// WithClock replaces the creation-instant source. Used in tests.
func WithClock(now func() time.Time) DiaryOption {
	return func(s *DiaryService) { s.now = now }
}

// WithPreserveCreationMetadata keeps date and weather of an entry intact
// across edits instead of re-stamping them.
func WithPreserveCreationMetadata(preserve bool) DiaryOption {
	return func(s *DiaryService) { s.preserveMetaOnEdit = preserve }
}

// NewDiaryService constructs the entry store over the given record store
// and weather collaborator. The provider may be nil; entries are then
// created without a weather snapshot.
func NewDiaryService(repo records.Repository, provider weather.Provider, log logging.Logger, opts ...DiaryOption) *DiaryService {
	s := &DiaryService{
		records: repo,
		weather: provider,
		log:     log,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Open loads the persisted collection. An absent record yields an empty
// collection; a record that exists but cannot be deserialized is surfaced
// as common.ErrCorruptState and is never masked as empty.
func (s *DiaryService) Open(ctx context.Context) error {
	blob, err := s.records.Get(ctx, records.EntriesRecord)
	if err != nil {
		return fmt.Errorf("failed to read entry collection: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if blob == nil {
		s.entries = nil
		s.open = true
		return nil
	}

	var entries []models.DiaryEntry
	if err := json.Unmarshal(blob, &entries); err != nil {
		return fmt.Errorf("%w: entry collection: %v", common.ErrCorruptState, err)
	}

	s.entries = entries
	s.open = true
	s.log.Info(ctx, "entry collection loaded", "entries", len(entries))
	return nil
}

// Close drops the in-memory collection. Persisted state is untouched.
func (s *DiaryService) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = nil
	s.open = false
}

// Create validates the draft, stamps date and weather, inserts the new
// entry at position 0 and persists the collection. Returns the index of the
// new entry. Callers must not assume the index stays stable across
// subsequent creates.
func (s *DiaryService) Create(ctx context.Context, draft models.Draft) (int, error) {
	if err := draft.Validate(); err != nil {
		return 0, err
	}

	snapshot := s.captureWeather(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.open {
		return 0, ErrNotOpen
	}

	entry := models.NewEntry(draft, s.now(), snapshot)
	s.entries = append([]models.DiaryEntry{entry}, s.entries...)

	if err := s.persist(ctx); err != nil {
		return 0, err
	}
	s.log.Debug(ctx, "entry created", "id", entry.ID)
	return 0, nil
}

// Update replaces the entry at index with one built from the draft,
// keeping its stable ID. Unless configured otherwise, date and weather are
// re-stamped to the edit instant. Returns common.ErrIndexOutOfRange for an
// invalid index, leaving the collection unchanged.
func (s *DiaryService) Update(ctx context.Context, index int, draft models.Draft) error {
	if err := draft.Validate(); err != nil {
		return err
	}

	snapshot := s.captureWeather(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.open {
		return ErrNotOpen
	}
	if index < 0 || index >= len(s.entries) {
		return fmt.Errorf("%w: %d", common.ErrIndexOutOfRange, index)
	}
	return s.updateAt(ctx, index, draft, snapshot)
}

// UpdateByID is Update addressed by stable entry identifier. Returns
// common.ErrNotFound for an unknown id.
func (s *DiaryService) UpdateByID(ctx context.Context, id string, draft models.Draft) error {
	if err := draft.Validate(); err != nil {
		return err
	}

	snapshot := s.captureWeather(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.open {
		return ErrNotOpen
	}
	index, ok := s.indexOf(id)
	if !ok {
		return fmt.Errorf("%w: entry %s", common.ErrNotFound, id)
	}
	return s.updateAt(ctx, index, draft, snapshot)
}

// updateAt replaces the entry in place. Caller holds the lock and has
// validated the index.
func (s *DiaryService) updateAt(ctx context.Context, index int, draft models.Draft, snapshot string) error {
	old := s.entries[index]

	entry := models.NewEntry(draft, s.now(), snapshot)
	entry.ID = old.ID
	if s.preserveMetaOnEdit {
		entry.Date = old.Date
		entry.Weather = old.Weather
	}

	s.entries[index] = entry

	if err := s.persist(ctx); err != nil {
		return err
	}
	s.log.Debug(ctx, "entry updated", "id", entry.ID, "index", index)
	return nil
}

// Delete removes the entry at index, shifting later entries down by one,
// and persists the collection. Returns common.ErrIndexOutOfRange for an
// invalid index, leaving the collection unchanged.
func (s *DiaryService) Delete(ctx context.Context, index int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.open {
		return ErrNotOpen
	}
	if index < 0 || index >= len(s.entries) {
		return fmt.Errorf("%w: %d", common.ErrIndexOutOfRange, index)
	}
	return s.deleteAt(ctx, index)
}

// DeleteByID is Delete addressed by stable entry identifier.
func (s *DiaryService) DeleteByID(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.open {
		return ErrNotOpen
	}
	index, ok := s.indexOf(id)
	if !ok {
		return fmt.Errorf("%w: entry %s", common.ErrNotFound, id)
	}
	return s.deleteAt(ctx, index)
}

func (s *DiaryService) deleteAt(ctx context.Context, index int) error {
	id := s.entries[index].ID
	s.entries = append(s.entries[:index], s.entries[index+1:]...)

	if err := s.persist(ctx); err != nil {
		return err
	}
	s.log.Debug(ctx, "entry deleted", "id", id, "index", index)
	return nil
}

// List returns a snapshot copy of the collection, newest-created-first.
func (s *DiaryService) List(ctx context.Context) ([]models.DiaryEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.open {
		return nil, ErrNotOpen
	}
	out := make([]models.DiaryEntry, len(s.entries))
	copy(out, s.entries)
	return out, nil
}

// Search returns the entries whose title or content contains the query,
// case-insensitively, in collection order. The empty query returns the
// whole collection. Indices in the result address the underlying
// collection and stay valid for Update/Delete until the next mutation.
func (s *DiaryService) Search(ctx context.Context, query string) ([]IndexedEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.open {
		return nil, ErrNotOpen
	}

	result := make([]IndexedEntry, 0, len(s.entries))
	for i, e := range s.entries {
		if e.Matches(query) {
			result = append(result, IndexedEntry{Index: i, Entry: e})
		}
	}
	return result, nil
}

// Calendar returns the {title, date} projection consumed by the calendar
// widget, in collection order.
func (s *DiaryService) Calendar(ctx context.Context) ([]models.CalendarEvent, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.open {
		return nil, ErrNotOpen
	}

	events := make([]models.CalendarEvent, 0, len(s.entries))
	for _, e := range s.entries {
		events = append(events, models.CalendarEvent{Title: e.Title, Date: e.Date})
	}
	return events, nil
}

// captureWeather asks the collaborator for a snapshot. Any failure is
// tolerated: the entry is created with an empty snapshot rather than
// blocking the save.
func (s *DiaryService) captureWeather(ctx context.Context) string {
	if s.weather == nil {
		return ""
	}
	conditions, err := s.weather.Current(ctx)
	if err != nil {
		s.log.Warn(ctx, "weather snapshot unavailable", "error", err)
		return ""
	}
	return conditions.String()
}

// persist serializes the whole collection and writes it as one record.
// Caller holds the lock.
func (s *DiaryService) persist(ctx context.Context) error {
	blob, err := json.Marshal(s.entries)
	if err != nil {
		return fmt.Errorf("failed to serialize entry collection: %w", err)
	}
	if err := s.records.Set(ctx, records.EntriesRecord, blob); err != nil {
		return fmt.Errorf("failed to persist entry collection: %w", err)
	}
	return nil
}

func (s *DiaryService) indexOf(id string) (int, bool) {
	for i, e := range s.entries {
		if e.ID == id {
			return i, true
		}
	}
	return 0, false
}
