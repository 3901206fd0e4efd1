package service

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/davecgh/go-spew/spew"
	"github.com/gofrs/uuid/v5"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/finance-notebook/internal/logging"
	"github.com/carson-networks/finance-notebook/internal/storage"
	"github.com/carson-networks/finance-notebook/internal/storage/slot"
)

// EntryStore owns the ordered entry list, newest first. The persisted slot is
// a mirror written after every mutation and read once by Load.
type EntryStore struct {
	// writeMu orders mutations with their writes so the slot never goes
	// back to an older list.
	writeMu sync.Mutex
	mu      sync.RWMutex
	entries []Entry

	storage *storage.Storage
	logger  *logrus.Logger
	now     func() time.Time
	newID   func() (string, error)
}

// NewEntryStore creates an empty store backed by the given storage.
func NewEntryStore(store *storage.Storage, logger *logrus.Logger) *EntryStore {
	return &EntryStore{
		storage: store,
		logger:  logger,
		now:     time.Now,
		newID:   newEntryID,
	}
}

func newEntryID() (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", err
	}
	return id.String(), nil
}

// Load replaces the in-memory list with the persisted one. Read failures and
// undecodable blobs leave the store empty; records that cannot be interpreted
// are skipped.
func (s *EntryStore) Load(ctx context.Context) []Entry {
	entries := s.read(ctx)

	s.mu.Lock()
	s.entries = entries
	s.mu.Unlock()

	s.logger.WithField("count", len(entries)).Info("EntryStore.Load")
	if s.logger.IsLevelEnabled(logrus.DebugLevel) {
		s.logger.Debug(spew.Sdump(entries))
	}

	return cloneEntries(entries)
}

func (s *EntryStore) read(ctx context.Context) []Entry {
	data, err := s.storage.Slot.Get(ctx, storage.EntriesKey)
	if errors.Is(err, slot.ErrSlotEmpty) {
		return []Entry{}
	}
	if err != nil {
		s.logger.WithError(&StorageReadError{Err: err}).Warn("EntryStore.Load.Get")
		return []Entry{}
	}

	records, err := storage.DecodeEntries(data)
	if err != nil {
		s.logger.WithError(&StorageReadError{Err: err}).Warn("EntryStore.Load.Decode")
		return []Entry{}
	}

	entries := make([]Entry, 0, len(records))
	for _, rec := range records {
		entry, err := entryFromStorage(rec)
		if err != nil {
			s.logger.WithError(err).Warn("EntryStore.Load.SkipRecord")
			continue
		}
		entries = append(entries, entry)
	}
	return entries
}

// Add validates the raw form values, prepends the new entry and persists the
// list. A *ValidationError leaves the list untouched.
func (s *EntryStore) Add(ctx context.Context, entryType EntryType, rawAmount, description, date string) (Entry, error) {
	amount, err := ParseAmount(rawAmount)
	if err != nil {
		return Entry{}, err
	}

	if !entryType.Valid() {
		return Entry{}, &ValidationError{Kind: ValidationInvalidType, Input: string(entryType)}
	}

	date = strings.TrimSpace(date)
	if date == "" {
		date = s.now().UTC().Format(DateLayout)
	} else if _, err := time.Parse(DateLayout, date); err != nil {
		return Entry{}, &ValidationError{Kind: ValidationInvalidDate, Input: date}
	}

	id, err := s.newID()
	if err != nil {
		return Entry{}, err
	}

	entry := Entry{
		ID:          id,
		Type:        entryType,
		Amount:      amount,
		Description: strings.TrimSpace(description),
		Date:        date,
	}

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	s.mu.Lock()
	s.entries = append([]Entry{entry}, s.entries...)
	snapshot := cloneEntries(s.entries)
	s.mu.Unlock()

	s.persist(ctx, snapshot)
	return entry, nil
}

// ToggleType flips the type of the entry with the given id in place. An
// unknown id changes nothing, but the list is still written.
func (s *EntryStore) ToggleType(ctx context.Context, id string) {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	s.mu.Lock()
	for i := range s.entries {
		if s.entries[i].ID == id {
			s.entries[i].Type = s.entries[i].Type.Toggle()
			break
		}
	}
	snapshot := cloneEntries(s.entries)
	s.mu.Unlock()

	s.persist(ctx, snapshot)
}

// List returns a copy of the current list in store order.
func (s *EntryStore) List() []Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneEntries(s.entries)
}

// Len returns the number of entries held.
func (s *EntryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

func (s *EntryStore) persist(ctx context.Context, entries []Entry) {
	if logData := logging.GetLogData(ctx); logData != nil {
		defer logData.AddToExistingTiming("slotWriteMs")()
	}

	records := make([]storage.EntryRecord, len(entries))
	for i, e := range entries {
		records[i] = entryToStorage(e)
	}

	data, err := storage.EncodeEntries(records)
	if err != nil {
		s.logger.WithError(&StorageWriteError{Err: err}).Error("EntryStore.Persist.Encode")
		return
	}

	if err := s.storage.Slot.Set(ctx, storage.EntriesKey, data); err != nil {
		s.logger.WithError(&StorageWriteError{Err: err}).Error("EntryStore.Persist.Set")
	}
}

func cloneEntries(entries []Entry) []Entry {
	out := make([]Entry, len(entries))
	copy(out, entries)
	return out
}
