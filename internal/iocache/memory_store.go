package iocache

import (
	"context"
	"sort"
	"sync"

	"github.com/huangsam/tracktides/internal/contract"
	"github.com/huangsam/tracktides/schema"
)

// MemoryEntryStore keeps entries in process memory. It backs the "none" backend.
type MemoryEntryStore struct {
	mu      sync.RWMutex
	entries []schema.DayEntry
	nextID  int64
}

var _ contract.EntryStore = &MemoryEntryStore{} // Compile-time check

// NewMemoryEntryStore returns a store holding copies of the seed entries.
func NewMemoryEntryStore(seed []schema.DayEntry) *MemoryEntryStore {
	store := &MemoryEntryStore{nextID: 1}
	for _, e := range seed {
		store.appendLocked(e)
	}
	return store
}

// List returns every entry, oldest first.
func (ms *MemoryEntryStore) List(_ context.Context) ([]schema.DayEntry, error) {
	ms.mu.RLock()
	defer ms.mu.RUnlock()
	out := schema.CloneEntries(ms.entries)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.Before(out[j].Date)
	})
	return out, nil
}

// Add appends one entry and returns its assigned ID.
func (ms *MemoryEntryStore) Add(_ context.Context, entry schema.DayEntry) (int64, error) {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	return ms.appendLocked(entry), nil
}

// AddMany appends entries.
func (ms *MemoryEntryStore) AddMany(_ context.Context, entries []schema.DayEntry) error {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	for _, e := range entries {
		ms.appendLocked(e)
	}
	return nil
}

// Clear removes every entry.
func (ms *MemoryEntryStore) Clear(_ context.Context) error {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	ms.entries = nil
	return nil
}

// GetStatus returns status information about the store.
func (ms *MemoryEntryStore) GetStatus(_ context.Context) (schema.StoreStatus, error) {
	ms.mu.RLock()
	defer ms.mu.RUnlock()
	status := schema.StoreStatus{
		Backend:      string(schema.NoneBackend),
		Connected:    true,
		TotalEntries: len(ms.entries),
	}
	for i, e := range ms.entries {
		if i == 0 || e.Date.Before(status.OldestEntry) {
			status.OldestEntry = e.Date
		}
		if i == 0 || e.Date.After(status.NewestEntry) {
			status.NewestEntry = e.Date
		}
	}
	return status, nil
}

// Close is a no-op.
func (ms *MemoryEntryStore) Close() error {
	return nil
}

func (ms *MemoryEntryStore) appendLocked(e schema.DayEntry) int64 {
	e = e.Clone()
	e.ID = ms.nextID
	ms.nextID++
	e.Date = schema.StoredTime(e.Date)
	if s := e.Shot; s != nil {
		if s.Date.IsZero() {
			s.Date = e.Date
		} else {
			s.Date = schema.StoredTime(s.Date)
		}
	}
	ms.entries = append(ms.entries, e)
	return e.ID
}
