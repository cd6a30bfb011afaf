// Package contract provides interfaces and shared utilities for the tracktides internal architecture.
package contract

import (
	"context"
	"time"

	"github.com/huangsam/tracktides/schema"
)

// EntryStore defines the operations needed to keep the day entry log.
// This allows the core to be tested without a real database.
type EntryStore interface {
	// List returns every entry, oldest first.
	List(ctx context.Context) ([]schema.DayEntry, error)

	// Add appends one entry and returns its assigned ID.
	Add(ctx context.Context, entry schema.DayEntry) (int64, error)

	// AddMany appends entries in a single transaction.
	AddMany(ctx context.Context, entries []schema.DayEntry) error

	// Clear removes every entry.
	Clear(ctx context.Context) error

	// GetStatus returns status information about the store.
	GetStatus(ctx context.Context) (schema.StoreStatus, error)

	// Close closes the underlying connection.
	Close() error
}

// StoreManager defines the interface for managing the entry store.
// This allows the store layer to be mocked for testing.
type StoreManager interface {
	GetEntryStore() EntryStore
}

// OutputWriter renders results in the configured output format.
// This allows the core to be tested without touching stdout or files.
type OutputWriter interface {
	WriteChart(board schema.ChartBoard, cfg *Config, duration time.Duration) error
	WriteSummary(summary schema.HealthSummary, cfg *Config) error
	WriteShotHistory(history schema.ShotHistory, cfg *Config) error
	WriteEntries(entries []schema.DayEntry, cfg *Config) error
	WriteMedications(meds []schema.Medication, cfg *Config) error
}
