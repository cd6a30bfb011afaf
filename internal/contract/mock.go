package contract

import (
	"context"
	"time"

	"github.com/huangsam/tracktides/schema"
	"github.com/stretchr/testify/mock"
)

// MockEntryStore is a mock implementation of EntryStore for testing.
type MockEntryStore struct {
	mock.Mock
}

var _ EntryStore = &MockEntryStore{} // Compile-time check

// List implements the EntryStore interface.
func (m *MockEntryStore) List(ctx context.Context) ([]schema.DayEntry, error) {
	ret := m.Called(ctx)
	entries, _ := ret.Get(0).([]schema.DayEntry)
	return entries, ret.Error(1)
}

// Add implements the EntryStore interface.
func (m *MockEntryStore) Add(ctx context.Context, entry schema.DayEntry) (int64, error) {
	ret := m.Called(ctx, entry)
	id, _ := ret.Get(0).(int64)
	return id, ret.Error(1)
}

// AddMany implements the EntryStore interface.
func (m *MockEntryStore) AddMany(ctx context.Context, entries []schema.DayEntry) error {
	ret := m.Called(ctx, entries)
	return ret.Error(0)
}

// Clear implements the EntryStore interface.
func (m *MockEntryStore) Clear(ctx context.Context) error {
	ret := m.Called(ctx)
	return ret.Error(0)
}

// GetStatus implements the EntryStore interface.
func (m *MockEntryStore) GetStatus(ctx context.Context) (schema.StoreStatus, error) {
	ret := m.Called(ctx)
	status, _ := ret.Get(0).(schema.StoreStatus)
	return status, ret.Error(1)
}

// Close implements the EntryStore interface.
func (m *MockEntryStore) Close() error {
	ret := m.Called()
	return ret.Error(0)
}

// MockStoreManager is a mock implementation of StoreManager for testing.
type MockStoreManager struct {
	mock.Mock
}

var _ StoreManager = &MockStoreManager{} // Compile-time check

// GetEntryStore implements the StoreManager interface.
func (m *MockStoreManager) GetEntryStore() EntryStore {
	ret := m.Called()
	store, _ := ret.Get(0).(EntryStore)
	return store
}

// MockOutputWriter is a mock implementation of OutputWriter for testing.
type MockOutputWriter struct {
	mock.Mock
}

var _ OutputWriter = &MockOutputWriter{} // Compile-time check

// WriteChart implements the OutputWriter interface.
func (m *MockOutputWriter) WriteChart(board schema.ChartBoard, cfg *Config, duration time.Duration) error {
	ret := m.Called(board, cfg, duration)
	return ret.Error(0)
}

// WriteSummary implements the OutputWriter interface.
func (m *MockOutputWriter) WriteSummary(summary schema.HealthSummary, cfg *Config) error {
	ret := m.Called(summary, cfg)
	return ret.Error(0)
}

// WriteShotHistory implements the OutputWriter interface.
func (m *MockOutputWriter) WriteShotHistory(history schema.ShotHistory, cfg *Config) error {
	ret := m.Called(history, cfg)
	return ret.Error(0)
}

// WriteEntries implements the OutputWriter interface.
func (m *MockOutputWriter) WriteEntries(entries []schema.DayEntry, cfg *Config) error {
	ret := m.Called(entries, cfg)
	return ret.Error(0)
}

// WriteMedications implements the OutputWriter interface.
func (m *MockOutputWriter) WriteMedications(meds []schema.Medication, cfg *Config) error {
	ret := m.Called(meds, cfg)
	return ret.Error(0)
}
