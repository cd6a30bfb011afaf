package iocache

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/huangsam/tracktides/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(n int) time.Time {
	return time.Date(2024, 1, n, 8, 0, 0, 0, time.UTC)
}

func newSQLiteStore(t *testing.T) *EntryStoreImpl {
	t.Helper()
	store, err := NewEntryStore(schema.EntryTable, schema.SQLiteBackend, filepath.Join(t.TempDir(), "entries.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestNewEntryStore_InvalidInput(t *testing.T) {
	_, err := NewEntryStore("bad-name", schema.SQLiteBackend, filepath.Join(t.TempDir(), "x.db"))
	assert.Error(t, err)

	_, err = NewEntryStore(schema.EntryTable, schema.NoneBackend, "")
	assert.Error(t, err)
}

func TestEntryStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	store := newSQLiteStore(t)

	shot := &schema.Shot{
		Date:          day(3).Add(2 * time.Hour),
		Medication:    "Tirzepatide",
		Dosage:        "2.5mg",
		InjectionSite: "Abdomen",
		PainLevel:     4,
		Notes:         "left side",
	}
	id, err := store.Add(ctx, schema.DayEntry{
		Date:        day(3),
		Weight:      schema.Float(181.5),
		Calories:    schema.Int(1700),
		SideEffects: []string{"Nausea"},
		Notes:       "first shot",
		Shot:        shot,
	})
	require.NoError(t, err)
	assert.Positive(t, id)

	require.NoError(t, store.AddMany(ctx, []schema.DayEntry{
		{Date: day(5), Protein: schema.Int(120)},
		{Date: day(1), Weight: schema.Float(183)},
	}))

	entries, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 3)

	assert.Equal(t, day(1).Unix(), entries[0].Date.Unix(), "entries are ordered by date")
	assert.Equal(t, day(5).Unix(), entries[2].Date.Unix())

	got := entries[1]
	assert.Equal(t, id, got.ID)
	require.NotNil(t, got.Weight)
	assert.InDelta(t, 181.5, *got.Weight, 1e-9)
	require.NotNil(t, got.Calories)
	assert.Equal(t, 1700, *got.Calories)
	assert.Nil(t, got.Protein)
	assert.Equal(t, []string{"Nausea"}, got.SideEffects)
	assert.Equal(t, "first shot", got.Notes)
	require.NotNil(t, got.Shot)
	assert.Equal(t, "Tirzepatide", got.Shot.Medication)
	assert.Equal(t, "2.5mg", got.Shot.Dosage)
	assert.Equal(t, "Abdomen", got.Shot.InjectionSite)
	assert.Equal(t, 4, got.Shot.PainLevel)
	assert.Equal(t, "left side", got.Shot.Notes)
	assert.Equal(t, shot.Date.Unix(), got.Shot.Date.Unix())

	assert.Nil(t, entries[0].Shot)
	assert.Nil(t, entries[0].SideEffects)
	require.NotNil(t, entries[2].Protein)
	assert.Equal(t, 120, *entries[2].Protein)
}

func TestEntryStore_MatchesMemoryStore(t *testing.T) {
	ctx := context.Background()
	tokyo := time.FixedZone("JST", 9*60*60)
	first := time.Date(2024, 2, 1, 9, 15, 30, 123456789, tokyo)
	second := time.Date(2024, 2, 3, 21, 0, 0, 500, tokyo)
	log := []schema.DayEntry{
		{Date: first, Weight: schema.Float(184.2), SideEffects: []string{"Nausea"},
			Shot: &schema.Shot{Medication: "Tirzepatide", Dosage: "5mg", PainLevel: 2}},
		{Date: second, Protein: schema.Int(110),
			Shot: &schema.Shot{Date: second.Add(90 * time.Minute), Medication: "Semaglutide", PainLevel: 1}},
	}

	sqlStore := newSQLiteStore(t)
	require.NoError(t, sqlStore.AddMany(ctx, log))
	fromSQL, err := sqlStore.List(ctx)
	require.NoError(t, err)

	memStore := NewMemoryEntryStore(nil)
	require.NoError(t, memStore.AddMany(ctx, log))
	fromMemory, err := memStore.List(ctx)
	require.NoError(t, err)

	assert.Equal(t, fromMemory, fromSQL)
	require.Len(t, fromSQL, 2)
	assert.Equal(t, time.Date(2024, 2, 1, 0, 15, 30, 0, time.UTC), fromSQL[0].Date)
	assert.Equal(t, fromSQL[0].Date, fromSQL[0].Shot.Date, "undated shot takes the entry date")
	assert.Equal(t, schema.StoredTime(second.Add(90*time.Minute)), fromSQL[1].Shot.Date)
}

func TestEntryStore_StatusAndClear(t *testing.T) {
	ctx := context.Background()
	store := newSQLiteStore(t)

	status, err := store.GetStatus(ctx)
	require.NoError(t, err)
	assert.Equal(t, string(schema.SQLiteBackend), status.Backend)
	assert.True(t, status.Connected)
	assert.Zero(t, status.TotalEntries)

	require.NoError(t, store.AddMany(ctx, []schema.DayEntry{
		{Date: day(2), Weight: schema.Float(182)},
		{Date: day(9), Weight: schema.Float(180)},
	}))

	status, err = store.GetStatus(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, status.TotalEntries)
	assert.Equal(t, day(2).Unix(), status.OldestEntry.Unix())
	assert.Equal(t, day(9).Unix(), status.NewestEntry.Unix())
	assert.Positive(t, status.TableSizeBytes)

	require.NoError(t, store.Clear(ctx))
	entries, err := store.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestEntryStore_Reopen(t *testing.T) {
	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "entries.db")

	store, err := NewEntryStore(schema.EntryTable, schema.SQLiteBackend, dbPath)
	require.NoError(t, err)
	_, err = store.Add(ctx, schema.DayEntry{Date: day(4), Weight: schema.Float(179)})
	require.NoError(t, err)
	require.NoError(t, store.Close())

	reopened, err := NewEntryStore(schema.EntryTable, schema.SQLiteBackend, dbPath)
	require.NoError(t, err)
	defer func() { _ = reopened.Close() }()

	entries, err := reopened.List(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.InDelta(t, 179.0, *entries[0].Weight, 1e-9)
}

func TestMigrateEntries(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "migrate.db")

	require.NoError(t, MigrateEntries(schema.SQLiteBackend, dbPath, -1))
	require.NoError(t, MigrateEntries(schema.SQLiteBackend, dbPath, -1), "second run is a no-op")
	require.NoError(t, MigrateEntries(schema.SQLiteBackend, dbPath, 1))
	require.NoError(t, MigrateEntries(schema.SQLiteBackend, dbPath, 0))

	// The store recreates its table after a full rollback
	store, err := NewEntryStore(schema.EntryTable, schema.SQLiteBackend, dbPath)
	require.NoError(t, err)
	assert.NoError(t, store.Close())
}

func TestMigrateEntries_NoneBackend(t *testing.T) {
	assert.Error(t, MigrateEntries(schema.NoneBackend, "", -1))
}
