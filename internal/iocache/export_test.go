package iocache

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/huangsam/tracktides/internal/contract"
	"github.com/huangsam/tracktides/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestExecuteEntriesExport(t *testing.T) {
	ctx := context.Background()

	t.Run("writes parquet file", func(t *testing.T) {
		store := NewMemoryEntryStore([]schema.DayEntry{
			{Date: day(1), Weight: schema.Float(182)},
			{Date: day(2), Weight: schema.Float(181), Shot: &schema.Shot{Date: day(2), Medication: "Semaglutide", PainLevel: 2}},
		})
		outputFile := filepath.Join(t.TempDir(), "entries.parquet")
		var buf bytes.Buffer

		require.NoError(t, ExecuteEntriesExport(ctx, store, outputFile, &buf))
		assert.Contains(t, buf.String(), "Exported 2 entries")

		info, err := os.Stat(outputFile)
		require.NoError(t, err)
		assert.Positive(t, info.Size())
	})

	t.Run("requires output file", func(t *testing.T) {
		err := ExecuteEntriesExport(ctx, NewMemoryEntryStore(nil), "", &bytes.Buffer{})
		assert.ErrorContains(t, err, "--output-file")
	})

	t.Run("empty store", func(t *testing.T) {
		err := ExecuteEntriesExport(ctx, NewMemoryEntryStore(nil), filepath.Join(t.TempDir(), "x.parquet"), &bytes.Buffer{})
		assert.ErrorContains(t, err, "no entries")
	})

	t.Run("status failure", func(t *testing.T) {
		store := &contract.MockEntryStore{}
		store.On("GetStatus", mock.Anything).Return(schema.StoreStatus{}, errors.New("boom"))

		err := ExecuteEntriesExport(ctx, store, filepath.Join(t.TempDir(), "x.parquet"), &bytes.Buffer{})
		assert.ErrorContains(t, err, "boom")
		store.AssertExpectations(t)
	})
}

func TestPrintStoreStatus(t *testing.T) {
	var buf bytes.Buffer
	PrintStoreStatus(&buf, schema.StoreStatus{
		Backend:        "sqlite",
		Connected:      true,
		TotalEntries:   3,
		OldestEntry:    day(1),
		NewestEntry:    day(3),
		TableSizeBytes: 8192,
	})
	out := buf.String()
	assert.Contains(t, out, "Store Backend: sqlite")
	assert.Contains(t, out, "Total Entries: 3")
	assert.Contains(t, out, "Table Size: 8.2 kB")

	buf.Reset()
	PrintStoreStatus(&buf, schema.StoreStatus{Backend: "mysql"})
	assert.NotContains(t, buf.String(), "Total Entries")
}
