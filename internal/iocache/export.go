package iocache

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/huangsam/tracktides/internal/contract"
	"github.com/huangsam/tracktides/internal/parquet"
)

// ExecuteEntriesExport exports every stored entry to a Parquet file.
func ExecuteEntriesExport(ctx context.Context, store contract.EntryStore, outputFile string, w io.Writer) error {
	if outputFile == "" {
		return errors.New("--output-file is required for export command")
	}
	if store == nil {
		return errors.New("entry store is not initialized")
	}

	status, err := store.GetStatus(ctx)
	if err != nil {
		return fmt.Errorf("failed to get store status: %w", err)
	}
	if status.TotalEntries == 0 {
		return errors.New("no entries found to export")
	}

	_, _ = fmt.Fprintf(w, "Exporting data from %s backend...\n", status.Backend)

	entries, err := store.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to retrieve entries: %w", err)
	}

	rows := parquet.ConvertEntries(entries)
	if err := parquet.WriteEntriesParquet(rows, outputFile); err != nil {
		return fmt.Errorf("failed to write entries: %w", err)
	}
	_, _ = fmt.Fprintf(w, "Exported %d entries to: %s\n", len(rows), outputFile)

	_, _ = fmt.Fprintln(w, "\nExport complete! The Parquet file can be used with:")
	_, _ = fmt.Fprintln(w, "  - Pandas (via pyarrow)")
	_, _ = fmt.Fprintln(w, "  - DuckDB")
	_, _ = fmt.Fprintln(w, "  - Any other Parquet-compatible tool")
	return nil
}
