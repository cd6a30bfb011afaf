package iocache

import (
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
	"github.com/huangsam/tracktides/schema"
)

// PrintStoreStatus prints entry store status information.
func PrintStoreStatus(w io.Writer, status schema.StoreStatus) {
	_, _ = fmt.Fprintf(w, "Store Backend: %s\n", status.Backend)
	_, _ = fmt.Fprintf(w, "Connected: %t\n", status.Connected)
	if !status.Connected {
		return
	}
	_, _ = fmt.Fprintf(w, "Total Entries: %d\n", status.TotalEntries)
	if status.TotalEntries > 0 {
		_, _ = fmt.Fprintf(w, "Oldest Entry: %s\n", status.OldestEntry.Format("2006-01-02 15:04:05"))
		_, _ = fmt.Fprintf(w, "Newest Entry: %s\n", status.NewestEntry.Format("2006-01-02 15:04:05"))
	}
	if status.TableSizeBytes > 0 {
		_, _ = fmt.Fprintf(w, "Table Size: %s\n", humanize.Bytes(uint64(status.TableSizeBytes)))
	}
}
