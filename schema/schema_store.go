package schema

import "time"

// StoreStatus reports on the configured entry store.
type StoreStatus struct {
	Backend        string    `json:"backend" yaml:"backend"`
	Connected      bool      `json:"connected" yaml:"connected"`
	TotalEntries   int       `json:"total_entries" yaml:"total_entries"`
	OldestEntry    time.Time `json:"oldest_entry" yaml:"oldest_entry"`
	NewestEntry    time.Time `json:"newest_entry" yaml:"newest_entry"`
	TableSizeBytes int64     `json:"table_size_bytes" yaml:"table_size_bytes"`
}

// EntryTable is the name of the table holding day entries.
const EntryTable = "tracktides_entries"
