package core

import (
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/huangsam/tracktides/core/agg"
	"github.com/huangsam/tracktides/schema"
)

// seriesKey identifies one memoized display series.
type seriesKey struct {
	version uint64
	kind    schema.SeriesKind
	rng     schema.TimeRange
	loc     string
}

// SeriesCache memoizes derived series until the entries change.
// Any change drops everything; there is no partial invalidation.
type SeriesCache struct {
	mu          sync.Mutex
	entries     []schema.DayEntry
	fingerprint string
	version     uint64
	raw         map[schema.SeriesKind][]schema.ChartDataPoint
	display     map[seriesKey][]schema.ChartDataPoint
}

// NewSeriesCache returns an empty cache.
func NewSeriesCache() *SeriesCache {
	return &SeriesCache{
		raw:     make(map[schema.SeriesKind][]schema.ChartDataPoint),
		display: make(map[seriesKey][]schema.ChartDataPoint),
	}
}

// SetEntries replaces the entries, bumps the version and drops every cached series.
func (c *SeriesCache) SetEntries(entries []schema.DayEntry) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.setLocked(entries, entriesFingerprint(entries))
}

// Sync calls SetEntries only when entries differ from the cached ones.
// It reports whether the cache was reset.
func (c *SeriesCache) Sync(entries []schema.DayEntry) bool {
	fp := entriesFingerprint(entries)
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.version > 0 && fp == c.fingerprint {
		return false
	}
	c.setLocked(entries, fp)
	return true
}

// Invalidate drops every cached series without changing the entries.
func (c *SeriesCache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.version++
	c.fingerprint = ""
	c.dropLocked()
}

// Version is bumped on every SetEntries and Invalidate.
func (c *SeriesCache) Version() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.version
}

// Entries returns a copy of the cached entries.
func (c *SeriesCache) Entries() []schema.DayEntry {
	c.mu.Lock()
	defer c.mu.Unlock()
	return schema.CloneEntries(c.entries)
}

// Series returns the raw series for kind.
func (c *SeriesCache) Series(kind schema.SeriesKind) []schema.ChartDataPoint {
	c.mu.Lock()
	defer c.mu.Unlock()
	return slices.Clone(c.seriesLocked(kind))
}

// DisplaySeries returns the series for kind at the display granularity of rng.
func (c *SeriesCache) DisplaySeries(kind schema.SeriesKind, rng schema.TimeRange, loc *time.Location) []schema.ChartDataPoint {
	if loc == nil {
		loc = time.Local
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	key := seriesKey{version: c.version, kind: kind, rng: rng, loc: loc.String()}
	if cached, ok := c.display[key]; ok {
		return slices.Clone(cached)
	}
	display := agg.DisplaySeries(c.seriesLocked(kind), rng, loc)
	c.display[key] = display
	return slices.Clone(display)
}

func (c *SeriesCache) seriesLocked(kind schema.SeriesKind) []schema.ChartDataPoint {
	if cached, ok := c.raw[kind]; ok {
		return cached
	}
	series := agg.Series(kind, c.entries)
	c.raw[kind] = series
	return series
}

func (c *SeriesCache) setLocked(entries []schema.DayEntry, fp string) {
	// Deep copy so later edits to the caller's entries cannot reach cached series.
	c.entries = schema.CloneEntries(entries)
	c.fingerprint = fp
	c.version++
	c.dropLocked()
}

func (c *SeriesCache) dropLocked() {
	clear(c.raw)
	clear(c.display)
}

// entriesFingerprint hashes the entries so that identical logs share a cache.
func entriesFingerprint(entries []schema.DayEntry) string {
	data, err := json.Marshal(entries)
	if err != nil {
		return ""
	}
	return fmt.Sprintf("%x", sha256.Sum256(data))
}
