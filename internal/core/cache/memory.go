package cache

import (
	"sync"

	"github.com/penwyp/go-activity-timeline/internal/core/model"
)

// DayEntry extends a DayRecord with bookkeeping for invalidation.
type DayEntry struct {
	Record       *model.DayRecord
	LastAccessed int64
	IsDirty      bool // capture files changed since this record was fetched
}

// DayCache holds fetched day records keyed by calendar date. Records
// for dates that leave the active set are retained until the date also
// leaves the candidate pool, so a fetch that completes late is never
// wasted and no cancellation protocol is needed.
type DayCache struct {
	mu      sync.RWMutex
	entries map[model.CalendarDate]*DayEntry
	nowUnix func() int64
}

func NewDayCache(nowUnix func() int64) *DayCache {
	return &DayCache{
		entries: make(map[model.CalendarDate]*DayEntry),
		nowUnix: nowUnix,
	}
}

// Set stores or replaces the record for a date and clears its dirty mark.
func (dc *DayCache) Set(date model.CalendarDate, record *model.DayRecord) {
	dc.mu.Lock()
	defer dc.mu.Unlock()

	dc.entries[date] = &DayEntry{
		Record:       record,
		LastAccessed: dc.nowUnix(),
	}
}

// Get returns the record for a date if present.
func (dc *DayCache) Get(date model.CalendarDate) (*model.DayRecord, bool) {
	dc.mu.Lock()
	defer dc.mu.Unlock()

	entry, ok := dc.entries[date]
	if !ok || entry.Record == nil {
		return nil, false
	}
	entry.LastAccessed = dc.nowUnix()
	return entry.Record, true
}

// MarkDirty flags a date whose underlying capture files changed.
// Unknown dates are ignored; they will be fetched fresh anyway.
func (dc *DayCache) MarkDirty(date model.CalendarDate) {
	dc.mu.Lock()
	defer dc.mu.Unlock()

	if entry, ok := dc.entries[date]; ok {
		entry.IsDirty = true
	}
}

// IsDirty reports whether a date needs refetching.
func (dc *DayCache) IsDirty(date model.CalendarDate) bool {
	dc.mu.RLock()
	defer dc.mu.RUnlock()

	entry, ok := dc.entries[date]
	return ok && entry.IsDirty
}

// EvictOutside drops every record whose date is not in pool.
func (dc *DayCache) EvictOutside(pool []model.CalendarDate) {
	keep := make(map[model.CalendarDate]struct{}, len(pool))
	for _, d := range pool {
		keep[d] = struct{}{}
	}

	dc.mu.Lock()
	defer dc.mu.Unlock()

	for date := range dc.entries {
		if _, ok := keep[date]; !ok {
			delete(dc.entries, date)
		}
	}
}

// Len returns the number of resident records.
func (dc *DayCache) Len() int {
	dc.mu.RLock()
	defer dc.mu.RUnlock()
	return len(dc.entries)
}
