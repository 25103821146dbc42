package grouping

import "sort"

// Timestamped is anything carrying a Unix-second start time.
type Timestamped interface {
	EventTimestamp() int64
}

// Group is a run of events whose gaps never exceeded the threshold.
// StartTimestamp is the first event's time; EndTimestamp is the
// furthest end reached by any member, so overlapping events never
// shrink the span.
type Group[T Timestamped] struct {
	Events         []T
	StartTimestamp int64
	EndTimestamp   int64
	MergedCount    int
}

// Merge collapses a stream of timestamped events into groups under
// maxGapSeconds. Input order does not matter: events are sorted by
// timestamp first (stable, ties keep input order). durationOf gives
// each event's length in seconds and may be nil for point events.
// Negative gaps (overlaps) always merge. Callers are responsible for
// clamping negative durations to zero in their accessor.
//
// Every input event appears in exactly one output group, and
// consecutive groups are always separated by more than maxGapSeconds,
// so re-merging the output is a no-op.
func Merge[T Timestamped](events []T, maxGapSeconds int64, durationOf func(T) int64) []Group[T] {
	if len(events) == 0 {
		return nil
	}

	sorted := make([]T, len(events))
	copy(sorted, events)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].EventTimestamp() < sorted[j].EventTimestamp()
	})

	endOf := func(ev T) int64 {
		if durationOf == nil {
			return ev.EventTimestamp()
		}
		return ev.EventTimestamp() + durationOf(ev)
	}

	groups := make([]Group[T], 0, 1)
	current := Group[T]{
		Events:         []T{sorted[0]},
		StartTimestamp: sorted[0].EventTimestamp(),
		EndTimestamp:   endOf(sorted[0]),
		MergedCount:    1,
	}

	for _, ev := range sorted[1:] {
		if ev.EventTimestamp()-current.EndTimestamp <= maxGapSeconds {
			current.Events = append(current.Events, ev)
			current.MergedCount++
			if end := endOf(ev); end > current.EndTimestamp {
				current.EndTimestamp = end
			}
			continue
		}
		groups = append(groups, current)
		current = Group[T]{
			Events:         []T{ev},
			StartTimestamp: ev.EventTimestamp(),
			EndTimestamp:   endOf(ev),
			MergedCount:    1,
		}
	}
	return append(groups, current)
}
