package grouping

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pointEvent struct {
	ts    int64
	label string
}

func (p pointEvent) EventTimestamp() int64 { return p.ts }

func points(timestamps ...int64) []pointEvent {
	events := make([]pointEvent, len(timestamps))
	for i, ts := range timestamps {
		events[i] = pointEvent{ts: ts}
	}
	return events
}

func TestMergeEmptyInput(t *testing.T) {
	assert.Nil(t, Merge[pointEvent](nil, 300, nil))
	assert.Nil(t, Merge([]pointEvent{}, 300, nil))
}

func TestMergeSingleEvent(t *testing.T) {
	groups := Merge(points(100), 300, nil)
	require.Len(t, groups, 1)
	assert.Equal(t, int64(100), groups[0].StartTimestamp)
	assert.Equal(t, int64(100), groups[0].EndTimestamp)
	assert.Equal(t, 1, groups[0].MergedCount)
}

func TestMergeSplitsOnGap(t *testing.T) {
	// Events at 0, 200 and 1000 with a 300s threshold: the 800s gap splits.
	groups := Merge(points(0, 200, 1000), 300, nil)
	require.Len(t, groups, 2)

	assert.Equal(t, 2, groups[0].MergedCount)
	assert.Equal(t, int64(0), groups[0].StartTimestamp)
	assert.Equal(t, int64(200), groups[0].EndTimestamp)

	assert.Equal(t, 1, groups[1].MergedCount)
	assert.Equal(t, int64(1000), groups[1].StartTimestamp)
}

func TestMergeGapMeasuredFromGroupEnd(t *testing.T) {
	// The first event lasts 500s, so an event at t=700 is only 200s past
	// the group's end and merges despite being 700s past its start.
	events := []pointEvent{{ts: 0}, {ts: 700}}
	durations := map[int64]int64{0: 500, 700: 0}

	groups := Merge(events, 300, func(p pointEvent) int64 { return durations[p.ts] })
	require.Len(t, groups, 1)
	assert.Equal(t, int64(700), groups[0].EndTimestamp)
}

func TestMergeOverlappingEventsNeverShrinkSpan(t *testing.T) {
	// The second event ends before the first one does.
	events := []pointEvent{{ts: 0}, {ts: 100}}
	durations := map[int64]int64{0: 1000, 100: 50}

	groups := Merge(events, 300, func(p pointEvent) int64 { return durations[p.ts] })
	require.Len(t, groups, 1)
	assert.Equal(t, int64(1000), groups[0].EndTimestamp)
}

func TestMergeToleratesUnsortedInputAndDuplicates(t *testing.T) {
	groups := Merge(points(1000, 0, 200, 0), 300, nil)
	require.Len(t, groups, 2)
	assert.Equal(t, 3, groups[0].MergedCount)
	assert.Equal(t, int64(0), groups[0].StartTimestamp)
	assert.Equal(t, 1, groups[1].MergedCount)
}

func TestMergeStableForEqualTimestamps(t *testing.T) {
	events := []pointEvent{
		{ts: 100, label: "first"},
		{ts: 100, label: "second"},
		{ts: 100, label: "third"},
	}
	groups := Merge(events, 60, nil)
	require.Len(t, groups, 1)
	assert.Equal(t, []string{"first", "second", "third"},
		[]string{groups[0].Events[0].label, groups[0].Events[1].label, groups[0].Events[2].label})
}

func TestMergePartitionAndIdempotence(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	events := make([]pointEvent, 500)
	for i := range events {
		events[i] = pointEvent{ts: rng.Int63n(100000)}
	}

	const gap = int64(250)
	groups := Merge(events, gap, nil)

	// Partition: flattening reproduces the input multiset exactly.
	var flattened []pointEvent
	for _, g := range groups {
		flattened = append(flattened, g.Events...)
	}
	require.Len(t, flattened, len(events))
	counts := make(map[int64]int)
	for _, ev := range events {
		counts[ev.ts]++
	}
	for _, ev := range flattened {
		counts[ev.ts]--
	}
	for ts, c := range counts {
		assert.Zero(t, c, "timestamp %d lost or duplicated", ts)
	}

	// Inter-group gaps exceed the threshold by construction.
	for i := 1; i < len(groups); i++ {
		assert.Greater(t, groups[i].StartTimestamp-groups[i-1].EndTimestamp, gap)
	}

	// Idempotence: re-merging the flattened output yields the same partition.
	regrouped := Merge(flattened, gap, nil)
	require.Len(t, regrouped, len(groups))
	for i := range groups {
		assert.Equal(t, groups[i].StartTimestamp, regrouped[i].StartTimestamp)
		assert.Equal(t, groups[i].EndTimestamp, regrouped[i].EndTimestamp)
		assert.Equal(t, groups[i].MergedCount, regrouped[i].MergedCount)
	}
}
