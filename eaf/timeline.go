package eaf

import (
	"fmt"
	"math"
	"sort"

	"github.com/skillsenselab/eafgen/diarization"
	"github.com/skillsenselab/eafgen/errors"
)

// Timeline is the deduplicated, sorted time-slot table for one document
// build, plus the raw-value lookup annotations resolve through. Owned
// exclusively by a single build; not safe for concurrent mutation.
type Timeline struct {
	slots []TimeSlot
	refs  map[float64]string
}

// BuildTimeline collects every start and end timestamp across all segment
// groups, deduplicates by raw seconds value, sorts ascending, and assigns
// sequential slot IDs ("ts1"... in sorted order).
//
// Deduplication happens on the source float64 value before millisecond
// truncation: two distinct seconds values that truncate to the same
// millisecond stay distinct slots.
func BuildTimeline(groups ...[]diarization.Segment) *Timeline {
	seen := make(map[float64]bool)
	values := make([]float64, 0)

	for _, group := range groups {
		for _, seg := range group {
			for _, v := range [2]float64{seg.Start, seg.End} {
				if !seen[v] {
					seen[v] = true
					values = append(values, v)
				}
			}
		}
	}

	sort.Float64s(values)

	tl := &Timeline{
		slots: make([]TimeSlot, len(values)),
		refs:  make(map[float64]string, len(values)),
	}
	for i, v := range values {
		id := fmt.Sprintf("ts%d", i+1)
		tl.slots[i] = TimeSlot{ID: id, ValueMillis: toMillis(v)}
		tl.refs[v] = id
	}
	return tl
}

// Slots returns the ordered slot table.
func (t *Timeline) Slots() []TimeSlot { return t.slots }

// Len returns the number of distinct time slots.
func (t *Timeline) Len() int { return len(t.slots) }

// Ref resolves a raw seconds value to its slot ID. A miss breaks the
// build invariant that the table covers every referenced boundary, so it
// surfaces as INTERNAL_CONSISTENCY rather than a silent default.
func (t *Timeline) Ref(seconds float64) (string, error) {
	id, ok := t.refs[seconds]
	if !ok {
		return "", errors.InternalConsistency(
			fmt.Sprintf("no time slot for boundary value %v", seconds),
		).WithDetail("value", seconds)
	}
	return id, nil
}

// toMillis truncates a seconds value to integer milliseconds.
func toMillis(seconds float64) int64 {
	return int64(math.Floor(seconds * 1000))
}
