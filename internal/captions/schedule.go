package captions

import (
	"errors"
	"sort"
)

// ErrEmptySchedule is returned when a schedule has no entries.
var ErrEmptySchedule = errors.New("caption schedule is empty")

// Entry is a single caption line and the playback offset where it starts.
type Entry struct {
	Text    string
	StartMs int64
}

// EndMs returns the exclusive end of the entry's activity window.
func (e Entry) EndMs() int64 {
	return e.StartMs + LineDisplayDuration
}

// Contains reports whether currentMs falls inside [StartMs, EndMs).
func (e Entry) Contains(currentMs float64) bool {
	return currentMs >= float64(e.StartMs) && currentMs < float64(e.EndMs())
}

// Schedule is an immutable, start-ordered list of caption entries.
type Schedule struct {
	entries []Entry
}

// NewSchedule copies and sorts entries by start time. Entries sharing a start
// time keep their input order.
func NewSchedule(entries []Entry) (*Schedule, error) {
	if len(entries) == 0 {
		return nil, ErrEmptySchedule
	}
	sorted := make([]Entry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].StartMs < sorted[j].StartMs
	})
	return &Schedule{entries: sorted}, nil
}

// Len returns the number of entries.
func (s *Schedule) Len() int {
	if s == nil {
		return 0
	}
	return len(s.entries)
}

// At returns the entry at index i.
func (s *Schedule) At(i int) Entry {
	return s.entries[i]
}

// Entries returns a copy of the sorted entries.
func (s *Schedule) Entries() []Entry {
	out := make([]Entry, len(s.entries))
	copy(out, s.entries)
	return out
}

// First returns the earliest entry.
func (s *Schedule) First() Entry {
	return s.entries[0]
}

// Last returns the latest entry.
func (s *Schedule) Last() Entry {
	return s.entries[len(s.entries)-1]
}

// Lookup returns the index of the first entry, in ascending start order, whose
// window contains currentMs. hint is the previous match (or -1); when it is
// still the first containing entry the search is skipped.
func (s *Schedule) Lookup(currentMs float64, hint int) (int, bool) {
	if hint >= 0 && hint < len(s.entries) && s.entries[hint].Contains(currentMs) {
		if hint == 0 || !s.entries[hint-1].Contains(currentMs) {
			return hint, true
		}
	}
	// Windows share one length, so end times are ordered like start times and
	// the first window ending after currentMs is the only candidate.
	i := sort.Search(len(s.entries), func(i int) bool {
		return float64(s.entries[i].EndMs()) > currentMs
	})
	if i < len(s.entries) && s.entries[i].Contains(currentMs) {
		return i, true
	}
	return -1, false
}

// outside reports whether currentMs lies before the first entry or after the
// last entry's window.
func (s *Schedule) outside(currentMs float64) bool {
	return currentMs < float64(s.First().StartMs) || currentMs > float64(s.Last().EndMs())
}
