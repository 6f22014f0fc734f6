package services

import (
	"sort"

	"shuttle-logistics-service/internal/domain"
)

// One guest identifier with its hour of movement.
type WindowEntry struct {
	ID   string
	Hour int
}

// A populated, boundary-aligned bucket of guests.
// Start is a multiple of the window width and End-Start equals the width.
type GuestWindow struct {
	Start    int
	End      int
	GuestIDs []string
}

// PartitionByWindow buckets entries into aligned windows of windowHours.
//
// Each entry lands in the window [floor(hour/w)*w, floor(hour/w)*w + w).
// Only populated windows are returned, ascending by start. Within a window
// guests keep their input order, which makes the output deterministic for a
// given roster.
func PartitionByWindow(entries []WindowEntry, windowHours int) ([]GuestWindow, error) {
	if windowHours < 1 {
		return nil, domain.Validationf("partition windows: window width must be a positive number of hours, got %d", windowHours)
	}

	buckets := make(map[int][]string)
	for _, e := range entries {
		if e.Hour < 0 || e.Hour > 23 {
			return nil, domain.Validationf("partition windows: entry %q hour out of range: %d", e.ID, e.Hour)
		}

		start := (e.Hour / windowHours) * windowHours
		buckets[start] = append(buckets[start], e.ID)
	}

	starts := make([]int, 0, len(buckets))
	for s := range buckets {
		starts = append(starts, s)
	}
	sort.Ints(starts)

	windows := make([]GuestWindow, 0, len(starts))
	for _, s := range starts {
		windows = append(windows, GuestWindow{
			Start:    s,
			End:      s + windowHours,
			GuestIDs: buckets[s],
		})
	}

	return windows, nil
}
