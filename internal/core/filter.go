package core

import (
	"sort"
	"strings"
	"time"
)

// TripFilter selects one of the mutually exclusive trip list modes.
type TripFilter string

const (
	FilterAll     TripFilter = "all"
	FilterToday   TripFilter = "today"
	FilterMonth   TripFilter = "month"
	FilterPending TripFilter = "pending"
)

// FilterTrips applies the trip list's search-and-filter predicate and sort
// order. A trip passes when term is a case-insensitive substring of its
// customer name, driver name, or pickup location (the empty term matches
// everything), and it satisfies the mode relative to now. The result is
// sorted by date descending; trips sharing a date order by createdAt
// descending, then id, so the output is deterministic.
func FilterTrips(trips []Trip, term string, filter TripFilter, now time.Time) []Trip {
	needle := strings.ToLower(strings.TrimSpace(term))

	var out []Trip
	for _, t := range trips {
		if !matchesSearch(t, needle) {
			continue
		}
		switch filter {
		case FilterToday:
			if !t.Date.SameDay(now) {
				continue
			}
		case FilterMonth:
			if !t.Date.SameMonth(now) {
				continue
			}
		case FilterPending:
			if t.DriverPaymentStatus != StatusPending {
				continue
			}
		}
		out = append(out, t)
	}

	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if !a.Date.Equal(b.Date.Time) {
			return a.Date.After(b.Date.Time)
		}
		if a.CreatedAt != b.CreatedAt {
			return a.CreatedAt > b.CreatedAt
		}
		return a.ID < b.ID
	})
	return out
}

func matchesSearch(t Trip, needle string) bool {
	if needle == "" {
		return true
	}
	return strings.Contains(strings.ToLower(t.CustomerName), needle) ||
		strings.Contains(strings.ToLower(t.DriverName), needle) ||
		strings.Contains(strings.ToLower(t.PickupLocation), needle)
}
