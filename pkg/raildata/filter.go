package raildata

import "time"

// BoardFilter narrows an arrival/departure board. A nil bound imposes no
// constraint. Delay bounds are minutes and inclusive; MaxHorizon is the
// number of minutes from "now" an event may lie in the future.
type BoardFilter struct {
	MinDelay   *int
	MaxDelay   *int
	MaxHorizon *int
}

// IsZero reports whether no bound is set. The zero value acts as a cleared
// filter and keeps every event.
func (f BoardFilter) IsZero() bool {
	return f.MinDelay == nil && f.MaxDelay == nil && f.MaxHorizon == nil
}

// Apply returns the events satisfying every set bound. The input slice is
// never mutated.
func (f BoardFilter) Apply(events []StationEvent, now time.Time) []StationEvent {
	if f.IsZero() {
		return events
	}

	filtered := make([]StationEvent, 0, len(events))
	for _, event := range events {
		if f.keep(event, now) {
			filtered = append(filtered, event)
		}
	}

	return filtered
}

func (f BoardFilter) keep(event StationEvent, now time.Time) bool {
	if f.MinDelay != nil && event.Delay < *f.MinDelay {
		return false
	}

	if f.MaxDelay != nil && event.Delay > *f.MaxDelay {
		return false
	}

	if f.MaxHorizon != nil {
		// An event without a timestamp cannot be placed on the horizon
		if event.When == nil {
			return false
		}

		horizon := now.Add(time.Duration(*f.MaxHorizon) * time.Minute)
		if event.When.After(horizon) {
			return false
		}
	}

	return true
}
