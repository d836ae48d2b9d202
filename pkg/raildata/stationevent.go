package raildata

import (
	"fmt"
	"time"
)

// RawStationEvent is a single record of the db-vendo arrivals or departures
// board. Both boards share one shape.
type RawStationEvent struct {
	Stop     *RawStop `json:"stop"`
	Line     *RawLine `json:"line"`
	When     *string  `json:"when"`
	Delay    *int     `json:"delay"`
	Platform *string  `json:"platform"`
}

// StationEvent is an arrival or departure at a station. Delay is minutes.
type StationEvent struct {
	Station  string     `json:"station" groups:"basic"`
	Line     string     `json:"line" groups:"basic"`
	When     *time.Time `json:"when" groups:"basic"`
	Delay    int        `json:"delay" groups:"basic"`
	Platform *string    `json:"platform" groups:"basic"`
}

// Board is the combined result of one arrivals and one departures lookup.
type Board struct {
	Arrivals   []StationEvent `json:"arrivals" groups:"basic"`
	Departures []StationEvent `json:"departures" groups:"basic"`
}

// StationEventsFromRaw keeps only events at stops served by long distance or
// regional rail and maps them into StationEvents.
func StationEventsFromRaw(raw []RawStationEvent) ([]StationEvent, error) {
	if raw == nil {
		return nil, fmt.Errorf("station events: %w", ErrNilInput)
	}

	events := make([]StationEvent, 0, len(raw))
	for _, rawEvent := range raw {
		if rawEvent.Stop == nil || !rawEvent.Stop.Products.HasLongDistanceRail() {
			continue
		}

		event := StationEvent{
			Station:  rawEvent.Stop.Name,
			Platform: rawEvent.Platform,
		}

		if rawEvent.Line != nil {
			event.Line = rawEvent.Line.Name
		}

		if rawEvent.When != nil {
			if when, err := time.Parse(time.RFC3339, *rawEvent.When); err == nil {
				event.When = &when
			}
		}

		if rawEvent.Delay != nil {
			event.Delay = *rawEvent.Delay / 60
		}

		events = append(events, event)
	}

	return events, nil
}
