package raildata

import (
	"fmt"
	"strings"
)

// Raw shapes returned by the db-vendo /journeys endpoint.
type RawJourney struct {
	Legs []RawJourneyLeg `json:"legs"`
}

type RawJourneyLeg struct {
	Origin      *RawStop `json:"origin"`
	Destination *RawStop `json:"destination"`
	Direction   string   `json:"direction"`
	Line        *RawLine `json:"line"`

	Arrival         *string `json:"arrival"`
	ArrivalDelay    *int    `json:"arrivalDelay"`
	ArrivalPlatform string  `json:"arrivalPlatform"`

	Departure         *string `json:"departure"`
	DepartureDelay    *int    `json:"departureDelay"`
	DeparturePlatform string  `json:"departurePlatform"`
}

type RawStop struct {
	Type     string       `json:"type"`
	ID       string       `json:"id"`
	Name     string       `json:"name"`
	Products *RawProducts `json:"products"`
}

type RawLine struct {
	Name        string `json:"name"`
	Mode        string `json:"mode"`
	ProductName string `json:"productName"`
}

// Journey is one leg of a provider journey that survived the rail filter.
// Timestamps are carried exactly as the provider sent them; delays are
// converted from the provider's seconds into minutes.
type Journey struct {
	ID          string `json:"id" groups:"basic"`
	Name        string `json:"name" groups:"basic"`
	Destination string `json:"destination" groups:"basic"`
	Direction   string `json:"direction" groups:"basic"`
	Line        string `json:"line" groups:"basic"`

	Arrival         *string `json:"arrival" groups:"basic"`
	ArrivalDelay    *int    `json:"arrivalDelay" groups:"basic"`
	ArrivalPlatform string  `json:"arrivalPlatform" groups:"basic"`

	Departure         *string `json:"departure" groups:"basic"`
	DepartureDelay    *int    `json:"departureDelay" groups:"basic"`
	DeparturePlatform string  `json:"departurePlatform" groups:"basic"`
}

// JourneyQuery is the origin/destination pair the user searched for. Only
// legs running directly between the two stations are kept.
type JourneyQuery struct {
	From string
	To   string
}

// Line names of suburban rail services start with "S " (S-Bahn naming
// convention), no matter what the product flags claim.
const suburbanLinePrefix = "S "

// JourneysFromRaw flattens provider journeys into their legs and keeps only
// legs that are valid long distance rail rides between the queried stations.
func JourneysFromRaw(raw []RawJourney, query JourneyQuery) ([]Journey, error) {
	if raw == nil {
		return nil, fmt.Errorf("journeys: %w", ErrNilInput)
	}

	journeys := []Journey{}
	for _, rawJourney := range raw {
		for _, leg := range rawJourney.Legs {
			if !keepLeg(leg, query) {
				continue
			}

			journeys = append(journeys, Journey{
				ID:          leg.Origin.ID,
				Name:        leg.Origin.Name,
				Destination: leg.Destination.Name,
				Direction:   leg.Direction,
				Line:        leg.Line.Name,

				Arrival:         leg.Arrival,
				ArrivalDelay:    delayMinutes(leg.ArrivalDelay),
				ArrivalPlatform: leg.ArrivalPlatform,

				Departure:         leg.Departure,
				DepartureDelay:    delayMinutes(leg.DepartureDelay),
				DeparturePlatform: leg.DeparturePlatform,
			})
		}
	}

	return journeys, nil
}

func keepLeg(leg RawJourneyLeg, query JourneyQuery) bool {
	if leg.Origin == nil || leg.Destination == nil || leg.Line == nil {
		return false
	}

	// Degenerate same-station legs (e.g. a platform change) are not rides
	if leg.Origin.Name == leg.Destination.Name {
		return false
	}

	if leg.Line.Name == "" || strings.HasPrefix(leg.Line.Name, suburbanLinePrefix) {
		return false
	}

	if leg.Arrival == nil || leg.Departure == nil {
		return false
	}

	// Only direct legs between the stations the user asked for
	if leg.Origin.ID != query.From || leg.Destination.ID != query.To {
		return false
	}

	if strings.EqualFold(leg.Line.Mode, "bus") {
		return false
	}
	if leg.Line.ProductName == "BUS" || leg.Line.ProductName == "S" {
		return false
	}

	return leg.Origin.Products.LongDistanceRailOnly()
}

// delayMinutes converts a provider delay in seconds into minutes. A missing
// delay stays missing rather than becoming 0.
func delayMinutes(seconds *int) *int {
	if seconds == nil {
		return nil
	}

	minutes := *seconds / 60
	return &minutes
}
