package raildata

import (
	"errors"
	"fmt"
)

// ErrNilInput is returned by the transformers when the raw list itself is
// missing, as opposed to merely empty.
var ErrNilInput = errors.New("raildata: nil input list")

// RawStation is a single record of the db-stations dataset.
type RawStation struct {
	ID      string            `json:"id"`
	Name    string            `json:"name"`
	Address RawStationAddress `json:"address"`
}

type RawStationAddress struct {
	Zipcode string `json:"zipcode"`
	City    string `json:"city"`
	Street  string `json:"street"`
}

type Station struct {
	ID      string `json:"id" groups:"basic"`
	Name    string `json:"name" groups:"basic"`
	Address string `json:"address" groups:"basic"`
}

// StationsFromRaw maps db-stations records into Stations, collapsing the
// nested address into a single "{zipcode}, {city}, {street}" line.
func StationsFromRaw(raw []RawStation) ([]Station, error) {
	if raw == nil {
		return nil, fmt.Errorf("stations: %w", ErrNilInput)
	}

	stations := make([]Station, 0, len(raw))
	for _, rawStation := range raw {
		stations = append(stations, Station{
			ID:   rawStation.ID,
			Name: rawStation.Name,
			Address: fmt.Sprintf("%s, %s, %s",
				rawStation.Address.Zipcode, rawStation.Address.City, rawStation.Address.Street),
		})
	}

	return stations, nil
}
