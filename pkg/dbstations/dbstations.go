package dbstations

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/talosati/refundrebel-dev-challenge/pkg/raildata"
)

// Source loads the bundled db-stations dataset, the same station list the
// provider enriches its stops from. The dataset is a JSON array of raw
// stations with a nested address.
type Source struct {
	Path string
}

func NewSource(path string) Source {
	return Source{Path: path}
}

func (s Source) load() ([]raildata.RawStation, error) {
	file, err := os.Open(s.Path)
	if err != nil {
		return nil, fmt.Errorf("opening stations dataset: %w", err)
	}
	defer file.Close()

	var stations []raildata.RawStation
	if err := json.NewDecoder(file).Decode(&stations); err != nil {
		return nil, fmt.Errorf("decoding stations dataset %s: %w", s.Path, err)
	}

	return stations, nil
}

// Stations returns every station of the dataset in the domain shape.
func (s Source) Stations() ([]raildata.Station, error) {
	raw, err := s.load()
	if err != nil {
		return nil, err
	}

	return raildata.StationsFromRaw(raw)
}
