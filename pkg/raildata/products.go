package raildata

import "golang.org/x/exp/slices"

// RawProducts are the provider's transport mode flags for a stop.
type RawProducts struct {
	National        bool `json:"national"`
	NationalExpress bool `json:"nationalExpress"`
	Regional        bool `json:"regional"`
	RegionalExpress bool `json:"regionalExpress"`
	Suburban        bool `json:"suburban"`
	Subway          bool `json:"subway"`
	Tram            bool `json:"tram"`
	Bus             bool `json:"bus"`
	Taxi            bool `json:"taxi"`
	Ferry           bool `json:"ferry"`
}

// HasLongDistanceRail reports whether at least one long distance or regional
// rail product is set on the stop.
func (p *RawProducts) HasLongDistanceRail() bool {
	if p == nil {
		return false
	}

	return slices.Contains([]bool{
		p.National, p.NationalExpress, p.Regional, p.RegionalExpress,
	}, true)
}

// LongDistanceRailOnly reports whether every short distance product flag is
// unset on the stop.
func (p *RawProducts) LongDistanceRailOnly() bool {
	if p == nil {
		return false
	}

	return !slices.Contains([]bool{
		p.Suburban, p.Subway, p.Tram, p.Bus, p.Taxi, p.Ferry,
	}, true)
}
