package heatloss

import "fmt"

// Building owns an ordered set of rooms. Room names must be unique; wall
// boundaries referencing other rooms resolve by name.
type Building struct {
	Name             string
	PostcodeArea     string
	BuildingCategory string

	Rooms []*Room
}

// Summary is the derived building-level loss record. Rooms follow insertion
// order.
type Summary struct {
	BuildingName   string     `json:"building_name"`
	PostcodeArea   string     `json:"postcode_area,omitempty"`
	ExternalTemp   float64    `json:"external_temp"`
	DegreeDays     float64    `json:"degree_days"`
	TotalWatts     float64    `json:"total_watts"`
	TotalAnnualKWh float64    `json:"total_annual_kwh"`
	Rooms          []RoomLoss `json:"rooms"`
}

// AddRoom appends a room, rejecting empty and duplicate names.
func (b *Building) AddRoom(r *Room) error {
	if r.Name == "" {
		return ErrMissingRoomName
	}
	for _, existing := range b.Rooms {
		if existing.Name == r.Name {
			return fmt.Errorf("%q: %w", r.Name, ErrDuplicateRoomName)
		}
	}
	b.Rooms = append(b.Rooms, r)
	return nil
}

// temperatureMap is phase one of the aggregation: every room's design
// temperature keyed by name, resolved before any inter-room loss is
// computed. Design temperatures are inputs, never solved for, so mutual
// references between rooms need no iteration.
func (b *Building) temperatureMap() (map[string]float64, error) {
	temps := make(map[string]float64, len(b.Rooms))
	for _, r := range b.Rooms {
		if r.Name == "" {
			return nil, ErrMissingRoomName
		}
		if _, dup := temps[r.Name]; dup {
			return nil, fmt.Errorf("%q: %w", r.Name, ErrDuplicateRoomName)
		}
		temps[r.Name] = r.DesignTemp
	}
	return temps, nil
}

// Summary runs the whole-building calculation: temperature map, then each
// room's breakdown, then the sums. The building is not mutated; the pass
// either fully succeeds or fails as a whole.
func (b *Building) Summary(externalTemp, degreeDays float64, includeInterRoom bool) (Summary, error) {
	temps, err := b.temperatureMap()
	if err != nil {
		return Summary{}, err
	}

	s := Summary{
		BuildingName: b.Name,
		PostcodeArea: b.PostcodeArea,
		ExternalTemp: externalTemp,
		DegreeDays:   degreeDays,
		Rooms:        make([]RoomLoss, 0, len(b.Rooms)),
	}
	for _, r := range b.Rooms {
		loss, err := r.Losses(externalTemp, degreeDays, temps, includeInterRoom)
		if err != nil {
			return Summary{}, err
		}
		s.Rooms = append(s.Rooms, loss)
		s.TotalWatts += loss.TotalWatts
		s.TotalAnnualKWh += loss.AnnualKWh
	}
	return s, nil
}

// TotalHeatLossWatts is a convenience for callers that only need the design
// figure.
func (b *Building) TotalHeatLossWatts(externalTemp float64, includeInterRoom bool) (float64, error) {
	s, err := b.Summary(externalTemp, 0, includeInterRoom)
	if err != nil {
		return 0, err
	}
	return s.TotalWatts, nil
}
