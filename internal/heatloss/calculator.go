package heatloss

import "fmt"

// ReferenceData supplies the lookup values the factory needs. The core never
// embeds the tables; refdata provides the production implementation and
// tests inject synthetic ones.
type ReferenceData interface {
	DesignExternalTemp(postcodeArea string) (float64, bool)
	DegreeDays(postcodeArea string) (float64, bool)
	DefaultRoomTemp(roomType string) float64
	DefaultAirChangeRate(roomType, buildingCategory string) float64
}

// Calculator is a session bound to a location and a building category. It
// resolves climate once and builds rooms with defaulted parameters.
type Calculator struct {
	ref              ReferenceData
	PostcodeArea     string
	BuildingCategory string
	ExternalTemp     float64 // design external temperature, °C
	DegreeDays       float64
}

func NewCalculator(ref ReferenceData, postcodeArea, buildingCategory string) (*Calculator, error) {
	ext, ok := ref.DesignExternalTemp(postcodeArea)
	if !ok {
		return nil, fmt.Errorf("%q: %w", postcodeArea, ErrUnknownPostcodeArea)
	}
	dd, ok := ref.DegreeDays(postcodeArea)
	if !ok {
		return nil, fmt.Errorf("%q: %w", postcodeArea, ErrUnknownPostcodeArea)
	}
	return &Calculator{
		ref:              ref,
		PostcodeArea:     postcodeArea,
		BuildingCategory: buildingCategory,
		ExternalTemp:     ext,
		DegreeDays:       dd,
	}, nil
}

func (c *Calculator) NewBuilding(name string) *Building {
	return &Building{
		Name:             name,
		PostcodeArea:     c.PostcodeArea,
		BuildingCategory: c.BuildingCategory,
	}
}

// NewRoom builds a room with the design temperature and air change rate
// defaulted from the reference tables. Volume is floor area × height.
func (c *Calculator) NewRoom(name, roomType string, floorArea, height float64) *Room {
	if height == 0 {
		height = DefaultRoomHeight
	}
	return &Room{
		Name:          name,
		RoomType:      roomType,
		DesignTemp:    c.ref.DefaultRoomTemp(roomType),
		Volume:        floorArea * height,
		AirChangeRate: c.ref.DefaultAirChangeRate(roomType, c.BuildingCategory),
		Height:        height,
	}
}

// BuildingSummary evaluates a building against the session's climate.
func (c *Calculator) BuildingSummary(b *Building, includeInterRoom bool) (Summary, error) {
	return b.Summary(c.ExternalTemp, c.DegreeDays, includeInterRoom)
}
