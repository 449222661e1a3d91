package heatloss

import "encoding/json"

// JSON mapping for the flat structured record. Unknown caller-side fields
// (visual metadata and the like) are ignored, never rejected. Factors absent
// from the record take their documented defaults: 1.0 for walls, 0.5 for
// floors.

type wallRecord struct {
	Name              string   `json:"name"`
	Area              float64  `json:"area"`
	UValue            float64  `json:"u_value"`
	Boundary          string   `json:"boundary,omitempty"`
	TemperatureFactor *float64 `json:"temperature_factor,omitempty"`
	BoundaryTemp      *float64 `json:"boundary_temp,omitempty"`
}

func (w Wall) MarshalJSON() ([]byte, error) {
	f := w.TemperatureFactor
	rec := wallRecord{
		Name:              w.Name,
		Area:              w.Area,
		UValue:            w.UValue,
		TemperatureFactor: &f,
		BoundaryTemp:      w.BoundaryTemp,
	}
	if w.Boundary.Kind != BoundaryExternal {
		rec.Boundary = w.Boundary.String()
	}
	return json.Marshal(rec)
}

func (w *Wall) UnmarshalJSON(data []byte) error {
	var rec wallRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return err
	}
	*w = Wall{
		Name:              rec.Name,
		Area:              rec.Area,
		UValue:            rec.UValue,
		TemperatureFactor: 1.0,
		Boundary:          ParseBoundary(rec.Boundary),
		BoundaryTemp:      rec.BoundaryTemp,
	}
	if rec.TemperatureFactor != nil {
		w.TemperatureFactor = *rec.TemperatureFactor
	}
	return nil
}

type windowRecord struct {
	Name   string  `json:"name"`
	Area   float64 `json:"area"`
	UValue float64 `json:"u_value"`
}

func (w Window) MarshalJSON() ([]byte, error) {
	return json.Marshal(windowRecord{Name: w.Name, Area: w.Area, UValue: w.UValue})
}

func (w *Window) UnmarshalJSON(data []byte) error {
	var rec windowRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return err
	}
	*w = Window{Name: rec.Name, Area: rec.Area, UValue: rec.UValue}
	return nil
}

type floorRecord struct {
	Name              string   `json:"name"`
	Area              float64  `json:"area"`
	UValue            float64  `json:"u_value"`
	TemperatureFactor *float64 `json:"temperature_factor,omitempty"`
}

func (f Floor) MarshalJSON() ([]byte, error) {
	factor := f.TemperatureFactor
	return json.Marshal(floorRecord{Name: f.Name, Area: f.Area, UValue: f.UValue, TemperatureFactor: &factor})
}

func (f *Floor) UnmarshalJSON(data []byte) error {
	var rec floorRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return err
	}
	*f = Floor{Name: rec.Name, Area: rec.Area, UValue: rec.UValue, TemperatureFactor: 0.5}
	if rec.TemperatureFactor != nil {
		f.TemperatureFactor = *rec.TemperatureFactor
	}
	return nil
}

type roomRecord struct {
	Name                  string   `json:"name"`
	RoomType              string   `json:"room_type,omitempty"`
	DesignTemp            float64  `json:"design_temp"`
	Volume                *float64 `json:"volume,omitempty"`
	FloorArea             *float64 `json:"floor_area,omitempty"`
	Height                float64  `json:"height,omitempty"`
	AirChangeRate         *float64 `json:"air_change_rate,omitempty"`
	ThermalBridgingFactor float64  `json:"thermal_bridging_factor"`
	Walls                 []Wall   `json:"walls"`
	Windows               []Window `json:"windows"`
	Floors                []Floor  `json:"floors"`
}

func (r Room) MarshalJSON() ([]byte, error) {
	v := r.Volume
	ach := r.AirChangeRate
	return json.Marshal(roomRecord{
		Name:                  r.Name,
		RoomType:              r.RoomType,
		DesignTemp:            r.DesignTemp,
		Volume:                &v,
		Height:                r.Height,
		AirChangeRate:         &ach,
		ThermalBridgingFactor: r.ThermalBridgingFactor,
		Walls:                 r.Walls,
		Windows:               r.Windows,
		Floors:                r.Floors,
	})
}

func (r *Room) UnmarshalJSON(data []byte) error {
	var rec roomRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return err
	}
	*r = Room{
		Name:                  rec.Name,
		RoomType:              rec.RoomType,
		DesignTemp:            rec.DesignTemp,
		AirChangeRate:         1.0,
		ThermalBridgingFactor: rec.ThermalBridgingFactor,
		Height:                rec.Height,
		Walls:                 rec.Walls,
		Windows:               rec.Windows,
		Floors:                rec.Floors,
	}
	if rec.AirChangeRate != nil {
		r.AirChangeRate = *rec.AirChangeRate
	}
	switch {
	case rec.Volume != nil:
		r.Volume = *rec.Volume
	case rec.FloorArea != nil:
		h := rec.Height
		if h == 0 {
			h = DefaultRoomHeight
		}
		r.Volume = *rec.FloorArea * h
	default:
		r.EnsureVolume()
	}
	return nil
}

type buildingRecord struct {
	Name             string  `json:"name"`
	PostcodeArea     string  `json:"postcode_area,omitempty"`
	BuildingCategory string  `json:"building_category,omitempty"`
	Rooms            []*Room `json:"rooms"`
}

func (b Building) MarshalJSON() ([]byte, error) {
	return json.Marshal(buildingRecord{
		Name:             b.Name,
		PostcodeArea:     b.PostcodeArea,
		BuildingCategory: b.BuildingCategory,
		Rooms:            b.Rooms,
	})
}

func (b *Building) UnmarshalJSON(data []byte) error {
	var rec buildingRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return err
	}
	*b = Building{
		Name:             rec.Name,
		PostcodeArea:     rec.PostcodeArea,
		BuildingCategory: rec.BuildingCategory,
		Rooms:            rec.Rooms,
	}
	return nil
}
