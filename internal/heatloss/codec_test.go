package heatloss

import (
	"encoding/json"
	"testing"
)

func TestWallUnmarshalDefaults(t *testing.T) {
	var w Wall
	if err := json.Unmarshal([]byte(`{"name":"North","area":10,"u_value":0.3}`), &w); err != nil {
		t.Fatal(err)
	}
	if w.TemperatureFactor != 1.0 {
		t.Errorf("temperature factor = %v, want default 1.0", w.TemperatureFactor)
	}
	if w.Boundary.Kind != BoundaryExternal {
		t.Errorf("boundary = %v, want external", w.Boundary)
	}
}

func TestWallUnmarshalBoundary(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want Boundary
	}{
		{"room reference", `{"name":"P","area":1,"u_value":1,"boundary":"Kitchen"}`, RoomBoundary("Kitchen")},
		{"ground", `{"name":"G","area":1,"u_value":1,"boundary":"ground"}`, Boundary{Kind: BoundaryGround}},
		{"unheated", `{"name":"U","area":1,"u_value":1,"boundary":"unheated"}`, Boundary{Kind: BoundaryUnheated}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var w Wall
			if err := json.Unmarshal([]byte(tt.in), &w); err != nil {
				t.Fatal(err)
			}
			if w.Boundary != tt.want {
				t.Errorf("boundary = %+v, want %+v", w.Boundary, tt.want)
			}
		})
	}
}

func TestWallMarshalRoundTrip(t *testing.T) {
	override := 12.0
	in := Wall{
		Name: "Garage Wall", Area: 8, UValue: 0.4, TemperatureFactor: 0.75,
		Boundary: Boundary{Kind: BoundaryUnheated}, BoundaryTemp: &override,
	}
	data, err := json.Marshal(in)
	if err != nil {
		t.Fatal(err)
	}
	var out Wall
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatal(err)
	}
	if out.Name != in.Name || out.Area != in.Area || out.UValue != in.UValue ||
		out.TemperatureFactor != in.TemperatureFactor || out.Boundary != in.Boundary {
		t.Errorf("round trip changed wall: %+v -> %+v", in, out)
	}
	if out.BoundaryTemp == nil || *out.BoundaryTemp != override {
		t.Errorf("boundary temp lost in round trip")
	}
}

func TestFloorUnmarshalDefaultFactor(t *testing.T) {
	var f Floor
	if err := json.Unmarshal([]byte(`{"name":"Ground","area":25,"u_value":0.22}`), &f); err != nil {
		t.Fatal(err)
	}
	if f.TemperatureFactor != 0.5 {
		t.Errorf("temperature factor = %v, want default 0.5", f.TemperatureFactor)
	}

	if err := json.Unmarshal([]byte(`{"name":"Ground","area":25,"u_value":0.22,"temperature_factor":0}`), &f); err != nil {
		t.Fatal(err)
	}
	if f.TemperatureFactor != 0 {
		t.Errorf("explicit zero factor = %v, want 0", f.TemperatureFactor)
	}
}

func TestRoomUnmarshalVolume(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want float64
	}{
		{"explicit volume", `{"name":"R","design_temp":21,"volume":55}`, 55},
		{"floor area times height", `{"name":"R","design_temp":21,"floor_area":20,"height":3}`, 60},
		{"floor area default height", `{"name":"R","design_temp":21,"floor_area":20}`, 48},
		{"derived from floor elements", `{"name":"R","design_temp":21,"floors":[{"name":"F","area":10,"u_value":0.2}]}`, 24},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var r Room
			if err := json.Unmarshal([]byte(tt.in), &r); err != nil {
				t.Fatal(err)
			}
			if r.Volume != tt.want {
				t.Errorf("Volume = %v, want %v", r.Volume, tt.want)
			}
		})
	}
}

func TestRoomUnmarshalAirChangeDefault(t *testing.T) {
	var r Room
	if err := json.Unmarshal([]byte(`{"name":"R","design_temp":21}`), &r); err != nil {
		t.Fatal(err)
	}
	if r.AirChangeRate != 1.0 {
		t.Errorf("air change rate = %v, want default 1.0", r.AirChangeRate)
	}

	if err := json.Unmarshal([]byte(`{"name":"R","design_temp":21,"air_change_rate":0}`), &r); err != nil {
		t.Fatal(err)
	}
	if r.AirChangeRate != 0 {
		t.Errorf("explicit zero ACH = %v, want 0", r.AirChangeRate)
	}
}

func TestUnknownFieldsIgnored(t *testing.T) {
	var b Building
	payload := `{"name":"House","colour":"blue","rooms":[{"name":"R","design_temp":21,"sketch_id":42}]}`
	if err := json.Unmarshal([]byte(payload), &b); err != nil {
		t.Fatalf("unknown fields must be ignored: %v", err)
	}
	if len(b.Rooms) != 1 || b.Rooms[0].Name != "R" {
		t.Errorf("decoded building = %+v", b)
	}
}

func TestBuildingRoundTrip(t *testing.T) {
	in := &Building{
		Name:         "House",
		PostcodeArea: "M",
		Rooms: []*Room{{
			Name: "Lounge", DesignTemp: 21, Volume: 60, AirChangeRate: 1,
			Walls:   []Wall{NewWall("North", 12, 0.28)},
			Windows: []Window{NewWindow("W1", 2.4, 1.4)},
			Floors:  []Floor{NewFloor("Ground", 25, 0.22)},
		}},
	}
	data, err := json.Marshal(in)
	if err != nil {
		t.Fatal(err)
	}
	var out Building
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatal(err)
	}

	before, err := in.TotalHeatLossWatts(-3.1, false)
	if err != nil {
		t.Fatal(err)
	}
	after, err := out.TotalHeatLossWatts(-3.1, false)
	if err != nil {
		t.Fatal(err)
	}
	if !almostEqual(before, after, 1e-9) {
		t.Errorf("round trip changed the computed loss: %v -> %v", before, after)
	}
}
