package heatloss

import (
	"errors"
	"math"
	"testing"
)

func almostEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func TestWallHeatLossWatts(t *testing.T) {
	tests := []struct {
		name     string
		wall     Wall
		tempDiff float64
		want     float64
	}{
		{"standard external wall", NewWall("North", 10, 0.3), 23, 69.0},
		{"zero delta", NewWall("North", 10, 0.3), 0, 0},
		{"negative delta is a gain", NewWall("North", 10, 0.3), -5, -15.0},
		{"zero area", NewWall("North", 0, 0.3), 23, 0},
		{"half factor", Wall{Name: "Party", Area: 10, UValue: 0.3, TemperatureFactor: 0.5}, 23, 34.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.wall.HeatLossWatts(tt.tempDiff)
			if !almostEqual(got, tt.want, 1e-9) {
				t.Errorf("HeatLossWatts(%v) = %v, want %v", tt.tempDiff, got, tt.want)
			}
		})
	}
}

func TestWallAnnualKWh(t *testing.T) {
	w := NewWall("North", 10, 0.3)
	got := w.HeatLossKWh(2275)
	want := 10 * 0.3 * 2275 * 24 / 1000.0
	if !almostEqual(got, want, 1e-9) {
		t.Errorf("HeatLossKWh(2275) = %v, want %v", got, want)
	}
}

func TestFloorDefaults(t *testing.T) {
	f := NewFloor("Ground Floor", 25, 0.25)
	if f.TemperatureFactor != 0.5 {
		t.Fatalf("NewFloor temperature factor = %v, want 0.5", f.TemperatureFactor)
	}
	got := f.HeatLossWatts(23)
	if !almostEqual(got, 71.875, 1e-9) {
		t.Errorf("HeatLossWatts(23) = %v, want 71.875", got)
	}
}

func TestWindowHeatLoss(t *testing.T) {
	w := NewWindow("South", 2.4, 1.4)
	got := w.HeatLossWatts(24.1)
	want := 2.4 * 1.4 * 24.1
	if !almostEqual(got, want, 1e-9) {
		t.Errorf("HeatLossWatts(24.1) = %v, want %v", got, want)
	}
}

func TestElementValidation(t *testing.T) {
	tests := []struct {
		name    string
		wall    Wall
		wantErr error
	}{
		{"negative area", Wall{Name: "W", Area: -1, UValue: 0.3, TemperatureFactor: 1}, ErrNegativeArea},
		{"negative u-value", Wall{Name: "W", Area: 1, UValue: -0.3, TemperatureFactor: 1}, ErrNegativeUValue},
		{"factor above one", Wall{Name: "W", Area: 1, UValue: 0.3, TemperatureFactor: 1.5}, ErrTemperatureFactorRange},
		{"factor below zero", Wall{Name: "W", Area: 1, UValue: 0.3, TemperatureFactor: -0.1}, ErrTemperatureFactorRange},
		{"valid", NewWall("W", 1, 0.3), nil},
		{"zero area allowed", NewWall("W", 0, 0.3), nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.wall.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("Validate() = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestParseBoundary(t *testing.T) {
	tests := []struct {
		in   string
		want Boundary
	}{
		{"", Boundary{Kind: BoundaryExternal}},
		{"external", Boundary{Kind: BoundaryExternal}},
		{"ground", Boundary{Kind: BoundaryGround}},
		{"unheated", Boundary{Kind: BoundaryUnheated}},
		{"Kitchen", Boundary{Kind: BoundaryRoom, Room: "Kitchen"}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := ParseBoundary(tt.in); got != tt.want {
				t.Errorf("ParseBoundary(%q) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}

func TestBoundaryString(t *testing.T) {
	if got := RoomBoundary("Hall").String(); got != "Hall" {
		t.Errorf("RoomBoundary string = %q, want Hall", got)
	}
	if got := (Boundary{Kind: BoundaryGround}).String(); got != "ground" {
		t.Errorf("ground boundary string = %q", got)
	}
}
