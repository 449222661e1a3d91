package refdata

import (
	"math"
	"testing"
)

func TestFloorUValueSolid(t *testing.T) {
	// 5 m x 5 m detached floor, 50 mm insulation.
	// B' = 25 / (0.5 x 20) = 2.5; dt = 0.3 + 0.05 x (2.0/0.035).
	b := 2.5
	dt := 0.3 + 0.05*(2.0/0.035)
	want := (2 * 2.0 / (3.14*b + dt)) * (1 + 0.5*(dt/(dt+2.0)))

	got := FloorUValue(FloorSolid, 20, 25, 0, 0.05, 0)
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("FloorUValue = %v, want %v", got, want)
	}
}

func TestFloorUValueSolidNarrow(t *testing.T) {
	// B' <= 0.5 takes the uninsulated-edge branch.
	// 10 m x 0.2 m strip: B' = 2 / (0.5 x 20.4) ~= 0.196.
	b := 2.0 / (0.5 * 20.4)
	dt := 0.3
	want := 2.0 / (0.457*b + dt)

	got := FloorUValue(FloorSolid, 20.4, 2, 0, 0, 0)
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("FloorUValue = %v, want %v", got, want)
	}
}

func TestFloorUValueSuspended(t *testing.T) {
	dt := 0.3 + 0.1*(2.0/0.035)
	want := 1 / (dt/2.0 + 0.18)

	got := FloorUValue(FloorSuspended, 20, 25, 0, 0.1, 0)
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("FloorUValue = %v, want %v", got, want)
	}
}

func TestFloorUValueDegenerateGeometry(t *testing.T) {
	if got := FloorUValue(FloorSolid, 0, 25, 0, 0, 0); got != 0 {
		t.Errorf("zero perimeter = %v, want 0", got)
	}
	if got := FloorUValue(FloorSolid, 1000, 25, 0, 0, 0); got != 0 {
		t.Errorf("tiny characteristic dimension = %v, want 0", got)
	}
}

func TestFloorUValueInsulationReducesU(t *testing.T) {
	bare := FloorUValue(FloorSolid, 20, 25, 0, 0, 0)
	insulated := FloorUValue(FloorSolid, 20, 25, 0, 0.1, 0)
	if insulated >= bare {
		t.Errorf("insulated U %v not below uninsulated %v", insulated, bare)
	}
}
