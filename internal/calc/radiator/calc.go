package radiator

import (
	"errors"
	"math"
)

const (
	// Radiator emission-curve exponent.
	emissionExponent = 1.3

	// Nominal rating ΔT for standard radiator outputs.
	nominalDeltaT = 50.0

	defaultFlowTemp   = 45.0
	defaultReturnTemp = 40.0
)

// ErrNonPositiveDeltaT signals a mean water temperature at or below the room
// temperature; the radiator cannot emit into such a room.
var ErrNonPositiveDeltaT = errors.New("mean water temperature must exceed room temperature")

type Input struct {
	RoomHeatLossW float64 `json:"room_heat_loss_w"`
	RoomTempC     float64 `json:"room_temp_c"`
	FlowTempC     float64 `json:"flow_temp_c"`   // 0 = 45
	ReturnTempC   float64 `json:"return_temp_c"` // 0 = 40
}

type Result struct {
	RoomHeatLossW      float64 `json:"room_heat_loss_w"`
	FlowTempC          float64 `json:"flow_temp_c"`
	ReturnTempC        float64 `json:"return_temp_c"`
	MeanWaterTempC     float64 `json:"mean_water_temp_c"`
	DeltaT             float64 `json:"delta_t"`
	RequiredOutputD50W float64 `json:"required_output_at_delta_t_50_w"`
	SizingFactor       float64 `json:"sizing_factor"`
}

// Calculate converts a room's design loss into the nominal Δ50 radiator
// output needed at low flow temperatures: output / (ΔT/50)^1.3.
func Calculate(in Input) (Result, error) {
	if in.RoomHeatLossW < 0 {
		return Result{}, errors.New("room heat loss must not be negative")
	}
	if in.FlowTempC == 0 {
		in.FlowTempC = defaultFlowTemp
	}
	if in.ReturnTempC == 0 {
		in.ReturnTempC = defaultReturnTemp
	}
	mwt := (in.FlowTempC + in.ReturnTempC) / 2
	deltaT := mwt - in.RoomTempC
	if deltaT <= 0 {
		return Result{}, ErrNonPositiveDeltaT
	}

	output := in.RoomHeatLossW / math.Pow(deltaT/nominalDeltaT, emissionExponent)
	res := Result{
		RoomHeatLossW:      in.RoomHeatLossW,
		FlowTempC:          in.FlowTempC,
		ReturnTempC:        in.ReturnTempC,
		MeanWaterTempC:     mwt,
		DeltaT:             deltaT,
		RequiredOutputD50W: output,
	}
	if in.RoomHeatLossW > 0 {
		res.SizingFactor = output / in.RoomHeatLossW
	}
	return res, nil
}
