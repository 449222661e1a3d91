package flooru

import (
	"fmt"

	"Kelvin/internal/refdata"
)

type Input struct {
	FloorType              string  `json:"floor_type"` // solid or suspended
	PerimeterM             float64 `json:"perimeter_m"`
	AreaM2                 float64 `json:"area_m2"`
	WallThicknessM         float64 `json:"wall_thickness_m"`
	InsulationThicknessM   float64 `json:"insulation_thickness_m"`
	InsulationConductivity float64 `json:"insulation_conductivity_w_mk"`
}

type Result struct {
	UValue                  float64 `json:"u_value"`
	CharacteristicDimension float64 `json:"characteristic_dimension_m"`
	Notes                   string  `json:"notes"`
}

func Calculate(in Input) (Result, error) {
	if in.PerimeterM <= 0 || in.AreaM2 <= 0 {
		return Result{}, fmt.Errorf("perimeter and area must be positive")
	}
	ft := refdata.FloorType(in.FloorType)
	if ft != refdata.FloorSolid && ft != refdata.FloorSuspended {
		return Result{}, fmt.Errorf("floor type must be solid or suspended")
	}
	u := refdata.FloorUValue(ft, in.PerimeterM, in.AreaM2, in.WallThicknessM, in.InsulationThicknessM, in.InsulationConductivity)
	return Result{
		UValue:                  u,
		CharacteristicDimension: in.AreaM2 / (0.5 * in.PerimeterM),
		Notes:                   "BS EN 12831 characteristic-dimension estimate.",
	}, nil
}
