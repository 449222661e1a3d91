package refdata

// FloorType selects the BS EN 12831 floor construction model.
type FloorType string

const (
	FloorSolid     FloorType = "solid"
	FloorSuspended FloorType = "suspended"
)

const (
	groundConductivity = 2.0  // W/mK, typical soil
	suspendedAirGapR   = 0.18 // m²K/W
)

// FloorUValue estimates a floor U-value from geometry and insulation.
// perimeter is the external perimeter in m; wallThickness and
// insulationThickness in m; insulationConductivity in W/mK. Pass zero for
// wallThickness or insulationConductivity to take 0.3 m and 0.035 W/mK.
func FloorUValue(floorType FloorType, perimeter, area, wallThickness, insulationThickness, insulationConductivity float64) float64 {
	if wallThickness == 0 {
		wallThickness = 0.3
	}
	if insulationConductivity == 0 {
		insulationConductivity = 0.035
	}

	// Characteristic dimension B' = A / (0.5 × P).
	var b float64
	if perimeter > 0 {
		b = area / (0.5 * perimeter)
	}
	if b < 0.1 {
		return 0
	}

	// Total equivalent thickness.
	dt := wallThickness + insulationThickness*(groundConductivity/insulationConductivity)

	if floorType == FloorSuspended {
		rTotal := dt/groundConductivity + suspendedAirGapR
		if rTotal <= 0 {
			return 0
		}
		return 1 / rTotal
	}

	if b <= 0.5 {
		return groundConductivity / (0.457*b + dt)
	}
	return (2 * groundConductivity / (3.14*b + dt)) * (1 + 0.5*(dt/(dt+groundConductivity)))
}
