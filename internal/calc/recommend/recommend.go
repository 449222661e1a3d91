package recommend

import "fmt"

// Spec is a heat pump model at its rated design conditions.
type Spec struct {
	Model      string  `json:"model"`
	CapacityKW float64 `json:"capacity_kw"`
	COP        float64 `json:"cop"`
}

// Typical monobloc air-source range, rated at 45 °C flow.
var catalogue = []Spec{
	{"ASHP 5", 5.0, 3.8},
	{"ASHP 7", 7.0, 3.7},
	{"ASHP 8.5", 8.5, 3.6},
	{"ASHP 11.2", 11.2, 3.5},
	{"ASHP 14", 14.0, 3.4},
	{"ASHP 16", 16.0, 3.3},
}

type HeatPumpInput struct {
	RequiredCapacityKW float64 `json:"required_capacity_kw"`
}

type HeatPumpResult struct {
	Recommended Spec    `json:"recommended"`
	MarginKW    float64 `json:"margin_kw"`
	Notes       string  `json:"notes"`
}

// HeatPump picks the smallest catalogue unit covering the required capacity.
func HeatPump(in HeatPumpInput) (HeatPumpResult, error) {
	if in.RequiredCapacityKW <= 0 {
		return HeatPumpResult{}, fmt.Errorf("required capacity must be positive")
	}
	for _, s := range catalogue {
		if s.CapacityKW >= in.RequiredCapacityKW {
			return HeatPumpResult{
				Recommended: s,
				MarginKW:    s.CapacityKW - in.RequiredCapacityKW,
				Notes:       "Smallest unit covering the design load.",
			}, nil
		}
	}
	return HeatPumpResult{}, fmt.Errorf("required capacity %.1f kW exceeds catalogue range", in.RequiredCapacityKW)
}
