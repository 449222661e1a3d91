package heatpump

import "fmt"

type SizingInput struct {
	DesignHeatLossKW float64 `json:"design_heat_loss_kw"`
	HotWaterDemandKW float64 `json:"hot_water_demand_kw"`
	OversizingFactor float64 `json:"oversizing_factor"` // 0 = 1.0, no margin
}

type SizingResult struct {
	DesignHeatLossKW   float64 `json:"design_heat_loss_kw"`
	HotWaterDemandKW   float64 `json:"hot_water_demand_kw"`
	OversizingFactor   float64 `json:"oversizing_factor"`
	RequiredCapacityKW float64 `json:"required_capacity_kw"`
}

// Size is additive: design loss plus hot-water demand, times a
// caller-supplied margin. No margin is baked in.
func Size(in SizingInput) (SizingResult, error) {
	if in.DesignHeatLossKW < 0 || in.HotWaterDemandKW < 0 {
		return SizingResult{}, fmt.Errorf("loads must not be negative")
	}
	if in.OversizingFactor == 0 {
		in.OversizingFactor = 1.0
	}
	if in.OversizingFactor < 0 {
		return SizingResult{}, fmt.Errorf("oversizing factor must be positive")
	}
	return SizingResult{
		DesignHeatLossKW:   in.DesignHeatLossKW,
		HotWaterDemandKW:   in.HotWaterDemandKW,
		OversizingFactor:   in.OversizingFactor,
		RequiredCapacityKW: (in.DesignHeatLossKW + in.HotWaterDemandKW) * in.OversizingFactor,
	}, nil
}

type ConsumptionInput struct {
	SpaceHeatingKWh float64 `json:"space_heating_kwh"`
	HotWaterKWh     float64 `json:"hot_water_kwh"`
	COP             float64 `json:"cop"`
}

type ConsumptionResult struct {
	SpaceHeatingKWh    float64 `json:"space_heating_kwh"`
	HotWaterKWh        float64 `json:"hot_water_kwh"`
	TotalHeatDemandKWh float64 `json:"total_heat_demand_kwh"`
	COP                float64 `json:"cop"`
	ElectricityKWh     float64 `json:"electricity_kwh"`
}

// AnnualConsumption divides thermal demand by the coefficient of
// performance. There is no default COP.
func AnnualConsumption(in ConsumptionInput) (ConsumptionResult, error) {
	if in.COP <= 0 {
		return ConsumptionResult{}, fmt.Errorf("cop must be positive")
	}
	total := in.SpaceHeatingKWh + in.HotWaterKWh
	return ConsumptionResult{
		SpaceHeatingKWh:    in.SpaceHeatingKWh,
		HotWaterKWh:        in.HotWaterKWh,
		TotalHeatDemandKWh: total,
		COP:                in.COP,
		ElectricityKWh:     total / in.COP,
	}, nil
}
