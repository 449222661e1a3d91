package autodesign

import (
	"fmt"

	building "Kelvin/internal/calc/building"
	heatpump "Kelvin/internal/calc/heatpump"
	hotwater "Kelvin/internal/calc/hotwater"
	radiator "Kelvin/internal/calc/radiator"
	"Kelvin/internal/calc/recommend"
	"Kelvin/internal/heatloss"
)

// DesignInput runs the whole sizing chain from a building survey.
type DesignInput struct {
	Building         building.Input   `json:"building"`
	Occupants        int              `json:"occupants"`
	OversizingFactor float64          `json:"oversizing_factor"`
	FlowTempC        float64          `json:"flow_temp_c"`
	ReturnTempC      float64          `json:"return_temp_c"`
	Radiators        []radiator.Input `json:"radiators"`
}

type DesignResult struct {
	Summary     heatloss.Summary           `json:"summary"`
	HotWater    hotwater.Result            `json:"hot_water"`
	HeatPump    heatpump.SizingResult      `json:"heat_pump"`
	Consumption heatpump.ConsumptionResult `json:"consumption"`
	Recommended *recommend.HeatPumpResult  `json:"recommended,omitempty"`
	Radiators   []radiator.Result          `json:"radiators,omitempty"`
	Notes       string                     `json:"notes"`
}

// Design chains heat loss, hot water demand, heat pump sizing and
// radiator resizing into one pass over the survey.
func Design(in DesignInput, ref heatloss.ReferenceData) (DesignResult, error) {
	summary, err := building.Calculate(in.Building, ref)
	if err != nil {
		return DesignResult{}, fmt.Errorf("heat loss: %w", err)
	}

	hw, err := hotwater.Calculate(hotwater.Input{Occupants: in.Occupants})
	if err != nil {
		return DesignResult{}, fmt.Errorf("hot water: %w", err)
	}

	hp, err := heatpump.Size(heatpump.SizingInput{
		DesignHeatLossKW: summary.TotalWatts / 1000,
		HotWaterDemandKW: hw.DailyEnergyKWh / 24,
		OversizingFactor: in.OversizingFactor,
	})
	if err != nil {
		return DesignResult{}, fmt.Errorf("heat pump: %w", err)
	}

	res := DesignResult{
		Summary:  summary,
		HotWater: hw,
		HeatPump: hp,
		Notes:    "Sized from steady-state room losses at the design external temperature.",
	}

	if rec, err := recommend.HeatPump(recommend.HeatPumpInput{RequiredCapacityKW: hp.RequiredCapacityKW}); err == nil {
		res.Recommended = &rec
		cons, err := heatpump.AnnualConsumption(heatpump.ConsumptionInput{
			SpaceHeatingKWh: summary.TotalAnnualKWh,
			HotWaterKWh:     hw.AnnualEnergyKWh,
			COP:             rec.Recommended.COP,
		})
		if err != nil {
			return DesignResult{}, fmt.Errorf("consumption: %w", err)
		}
		res.Consumption = cons
	}

	for i, rad := range in.Radiators {
		if rad.FlowTempC == 0 {
			rad.FlowTempC = in.FlowTempC
		}
		if rad.ReturnTempC == 0 {
			rad.ReturnTempC = in.ReturnTempC
		}
		out, err := radiator.Calculate(rad)
		if err != nil {
			return DesignResult{}, fmt.Errorf("radiator %d: %w", i, err)
		}
		res.Radiators = append(res.Radiators, out)
	}
	return res, nil
}
