package hotwater

import "fmt"

// Specific heat of water, Wh/(L·K).
const WaterHeatCapacity = 1.163

const (
	defaultUsagePerPersonL = 50.0
	defaultColdWaterTemp   = 10.0
	defaultHotWaterTemp    = 60.0
)

type Input struct {
	Occupants        int     `json:"occupants"`
	DailyUsageLitres float64 `json:"daily_usage_litres"` // 0 = 50 L per occupant
	ColdWaterTempC   float64 `json:"cold_water_temp_c"`  // 0 = 10
	HotWaterTempC    float64 `json:"hot_water_temp_c"`   // 0 = 60
}

type Result struct {
	DailyUsageLitres float64 `json:"daily_usage_litres"`
	ColdWaterTempC   float64 `json:"cold_water_temp_c"`
	HotWaterTempC    float64 `json:"hot_water_temp_c"`
	DailyEnergyKWh   float64 `json:"daily_energy_kwh"`
	AnnualEnergyKWh  float64 `json:"annual_energy_kwh"`
}

// EnergyKWh is the raw per-event formula: litres × temperature rise ×
// 1.163 / 1000.
func EnergyKWh(volumeLitres, tempRiseK float64) float64 {
	return volumeLitres * tempRiseK * WaterHeatCapacity / 1000
}

func Calculate(in Input) (Result, error) {
	if in.ColdWaterTempC <= 0 {
		in.ColdWaterTempC = defaultColdWaterTemp
	}
	if in.HotWaterTempC <= 0 {
		in.HotWaterTempC = defaultHotWaterTemp
	}
	if in.DailyUsageLitres <= 0 {
		if in.Occupants <= 0 {
			return Result{}, fmt.Errorf("occupants or daily usage required")
		}
		in.DailyUsageLitres = float64(in.Occupants) * defaultUsagePerPersonL
	}
	rise := in.HotWaterTempC - in.ColdWaterTempC
	if rise <= 0 {
		return Result{}, fmt.Errorf("hot water temperature must exceed cold water temperature")
	}

	daily := EnergyKWh(in.DailyUsageLitres, rise)
	return Result{
		DailyUsageLitres: in.DailyUsageLitres,
		ColdWaterTempC:   in.ColdWaterTempC,
		HotWaterTempC:    in.HotWaterTempC,
		DailyEnergyKWh:   daily,
		AnnualEnergyKWh:  daily * 365,
	}, nil
}
