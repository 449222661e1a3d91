package autodesign

import (
	"math"
	"testing"

	building "Kelvin/internal/calc/building"
	radiator "Kelvin/internal/calc/radiator"
	"Kelvin/internal/heatloss"
	"Kelvin/internal/refdata"
)

func designInput() DesignInput {
	return DesignInput{
		Building: building.Input{
			Name:         "Test Bungalow",
			PostcodeArea: "M",
			Rooms: []*heatloss.Room{{
				Name: "Lounge", DesignTemp: 21, Volume: 60, AirChangeRate: 1,
				Walls:   []heatloss.Wall{heatloss.NewWall("North", 12, 0.28)},
				Windows: []heatloss.Window{heatloss.NewWindow("W1", 2.4, 1.4)},
				Floors:  []heatloss.Floor{heatloss.NewFloor("Ground", 25, 0.22)},
			}},
		},
		Occupants: 4,
		Radiators: []radiator.Input{{RoomHeatLossW: 500, RoomTempC: 21}},
	}
}

func TestDesignChainsAllStages(t *testing.T) {
	res, err := Design(designInput(), refdata.New())
	if err != nil {
		t.Fatal(err)
	}

	if res.Summary.TotalWatts <= 0 {
		t.Errorf("summary total = %v, want positive", res.Summary.TotalWatts)
	}
	if res.HotWater.DailyUsageLitres != 200 {
		t.Errorf("hot water usage = %v, want 200 L for 4 occupants", res.HotWater.DailyUsageLitres)
	}

	wantCapacity := res.Summary.TotalWatts/1000 + res.HotWater.DailyEnergyKWh/24
	if math.Abs(res.HeatPump.RequiredCapacityKW-wantCapacity) > 1e-9 {
		t.Errorf("required capacity = %v, want %v", res.HeatPump.RequiredCapacityKW, wantCapacity)
	}

	if res.Recommended == nil {
		t.Fatal("expected a recommended unit for a domestic load")
	}
	if res.Recommended.Recommended.CapacityKW < res.HeatPump.RequiredCapacityKW {
		t.Errorf("recommended unit %v kW below required %v kW",
			res.Recommended.Recommended.CapacityKW, res.HeatPump.RequiredCapacityKW)
	}

	if res.Consumption.ElectricityKWh <= 0 {
		t.Errorf("consumption = %v, want positive", res.Consumption.ElectricityKWh)
	}

	if len(res.Radiators) != 1 {
		t.Fatalf("got %d radiator results, want 1", len(res.Radiators))
	}
	if res.Radiators[0].FlowTempC != 45 || res.Radiators[0].ReturnTempC != 40 {
		t.Errorf("radiator temps = %v / %v, want defaults 45 / 40",
			res.Radiators[0].FlowTempC, res.Radiators[0].ReturnTempC)
	}
}

func TestDesignSystemFlowTemps(t *testing.T) {
	in := designInput()
	in.FlowTempC = 55
	in.ReturnTempC = 47
	res, err := Design(in, refdata.New())
	if err != nil {
		t.Fatal(err)
	}
	if res.Radiators[0].FlowTempC != 55 || res.Radiators[0].ReturnTempC != 47 {
		t.Errorf("radiator temps = %v / %v, want system-wide 55 / 47",
			res.Radiators[0].FlowTempC, res.Radiators[0].ReturnTempC)
	}
}

func TestDesignOversizing(t *testing.T) {
	base, err := Design(designInput(), refdata.New())
	if err != nil {
		t.Fatal(err)
	}
	in := designInput()
	in.OversizingFactor = 1.2
	over, err := Design(in, refdata.New())
	if err != nil {
		t.Fatal(err)
	}
	want := base.HeatPump.RequiredCapacityKW * 1.2
	if math.Abs(over.HeatPump.RequiredCapacityKW-want) > 1e-9 {
		t.Errorf("oversized capacity = %v, want %v", over.HeatPump.RequiredCapacityKW, want)
	}
}

func TestDesignFailsOnBadRadiator(t *testing.T) {
	in := designInput()
	in.Radiators = append(in.Radiators, radiator.Input{RoomHeatLossW: 500, RoomTempC: 60})
	if _, err := Design(in, refdata.New()); err == nil {
		t.Fatal("expected error for radiator in an overheated room")
	}
}
