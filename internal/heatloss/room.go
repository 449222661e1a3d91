package heatloss

import "fmt"

const (
	// Volumetric specific heat capacity of air, Wh/(m³·K).
	AirHeatCapacity = 0.33

	// Assumed temperature of an unheated space with no explicit override, °C.
	UnheatedDefaultTemp = 18.0

	DefaultRoomHeight = 2.4 // m
)

// Room aggregates fabric elements with room-level parameters. Build one
// directly or through Calculator.NewRoom for defaulted temperature and ACH.
type Room struct {
	Name                  string
	RoomType              string
	DesignTemp            float64 // °C
	Volume                float64 // m³
	AirChangeRate         float64 // ACH
	ThermalBridgingFactor float64
	Height                float64 // m, used only to derive Volume from floor area

	Walls   []Wall
	Windows []Window
	Floors  []Floor
}

// FabricLoss is the per-room fabric breakdown in Watts. Total is the
// external-facing loss with thermal bridging applied; InterRoom is the
// partition-wall exchange and is never uplifted by bridging.
type FabricLoss struct {
	Walls           float64
	Windows         float64
	Floors          float64
	ThermalBridging float64
	Total           float64
	InterRoom       float64
}

// RoomLoss is one room's full loss breakdown.
type RoomLoss struct {
	Name             string  `json:"name"`
	RoomType         string  `json:"room_type,omitempty"`
	DesignTemp       float64 `json:"design_temp"`
	FabricWatts      float64 `json:"fabric_watts"`
	InterRoomWatts   float64 `json:"inter_room_watts"`
	VentilationWatts float64 `json:"ventilation_watts"`
	TotalWatts       float64 `json:"total_watts"`
	AnnualKWh        float64 `json:"annual_kwh"`
}

func (r *Room) Validate() error {
	if r.Volume < 0 {
		return fmt.Errorf("room %q: %w", r.Name, ErrNegativeVolume)
	}
	if r.AirChangeRate < 0 {
		return fmt.Errorf("room %q: %w", r.Name, ErrNegativeAirChangeRate)
	}
	if r.ThermalBridgingFactor < 0 {
		return fmt.Errorf("room %q: %w", r.Name, ErrNegativeBridgingFactor)
	}
	for _, w := range r.Walls {
		if err := w.Validate(); err != nil {
			return fmt.Errorf("room %q: %w", r.Name, err)
		}
	}
	for _, w := range r.Windows {
		if err := w.Validate(); err != nil {
			return fmt.Errorf("room %q: %w", r.Name, err)
		}
	}
	for _, f := range r.Floors {
		if err := f.Validate(); err != nil {
			return fmt.Errorf("room %q: %w", r.Name, err)
		}
	}
	return nil
}

// EnsureVolume derives Volume from total floor area × Height when Volume is
// unset. Height falls back to DefaultRoomHeight.
func (r *Room) EnsureVolume() {
	if r.Volume != 0 || len(r.Floors) == 0 {
		return
	}
	var area float64
	for _, f := range r.Floors {
		area += f.Area
	}
	h := r.Height
	if h == 0 {
		h = DefaultRoomHeight
	}
	r.Volume = area * h
}

// boundaryTemp resolves the temperature on the far side of a wall. Room
// boundaries are looked up in temps; a miss is a configuration error.
func (r *Room) boundaryTemp(w Wall, externalTemp float64, temps map[string]float64) (float64, error) {
	switch w.Boundary.Kind {
	case BoundaryGround:
		if w.BoundaryTemp != nil {
			return *w.BoundaryTemp, nil
		}
		// No separate ground assumption in this layer; model ground
		// accurately via TemperatureFactor or an explicit BoundaryTemp.
		return externalTemp, nil
	case BoundaryUnheated:
		if w.BoundaryTemp != nil {
			return *w.BoundaryTemp, nil
		}
		return UnheatedDefaultTemp, nil
	case BoundaryRoom:
		t, ok := temps[w.Boundary.Room]
		if !ok {
			return 0, fmt.Errorf("room %q, wall %q -> %q: %w", r.Name, w.Name, w.Boundary.Room, ErrUnknownBoundaryRoom)
		}
		return t, nil
	default:
		return externalTemp, nil
	}
}

// FabricHeatLossWatts resolves every element against its boundary
// temperature. Walls facing another room accumulate into InterRoom when
// includeInterRoom is set and are skipped entirely otherwise (the adiabatic
// internal-wall convention). temps maps room name to resolved design
// temperature and is only consulted for room boundaries.
func (r *Room) FabricHeatLossWatts(externalTemp float64, temps map[string]float64, includeInterRoom bool) (FabricLoss, error) {
	var loss FabricLoss
	for _, w := range r.Walls {
		if w.Boundary.Kind == BoundaryRoom && !includeInterRoom {
			continue
		}
		bt, err := r.boundaryTemp(w, externalTemp, temps)
		if err != nil {
			return FabricLoss{}, err
		}
		watts := w.HeatLossWatts(r.DesignTemp - bt)
		if w.Boundary.Kind == BoundaryRoom {
			loss.InterRoom += watts
		} else {
			loss.Walls += watts
		}
	}
	extDiff := r.DesignTemp - externalTemp
	for _, w := range r.Windows {
		loss.Windows += w.HeatLossWatts(extDiff)
	}
	for _, f := range r.Floors {
		loss.Floors += f.HeatLossWatts(extDiff)
	}
	fabric := loss.Walls + loss.Windows + loss.Floors
	loss.ThermalBridging = fabric * r.ThermalBridgingFactor
	loss.Total = fabric + loss.ThermalBridging
	return loss, nil
}

// VentilationHeatLossWatts is 0.33 × n × V × ΔT.
func (r *Room) VentilationHeatLossWatts(externalTemp float64) float64 {
	return AirHeatCapacity * r.AirChangeRate * r.Volume * (r.DesignTemp - externalTemp)
}

// VentilationHeatLossKWh is the annual ventilation loss via degree days.
func (r *Room) VentilationHeatLossKWh(degreeDays float64) float64 {
	return AirHeatCapacity * r.AirChangeRate * r.Volume * degreeDays * 24 / 1000
}

// Losses computes the room's full breakdown. Annual energy scales the total
// Watts by degree days per kelvin of external ΔT, applied uniformly to the
// whole total including any inter-room term; a room at the external
// temperature has no external drive and annualizes to zero.
func (r *Room) Losses(externalTemp, degreeDays float64, temps map[string]float64, includeInterRoom bool) (RoomLoss, error) {
	if err := r.Validate(); err != nil {
		return RoomLoss{}, err
	}
	fabric, err := r.FabricHeatLossWatts(externalTemp, temps, includeInterRoom)
	if err != nil {
		return RoomLoss{}, err
	}
	vent := r.VentilationHeatLossWatts(externalTemp)
	total := fabric.Total + vent
	if includeInterRoom {
		total += fabric.InterRoom
	}

	var annual float64
	if diff := r.DesignTemp - externalTemp; diff != 0 {
		annual = total * degreeDays * 24 / (1000 * diff)
	}

	return RoomLoss{
		Name:             r.Name,
		RoomType:         r.RoomType,
		DesignTemp:       r.DesignTemp,
		FabricWatts:      fabric.Total,
		InterRoomWatts:   fabric.InterRoom,
		VentilationWatts: vent,
		TotalWatts:       total,
		AnnualKWh:        annual,
	}, nil
}
