package heatloss

import "fmt"

// BoundaryKind is an integer enum for the far side of a wall.
type BoundaryKind int

const (
	BoundaryExternal BoundaryKind = iota
	BoundaryGround
	BoundaryUnheated
	BoundaryRoom
)

func (k BoundaryKind) String() string {
	switch k {
	case BoundaryGround:
		return "ground"
	case BoundaryUnheated:
		return "unheated"
	case BoundaryRoom:
		return "room"
	default:
		return "external"
	}
}

// Boundary identifies what a wall faces. For BoundaryRoom, Room holds the
// name of the adjacent room in the same building.
type Boundary struct {
	Kind BoundaryKind
	Room string
}

// ParseBoundary maps the serialized form onto a Boundary. The reserved words
// external/ground/unheated select their kind; anything else is taken as the
// name of an adjacent room.
func ParseBoundary(s string) Boundary {
	switch s {
	case "", "external":
		return Boundary{Kind: BoundaryExternal}
	case "ground":
		return Boundary{Kind: BoundaryGround}
	case "unheated":
		return Boundary{Kind: BoundaryUnheated}
	default:
		return Boundary{Kind: BoundaryRoom, Room: s}
	}
}

func RoomBoundary(name string) Boundary {
	return Boundary{Kind: BoundaryRoom, Room: name}
}

func (b Boundary) String() string {
	if b.Kind == BoundaryRoom {
		return b.Room
	}
	return b.Kind.String()
}

// Wall is an opaque fabric element. TemperatureFactor defaults to 1.0
// (external exposure); BoundaryTemp, when set, overrides the assumed
// temperature for ground and unheated boundaries.
type Wall struct {
	Name              string
	Area              float64 // m²
	UValue            float64 // W/m²K
	TemperatureFactor float64
	Boundary          Boundary
	BoundaryTemp      *float64 // °C
}

func NewWall(name string, area, uValue float64) Wall {
	return Wall{Name: name, Area: area, UValue: uValue, TemperatureFactor: 1.0}
}

func (w Wall) Validate() error {
	return validateElement(w.Name, w.Area, w.UValue, w.TemperatureFactor)
}

// HeatLossWatts is A × U × ΔT × f. A negative ΔT yields a negative loss,
// i.e. a heat gain; the sign is preserved.
func (w Wall) HeatLossWatts(tempDiff float64) float64 {
	return w.Area * w.UValue * tempDiff * w.TemperatureFactor
}

// HeatLossKWh is the annual loss via degree days: A × U × DD × 24/1000 × f.
func (w Wall) HeatLossKWh(degreeDays float64) float64 {
	return w.Area * w.UValue * degreeDays * 24 / 1000 * w.TemperatureFactor
}

// Window is a glazed element. Windows always face outside and carry no
// temperature factor.
type Window struct {
	Name   string
	Area   float64 // m²
	UValue float64 // W/m²K
}

func NewWindow(name string, area, uValue float64) Window {
	return Window{Name: name, Area: area, UValue: uValue}
}

func (w Window) Validate() error {
	return validateElement(w.Name, w.Area, w.UValue, 1.0)
}

func (w Window) HeatLossWatts(tempDiff float64) float64 {
	return w.Area * w.UValue * tempDiff
}

func (w Window) HeatLossKWh(degreeDays float64) float64 {
	return w.Area * w.UValue * degreeDays * 24 / 1000
}

// Floor is a floor element. TemperatureFactor defaults to 0.5 for ground
// contact.
type Floor struct {
	Name              string
	Area              float64 // m²
	UValue            float64 // W/m²K
	TemperatureFactor float64
}

func NewFloor(name string, area, uValue float64) Floor {
	return Floor{Name: name, Area: area, UValue: uValue, TemperatureFactor: 0.5}
}

func (f Floor) Validate() error {
	return validateElement(f.Name, f.Area, f.UValue, f.TemperatureFactor)
}

func (f Floor) HeatLossWatts(tempDiff float64) float64 {
	return f.Area * f.UValue * tempDiff * f.TemperatureFactor
}

func (f Floor) HeatLossKWh(degreeDays float64) float64 {
	return f.Area * f.UValue * degreeDays * 24 / 1000 * f.TemperatureFactor
}

func validateElement(name string, area, uValue, factor float64) error {
	if area < 0 {
		return fmt.Errorf("%q: %w", name, ErrNegativeArea)
	}
	if uValue < 0 {
		return fmt.Errorf("%q: %w", name, ErrNegativeUValue)
	}
	if factor < 0 || factor > 1 {
		return fmt.Errorf("%q: %w", name, ErrTemperatureFactorRange)
	}
	return nil
}
