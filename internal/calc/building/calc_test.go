package building

import (
	"errors"
	"math"
	"testing"

	"Kelvin/internal/heatloss"
	"Kelvin/internal/refdata"
)

func testRoom(name string) *heatloss.Room {
	return &heatloss.Room{
		Name: name, DesignTemp: 21, Volume: 60, AirChangeRate: 1,
		Walls: []heatloss.Wall{heatloss.NewWall("North", 12, 0.28)},
	}
}

func TestCalculateResolvesClimateFromPostcode(t *testing.T) {
	in := Input{
		Name:         "House",
		PostcodeArea: "M",
		Rooms:        []*heatloss.Room{testRoom("Lounge")},
	}
	s, err := Calculate(in, refdata.New())
	if err != nil {
		t.Fatal(err)
	}
	if s.ExternalTemp != -3.1 || s.DegreeDays != 2275 {
		t.Errorf("climate = %v / %v, want -3.1 / 2275", s.ExternalTemp, s.DegreeDays)
	}
}

func TestCalculateExplicitClimateWins(t *testing.T) {
	ext, dd := -5.0, 2500.0
	in := Input{
		Name:         "House",
		PostcodeArea: "M",
		ExternalTemp: &ext,
		DegreeDays:   &dd,
		Rooms:        []*heatloss.Room{testRoom("Lounge")},
	}
	s, err := Calculate(in, refdata.New())
	if err != nil {
		t.Fatal(err)
	}
	if s.ExternalTemp != -5.0 || s.DegreeDays != 2500 {
		t.Errorf("climate = %v / %v, want explicit -5 / 2500", s.ExternalTemp, s.DegreeDays)
	}
}

func TestCalculateUnknownPostcode(t *testing.T) {
	in := Input{PostcodeArea: "XX", Rooms: []*heatloss.Room{testRoom("Lounge")}}
	_, err := Calculate(in, refdata.New())
	if !errors.Is(err, heatloss.ErrUnknownPostcodeArea) {
		t.Fatalf("err = %v, want ErrUnknownPostcodeArea", err)
	}
}

func TestCalculateNoClimate(t *testing.T) {
	in := Input{Rooms: []*heatloss.Room{testRoom("Lounge")}}
	if _, err := Calculate(in, refdata.New()); err == nil {
		t.Fatal("expected error without postcode or explicit climate")
	}
}

func TestCalculateDuplicateRooms(t *testing.T) {
	in := Input{
		PostcodeArea: "M",
		Rooms:        []*heatloss.Room{testRoom("Lounge"), testRoom("Lounge")},
	}
	_, err := Calculate(in, refdata.New())
	if !errors.Is(err, heatloss.ErrDuplicateRoomName) {
		t.Fatalf("err = %v, want ErrDuplicateRoomName", err)
	}
}

func TestCalculateInterRoomToggle(t *testing.T) {
	warm := testRoom("Warm")
	warm.Walls = append(warm.Walls, heatloss.Wall{
		Name: "Partition", Area: 10, UValue: 0.5, TemperatureFactor: 1,
		Boundary: heatloss.RoomBoundary("Cool"),
	})
	cool := testRoom("Cool")
	cool.DesignTemp = 18

	in := Input{PostcodeArea: "M", Rooms: []*heatloss.Room{warm, cool}}
	off, err := Calculate(in, refdata.New())
	if err != nil {
		t.Fatal(err)
	}
	in.IncludeInterRoom = true
	on, err := Calculate(in, refdata.New())
	if err != nil {
		t.Fatal(err)
	}

	if on.Rooms[0].InterRoomWatts <= 0 {
		t.Errorf("warm room inter-room = %v, want positive", on.Rooms[0].InterRoomWatts)
	}
	if off.Rooms[0].InterRoomWatts != 0 {
		t.Errorf("disabled inter-room = %v, want 0", off.Rooms[0].InterRoomWatts)
	}
	wantDiff := 10 * 0.5 * 3.0
	if math.Abs((on.Rooms[0].TotalWatts-off.Rooms[0].TotalWatts)-wantDiff) > 1e-9 {
		t.Errorf("warm room toggle delta = %v, want %v",
			on.Rooms[0].TotalWatts-off.Rooms[0].TotalWatts, wantDiff)
	}
}
