package refdata

import "testing"

func TestClimateLookup(t *testing.T) {
	tables := New()
	tests := []struct {
		area string
		temp float64
		dd   float64
	}{
		{"M", -3.1, 2275},
		{"m", -3.1, 2275},
		{" SW ", -2.0, 2033},
		{"AB", -4.2, 2668},
		{"ZE", -1.2, 2584},
	}
	for _, tt := range tests {
		t.Run(tt.area, func(t *testing.T) {
			temp, ok := tables.DesignExternalTemp(tt.area)
			if !ok || temp != tt.temp {
				t.Errorf("DesignExternalTemp(%q) = %v, %v; want %v, true", tt.area, temp, ok, tt.temp)
			}
			dd, ok := tables.DegreeDays(tt.area)
			if !ok || dd != tt.dd {
				t.Errorf("DegreeDays(%q) = %v, %v; want %v, true", tt.area, dd, ok, tt.dd)
			}
		})
	}

	if _, ok := tables.DesignExternalTemp("XX"); ok {
		t.Error("unknown postcode area must miss")
	}
}

func TestDefaultRoomTemp(t *testing.T) {
	tables := New()
	tests := []struct {
		roomType string
		want     float64
	}{
		{"Lounge", 21},
		{"Bedroom", 18},
		{"Bathroom", 22},
		{"Store", 15},
		{"Orangery", 21}, // untabulated types fall back to 21
	}
	for _, tt := range tests {
		t.Run(tt.roomType, func(t *testing.T) {
			if got := tables.DefaultRoomTemp(tt.roomType); got != tt.want {
				t.Errorf("DefaultRoomTemp(%q) = %v, want %v", tt.roomType, got, tt.want)
			}
		})
	}
}

func TestDefaultAirChangeRate(t *testing.T) {
	tables := New()
	tests := []struct {
		roomType string
		category string
		want     float64
	}{
		{"Lounge", "A", 1.5},
		{"Lounge", "B", 1.0},
		{"Lounge", "C", 0.5},
		{"Kitchen", "B", 1.5},
		{"Internal", "B", 0.0},
		{"Lounge", "", 1.0},    // unknown category falls back to B
		{"Orangery", "B", 1.0}, // unknown room type falls back to 1.0
	}
	for _, tt := range tests {
		t.Run(tt.roomType+"/"+tt.category, func(t *testing.T) {
			if got := tables.DefaultAirChangeRate(tt.roomType, tt.category); got != tt.want {
				t.Errorf("DefaultAirChangeRate(%q, %q) = %v, want %v", tt.roomType, tt.category, got, tt.want)
			}
		})
	}
}
