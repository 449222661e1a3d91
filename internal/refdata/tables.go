// Package refdata carries the CIBSE-derived lookup tables the calculator
// defaults from: degree days and design external temperature by UK postcode
// area, design room temperatures and natural ventilation rates by room type,
// and the BS EN 12831 floor U-value estimate.
package refdata

import "strings"

type climate struct {
	Temp       float64 // design external temperature, °C
	DegreeDays float64
	Location   string
}

// Tables implements the reference-data provider over the embedded tables.
type Tables struct{}

func New() Tables { return Tables{} }

func (Tables) DesignExternalTemp(postcodeArea string) (float64, bool) {
	c, ok := climateByPostcode[normalize(postcodeArea)]
	return c.Temp, ok
}

func (Tables) DegreeDays(postcodeArea string) (float64, bool) {
	c, ok := climateByPostcode[normalize(postcodeArea)]
	return c.DegreeDays, ok
}

// Location names the weather station region behind a postcode area.
func (Tables) Location(postcodeArea string) (string, bool) {
	c, ok := climateByPostcode[normalize(postcodeArea)]
	return c.Location, ok
}

// DefaultRoomTemp returns the design temperature for a room type, 21 °C when
// the type is not tabulated.
func (Tables) DefaultRoomTemp(roomType string) float64 {
	if t, ok := roomTemperatures[roomType]; ok {
		return t
	}
	return 21
}

// DefaultAirChangeRate returns the natural ventilation rate for a room type
// under building category A (leaky), B (standard) or C (tight). Unknown
// categories fall back to B, unknown room types to 1.0 ACH.
func (Tables) DefaultAirChangeRate(roomType, category string) float64 {
	rates, ok := ventilationRates[normalize(category)]
	if !ok {
		rates = ventilationRates["B"]
	}
	if r, ok := rates[roomType]; ok {
		return r
	}
	return 1.0
}

func normalize(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

// Post Code Degree Days sheet, CIBSE Guide A.
var climateByPostcode = map[string]climate{
	"AB": {-4.2, 2668, "NE Scotland (Dyce)"},
	"AL": {-2.0, 2033, "Thames Valley (Heathrow)"},
	"B":  {-3.3, 2265, "Severn Valley (Birmingham)"},
	"BA": {-2.5, 2025, "South Western (Yeovilton)"},
	"BB": {-3.1, 2317, "North Western (Squires Gate)"},
	"BD": {-3.6, 2252, "Pennines (Leeds)"},
	"BH": {-1.7, 1908, "South Western (Hurn)"},
	"BL": {-3.1, 2317, "North Western (Squires Gate)"},
	"BN": {-2.0, 1830, "South Eastern (Gatwick)"},
	"BR": {-2.0, 2033, "Thames Valley (Heathrow)"},
	"BS": {-2.5, 2025, "South Western (Yeovilton)"},
	"BT": {-3.5, 2414, "Northern Ireland (Aldergrove)"},
	"CA": {-3.2, 2378, "Borders (Carlisle)"},
	"CB": {-2.9, 2163, "East Anglia (Cambridge)"},
	"CF": {-2.5, 2058, "South Wales (Rhoose)"},
	"CH": {-2.6, 2176, "North Western (Hawarden)"},
	"CM": {-2.0, 2033, "Thames Valley (Heathrow)"},
	"CO": {-2.0, 2033, "Thames Valley (Heathrow)"},
	"CR": {-2.0, 2033, "Thames Valley (Heathrow)"},
	"CT": {-1.7, 1893, "South Eastern (Manston)"},
	"CV": {-3.3, 2265, "Severn Valley (Birmingham)"},
	"CW": {-2.6, 2176, "North Western (Hawarden)"},
	"DA": {-2.0, 2033, "Thames Valley (Heathrow)"},
	"DD": {-3.5, 2363, "East Scotland (Leuchars)"},
	"DE": {-3.3, 2265, "Severn Valley (Birmingham)"},
	"DG": {-3.3, 2401, "West Scotland (West Freugh)"},
	"DH": {-3.3, 2273, "Borders (Durham)"},
	"DL": {-3.3, 2273, "Borders (Durham)"},
	"DN": {-2.9, 2325, "East Pennines (Finningley)"},
	"DT": {-1.7, 1908, "South Western (Hurn)"},
	"DY": {-3.3, 2265, "Severn Valley (Birmingham)"},
	"E":  {-2.0, 2033, "Thames Valley (Heathrow)"},
	"EC": {-2.0, 2033, "Thames Valley (Heathrow)"},
	"EH": {-3.2, 2332, "East Scotland (Turnhouse)"},
	"EN": {-2.0, 2033, "Thames Valley (Heathrow)"},
	"EX": {-2.3, 1870, "South Western (Exeter)"},
	"FK": {-3.2, 2332, "East Scotland (Turnhouse)"},
	"FY": {-3.1, 2317, "North Western (Squires Gate)"},
	"G":  {-3.3, 2401, "West Scotland (West Freugh)"},
	"GL": {-2.8, 2123, "Severn Valley (Staverton)"},
	"GU": {-2.0, 1830, "South Eastern (Gatwick)"},
	"HA": {-2.0, 2033, "Thames Valley (Heathrow)"},
	"HD": {-3.6, 2252, "Pennines (Leeds)"},
	"HG": {-3.6, 2252, "Pennines (Leeds)"},
	"HP": {-2.4, 2059, "Midlands (Cranfield)"},
	"HR": {-2.9, 2168, "Wales (Shawbury)"},
	"HS": {-1.9, 2668, "NW Scotland (Stornoway)"},
	"HU": {-2.2, 2257, "East Pennines (Brough)"},
	"HX": {-3.6, 2252, "Pennines (Leeds)"},
	"IG": {-2.0, 2033, "Thames Valley (Heathrow)"},
	"IP": {-2.3, 2081, "East Anglia (Wattisham)"},
	"IV": {-4.2, 2668, "NE Scotland (Dyce)"},
	"KA": {-3.3, 2401, "West Scotland (West Freugh)"},
	"KT": {-2.0, 2033, "Thames Valley (Heathrow)"},
	"KW": {-3.6, 2588, "NE Scotland (Wick)"},
	"KY": {-3.5, 2363, "East Scotland (Leuchars)"},
	"L":  {-2.6, 2176, "North Western (Hawarden)"},
	"LA": {-3.1, 2317, "North Western (Squires Gate)"},
	"LD": {-2.9, 2168, "Wales (Shawbury)"},
	"LE": {-3.3, 2265, "Severn Valley (Birmingham)"},
	"LL": {-2.6, 2271, "North Wales (Valley)"},
	"LN": {-2.7, 2255, "East Pennines (Cranwell)"},
	"LS": {-3.6, 2252, "Pennines (Leeds)"},
	"LU": {-2.4, 2059, "Midlands (Cranfield)"},
	"M":  {-3.1, 2275, "North Western (Ringway)"},
	"ME": {-2.0, 2033, "Thames Valley (Heathrow)"},
	"MK": {-2.4, 2059, "Midlands (Cranfield)"},
	"ML": {-3.2, 2332, "East Scotland (Turnhouse)"},
	"N":  {-2.0, 2033, "Thames Valley (Heathrow)"},
	"NE": {-3.3, 2273, "Borders (Durham)"},
	"NG": {-2.9, 2217, "East Midlands (Watnall)"},
	"NN": {-2.4, 2059, "Midlands (Cranfield)"},
	"NP": {-2.5, 2058, "South Wales (Rhoose)"},
	"NR": {-2.7, 2174, "East Anglia (Norwich)"},
	"NW": {-2.0, 2033, "Thames Valley (Heathrow)"},
	"OL": {-3.1, 2275, "North Western (Ringway)"},
	"OX": {-2.8, 2022, "Thames Valley (Benson)"},
	"PA": {-3.3, 2401, "West Scotland (West Freugh)"},
	"PE": {-2.7, 2255, "East Pennines (Cranwell)"},
	"PH": {-3.5, 2363, "East Scotland (Leuchars)"},
	"PL": {-2.2, 1731, "South Western (Plymouth)"},
	"PO": {-1.8, 1909, "South Coast (Thorney Island)"},
	"PR": {-3.1, 2317, "North Western (Squires Gate)"},
	"RG": {-2.0, 2033, "Thames Valley (Heathrow)"},
	"RH": {-2.0, 1830, "South Eastern (Gatwick)"},
	"RM": {-2.0, 2033, "Thames Valley (Heathrow)"},
	"S":  {-3.2, 2260, "Pennines (Sheffield)"},
	"SA": {-2.3, 1969, "South Wales (Aberporth)"},
	"SE": {-2.0, 2033, "Thames Valley (Heathrow)"},
	"SG": {-2.4, 2059, "Midlands (Cranfield)"},
	"SK": {-3.1, 2275, "North Western (Ringway)"},
	"SL": {-2.0, 2033, "Thames Valley (Heathrow)"},
	"SM": {-2.0, 2033, "Thames Valley (Heathrow)"},
	"SN": {-2.8, 2123, "Severn Valley (Staverton)"},
	"SO": {-1.8, 1909, "South Coast (Thorney Island)"},
	"SP": {-2.8, 2022, "Thames Valley (Benson)"},
	"SR": {-3.3, 2273, "Borders (Durham)"},
	"SS": {-2.0, 2033, "Thames Valley (Heathrow)"},
	"ST": {-3.1, 2275, "North Western (Ringway)"},
	"SW": {-2.0, 2033, "Thames Valley (Heathrow)"},
	"SY": {-2.9, 2168, "Wales (Shawbury)"},
	"TA": {-2.5, 2025, "South Western (Yeovilton)"},
	"TD": {-3.2, 2378, "Borders (Carlisle)"},
	"TF": {-2.9, 2168, "Wales (Shawbury)"},
	"TN": {-2.0, 1830, "South Eastern (Gatwick)"},
	"TQ": {-2.3, 1870, "South Western (Exeter)"},
	"TR": {-1.6, 1608, "South Western (Camborne)"},
	"TS": {-3.3, 2273, "Borders (Durham)"},
	"TW": {-2.0, 2033, "Thames Valley (Heathrow)"},
	"UB": {-2.0, 2033, "Thames Valley (Heathrow)"},
	"W":  {-2.0, 2033, "Thames Valley (Heathrow)"},
	"WA": {-2.6, 2176, "North Western (Hawarden)"},
	"WC": {-2.0, 2033, "Thames Valley (Heathrow)"},
	"WD": {-2.0, 2033, "Thames Valley (Heathrow)"},
	"WF": {-3.6, 2252, "Pennines (Leeds)"},
	"WN": {-3.1, 2317, "North Western (Squires Gate)"},
	"WR": {-3.3, 2265, "Severn Valley (Birmingham)"},
	"WS": {-3.3, 2265, "Severn Valley (Birmingham)"},
	"WV": {-3.3, 2265, "Severn Valley (Birmingham)"},
	"YO": {-3.6, 2252, "Pennines (Leeds)"},
	"ZE": {-1.2, 2584, "Shetland (Lerwick)"},
}

// Design room temperatures, BS EN 12831 / MCS heat pump calculator v1.10.
var roomTemperatures = map[string]float64{
	"Bath":          22,
	"Bathroom":      22,
	"Bed & Ensuite": 22,
	"Bed/Study":     18,
	"Bedroom":       18,
	"Bedsitting":    21,
	"Breakfast":     21,
	"Cloaks/WC":     18,
	"Conservatory":  18,
	"Dining":        21,
	"Dressing":      18,
	"En Suite":      22,
	"Family":        21,
	"Games":         18,
	"Hall":          18,
	"Internal":      18,
	"Kitchen":       18,
	"Landing":       18,
	"Living":        21,
	"Lounge":        21,
	"Shower":        22,
	"Store":         15,
	"Study":         18,
	"Toilet":        18,
	"Utility":       18,
	"WC":            18,
}

// Natural ventilation rates (ACH) by building category and room type.
var ventilationRates = map[string]map[string]float64{
	"A": { // older, leakier buildings
		"Bath": 3.0, "Bathroom": 3.0, "Bed & Ensuite": 2.0, "Bed/Study": 1.5,
		"Bedroom": 1.0, "Bedsitting": 1.5, "Breakfast": 1.5, "Cloaks/WC": 2.0,
		"Dining": 1.5, "Dressing": 1.5, "Family": 2.0, "Games": 1.5,
		"Hall": 2.0, "Internal": 0.0, "Kitchen": 2.0, "Landing": 2.0,
		"Living": 1.5, "Lounge": 1.5, "Shower": 3.0, "Store": 1.0,
		"Study": 1.5, "Toilet": 3.0, "Utility": 3.0,
	},
	"B": { // standard buildings
		"Bath": 1.5, "Bathroom": 1.5, "Bed & Ensuite": 1.5, "Bed/Study": 1.5,
		"Bedroom": 1.0, "Bedsitting": 1.0, "Breakfast": 1.0, "Cloaks/WC": 1.5,
		"Dining": 1.0, "Dressing": 1.0, "Family": 1.5, "Games": 1.0,
		"Hall": 1.0, "Internal": 0.0, "Kitchen": 1.5, "Landing": 1.0,
		"Living": 1.0, "Lounge": 1.0, "Shower": 1.5, "Store": 0.5,
		"Study": 1.5, "Toilet": 1.5, "Utility": 2.0,
	},
	"C": { // tight, recent buildings
		"Bath": 1.5, "Bathroom": 1.5, "Bed & Ensuite": 1.0, "Bed/Study": 0.5,
		"Bedroom": 0.5, "Bedsitting": 0.5, "Breakfast": 0.5, "Cloaks/WC": 1.5,
		"Dining": 0.5, "Dressing": 0.5, "Family": 1.5, "Games": 0.5,
		"Hall": 0.5, "Internal": 0.0, "Kitchen": 1.5, "Landing": 0.5,
		"Living": 0.5, "Lounge": 0.5, "Shower": 1.5, "Store": 0.5,
		"Study": 0.5, "Toilet": 1.5, "Utility": 0.5,
	},
}
