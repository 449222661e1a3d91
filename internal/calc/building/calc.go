package building

import (
	"fmt"

	"Kelvin/internal/heatloss"
)

// Input is the building record plus the calculation conditions. Climate may
// be given explicitly or resolved from the postcode area through the
// reference tables; explicit values win.
type Input struct {
	Name             string           `json:"name"`
	PostcodeArea     string           `json:"postcode_area"`
	BuildingCategory string           `json:"building_category"`
	ExternalTemp     *float64         `json:"external_temp"`
	DegreeDays       *float64         `json:"degree_days"`
	IncludeInterRoom bool             `json:"include_inter_room"`
	Rooms            []*heatloss.Room `json:"rooms"`
}

// Calculate assembles the building (rejecting duplicate room names) and runs
// the loss summary.
func Calculate(in Input, ref heatloss.ReferenceData) (heatloss.Summary, error) {
	b := &heatloss.Building{
		Name:             in.Name,
		PostcodeArea:     in.PostcodeArea,
		BuildingCategory: in.BuildingCategory,
	}
	for _, r := range in.Rooms {
		if err := b.AddRoom(r); err != nil {
			return heatloss.Summary{}, err
		}
	}

	ext, dd, err := resolveClimate(in, ref)
	if err != nil {
		return heatloss.Summary{}, err
	}
	return b.Summary(ext, dd, in.IncludeInterRoom)
}

func resolveClimate(in Input, ref heatloss.ReferenceData) (ext, dd float64, err error) {
	if in.ExternalTemp != nil && in.DegreeDays != nil {
		return *in.ExternalTemp, *in.DegreeDays, nil
	}
	if in.PostcodeArea == "" {
		return 0, 0, fmt.Errorf("external_temp and degree_days or a postcode_area required")
	}
	t, ok := ref.DesignExternalTemp(in.PostcodeArea)
	if !ok {
		return 0, 0, fmt.Errorf("%q: %w", in.PostcodeArea, heatloss.ErrUnknownPostcodeArea)
	}
	d, _ := ref.DegreeDays(in.PostcodeArea)
	if in.ExternalTemp != nil {
		t = *in.ExternalTemp
	}
	if in.DegreeDays != nil {
		d = *in.DegreeDays
	}
	return t, d, nil
}
