package batch

import (
	"fmt"

	radiator "Kelvin/internal/calc/radiator"
)

type RadiatorBatchInput struct {
	Items []radiator.Input `json:"items"`
}

type RadiatorBatchResult struct {
	Results []radiator.Result `json:"results"`
}

// CalculateRadiator resizes a whole survey's radiators in one call. Any
// invalid item fails the batch.
func CalculateRadiator(in RadiatorBatchInput) (RadiatorBatchResult, error) {
	if len(in.Items) == 0 {
		return RadiatorBatchResult{}, fmt.Errorf("no items")
	}
	out := RadiatorBatchResult{Results: make([]radiator.Result, 0, len(in.Items))}
	for i, item := range in.Items {
		res, err := radiator.Calculate(item)
		if err != nil {
			return RadiatorBatchResult{}, fmt.Errorf("item %d: %w", i, err)
		}
		out.Results = append(out.Results, res)
	}
	return out, nil
}
