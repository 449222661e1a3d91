package autodesign

import (
	"encoding/json"
	"errors"
	"net/http"

	"Kelvin/internal/heatloss"
)

type Handler struct {
	Ref heatloss.ReferenceData
}

func (h *Handler) Design(w http.ResponseWriter, r *http.Request) {
	var input DesignInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	res, err := Design(input, h.Ref)
	if err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, heatloss.ErrUnknownPostcodeArea) {
			status = http.StatusNotFound
		}
		http.Error(w, err.Error(), status)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(res)
}
