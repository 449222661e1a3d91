package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	building "Kelvin/internal/calc/building"
	"Kelvin/internal/heatloss"
	"github.com/phpdave11/gofpdf"
)

type Input struct {
	Project  string         `json:"project"`
	Author   string         `json:"author"`
	Title    string         `json:"title"`
	Notes    string         `json:"notes"`
	Building building.Input `json:"building"`
}

type Handler struct {
	Ref heatloss.ReferenceData
}

func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	var input Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if input.Title == "" {
		input.Title = "Heat Loss Report"
	}

	summary, err := building.Calculate(input.Building, h.Ref)
	if err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, heatloss.ErrUnknownPostcodeArea) {
			status = http.StatusNotFound
		}
		http.Error(w, err.Error(), status)
		return
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, input.Title)
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, fmt.Sprintf("Project: %s", input.Project))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Author: %s", input.Author))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Date: %s", time.Now().Format("2006-01-02")))
	pdf.Ln(6)
	if summary.PostcodeArea != "" {
		pdf.Cell(0, 6, fmt.Sprintf("Postcode area: %s", summary.PostcodeArea))
		pdf.Ln(6)
	}
	pdf.Cell(0, 6, fmt.Sprintf("Design external temperature: %.1f C", summary.ExternalTemp))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Degree days: %.0f", summary.DegreeDays))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 10)
	widths := []float64{45, 22, 24, 24, 24, 24, 26}
	headers := []string{"Room", "Temp (C)", "Fabric (W)", "Vent (W)", "Inter (W)", "Total (W)", "Annual (kWh)"}
	for i, hdr := range headers {
		pdf.CellFormat(widths[i], 7, hdr, "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)
	pdf.SetFont("Helvetica", "", 10)
	for _, room := range summary.Rooms {
		pdf.CellFormat(widths[0], 6, room.Name, "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[1], 6, fmt.Sprintf("%.1f", room.DesignTemp), "1", 0, "R", false, 0, "")
		pdf.CellFormat(widths[2], 6, fmt.Sprintf("%.0f", room.FabricWatts), "1", 0, "R", false, 0, "")
		pdf.CellFormat(widths[3], 6, fmt.Sprintf("%.0f", room.VentilationWatts), "1", 0, "R", false, 0, "")
		pdf.CellFormat(widths[4], 6, fmt.Sprintf("%.0f", room.InterRoomWatts), "1", 0, "R", false, 0, "")
		pdf.CellFormat(widths[5], 6, fmt.Sprintf("%.0f", room.TotalWatts), "1", 0, "R", false, 0, "")
		pdf.CellFormat(widths[6], 6, fmt.Sprintf("%.0f", room.AnnualKWh), "1", 0, "R", false, 0, "")
		pdf.Ln(-1)
	}
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(widths[0]+widths[1]+widths[2]+widths[3]+widths[4], 7, "Building total", "1", 0, "L", false, 0, "")
	pdf.CellFormat(widths[5], 7, fmt.Sprintf("%.0f", summary.TotalWatts), "1", 0, "R", false, 0, "")
	pdf.CellFormat(widths[6], 7, fmt.Sprintf("%.0f", summary.TotalAnnualKWh), "1", 0, "R", false, 0, "")
	pdf.Ln(10)

	if input.Notes != "" {
		pdf.SetFont("Helvetica", "", 11)
		pdf.MultiCell(0, 6, input.Notes, "", "L", false)
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=\"heatloss-report.pdf\"")
	if err := pdf.Output(w); err != nil {
		http.Error(w, "Report generation error", http.StatusInternalServerError)
		return
	}
}
