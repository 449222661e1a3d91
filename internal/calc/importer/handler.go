package importer

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	building "Kelvin/internal/calc/building"
	"Kelvin/internal/heatloss"
	"github.com/xuri/excelize/v2"
)

type Handler struct {
	Ref heatloss.ReferenceData
}

type SurveyImportResult struct {
	RoomCount int              `json:"room_count"`
	Summary   heatloss.Summary `json:"summary"`
}

// Survey ingests a room survey workbook. One row per fabric element:
// room, room_type, design_temp, air_change_rate, volume,
// element, name, area, u_value, boundary, temperature_factor.
// Postcode area and category come from the form fields.
func (h *Handler) Survey(w http.ResponseWriter, r *http.Request) {
	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "File required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	f, err := excelize.OpenReader(file)
	if err != nil {
		http.Error(w, "Invalid file", http.StatusBadRequest)
		return
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil || len(rows) < 2 {
		http.Error(w, "Empty sheet", http.StatusBadRequest)
		return
	}

	category := r.FormValue("building_category")
	if category == "" {
		category = "B"
	}

	rooms := map[string]*heatloss.Room{}
	var order []string
	for i := 1; i < len(rows); i++ {
		row := rows[i]
		if len(row) < 9 || row[0] == "" {
			continue
		}
		room, ok := rooms[row[0]]
		if !ok {
			room, err = h.parseRoomCells(row, category)
			if err != nil {
				http.Error(w, fmt.Sprintf("row %d: %v", i+1, err), http.StatusBadRequest)
				return
			}
			rooms[row[0]] = room
			order = append(order, row[0])
		}
		if err := appendElement(room, row); err != nil {
			http.Error(w, fmt.Sprintf("row %d: %v", i+1, err), http.StatusBadRequest)
			return
		}
	}

	in := building.Input{
		Name:             r.FormValue("name"),
		PostcodeArea:     r.FormValue("postcode_area"),
		BuildingCategory: category,
		IncludeInterRoom: r.FormValue("include_inter_room") == "true",
	}
	for _, name := range order {
		in.Rooms = append(in.Rooms, rooms[name])
	}

	summary, err := building.Calculate(in, h.Ref)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(SurveyImportResult{RoomCount: len(in.Rooms), Summary: summary})
}

func (h *Handler) parseRoomCells(row []string, category string) (*heatloss.Room, error) {
	roomType := cell(row, 1)
	room := &heatloss.Room{Name: row[0], RoomType: roomType}

	if s := cell(row, 2); s != "" {
		t, err := toFloat(s)
		if err != nil {
			return nil, fmt.Errorf("design_temp: %w", err)
		}
		room.DesignTemp = t
	} else {
		room.DesignTemp = h.Ref.DefaultRoomTemp(roomType)
	}

	if s := cell(row, 3); s != "" {
		n, err := toFloat(s)
		if err != nil {
			return nil, fmt.Errorf("air_change_rate: %w", err)
		}
		room.AirChangeRate = n
	} else {
		room.AirChangeRate = h.Ref.DefaultAirChangeRate(roomType, category)
	}

	if s := cell(row, 4); s != "" {
		v, err := toFloat(s)
		if err != nil {
			return nil, fmt.Errorf("volume: %w", err)
		}
		room.Volume = v
	}
	return room, nil
}

func appendElement(room *heatloss.Room, row []string) error {
	area, err := toFloat(cell(row, 7))
	if err != nil {
		return fmt.Errorf("area: %w", err)
	}
	u, err := toFloat(cell(row, 8))
	if err != nil {
		return fmt.Errorf("u_value: %w", err)
	}
	name := cell(row, 6)

	switch kind := strings.ToLower(cell(row, 5)); kind {
	case "wall":
		wall := heatloss.NewWall(name, area, u)
		wall.Boundary = heatloss.ParseBoundary(cell(row, 9))
		if s := cell(row, 10); s != "" {
			tf, err := toFloat(s)
			if err != nil {
				return fmt.Errorf("temperature_factor: %w", err)
			}
			wall.TemperatureFactor = tf
		}
		room.Walls = append(room.Walls, wall)
	case "window":
		room.Windows = append(room.Windows, heatloss.NewWindow(name, area, u))
	case "floor":
		floor := heatloss.NewFloor(name, area, u)
		if s := cell(row, 10); s != "" {
			tf, err := toFloat(s)
			if err != nil {
				return fmt.Errorf("temperature_factor: %w", err)
			}
			floor.TemperatureFactor = tf
		}
		room.Floors = append(room.Floors, floor)
	default:
		return fmt.Errorf("unknown element kind %q", kind)
	}
	return nil
}

// Export writes the computed room losses back out as a workbook.
func (h *Handler) Export(w http.ResponseWriter, r *http.Request) {
	var input building.Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	summary, err := building.Calculate(input, h.Ref)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)

	headers := []string{"Room", "Design temp (C)", "Fabric (W)", "Inter-room (W)", "Ventilation (W)", "Total (W)", "Annual (kWh)"}
	for i, hdr := range headers {
		col, _ := excelize.ColumnNumberToName(i + 1)
		f.SetCellValue(sheet, col+"1", hdr)
	}
	for i, room := range summary.Rooms {
		rowN := i + 2
		f.SetCellValue(sheet, fmt.Sprintf("A%d", rowN), room.Name)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", rowN), room.DesignTemp)
		f.SetCellValue(sheet, fmt.Sprintf("C%d", rowN), room.FabricWatts)
		f.SetCellValue(sheet, fmt.Sprintf("D%d", rowN), room.InterRoomWatts)
		f.SetCellValue(sheet, fmt.Sprintf("E%d", rowN), room.VentilationWatts)
		f.SetCellValue(sheet, fmt.Sprintf("F%d", rowN), room.TotalWatts)
		f.SetCellValue(sheet, fmt.Sprintf("G%d", rowN), room.AnnualKWh)
	}
	totalRow := len(summary.Rooms) + 2
	f.SetCellValue(sheet, fmt.Sprintf("A%d", totalRow), "Total")
	f.SetCellValue(sheet, fmt.Sprintf("F%d", totalRow), summary.TotalWatts)
	f.SetCellValue(sheet, fmt.Sprintf("G%d", totalRow), summary.TotalAnnualKWh)

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="heatloss.xlsx"`)
	if err := f.Write(w); err != nil {
		http.Error(w, "Export failed", http.StatusInternalServerError)
	}
}

func cell(row []string, i int) string {
	if i < len(row) {
		return strings.TrimSpace(row[i])
	}
	return ""
}

func toFloat(s string) (float64, error) {
	var v float64
	_, err := fmt.Sscanf(s, "%f", &v)
	return v, err
}
