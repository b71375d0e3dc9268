package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/xuri/excelize/v2"
	"github.com/yudhap/stowplan/internal/model"
)

// manifestHeader is the column set shared by the CSV and Excel manifests.
var manifestHeader = []string{
	"Container", "Item", "Item ID",
	"Length (cm)", "Width (cm)", "Height (cm)",
	"Weight (kg)", "Volume (cm3)",
	"X (cm)", "Y (cm)", "Z (cm)",
	"Stackable", "Fragile",
}

// ExportManifestCSV writes a loading manifest as CSV, one row per placed
// item with its assigned container and position.
func ExportManifestCSV(path string, result model.PackResult) error {
	if len(result.Containers) == 0 {
		return fmt.Errorf("no containers to export")
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create manifest: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(manifestHeader); err != nil {
		return err
	}

	for containerIdx, c := range result.Containers {
		for _, p := range c.Placements {
			row := []string{
				strconv.Itoa(containerIdx + 1),
				p.Item.Name,
				p.Item.ID,
				num(p.Item.DX), num(p.Item.DY), num(p.Item.DZ),
				num(p.Item.Weight), num(p.Item.Volume()),
				num(p.X), num(p.Y), num(p.Z),
				yesNo(p.Item.Stackable), yesNo(p.Item.Fragile),
			}
			if err := w.Write(row); err != nil {
				return err
			}
		}
	}

	w.Flush()
	return w.Error()
}

// ExportManifestXLSX writes a loading manifest as an Excel workbook with a
// Manifest sheet (one row per placed item) and a Summary sheet with overall
// and per-container statistics.
func ExportManifestXLSX(path string, result model.PackResult) error {
	if len(result.Containers) == 0 {
		return fmt.Errorf("no containers to export")
	}

	f := excelize.NewFile()
	defer f.Close()

	const manifestSheet = "Manifest"
	if err := f.SetSheetName(f.GetSheetName(0), manifestSheet); err != nil {
		return err
	}

	header := make([]interface{}, len(manifestHeader))
	for i, h := range manifestHeader {
		header[i] = h
	}
	if err := setRow(f, manifestSheet, 1, header); err != nil {
		return err
	}

	rowNum := 2
	for containerIdx, c := range result.Containers {
		for _, p := range c.Placements {
			values := []interface{}{
				containerIdx + 1,
				p.Item.Name,
				p.Item.ID,
				p.Item.DX, p.Item.DY, p.Item.DZ,
				p.Item.Weight, p.Item.Volume(),
				p.X, p.Y, p.Z,
				yesNo(p.Item.Stackable), yesNo(p.Item.Fragile),
			}
			if err := setRow(f, manifestSheet, rowNum, values); err != nil {
				return err
			}
			rowNum++
		}
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}
	lastHeaderCell, err := excelize.CoordinatesToCellName(len(manifestHeader), 1)
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(manifestSheet, "A1", lastHeaderCell, bold); err != nil {
		return err
	}
	if err := f.SetColWidth(manifestSheet, "A", "M", 13); err != nil {
		return err
	}
	if err := f.SetColWidth(manifestSheet, "B", "B", 24); err != nil {
		return err
	}

	if err := writeSummarySheet(f, result, bold); err != nil {
		return err
	}

	f.SetActiveSheet(0)
	return f.SaveAs(path)
}

// writeSummarySheet adds the Summary sheet with overall statistics, a
// per-container breakdown, and any unplaced items.
func writeSummarySheet(f *excelize.File, result model.PackResult, boldStyle int) error {
	const sheet = "Summary"
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}

	rows := [][]interface{}{
		{"Containers Used", len(result.Containers)},
		{"Items Placed", result.PlacedCount()},
		{"Total Weight (kg)", result.TotalWeight()},
		{"Volume Efficiency (%)", result.TotalEfficiency()},
		{"Unplaced Items", len(result.Unplaced)},
		{"Run Halted", yesNo(result.Halted)},
		{},
		{"Container", "ID", "Items", "Weight (kg)", "Weight %", "Volume %"},
	}

	breakdownHeaderRow := len(rows)
	for i, c := range result.Containers {
		rows = append(rows, []interface{}{
			i + 1, c.ID, len(c.Placements), c.Weight, c.WeightUtilization(), c.VolumeEfficiency(),
		})
	}

	unplacedHeaderRow := 0
	if len(result.Unplaced) > 0 {
		rows = append(rows, []interface{}{})
		rows = append(rows, []interface{}{"Unplaced Item", "Length (cm)", "Width (cm)", "Height (cm)", "Weight (kg)", "Reason"})
		unplacedHeaderRow = len(rows)
		for _, u := range result.Unplaced {
			rows = append(rows, []interface{}{
				u.Item.Name, u.Item.DX, u.Item.DY, u.Item.DZ, u.Item.Weight, u.Reason.String(),
			})
		}
	}

	for i, row := range rows {
		if err := setRow(f, sheet, i+1, row); err != nil {
			return err
		}
	}

	if err := f.SetCellStyle(sheet, "A"+strconv.Itoa(breakdownHeaderRow), "F"+strconv.Itoa(breakdownHeaderRow), boldStyle); err != nil {
		return err
	}
	if unplacedHeaderRow > 0 {
		if err := f.SetCellStyle(sheet, "A"+strconv.Itoa(unplacedHeaderRow), "F"+strconv.Itoa(unplacedHeaderRow), boldStyle); err != nil {
			return err
		}
	}

	return f.SetColWidth(sheet, "A", "F", 18)
}

// setRow writes one row of values starting at column A.
func setRow(f *excelize.File, sheet string, row int, values []interface{}) error {
	for i, v := range values {
		cell, err := excelize.CoordinatesToCellName(i+1, row)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, v); err != nil {
			return err
		}
	}
	return nil
}

// num formats a float without trailing zeros for CSV output.
func num(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
