package export

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"
	"github.com/yudhap/stowplan/internal/model"
)

func TestExportManifestCSV_CreatesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "manifest.csv")

	result := buildTestResult()
	if err := ExportManifestCSV(path, result); err != nil {
		t.Fatalf("ExportManifestCSV returned error: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("manifest file was not created: %v", err)
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("failed to read manifest back: %v", err)
	}

	// Header plus one row per placement
	if len(rows) != 5 {
		t.Fatalf("expected 5 rows, got %d", len(rows))
	}
	if rows[0][0] != "Container" || rows[0][1] != "Item" {
		t.Errorf("unexpected header: %v", rows[0])
	}

	first := rows[1]
	if first[0] != "1" {
		t.Errorf("expected container 1, got %q", first[0])
	}
	if first[1] != "Kardus Besar" {
		t.Errorf("expected item 'Kardus Besar', got %q", first[1])
	}
	if first[3] != "60" || first[4] != "80" || first[5] != "60" {
		t.Errorf("unexpected dimensions: %v", first[3:6])
	}
	if first[11] != "yes" {
		t.Errorf("expected stackable 'yes', got %q", first[11])
	}
	if first[12] != "no" {
		t.Errorf("expected fragile 'no', got %q", first[12])
	}

	// Third row is the fragile TV
	tv := rows[3]
	if tv[1] != "TV 32inch" {
		t.Errorf("expected 'TV 32inch', got %q", tv[1])
	}
	if tv[12] != "yes" {
		t.Errorf("expected fragile 'yes' for TV, got %q", tv[12])
	}

	// Fourth row is in the second container
	last := rows[4]
	if last[0] != "2" {
		t.Errorf("expected container 2, got %q", last[0])
	}
}

func TestExportManifestCSV_EmptyResult(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "empty.csv")

	err := ExportManifestCSV(path, model.PackResult{})
	if err == nil {
		t.Fatal("expected error for empty result, got nil")
	}
}

func TestExportManifestXLSX_CreatesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "manifest.xlsx")

	result := buildTestResult()
	if err := ExportManifestXLSX(path, result); err != nil {
		t.Fatalf("ExportManifestXLSX returned error: %v", err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("failed to open workbook back: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows("Manifest")
	if err != nil {
		t.Fatalf("failed to read Manifest sheet: %v", err)
	}
	if len(rows) != 5 {
		t.Fatalf("expected 5 manifest rows, got %d", len(rows))
	}
	if rows[0][0] != "Container" {
		t.Errorf("unexpected header cell: %q", rows[0][0])
	}
	if rows[1][1] != "Kardus Besar" {
		t.Errorf("expected 'Kardus Besar', got %q", rows[1][1])
	}
	if rows[1][3] != "60" {
		t.Errorf("expected length 60, got %q", rows[1][3])
	}

	summary, err := f.GetRows("Summary")
	if err != nil {
		t.Fatalf("failed to read Summary sheet: %v", err)
	}
	if len(summary) == 0 {
		t.Fatal("Summary sheet is empty")
	}
	if summary[0][0] != "Containers Used" || summary[0][1] != "2" {
		t.Errorf("unexpected first summary row: %v", summary[0])
	}
}

func TestExportManifestXLSX_WithUnplaced(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "unplaced.xlsx")

	result := buildTestResult()
	result.Unplaced = []model.UnplacedItem{
		{
			Item:   model.Item{ID: "u1", Name: "Lemari Besar", DX: 250, DY: 120, DZ: 200, Weight: 90},
			Reason: model.ReasonOversized,
		},
	}

	if err := ExportManifestXLSX(path, result); err != nil {
		t.Fatalf("ExportManifestXLSX returned error: %v", err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("failed to open workbook back: %v", err)
	}
	defer f.Close()

	summary, err := f.GetRows("Summary")
	if err != nil {
		t.Fatalf("failed to read Summary sheet: %v", err)
	}

	foundHeader := false
	foundItem := false
	for _, row := range summary {
		if len(row) == 0 {
			continue
		}
		if row[0] == "Unplaced Item" {
			foundHeader = true
		}
		if row[0] == "Lemari Besar" {
			foundItem = true
			if len(row) < 6 || row[5] != "Oversized" {
				t.Errorf("expected reason 'Oversized' in row %v", row)
			}
		}
	}
	if !foundHeader {
		t.Error("Summary sheet is missing the unplaced section header")
	}
	if !foundItem {
		t.Error("Summary sheet is missing the unplaced item row")
	}
}

func TestExportManifestXLSX_EmptyResult(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "empty.xlsx")

	err := ExportManifestXLSX(path, model.PackResult{})
	if err == nil {
		t.Fatal("expected error for empty result, got nil")
	}
}

func TestNum(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{60, "60"},
		{589.8, "589.8"},
		{235.2, "235.2"},
		{0, "0"},
	}
	for _, tt := range tests {
		if got := num(tt.in); got != tt.want {
			t.Errorf("num(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
