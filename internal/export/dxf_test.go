package export

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/yudhap/stowplan/internal/model"
)

func TestExportDXF_CreatesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "load.dxf")

	result := buildTestResult()
	if err := ExportDXF(path, result); err != nil {
		t.Fatalf("ExportDXF returned error: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("DXF file was not created: %v", err)
	}
	if info.Size() == 0 {
		t.Fatal("DXF file is empty")
	}

	// DXF is a text format; the layer names and labels appear verbatim
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read DXF back: %v", err)
	}
	content := string(data)

	for _, want := range []string{"CONTAINERS", "CARGO", "FRAGILE", "LABELS", "CONTAINER 1", "CONTAINER 2"} {
		if !strings.Contains(content, want) {
			t.Errorf("DXF output is missing %q", want)
		}
	}

	// Floor-level items large enough for a label are named in the drawing
	if !strings.Contains(content, "Kardus Besar") {
		t.Error("DXF output is missing the item label")
	}
}

func TestExportDXF_EmptyResult(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "empty.dxf")

	err := ExportDXF(path, model.PackResult{})
	if err == nil {
		t.Fatal("expected error for empty result, got nil")
	}
}

func TestExportDXF_SkipsLabelsAboveFloor(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "stacked.dxf")

	result := model.PackResult{
		Containers: []model.Container{
			{
				ID: "c1", Width: 100, Depth: 100, Height: 100, MaxWeight: 1000,
				Placements: []model.Placement{
					{
						Item: model.Item{ID: "i1", Name: "Bawah", DX: 50, DY: 50, DZ: 30, Weight: 10, Stackable: true, MaxStackWeight: 50},
						X:    0, Y: 0, Z: 0,
					},
					{
						Item: model.Item{ID: "i2", Name: "Atas", DX: 50, DY: 50, DZ: 30, Weight: 10},
						X:    0, Y: 0, Z: 30,
					},
				},
				Weight:     20,
				UsedVolume: 150000,
			},
		},
	}

	if err := ExportDXF(path, result); err != nil {
		t.Fatalf("ExportDXF returned error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read DXF back: %v", err)
	}
	content := string(data)

	if !strings.Contains(content, "Bawah") {
		t.Error("expected floor item label in DXF output")
	}
	if strings.Contains(content, "Atas") {
		t.Error("stacked item label should be omitted from the top view")
	}
}
