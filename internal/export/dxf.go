package export

import (
	"fmt"

	"github.com/yofu/dxf"
	"github.com/yofu/dxf/color"
	"github.com/yofu/dxf/drawing"
	"github.com/yofu/dxf/table"
	"github.com/yudhap/stowplan/internal/model"
)

// dxfContainerGap is the spacing between container outlines in the drawing, in cm.
const dxfContainerGap = 50.0

// ExportDXF writes a top-view load diagram as a DXF drawing. Containers are
// laid out side by side with their cargo footprints drawn to scale; fragile
// items are cross-marked on a separate layer so CAD viewers can toggle them.
func ExportDXF(path string, result model.PackResult) error {
	if len(result.Containers) == 0 {
		return fmt.Errorf("no containers to export")
	}

	d := dxf.NewDrawing()

	offsets := make([]float64, len(result.Containers))
	offsetX := 0.0
	for i, c := range result.Containers {
		offsets[i] = offsetX
		offsetX += c.Width + dxfContainerGap
	}

	// Container outlines
	if _, err := d.AddLayer("CONTAINERS", dxf.DefaultColor, dxf.DefaultLineType, true); err != nil {
		return err
	}
	for i, c := range result.Containers {
		if err := dxfRect(d, offsets[i], 0, c.Width, c.Depth); err != nil {
			return err
		}
	}

	// Cargo footprints
	if _, err := d.AddLayer("CARGO", color.Cyan, table.LT_CONTINUOUS, true); err != nil {
		return err
	}
	for i, c := range result.Containers {
		for _, p := range c.Placements {
			if err := dxfRect(d, offsets[i]+p.X, p.Y, p.Item.DX, p.Item.DY); err != nil {
				return err
			}
		}
	}

	// Fragile cross marks
	if _, err := d.AddLayer("FRAGILE", color.Red, table.LT_CONTINUOUS, true); err != nil {
		return err
	}
	for i, c := range result.Containers {
		for _, p := range c.Placements {
			if !p.Item.Fragile {
				continue
			}
			x, y := offsets[i]+p.X, p.Y
			if _, err := d.Line(x, y, 0, x+p.Item.DX, y+p.Item.DY, 0); err != nil {
				return err
			}
			if _, err := d.Line(x, y+p.Item.DY, 0, x+p.Item.DX, y, 0); err != nil {
				return err
			}
		}
	}

	// Labels
	if _, err := d.AddLayer("LABELS", color.Yellow, table.LT_CONTINUOUS, true); err != nil {
		return err
	}
	for i, c := range result.Containers {
		title := fmt.Sprintf("CONTAINER %d", i+1)
		if _, err := d.Text(title, offsets[i], c.Depth+10, 0, 15); err != nil {
			return err
		}
		for _, p := range c.Placements {
			// Stacked items share a footprint; labeling the floor level
			// keeps the text legible.
			if p.Z > 0 || p.Item.DX < 20 || p.Item.DY < 10 {
				continue
			}
			if _, err := d.Text(p.Item.Name, offsets[i]+p.X+2, p.Y+2, 0, 5); err != nil {
				return err
			}
		}
	}

	return d.SaveAs(path)
}

// dxfRect draws an axis-aligned rectangle as four lines at z=0.
func dxfRect(d *drawing.Drawing, x, y, w, h float64) error {
	corners := [4][2]float64{{x, y}, {x + w, y}, {x + w, y + h}, {x, y + h}}
	for i := range corners {
		next := corners[(i+1)%4]
		if _, err := d.Line(corners[i][0], corners[i][1], 0, next[0], next[1], 0); err != nil {
			return err
		}
	}
	return nil
}
