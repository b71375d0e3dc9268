// Package export provides functionality for exporting container load plans
// to various file formats.
package export

import (
	"fmt"
	"math"
	"sort"

	"github.com/go-pdf/fpdf"
	"github.com/yudhap/stowplan/internal/model"
)

// itemColor represents an RGB color for a placed item.
type itemColor struct {
	R, G, B int
}

// itemColors is the palette cycled through per cargo spec.
var itemColors = []itemColor{
	{R: 76, G: 175, B: 80},  // green
	{R: 33, G: 150, B: 243}, // blue
	{R: 255, G: 152, B: 0},  // orange
	{R: 156, G: 39, B: 176}, // purple
	{R: 0, G: 188, B: 212},  // cyan
	{R: 244, G: 67, B: 54},  // red
	{R: 255, G: 235, B: 59}, // yellow
	{R: 121, G: 85, B: 72},  // brown
}

// Page layout constants (A4 landscape in mm).
const (
	pageWidth    = 297.0
	pageHeight   = 210.0
	marginLeft   = 15.0
	marginRight  = 15.0
	marginTop    = 15.0
	marginBottom = 15.0
	headerHeight = 12.0
	legendHeight = 22.0
	viewGap      = 8.0
	drawAreaTop  = marginTop + headerHeight + 5.0
)

// viewRect is an item's outline within one projection plane.
type viewRect struct {
	x, y, w, h float64
}

// projection describes one orthographic view of a container.
type projection struct {
	caption  string
	planeW   float64
	planeH   float64
	vertical bool // plane height is the z axis, drawn floor-down
	rectOf   func(p model.Placement) viewRect
}

// ExportPDF generates a PDF document containing the load plan. Each container
// is rendered on its own page with top, door, and side projection views,
// followed by a summary page with overall statistics.
func ExportPDF(path string, result model.PackResult, settings model.PackSettings) error {
	if len(result.Containers) == 0 {
		return fmt.Errorf("no containers to export")
	}

	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, marginBottom)

	// Render each container on its own page
	for i, c := range result.Containers {
		pdf.AddPage()
		renderContainerPage(pdf, c, i+1)
	}

	// Summary page
	pdf.AddPage()
	renderSummaryPage(pdf, result, settings)

	return pdf.OutputFileAndClose(path)
}

// renderContainerPage draws one container's load on the current PDF page.
func renderContainerPage(pdf *fpdf.Fpdf, c model.Container, num int) {
	// Title
	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetXY(marginLeft, marginTop)
	title := fmt.Sprintf("Container %d: %.0f x %.0f x %.0f cm", num, c.Width, c.Depth, c.Height)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, headerHeight, title, "", 0, "L", false, 0, "")

	// Stats line
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetXY(marginLeft, marginTop+headerHeight)
	stats := fmt.Sprintf("Items: %d | Weight: %.1f / %.0f kg (%.1f%%) | Volume efficiency: %.1f%%",
		len(c.Placements), c.Weight, c.MaxWeight, c.WeightUtilization(), c.VolumeEfficiency())
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 5, stats, "", 0, "L", false, 0, "")

	colorIdx := colorIndexBySpec(c.Placements)

	views := []projection{
		{
			caption: "Top view",
			planeW:  c.Width,
			planeH:  c.Depth,
			rectOf: func(p model.Placement) viewRect {
				return viewRect{p.X, p.Y, p.Item.DX, p.Item.DY}
			},
		},
		{
			caption:  "Door view",
			planeW:   c.Width,
			planeH:   c.Height,
			vertical: true,
			rectOf: func(p model.Placement) viewRect {
				return viewRect{p.X, p.Z, p.Item.DX, p.Item.DZ}
			},
		},
		{
			caption:  "Side view",
			planeW:   c.Depth,
			planeH:   c.Height,
			vertical: true,
			rectOf: func(p model.Placement) viewRect {
				return viewRect{p.Y, p.Z, p.Item.DY, p.Item.DZ}
			},
		},
	}

	// Painter order per view so nearer items cover farther ones.
	ordered := [][]model.Placement{
		paintOrder(c.Placements, func(a, b model.Placement) bool { return a.Z < b.Z }),
		paintOrder(c.Placements, func(a, b model.Placement) bool { return a.Y < b.Y }),
		paintOrder(c.Placements, func(a, b model.Placement) bool { return a.X < b.X }),
	}

	drawWidth := pageWidth - marginLeft - marginRight
	areaW := (drawWidth - 2*viewGap) / 3
	areaH := pageHeight - drawAreaTop - marginBottom - legendHeight - 6

	for i, view := range views {
		areaX := marginLeft + float64(i)*(areaW+viewGap)
		renderProjection(pdf, view, ordered[i], colorIdx, areaX, drawAreaTop, areaW, areaH)
	}

	// Cargo legend at bottom of page
	drawCargoLegend(pdf, c.Placements, colorIdx, drawAreaTop+areaH+8)
}

// renderProjection draws a single orthographic view within the given area.
func renderProjection(pdf *fpdf.Fpdf, view projection, placements []model.Placement, colorIdx map[string]int, areaX, areaY, areaW, areaH float64) {
	scale := math.Min(areaW/view.planeW, areaH/view.planeH)
	canvasW := view.planeW * scale
	canvasH := view.planeH * scale

	// Center horizontally within the view slot
	offsetX := areaX + (areaW-canvasW)/2
	offsetY := areaY

	// Container background
	pdf.SetFillColor(225, 225, 225)
	pdf.SetDrawColor(100, 100, 100)
	pdf.SetLineWidth(0.5)
	pdf.Rect(offsetX, offsetY, canvasW, canvasH, "FD")

	for _, p := range placements {
		col := itemColors[colorIdx[specKey(p.Item)]%len(itemColors)]
		r := view.rectOf(p)

		pw := r.w * scale
		ph := r.h * scale
		px := offsetX + r.x*scale
		py := offsetY + r.y*scale
		if view.vertical {
			// Floor at the bottom of the view
			py = offsetY + (view.planeH-(r.y+r.h))*scale
		}

		pdf.SetFillColor(col.R, col.G, col.B)
		if p.Item.Fragile {
			pdf.SetDrawColor(200, 0, 0)
			pdf.SetLineWidth(0.5)
		} else {
			pdf.SetDrawColor(30, 30, 30)
			pdf.SetLineWidth(0.2)
		}
		pdf.Rect(px, py, pw, ph, "FD")

		// Item label (only if rectangle is large enough)
		if pw > 15 && ph > 8 {
			pdf.SetFont("Helvetica", "", labelFontSize(pw, ph))
			pdf.SetTextColor(0, 0, 0)

			label := p.Item.Name
			labelW := pdf.GetStringWidth(label)
			if labelW < pw-2 {
				pdf.SetXY(px+(pw-labelW)/2, py+ph/2-2)
				pdf.CellFormat(labelW, 4, label, "", 0, "C", false, 0, "")
			}
		}
	}

	// Caption with plane dimensions below the view
	pdf.SetFont("Helvetica", "", 8)
	pdf.SetTextColor(80, 80, 80)
	caption := fmt.Sprintf("%s (%.0f x %.0f cm)", view.caption, view.planeW, view.planeH)
	capW := pdf.GetStringWidth(caption)
	pdf.SetXY(offsetX+(canvasW-capW)/2, offsetY+canvasH+1)
	pdf.CellFormat(capW, 4, caption, "", 0, "C", false, 0, "")
	pdf.SetTextColor(0, 0, 0)
}

// paintOrder returns the placements sorted for back-to-front drawing.
func paintOrder(placements []model.Placement, less func(a, b model.Placement) bool) []model.Placement {
	ordered := make([]model.Placement, len(placements))
	copy(ordered, placements)
	sort.SliceStable(ordered, func(i, j int) bool { return less(ordered[i], ordered[j]) })
	return ordered
}

// specKey groups units of the same cargo spec for coloring and the legend.
func specKey(it model.Item) string {
	if it.SpecID != "" {
		return it.SpecID
	}
	return it.ID
}

// colorIndexBySpec assigns palette slots in order of first appearance so all
// units of one spec share a color across the three views and the legend.
func colorIndexBySpec(placements []model.Placement) map[string]int {
	idx := map[string]int{}
	for _, p := range placements {
		key := specKey(p.Item)
		if _, ok := idx[key]; !ok {
			idx[key] = len(idx)
		}
	}
	return idx
}

// drawCargoLegend renders a compact legend of the loaded cargo at the bottom
// of the container page, one entry per spec with a unit count.
func drawCargoLegend(pdf *fpdf.Fpdf, placements []model.Placement, colorIdx map[string]int, startY float64) {
	if len(placements) == 0 {
		return
	}

	type legendEntry struct {
		label string
		color itemColor
	}

	counts := map[string]int{}
	for _, p := range placements {
		counts[specKey(p.Item)]++
	}

	var entries []legendEntry
	seen := map[string]bool{}
	for _, p := range placements {
		key := specKey(p.Item)
		if seen[key] {
			continue
		}
		seen[key] = true

		label := fmt.Sprintf("%s %.0fx%.0fx%.0f (x%d)", p.Item.Name, p.Item.DX, p.Item.DY, p.Item.DZ, counts[key])
		if p.Item.Fragile {
			label += " FRAGILE"
		}
		entries = append(entries, legendEntry{
			label: label,
			color: itemColors[colorIdx[key]%len(itemColors)],
		})
	}

	pdf.SetFont("Helvetica", "B", 8)
	pdf.SetTextColor(0, 0, 0)
	pdf.SetXY(marginLeft, startY)
	pdf.CellFormat(30, 4, "Cargo loaded:", "", 0, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 7)
	xPos := marginLeft + 32
	maxX := pageWidth - marginRight

	for _, e := range entries {
		labelW := pdf.GetStringWidth(e.label) + 6

		// Wrap to next line if needed
		if xPos+labelW > maxX {
			startY += 5
			xPos = marginLeft
		}

		// Color swatch
		pdf.SetFillColor(e.color.R, e.color.G, e.color.B)
		pdf.Rect(xPos, startY+0.5, 3, 3, "F")

		// Label text
		pdf.SetXY(xPos+4, startY)
		pdf.CellFormat(labelW-4, 4, e.label, "", 0, "L", false, 0, "")

		xPos += labelW + 2
	}
}

// renderSummaryPage draws the final summary page with overall statistics.
func renderSummaryPage(pdf *fpdf.Fpdf, result model.PackResult, settings model.PackSettings) {
	// Title
	pdf.SetFont("Helvetica", "B", 16)
	pdf.SetXY(marginLeft, marginTop)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 10, "Load Plan Summary", "", 0, "L", false, 0, "")

	// Separator line
	pdf.SetDrawColor(0, 0, 0)
	pdf.SetLineWidth(0.5)
	pdf.Line(marginLeft, marginTop+12, pageWidth-marginRight, marginTop+12)

	y := marginTop + 18

	// Overall statistics
	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetXY(marginLeft, y)
	pdf.CellFormat(100, 7, "Overall Statistics", "", 0, "L", false, 0, "")
	y += 9

	summaryItems := []struct {
		label string
		value string
	}{
		{"Containers Used", fmt.Sprintf("%d", len(result.Containers))},
		{"Items Placed", fmt.Sprintf("%d", result.PlacedCount())},
		{"Total Weight", fmt.Sprintf("%.1f kg", result.TotalWeight())},
		{"Volume Efficiency", fmt.Sprintf("%.1f%%", result.TotalEfficiency())},
		{"Unplaced Items", fmt.Sprintf("%d", len(result.Unplaced))},
	}

	pdf.SetFont("Helvetica", "", 10)
	for _, item := range summaryItems {
		pdf.SetXY(marginLeft+5, y)
		pdf.CellFormat(60, 6, item.label+":", "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(40, 6, item.value, "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		y += 7
	}

	if result.Halted {
		pdf.SetFont("Helvetica", "B", 10)
		pdf.SetTextColor(200, 0, 0)
		pdf.SetXY(marginLeft+5, y)
		pdf.CellFormat(200, 6, "Run halted at the container limit with cargo left over", "", 0, "L", false, 0, "")
		pdf.SetTextColor(0, 0, 0)
		y += 7
	}

	y += 5

	// Per-container breakdown table
	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetXY(marginLeft, y)
	pdf.CellFormat(100, 7, "Container Breakdown", "", 0, "L", false, 0, "")
	y += 9

	// Table header
	colWidths := []float64{15, 30, 20, 45, 30, 30, 50}
	headers := []string{"#", "ID", "Items", "Weight", "Weight %", "Volume %", "Largest Free Space"}

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(230, 230, 230)
	xPos := marginLeft
	for i, header := range headers {
		pdf.SetXY(xPos, y)
		pdf.CellFormat(colWidths[i], 6, header, "1", 0, "C", true, 0, "")
		xPos += colWidths[i]
	}
	y += 6

	// Table rows
	pdf.SetFont("Helvetica", "", 9)
	for i, c := range result.Containers {
		largest := "-"
		if usable := model.UsableSpaces(c.FreeSpaces); len(usable) > 0 {
			largest = fmt.Sprintf("%.0f x %.0f x %.0f cm", usable[0].W, usable[0].D, usable[0].H)
		}

		xPos = marginLeft
		rowData := []string{
			fmt.Sprintf("%d", i+1),
			c.ID,
			fmt.Sprintf("%d", len(c.Placements)),
			fmt.Sprintf("%.1f / %.0f kg", c.Weight, c.MaxWeight),
			fmt.Sprintf("%.1f%%", c.WeightUtilization()),
			fmt.Sprintf("%.1f%%", c.VolumeEfficiency()),
			largest,
		}

		// Alternate row background
		if i%2 == 0 {
			pdf.SetFillColor(245, 245, 245)
		} else {
			pdf.SetFillColor(255, 255, 255)
		}

		for j, cell := range rowData {
			pdf.SetXY(xPos, y)
			pdf.CellFormat(colWidths[j], 6, cell, "1", 0, "C", true, 0, "")
			xPos += colWidths[j]
		}
		y += 6
	}

	// Unplaced items warning
	if len(result.Unplaced) > 0 {
		y += 8
		pdf.SetFont("Helvetica", "B", 11)
		pdf.SetTextColor(200, 0, 0)
		pdf.SetXY(marginLeft, y)
		pdf.CellFormat(200, 7, "WARNING: Unplaced Items", "", 0, "L", false, 0, "")
		y += 8

		pdf.SetFont("Helvetica", "", 9)
		pdf.SetTextColor(0, 0, 0)

		for _, u := range result.Unplaced {
			pdf.SetXY(marginLeft+5, y)
			text := fmt.Sprintf("- %s: %.0f x %.0f x %.0f cm, %.1f kg (%s)",
				u.Item.Name, u.Item.DX, u.Item.DY, u.Item.DZ, u.Item.Weight, u.Reason)
			pdf.CellFormat(200, 5, text, "", 0, "L", false, 0, "")
			y += 5
		}
	}

	// Pack settings summary
	y += 8
	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetTextColor(0, 0, 0)
	pdf.SetXY(marginLeft, y)
	pdf.CellFormat(100, 7, "Pack Settings", "", 0, "L", false, 0, "")
	y += 9

	settingsItems := []struct {
		label string
		value string
	}{
		{"Container Width", fmt.Sprintf("%.1f cm", settings.ContainerWidth)},
		{"Container Depth", fmt.Sprintf("%.1f cm", settings.ContainerDepth)},
		{"Container Height", fmt.Sprintf("%.1f cm", settings.ContainerHeight)},
		{"Max Weight", fmt.Sprintf("%.0f kg", settings.MaxWeight)},
		{"Max Containers", fmt.Sprintf("%d", settings.MaxContainers)},
	}

	pdf.SetFont("Helvetica", "", 9)
	for _, item := range settingsItems {
		pdf.SetXY(marginLeft+5, y)
		pdf.CellFormat(50, 5, item.label+":", "", 0, "L", false, 0, "")
		pdf.CellFormat(30, 5, item.value, "", 0, "L", false, 0, "")
		y += 5
	}

	// Footer
	pdf.SetFont("Helvetica", "I", 8)
	pdf.SetTextColor(120, 120, 120)
	pdf.SetXY(marginLeft, pageHeight-marginBottom)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 4, "Generated by StowPlan - Container Load Planner", "", 0, "C", false, 0, "")
}

// labelFontSize returns an appropriate font size based on the rectangle dimensions.
func labelFontSize(w, h float64) float64 {
	minDim := math.Min(w, h)
	switch {
	case minDim > 40:
		return 8
	case minDim > 20:
		return 7
	default:
		return 6
	}
}
