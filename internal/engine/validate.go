package engine

import "github.com/yudhap/stowplan/internal/model"

// footprintOverlap reports whether two horizontal rectangles share interior
// area. Touching edges do not count.
func footprintOverlap(ax, ay, adx, ady, bx, by, bdx, bdy float64) bool {
	return intervalsOverlap(ax, ax+adx, bx, bx+bdx) &&
		intervalsOverlap(ay, ay+ady, by, by+bdy)
}

// supportedWeight returns the combined weight of all placements resting at
// or above the top face of placements[idx] with an overlapping footprint.
func supportedWeight(placements []model.Placement, idx int) float64 {
	base := placements[idx]
	top := base.Top()

	var total float64
	for i, p := range placements {
		if i == idx {
			continue
		}
		if p.Z < top-tol {
			continue
		}
		if !footprintOverlap(base.X, base.Y, base.Item.DX, base.Item.DY,
			p.X, p.Y, p.Item.DX, p.Item.DY) {
			continue
		}
		total += p.Item.Weight
	}
	return total
}

// validateStacking decides whether an oriented item may rest at the given
// position, beyond pure geometry. It enforces three rules: a fragile item
// may not be tucked under an existing placement, every supporting item must
// be stackable and not fragile, and no supporting item may end up carrying
// more than its max stack weight.
func validateStacking(placements []model.Placement, it model.Item, x, y, z float64) bool {
	candTop := z + it.DZ

	if it.Fragile {
		for _, p := range placements {
			if p.Z < candTop-tol {
				continue
			}
			if footprintOverlap(x, y, it.DX, it.DY, p.X, p.Y, p.Item.DX, p.Item.DY) {
				return false
			}
		}
	}

	for i, p := range placements {
		if p.Top() > z+tol {
			continue // not below the candidate
		}
		if !footprintOverlap(x, y, it.DX, it.DY, p.X, p.Y, p.Item.DX, p.Item.DY) {
			continue
		}
		if p.Item.Fragile || !p.Item.Stackable {
			return false
		}
		if supportedWeight(placements, i)+it.Weight > p.Item.MaxStackWeight+tol {
			return false
		}
	}

	return true
}
