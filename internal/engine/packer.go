package engine

import (
	"log/slog"
	"sort"

	"github.com/yudhap/stowplan/internal/model"
)

// Packer arranges items into containers using deterministic best-fit
// placement over guillotine free spaces.
type Packer struct {
	Settings model.PackSettings
}

// New creates a Packer with the given settings.
func New(settings model.PackSettings) *Packer {
	return &Packer{Settings: settings}
}

// containerState pairs an open container with its free space tracker.
type containerState struct {
	container model.Container
	tracker   *freeSpaceTracker
}

// candidate is a scored placement option for one item.
type candidate struct {
	containerIdx int
	space        cuboid
	dims         model.Orientation
	score        float64
}

// Pack expands the given specs into individual units and places them into
// containers. Items that cannot be placed are reported in the result, not as
// errors; an error means the settings themselves are unusable.
//
// Identical inputs always produce identical placements. Containers are
// scanned in opening order, orientations in canonical order and free spaces
// in their sorted scan order, with the first-found minimum score winning.
func (p *Packer) Pack(specs []model.ItemSpec) (model.PackResult, error) {
	if err := p.Settings.Validate(); err != nil {
		return model.PackResult{}, err
	}

	var result model.PackResult
	queue := p.buildQueue(specs, &result)

	slog.Debug("packing run started",
		"units", len(queue),
		"oversized", len(result.Unplaced),
		"max_containers", p.Settings.MaxContainers)

	var states []*containerState

	for len(queue) > 0 {
		it := queue[0]

		c, ok := p.bestCandidate(states, it)
		if !ok {
			if len(states) >= p.Settings.MaxContainers {
				// Strict halt: the stuck item and everything behind it
				// stay unplaced in queue order.
				result.Halted = true
				for _, left := range queue {
					result.Unplaced = append(result.Unplaced, model.UnplacedItem{
						Item:   left,
						Reason: model.ReasonCapacity,
					})
				}
				slog.Debug("packing halted at container limit",
					"containers", len(states), "unplaced", len(queue))
				break
			}
			st := &containerState{
				container: model.NewContainer(p.Settings),
				tracker: newFreeSpaceTracker(
					p.Settings.ContainerWidth,
					p.Settings.ContainerDepth,
					p.Settings.ContainerHeight),
			}
			states = append(states, st)
			slog.Debug("opened container",
				"container", st.container.ID, "count", len(states))
			continue
		}

		queue = queue[1:]
		p.commit(states[c.containerIdx], it, c)
	}

	for _, st := range states {
		st.container.FreeSpaces = st.tracker.freeSpaces()
		result.Containers = append(result.Containers, st.container)
	}

	slog.Debug("packing run finished",
		"containers", len(result.Containers),
		"placed", result.PlacedCount(),
		"unplaced", len(result.Unplaced),
		"halted", result.Halted)

	return result, nil
}

// buildQueue expands specs into units, routes units that fit no empty
// container into the unplaced list, and orders the rest largest first
// (descending volume, ties by descending weight).
func (p *Packer) buildQueue(specs []model.ItemSpec, result *model.PackResult) []model.Item {
	var queue []model.Item
	for _, s := range specs {
		for _, unit := range s.Units() {
			if !p.fitsEmptyContainer(unit) {
				result.Unplaced = append(result.Unplaced, model.UnplacedItem{
					Item:   unit,
					Reason: model.ReasonOversized,
				})
				slog.Debug("item oversized", "item", unit.ID, "name", unit.Name,
					"dx", unit.DX, "dy", unit.DY, "dz", unit.DZ)
				continue
			}
			queue = append(queue, unit)
		}
	}

	sort.SliceStable(queue, func(i, j int) bool {
		vi, vj := queue[i].Volume(), queue[j].Volume()
		if vi != vj {
			return vi > vj
		}
		return queue[i].Weight > queue[j].Weight
	})

	return queue
}

// fitsEmptyContainer reports whether any orientation of the item fits an
// empty container geometrically. Weight is not considered here; an item
// heavier than the cap works through the normal no-fit path.
func (p *Packer) fitsEmptyContainer(it model.Item) bool {
	empty := cuboid{
		w: p.Settings.ContainerWidth,
		d: p.Settings.ContainerDepth,
		h: p.Settings.ContainerHeight,
	}
	for _, o := range it.Orientations() {
		if empty.fits(o.DX, o.DY, o.DZ) {
			return true
		}
	}
	return false
}

// bestCandidate scans all open containers for the lowest scoring valid
// position. Improvement requires a strictly lower score, so on ties the
// first-encountered candidate wins.
func (p *Packer) bestCandidate(states []*containerState, it model.Item) (candidate, bool) {
	var best candidate
	found := false

	for ci, st := range states {
		if st.container.Weight+it.Weight > p.Settings.MaxWeight {
			continue
		}
		for _, o := range it.Orientations() {
			oriented := it.Oriented(o)
			for _, sp := range st.tracker.candidates(it.Fragile) {
				if !sp.fits(o.DX, o.DY, o.DZ) {
					continue
				}
				// Free cuboids can be stale, so always re-check against
				// the placements that actually exist.
				if overlapsAny(st.container.Placements, o, sp.x, sp.y, sp.z) {
					continue
				}
				if !validateStacking(st.container.Placements, oriented, sp.x, sp.y, sp.z) {
					continue
				}
				s := score(sp, o, it.Fragile)
				if !found || s < best.score {
					best = candidate{containerIdx: ci, space: sp, dims: o, score: s}
					found = true
				}
			}
		}
	}

	return best, found
}

// score favors snug positions low in the container. Fragile items get a
// softer height penalty so upper positions stay attractive for them.
func score(sp cuboid, o model.Orientation, fragile bool) float64 {
	heightFactor := 1.5
	if fragile {
		heightFactor = 0.5
	}
	return (sp.w - o.DX) + (sp.d - o.DY) + sp.z*heightFactor
}

// overlapsAny reports whether a box at the given position would share
// interior volume with any existing placement.
func overlapsAny(placements []model.Placement, o model.Orientation, x, y, z float64) bool {
	for _, p := range placements {
		if intervalsOverlap(x, x+o.DX, p.X, p.X+p.Item.DX) &&
			intervalsOverlap(y, y+o.DY, p.Y, p.Y+p.Item.DY) &&
			intervalsOverlap(z, z+o.DZ, p.Z, p.Z+p.Item.DZ) {
			return true
		}
	}
	return false
}

// commit places the item into the chosen container and splits the consumed
// free space.
func (p *Packer) commit(st *containerState, it model.Item, c candidate) {
	placed := it.Oriented(c.dims)
	st.container.Placements = append(st.container.Placements, model.Placement{
		Item: placed,
		X:    c.space.x,
		Y:    c.space.y,
		Z:    c.space.z,
	})
	st.container.Weight += placed.Weight
	st.container.UsedVolume += placed.Volume()
	st.tracker.split(c.space, placed.DX, placed.DY, placed.DZ)

	slog.Debug("placed item",
		"item", placed.ID,
		"name", placed.Name,
		"container", st.container.ID,
		"x", c.space.x, "y", c.space.y, "z", c.space.z,
		"dx", placed.DX, "dy", placed.DY, "dz", placed.DZ)
}
