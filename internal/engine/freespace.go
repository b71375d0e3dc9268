package engine

import (
	"math"
	"sort"

	"github.com/yudhap/stowplan/internal/model"
)

// tol absorbs floating point drift in geometric comparisons.
const tol = 0.001

// cuboid is an axis-aligned free region inside a container.
type cuboid struct {
	x, y, z float64 // origin: left wall, back wall, floor
	w, d, h float64 // extents along x, y, z
}

func (c cuboid) volume() float64 {
	return c.w * c.d * c.h
}

// fits reports whether a box with the given extents fits in this cuboid.
func (c cuboid) fits(dx, dy, dz float64) bool {
	return dx <= c.w+tol && dy <= c.d+tol && dz <= c.h+tol
}

// intervalsOverlap reports whether two 1D intervals share interior points.
// Touching faces do not count.
func intervalsOverlap(a0, a1, b0, b1 float64) bool {
	return a0 < b1-tol && b0 < a1-tol
}

func sameCuboid(a, b cuboid) bool {
	return math.Abs(a.x-b.x) < tol &&
		math.Abs(a.y-b.y) < tol &&
		math.Abs(a.z-b.z) < tol &&
		math.Abs(a.w-b.w) < tol &&
		math.Abs(a.d-b.d) < tol &&
		math.Abs(a.h-b.h) < tol
}

// lessCuboid orders free cuboids floor-first: by height, then depth into the
// container, then distance from the left wall. Extents break remaining ties
// so the order is total.
func lessCuboid(a, b cuboid) bool {
	if a.z != b.z {
		return a.z < b.z
	}
	if a.y != b.y {
		return a.y < b.y
	}
	if a.x != b.x {
		return a.x < b.x
	}
	if a.w != b.w {
		return a.w < b.w
	}
	if a.d != b.d {
		return a.d < b.d
	}
	return a.h < b.h
}

// freeSpaceTracker maintains the free cuboids of one container. Cuboids may
// overlap each other and can go stale after neighboring splits, so callers
// must re-check candidates against actual placements before committing.
type freeSpaceTracker struct {
	spaces []cuboid
}

// newFreeSpaceTracker starts with a single cuboid spanning the container.
func newFreeSpaceTracker(w, d, h float64) *freeSpaceTracker {
	return &freeSpaceTracker{
		spaces: []cuboid{{w: w, d: d, h: h}},
	}
}

// candidates returns the free cuboids in scan order. Regular items scan
// floor-first; fragile items scan in the exact reverse so positions near the
// top of the load are tried first.
func (t *freeSpaceTracker) candidates(fragile bool) []cuboid {
	out := make([]cuboid, len(t.spaces))
	copy(out, t.spaces)
	sort.Slice(out, func(i, j int) bool {
		return lessCuboid(out[i], out[j])
	})
	if fragile {
		for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
			out[i], out[j] = out[j], out[i]
		}
	}
	return out
}

// split consumes a cuboid for a box of the given extents placed at the
// cuboid's origin, replacing it with the residuals to the right of, in front
// of and above the box.
func (t *freeSpaceTracker) split(consumed cuboid, dx, dy, dz float64) {
	t.remove(consumed)
	t.add(cuboid{x: consumed.x + dx, y: consumed.y, z: consumed.z, w: consumed.w - dx, d: consumed.d, h: consumed.h})
	t.add(cuboid{x: consumed.x, y: consumed.y + dy, z: consumed.z, w: consumed.w, d: consumed.d - dy, h: consumed.h})
	t.add(cuboid{x: consumed.x, y: consumed.y, z: consumed.z + dz, w: consumed.w, d: consumed.d, h: consumed.h - dz})
}

// add appends a cuboid unless it is degenerate or an exact duplicate of an
// existing one. Contained-but-not-equal cuboids are kept; candidates are
// re-checked against placements before use.
func (t *freeSpaceTracker) add(c cuboid) {
	if c.w <= tol || c.d <= tol || c.h <= tol {
		return
	}
	for _, existing := range t.spaces {
		if sameCuboid(existing, c) {
			return
		}
	}
	t.spaces = append(t.spaces, c)
}

func (t *freeSpaceTracker) remove(c cuboid) {
	for i, existing := range t.spaces {
		if sameCuboid(existing, c) {
			t.spaces = append(t.spaces[:i], t.spaces[i+1:]...)
			return
		}
	}
}

// freeSpaces exports the remaining cuboids for result reporting.
func (t *freeSpaceTracker) freeSpaces() []model.FreeSpace {
	out := make([]model.FreeSpace, len(t.spaces))
	for i, c := range t.spaces {
		out[i] = model.FreeSpace{X: c.x, Y: c.y, Z: c.z, W: c.w, D: c.d, H: c.h}
	}
	return out
}
