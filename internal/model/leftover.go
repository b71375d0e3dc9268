package model

import "sort"

// FreeSpace represents a rectangular region of a container left empty after
// packing. Spaces are reported by the packer and may overlap each other.
type FreeSpace struct {
	X float64 `json:"x"` // Position in the container (cm from the left wall)
	Y float64 `json:"y"` // Position in the container (cm from the back wall)
	Z float64 `json:"z"` // Position in the container (cm from the floor)
	W float64 `json:"w"` // Usable width (cm)
	D float64 `json:"d"` // Usable depth (cm)
	H float64 `json:"h"` // Usable height (cm)
}

// Volume returns the volume of the free space in cubic cm.
func (f FreeSpace) Volume() float64 {
	return f.W * f.D * f.H
}

// Fits reports whether a box with the given dimensions fits in this space
// in at least one orientation.
func (f FreeSpace) Fits(dx, dy, dz float64) bool {
	for _, o := range Orientations(dx, dy, dz) {
		if o.DX <= f.W && o.DY <= f.D && o.DZ <= f.H {
			return true
		}
	}
	return false
}

// MinSpaceDimension is the minimum extent (in cm) on every axis for a free
// space to be considered usable. Smaller gaps are treated as dead volume.
const MinSpaceDimension = 10.0

// MinSpaceVolume is the minimum volume (in cubic cm) for a free space to be
// considered usable.
const MinSpaceVolume = 8000.0 // 20cm x 20cm x 20cm equivalent

// UsableSpaces filters a list of free spaces down to those large enough to
// hold additional cargo, sorted by volume descending (largest first).
func UsableSpaces(spaces []FreeSpace) []FreeSpace {
	var usable []FreeSpace
	for _, f := range spaces {
		if f.W < MinSpaceDimension || f.D < MinSpaceDimension || f.H < MinSpaceDimension {
			continue
		}
		if f.Volume() < MinSpaceVolume {
			continue
		}
		usable = append(usable, f)
	}

	sort.Slice(usable, func(i, j int) bool {
		return usable[i].Volume() > usable[j].Volume()
	})

	return usable
}

// TotalFreeVolume returns the combined volume of all free spaces in cubic cm.
// Spaces may overlap, so this is an upper bound rather than an exact figure.
func TotalFreeVolume(spaces []FreeSpace) float64 {
	var total float64
	for _, f := range spaces {
		total += f.Volume()
	}
	return total
}
