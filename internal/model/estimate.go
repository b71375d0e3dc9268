package model

import "math"

// LoadEstimate holds the results of a pre-packing capacity calculation.
// It gives a rough container count before running the packer.
type LoadEstimate struct {
	TotalVolume          float64 `json:"total_volume"`           // Total volume of all cargo (cubic cm)
	TotalWeight          float64 `json:"total_weight"`           // Total weight of all cargo (kg)
	ContainerVolume      float64 `json:"container_volume"`       // Volume of one container (cubic cm)
	ContainersByVolume   float64 `json:"containers_by_volume"`   // Exact fractional count by volume
	ContainersByWeight   float64 `json:"containers_by_weight"`   // Exact fractional count by weight
	ContainersNeededMin  int     `json:"containers_needed_min"`  // Minimum containers (ceiling of the larger count)
	ContainersWithMargin int     `json:"containers_with_margin"` // Recommended containers including headroom
	HeadroomPercent      float64 `json:"headroom_percent"`       // Headroom factor applied (e.g., 15 for 15%)
	LimitedByWeight      bool    `json:"limited_by_weight"`      // True when weight, not volume, drives the count
}

// dimWeightDivisor converts volume in cubic cm to dimensional weight in kg.
// Air freight convention: 6000 cubic cm per kg.
const dimWeightDivisor = 6000.0

// DimensionalWeight returns the volumetric weight in kg for the given
// dimensions in cm.
func DimensionalWeight(dx, dy, dz float64) float64 {
	return (dx * dy * dz) / dimWeightDivisor
}

// ChargeableWeight returns the larger of actual and dimensional weight,
// which is what freight carriers bill against.
func ChargeableWeight(actual, dx, dy, dz float64) float64 {
	dim := DimensionalWeight(dx, dy, dz)
	if dim > actual {
		return dim
	}
	return actual
}

// CalculateLoadEstimate computes how many containers a cargo list needs.
// Packing never achieves 100% fill, so the headroom percentage pads the
// volume-based count before rounding up.
func CalculateLoadEstimate(items []ItemSpec, settings PackSettings, headroomPercent float64) LoadEstimate {
	var totalVolume, totalWeight float64
	for _, s := range items {
		qty := s.Quantity
		if qty < 1 {
			qty = 1
		}
		totalVolume += s.UnitVolume() * float64(qty)
		totalWeight += s.Weight * float64(qty)
	}

	containerVolume := settings.ContainerVolume()
	if containerVolume <= 0 || settings.MaxWeight <= 0 {
		return LoadEstimate{
			TotalVolume:     totalVolume,
			TotalWeight:     totalWeight,
			HeadroomPercent: headroomPercent,
		}
	}

	byVolume := totalVolume / containerVolume
	byWeight := totalWeight / settings.MaxWeight

	limiting := byVolume
	limitedByWeight := false
	if byWeight > byVolume {
		limiting = byWeight
		limitedByWeight = true
	}
	minContainers := int(math.Ceil(limiting))

	// Headroom only pads the volume estimate. Weight capacity is a hard
	// limit so it gets no margin.
	headroomFactor := 1.0 + (headroomPercent / 100.0)
	padded := byVolume * headroomFactor
	if byWeight > padded {
		padded = byWeight
	}
	withMargin := int(math.Ceil(padded))
	if withMargin < minContainers {
		withMargin = minContainers
	}

	return LoadEstimate{
		TotalVolume:          totalVolume,
		TotalWeight:          totalWeight,
		ContainerVolume:      containerVolume,
		ContainersByVolume:   byVolume,
		ContainersByWeight:   byWeight,
		ContainersNeededMin:  minContainers,
		ContainersWithMargin: withMargin,
		HeadroomPercent:      headroomPercent,
		LimitedByWeight:      limitedByWeight,
	}
}
