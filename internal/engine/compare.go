package engine

import (
	"github.com/yudhap/stowplan/internal/model"
)

// ComparisonScenario defines a named set of settings to compare.
type ComparisonScenario struct {
	Name     string
	Settings model.PackSettings
}

// ComparisonResult holds the packing result and computed statistics
// for a single scenario.
type ComparisonResult struct {
	Scenario       ComparisonScenario
	Result         model.PackResult
	ContainersUsed int
	PlacedCount    int
	UnplacedCount  int
	WastePercent   float64
	Halted         bool
	Err            error
}

// CompareScenarios packs the same cargo under each scenario and returns the
// results in scenario order. This enables side-by-side comparison of
// different container choices before committing to a booking.
func CompareScenarios(scenarios []ComparisonScenario, specs []model.ItemSpec) []ComparisonResult {
	results := make([]ComparisonResult, 0, len(scenarios))

	for _, scenario := range scenarios {
		packer := New(scenario.Settings)
		result, err := packer.Pack(specs)

		cr := ComparisonResult{
			Scenario: scenario,
			Err:      err,
		}
		if err == nil {
			cr.Result = result
			cr.ContainersUsed = len(result.Containers)
			cr.PlacedCount = result.PlacedCount()
			cr.UnplacedCount = len(result.Unplaced)
			cr.WastePercent = 100.0 - result.TotalEfficiency()
			cr.Halted = result.Halted
		}
		results = append(results, cr)
	}

	return results
}

// BuildDefaultScenarios generates a set of comparison scenarios: the current
// settings first, then each container preset from the default inventory.
func BuildDefaultScenarios(baseSettings model.PackSettings) []ComparisonScenario {
	scenarios := []ComparisonScenario{
		{
			Name:     "Current Settings",
			Settings: baseSettings,
		},
	}

	inv := model.DefaultInventory()
	for _, preset := range inv.Containers {
		s := baseSettings
		preset.ApplyToSettings(&s)
		if s == baseSettings {
			continue // identical to the current settings entry
		}
		scenarios = append(scenarios, ComparisonScenario{
			Name:     preset.Name,
			Settings: s,
		})
	}

	return scenarios
}
