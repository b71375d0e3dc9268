package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yudhap/stowplan/internal/engine"
	"github.com/yudhap/stowplan/internal/model"
)

func newCompareCommand() *cobra.Command {
	var (
		in cargoInput
		sf settingsFlags
	)

	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Pack the same cargo under each container preset and compare",
		Long: `Compare runs the packer once per scenario: the current settings first,
then each container preset from the inventory. The table shows which
container choice carries the load in the fewest boxes with the least
wasted volume.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := loadConfigOrDefault()

			settings := model.DefaultSettings()
			cfg.ApplyToSettings(&settings)

			specs, plan, err := in.load()
			if err != nil {
				return err
			}
			if plan != nil {
				settings = plan.Settings
			}
			if err := sf.apply(cmd, &settings); err != nil {
				return err
			}

			scenarios := engine.BuildDefaultScenarios(settings)
			results := engine.CompareScenarios(scenarios, specs)

			headerColor.Println("Scenario Comparison")
			headerColor.Println("===================")
			headerColor.Printf("%-20s %10s %8s %9s %8s %7s\n",
				"Scenario", "Containers", "Placed", "Unplaced", "Waste %", "Halted")

			for _, r := range results {
				if r.Err != nil {
					errColor.Printf("%-20s error: %v\n", r.Scenario.Name, r.Err)
					continue
				}
				line := fmt.Sprintf("%-20s %10d %8d %9d %8.1f %7s",
					r.Scenario.Name, r.ContainersUsed, r.PlacedCount, r.UnplacedCount,
					r.WastePercent, yesNo(r.Halted))
				if r.Halted || r.UnplacedCount > 0 {
					errColor.Println(line)
				} else {
					okColor.Println(line)
				}
			}
			return nil
		},
	}

	in.addFlags(cmd)
	sf.addFlags(cmd)

	return cmd
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
