package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yudhap/stowplan/internal/model"
)

func newEstimateCommand() *cobra.Command {
	var (
		in       cargoInput
		sf       settingsFlags
		headroom float64
	)

	cmd := &cobra.Command{
		Use:   "estimate",
		Short: "Estimate the container count for a cargo list without packing",
		Long: `Estimate sums cargo volume and weight against one container's capacity
and reports how many containers the load needs, by volume and by weight,
plus the total chargeable (dimensional) freight weight.`,
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

			est := model.CalculateLoadEstimate(specs, settings, headroom)

			var chargeable float64
			for _, s := range specs {
				qty := s.Quantity
				if qty < 1 {
					qty = 1
				}
				chargeable += model.ChargeableWeight(s.Weight, s.DX, s.DY, s.DZ) * float64(qty)
			}

			headerColor.Println("Load Estimate")
			headerColor.Println("=============")
			fmt.Printf("Cargo volume:      %.2f m3\n", est.TotalVolume/1e6)
			fmt.Printf("Cargo weight:      %.1f kg\n", est.TotalWeight)
			fmt.Printf("Chargeable weight: %.1f kg\n", chargeable)
			fmt.Printf("Container volume:  %.2f m3 (max %.0f kg)\n", est.ContainerVolume/1e6, settings.MaxWeight)
			fmt.Println()
			fmt.Printf("Containers by volume: %.2f\n", est.ContainersByVolume)
			fmt.Printf("Containers by weight: %.2f\n", est.ContainersByWeight)
			fmt.Printf("Minimum needed:       %d\n", est.ContainersNeededMin)

			okColor.Printf("Recommended (%.0f%% headroom): %d containers\n", est.HeadroomPercent, est.ContainersWithMargin)
			if est.LimitedByWeight {
				warnColor.Println("Weight, not volume, drives this load.")
			}
			return nil
		},
	}

	in.addFlags(cmd)
	sf.addFlags(cmd)
	cmd.Flags().Float64Var(&headroom, "headroom", 15, "Volume headroom percentage for the recommendation")

	return cmd
}
