package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yudhap/stowplan/internal/project"
)

func newPresetsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "presets",
		Short: "List container and cargo presets from the inventory",
		RunE: func(cmd *cobra.Command, args []string) error {
			inv, path, err := project.LoadOrCreateInventory()
			if err != nil {
				return fmt.Errorf("load inventory: %w", err)
			}

			headerColor.Println("Container Presets")
			headerColor.Println("=================")
			for _, c := range inv.Containers {
				fmt.Printf("  %-16s %6.1f x %6.1f x %5.1f cm   max %6.0f kg\n",
					c.Name, c.Width, c.Depth, c.Height, c.MaxWeight)
			}

			fmt.Println()
			headerColor.Println("Cargo Presets")
			headerColor.Println("=============")
			for _, c := range inv.Cargo {
				fmt.Printf("  %-16s %4.0f x %4.0f x %4.0f cm  %6.1f kg   %s\n",
					c.Name, c.DX, c.DY, c.DZ, c.Weight, cargoTraits(c.Stackable, c.Fragile, c.MaxStackWeight))
			}

			fmt.Println()
			fmt.Printf("Inventory file: %s\n", path)
			return nil
		},
	}
}

func cargoTraits(stackable, fragile bool, maxStack float64) string {
	switch {
	case fragile:
		return "fragile"
	case stackable && maxStack > 0:
		return fmt.Sprintf("stackable (max %.0f kg)", maxStack)
	case stackable:
		return "stackable"
	default:
		return "no stacking"
	}
}
