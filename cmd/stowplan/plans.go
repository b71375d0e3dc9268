package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yudhap/stowplan/internal/project"
)

func newPlansCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "plans",
		Short: "List saved plans and recently used plan files",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := project.DefaultPlansDir()
			if err != nil {
				return fmt.Errorf("resolve plans directory: %w", err)
			}
			paths, err := project.ListPlans(dir)
			if err != nil {
				return fmt.Errorf("list plans: %w", err)
			}

			headerColor.Println("Saved Plans")
			headerColor.Println("===========")
			if len(paths) == 0 {
				fmt.Printf("No plans in %s\n", dir)
			}
			for _, p := range paths {
				plan, err := project.LoadPlan(p)
				if err != nil {
					warnColor.Fprintf(os.Stderr, "warning: skipping unreadable plan %s: %v\n", p, err)
					continue
				}
				status := "not packed"
				if plan.Result != nil {
					status = fmt.Sprintf("%d containers, %d placed", len(plan.Result.Containers), plan.Result.PlacedCount())
				}
				fmt.Printf("  %-24s %3d cargo types   %-26s %s\n", plan.Name, len(plan.Items), status, p)
			}

			cfg := loadConfigOrDefault()
			if len(cfg.RecentPlans) > 0 {
				fmt.Println()
				headerColor.Println("Recent Plans")
				headerColor.Println("============")
				for _, p := range cfg.RecentPlans {
					fmt.Printf("  %s\n", p)
				}
			}
			return nil
		},
	}
}
