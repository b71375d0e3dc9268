package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yudhap/stowplan/internal/engine"
	"github.com/yudhap/stowplan/internal/export"
	"github.com/yudhap/stowplan/internal/model"
	"github.com/yudhap/stowplan/internal/project"
)

func newPackCommand() *cobra.Command {
	var (
		in cargoInput
		sf settingsFlags

		pdfPath    string
		labelsPath string
		dxfPath    string
		csvPath    string
		xlsxPath   string
		savePlan   string
	)

	cmd := &cobra.Command{
		Use:   "pack",
		Short: "Pack a cargo list into containers and print the load plan",
		Long: `Pack reads a cargo list (CSV, XLSX, saved plan, or template), packs it
into containers with the configured dimensions and weight limit, and
prints a per-container utilization summary. Exports are optional.

Exits with code 1 when the run halts at the container limit.`,
		Example: `  stowplan pack --input cargo.csv --preset "20ft Standard"
  stowplan pack --input cargo.xlsx --width 300 --depth 400 --height 250 --pdf plan.pdf
  stowplan pack --template "Weekly Shipment" --save-plan april`,
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

			result, err := engine.New(settings).Pack(specs)
			if err != nil {
				return err
			}

			printPackSummary(result, settings)

			if pdfPath != "" {
				if err := export.ExportPDF(pdfPath, result, settings); err != nil {
					return fmt.Errorf("pdf export: %w", err)
				}
				fmt.Printf("Wrote load plan PDF: %s\n", pdfPath)
			}
			if labelsPath != "" {
				if err := export.ExportLabels(labelsPath, result); err != nil {
					return fmt.Errorf("label export: %w", err)
				}
				fmt.Printf("Wrote cargo labels: %s\n", labelsPath)
			}
			if dxfPath != "" {
				if err := export.ExportDXF(dxfPath, result); err != nil {
					return fmt.Errorf("dxf export: %w", err)
				}
				fmt.Printf("Wrote DXF drawing: %s\n", dxfPath)
			}
			if csvPath != "" {
				if err := export.ExportManifestCSV(csvPath, result); err != nil {
					return fmt.Errorf("manifest export: %w", err)
				}
				fmt.Printf("Wrote manifest CSV: %s\n", csvPath)
			}
			if xlsxPath != "" {
				if err := export.ExportManifestXLSX(xlsxPath, result); err != nil {
					return fmt.Errorf("manifest export: %w", err)
				}
				fmt.Printf("Wrote manifest workbook: %s\n", xlsxPath)
			}

			if savePlan != "" {
				path, err := resolvePlanPath(savePlan)
				if err != nil {
					return err
				}
				if plan == nil {
					p := model.NewPlan(planNameFromPath(path))
					plan = &p
				}
				plan.Items = specs
				plan.Settings = settings
				plan.Result = &result
				if err := project.SavePlan(path, *plan); err != nil {
					return fmt.Errorf("save plan: %w", err)
				}
				fmt.Printf("Saved plan: %s\n", path)

				cfg.AddRecentPlan(path)
				if err := project.SaveAppConfig(project.DefaultConfigPath(), cfg); err != nil {
					slog.Warn("could not update recent plans", "error", err)
				}
			}

			if result.Halted {
				return fmt.Errorf("run halted at the container limit with %d items unplaced",
					result.CountByReason(model.ReasonCapacity))
			}
			return nil
		},
	}

	in.addFlags(cmd)
	sf.addFlags(cmd)
	cmd.Flags().StringVar(&pdfPath, "pdf", "", "Write a load plan PDF to this path")
	cmd.Flags().StringVar(&labelsPath, "labels", "", "Write a QR cargo label sheet to this path")
	cmd.Flags().StringVar(&dxfPath, "dxf", "", "Write a DXF floor drawing to this path")
	cmd.Flags().StringVar(&csvPath, "csv", "", "Write a manifest CSV to this path")
	cmd.Flags().StringVar(&xlsxPath, "xlsx", "", "Write a manifest workbook to this path")
	cmd.Flags().StringVar(&savePlan, "save-plan", "", "Save the plan with results to this path (or bare name)")

	return cmd
}

func printPackSummary(result model.PackResult, settings model.PackSettings) {
	headerColor.Println("Load Plan Summary")
	headerColor.Println("=================")
	fmt.Printf("Containers used:   %d (max %d)\n", len(result.Containers), settings.MaxContainers)
	fmt.Printf("Items placed:      %d\n", result.PlacedCount())
	fmt.Printf("Total weight:      %.1f kg\n", result.TotalWeight())
	fmt.Printf("Volume efficiency: %.1f%%\n", result.TotalEfficiency())

	for i, c := range result.Containers {
		fmt.Println()
		okColor.Printf("Container %d: %.0f x %.0f x %.0f cm\n", i+1, c.Width, c.Depth, c.Height)
		fmt.Printf("  Items: %d   Weight: %.1f / %.0f kg (%.1f%%)   Volume: %.1f%%\n",
			len(c.Placements), c.Weight, c.MaxWeight, c.WeightUtilization(), c.VolumeEfficiency())
		if spaces := model.UsableSpaces(c.FreeSpaces); len(spaces) > 0 {
			f := spaces[0]
			fmt.Printf("  Largest free space: %.0f x %.0f x %.0f cm\n", f.W, f.D, f.H)
		}
	}

	if len(result.Unplaced) > 0 {
		fmt.Println()
		errColor.Printf("Unplaced cargo (%d):\n", len(result.Unplaced))
		for _, u := range result.Unplaced {
			errColor.Printf("  - %s: %.0f x %.0f x %.0f cm, %.1f kg (%s)\n",
				u.Item.Name, u.Item.DX, u.Item.DY, u.Item.DZ, u.Item.Weight, u.Reason)
		}
	}

	if result.Halted {
		fmt.Println()
		errColor.Println("Run halted at the container limit with cargo left over.")
	}
}

// resolvePlanPath turns a bare plan name into a path under the default plans
// directory. Anything with an extension or a separator is used as given.
func resolvePlanPath(arg string) (string, error) {
	if filepath.Ext(arg) == "" && !strings.ContainsRune(arg, os.PathSeparator) {
		return project.DefaultPlanPath(arg)
	}
	return arg, nil
}

func planNameFromPath(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
