// StowPlan — Container Load Planner
//
// A command line tool for planning 3D container loads: it packs boxed
// cargo into shipping containers and exports load plans, manifests,
// cargo labels, and CAD floor drawings.
//
// Build:
//   go build -o stowplan ./cmd/stowplan
//
// Cross-compile:
//   GOOS=windows GOARCH=amd64 go build -o stowplan.exe ./cmd/stowplan
//   GOOS=darwin  GOARCH=amd64 go build -o stowplan-darwin ./cmd/stowplan

package main

import (
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	version = "dev"
	verbose = false
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		color.New(color.FgRed).Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stowplan",
		Short: "Plan 3D container loads from cargo lists",
		Long: `StowPlan packs boxed cargo into shipping containers using a best-fit
3D bin packing strategy with stacking and fragility rules, then reports
per-container utilization and exports load plans, manifests, and labels.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelInfo
			if verbose {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
				Level: level,
			})))
		},
	}

	cmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "Enable debug logging")

	cmd.AddCommand(newPackCommand())
	cmd.AddCommand(newEstimateCommand())
	cmd.AddCommand(newCompareCommand())
	cmd.AddCommand(newPresetsCommand())
	cmd.AddCommand(newTemplatesCommand())
	cmd.AddCommand(newPlansCommand())
	cmd.AddCommand(newBackupCommand())
	cmd.AddCommand(newRestoreCommand())

	return cmd
}
