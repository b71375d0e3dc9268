package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yudhap/stowplan/internal/importer"
	"github.com/yudhap/stowplan/internal/model"
	"github.com/yudhap/stowplan/internal/project"
)

// cargoInput collects the flags shared by commands that read a cargo list.
type cargoInput struct {
	inputPath    string
	templateName string
}

func (ci *cargoInput) addFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&ci.inputPath, "input", "i", "", "Cargo list (CSV or XLSX) or saved plan (JSON)")
	cmd.Flags().StringVarP(&ci.templateName, "template", "t", "", "Load cargo and settings from a saved template")
}

// load resolves the cargo source into item specs. JSON plans and templates
// carry their own settings, returned as a plan; CSV and XLSX lists do not.
func (ci *cargoInput) load() ([]model.ItemSpec, *model.Plan, error) {
	if ci.inputPath != "" && ci.templateName != "" {
		return nil, nil, errors.New("use either --input or --template, not both")
	}

	switch {
	case ci.inputPath != "":
		return ci.loadFile()
	case ci.templateName != "":
		return ci.loadTemplate()
	default:
		return nil, nil, errors.New("a cargo list is required: pass --input or --template")
	}
}

func (ci *cargoInput) loadFile() ([]model.ItemSpec, *model.Plan, error) {
	ext := strings.ToLower(filepath.Ext(ci.inputPath))

	if ext == ".json" {
		plan, err := project.LoadPlan(ci.inputPath)
		if err != nil {
			return nil, nil, fmt.Errorf("load plan: %w", err)
		}
		if len(plan.Items) == 0 {
			return nil, nil, fmt.Errorf("plan %q has no cargo", plan.Name)
		}
		return plan.Items, &plan, nil
	}

	var res importer.ImportResult
	switch ext {
	case ".csv":
		res = importer.ImportCSV(ci.inputPath)
	case ".xlsx", ".xls":
		res = importer.ImportExcel(ci.inputPath)
	default:
		return nil, nil, fmt.Errorf("unsupported cargo list format %q (use .csv, .xlsx, or .json)", ext)
	}

	printImportMessages(res)
	if len(res.Specs) == 0 {
		return nil, nil, fmt.Errorf("no cargo could be imported from %s", ci.inputPath)
	}
	return res.Specs, nil, nil
}

func (ci *cargoInput) loadTemplate() ([]model.ItemSpec, *model.Plan, error) {
	store, err := project.LoadDefaultTemplates()
	if err != nil {
		return nil, nil, fmt.Errorf("load templates: %w", err)
	}

	tmpl := store.FindByName(ci.templateName)
	if tmpl == nil {
		tmpl = store.FindByID(ci.templateName)
	}
	if tmpl == nil {
		return nil, nil, fmt.Errorf("unknown template %q (see 'stowplan templates')", ci.templateName)
	}

	plan := tmpl.ToPlan(tmpl.Name)
	if len(plan.Items) == 0 {
		return nil, nil, fmt.Errorf("template %q has no cargo", tmpl.Name)
	}
	return plan.Items, &plan, nil
}

// settingsFlags collects the container settings flags shared by the packing
// commands. Explicit flags win over presets, presets over stored settings.
type settingsFlags struct {
	preset        string
	width         float64
	depth         float64
	height        float64
	maxWeight     float64
	maxContainers int
}

func (sf *settingsFlags) addFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&sf.preset, "preset", "p", "", "Container preset name (see 'stowplan presets')")
	cmd.Flags().Float64Var(&sf.width, "width", 0, "Container interior width in cm")
	cmd.Flags().Float64Var(&sf.depth, "depth", 0, "Container interior depth in cm")
	cmd.Flags().Float64Var(&sf.height, "height", 0, "Container interior height in cm")
	cmd.Flags().Float64Var(&sf.maxWeight, "max-weight", 0, "Maximum payload weight per container in kg")
	cmd.Flags().IntVar(&sf.maxContainers, "max-containers", 0, "Maximum number of containers to open")
}

func (sf *settingsFlags) apply(cmd *cobra.Command, s *model.PackSettings) error {
	if sf.preset != "" {
		inv, _, err := project.LoadOrCreateInventory()
		if err != nil {
			return fmt.Errorf("load inventory: %w", err)
		}
		preset := inv.FindContainerByName(sf.preset)
		if preset == nil {
			return fmt.Errorf("unknown container preset %q (see 'stowplan presets')", sf.preset)
		}
		preset.ApplyToSettings(s)
	}

	flags := cmd.Flags()
	if flags.Changed("width") {
		s.ContainerWidth = sf.width
	}
	if flags.Changed("depth") {
		s.ContainerDepth = sf.depth
	}
	if flags.Changed("height") {
		s.ContainerHeight = sf.height
	}
	if flags.Changed("max-weight") {
		s.MaxWeight = sf.maxWeight
	}
	if flags.Changed("max-containers") {
		s.MaxContainers = sf.maxContainers
	}
	return nil
}

// loadConfigOrDefault reads the app config, falling back to defaults when the
// file is unreadable. A broken config file should not block a packing run.
func loadConfigOrDefault() model.AppConfig {
	cfg, err := project.LoadAppConfig(project.DefaultConfigPath())
	if err != nil {
		warnColor.Fprintf(os.Stderr, "warning: could not read app config, using defaults: %v\n", err)
		return model.DefaultAppConfig()
	}
	return cfg
}
