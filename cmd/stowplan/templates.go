package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yudhap/stowplan/internal/model"
	"github.com/yudhap/stowplan/internal/project"
)

func newTemplatesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "templates",
		Short: "List and manage saved plan templates",
		RunE: func(cmd *cobra.Command, args []string) error {
			return listTemplates()
		},
	}

	cmd.AddCommand(newTemplatesSaveCommand())
	cmd.AddCommand(newTemplatesDeleteCommand())

	return cmd
}

func listTemplates() error {
	store, err := project.LoadDefaultTemplates()
	if err != nil {
		return fmt.Errorf("load templates: %w", err)
	}

	headerColor.Println("Plan Templates")
	headerColor.Println("==============")
	if len(store.Templates) == 0 {
		fmt.Println("No templates saved. Capture one with 'stowplan templates save'.")
		return nil
	}

	for _, t := range store.Templates {
		fmt.Printf("  %s  %-24s %2d cargo types   updated %s\n",
			t.ID, t.Name, len(t.Items), t.UpdatedAt)
		if t.Description != "" {
			fmt.Printf("            %s\n", t.Description)
		}
	}
	return nil
}

func newTemplatesSaveCommand() *cobra.Command {
	var (
		planPath    string
		name        string
		description string
	)

	cmd := &cobra.Command{
		Use:   "save",
		Short: "Capture a saved plan as a reusable template",
		RunE: func(cmd *cobra.Command, args []string) error {
			plan, err := project.LoadPlan(planPath)
			if err != nil {
				return fmt.Errorf("load plan: %w", err)
			}

			if name == "" {
				name = plan.Name
			}

			store, err := project.LoadDefaultTemplates()
			if err != nil {
				return fmt.Errorf("load templates: %w", err)
			}
			if store.FindByName(name) != nil {
				return fmt.Errorf("a template named %q already exists", name)
			}

			tmpl := model.NewPlanTemplate(name, description, plan.Items, plan.Settings)
			store.Add(tmpl)
			if err := project.SaveDefaultTemplates(store); err != nil {
				return fmt.Errorf("save templates: %w", err)
			}

			okColor.Printf("Saved template %q (%s) with %d cargo types\n", tmpl.Name, tmpl.ID, len(tmpl.Items))
			return nil
		},
	}

	cmd.Flags().StringVar(&planPath, "plan", "", "Plan file to capture (JSON)")
	cmd.Flags().StringVar(&name, "name", "", "Template name (defaults to the plan name)")
	cmd.Flags().StringVar(&description, "description", "", "Template description")
	_ = cmd.MarkFlagRequired("plan")

	return cmd
}

func newTemplatesDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id-or-name>",
		Short: "Delete a saved template by ID or name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := project.LoadDefaultTemplates()
			if err != nil {
				return fmt.Errorf("load templates: %w", err)
			}

			target := store.FindByID(args[0])
			if target == nil {
				target = store.FindByName(args[0])
			}
			if target == nil {
				return fmt.Errorf("no template matching %q", args[0])
			}

			name := target.Name
			store.Remove(target.ID)
			if err := project.SaveDefaultTemplates(store); err != nil {
				return fmt.Errorf("save templates: %w", err)
			}

			fmt.Printf("Deleted template %q\n", name)
			return nil
		},
	}
}
