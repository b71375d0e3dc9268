package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yudhap/stowplan/internal/project"
)

func newBackupCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "backup <file>",
		Short: "Export config, inventory, and templates to a single file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := loadConfigOrDefault()

			inv, _, err := project.LoadOrCreateInventory()
			if err != nil {
				return fmt.Errorf("load inventory: %w", err)
			}
			store, err := project.LoadDefaultTemplates()
			if err != nil {
				return fmt.Errorf("load templates: %w", err)
			}

			if err := project.ExportAllData(args[0], cfg, inv, store); err != nil {
				return err
			}
			okColor.Printf("Backed up config, %d container presets, %d cargo presets, and %d templates to %s\n",
				len(inv.Containers), len(inv.Cargo), len(store.Templates), args[0])
			return nil
		},
	}
}

func newRestoreCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "restore <file>",
		Short: "Import config, inventory, and templates from a backup file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			backup, err := project.ImportAllData(args[0])
			if err != nil {
				return err
			}

			if err := project.SaveAppConfig(project.DefaultConfigPath(), backup.Config); err != nil {
				return fmt.Errorf("restore config: %w", err)
			}

			invPath, err := project.DefaultInventoryPath()
			if err != nil {
				return fmt.Errorf("resolve inventory path: %w", err)
			}
			if err := project.SaveInventory(invPath, backup.Inventory); err != nil {
				return fmt.Errorf("restore inventory: %w", err)
			}

			if err := project.SaveDefaultTemplates(backup.Templates); err != nil {
				return fmt.Errorf("restore templates: %w", err)
			}

			okColor.Printf("Restored backup from %s (created %s)\n", args[0], backup.CreatedAt)
			return nil
		},
	}
}
