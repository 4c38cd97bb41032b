package main

import (
	"workshop/internal/adapters/in/catalog"
	"workshop/internal/core/application/usecases/commands"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newTemplatesCommand(v *viper.Viper) *cobra.Command {
	templates := &cobra.Command{
		Use:   "templates",
		Short: "Manage task and workflow templates",
	}

	var file string
	importCmd := &cobra.Command{
		Use:   "import",
		Short: "Insert or overwrite templates from a YAML catalog",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			parsed, err := catalog.FromFile(file)
			if err != nil {
				return err
			}
			cmd, err := commands.NewImportTemplatesCommand(parsed.Tasks, parsed.Workflows)
			if err != nil {
				return err
			}

			config, err := loadConfig(v)
			if err != nil {
				return err
			}
			root, closeDB, err := connect(config)
			if err != nil {
				return err
			}
			defer closeDB()

			if err = root.CreateImportTemplatesCommandHandler().Handle(c.Context(), cmd); err != nil {
				return err
			}
			c.Printf("imported %d tasks and %d workflows\n", len(parsed.Tasks), len(parsed.Workflows))
			return nil
		},
	}
	importCmd.Flags().StringVarP(&file, "file", "f", "", "catalog file")
	_ = importCmd.MarkFlagRequired("file")

	templates.AddCommand(importCmd)
	return templates
}
