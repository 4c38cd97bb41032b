package main

import (
	"workshop/internal/adapters/out/postgres/migrations"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newMigrateCommand(v *viper.Viper) *cobra.Command {
	migrate := &cobra.Command{
		Use:   "migrate",
		Short: "Manage the database schema",
	}

	migrate.AddCommand(
		&cobra.Command{
			Use:   "up",
			Short: "Apply all pending migrations",
			Args:  cobra.NoArgs,
			RunE: func(c *cobra.Command, _ []string) error {
				config, err := loadConfig(v)
				if err != nil {
					return err
				}
				if err = migrations.Up(config.DatabaseURL()); err != nil {
					return err
				}
				c.Println("migrations applied")
				return nil
			},
		},
		&cobra.Command{
			Use:   "down",
			Short: "Roll back all migrations",
			Args:  cobra.NoArgs,
			RunE: func(c *cobra.Command, _ []string) error {
				config, err := loadConfig(v)
				if err != nil {
					return err
				}
				if err = migrations.Down(config.DatabaseURL()); err != nil {
					return err
				}
				c.Println("migrations rolled back")
				return nil
			},
		},
	)

	return migrate
}
