package main

import (
	"workshop/internal/adapters/in/console"
	"workshop/internal/core/application/usecases/queries"
	"workshop/internal/core/domain/model/kernel"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newOrderCommand(v *viper.Viper) *cobra.Command {
	order := &cobra.Command{
		Use:   "order",
		Short: "Inspect orders",
	}

	order.AddCommand(&cobra.Command{
		Use:   "show <order-id>",
		Short: "Print the rollup of an order",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			id, err := kernel.UUIDFromString(args[0])
			if err != nil {
				return err
			}
			query, err := queries.NewGetOrderDetailQuery(id)
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

			detail, err := root.CreateGetOrderDetailQueryHandler().Handle(c.Context(), query)
			if err != nil {
				return err
			}
			console.RenderOrder(c.OutOrStdout(), detail)
			return nil
		},
	})

	return order
}
