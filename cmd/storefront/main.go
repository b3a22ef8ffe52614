package main

import (
	"os"

	"github.com/dwikikusuma/soundshop/pkg/config"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:          "storefront",
		Short:        "Sound Shop storefront",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			return runServe(cmd.Context(), cfg)
		},
	}
	root.PersistentFlags().StringVar(&configPath, "config", "storefront.yaml", "path to an optional YAML config file")

	root.AddCommand(
		newServeCmd(&configPath),
		newProductsCmd(&configPath),
	)
	return root
}
