package main

import (
	"fmt"
	"log/slog"
	"text/tabwriter"

	catalogapp "github.com/dwikikusuma/soundshop/internal/catalog/app"
	"github.com/dwikikusuma/soundshop/internal/catalog/infra/jsonfile"
	"github.com/dwikikusuma/soundshop/pkg/config"
	"github.com/spf13/cobra"
)

type productsFlags struct {
	search   string
	price    string
	category string
	sort     string
}

func newProductsCmd(configPath *string) *cobra.Command {
	var f productsFlags

	cmd := &cobra.Command{
		Use:   "products",
		Short: "List catalog products using the storefront filters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(*configPath)
			if err != nil {
				return err
			}

			log := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), nil))
			catalog := catalogapp.LoadCatalog(cmd.Context(), jsonfile.NewProductSource(cfg.CatalogPath), log)
			products := catalogapp.NewService(catalog).List(catalogapp.ParseFilter(f.search, f.price, f.category, f.sort))

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tCATEGORY\tPRICE")
			for _, p := range products {
				fmt.Fprintf(w, "%d\t%s\t%s\t%s %s\n", p.ID, p.Name, p.Category, p.Price.String(), cfg.Currency)
			}
			return w.Flush()
		},
	}

	cmd.Flags().StringVar(&f.search, "search", "", "case-insensitive name substring")
	cmd.Flags().StringVar(&f.price, "price", "", `price range "min-max"`)
	cmd.Flags().StringVar(&f.category, "category", "", "exact category")
	cmd.Flags().StringVar(&f.sort, "sort", "", `"low" or "high"`)
	return cmd
}
