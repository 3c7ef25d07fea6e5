package commands

import (
	"fmt"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"mixget/internal/catalog"
	"mixget/internal/domain"
)

// search <query>: list matching motion products without exporting.
func searchCmd() *cobra.Command {
	var (
		page  int
		limit int
		all   bool
	)
	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "List motion products matching a query",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var results domain.Catalog
			if all {
				cat, err := catalog.Search{API: appCtx.API, Query: args[0], PageSize: limit}.Load(cmd.Context())
				if err != nil {
					return err
				}
				results = cat
			} else {
				res, err := appCtx.API.SearchProducts(cmd.Context(), args[0], page, limit)
				if err != nil {
					return err
				}
				results = res.Results
				fmt.Printf("page %d of %d (%d results)\n", res.Pagination.Page, res.Pagination.NumPages, res.Pagination.NumResults)
			}
			lo.ForEach(results, func(e domain.CatalogEntry, _ int) {
				fmt.Printf("%s\t%s\n", e.ID, e.Description)
			})
			return nil
		},
	}
	cmd.Flags().IntVar(&page, "page", 1, "result page to show")
	cmd.Flags().IntVar(&limit, "limit", catalog.DefaultPageSize, "results per page")
	cmd.Flags().BoolVar(&all, "all", false, "fetch and list every page")
	return cmd
}
