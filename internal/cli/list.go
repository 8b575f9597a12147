package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pcarver/galleria/internal/artic"
	"github.com/pcarver/galleria/internal/cli/pagination"
	"github.com/pcarver/galleria/internal/config"
)

// newListCmd creates the non-interactive listing command. It fetches
// exactly one page and prints it in the requested format.
func newListCmd(getConfig func() *config.Config) *cobra.Command {
	params := pagination.NewParams()
	var (
		sortExpr  string
		output    string
		localSort bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print one page of artworks",
		Long: "Fetch a single page of artwork records and print it as a table, " +
			"JSON, or NDJSON. Pages can be addressed by page number " +
			"(--page/--page-size) or by row offset (--offset/--limit); the two " +
			"modes are mutually exclusive.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			field, order, err := pagination.ParseSort(sortExpr)
			if err != nil {
				return err
			}
			params.SortField = field
			params.SortOrder = order

			if err := params.Validate(); err != nil {
				return err
			}

			if err := validateOutputFormat(output); err != nil {
				return err
			}

			cfg := getConfig()
			pageSize := params.EffectivePageSize(cfg.API.PageSize)
			client := artic.NewClient(cfg.API.BaseURL, logger, artic.WithPageSize(pageSize))

			page := params.EffectivePage(pageSize)

			sortField := params.SortField
			direction := params.SortDirection()
			if localSort {
				// Local sorting re-orders the page client-side; the server
				// gets no sort parameter.
				sortField = ""
				direction = artic.SortNone
			}

			resp, err := client.FetchPage(cmd.Context(), page, sortField, direction)
			if err != nil {
				return fmt.Errorf("listing artworks: %w", err)
			}

			rows := resp.Data
			if localSort && params.SortField != "" {
				sorter := pagination.NewArtworkSorter()
				if !sorter.IsValidField(params.SortField) {
					return fmt.Errorf("%w: %q (valid: %v)",
						pagination.ErrInvalidSortField, params.SortField, sorter.ValidFields())
				}
				rows = sorter.Sort(rows, params.SortField, params.SortOrder)
			}

			// Meta is built from the page and page size actually sent to
			// the server, not the raw flag values; in offset mode the
			// default --limit exceeds the fetched page size.
			effective := *params
			effective.Page = page
			effective.PageSize = pageSize

			meta := pagination.NewMeta(effective, resp.Pagination.Total)
			return renderArtworks(cmd.OutOrStdout(), output, rows, meta)
		},
	}

	cmd.Flags().IntVar(&params.Page, "page", 0, "1-based page number (requires --page-size)")
	cmd.Flags().IntVar(&params.PageSize, "page-size", 0, "records per page (requires --page)")
	cmd.Flags().IntVar(&params.Limit, "limit", pagination.DefaultLimit, "maximum records to return (offset mode)")
	cmd.Flags().IntVar(&params.Offset, "offset", 0, "zero-based row offset (offset mode)")
	cmd.Flags().StringVar(&sortExpr, "sort", "", "sort expression: 'field' or 'field:order' (e.g. 'date_start:desc')")
	cmd.Flags().StringVarP(&output, "output", "o", outputTable, "output format: table, json, or ndjson")
	cmd.Flags().BoolVar(&localSort, "local-sort", false, "sort the fetched page locally instead of server-side")

	return cmd
}
