package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/pcarver/galleria/internal/artic"
	"github.com/pcarver/galleria/internal/cli/pagination"
)

// Output formats for the list command.
const (
	outputTable  = "table"
	outputJSON   = "json"
	outputNDJSON = "ndjson"
)

// validateOutputFormat rejects unknown output formats before any fetch
// happens.
func validateOutputFormat(format string) error {
	switch format {
	case outputTable, outputJSON, outputNDJSON:
		return nil
	default:
		return fmt.Errorf("unsupported output format: %q (valid: table, json, ndjson)", format)
	}
}

// listResult is the JSON envelope for the list command.
type listResult struct {
	Data       []artic.Artwork `json:"data"`
	Pagination pagination.Meta `json:"pagination"`
}

// renderArtworks writes the fetched page in the requested format.
func renderArtworks(w io.Writer, format string, rows []artic.Artwork, meta pagination.Meta) error {
	switch format {
	case outputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(listResult{Data: rows, Pagination: meta})

	case outputNDJSON:
		enc := json.NewEncoder(w)
		for _, row := range rows {
			if err := enc.Encode(row); err != nil {
				return err
			}
		}
		return nil

	default:
		return renderArtworkTable(w, rows, meta)
	}
}

// renderArtworkTable writes a plain text table plus a pagination footer.
func renderArtworkTable(w io.Writer, rows []artic.Artwork, meta pagination.Meta) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintln(tw, "ID\tTITLE\tORIGIN\tARTIST\tSTART\tEND")
	for _, a := range rows {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%d\t%d\n",
			a.ID, a.Title, a.PlaceOfOrigin, a.ArtistDisplay, a.DateStart, a.DateEnd)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintf(w, "\nPage %d/%d (%d records total)\n",
		meta.CurrentPage, meta.TotalPages, meta.TotalItems)
	return nil
}
