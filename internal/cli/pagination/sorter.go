package pagination

import (
	"sort"

	"github.com/pcarver/galleria/internal/artic"
)

// ArtworkSorter sorts artwork records locally for non-interactive
// output. The remote API orders pages server-side; this sorter is used
// when the user asks the list command to re-order the page it already
// holds.
type ArtworkSorter struct {
	validFields map[string]bool
}

// NewArtworkSorter creates an ArtworkSorter with the sortable artwork
// fields.
func NewArtworkSorter() *ArtworkSorter {
	return &ArtworkSorter{
		validFields: map[string]bool{
			"id":              true,
			"title":           true,
			"place_of_origin": true,
			"artist_display":  true,
			"date_start":      true,
			"date_end":        true,
		},
	}
}

// IsValidField checks if the field is valid for sorting.
func (s *ArtworkSorter) IsValidField(field string) bool {
	return s.validFields[field]
}

// ValidFields returns all valid sort fields in consistent order.
func (s *ArtworkSorter) ValidFields() []string {
	fields := make([]string, 0, len(s.validFields))
	for field := range s.validFields {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	return fields
}

// Sort sorts artworks by the specified field and order. Returns a new
// sorted slice; does not modify the original. If field is invalid, the
// original slice is returned unchanged.
func (s *ArtworkSorter) Sort(artworks []artic.Artwork, field, order string) []artic.Artwork {
	if !s.IsValidField(field) {
		return artworks
	}

	sorted := make([]artic.Artwork, len(artworks))
	copy(sorted, artworks)

	sort.SliceStable(sorted, func(i, j int) bool {
		// For descending order, swap i and j to maintain stability.
		if order == SortOrderDesc {
			i, j = j, i
		}

		switch field {
		case "id":
			return sorted[i].ID < sorted[j].ID
		case "title":
			return sorted[i].Title < sorted[j].Title
		case "place_of_origin":
			return sorted[i].PlaceOfOrigin < sorted[j].PlaceOfOrigin
		case "artist_display":
			return sorted[i].ArtistDisplay < sorted[j].ArtistDisplay
		case "date_start":
			return sorted[i].DateStart < sorted[j].DateStart
		case "date_end":
			return sorted[i].DateEnd < sorted[j].DateEnd
		default:
			return false
		}
	})

	return sorted
}
