package browse

import "github.com/pcarver/galleria/internal/artic"

// SortState tracks the active sort column and direction. The zero value
// means unsorted.
type SortState struct {
	Field     string
	Direction artic.SortDirection
}

// Toggle computes the next sort state for a column header click. The
// cycle per field is: unsorted or other field -> ascending, ascending on
// the same field -> descending, descending on the same field -> back to
// ascending. Once a field has been chosen the direction never returns to
// unsorted; toggling only flips between ascending and descending.
func (s SortState) Toggle(field string) SortState {
	if s.Field != field || s.Direction == artic.SortNone {
		return SortState{Field: field, Direction: artic.SortAsc}
	}
	if s.Direction == artic.SortAsc {
		return SortState{Field: field, Direction: artic.SortDesc}
	}
	return SortState{Field: field, Direction: artic.SortAsc}
}

// Active reports whether a sort is currently applied.
func (s SortState) Active() bool {
	return s.Field != "" && s.Direction != artic.SortNone
}
