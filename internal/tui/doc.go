// Package tui contains the interactive terminal interface: a paginated
// artwork table with per-row selection, sortable columns, and a popover
// for the cross-page selection target.
package tui
