// Package pagination provides utilities for CLI pagination and sorting.
//
// This package contains the shared pagination logic used by the list
// command, including:
//   - Params: CLI flag parsing and validation
//   - Meta: response metadata derived for paginated results
//   - ArtworkSorter: local sorting of artwork records with field validation
//
// Two pagination modes are supported, page-based (--page/--page-size)
// and offset-based (--limit/--offset); they are mutually exclusive.
package pagination
