package pagination

import (
	"errors"
	"fmt"
	"strings"

	"github.com/pcarver/galleria/internal/artic"
)

// Pagination modes and validation limits.
const (
	DefaultLimit = 100
	MaxLimit     = 10000
	MinPage      = 1

	DefaultSortOrder = "asc"
	SortOrderAsc     = "asc"
	SortOrderDesc    = "desc"
)

// Common validation errors.
var (
	ErrNegativeLimit        = errors.New("limit cannot be negative")
	ErrNegativeOffset       = errors.New("offset cannot be negative")
	ErrNegativePage         = errors.New("page cannot be negative")
	ErrNegativePageSize     = errors.New("page-size cannot be negative")
	ErrLimitTooLarge        = errors.New("limit must be <= 10000")
	ErrMixedPaginationModes = errors.New("page and offset parameters are mutually exclusive")
	ErrPageSizeWithoutPage  = errors.New("page must be specified when using page-size")
	ErrPageWithoutPageSize  = errors.New("page-size must be specified when using page")
	ErrInvalidSortFormat    = errors.New("invalid sort format: use 'field' or 'field:order' (e.g., 'title:desc')")
	ErrEmptySortField       = errors.New("sort field cannot be empty")
	ErrInvalidSortField     = errors.New("invalid sort field")
	ErrInvalidSortOrder     = errors.New("sort order must be 'asc' or 'desc'")
)

// Params holds CLI pagination flags and provides validation. Supports
// two pagination modes:
//   - Offset-based: --limit and --offset
//   - Page-based: --page and --page-size
//
// These modes are mutually exclusive.
type Params struct {
	// Limit is the maximum number of results to return (offset-based mode).
	Limit int

	// Offset is the number of results to skip (offset-based mode).
	Offset int

	// Page is the 1-based page number (page-based mode).
	Page int

	// PageSize is the number of results per page (page-based mode).
	PageSize int

	// SortField is the field name to sort by (e.g., "title", "date_start").
	SortField string

	// SortOrder is the sort direction: "asc" or "desc".
	SortOrder string
}

// NewParams creates a Params with default values. Page-based mode is
// inactive until Page is set.
func NewParams() *Params {
	return &Params{
		Limit:     DefaultLimit,
		SortOrder: DefaultSortOrder,
	}
}

// Validate checks if the pagination parameters are valid and consistent.
func (p Params) Validate() error {
	if p.Limit < 0 {
		return ErrNegativeLimit
	}
	if p.Limit > MaxLimit {
		return ErrLimitTooLarge
	}
	if p.Offset < 0 {
		return ErrNegativeOffset
	}
	if p.Page < 0 {
		return ErrNegativePage
	}
	if p.PageSize < 0 {
		return ErrNegativePageSize
	}

	if p.Page > 0 && p.Offset > 0 {
		return ErrMixedPaginationModes
	}

	if p.Page == 0 && p.PageSize > 0 {
		return ErrPageSizeWithoutPage
	}
	if p.PageSize == 0 && p.Page > 0 {
		return ErrPageWithoutPageSize
	}

	return nil
}

// IsPageBased returns true if page-based pagination is active.
func (p Params) IsPageBased() bool {
	return p.Page > 0
}

// EffectivePage returns the one-based page number for the parameters,
// converting a zero-based offset when in offset-based mode.
func (p Params) EffectivePage(pageSize int) int {
	if p.IsPageBased() {
		return p.Page
	}
	if pageSize <= 0 {
		return MinPage
	}
	return p.Offset/pageSize + 1
}

// EffectivePageSize returns the page size to request, falling back to
// the given default when neither mode sets one.
func (p Params) EffectivePageSize(def int) int {
	if p.IsPageBased() {
		return p.PageSize
	}
	if p.Limit > 0 && p.Limit < def {
		return p.Limit
	}
	return def
}

// SortDirection converts the sort order into the client's direction
// encoding. An empty sort field yields SortNone.
func (p Params) SortDirection() artic.SortDirection {
	if p.SortField == "" {
		return artic.SortNone
	}
	if p.SortOrder == SortOrderDesc {
		return artic.SortDesc
	}
	return artic.SortAsc
}

// sortPartsMax is the maximum number of parts in a sort string (field:order).
const sortPartsMax = 2

// ParseSort parses a sort string in the format "field" or "field:order".
// Examples: "title", "date_start:desc", "artist_display:asc".
// Returns the field name and order, or an error if invalid.
//
//nolint:nonamedreturns // Named returns improve readability for this multi-value function.
func ParseSort(sortStr string) (field, order string, err error) {
	if sortStr == "" {
		return "", DefaultSortOrder, nil
	}

	parts := strings.Split(sortStr, ":")
	switch len(parts) {
	case 1:
		field = strings.TrimSpace(parts[0])
		order = DefaultSortOrder
	case sortPartsMax:
		field = strings.TrimSpace(parts[0])
		order = strings.ToLower(strings.TrimSpace(parts[1]))
	default:
		return "", "", fmt.Errorf("%w: %q", ErrInvalidSortFormat, sortStr)
	}

	if field == "" {
		return "", "", ErrEmptySortField
	}

	if order != SortOrderAsc && order != SortOrderDesc {
		return "", "", fmt.Errorf("%w: got %q", ErrInvalidSortOrder, order)
	}

	return field, order, nil
}
