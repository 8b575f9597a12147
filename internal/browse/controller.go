package browse

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/pcarver/galleria/internal/artic"
)

// DataSource is the remote collaborator the controller fetches pages
// from. *artic.Client satisfies it.
type DataSource interface {
	FetchPage(ctx context.Context, page int, sortField string, direction artic.SortDirection) (*artic.PageResponse, error)
	PageSize() int
}

// LoadRequest describes a single issued page fetch. The sequence number
// orders requests so that a slow response cannot overwrite the result of
// a fetch issued after it.
type LoadRequest struct {
	Seq       uint64
	Page      int
	SortField string
	Direction artic.SortDirection
}

// Browser is the page-fetch controller. It owns the displayed rows, the
// pagination state, the selection set and the selection target, and
// folds every fetched page into the selection per the auto-selection
// rule. Browser is not safe for concurrent use; all methods must be
// called from the owning event loop.
type Browser struct {
	source DataSource
	logger zerolog.Logger

	rows       []artic.Artwork
	total      int
	totalPages int
	page       int
	offset     int
	sort       SortState
	busy       bool

	selection *Selection
	target    int

	seq uint64
}

// NewBrowser creates a Browser over the given data source.
func NewBrowser(source DataSource, logger zerolog.Logger) *Browser {
	return &Browser{
		source:    source,
		logger:    logger.With().Str("component", "browse").Logger(),
		page:      1,
		selection: NewSelection(),
	}
}

// Rows returns the currently displayed page of artworks.
func (b *Browser) Rows() []artic.Artwork {
	return b.rows
}

// Total returns the total record count reported by the last response.
func (b *Browser) Total() int {
	return b.total
}

// TotalPages returns the page count reported by the last response.
func (b *Browser) TotalPages() int {
	return b.totalPages
}

// Page returns the one-based current page number.
func (b *Browser) Page() int {
	return b.page
}

// Offset returns the zero-based row offset of the current page.
func (b *Browser) Offset() int {
	return b.offset
}

// Busy reports whether a fetch is in flight.
func (b *Browser) Busy() bool {
	return b.busy
}

// Sort returns the active sort state.
func (b *Browser) Sort() SortState {
	return b.sort
}

// Selection returns the selection set.
func (b *Browser) Selection() *Selection {
	return b.selection
}

// Target returns the current selection target count.
func (b *Browser) Target() int {
	return b.target
}

// PageSize returns the fixed page size of the data source.
func (b *Browser) PageSize() int {
	return b.source.PageSize()
}

// BeginLoad marks a fetch for the given page as in flight and returns
// its request descriptor. The caller performs the fetch (typically on
// another goroutine) and hands the outcome back to Apply.
func (b *Browser) BeginLoad(page int) LoadRequest {
	if page < 1 {
		page = 1
	}

	b.busy = true
	b.seq++

	return LoadRequest{
		Seq:       b.seq,
		Page:      page,
		SortField: b.sort.Field,
		Direction: b.sort.Direction,
	}
}

// Fetch executes the request against the data source.
func (b *Browser) Fetch(ctx context.Context, req LoadRequest) (*artic.PageResponse, error) {
	return b.source.FetchPage(ctx, req.Page, req.SortField, req.Direction)
}

// Apply folds a completed fetch into the browser state. Responses that
// do not carry the latest issued sequence number are stale and are
// dropped without touching the displayed rows, the selection, or the
// busy flag. Returns true when the response was applied.
func (b *Browser) Apply(req LoadRequest, resp *artic.PageResponse, err error) bool {
	if req.Seq != b.seq {
		b.logger.Debug().
			Uint64("seq", req.Seq).
			Uint64("latest", b.seq).
			Int("page", req.Page).
			Msg("discarding stale page response")
		return false
	}

	b.busy = false

	if err != nil {
		// Rows stay at their previous value; nothing was mutated before
		// the response arrived.
		b.logger.Error().Err(err).Int("page", req.Page).Msg("page fetch failed")
		return false
	}

	b.rows = resp.Data
	b.total = resp.Pagination.Total
	b.totalPages = resp.Pagination.TotalPages
	b.page = req.Page
	b.offset = (req.Page - 1) * b.PageSize()

	b.autoSelect(resp.Data)
	return true
}

// LoadPage performs a full fetch-and-apply cycle synchronously. The busy
// flag is guaranteed to clear on both the success and the error path.
func (b *Browser) LoadPage(ctx context.Context, page int) error {
	req := b.BeginLoad(page)

	resp, err := b.Fetch(ctx, req)
	b.Apply(req, resp, err)
	if err != nil {
		return fmt.Errorf("loading page %d: %w", page, err)
	}
	return nil
}

// autoSelect opportunistically fills the selection from a freshly
// fetched page. When the target is positive and the selection is still
// short of it, records are appended in returned order, skipping IDs
// already selected, until either the shortfall is covered or the page is
// exhausted. The selection grows monotonically across page visits; rows
// on pages already visited are never retroactively selected and no
// additional pages are fetched to reach the target.
func (b *Browser) autoSelect(page []artic.Artwork) {
	if b.target <= 0 {
		return
	}

	remaining := b.target - b.selection.Len()
	if remaining <= 0 {
		return
	}

	added := 0
	for _, a := range page {
		if remaining == 0 {
			break
		}
		if b.selection.Add(a) {
			remaining--
			added++
		}
	}

	if added > 0 {
		b.logger.Debug().
			Int("added", added).
			Int("selected", b.selection.Len()).
			Int("target", b.target).
			Msg("auto-selected records from fetched page")
	}
}

// ErrTargetOutOfRange is returned by SubmitTarget for values outside
// [0, total].
var ErrTargetOutOfRange = errors.New("selection target out of range")

// SubmitTarget installs a new selection target. The existing selection
// is cleared entirely and the first page is re-fetched, which re-runs
// the auto-selection rule against the now-empty set. This is a hard
// reset, not an incremental adjustment.
func (b *Browser) SubmitTarget(ctx context.Context, target int) error {
	if target < 0 || (b.total > 0 && target > b.total) {
		return fmt.Errorf("%w: %d not in [0, %d]", ErrTargetOutOfRange, target, b.total)
	}

	b.selection.Clear()
	b.target = target

	return b.LoadPage(ctx, 1)
}

// BeginTargetLoad is the asynchronous variant of SubmitTarget: it
// validates and installs the target, clears the selection, and returns
// the load request for page one. The caller fetches and Applies.
func (b *Browser) BeginTargetLoad(target int) (LoadRequest, error) {
	if target < 0 || (b.total > 0 && target > b.total) {
		return LoadRequest{}, fmt.Errorf("%w: %d not in [0, %d]", ErrTargetOutOfRange, target, b.total)
	}

	b.selection.Clear()
	b.target = target

	return b.BeginLoad(1), nil
}

// ToggleSort advances the three-state sort cycle for the given field and
// returns the load request that re-fetches the current page under the
// new ordering.
func (b *Browser) ToggleSort(field string) LoadRequest {
	b.sort = b.sort.Toggle(field)
	return b.BeginLoad(b.page)
}

// BeginOffsetLoad translates a zero-based row offset into a one-based
// page number and begins a load for it, preserving the active sort.
func (b *Browser) BeginOffsetLoad(offset int) LoadRequest {
	if offset < 0 {
		offset = 0
	}
	page := offset/b.PageSize() + 1
	return b.BeginLoad(page)
}
