package browse

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pcarver/galleria/internal/artic"
)

// fakeSource serves pages out of a fixed record list, mimicking the
// remote API's pagination metadata. Setting fail makes every fetch
// return an error.
type fakeSource struct {
	records  []artic.Artwork
	pageSize int
	fail     error
	calls    []int
}

func newFakeSource(total int) *fakeSource {
	records := make([]artic.Artwork, total)
	for i := range records {
		records[i] = artic.Artwork{ID: i + 1, Title: fmt.Sprintf("Artwork %d", i+1)}
	}
	return &fakeSource{records: records, pageSize: artic.DefaultPageSize}
}

func (f *fakeSource) PageSize() int {
	return f.pageSize
}

func (f *fakeSource) FetchPage(_ context.Context, page int, _ string, _ artic.SortDirection) (*artic.PageResponse, error) {
	f.calls = append(f.calls, page)
	if f.fail != nil {
		return nil, f.fail
	}

	start := (page - 1) * f.pageSize
	if start > len(f.records) {
		start = len(f.records)
	}
	end := start + f.pageSize
	if end > len(f.records) {
		end = len(f.records)
	}

	totalPages := (len(f.records) + f.pageSize - 1) / f.pageSize
	return &artic.PageResponse{
		Data: f.records[start:end],
		Pagination: artic.Pagination{
			Total:       len(f.records),
			Limit:       f.pageSize,
			Offset:      start,
			TotalPages:  totalPages,
			CurrentPage: page,
		},
	}, nil
}

func newTestBrowser(total int) (*Browser, *fakeSource) {
	source := newFakeSource(total)
	return NewBrowser(source, zerolog.Nop()), source
}

func selectedIDs(b *Browser) []int {
	items := b.Selection().Items()
	ids := make([]int, len(items))
	for i, item := range items {
		ids[i] = item.ID
	}
	return ids
}

func TestLoadPage_ReplacesRowsAndTotal(t *testing.T) {
	b, _ := newTestBrowser(30)
	ctx := context.Background()

	require.NoError(t, b.LoadPage(ctx, 1))
	assert.Len(t, b.Rows(), 12)
	assert.Equal(t, 30, b.Total())
	assert.Equal(t, 3, b.TotalPages())
	assert.Equal(t, 1, b.Page())
	assert.False(t, b.Busy())

	require.NoError(t, b.LoadPage(ctx, 3))
	assert.Len(t, b.Rows(), 6)
	assert.Equal(t, 3, b.Page())
	assert.Equal(t, 24, b.Offset())
}

func TestLoadPage_RowCountNeverExceedsPageSize(t *testing.T) {
	b, _ := newTestBrowser(100)
	ctx := context.Background()

	for page := 1; page <= 9; page++ {
		require.NoError(t, b.LoadPage(ctx, page))
		assert.LessOrEqual(t, len(b.Rows()), b.PageSize())
	}
}

func TestLoadPage_FailureLeavesRowsAndClearsBusy(t *testing.T) {
	b, source := newTestBrowser(30)
	ctx := context.Background()

	require.NoError(t, b.LoadPage(ctx, 1))
	before := b.Rows()

	source.fail = errors.New("connection reset")
	err := b.LoadPage(ctx, 2)
	require.Error(t, err)

	assert.False(t, b.Busy(), "busy flag must clear on the error path")
	assert.Equal(t, before, b.Rows(), "rows keep their previous value")
	assert.Equal(t, 1, b.Page())
}

func TestAutoSelect_FillsTargetFromFirstPage(t *testing.T) {
	b, _ := newTestBrowser(100)
	ctx := context.Background()

	require.NoError(t, b.SubmitTarget(ctx, 5))

	assert.Equal(t, 5, b.Selection().Len())
	assert.Equal(t, []int{1, 2, 3, 4, 5}, selectedIDs(b), "first 5 records of page 1 in returned order")
}

func TestAutoSelect_GrowsMonotonicallyAcrossPages(t *testing.T) {
	b, _ := newTestBrowser(100)
	ctx := context.Background()

	require.NoError(t, b.SubmitTarget(ctx, 15))
	assert.Equal(t, 12, b.Selection().Len(), "page 1 covers the first 12")

	require.NoError(t, b.LoadPage(ctx, 2))
	assert.Equal(t, 15, b.Selection().Len())
	assert.Equal(t, []int{13, 14, 15}, selectedIDs(b)[12:])

	// Paging on after the target is met adds nothing.
	require.NoError(t, b.LoadPage(ctx, 3))
	assert.Equal(t, 15, b.Selection().Len())
}

func TestAutoSelect_SkipsAlreadySelected(t *testing.T) {
	b, _ := newTestBrowser(100)
	ctx := context.Background()

	b.target = 5
	b.Selection().AddAll([]artic.Artwork{art(101), art(102), art(103)})

	require.NoError(t, b.LoadPage(ctx, 1))

	assert.Equal(t, 5, b.Selection().Len(), "2 more appended to reach the target")
	assert.Equal(t, []int{101, 102, 103, 1, 2}, selectedIDs(b))
}

func TestAutoSelect_NeverExceedsTarget(t *testing.T) {
	b, _ := newTestBrowser(100)
	ctx := context.Background()

	require.NoError(t, b.SubmitTarget(ctx, 7))
	for page := 2; page <= 5; page++ {
		require.NoError(t, b.LoadPage(ctx, page))
		assert.LessOrEqual(t, b.Selection().Len(), 7)
	}
	assert.Equal(t, 7, b.Selection().Len())
}

func TestAutoSelect_BackwardPageVisitKeepsSelection(t *testing.T) {
	b, _ := newTestBrowser(100)
	ctx := context.Background()

	require.NoError(t, b.SubmitTarget(ctx, 14))
	require.NoError(t, b.LoadPage(ctx, 2))
	assert.Equal(t, 14, b.Selection().Len())

	// Back to page 1: already-selected records stay selected, nothing new
	// is added beyond the remaining-count check.
	require.NoError(t, b.LoadPage(ctx, 1))
	assert.Equal(t, 14, b.Selection().Len())
	assert.True(t, b.Selection().Contains(1))
}

func TestAutoSelect_ZeroTargetSelectsNothing(t *testing.T) {
	b, _ := newTestBrowser(30)
	ctx := context.Background()

	require.NoError(t, b.SubmitTarget(ctx, 0))
	assert.Equal(t, 0, b.Selection().Len())
}

func TestSubmitTarget_FirstPageSizeBoundsSelection(t *testing.T) {
	// After submitting target T the selection size is exactly
	// min(T, firstPageSize) right after the first-page fetch.
	tests := []struct {
		target int
		want   int
	}{
		{target: 5, want: 5},
		{target: 12, want: 12},
		{target: 20, want: 12},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("target=%d", tt.target), func(t *testing.T) {
			b, _ := newTestBrowser(100)
			require.NoError(t, b.SubmitTarget(context.Background(), tt.target))
			assert.Equal(t, tt.want, b.Selection().Len())
		})
	}
}

func TestSubmitTarget_HardReset(t *testing.T) {
	b, _ := newTestBrowser(100)
	ctx := context.Background()

	require.NoError(t, b.SubmitTarget(ctx, 15))
	require.NoError(t, b.LoadPage(ctx, 2))
	require.Equal(t, 15, b.Selection().Len())

	// A new target discards the old selection and restarts from page 1.
	require.NoError(t, b.SubmitTarget(ctx, 3))
	assert.Equal(t, 3, b.Selection().Len())
	assert.Equal(t, []int{1, 2, 3}, selectedIDs(b))
	assert.Equal(t, 1, b.Page())
}

func TestSubmitTarget_RejectsOutOfRange(t *testing.T) {
	b, _ := newTestBrowser(30)
	ctx := context.Background()
	require.NoError(t, b.LoadPage(ctx, 1))

	err := b.SubmitTarget(ctx, -1)
	require.ErrorIs(t, err, ErrTargetOutOfRange)

	err = b.SubmitTarget(ctx, 31)
	require.ErrorIs(t, err, ErrTargetOutOfRange)

	require.NoError(t, b.SubmitTarget(ctx, 30))
}

func TestToggleSort_ThreeStateCycle(t *testing.T) {
	b, source := newTestBrowser(30)
	ctx := context.Background()
	require.NoError(t, b.LoadPage(ctx, 1))

	apply := func(req LoadRequest) {
		resp, err := b.Fetch(ctx, req)
		b.Apply(req, resp, err)
	}

	// First click: ascending.
	apply(b.ToggleSort("title"))
	assert.Equal(t, SortState{Field: "title", Direction: artic.SortAsc}, b.Sort())

	// Second click: descending.
	apply(b.ToggleSort("title"))
	assert.Equal(t, SortState{Field: "title", Direction: artic.SortDesc}, b.Sort())

	// Third click: back to ascending, never unsorted.
	apply(b.ToggleSort("title"))
	assert.Equal(t, SortState{Field: "title", Direction: artic.SortAsc}, b.Sort())

	// Switching field resets to ascending.
	apply(b.ToggleSort("date_start"))
	assert.Equal(t, SortState{Field: "date_start", Direction: artic.SortAsc}, b.Sort())

	// Sort changes re-fetch the current page.
	assert.Equal(t, []int{1, 1, 1, 1, 1}, source.calls)
}

func TestBeginOffsetLoad_MapsOffsetToPage(t *testing.T) {
	tests := []struct {
		offset   int
		wantPage int
	}{
		{offset: 0, wantPage: 1},
		{offset: 11, wantPage: 1},
		{offset: 12, wantPage: 2},
		{offset: 24, wantPage: 3},
		{offset: -5, wantPage: 1},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("offset=%d", tt.offset), func(t *testing.T) {
			b, _ := newTestBrowser(100)
			req := b.BeginOffsetLoad(tt.offset)
			assert.Equal(t, tt.wantPage, req.Page)
		})
	}
}

func TestBeginOffsetLoad_PreservesSort(t *testing.T) {
	b, _ := newTestBrowser(100)
	ctx := context.Background()
	require.NoError(t, b.LoadPage(ctx, 1))

	req := b.ToggleSort("title")
	resp, err := b.Fetch(ctx, req)
	b.Apply(req, resp, err)

	next := b.BeginOffsetLoad(24)
	assert.Equal(t, "title", next.SortField)
	assert.Equal(t, artic.SortAsc, next.Direction)
}

func TestApply_DiscardsStaleResponse(t *testing.T) {
	b, _ := newTestBrowser(100)
	ctx := context.Background()

	// Two overlapping requests: the first one resolves after the second.
	first := b.BeginLoad(1)
	second := b.BeginLoad(2)

	secondResp, err := b.Fetch(ctx, second)
	require.NoError(t, err)
	require.True(t, b.Apply(second, secondResp, nil))
	assert.Equal(t, 2, b.Page())

	firstResp, err := b.Fetch(ctx, first)
	require.NoError(t, err)
	assert.False(t, b.Apply(first, firstResp, nil), "late response from an older request is dropped")
	assert.Equal(t, 2, b.Page())
	assert.Equal(t, 13, b.Rows()[0].ID)
}

func TestApply_StaleErrorDoesNotClearBusy(t *testing.T) {
	b, _ := newTestBrowser(100)

	stale := b.BeginLoad(1)
	_ = b.BeginLoad(2)

	b.Apply(stale, nil, errors.New("timeout"))
	assert.True(t, b.Busy(), "busy tracks the latest in-flight request")
}

func TestBeginTargetLoad_AsyncVariant(t *testing.T) {
	b, _ := newTestBrowser(100)
	ctx := context.Background()
	require.NoError(t, b.LoadPage(ctx, 1))

	b.Selection().AddAll([]artic.Artwork{art(1), art(2)})

	req, err := b.BeginTargetLoad(4)
	require.NoError(t, err)
	assert.Equal(t, 1, req.Page)
	assert.Equal(t, 0, b.Selection().Len(), "selection cleared before the re-fetch")
	assert.True(t, b.Busy())

	resp, err := b.Fetch(ctx, req)
	require.NoError(t, err)
	b.Apply(req, resp, nil)
	assert.Equal(t, 4, b.Selection().Len())

	_, err = b.BeginTargetLoad(9999)
	require.ErrorIs(t, err, ErrTargetOutOfRange)
}
