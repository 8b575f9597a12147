package artic

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog"
)

// DefaultBaseURL is the public collections API endpoint.
const DefaultBaseURL = "https://api.artic.edu/api/v1"

// DefaultPageSize is the fixed number of records requested per page.
const DefaultPageSize = 12

// requestTimeout bounds every page fetch.
const requestTimeout = 30 * time.Second

// SortDirection is the direction of a sort parameter.
type SortDirection int

const (
	// SortNone indicates no sort parameter should be sent.
	SortNone SortDirection = iota
	// SortAsc sorts ascending (bare field name on the wire).
	SortAsc
	// SortDesc sorts descending (field name prefixed with "-").
	SortDesc
)

// String returns the wire encoding suffix for the direction.
func (d SortDirection) String() string {
	switch d {
	case SortAsc:
		return "asc"
	case SortDesc:
		return "desc"
	case SortNone:
		return "none"
	default:
		return "unknown"
	}
}

// fields is the fixed projection requested for every page. Keeping the
// projection stable means every response decodes into the same Artwork
// shape regardless of page or sort.
const fields = "id,title,place_of_origin,artist_display,inscriptions,date_start,date_end"

// Client fetches artwork pages from the collections API.
type Client struct {
	baseURL  string
	pageSize int
	http     *http.Client
	logger   zerolog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient overrides the underlying HTTP client (used by tests).
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.http = hc
	}
}

// WithPageSize overrides the fixed page size.
func WithPageSize(size int) Option {
	return func(c *Client) {
		if size > 0 {
			c.pageSize = size
		}
	}
}

// NewClient creates a Client for the given base URL. An empty baseURL
// falls back to DefaultBaseURL.
func NewClient(baseURL string, logger zerolog.Logger, opts ...Option) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	c := &Client{
		baseURL:  baseURL,
		pageSize: DefaultPageSize,
		http:     &http.Client{Timeout: requestTimeout},
		logger:   logger.With().Str("component", "artic").Logger(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// PageSize returns the fixed page size used for every request.
func (c *Client) PageSize() int {
	return c.pageSize
}

// FetchPage retrieves exactly one page of artwork records. The page
// number is one-based. When sortField is non-empty and direction is
// SortAsc or SortDesc a sort parameter is appended; ascending is encoded
// as the bare field name, descending as the field name prefixed with "-".
func (c *Client) FetchPage(ctx context.Context, page int, sortField string, direction SortDirection) (*PageResponse, error) {
	if page < 1 {
		return nil, fmt.Errorf("page must be >= 1, got %d", page)
	}

	reqURL, err := c.buildPageURL(page, sortField, direction)
	if err != nil {
		return nil, fmt.Errorf("building page request: %w", err)
	}

	traceID := ulid.Make().String()
	logger := c.logger.With().Str("trace_id", traceID).Logger()

	logger.Debug().
		Int("page", page).
		Str("sort_field", sortField).
		Str("sort_direction", direction.String()).
		Msg("fetching artwork page")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating page request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching page %d: %w", page, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetching page %d: HTTP %d", page, resp.StatusCode)
	}

	var pageResp PageResponse
	if decodeErr := json.NewDecoder(resp.Body).Decode(&pageResp); decodeErr != nil {
		return nil, fmt.Errorf("decoding page %d: %w", page, decodeErr)
	}

	logger.Debug().
		Int("page", page).
		Int("records", len(pageResp.Data)).
		Int("total", pageResp.Pagination.Total).
		Dur("elapsed", time.Since(start)).
		Msg("artwork page fetched")

	return &pageResp, nil
}

// buildPageURL assembles the artworks URL with page, limit, fields and
// optional sort query parameters.
func (c *Client) buildPageURL(page int, sortField string, direction SortDirection) (string, error) {
	u, err := url.Parse(c.baseURL + "/artworks")
	if err != nil {
		return "", err
	}

	q := u.Query()
	q.Set("page", strconv.Itoa(page))
	q.Set("limit", strconv.Itoa(c.pageSize))
	q.Set("fields", fields)

	if sortField != "" && direction != SortNone {
		sortParam := sortField
		if direction == SortDesc {
			sortParam = "-" + sortField
		}
		q.Set("sort", sortParam)
	}

	u.RawQuery = q.Encode()
	return u.String(), nil
}
