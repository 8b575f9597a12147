package artic

// Artwork is a single artwork record as returned by the collections API.
// Records are immutable once fetched; the ID is unique and stable across
// pages, which is what the selection layer keys on.
type Artwork struct {
	ID            int    `json:"id"`
	Title         string `json:"title"`
	PlaceOfOrigin string `json:"place_of_origin"`
	ArtistDisplay string `json:"artist_display"`
	Inscriptions  string `json:"inscriptions"`
	DateStart     int    `json:"date_start"`
	DateEnd       int    `json:"date_end"`
}

// Pagination is the pagination metadata block attached to every page
// response.
type Pagination struct {
	Total       int `json:"total"`
	Limit       int `json:"limit"`
	Offset      int `json:"offset"`
	TotalPages  int `json:"total_pages"`
	CurrentPage int `json:"current_page"`
}

// PageResponse is one page of artwork records plus pagination metadata.
// Each response supersedes the previous one entirely; pages are never
// merged.
type PageResponse struct {
	Data       []Artwork  `json:"data"`
	Pagination Pagination `json:"pagination"`
}
