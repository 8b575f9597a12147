// Package browse holds the page-fetch controller: it issues one request
// per page or sort change, replaces the displayed rows and total count
// with each response, and folds fetched pages into the cross-page
// selection set until the user's selection target is met.
package browse
