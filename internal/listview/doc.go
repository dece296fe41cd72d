// Package listview filters and paginates an in-memory record collection for
// list screens.
//
// A view owns one Engine. The engine holds the view's FilterState and
// PaginationState; the records themselves belong to the caller and are never
// modified. Compute is the pure core and can be used without an Engine.
//
// The current page is clamped only by SetCurrentPage (and the PrevPage/NextPage
// helpers built on it). Changing the search text or category does not touch the
// page, so a narrowed result set can leave the view on an empty page until the
// user navigates.
package listview
