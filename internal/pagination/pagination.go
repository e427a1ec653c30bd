// Package pagination provides generic page-slicing and text/location
// filtering over in-memory lists, shared by the asset and transaction
// list endpoints.
package pagination

import "strings"

// LocationAll is the sentinel meaning "do not filter by location"
const LocationAll = "all"

// Page is one slice of a paginated list
type Page[T any] struct {
	Items     []T `json:"data"`
	Page      int `json:"page"`
	PageCount int `json:"page_count"`
	Total     int `json:"total"`
}

// Paginate slices items into pages of pageSize and returns the requested
// page. PageCount = ceil(len(items)/pageSize). A page beyond the last is
// clamped to the last page, a page below 1 is clamped to 1, so callers whose
// filtered input shrank always get a valid slice. An empty input yields
// PageCount 0 with an empty Items slice.
func Paginate[T any](items []T, page, pageSize int) Page[T] {
	if pageSize < 1 {
		pageSize = 1
	}
	total := len(items)
	pageCount := (total + pageSize - 1) / pageSize

	if page > pageCount {
		page = pageCount
	}
	if page < 1 {
		page = 1
	}

	start := (page - 1) * pageSize
	if start > total {
		start = total
	}
	end := start + pageSize
	if end > total {
		end = total
	}

	return Page[T]{
		Items:     items[start:end],
		Page:      page,
		PageCount: pageCount,
		Total:     total,
	}
}

// MatchText reports whether the query is a case-insensitive substring of any
// of the given fields. An empty query matches everything.
func MatchText(query string, fields ...string) bool {
	if query == "" {
		return true
	}
	q := strings.ToLower(query)
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), q) {
			return true
		}
	}
	return false
}

// MatchLocation reports whether a record's location passes the location
// filter. The filter is an exact id match, with LocationAll (or empty)
// meaning no filtering.
func MatchLocation(filter, locationID string) bool {
	if filter == "" || filter == LocationAll {
		return true
	}
	return filter == locationID
}

// Filter returns the items for which keep returns true, preserving order.
// Individual predicates compose by conjunction inside keep.
func Filter[T any](items []T, keep func(T) bool) []T {
	out := make([]T, 0, len(items))
	for _, it := range items {
		if keep(it) {
			out = append(out, it)
		}
	}
	return out
}
