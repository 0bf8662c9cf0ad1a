// internal/app/system/paging/paging.go
package paging

import (
	"net/http"
	"strconv"

	"github.com/dalemusser/waffle/pantry/query"
)

// PageSize is the number of posts shown per feed page. All three feed
// contexts (home, group, profile) share this value so a post keeps the
// same page position regardless of which feed it is viewed in.
const PageSize = 10

// Page is one bounded slice of a candidate set plus the metadata a
// template needs to render pager controls.
type Page[T any] struct {
	Items      []T // the slice for this page, 0..pageSize items
	Total      int // size of the full candidate set
	TotalPages int // ceil(Total/pageSize), minimum 1
	Number     int // the page actually served, after clamping
}

// Paginate slices items for the requested 1-based page number.
//
// It is pure: identical inputs always produce identical output, and the
// input slice is never modified. Callers must pass items already sorted
// in display order; Paginate neither filters nor reorders.
//
// Out-of-range page numbers (including values below 1) are clamped to
// the nearest valid page rather than treated as errors — feeds are
// browsable and a stale pager link should land on the last page, not a
// not-found response. Number reports the page that was actually served.
//
// An empty candidate set yields one empty page (TotalPages is 1), so
// templates can always render "page 1 of 1".
func Paginate[T any](items []T, pageSize, pageNumber int) Page[T] {
	if pageSize < 1 {
		pageSize = 1
	}

	total := len(items)
	totalPages := (total + pageSize - 1) / pageSize
	if totalPages < 1 {
		totalPages = 1
	}

	if pageNumber < 1 {
		pageNumber = 1
	}
	if pageNumber > totalPages {
		pageNumber = totalPages
	}

	lo := (pageNumber - 1) * pageSize
	hi := lo + pageSize
	if lo > total {
		lo = total
	}
	if hi > total {
		hi = total
	}

	return Page[T]{
		Items:      items[lo:hi],
		Total:      total,
		TotalPages: totalPages,
		Number:     pageNumber,
	}
}

// HasPrev reports whether a page precedes this one.
func (p Page[T]) HasPrev() bool { return p.Number > 1 }

// HasNext reports whether a page follows this one.
func (p Page[T]) HasNext() bool { return p.Number < p.TotalPages }

// PrevPage returns the previous page number, clamped to 1.
func (p Page[T]) PrevPage() int {
	if p.Number <= 1 {
		return 1
	}
	return p.Number - 1
}

// NextPage returns the next page number, clamped to the last page.
func (p Page[T]) NextPage() int {
	if p.Number >= p.TotalPages {
		return p.TotalPages
	}
	return p.Number + 1
}

// ParsePage extracts the 1-based "page" query parameter.
// Returns 1 if not present or invalid; Paginate clamps the rest.
func ParsePage(r *http.Request) int {
	s := query.Get(r, "page")
	if s == "" {
		return 1
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return 1
	}
	return n
}
