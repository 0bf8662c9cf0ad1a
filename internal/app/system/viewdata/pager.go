// internal/app/system/viewdata/pager.go
package viewdata

import "github.com/dalemusser/quillpad/internal/app/system/paging"

// Pager is the template-facing view of a feed page's navigation state.
// Templates cannot call generic methods, so the numbers are flattened here.
type Pager struct {
	Number     int
	TotalPages int
	HasPrev    bool
	HasNext    bool
	PrevPage   int
	NextPage   int

	// BasePath is the feed URL the page links point at, e.g. "/group/cats".
	BasePath string
}

// NewPager flattens a page's navigation state for rendering.
func NewPager[T any](p paging.Page[T], basePath string) Pager {
	return Pager{
		Number:     p.Number,
		TotalPages: p.TotalPages,
		HasPrev:    p.HasPrev(),
		HasNext:    p.HasNext(),
		PrevPage:   p.PrevPage(),
		NextPage:   p.NextPage(),
		BasePath:   basePath,
	}
}
