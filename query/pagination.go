package query

import "math"

// PageRef points at a neighbouring page.
type PageRef struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
}

// Pagination describes the pages around the current one.
type Pagination struct {
	Next *PageRef `json:"next,omitempty"`
	Prev *PageRef `json:"prev,omitempty"`
}

// Window is the slice of the result set covered by a page.
type Window struct {
	StartIndex int64
	EndIndex   int64
	Pagination Pagination
}

// Paginate computes the window of the given page. Pages past the end are not
// an error, they just select nothing. A window beyond the int64 range is
// clamped to its last position, which selects nothing as well.
func Paginate(page, limit int, total int64) Window {
	if page < 1 {
		page = DefaultPage
	}
	if limit < 1 {
		limit = DefaultLimit
	}

	p, l := int64(page), int64(limit)
	w := Window{
		StartIndex: (p - 1) * l,
		EndIndex:   p * l,
	}
	if p > math.MaxInt64/l {
		w.StartIndex, w.EndIndex = math.MaxInt64-1, math.MaxInt64
	}

	if w.EndIndex < total {
		w.Pagination.Next = &PageRef{Page: page + 1, Limit: limit}
	}
	if w.StartIndex > 0 {
		w.Pagination.Prev = &PageRef{Page: page - 1, Limit: limit}
	}

	return w
}
