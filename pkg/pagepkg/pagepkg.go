// Package pagepkg provides offset pagination with equality filters over
// in-memory collections.
package pagepkg

import (
	"sort"
	"time"
)

// Params control filtering and slicing of a listing. Filters combine with
// AND semantics and run before sorting and slicing.
type Params[T any] struct {
	Limit   int
	Offset  int
	Filters []func(T) bool
}

// Pagination describes the window that was applied to a listing.
type Pagination struct {
	Total   int  `json:"total"`
	Limit   int  `json:"limit"`
	Offset  int  `json:"offset"`
	HasMore bool `json:"hasMore"`
}

// Page combines a sliced listing with its pagination block.
type Page[T any] struct {
	Data       []T        `json:"data"`
	Pagination Pagination `json:"pagination"`
}

// Paginate filters items, sorts the remainder newest first by the given
// createdAt accessor, and slices [offset, offset+limit). Total counts the
// filtered set before slicing.
func Paginate[T any](items []T, createdAt func(T) time.Time, p Params[T]) Page[T] {
	filtered := make([]T, 0, len(items))

	for _, item := range items {
		keep := true

		for _, f := range p.Filters {
			if !f(item) {
				keep = false
				break
			}
		}

		if keep {
			filtered = append(filtered, item)
		}
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		return createdAt(filtered[i]).After(createdAt(filtered[j]))
	})

	total := len(filtered)

	start := p.Offset
	if start > total {
		start = total
	}

	end := start + p.Limit
	if end > total {
		end = total
	}

	return Page[T]{
		Data: filtered[start:end],
		Pagination: Pagination{
			Total:   total,
			Limit:   p.Limit,
			Offset:  p.Offset,
			HasMore: p.Offset+p.Limit < total,
		},
	}
}
