// Package presenter computes the views shown to a user: sorted order,
// pages and per-category counts. It never mutates the contacts it is given.
package presenter

import (
	"slices"
	"strings"

	"github.com/alexanderramin/savecnt/internal/domain"
)

// DefaultPageSize is the number of contacts per list page.
const DefaultPageSize = 25

// CategoryCount is one line of the list statistics.
type CategoryCount struct {
	Category string
	Count    int
}

// SortView returns contacts in the order the user asked for. Alphabetical
// order compares the full display string case-insensitively and keeps ties
// in store order. The input slice is never reordered.
func SortView(contacts []domain.Contact, mode domain.SortMode) []domain.Contact {
	view := slices.Clone(contacts)
	if mode != domain.SortAlphabetical {
		return view
	}
	slices.SortStableFunc(view, func(a, b domain.Contact) int {
		return strings.Compare(strings.ToLower(a.Display), strings.ToLower(b.Display))
	})
	return view
}

// TotalPages is ceil(n/size) with a minimum of one page.
func TotalPages(n, size int) int {
	if size <= 0 {
		size = DefaultPageSize
	}
	if n == 0 {
		return 1
	}
	return (n + size - 1) / size
}

// ClampPage forces a zero-indexed page into [0, total).
func ClampPage(page, total int) int {
	if page >= total {
		page = total - 1
	}
	if page < 0 {
		page = 0
	}
	return page
}

// Paginate returns the zero-indexed page of contacts and the page count.
// A page past the end is empty.
func Paginate(contacts []domain.Contact, page, size int) ([]domain.Contact, int) {
	if size <= 0 {
		size = DefaultPageSize
	}
	total := TotalPages(len(contacts), size)
	start := page * size
	if page < 0 || start >= len(contacts) {
		return []domain.Contact{}, total
	}
	end := min(start+size, len(contacts))
	return contacts[start:end], total
}

// GroupByCategory counts contacts per category in order of first
// appearance.
func GroupByCategory(contacts []domain.Contact) []CategoryCount {
	var out []CategoryCount
	pos := make(map[string]int)
	for _, c := range contacts {
		cat := c.Category()
		i, ok := pos[cat]
		if !ok {
			i = len(out)
			pos[cat] = i
			out = append(out, CategoryCount{Category: cat})
		}
		out[i].Count++
	}
	return out
}
