package tour

import (
	"sort"
	"strings"
)

// SortKey selects the catalog ordering.
type SortKey string

const (
	SortByName     SortKey = "name"
	SortByPrice    SortKey = "price"
	SortByCategory SortKey = "category"
)

// IsValid reports whether k is a recognized sort key. The empty key is
// valid and means the default (name).
func (k SortKey) IsValid() bool {
	switch k {
	case "", SortByName, SortByPrice, SortByCategory:
		return true
	}
	return false
}

// Query holds the user-entered catalog criteria: free-text search, a
// category filter, and a sort key. The zero value matches everything and
// sorts by name.
type Query struct {
	Search   string
	Category string // "all" or empty matches every category
	Sort     SortKey
}

// View is the derived, display-ready slice of the catalog, plus the
// counts shown as "Showing X of Y tours". An empty Tours slice with a
// non-zero Total is a real state (nothing matched), not a loading state.
type View struct {
	Tours    []Tour `json:"tours"`
	Filtered int    `json:"filtered"`
	Total    int    `json:"total"`
}

// Apply derives the view for q from the full fetched tour list. The input
// slice is not modified. Re-deriving on every input change is cheap; no
// state is kept between calls.
func Apply(tours []Tour, q Query) View {
	search := strings.ToLower(q.Search)

	matched := make([]Tour, 0, len(tours))
	for _, t := range tours {
		if search != "" &&
			!strings.Contains(strings.ToLower(t.Title), search) &&
			!strings.Contains(strings.ToLower(t.Description), search) {
			continue
		}
		if q.Category != "" && q.Category != "all" && string(t.Category) != q.Category {
			continue
		}
		matched = append(matched, t)
	}

	sortTours(matched, q.Sort)

	return View{Tours: matched, Filtered: len(matched), Total: len(tours)}
}

// sortTours orders tours in place by the given key. Equal keys keep their
// relative input order.
func sortTours(tours []Tour, key SortKey) {
	switch key {
	case SortByPrice:
		sort.SliceStable(tours, func(i, j int) bool {
			return priceOrZero(tours[i].Price) < priceOrZero(tours[j].Price)
		})
	case SortByCategory:
		sort.SliceStable(tours, func(i, j int) bool {
			return lessFold(string(tours[i].Category), string(tours[j].Category))
		})
	default:
		sort.SliceStable(tours, func(i, j int) bool {
			return lessFold(tours[i].Title, tours[j].Title)
		})
	}
}

// Categories returns the distinct categories present in tours, in
// first-seen order. The filter control is built from this, so it always
// reflects the loaded data.
func Categories(tours []Tour) []Category {
	seen := make(map[Category]bool, len(tours))
	var cats []Category
	for _, t := range tours {
		if !seen[t.Category] {
			seen[t.Category] = true
			cats = append(cats, t.Category)
		}
	}
	return cats
}

// priceOrZero treats a missing price as 0 for ordering. This default never
// leaves the display layer; booking payloads never carry it.
func priceOrZero(p *float64) float64 {
	if p == nil {
		return 0
	}
	return *p
}

// lessFold compares strings case-insensitively.
func lessFold(a, b string) bool {
	return strings.ToLower(a) < strings.ToLower(b)
}
