// Package gallery provides the photo gallery view-state: a categorized
// image collection, category filtering, and the single focused-image
// selection behind the enlarged view.
package gallery

import (
	"sort"
	"strings"
)

// Known gallery categories. The backend may introduce more; unknown
// categories flow through unchanged.
const (
	CategoryBeaches  = "beaches"
	CategoryCulture  = "culture"
	CategoryNature   = "nature"
	CategoryWildlife = "wildlife"
)

// CategoryAll is the synthetic category selecting every image.
const CategoryAll = "all"

// Item is one browsable gallery entry: an image URL and the category it
// was filed under.
type Item struct {
	URL      string `json:"url"`
	Category string `json:"category"`
}

// Collection is the gallery as fetched from the backend: a mapping from
// category to an ordered list of image URLs.
type Collection struct {
	images map[string][]string
}

// NewCollection wraps a fetched category -> URLs mapping. A nil mapping is
// a valid, empty collection.
func NewCollection(images map[string][]string) *Collection {
	return &Collection{images: images}
}

// Categories returns the categories present in the collection, sorted.
// Go maps carry no insertion order, so sorted keys make iteration
// deterministic; order within a category is the source order.
func (c *Collection) Categories() []string {
	cats := make([]string, 0, len(c.images))
	for cat := range c.images {
		cats = append(cats, cat)
	}
	sort.Strings(cats)
	return cats
}

// All returns every image paired with its category. Each call rebuilds the
// slice from the source mapping; the result is never a one-shot stream.
func (c *Collection) All() []Item {
	var items []Item
	for _, cat := range c.Categories() {
		for _, url := range c.images[cat] {
			items = append(items, Item{URL: url, Category: cat})
		}
	}
	return items
}

// Filtered returns the items for one selected category, or All() when the
// selection is "all". A category absent from the collection yields an
// empty result, not an error.
func (c *Collection) Filtered(category string) []Item {
	if category == CategoryAll || category == "" {
		return c.All()
	}
	urls, ok := c.images[category]
	if !ok {
		return nil
	}
	items := make([]Item, 0, len(urls))
	for _, url := range urls {
		items = append(items, Item{URL: url, Category: category})
	}
	return items
}

// Len returns the total number of images across all categories.
func (c *Collection) Len() int {
	n := 0
	for _, urls := range c.images {
		n += len(urls)
	}
	return n
}

// CategoryLabel returns the display form of a gallery category
// ("all" -> "All Photos", "beaches" -> "Beaches").
func CategoryLabel(category string) string {
	if category == CategoryAll {
		return "All Photos"
	}
	if category == "" {
		return ""
	}
	return strings.ToUpper(category[:1]) + category[1:]
}

// Focus holds the at-most-one focused image behind the enlarged view.
// The zero value has nothing focused.
type Focus struct {
	item *Item
}

// Set records item as the focused image, replacing any previous focus.
func (f *Focus) Set(item Item) {
	f.item = &item
}

// Clear drops the focus. Clearing an empty focus is a no-op.
func (f *Focus) Clear() {
	f.item = nil
}

// Current returns the focused item, or false when nothing is focused.
func (f *Focus) Current() (Item, bool) {
	if f.item == nil {
		return Item{}, false
	}
	return *f.item, true
}
