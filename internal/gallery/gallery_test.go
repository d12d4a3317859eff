package gallery

import (
	"testing"
)

func sampleCollection() *Collection {
	return NewCollection(map[string][]string{
		"beaches": {"https://img.example/b1", "https://img.example/b2"},
		"nature":  {"https://img.example/n1"},
		"culture": {"https://img.example/c1", "https://img.example/c2", "https://img.example/c3"},
	})
}

func TestAllRoundTrip(t *testing.T) {
	coll := sampleCollection()

	items := coll.All()
	if len(items) != coll.Len() {
		t.Errorf("All() returned %d items, collection has %d", len(items), coll.Len())
	}
	if coll.Len() != 6 {
		t.Errorf("Len() = %d, want 6", coll.Len())
	}
}

func TestAllIsRegenerable(t *testing.T) {
	coll := sampleCollection()

	first := coll.All()
	second := coll.All()
	if len(first) != len(second) {
		t.Fatalf("second call returned %d items, first %d", len(second), len(first))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("item %d differs between calls: %v vs %v", i, first[i], second[i])
		}
	}
}

func TestAllPreservesOrderWithinCategory(t *testing.T) {
	coll := sampleCollection()

	var beaches []string
	for _, item := range coll.All() {
		if item.Category == "beaches" {
			beaches = append(beaches, item.URL)
		}
	}
	want := []string{"https://img.example/b1", "https://img.example/b2"}
	for i, url := range want {
		if beaches[i] != url {
			t.Errorf("beaches[%d] = %q, want %q", i, beaches[i], url)
		}
	}
}

func TestFilteredByCategory(t *testing.T) {
	coll := sampleCollection()

	items := coll.Filtered("culture")
	if len(items) != 3 {
		t.Fatalf("got %d items, want 3", len(items))
	}
	for _, item := range items {
		if item.Category != "culture" {
			t.Errorf("item %q in category %q", item.URL, item.Category)
		}
	}
}

func TestFilteredAll(t *testing.T) {
	coll := sampleCollection()

	if got, want := len(coll.Filtered(CategoryAll)), len(coll.All()); got != want {
		t.Errorf("Filtered(all) = %d items, All() = %d", got, want)
	}
}

func TestFilteredUnknownCategoryIsEmpty(t *testing.T) {
	coll := sampleCollection()

	if items := coll.Filtered("wildlife"); len(items) != 0 {
		t.Errorf("expected empty result, got %d items", len(items))
	}
}

func TestEmptyCollection(t *testing.T) {
	coll := NewCollection(nil)

	if coll.Len() != 0 {
		t.Errorf("Len() = %d, want 0", coll.Len())
	}
	if items := coll.All(); len(items) != 0 {
		t.Errorf("All() = %d items, want 0", len(items))
	}
	if cats := coll.Categories(); len(cats) != 0 {
		t.Errorf("Categories() = %v, want none", cats)
	}
}

func TestCategoriesSorted(t *testing.T) {
	coll := sampleCollection()

	want := []string{"beaches", "culture", "nature"}
	cats := coll.Categories()
	if len(cats) != len(want) {
		t.Fatalf("got %d categories, want %d", len(cats), len(want))
	}
	for i, c := range want {
		if cats[i] != c {
			t.Errorf("category %d = %q, want %q", i, cats[i], c)
		}
	}
}

func TestFocusHoldsOneItem(t *testing.T) {
	var f Focus

	if _, ok := f.Current(); ok {
		t.Error("new focus should be empty")
	}

	f.Set(Item{URL: "https://img.example/b1", Category: "beaches"})
	item, ok := f.Current()
	if !ok || item.URL != "https://img.example/b1" {
		t.Errorf("focused = %v, %v", item, ok)
	}

	// Setting again replaces, never stacks.
	f.Set(Item{URL: "https://img.example/n1", Category: "nature"})
	item, ok = f.Current()
	if !ok || item.URL != "https://img.example/n1" {
		t.Errorf("focused = %v, %v after replace", item, ok)
	}

	f.Clear()
	if _, ok := f.Current(); ok {
		t.Error("focus should be empty after Clear")
	}

	f.Clear() // clearing twice is fine
}

func TestCategoryLabel(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{CategoryAll, "All Photos"},
		{CategoryBeaches, "Beaches"},
		{"wildlife", "Wildlife"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := CategoryLabel(tt.in); got != tt.want {
			t.Errorf("CategoryLabel(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
