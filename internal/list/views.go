package list

import (
	"github.com/shopspring/decimal"

	"listinha/internal/catalog"
	"listinha/internal/model"
)

// CategoryGroup is a derived view: entries of one catalog category, in the
// order they appear on the list. Never persisted.
type CategoryGroup struct {
	Name    string
	Entries []model.Entry
}

// GroupedByCategory splits entries into catalog categories. Group order
// follows catalog declaration order; entries whose name matches no catalog
// item land in the "Outros" bucket, which always comes last.
func GroupedByCategory(entries []model.Entry) []CategoryGroup {
	buckets := make(map[string][]model.Entry)
	for _, e := range entries {
		cat, ok := catalog.CategoryOf(e.Name)
		if !ok {
			cat = catalog.OtherCategory
		}
		buckets[cat] = append(buckets[cat], e)
	}

	var groups []CategoryGroup
	for _, name := range catalog.CategoryNames() {
		if es, ok := buckets[name]; ok {
			groups = append(groups, CategoryGroup{Name: name, Entries: es})
		}
	}
	if es, ok := buckets[catalog.OtherCategory]; ok {
		groups = append(groups, CategoryGroup{Name: catalog.OtherCategory, Entries: es})
	}
	return groups
}

// Total sums quantity × price over the given entries. Zero for an empty set.
func Total(entries []model.Entry) decimal.Decimal {
	total := decimal.Zero
	for _, e := range entries {
		total = total.Add(e.LineTotal())
	}
	return total
}

// Purchased returns the entries already marked purchased, in list order.
func Purchased(entries []model.Entry) []model.Entry {
	var out []model.Entry
	for _, e := range entries {
		if e.Purchased {
			out = append(out, e)
		}
	}
	return out
}

// Pending returns the entries not yet purchased, in list order.
func Pending(entries []model.Entry) []model.Entry {
	var out []model.Entry
	for _, e := range entries {
		if !e.Purchased {
			out = append(out, e)
		}
	}
	return out
}
