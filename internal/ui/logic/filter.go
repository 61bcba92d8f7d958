package logic

import (
	"fmt"
	"sort"

	"fnetgrip/internal/domain"
)

// CategoryOption is one entry of the category selector
type CategoryOption struct {
	Value string // domain.CategoryAll or a category name
	Count int
}

// Label renders the option as shown in the selector, e.g. "all (3)"
func (o CategoryOption) Label() string {
	return fmt.Sprintf("%s (%d)", o.Value, o.Count)
}

// Categories returns the distinct categories present, sorted lexicographically
func Categories(docs []domain.Document) []string {
	seen := make(map[string]bool)
	var out []string
	for _, d := range docs {
		if !seen[d.Category] {
			seen[d.Category] = true
			out = append(out, d.Category)
		}
	}
	sort.Strings(out)
	return out
}

// CategoryCounts returns how many documents carry each category
func CategoryCounts(docs []domain.Document) map[string]int {
	counts := make(map[string]int)
	for _, d := range docs {
		counts[d.Category]++
	}
	return counts
}

// CategoryOptions returns the selector entries: "all" first, then each category
func CategoryOptions(docs []domain.Document) []CategoryOption {
	counts := CategoryCounts(docs)
	opts := []CategoryOption{{Value: domain.CategoryAll, Count: len(docs)}}
	for _, c := range Categories(docs) {
		opts = append(opts, CategoryOption{Value: c, Count: counts[c]})
	}
	return opts
}

// FilterDocuments keeps the documents of one category in their original order.
// The "all" filter returns docs unchanged.
func FilterDocuments(docs []domain.Document, category string) []domain.Document {
	if category == domain.CategoryAll {
		return docs
	}
	out := make([]domain.Document, 0, len(docs))
	for _, d := range docs {
		if d.Category == category {
			out = append(out, d)
		}
	}
	return out
}
