// Package feed merges posts of heterogeneous kinds from multiple sources
// into one ordered, de-duplicated sequence. BuildFeed is pure: it never
// mutates its inputs and the same inputs always produce the same output,
// which is what makes the merge testable.
package feed

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/eliseodavidv/proyectocompleto/model"
)

// BuildFeed concatenates all sources (no kind-based priority), drops
// duplicates by (id, kind, shared) composite key, applies the filter chain
// and sorts by the selected comparator.
func BuildFeed(sources [][]model.Post, filters model.FilterState) []model.Post {
	merged := make([]model.Post, 0)
	seen := map[model.PostKey]bool{}
	for _, source := range sources {
		for _, post := range source {
			key := post.Key()
			if seen[key] {
				continue
			}
			seen[key] = true
			if !matches(post, filters) {
				continue
			}
			merged = append(merged, post)
		}
	}
	sortPosts(merged, filters)
	return merged
}

// matches is the conjunction of all filter predicates, applied in a fixed
// order: search term, category, objective, numeric range.
func matches(post model.Post, f model.FilterState) bool {
	if term := strings.ToLower(strings.TrimSpace(f.SearchTerm)); len(term) > 0 {
		if !strings.Contains(post.SearchText(), term) {
			return false
		}
	}
	if !matchesCategory(post, f.Category) {
		return false
	}
	if !matchesObjective(post, f.Objective) {
		return false
	}
	if f.Range != nil {
		value, ok := post.NumericField(f.Range.Field)
		if !ok || value < f.Range.Min || value > f.Range.Max {
			return false
		}
	}
	return true
}

func matchesCategory(post model.Post, category string) bool {
	if len(category) == 0 || strings.EqualFold(category, model.FilterAll) {
		return true
	}
	for _, field := range post.CategoryFields() {
		if strings.EqualFold(field, category) {
			return true
		}
	}
	return false
}

func matchesObjective(post model.Post, objective string) bool {
	if len(objective) == 0 || strings.EqualFold(objective, model.FilterAll) {
		return true
	}
	if post.FoodPlan == nil {
		return false
	}
	return strings.Contains(strings.ToLower(post.FoodPlan.Objectives), strings.ToLower(objective))
}

func sortPosts(posts []model.Post, f model.FilterState) {
	switch f.SortKey {
	case model.SortAlphabetic:
		// Locale-aware, case-insensitive. The backend serves Spanish titles.
		collator := collate.New(language.Spanish, collate.Loose)
		sort.SliceStable(posts, func(i, j int) bool {
			return collator.CompareString(posts[i].Title, posts[j].Title) < 0
		})
	case model.SortNumeric:
		sort.SliceStable(posts, func(i, j int) bool {
			vi, oki := posts[i].NumericField(f.NumericSortField)
			vj, okj := posts[j].NumericField(f.NumericSortField)
			// Posts without the field sink to the end.
			if oki != okj {
				return oki
			}
			return vi < vj
		})
	default:
		// recent: descending id is the deliberate recency proxy, server
		// timestamps are not reliable enough to order by. Stable sort keeps
		// the original source order for ties across sources.
		sort.SliceStable(posts, func(i, j int) bool {
			return posts[i].Id > posts[j].Id
		})
	}
}
