// Package query is the feed's pure filter engine: derived views over the
// store's posts, recomputed from scratch on every call. It never mutates
// or reorders the collection it is given.
package query

import (
	"sort"
	"strings"

	"fitography/internal/models"
)

type TagCount struct {
	Tag   string `json:"tag"`
	Count int    `json:"count"`
}

// NormalizeTag trims and lowercases; filtering and ranking compare tags in
// this form only.
func NormalizeTag(tag string) string {
	return strings.ToLower(strings.TrimSpace(tag))
}

// RankTags returns the distinct normalized tags across all posts, sorted by
// descending occurrence count. Ties keep first-encounter order.
func RankTags(posts []models.Post) []TagCount {
	counts := make(map[string]int)
	var order []string

	for _, p := range posts {
		for _, t := range p.Tags {
			n := NormalizeTag(t)
			if n == "" {
				continue
			}
			if _, seen := counts[n]; !seen {
				order = append(order, n)
			}
			counts[n]++
		}
	}

	ranked := make([]TagCount, 0, len(order))
	for _, t := range order {
		ranked = append(ranked, TagCount{Tag: t, Count: counts[t]})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Count > ranked[j].Count
	})

	return ranked
}

// Filter returns the posts matching both gates, in the order given:
//   - tag gate: every selected tag is present in the post's normalized tag
//     list (an empty selection always passes);
//   - text gate: an empty query always passes; a query starting with "@"
//     matches the remainder against the user handle only; anything else
//     matches caption, user, or any tag as a substring.
func Filter(posts []models.Post, q string, selectedTags []string) []models.Post {
	qn := strings.ToLower(strings.TrimSpace(q))
	userQuery := strings.HasPrefix(qn, "@")
	if userQuery {
		qn = strings.TrimPrefix(qn, "@")
	}

	selected := make([]string, 0, len(selectedTags))
	for _, t := range selectedTags {
		if n := NormalizeTag(t); n != "" {
			selected = append(selected, n)
		}
	}

	filtered := make([]models.Post, 0, len(posts))
	for _, p := range posts {
		if !passesTagGate(p, selected) {
			continue
		}
		if !passesTextGate(p, qn, userQuery) {
			continue
		}
		filtered = append(filtered, p)
	}

	return filtered
}

func passesTagGate(p models.Post, selected []string) bool {
	for _, want := range selected {
		found := false
		for _, t := range p.Tags {
			if NormalizeTag(t) == want {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

func passesTextGate(p models.Post, qn string, userQuery bool) bool {
	if qn == "" {
		return true
	}

	user := strings.ToLower(p.User)
	if userQuery {
		return strings.Contains(user, qn)
	}

	if strings.Contains(strings.ToLower(p.Caption), qn) || strings.Contains(user, qn) {
		return true
	}
	for _, t := range p.Tags {
		if strings.Contains(NormalizeTag(t), qn) {
			return true
		}
	}
	return false
}
