package usecase

import (
	"sort"
	"strings"

	"recipe-browser/internal/model"
	"recipe-browser/internal/recipe"
)

// availableCourses returns the distinct non-empty courses, ascending.
func availableCourses(recipes []model.Recipe) []string {
	seen := make(map[string]struct{})
	for _, r := range recipes {
		if r.Course != "" {
			seen[r.Course] = struct{}{}
		}
	}
	return sortedKeys(seen)
}

// availableTags returns the union of every record's tag pieces, ascending.
func availableTags(recipes []model.Recipe) []string {
	seen := make(map[string]struct{})
	for _, r := range recipes {
		for _, t := range r.TagList() {
			seen[t] = struct{}{}
		}
	}
	return sortedKeys(seen)
}

// visible keeps the records passing every active criterion, in source order.
func visible(recipes []model.Recipe, c recipe.Criteria) []model.Recipe {
	out := make([]model.Recipe, 0, len(recipes))
	for _, r := range recipes {
		if matchesQuery(r, c.Query) && matchesCourse(r, c.Course) && matchesTag(r, c.Tag) {
			out = append(out, r)
		}
	}
	return out
}

// matchesQuery: blank queries match everything. The query is lowered but not
// trimmed for the substring test.
func matchesQuery(r model.Recipe, query string) bool {
	if strings.TrimSpace(query) == "" {
		return true
	}
	q := strings.ToLower(query)
	return strings.Contains(strings.ToLower(r.Title), q) ||
		strings.Contains(strings.ToLower(r.Description), q) ||
		strings.Contains(strings.ToLower(strings.Join(r.Ingredients, " ")), q)
}

func matchesCourse(r model.Recipe, course string) bool {
	return course == "" || r.Course == course
}

func matchesTag(r model.Recipe, tag string) bool {
	if tag == "" {
		return true
	}
	want := strings.ToLower(tag)
	for _, t := range r.TagList() {
		if strings.ToLower(t) == want {
			return true
		}
	}
	return false
}

func sortedKeys(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
