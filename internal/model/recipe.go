package model

import "strings"

// Recipe is the canonical, normalized recipe record.
// Records are built once at load time and never mutated afterwards.
type Recipe struct {
	ID          string   // synthetic, stable across restarts for an unchanged data file
	Position    int      // index in the source collection
	Title       string   // display title, not guaranteed unique
	Description string   // may contain markup, see pkg/markup for how it is rendered
	Serves      string   // free text ("4", "4-6")
	PhotoURL    string   // empty when the source had no photo
	PrepTime    string   // free text
	CookTime    string   // free text
	Course      string   // category label ("Dessert", "Main")
	Tags        string   // comma-separated labels, as imported
	Ingredients []string // ordered
	Directions  string   // free text
}

// TagList splits Tags on commas, trims each piece and drops empty ones.
// Original spelling is kept.
func (r Recipe) TagList() []string {
	if r.Tags == "" {
		return nil
	}
	parts := strings.Split(r.Tags, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// HasPhoto reports whether the record carries a photo URL.
func (r Recipe) HasPhoto() bool {
	return strings.TrimSpace(r.PhotoURL) != ""
}
