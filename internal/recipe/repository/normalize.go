package repository

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"recipe-browser/internal/model"
)

// recipeNamespace seeds the name-based (v5) recipe IDs.
var recipeNamespace = uuid.MustParse("6f1c9a52-3d4e-4b8a-9c71-2e5d8f0a4b13")

// Candidate keys per canonical field, tried in order. The first key holding
// a non-empty value wins.
var (
	titleKeys       = []string{"title"}
	descriptionKeys = []string{"description"}
	servesKeys      = []string{"serves"}
	photoURLKeys    = []string{"photo_url", "photo url", "Photo Url", "photo"}
	prepTimeKeys    = []string{"prep_time", "prep time"}
	cookTimeKeys    = []string{"cook_time", "cook time"}
	courseKeys      = []string{"course"}
	tagsKeys        = []string{"tags"}
	ingredientsKeys = []string{"ingredients"}
	directionsKeys  = []string{"directions"}
)

// Normalize maps raw records onto canonical recipes, keeping source order.
func Normalize(raw []RawRecord) []model.Recipe {
	out := make([]model.Recipe, 0, len(raw))
	for i, r := range raw {
		out = append(out, normalizeOne(i, r))
	}
	return out
}

func normalizeOne(position int, r RawRecord) model.Recipe {
	title := r.firstString(titleKeys)
	return model.Recipe{
		ID:          RecipeID(position, title),
		Position:    position,
		Title:       title,
		Description: r.firstString(descriptionKeys),
		Serves:      r.firstString(servesKeys),
		PhotoURL:    r.firstString(photoURLKeys),
		PrepTime:    r.firstString(prepTimeKeys),
		CookTime:    r.firstString(cookTimeKeys),
		Course:      r.firstString(courseKeys),
		Tags:        r.firstString(tagsKeys),
		Ingredients: r.firstList(ingredientsKeys),
		Directions:  r.firstString(directionsKeys),
	}
}

// RecipeID derives the synthetic identifier of the record at position.
// Duplicate titles still get distinct IDs.
func RecipeID(position int, title string) string {
	return uuid.NewSHA1(recipeNamespace, []byte(strconv.Itoa(position)+":"+title)).String()
}

func (r RawRecord) firstString(keys []string) string {
	for _, k := range keys {
		if s, ok := toString(r[k]); ok && s != "" {
			return s
		}
	}
	return ""
}

func (r RawRecord) firstList(keys []string) []string {
	for _, k := range keys {
		if list, ok := toList(r[k]); ok && len(list) > 0 {
			return list
		}
	}
	return []string{}
}

// toString renders scalar JSON values. Arrays are joined with ", " so that
// exports which store tags as a list still produce a comma-separated field.
func toString(v any) (string, bool) {
	switch t := v.(type) {
	case nil:
		return "", false
	case string:
		return t, true
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64), true
	case int:
		return strconv.Itoa(t), true
	case int64:
		return strconv.FormatInt(t, 10), true
	case bool:
		return strconv.FormatBool(t), true
	case []any:
		parts := make([]string, 0, len(t))
		for _, e := range t {
			if s, ok := toString(e); ok && s != "" {
				parts = append(parts, s)
			}
		}
		return strings.Join(parts, ", "), true
	default:
		return fmt.Sprint(t), true
	}
}

// toList reads the ingredients field. A single string is split into lines.
func toList(v any) ([]string, bool) {
	switch t := v.(type) {
	case nil:
		return nil, false
	case []any:
		out := make([]string, 0, len(t))
		for _, e := range t {
			if s, ok := toString(e); ok {
				out = append(out, s)
			}
		}
		return out, true
	case string:
		var out []string
		for _, line := range strings.Split(t, "\n") {
			if line = strings.TrimSpace(line); line != "" {
				out = append(out, line)
			}
		}
		return out, true
	default:
		return nil, false
	}
}
