package recipe

import (
	"time"

	"recipe-browser/internal/model"
)

// --- Collection State ---

// State is the lifecycle of the in-memory collection.
type State string

const (
	StateLoading State = "loading"
	StateLoaded  State = "loaded"
	StateFailed  State = "failed"
)

// --- Filter Criteria ---

// Criteria is the ephemeral filter state. Empty fields do not filter.
type Criteria struct {
	Query  string // case-insensitive substring of title, description or ingredients
	Course string // exact, case-sensitive
	Tag    string // case-insensitive membership in the record's tag list
}

// IsZero reports whether no filter is active.
func (c Criteria) IsZero() bool {
	return c == Criteria{}
}

// --- UseCase Inputs ---

type ListInput struct {
	Criteria Criteria
}

// --- UseCase Outputs ---

type ListOutput struct {
	Recipes  []model.Recipe
	Courses  []string
	Tags     []string
	Total    int // size of the whole collection
	Criteria Criteria
}

type FacetsOutput struct {
	Courses  []string
	Tags     []string
	Total    int
	LoadedAt time.Time
}

type DetailOutput struct {
	Recipe model.Recipe
}
