package http

import (
	"strings"

	"recipe-browser/internal/model"
	"recipe-browser/internal/recipe"
	pkgErrors "recipe-browser/pkg/errors"
	"recipe-browser/pkg/response"
)

// --- Request DTOs ---

// listReq accepts any string: a course or tag offered by the facets must
// always be selectable.
type listReq struct {
	Query  string `form:"q"`
	Course string `form:"course"`
	Tag    string `form:"tag"`
}

func (r listReq) validate() error { return nil }

func (r listReq) toInput() recipe.ListInput {
	return recipe.ListInput{
		Criteria: recipe.Criteria{
			Query:  r.Query,
			Course: r.Course,
			Tag:    r.Tag,
		},
	}
}

// ---

type photoReq struct {
	ID     string `form:"-"`
	Height int    `form:"height" binding:"omitempty,min=1,max=4096"`
}

func (r photoReq) validate() error {
	if strings.TrimSpace(r.ID) == "" {
		return pkgErrors.NewHTTPError(400, "id is required")
	}
	return nil
}

// --- Response DTOs ---

type recipeResp struct {
	ID              string   `json:"id"`
	Title           string   `json:"title"`
	Description     string   `json:"description"`
	DescriptionHTML string   `json:"description_html"`
	Serves          string   `json:"serves"`
	PhotoURL        string   `json:"photo_url"`
	ThumbnailURL    string   `json:"thumbnail_url,omitempty"`
	PrepTime        string   `json:"prep_time"`
	CookTime        string   `json:"cook_time"`
	Course          string   `json:"course"`
	Tags            string   `json:"tags"`
	TagList         []string `json:"tag_list"`
	Ingredients     []string `json:"ingredients"`
	Directions      string   `json:"directions"`
}

func (h *handler) newRecipeResp(r model.Recipe) recipeResp {
	tagList := r.TagList()
	if tagList == nil {
		tagList = []string{}
	}
	ingredients := r.Ingredients
	if ingredients == nil {
		ingredients = []string{}
	}
	resp := recipeResp{
		ID:              r.ID,
		Title:           r.Title,
		Description:     r.Description,
		DescriptionHTML: string(h.renderer.HTML(r.Description)),
		Serves:          r.Serves,
		PhotoURL:        r.PhotoURL,
		PrepTime:        r.PrepTime,
		CookTime:        r.CookTime,
		Course:          r.Course,
		Tags:            r.Tags,
		TagList:         tagList,
		Ingredients:     ingredients,
		Directions:      r.Directions,
	}
	if h.photos != nil && r.HasPhoto() {
		resp.ThumbnailURL = "/api/v1/recipes/" + r.ID + "/photo"
	}
	return resp
}

type criteriaResp struct {
	Query  string `json:"q"`
	Course string `json:"course"`
	Tag    string `json:"tag"`
}

type listResp struct {
	Recipes  []recipeResp `json:"recipes"`
	Count    int          `json:"count"`
	Total    int          `json:"total"`
	Courses  []string     `json:"courses"`
	Tags     []string     `json:"tags"`
	Criteria criteriaResp `json:"criteria"`
}

func (h *handler) newListResp(out recipe.ListOutput) listResp {
	items := make([]recipeResp, len(out.Recipes))
	for i, r := range out.Recipes {
		items[i] = h.newRecipeResp(r)
	}
	return listResp{
		Recipes: items,
		Count:   len(items),
		Total:   out.Total,
		Courses: nonNil(out.Courses),
		Tags:    nonNil(out.Tags),
		Criteria: criteriaResp{
			Query:  out.Criteria.Query,
			Course: out.Criteria.Course,
			Tag:    out.Criteria.Tag,
		},
	}
}

type facetsResp struct {
	Courses  []string          `json:"courses"`
	Tags     []string          `json:"tags"`
	Total    int               `json:"total"`
	LoadedAt response.DateTime `json:"loaded_at"`
}

func (h *handler) newFacetsResp(out recipe.FacetsOutput) facetsResp {
	return facetsResp{
		Courses:  nonNil(out.Courses),
		Tags:     nonNil(out.Tags),
		Total:    out.Total,
		LoadedAt: response.DateTime(out.LoadedAt),
	}
}

type detailResp struct {
	Recipe recipeResp `json:"recipe"`
}

func (h *handler) newDetailResp(out recipe.DetailOutput) detailResp {
	return detailResp{Recipe: h.newRecipeResp(out.Recipe)}
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
