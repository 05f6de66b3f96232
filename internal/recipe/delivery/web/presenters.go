package web

import (
	"html/template"
	"net/url"
	"strconv"

	"recipe-browser/internal/model"
	"recipe-browser/internal/recipe"
)

const (
	cardPhotoHeight  = 300
	modalPhotoHeight = 600
)

// indexReq accepts any string: filters never fail, unknown values just match nothing.
type indexReq struct {
	Query  string `form:"q"`
	Course string `form:"course"`
	Tag    string `form:"tag"`
	Open   string `form:"open"`
}

func (r indexReq) toInput() recipe.ListInput {
	return recipe.ListInput{
		Criteria: recipe.Criteria{
			Query:  r.Query,
			Course: r.Course,
			Tag:    r.Tag,
		},
	}
}

// link returns the page URL for the current filters, opening id when set.
func (r indexReq) link(id string) string {
	v := url.Values{}
	if r.Query != "" {
		v.Set("q", r.Query)
	}
	if r.Course != "" {
		v.Set("course", r.Course)
	}
	if r.Tag != "" {
		v.Set("tag", r.Tag)
	}
	if id != "" {
		v.Set("open", id)
	}
	if len(v) == 0 {
		return "/"
	}
	return "/?" + v.Encode()
}

type option struct {
	Value    string
	Selected bool
}

type cardView struct {
	Title       string
	Course      string
	Serves      string
	PhotoSrc    string
	Description template.HTML
	OpenURL     string
}

type detailView struct {
	Title       string
	Course      string
	Serves      string
	PrepTime    string
	CookTime    string
	PhotoSrc    string
	Description template.HTML
	Ingredients []string
	Directions  string
}

type pageView struct {
	Query    string
	Courses  []option
	Tags     []option
	Cards    []cardView
	Total    int
	Open     *detailView
	CloseURL string
}

type messageView struct {
	Message  string
	DataFile string // rendered as code after the message
}

func (h *handler) newPageView(req indexReq, out recipe.ListOutput) pageView {
	cards := make([]cardView, len(out.Recipes))
	for i, r := range out.Recipes {
		cards[i] = cardView{
			Title:       r.Title,
			Course:      r.Course,
			Serves:      r.Serves,
			PhotoSrc:    h.photoSrc(r, cardPhotoHeight),
			Description: h.renderer.HTML(r.Description),
			OpenURL:     req.link(r.ID),
		}
	}

	return pageView{
		Query:    req.Query,
		Courses:  options(out.Courses, req.Course),
		Tags:     options(out.Tags, req.Tag),
		Cards:    cards,
		Total:    out.Total,
		CloseURL: req.link(""),
	}
}

func (h *handler) newDetailView(r model.Recipe) *detailView {
	return &detailView{
		Title:       r.Title,
		Course:      r.Course,
		Serves:      r.Serves,
		PrepTime:    r.PrepTime,
		CookTime:    r.CookTime,
		PhotoSrc:    h.photoSrc(r, modalPhotoHeight),
		Description: h.renderer.HTML(r.Description),
		Ingredients: r.Ingredients,
		Directions:  r.Directions,
	}
}

func (h *handler) photoSrc(r model.Recipe, height int) string {
	if !r.HasPhoto() {
		return ""
	}
	if !h.photoProxy {
		return r.PhotoURL
	}
	return "/api/v1/recipes/" + url.PathEscape(r.ID) + "/photo?height=" + strconv.Itoa(height)
}

func options(values []string, selected string) []option {
	out := make([]option, len(values))
	for i, v := range values {
		out[i] = option{Value: v, Selected: v == selected}
	}
	return out
}
