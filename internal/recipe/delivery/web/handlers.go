package web

import (
	"bytes"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"recipe-browser/internal/recipe"
)

const (
	tmplIndex   = "index"
	tmplLoading = "loading"
	tmplError   = "error"

	msgBadRequest = "Erreur: filtre invalide."
)

var loadFailureView = messageView{Message: "Erreur: impossible de charger", DataFile: "recipes.json"}

// Index renders the recipe grid for the filters in the query string, with the
// detail overlay when open names a known recipe.
func (h *handler) Index(c *gin.Context) {
	ctx := c.Request.Context()

	switch h.uc.State() {
	case recipe.StateLoading:
		h.render(c, http.StatusOK, tmplLoading, nil)
		return
	case recipe.StateFailed:
		h.render(c, http.StatusServiceUnavailable, tmplError, loadFailureView)
		return
	}

	req, err := h.processIndexReq(c)
	if err != nil {
		h.l.Debugf(ctx, "web.Index.processIndexReq: %v", err)
		h.render(c, http.StatusBadRequest, tmplError, messageView{Message: msgBadRequest})
		return
	}

	output, err := h.uc.List(ctx, req.toInput())
	if err != nil {
		h.renderUseCaseError(c, err)
		return
	}

	view := h.newPageView(req, output)
	if req.Open != "" {
		detail, err := h.uc.Detail(ctx, req.Open)
		switch {
		case err == nil:
			view.Open = h.newDetailView(detail.Recipe)
		case !errors.Is(err, recipe.ErrRecipeNotFound):
			h.l.Warnf(ctx, "web.Index.uc.Detail: %v", err)
		}
	}

	h.render(c, http.StatusOK, tmplIndex, view)
}

func (h *handler) renderUseCaseError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, recipe.ErrNotLoaded):
		h.render(c, http.StatusOK, tmplLoading, nil)
	case errors.Is(err, recipe.ErrLoadFailure):
		h.render(c, http.StatusServiceUnavailable, tmplError, loadFailureView)
	default:
		h.l.Errorf(c.Request.Context(), "web.Index.uc.List: %v", err)
		c.String(http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
	}
}

// render executes into a buffer first so a template failure never leaves a
// half-written page behind.
func (h *handler) render(c *gin.Context, status int, name string, data any) {
	var buf bytes.Buffer
	if err := h.pages.ExecuteTemplate(&buf, name, data); err != nil {
		h.l.Errorf(c.Request.Context(), "web.render %s: %v", name, err)
		c.String(http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
		return
	}
	c.Data(status, "text/html; charset=utf-8", buf.Bytes())
}
