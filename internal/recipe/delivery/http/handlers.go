package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"recipe-browser/internal/recipe"
	pkgErrors "recipe-browser/pkg/errors"
	"recipe-browser/pkg/response"
)

// List godoc
// @Summary     List visible recipes
// @Description Returns the recipes passing every active filter, in source order, with the available courses and tags.
// @Tags        Recipes
// @Produce     json
// @Param       q      query string false "Free text, case-insensitive (title, description, ingredients)"
// @Param       course query string false "Exact course"
// @Param       tag    query string false "Tag, case-insensitive"
// @Success     200 {object} listResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     503 {object} response.Resp "Recipes not loaded"
// @Router      /api/v1/recipes [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.List(ctx, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.List: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListResp(output))
}

// Facets godoc
// @Summary     Available courses and tags
// @Description Returns the distinct courses and tags of the whole collection, sorted.
// @Tags        Recipes
// @Produce     json
// @Success     200 {object} facetsResp
// @Failure     503 {object} response.Resp "Recipes not loaded"
// @Router      /api/v1/recipes/facets [GET]
func (h *handler) Facets(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.Facets(ctx)
	if err != nil {
		h.l.Warnf(ctx, "uc.Facets: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newFacetsResp(output))
}

// Detail godoc
// @Summary     Get recipe detail
// @Description Returns a single recipe by its ID.
// @Tags        Recipes
// @Produce     json
// @Param       id path string true "Recipe ID"
// @Success     200 {object} detailResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     503 {object} response.Resp "Recipes not loaded"
// @Router      /api/v1/recipes/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	if id == "" {
		response.Error(c, pkgErrors.ErrBadRequest)
		return
	}

	output, err := h.uc.Detail(ctx, id)
	if err != nil {
		h.l.Debugf(ctx, "uc.Detail: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newDetailResp(output))
}

// Photo godoc
// @Summary     Recipe photo thumbnail
// @Description Returns the recipe photo resized to the given height, keeping its aspect ratio.
// @Tags        Recipes
// @Produce     image/jpeg
// @Produce     image/png
// @Param       id     path  string true  "Recipe ID"
// @Param       height query int    false "Height in pixels (16-1024)"
// @Success     200
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     502 {object} response.Resp "Photo host failure"
// @Router      /api/v1/recipes/{id}/photo [GET]
func (h *handler) Photo(c *gin.Context) {
	ctx := c.Request.Context()

	if h.photos == nil {
		response.NotFound(c)
		return
	}

	req, err := h.processPhotoReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Detail(ctx, req.ID)
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}
	if !output.Recipe.HasPhoto() {
		response.Error(c, h.mapError(recipe.ErrPhotoMissing))
		return
	}

	if req.Height == 0 {
		req.Height = h.photos.DefaultHeight()
	}

	thumb, err := h.photos.Thumbnail(ctx, output.Recipe.PhotoURL, req.Height)
	if err != nil {
		h.l.Warnf(ctx, "photos.Thumbnail %s: %v", output.Recipe.PhotoURL, err)
		response.Error(c, h.mapError(err))
		return
	}

	c.Header("Cache-Control", "public, max-age=86400")
	c.Header("X-Thumbnail-Size", strconv.Itoa(thumb.Width)+"x"+strconv.Itoa(thumb.Height))
	c.Data(http.StatusOK, thumb.ContentType, thumb.Data)
}
