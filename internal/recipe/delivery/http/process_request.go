package http

import (
	"github.com/gin-gonic/gin"

	pkgErrors "recipe-browser/pkg/errors"
)

// processListReq binds and validates the list query parameters.
func (h *handler) processListReq(c *gin.Context) (listReq, error) {
	var req listReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, pkgErrors.NewHTTPError(400, "invalid filter: "+err.Error())
	}
	return req, req.validate()
}

// processPhotoReq binds the photo path and query parameters.
func (h *handler) processPhotoReq(c *gin.Context) (photoReq, error) {
	var req photoReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, pkgErrors.NewHTTPError(400, "invalid height: "+err.Error())
	}
	req.ID = c.Param("id")
	return req, req.validate()
}
