package web

import (
	"github.com/gin-gonic/gin"
)

// processIndexReq binds the filter state and the open record from the query string.
func (h *handler) processIndexReq(c *gin.Context) (indexReq, error) {
	var req indexReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	return req, nil
}
