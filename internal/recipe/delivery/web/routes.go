package web

import (
	"io/fs"
	"net/http"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers the browser page and its stylesheet.
func RegisterRoutes(r gin.IRoutes, h *handler) {
	static, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}

	r.GET("/", h.Index)
	r.StaticFS("/static", http.FS(static))
}
