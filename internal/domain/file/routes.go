package file

import "github.com/gin-gonic/gin"

// RegisterRoutes registers the attachment endpoints. The fetch/delete
// paths mirror the URLs returned by upload.
func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	files := r.Group("/files")
	{
		files.POST("/upload", h.Upload)
		files.GET("/messages/:file_type/:filename", h.Fetch)
		files.DELETE("/messages/:file_type/:filename", h.Delete)
	}
}
