package handlers

import (
	"blog/storage"
	"strings"

	"github.com/gin-gonic/gin"
)

// MediaFetch serves uploaded post images. Only the posts/ prefix is exposed.
func MediaFetch(c *gin.Context) {
	path := strings.TrimPrefix(c.Param("path"), "/")
	if !strings.HasPrefix(path, "posts/") || strings.Contains(path, "..") {
		NotFoundPage(c)
		return
	}
	storage.Media().Serve(path, c.Request, c.Writer)
}
