package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// NotFoundPage renders the custom 404 page; also wired as the NoRoute handler
func NotFoundPage(c *gin.Context) {
	c.HTML(http.StatusNotFound, "not_found.tmpl", gin.H{})
}

func ServerError(c *gin.Context) {
	c.String(http.StatusInternalServerError, "server error")
}

// pageParam returns the requested feed page; bad values are clamped later by
// the paginator
func pageParam(c *gin.Context) int {
	page, _ := strconv.Atoi(c.Query("page"))
	return page
}

func idParam(c *gin.Context) (uint64, error) {
	return strconv.ParseUint(c.Param("id"), 10, 64)
}

func postDetailPath(postID uint64) string {
	return "/posts/" + strconv.FormatUint(postID, 10) + "/"
}

func profilePath(username string) string {
	return "/profile/" + username + "/"
}
